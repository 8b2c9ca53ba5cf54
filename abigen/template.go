// Copyright 2024 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package abigen

import (
	_ "embed"

	"github.com/davebryson/evmup/abi"
)

// tmplData is the data structure required to fill the binding template.
type tmplData struct {
	Package   string                   // Name of the package to place the generated file in
	Contracts map[string]*tmplContract // List of contracts to generate into this file
	Structs   map[string]*tmplStruct   // Contract struct type definitions
}

// tmplContract contains the data needed to generate an individual contract binding.
type tmplContract struct {
	Type        string                 // Type name of the main contract binding
	InputABI    string                 // JSON ABI used as the input to generate the binding from
	InputBin    string                 // Optional creation bytecode without 0x prefix
	Constructor []tmplArg              // Constructor parameters, if any
	Methods     map[string]*tmplMethod // Contract functions keyed by Go name
	Events      map[string]*tmplEvent  // Contract events keyed by Go name
}

// tmplMethod is a wrapper around an abi.Method that contains a few preprocessed
// and cached data fields.
type tmplMethod struct {
	Original   abi.Method // Original method as parsed by the abi package
	Name       string     // Go method name
	ID         string     // Hex selector, for doc comments
	Selector   string     // Selector as a Go byte list
	Inputs     []tmplArg  // Go parameters
	Outputs    []tmplArg  // Output struct fields, when Structured
	ReturnType string     // Decoded return type of the call builder
	Structured bool       // Whether the returns should be accumulated into a struct
}

// tmplEvent is a wrapper around an abi.Event that contains a few preprocessed
// and cached data fields.
type tmplEvent struct {
	Original abi.Event // Original event as parsed by the abi package
	Name     string    // Go name of the event
	Fields   []tmplArg // Struct fields of the decoded event
}

// tmplArg is a named Go value: a parameter or a struct field.
type tmplArg struct {
	Name string
	Type string
}

// tmplStruct is a wrapper around an abi.tuple and contains an auto-generated
// struct name.
type tmplStruct struct {
	Name   string    // Auto-generated struct name(before solidity v0.5.11) or raw name.
	Fields []tmplArg // Struct fields definition depends on the binding language.
}

// tmplSource is the Go source template that the generated Go contract binding
// is based on.
//
//go:embed source.go.tpl
var tmplSource string
