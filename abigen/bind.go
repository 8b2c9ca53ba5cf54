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

// Package abigen generates typed Go bindings for contract interfaces. The
// generated code drives the call builders of package bind against any
// backend.Backend.
package abigen

import (
	"bytes"
	"fmt"
	"go/token"
	"sort"
	"strings"
	"text/template"
	"unicode"

	"github.com/davebryson/evmup/abi"
	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/tools/imports"
)

// Names every generated binding defines on its contract type.
var reservedMethods = []string{"Address", "Contract", "At"}

// Parameter names used inside the generated deploy function.
var reservedParams = []string{"b", "caller", "parsed", "bytecode", "address", "contract", "err"}

// Bind generates a Go wrapper around a contract ABI. This wrapper isn't meant
// to be used as is in client code, but rather as an intermediate struct which
// enforces compile time type safety and naming convention opposed to having to
// manually maintain hard coded strings that break on runtime.
func Bind(types []string, abis []string, bytecodes []string, pkg string) (string, error) {
	if len(types) != len(abis) || len(bytecodes) > len(abis) {
		return "", fmt.Errorf("mismatched binding inputs: %d types, %d abis, %d bytecodes", len(types), len(abis), len(bytecodes))
	}
	var (
		contracts = make(map[string]*tmplContract)
		structs   = make(map[string]*tmplStruct)
		typeNames = mapset.NewThreadUnsafeSet[string]()
	)
	for i := 0; i < len(types); i++ {
		// Parse the actual ABI to generate the binding for
		evmABI, err := abi.ParseJSON(abis[i])
		if err != nil {
			return "", fmt.Errorf("contract %s: %w", types[i], err)
		}
		kind := abi.ToCamelCase(capitalise(types[i]))
		if kind == "" || !token.IsIdentifier(kind) {
			return "", fmt.Errorf("invalid contract type name %q", types[i])
		}
		if !typeNames.Add(kind) {
			return "", fmt.Errorf("duplicate contract type %s", kind)
		}
		// Strip any whitespace from the JSON ABI
		strippedABI := strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		}, abis[i])

		contract := &tmplContract{
			Type:     kind,
			InputABI: strings.ReplaceAll(strippedABI, "\"", "\\\""),
			Methods:  make(map[string]*tmplMethod),
			Events:   make(map[string]*tmplEvent),
		}
		if i < len(bytecodes) {
			contract.InputBin = strings.TrimPrefix(strings.TrimSpace(bytecodes[i]), "0x")
		}
		used := mapset.NewThreadUnsafeSet[string](reservedMethods...)

		// Functions are bound in declaration order, so an overload keeps
		// the plain name only if it is declared first.
		for _, original := range evmABI.Functions() {
			method := bindMethod(kind, *original, used, structs)
			contract.Methods[method.Name] = method
		}
		events := make([]string, 0, len(evmABI.Events))
		for name := range evmABI.Events {
			events = append(events, name)
		}
		sort.Strings(events)
		for _, name := range events {
			event := bindEvent(evmABI.Events[name], used, structs)
			contract.Events[event.Name] = event
		}
		contract.Constructor = bindArgs(evmABI.Constructor.Inputs, structs, reservedParams...)
		contracts[kind] = contract
	}
	for _, s := range structs {
		if typeNames.Contains(s.Name) {
			return "", fmt.Errorf("struct %s collides with a contract type", s.Name)
		}
	}
	// Generate the contract template data content and render it
	data := &tmplData{
		Package:   pkg,
		Contracts: contracts,
		Structs:   structs,
	}
	buffer := new(bytes.Buffer)

	tmpl := template.Must(template.New("").Parse(tmplSource))
	if err := tmpl.Execute(buffer, data); err != nil {
		return "", err
	}
	// Pass the code through goimports to clean it up and double check
	code, err := imports.Process(".", buffer.Bytes(), nil)
	if err != nil {
		return "", fmt.Errorf("%v\n%s", err, buffer)
	}
	return string(code), nil
}

// bindMethod normalizes a function for capital cases and non-anonymous
// inputs, and selects the Go type of its decoded result.
func bindMethod(contract string, original abi.Method, used mapset.Set[string], structs map[string]*tmplStruct) *tmplMethod {
	method := &tmplMethod{
		Original: original,
		Name:     uniqueName(used, abi.ToCamelCase(capitalise(original.RawName))),
		ID:       fmt.Sprintf("%#x", original.ID),
		Inputs:   bindArgs(original.Inputs, structs),
	}
	selector := make([]string, len(original.ID))
	for i, b := range original.ID {
		selector[i] = fmt.Sprintf("0x%02x", b)
	}
	method.Selector = strings.Join(selector, ", ")

	switch {
	case len(original.Outputs) == 0:
		method.ReturnType = "struct{}"
	case len(original.Outputs) == 1:
		method.ReturnType = bindTypeGo(original.Outputs[0].Type, structs)
	case structured(original):
		method.Structured = true
		method.ReturnType = contract + method.Name + "Output"
		for _, output := range original.Outputs {
			method.Outputs = append(method.Outputs, tmplArg{
				Name: abi.ToCamelCase(output.Name),
				Type: bindTypeGo(output.Type, structs),
			})
		}
	default:
		method.ReturnType = "[]interface{}"
	}
	return method
}

// bindEvent creates the decoded struct of an event. Indexed values of dynamic
// types only survive as their topic hash.
func bindEvent(original abi.Event, used mapset.Set[string], structs map[string]*tmplStruct) *tmplEvent {
	event := &tmplEvent{
		Original: original,
		Name:     abi.ToCamelCase(capitalise(original.Name)),
	}
	// The Filter<Name>Logs helper shares the method namespace.
	base := event.Name
	for i := 0; used.Contains("Filter" + event.Name + "Logs"); i++ {
		event.Name = fmt.Sprintf("%s%d", base, i)
	}
	used.Add("Filter" + event.Name + "Logs")

	for j, input := range original.Inputs {
		name := abi.ToCamelCase(input.Name)
		if name == "" {
			name = fmt.Sprintf("Arg%d", j)
		}
		typ := bindTypeGo(input.Type, structs)
		if input.Indexed && isDynamic(input.Type) {
			typ = "common.Hash"
		}
		event.Fields = append(event.Fields, tmplArg{Name: name, Type: typ})
	}
	return event
}

// bindArgs converts ABI arguments into Go parameters. Anonymous arguments are
// named arg<N>; names that are Go keywords or listed in reserved get a
// trailing underscore.
func bindArgs(args abi.Arguments, structs map[string]*tmplStruct, reserved ...string) []tmplArg {
	taken := mapset.NewThreadUnsafeSet[string](reserved...)
	params := make([]tmplArg, len(args))
	for j, arg := range args {
		name := arg.Name
		if name == "" {
			name = fmt.Sprintf("arg%d", j)
		}
		for token.IsKeyword(name) || taken.Contains(name) {
			name += "_"
		}
		taken.Add(name)
		params[j] = tmplArg{Name: name, Type: bindTypeGo(arg.Type, structs)}
	}
	return params
}

// bindTypeGo converts solidity types to Go ones. Tuples are registered in
// structs under their canonical form and referenced by struct name.
func bindTypeGo(kind abi.Type, structs map[string]*tmplStruct) string {
	switch kind.T {
	case abi.AddressTy:
		return "common.Address"
	case abi.IntTy, abi.UintTy:
		prefix := ""
		if kind.T == abi.UintTy {
			prefix = "u"
		}
		switch kind.Size {
		case 8, 16, 32, 64:
			return fmt.Sprintf("%sint%d", prefix, kind.Size)
		}
		return "*big.Int"
	case abi.FixedBytesTy:
		return fmt.Sprintf("[%d]byte", kind.Size)
	case abi.BytesTy:
		return "[]byte"
	case abi.FunctionTy:
		return "[24]byte"
	case abi.BoolTy:
		return "bool"
	case abi.StringTy:
		return "string"
	case abi.HashTy:
		return "common.Hash"
	case abi.ArrayTy:
		return fmt.Sprintf("[%d]", kind.Size) + bindTypeGo(*kind.Elem, structs)
	case abi.SliceTy:
		return "[]" + bindTypeGo(*kind.Elem, structs)
	case abi.TupleTy:
		return bindStructType(kind, structs)
	default:
		return kind.String()
	}
}

// bindStructType registers the Go struct of a tuple. Field names match the
// ones the abi codec derives, so decoded values copy over by name.
func bindStructType(kind abi.Type, structs map[string]*tmplStruct) string {
	id := kind.TupleRawName + kind.String()
	if s, ok := structs[id]; ok {
		return s.Name
	}
	fields := make([]tmplArg, len(kind.TupleElems))
	for i, elem := range kind.TupleElems {
		fields[i] = tmplArg{
			Name: abi.ToCamelCase(kind.TupleRawNames[i]),
			Type: bindTypeGo(*elem, structs),
		}
	}
	name := capitalise(kind.TupleRawName)
	if name == "" {
		name = fmt.Sprintf("Struct%d", len(structs))
	}
	structs[id] = &tmplStruct{Name: name, Fields: fields}
	return name
}

// isDynamic reports whether an indexed value of the type is stored hashed.
func isDynamic(kind abi.Type) bool {
	switch kind.T {
	case abi.StringTy, abi.BytesTy, abi.SliceTy, abi.ArrayTy, abi.TupleTy:
		return true
	}
	return false
}

// uniqueName returns name, or name with the smallest numeric suffix that is
// not yet in used, and records the result.
func uniqueName(used mapset.Set[string], name string) string {
	candidate := name
	for i := 0; used.Contains(candidate); i++ {
		candidate = fmt.Sprintf("%s%d", name, i)
	}
	used.Add(candidate)
	return candidate
}

// capitalise makes a camel-case string which starts with an upper case character.
func capitalise(input string) string {
	for len(input) > 0 && input[0] == '_' {
		input = input[1:]
	}
	if len(input) == 0 {
		return ""
	}
	return strings.ToUpper(input[:1]) + input[1:]
}

// structured checks whether a method has enough information to return a proper
// Go struct or if flat returns are needed.
func structured(method abi.Method) bool {
	if len(method.Outputs) < 2 {
		return false
	}
	exists := mapset.NewThreadUnsafeSet[string]()
	for _, out := range method.Outputs {
		// If the name is anonymous, we can't organize into a struct
		if out.Name == "" {
			return false
		}
		// If the field name is empty when normalized or collides (var, Var, _var, _Var),
		// we can't organize into a struct
		field := abi.ToCamelCase(out.Name)
		if field == "" || !exists.Add(field) {
			return false
		}
	}
	return true
}
