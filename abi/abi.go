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

// Package abi is the interface model used by the contract bindings. It wraps
// the go-ethereum ABI codec and adds declaration-ordered function lookup,
// selector based resolution and a typed error taxonomy.
package abi

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	gethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// Type tree, argument and descriptor types are shared with the go-ethereum codec.
type (
	Type               = gethabi.Type
	Argument           = gethabi.Argument
	Arguments          = gethabi.Arguments
	ArgumentMarshaling = gethabi.ArgumentMarshaling
	Method             = gethabi.Method
	Event              = gethabi.Event
	Error              = gethabi.Error
)

// Type enumerator
const (
	IntTy        = gethabi.IntTy
	UintTy       = gethabi.UintTy
	BoolTy       = gethabi.BoolTy
	StringTy     = gethabi.StringTy
	SliceTy      = gethabi.SliceTy
	ArrayTy      = gethabi.ArrayTy
	TupleTy      = gethabi.TupleTy
	AddressTy    = gethabi.AddressTy
	FixedBytesTy = gethabi.FixedBytesTy
	BytesTy      = gethabi.BytesTy
	HashTy       = gethabi.HashTy
	FunctionTy   = gethabi.FunctionTy
)

// NewType creates a new reflection type of abi type given in t.
func NewType(t string, internalType string, components []ArgumentMarshaling) (Type, error) {
	return gethabi.NewType(t, internalType, components)
}

// ToCamelCase converts an under-score string to a camel-case string
func ToCamelCase(input string) string {
	return gethabi.ToCamelCase(input)
}

// ABI is a parsed contract interface. The embedded go-ethereum ABI keys
// overloaded functions by a disambiguated name (foo, foo0, foo1); the
// declaration order of the original document is kept alongside it.
type ABI struct {
	gethabi.ABI

	functions []*Method           // functions in declaration order
	selectors map[[4]byte]*Method // selector -> function
}

// JSON parses a JSON encoded contract interface.
func JSON(reader io.Reader) (*ABI, error) {
	raw, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	return parse(raw)
}

// ParseJSON is a convenience wrapper around JSON for in-memory definitions.
func ParseJSON(definition string) (*ABI, error) {
	return parse([]byte(definition))
}

// declaration is the subset of a JSON ABI entry needed to recover
// declaration order.
type declaration struct {
	Type   string               `json:"type"`
	Name   string               `json:"name"`
	Inputs []ArgumentMarshaling `json:"inputs"`
}

func parse(raw []byte) (*ABI, error) {
	raw, err := canonicalTypes(raw)
	if err != nil {
		return nil, fmt.Errorf("abi: invalid interface definition: %w", err)
	}
	var inner gethabi.ABI
	if err := json.Unmarshal(raw, &inner); err != nil {
		return nil, fmt.Errorf("abi: invalid interface definition: %w", err)
	}
	var decls []declaration
	if err := json.Unmarshal(raw, &decls); err != nil {
		return nil, fmt.Errorf("abi: invalid interface definition: %w", err)
	}
	bySig := make(map[string]*Method, len(inner.Methods))
	for name := range inner.Methods {
		method := inner.Methods[name]
		bySig[method.Sig] = &method
	}
	parsed := &ABI{
		ABI:       inner,
		selectors: make(map[[4]byte]*Method, len(inner.Methods)),
	}
	for _, decl := range decls {
		if decl.Type != "function" && decl.Type != "" {
			continue
		}
		sig, err := signature(decl.Name, decl.Inputs)
		if err != nil {
			return nil, err
		}
		method, ok := bySig[sig]
		if !ok {
			return nil, fmt.Errorf("abi: function %s missing from parsed interface", sig)
		}
		parsed.functions = append(parsed.functions, method)
		parsed.selectors[selectorOf(method)] = method
	}
	return parsed, nil
}

// canonicalTypes rewrites the uint and int aliases in every input, output and
// tuple component of a JSON interface to uint256 and int256.
func canonicalTypes(raw []byte) ([]byte, error) {
	var entries []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, err
	}
	for _, entry := range entries {
		for _, key := range []string{"inputs", "outputs"} {
			if err := canonicalArgs(entry, key); err != nil {
				return nil, err
			}
		}
	}
	return json.Marshal(entries)
}

func canonicalArgs(entry map[string]json.RawMessage, key string) error {
	field, ok := entry[key]
	if !ok {
		return nil
	}
	var args []map[string]json.RawMessage
	if err := json.Unmarshal(field, &args); err != nil {
		return err
	}
	if args == nil {
		return nil
	}
	for _, arg := range args {
		if field, ok := arg["type"]; ok {
			var typ string
			if err := json.Unmarshal(field, &typ); err != nil {
				return err
			}
			encoded, err := json.Marshal(canonicalType(typ))
			if err != nil {
				return err
			}
			arg["type"] = encoded
		}
		if err := canonicalArgs(arg, "components"); err != nil {
			return err
		}
	}
	encoded, err := json.Marshal(args)
	if err != nil {
		return err
	}
	entry[key] = encoded
	return nil
}

// canonicalType expands a bare uint or int, keeping any array suffix.
func canonicalType(typ string) string {
	base, suffix := typ, ""
	if i := strings.IndexByte(typ, '['); i >= 0 {
		base, suffix = typ[:i], typ[i:]
	}
	switch base {
	case "uint":
		return "uint256" + suffix
	case "int":
		return "int256" + suffix
	}
	return typ
}

// signature rebuilds the canonical signature of a raw declaration.
func signature(name string, inputs []ArgumentMarshaling) (string, error) {
	types := make([]string, len(inputs))
	for i, input := range inputs {
		typ, err := NewType(input.Type, input.InternalType, input.Components)
		if err != nil {
			return "", err
		}
		types[i] = typ.String()
	}
	return fmt.Sprintf("%v(%v)", name, strings.Join(types, ",")), nil
}

func selectorOf(method *Method) (sel [4]byte) {
	copy(sel[:], method.ID)
	return sel
}

// Functions returns the callable functions in declaration order.
func (abi *ABI) Functions() []*Method {
	return abi.functions
}

// FunctionByName returns the first declared function called name. Overloads
// are not disambiguated by argument types: later declarations sharing the
// name are only reachable through FunctionBySelector or FunctionBySignature.
func (abi *ABI) FunctionByName(name string) (*Method, error) {
	for _, method := range abi.functions {
		if method.RawName == name {
			return method, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

// FunctionBySelector looks up a function by its 4-byte selector.
func (abi *ABI) FunctionBySelector(selector [4]byte) (*Method, error) {
	if method, ok := abi.selectors[selector]; ok {
		return method, nil
	}
	return nil, fmt.Errorf("%w: %#x", ErrUnknownSelector, selector[:])
}

// FunctionBySignature looks up a function by its canonical signature, for
// example "transfer(address,uint256)".
func (abi *ABI) FunctionBySignature(sig string) (*Method, error) {
	method, err := abi.FunctionBySelector(Selector(sig))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, sig)
	}
	return method, nil
}

// EventByName returns the first declared event called name.
func (abi *ABI) EventByName(name string) (*Event, error) {
	if event, ok := abi.Events[name]; ok {
		return &event, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEvent, name)
}

// EventByTopic looks up a non-anonymous event by its topic 0 hash.
func (abi *ABI) EventByTopic(topic common.Hash) (*Event, error) {
	event, err := abi.ABI.EventByID(topic)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEvent, topic)
	}
	return event, nil
}

// PackCall encodes a call to method: the selector followed by the head and
// tail regions of the arguments.
func PackCall(method *Method, args ...interface{}) ([]byte, error) {
	packed, err := method.Inputs.Pack(args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrEncoding, method.Sig, err)
	}
	return append(common.CopyBytes(method.ID), packed...), nil
}

// PackConstructor encodes constructor arguments. The result is appended to
// the creation bytecode.
func (abi *ABI) PackConstructor(args ...interface{}) ([]byte, error) {
	packed, err := abi.Constructor.Inputs.Pack(args...)
	if err != nil {
		return nil, fmt.Errorf("%w: constructor: %v", ErrEncoding, err)
	}
	return packed, nil
}

// UnpackOutputs decodes the return data of method into its output values.
func UnpackOutputs(method *Method, data []byte) ([]interface{}, error) {
	if len(method.Outputs) == 0 {
		return nil, nil
	}
	values, err := method.Outputs.Unpack(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecoding, method.Sig, err)
	}
	return values, nil
}

// UnpackInput resolves the selector at the start of calldata and decodes the
// remaining arguments.
func (abi *ABI) UnpackInput(calldata []byte) (*Method, []interface{}, error) {
	if len(calldata) < 4 {
		return nil, nil, fmt.Errorf("%w: calldata too short (%d bytes)", ErrDecoding, len(calldata))
	}
	method, err := abi.FunctionBySelector([4]byte(calldata[:4]))
	if err != nil {
		return nil, nil, err
	}
	values, err := method.Inputs.Unpack(calldata[4:])
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrDecoding, method.Sig, err)
	}
	return method, values, nil
}
