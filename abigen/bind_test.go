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
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/davebryson/evmup/abi"
)

// parseBinding runs the generator and checks the output is valid Go.
func parseBinding(t *testing.T, typ, abiJSON, bin string) (string, *ast.File) {
	t.Helper()
	code, err := Bind([]string{typ}, []string{abiJSON}, []string{bin}, "bindtest")
	if err != nil {
		t.Fatalf("failed to generate binding: %v", err)
	}
	file, err := parser.ParseFile(token.NewFileSet(), "binding.go", code, parser.ParseComments)
	if err != nil {
		t.Fatalf("generated binding does not parse: %v\n%s", err, code)
	}
	return code, file
}

// declared lists the top level names of a Go file, including methods.
func declared(file *ast.File) map[string]bool {
	names := make(map[string]bool)
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			names[d.Name.Name] = true
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				switch s := spec.(type) {
				case *ast.TypeSpec:
					names[s.Name.Name] = true
				case *ast.ValueSpec:
					for _, n := range s.Names {
						names[n.Name] = true
					}
				}
			}
		}
	}
	return names
}

func TestBindERC20(t *testing.T) {
	artifact, err := LoadArtifact("testdata/MockERC20.hardhat.json")
	if err != nil {
		t.Fatal(err)
	}
	code, file := parseBinding(t, "MockErc20", artifact.ABI, artifact.Bytecode)

	names := declared(file)
	for _, want := range []string{
		"MockErc20MetaData", "MockErc20", "NewMockErc20", "DeployMockErc20",
		"Address", "Contract", "At",
		"Name", "Symbol", "Decimals", "TotalSupply", "BalanceOf", "Allowance",
		"Mint", "Burn", "Transfer", "TransferFrom", "Approve", "Permit", "Nonces", "DOMAINSEPARATOR",
		"MockErc20Transfer", "MockErc20Approval", "FilterTransferLogs", "FilterApprovalLogs",
	} {
		if !names[want] {
			t.Errorf("binding lacks %s", want)
		}
	}
	for _, want := range []string{
		"// Code generated by evmup abigen - DO NOT EDIT.",
		"func DeployMockErc20(b backend.Backend, caller common.Address, _name string, _symbol string, _decimals uint8) (common.Address, *MockErc20, error)",
		"func (_MockErc20 *MockErc20) BalanceOf(arg0 common.Address) *bind.FunctionCall[*big.Int]",
		"[4]byte{0xa9, 0x05, 0x9c, 0xbb}",
		"func (_MockErc20 *MockErc20) Mint(to common.Address, value *big.Int) *bind.FunctionCall[struct{}]",
		"func (_MockErc20 *MockErc20) Decimals() *bind.FunctionCall[uint8]",
		"func (_MockErc20 *MockErc20) DOMAINSEPARATOR() *bind.FunctionCall[[32]byte]",
		"Raw    *types.Log // Blockchain specific contextual infos",
		`bind.FilterLogs[MockErc20Transfer](_MockErc20.contract, "Transfer", logs)`,
		`Bin: "0x60e0604052`,
	} {
		if !strings.Contains(code, want) {
			t.Errorf("binding lacks %q", want)
		}
	}
}

func TestBindWithoutBytecode(t *testing.T) {
	const iface = `[{"type":"function","name":"get","inputs":[],"outputs":[{"type":"uint256"}],"stateMutability":"view"}]`
	_, file := parseBinding(t, "getter", iface, "")
	names := declared(file)
	if names["DeployGetter"] {
		t.Fatal("deploy function generated without bytecode")
	}
	if !names["NewGetter"] || !names["Get"] {
		t.Fatalf("missing declarations: %v", names)
	}
}

func TestBindOverloads(t *testing.T) {
	const iface = `[
		{"type":"function","name":"foo","inputs":[{"name":"a","type":"uint256"}],"outputs":[]},
		{"type":"function","name":"foo","inputs":[{"name":"a","type":"address"}],"outputs":[]},
		{"type":"function","name":"address","inputs":[],"outputs":[{"type":"address"}]}
	]`
	code, file := parseBinding(t, "Overloaded", iface, "")
	names := declared(file)
	for _, want := range []string{"Foo", "Foo0", "Address0"} {
		if !names[want] {
			t.Errorf("missing %s in\n%s", want, code)
		}
	}
	// The first declaration keeps the plain name.
	if !strings.Contains(code, "func (_Overloaded *Overloaded) Foo(a *big.Int)") {
		t.Errorf("first overload not bound as Foo:\n%s", code)
	}
	if !strings.Contains(code, "func (_Overloaded *Overloaded) Foo0(a common.Address)") {
		t.Errorf("second overload not bound as Foo0:\n%s", code)
	}
}

func TestBindStructured(t *testing.T) {
	const iface = `[
		{"type":"function","name":"pair","inputs":[],"outputs":[{"name":"left","type":"uint64"},{"name":"right","type":"string"}]},
		{"type":"function","name":"flat","inputs":[],"outputs":[{"name":"","type":"uint64"},{"name":"","type":"string"}]},
		{"type":"function","name":"point","inputs":[{"name":"p","type":"tuple","internalType":"struct Geo.Point","components":[{"name":"x","type":"int256"},{"name":"y","type":"int256"}]}],"outputs":[]},
		{"type":"event","name":"Named","inputs":[{"name":"label","type":"string","indexed":true},{"name":"value","type":"bytes","indexed":false}]}
	]`
	code, _ := parseBinding(t, "Shapes", iface, "")
	for _, want := range []string{
		"type ShapesPairOutput struct",
		"*bind.FunctionCall[ShapesPairOutput]",
		"*bind.FunctionCall[[]interface{}]",
		"type GeoPoint struct",
		"Point(p GeoPoint)",
		"Label common.Hash",
		"Value []byte",
	} {
		if !strings.Contains(code, want) {
			t.Errorf("binding lacks %q:\n%s", want, code)
		}
	}
}

func TestBindErrors(t *testing.T) {
	if _, err := Bind([]string{"A"}, []string{"not json"}, nil, "p"); err == nil {
		t.Error("invalid abi accepted")
	}
	if _, err := Bind([]string{"A", "B"}, []string{"[]"}, nil, "p"); err == nil {
		t.Error("mismatched inputs accepted")
	}
	if _, err := Bind([]string{"A", "a"}, []string{"[]", "[]"}, nil, "p"); err == nil {
		t.Error("duplicate type names accepted")
	}
}

func TestBindTypeGo(t *testing.T) {
	tests := []struct {
		sol  string
		want string
	}{
		{"address", "common.Address"},
		{"address[]", "[]common.Address"},
		{"uint8", "uint8"},
		{"int64", "int64"},
		{"uint256", "*big.Int"},
		{"int24", "*big.Int"},
		{"bytes32", "[32]byte"},
		{"bytes", "[]byte"},
		{"bool[2]", "[2]bool"},
		{"string[][3]", "[3][]string"},
		{"function", "[24]byte"},
	}
	for _, tt := range tests {
		typ, err := abi.NewType(tt.sol, "", nil)
		if err != nil {
			t.Fatalf("%s: %v", tt.sol, err)
		}
		if have := bindTypeGo(typ, map[string]*tmplStruct{}); have != tt.want {
			t.Errorf("%s: have %s, want %s", tt.sol, have, tt.want)
		}
	}
}

func TestNamingHelpers(t *testing.T) {
	if have := capitalise("__name"); have != "Name" {
		t.Errorf("capitalise: have %q", have)
	}
	if have := capitalise("_"); have != "" {
		t.Errorf("capitalise: have %q", have)
	}
	params := bindArgs(abi.Arguments{
		{Name: "type", Type: mustType(t, "uint8")},
		{Name: "", Type: mustType(t, "bool")},
		{Name: "caller", Type: mustType(t, "address")},
	}, map[string]*tmplStruct{}, reservedParams...)
	want := []string{"type_", "arg1", "caller_"}
	for i, p := range params {
		if p.Name != want[i] {
			t.Errorf("param %d: have %s, want %s", i, p.Name, want[i])
		}
	}
}

func mustType(t *testing.T, sol string) abi.Type {
	t.Helper()
	typ, err := abi.NewType(sol, "", nil)
	if err != nil {
		t.Fatal(err)
	}
	return typ
}
