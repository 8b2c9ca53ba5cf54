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

// Package bind binds contract interfaces to an execution backend: contracts
// are addressed through a BoundContract, invoked through typed FunctionCall
// builders, and their logs decoded back into typed events.
package bind

import (
	"errors"
	"fmt"
	"sync"

	"github.com/davebryson/evmup/abi"
	"github.com/davebryson/evmup/backend"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// MetaData collects all metadata for a bound contract.
type MetaData struct {
	mu     sync.Mutex
	ABI    string
	Bin    string
	parsed *abi.ABI
}

// ParseABI returns the parsed ABI specification, or an error if the string
// representation of the ABI set in the MetaData instance could not be parsed.
func (m *MetaData) ParseABI() (*abi.ABI, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.parsed != nil {
		return m.parsed, nil
	}
	parsed, err := abi.ParseJSON(m.ABI)
	if err != nil {
		return nil, err
	}
	m.parsed = parsed
	return m.parsed, nil
}

// Bytecode decodes the creation bytecode.
func (m *MetaData) Bytecode() ([]byte, error) {
	if m.Bin == "" {
		return nil, errors.New("no bytecode in metadata")
	}
	code, err := hexutil.Decode(m.Bin)
	if err != nil {
		return nil, fmt.Errorf("invalid bytecode: %w", err)
	}
	return code, nil
}

// BoundContract is the base wrapper object that reflects a contract on the
// execution backend. It contains a collection of methods that are used by the
// higher level contract bindings to operate.
//
// Several bound contracts may share a backend; the backend itself serializes
// access to its state.
type BoundContract struct {
	address common.Address
	abi     *abi.ABI
	backend backend.Backend
}

// NewBoundContract creates a low level contract interface through which calls
// and transactions may be made through.
func NewBoundContract(address common.Address, abi *abi.ABI, backend backend.Backend) *BoundContract {
	return &BoundContract{
		address: address,
		abi:     abi,
		backend: backend,
	}
}

// Address returns the address the contract is bound to.
func (c *BoundContract) Address() common.Address {
	return c.address
}

// ABI returns the interface of the contract.
func (c *BoundContract) ABI() *abi.ABI {
	return c.abi
}

// Backend returns the execution backend the contract is bound to.
func (c *BoundContract) Backend() backend.Backend {
	return c.backend
}

// At rebinds the contract interface to another address on the same backend.
// Nothing is deployed.
func (c *BoundContract) At(address common.Address) *BoundContract {
	return NewBoundContract(address, c.abi, c.backend)
}

// Deploy executes a prepared create message on the backend and returns the
// new contract address.
func (c *BoundContract) Deploy(msg ethereum.CallMsg) (common.Address, error) {
	return c.backend.Deploy(msg)
}

// MethodHash returns an untyped call builder for the function with the given
// selector.
func (c *BoundContract) MethodHash(selector [4]byte, args ...interface{}) (*FunctionCall[[]interface{}], error) {
	return MethodHash[[]interface{}](c, selector, args...)
}

// Method returns an untyped call builder for the first declared function
// called name. See the package level Method for the overload caveat.
func (c *BoundContract) Method(name string, args ...interface{}) (*FunctionCall[[]interface{}], error) {
	return Method[[]interface{}](c, name, args...)
}

// DeployContract deploys a contract onto the backend and binds to it. The
// constructor arguments are encoded and appended to bytecode.
func DeployContract(b backend.Backend, caller common.Address, parsed *abi.ABI, bytecode []byte, args ...interface{}) (common.Address, *BoundContract, error) {
	input, err := parsed.PackConstructor(args...)
	if err != nil {
		return common.Address{}, nil, err
	}
	msg := ethereum.CallMsg{
		From: caller,
		Data: append(common.CopyBytes(bytecode), input...),
	}
	address, err := b.Deploy(msg)
	if err != nil {
		return common.Address{}, nil, err
	}
	return address, NewBoundContract(address, parsed, b), nil
}
