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

// Package backend defines the capability set an execution engine provides to
// contract bindings, along with the outcome and error types shared by all
// engines.
package backend

import (
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"
)

// AccountFunder creates and funds externally owned test accounts.
type AccountFunder interface {
	// CreateAccountWithBalance records a fresh account holding amount.
	CreateAccountWithBalance(amount *uint256.Int) (common.Address, error)

	// BatchCreateAccountsWithBalance creates n accounts. Attempts that fail
	// are left out of the returned list and counted in failed, so callers
	// must check the count rather than assume len(accounts) == n.
	BatchCreateAccountsWithBalance(n int, amount *uint256.Int) (accounts []common.Address, failed int)

	// Balance returns the balance of addr, zero for unknown accounts.
	Balance(addr common.Address) (*uint256.Int, error)

	// Transfer moves amount from one account to another.
	Transfer(to, from common.Address, amount *uint256.Int) error
}

// ContractExecutor runs contract creation and message calls.
type ContractExecutor interface {
	// Deploy executes a create message (To == nil) and returns the address of
	// the new contract.
	Deploy(msg ethereum.CallMsg) (common.Address, error)

	// Call executes msg without committing any state change and returns the
	// raw output.
	Call(msg ethereum.CallMsg) ([]byte, error)

	// SendTransaction executes msg and commits its state changes.
	SendTransaction(msg ethereum.CallMsg) (*Receipt, error)
}

// Backend is the full capability set used by contract bindings.
type Backend interface {
	AccountFunder
	ContractExecutor
}

// Receipt is the result of a committed message.
type Receipt struct {
	TxHash  common.Hash  // Identifier stamped on the emitted logs
	Output  []byte       // Raw return data
	GasUsed uint64       // Gas consumed by execution
	Logs    []*types.Log // Logs emitted by execution, in order
}
