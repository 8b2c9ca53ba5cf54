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

package backend

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Outcome tags how an execution terminated.
type Outcome uint8

const (
	Success Outcome = iota // Execution completed normally
	Revert                 // Application logic rejected the message
	Halt                   // Abnormal termination, e.g. out of gas
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case Revert:
		return "revert"
	case Halt:
		return "halt"
	default:
		return "unknown"
	}
}

// ExecutionResult is the tagged outcome of a single execution.
type ExecutionResult struct {
	Outcome    Outcome
	ReturnData []byte       // Output on success, revert payload on revert
	GasUsed    uint64       // Gas consumed, including gas burnt by a halt
	Logs       []*types.Log // Emitted logs, only for committed successes
	TxHash     common.Hash  // Identifier of committed executions

	// ContractAddress is set only when a create message succeeded.
	ContractAddress *common.Address

	// Err is the halt reason reported by the virtual machine.
	Err error
}

// Failed reports whether the execution reverted or halted.
func (result *ExecutionResult) Failed() bool {
	return result.Outcome != Success
}

// Unwrap maps a failed outcome to its error: *RevertError for reverts and
// *HaltError for halts. It returns nil on success.
func (result *ExecutionResult) Unwrap() error {
	switch result.Outcome {
	case Success:
		return nil
	case Revert:
		return &RevertError{Data: common.CopyBytes(result.ReturnData)}
	default:
		return &HaltError{Reason: result.Err}
	}
}
