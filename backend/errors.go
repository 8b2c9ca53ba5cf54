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
	"errors"
	"fmt"

	"github.com/davebryson/evmup/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/vm"
)

var (
	// ErrNotCreated is returned when a deployment completed without
	// producing a contract address, e.g. because the message had a target.
	ErrNotCreated = errors.New("execution did not create a contract")

	// ErrBackendBusy is returned when an operation is attempted while another
	// one is still running on the same backend. Reentrant use from inside an
	// execution fails with this error instead of deadlocking.
	ErrBackendBusy = errors.New("backend busy: operation already in progress")
)

// RevertError is returned when the called contract reverted. Data holds the
// raw revert payload.
type RevertError struct {
	Data []byte
}

func (e *RevertError) Error() string {
	if reason, err := abi.UnpackRevert(e.Data); err == nil {
		return fmt.Sprintf("%v: %s", vm.ErrExecutionReverted, reason)
	}
	if len(e.Data) > 0 {
		return fmt.Sprintf("%v: %s", vm.ErrExecutionReverted, hexutil.Encode(e.Data))
	}
	return vm.ErrExecutionReverted.Error()
}

// Unwrap makes errors.Is(err, vm.ErrExecutionReverted) hold.
func (e *RevertError) Unwrap() error {
	return vm.ErrExecutionReverted
}

// ErrorCode returns the JSON-RPC error code for execution reverts.
func (e *RevertError) ErrorCode() int {
	return 3
}

// ErrorData returns the hex encoded revert payload.
func (e *RevertError) ErrorData() interface{} {
	return hexutil.Encode(e.Data)
}

// Reason decodes a standard Error(string) or Panic(uint256) payload.
func (e *RevertError) Reason() (string, error) {
	return abi.UnpackRevert(e.Data)
}

// HaltError is returned when execution terminated abnormally.
type HaltError struct {
	Reason error
}

func (e *HaltError) Error() string {
	return fmt.Sprintf("execution halted: %v", e.Reason)
}

func (e *HaltError) Unwrap() error {
	return e.Reason
}
