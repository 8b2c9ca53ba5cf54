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
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/vm"
)

func TestResultUnwrap(t *testing.T) {
	ok := &ExecutionResult{Outcome: Success}
	if err := ok.Unwrap(); err != nil {
		t.Fatalf("success unwrapped to %v", err)
	}

	reverted := &ExecutionResult{Outcome: Revert, ReturnData: []byte{1, 2}}
	err := reverted.Unwrap()
	var revert *RevertError
	if !errors.As(err, &revert) {
		t.Fatalf("expected revert error, got %T", err)
	}
	if !errors.Is(err, vm.ErrExecutionReverted) {
		t.Fatal("revert error does not match vm.ErrExecutionReverted")
	}
	// The error owns its payload.
	reverted.ReturnData[0] = 0xff
	if revert.Data[0] != 1 {
		t.Fatal("revert payload aliases the result")
	}

	halted := &ExecutionResult{Outcome: Halt, Err: vm.ErrOutOfGas}
	err = halted.Unwrap()
	var halt *HaltError
	if !errors.As(err, &halt) || !errors.Is(err, vm.ErrOutOfGas) {
		t.Fatalf("expected out of gas halt, got %v", err)
	}
}

func TestRevertErrorMessage(t *testing.T) {
	// Error("boom")
	data := hexutil.MustDecode("0x08c379a0" +
		"0000000000000000000000000000000000000000000000000000000000000020" +
		"0000000000000000000000000000000000000000000000000000000000000004" +
		"626f6f6d00000000000000000000000000000000000000000000000000000000")
	tests := []struct {
		data []byte
		want string
	}{
		{nil, "execution reverted"},
		{data, "execution reverted: boom"},
		{[]byte{0xca, 0xfe}, "execution reverted: 0xcafe"},
	}
	for _, tt := range tests {
		err := &RevertError{Data: tt.data}
		if have := err.Error(); have != tt.want {
			t.Errorf("message mismatch: have %q, want %q", have, tt.want)
		}
	}
	err := &RevertError{Data: data}
	if reason, rerr := err.Reason(); rerr != nil || reason != "boom" {
		t.Fatalf("reason mismatch: %q %v", reason, rerr)
	}
	if err.ErrorData() != hexutil.Encode(data) {
		t.Fatalf("error data mismatch: %v", err.ErrorData())
	}
	panicData := append(hexutil.MustDecode("0x4e487b71"), common.LeftPadBytes([]byte{0x11}, 32)...)
	if msg := (&RevertError{Data: panicData}).Error(); msg != "execution reverted: arithmetic underflow or overflow" {
		t.Fatalf("panic message mismatch: %q", msg)
	}
}
