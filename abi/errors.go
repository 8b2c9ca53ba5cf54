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

package abi

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"

	gethabi "github.com/ethereum/go-ethereum/accounts/abi"
)

var (
	// ErrEncoding is returned when arguments do not match the declared types.
	ErrEncoding = errors.New("abi: encoding failed")

	// ErrDecoding is returned for truncated data, invalid offsets or values
	// that do not fit the declared types.
	ErrDecoding = errors.New("abi: decoding failed")

	// ErrUnknownSelector is returned when no function has the requested selector.
	ErrUnknownSelector = errors.New("abi: unknown selector")

	// ErrUnknownMethod is returned when no function has the requested name or signature.
	ErrUnknownMethod = errors.New("abi: unknown method")

	// ErrUnknownEvent is returned when no event has the requested name or topic.
	ErrUnknownEvent = errors.New("abi: unknown event")
)

var (
	errorSelector = Selector("Error(string)")
	panicSelector = Selector("Panic(uint256)")
)

// PanicCode extracts the code of a Panic(uint256) revert payload.
func PanicCode(data []byte) (uint64, bool) {
	if len(data) != 4+32 || !bytes.Equal(data[:4], panicSelector[:]) {
		return 0, false
	}
	code := new(big.Int).SetBytes(data[4:])
	if !code.IsUint64() {
		return 0, false
	}
	return code.Uint64(), true
}

// UnpackRevert decodes the standard Error(string) and Panic(uint256) revert
// payloads into a human readable reason.
func UnpackRevert(data []byte) (string, error) {
	reason, err := gethabi.UnpackRevert(data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecoding, err)
	}
	return reason, nil
}

// UnpackRevert decodes a revert payload, falling back to the custom errors
// declared by the contract when the payload is not a standard one.
func (abi *ABI) UnpackRevert(data []byte) (string, error) {
	if len(data) >= 4 {
		sel := [4]byte(data[:4])
		if sel != errorSelector && sel != panicSelector {
			if custom, err := abi.ErrorByID(sel); err == nil {
				values, err := custom.Inputs.Unpack(data[4:])
				if err != nil {
					return "", fmt.Errorf("%w: %s: %v", ErrDecoding, custom.Sig, err)
				}
				return fmt.Sprintf("%s%v", custom.Name, values), nil
			}
		}
	}
	return UnpackRevert(data)
}
