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

package bind

import (
	"fmt"
	"math/big"
	"reflect"

	"github.com/davebryson/evmup/abi"
	"github.com/davebryson/evmup/backend"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Receipt is the decoded result of a committed function call.
type Receipt[D any] struct {
	Value   D            // Decoded return value
	Logs    []*types.Log // Logs emitted by the transaction
	GasUsed uint64
	TxHash  common.Hash
}

// FunctionCall is a pending invocation of a contract function returning D.
// It holds its own copy of the encoded message, so it can be executed any
// number of times, either as a read-only call or as a transaction.
type FunctionCall[D any] struct {
	msg     ethereum.CallMsg
	method  *abi.Method
	backend backend.Backend
	err     error // Deferred construction error
}

// MethodHash builds a call of the function with the given selector.
func MethodHash[D any](c *BoundContract, selector [4]byte, args ...interface{}) (*FunctionCall[D], error) {
	method, err := c.abi.FunctionBySelector(selector)
	if err != nil {
		return nil, err
	}
	return newFunctionCall[D](c, method, args)
}

// Method builds a call of the function called name.
//
// Overloads are not resolved by argument types: when several functions share
// the name, the first one declared in the ABI is used whatever args hold. Use
// MethodHash or MethodBySignature to reach the other overloads.
func Method[D any](c *BoundContract, name string, args ...interface{}) (*FunctionCall[D], error) {
	method, err := c.abi.FunctionByName(name)
	if err != nil {
		return nil, err
	}
	return newFunctionCall[D](c, method, args)
}

// MethodBySignature builds a call of the function with the given canonical
// signature, e.g. "transfer(address,uint256)".
func MethodBySignature[D any](c *BoundContract, sig string, args ...interface{}) (*FunctionCall[D], error) {
	method, err := c.abi.FunctionBySignature(sig)
	if err != nil {
		return nil, err
	}
	return newFunctionCall[D](c, method, args)
}

func newFunctionCall[D any](c *BoundContract, method *abi.Method, args []interface{}) (*FunctionCall[D], error) {
	input, err := abi.PackCall(method, args...)
	if err != nil {
		return nil, err
	}
	to := c.address
	return &FunctionCall[D]{
		msg:     ethereum.CallMsg{To: &to, Data: input},
		method:  method,
		backend: c.backend,
	}, nil
}

// Deferred turns a construction error into a builder that fails when
// executed. Generated bindings use it to return builders directly.
func Deferred[D any](call *FunctionCall[D], err error) *FunctionCall[D] {
	if err != nil {
		return &FunctionCall[D]{err: err}
	}
	return call
}

// Err returns the error encountered while building the call, if any.
func (fc *FunctionCall[D]) Err() error {
	return fc.err
}

// Method returns the function being called.
func (fc *FunctionCall[D]) Method() *abi.Method {
	return fc.method
}

// Msg returns a copy of the message that will be executed.
func (fc *FunctionCall[D]) Msg() ethereum.CallMsg {
	return copyMsg(fc.msg)
}

// Data returns the encoded calldata.
func (fc *FunctionCall[D]) Data() []byte {
	return common.CopyBytes(fc.msg.Data)
}

// From sets the caller used by Call.
func (fc *FunctionCall[D]) From(from common.Address) *FunctionCall[D] {
	fc.msg.From = from
	return fc
}

// Value sets the amount of wei sent along with the call.
func (fc *FunctionCall[D]) Value(value *big.Int) *FunctionCall[D] {
	if value == nil {
		fc.msg.Value = nil
	} else {
		fc.msg.Value = new(big.Int).Set(value)
	}
	return fc
}

// Gas sets the gas limit. Zero selects the backend default.
func (fc *FunctionCall[D]) Gas(gas uint64) *FunctionCall[D] {
	fc.msg.Gas = gas
	return fc
}

// Clone returns an independent copy of the builder bound to the same backend.
func (fc *FunctionCall[D]) Clone() *FunctionCall[D] {
	cpy := &FunctionCall[D]{
		msg:     copyMsg(fc.msg),
		backend: fc.backend,
		err:     fc.err,
	}
	if fc.method != nil {
		method := *fc.method
		cpy.method = &method
	}
	return cpy
}

// Call executes the function without committing state and decodes its return
// value.
func (fc *FunctionCall[D]) Call() (D, error) {
	var zero D
	if fc.err != nil {
		return zero, fc.err
	}
	output, err := fc.backend.Call(copyMsg(fc.msg))
	if err != nil {
		return zero, err
	}
	return fc.decode(output)
}

// SendTransaction executes the function as caller and commits the resulting
// state changes.
func (fc *FunctionCall[D]) SendTransaction(caller common.Address) (*Receipt[D], error) {
	if fc.err != nil {
		return nil, fc.err
	}
	msg := copyMsg(fc.msg)
	msg.From = caller

	receipt, err := fc.backend.SendTransaction(msg)
	if err != nil {
		return nil, err
	}
	value, err := fc.decode(receipt.Output)
	if err != nil {
		return nil, err
	}
	return &Receipt[D]{
		Value:   value,
		Logs:    receipt.Logs,
		GasUsed: receipt.GasUsed,
		TxHash:  receipt.TxHash,
	}, nil
}

// decode converts return data into D. Functions without outputs decode to
// the zero value, single outputs are converted to D, and multiple outputs are
// copied into the fields of a struct D. D may also be []interface{} to
// receive the raw values.
func (fc *FunctionCall[D]) decode(output []byte) (D, error) {
	var out D
	values, err := abi.UnpackOutputs(fc.method, output)
	if err != nil {
		return out, err
	}
	if raw, ok := any(&out).(*[]interface{}); ok {
		*raw = values
		return out, nil
	}
	switch len(values) {
	case 0:
		return out, nil
	case 1:
		dst := reflect.ValueOf(&out).Elem()
		src := reflect.ValueOf(values[0])
		switch {
		case dst.Kind() == reflect.Interface:
			dst.Set(src)
		case src.Type().ConvertibleTo(dst.Type()):
			dst.Set(src.Convert(dst.Type()))
		default:
			return out, fmt.Errorf("%w: cannot convert %s output %v to %v", abi.ErrDecoding, fc.method.Sig, src.Type(), dst.Type())
		}
		return out, nil
	default:
		if err := fc.method.Outputs.Copy(&out, values); err != nil {
			return out, fmt.Errorf("%w: %s: %v", abi.ErrDecoding, fc.method.Sig, err)
		}
		return out, nil
	}
}

func copyMsg(msg ethereum.CallMsg) ethereum.CallMsg {
	cpy := msg
	if msg.To != nil {
		to := *msg.To
		cpy.To = &to
	}
	if msg.Value != nil {
		cpy.Value = new(big.Int).Set(msg.Value)
	}
	if msg.GasPrice != nil {
		cpy.GasPrice = new(big.Int).Set(msg.GasPrice)
	}
	cpy.Data = common.CopyBytes(msg.Data)
	return cpy
}
