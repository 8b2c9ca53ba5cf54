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
	"math/big"
	"testing"

	"github.com/davebryson/evmup/abi"
	"github.com/davebryson/evmup/backend"
	"github.com/davebryson/evmup/backend/simulated"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/vm"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

// Creation code of a contract answering every call with two words of 42.
const answerBin = "0x600f600c600039600f6000f3" + "602a600052602a60205260406000f3"

const answerABI = `[
	{"type":"function","name":"answer","inputs":[],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view"},
	{"type":"function","name":"small","inputs":[],"outputs":[{"name":"","type":"uint8"}],"stateMutability":"view"},
	{"type":"function","name":"pair","inputs":[],"outputs":[{"name":"a","type":"uint256"},{"name":"b","type":"uint256"}],"stateMutability":"view"},
	{"type":"function","name":"poke","inputs":[],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"set","inputs":[{"name":"v","type":"uint256"}],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"set","inputs":[{"name":"who","type":"address"}],"outputs":[],"stateMutability":"nonpayable"}
]`

var answerMetaData = MetaData{
	ABI: answerABI,
	Bin: answerBin,
}

func deployAnswer(t *testing.T) (*BoundContract, common.Address) {
	t.Helper()
	sim := simulated.New()
	caller, err := sim.CreateAccountWithBalance(uint256.NewInt(1_000_000))
	require.NoError(t, err)

	parsed, err := answerMetaData.ParseABI()
	require.NoError(t, err)
	code, err := answerMetaData.Bytecode()
	require.NoError(t, err)

	addr, contract, err := DeployContract(sim, caller, parsed, code)
	require.NoError(t, err)
	require.Equal(t, addr, contract.Address())
	return contract, caller
}

func TestMetaDataCachesABI(t *testing.T) {
	md := &MetaData{ABI: answerABI}
	first, err := md.ParseABI()
	require.NoError(t, err)
	second, err := md.ParseABI()
	require.NoError(t, err)
	require.Same(t, first, second)

	_, err = md.Bytecode()
	require.Error(t, err)

	bad := &MetaData{ABI: "{"}
	_, err = bad.ParseABI()
	require.Error(t, err)
}

func TestDecodeOutputs(t *testing.T) {
	contract, _ := deployAnswer(t)

	answer, err := Method[*big.Int](contract, "answer")
	require.NoError(t, err)
	v, err := answer.Call()
	require.NoError(t, err)
	require.Equal(t, int64(42), v.Int64())

	small, err := Method[uint8](contract, "small")
	require.NoError(t, err)
	u, err := small.Call()
	require.NoError(t, err)
	require.Equal(t, uint8(42), u)

	type pairOutput struct {
		A *big.Int
		B *big.Int
	}
	pair, err := Method[pairOutput](contract, "pair")
	require.NoError(t, err)
	p, err := pair.Call()
	require.NoError(t, err)
	require.Equal(t, int64(42), p.A.Int64())
	require.Equal(t, int64(42), p.B.Int64())

	raw, err := contract.Method("pair")
	require.NoError(t, err)
	values, err := raw.Call()
	require.NoError(t, err)
	require.Len(t, values, 2)

	poke, err := Method[struct{}](contract, "poke")
	require.NoError(t, err)
	_, err = poke.Call()
	require.NoError(t, err)

	mistyped, err := Method[string](contract, "answer")
	require.NoError(t, err)
	_, err = mistyped.Call()
	require.ErrorIs(t, err, abi.ErrDecoding)
}

func TestSendTransactionReceipt(t *testing.T) {
	contract, caller := deployAnswer(t)

	answer, err := Method[*big.Int](contract, "answer")
	require.NoError(t, err)
	receipt, err := answer.SendTransaction(caller)
	require.NoError(t, err)
	require.Equal(t, int64(42), receipt.Value.Int64())
	require.Empty(t, receipt.Logs)
	require.NotZero(t, receipt.GasUsed)
	require.NotEqual(t, common.Hash{}, receipt.TxHash)
}

func TestOverloadResolution(t *testing.T) {
	contract, _ := deployAnswer(t)

	// By name the first declaration wins, whatever the arguments are.
	byName, err := Method[struct{}](contract, "set", big.NewInt(1))
	require.NoError(t, err)
	require.Equal(t, "set(uint256)", byName.Method().Sig)

	_, err = Method[struct{}](contract, "set", common.Address{1})
	require.ErrorIs(t, err, abi.ErrEncoding)

	bySig, err := MethodBySignature[struct{}](contract, "set(address)", common.Address{1})
	require.NoError(t, err)
	require.Equal(t, abi.Selector("set(address)"), [4]byte(bySig.Data()[:4]))

	byHash, err := MethodHash[struct{}](contract, abi.Selector("set(address)"), common.Address{1})
	require.NoError(t, err)
	require.Equal(t, bySig.Data(), byHash.Data())

	_, err = Method[struct{}](contract, "missing")
	require.ErrorIs(t, err, abi.ErrUnknownMethod)
	_, err = MethodHash[struct{}](contract, [4]byte{0xde, 0xad, 0xbe, 0xef})
	require.ErrorIs(t, err, abi.ErrUnknownSelector)
}

func TestDeferredError(t *testing.T) {
	contract, caller := deployAnswer(t)

	fc := Deferred[*big.Int](MethodHash[*big.Int](contract, [4]byte{0xde, 0xad, 0xbe, 0xef}))
	require.ErrorIs(t, fc.Err(), abi.ErrUnknownSelector)

	_, err := fc.Call()
	require.ErrorIs(t, err, abi.ErrUnknownSelector)
	_, err = fc.SendTransaction(caller)
	require.ErrorIs(t, err, abi.ErrUnknownSelector)
	require.ErrorIs(t, fc.Clone().Err(), abi.ErrUnknownSelector)

	ok := Deferred[*big.Int](Method[*big.Int](contract, "answer"))
	require.NoError(t, ok.Err())
}

func TestFunctionCallClone(t *testing.T) {
	contract, _ := deployAnswer(t)

	fc, err := Method[*big.Int](contract, "answer")
	require.NoError(t, err)
	fc.From(common.Address{1}).Value(big.NewInt(5)).Gas(100_000)

	cpy := fc.Clone()
	cpy.From(common.Address{2}).Value(big.NewInt(7)).Gas(1)

	msg := fc.Msg()
	require.Equal(t, common.Address{1}, msg.From)
	require.Equal(t, int64(5), msg.Value.Int64())
	require.Equal(t, uint64(100_000), msg.Gas)
	require.Equal(t, contract.Address(), *msg.To)

	// The message accessors hand out copies.
	msg.Data[0] ^= 0xff
	msg.Value.SetInt64(9)
	require.Equal(t, fc.Data(), cpy.Data())
	require.Equal(t, int64(5), fc.Msg().Value.Int64())

	// Both copies still execute independently.
	cpy.Gas(0).Value(nil)
	v, err := cpy.Call()
	require.NoError(t, err)
	require.Equal(t, int64(42), v.Int64())
}

func TestCallWithoutFundsHalts(t *testing.T) {
	contract, _ := deployAnswer(t)

	fc, err := Method[*big.Int](contract, "answer")
	require.NoError(t, err)
	_, err = fc.From(common.Address{0xee}).Value(big.NewInt(1)).Call()
	var halt *backend.HaltError
	require.ErrorAs(t, err, &halt)
	require.ErrorIs(t, err, vm.ErrInsufficientBalance)
}
