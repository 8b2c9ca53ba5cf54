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

package bind_test

import (
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/davebryson/evmup/abi"
	"github.com/davebryson/evmup/backend"
	"github.com/davebryson/evmup/backend/simulated"
	"github.com/davebryson/evmup/internal/testcontracts/mockerc20"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

type erc20Env struct {
	sim   *simulated.Backend
	token *mockerc20.MockErc20
	alice common.Address
	bob   common.Address
}

func newERC20Env(t *testing.T) *erc20Env {
	t.Helper()
	sim := simulated.New()
	accounts, failed := sim.BatchCreateAccountsWithBalance(2, uint256.NewInt(1e18))
	require.Zero(t, failed)

	addr, token, err := mockerc20.DeployMockErc20(sim, accounts[0], "hello", "H", 8)
	require.NoError(t, err)
	require.Equal(t, crypto.CreateAddress(accounts[0], 0), addr)

	return &erc20Env{sim: sim, token: token, alice: accounts[0], bob: accounts[1]}
}

func (env *erc20Env) balanceOf(t *testing.T, who common.Address) int64 {
	t.Helper()
	bal, err := env.token.BalanceOf(who).Call()
	require.NoError(t, err)
	return bal.Int64()
}

func TestERC20Metadata(t *testing.T) {
	env := newERC20Env(t)

	name, err := env.token.Name().Call()
	require.NoError(t, err)
	require.Equal(t, "hello", name)

	symbol, err := env.token.Symbol().Call()
	require.NoError(t, err)
	require.Equal(t, "H", symbol)

	decimals, err := env.token.Decimals().Call()
	require.NoError(t, err)
	require.Equal(t, uint8(8), decimals)

	separator, err := env.token.DOMAINSEPARATOR().Call()
	require.NoError(t, err)
	require.NotEqual(t, [32]byte{}, separator)
}

func TestERC20MintAndTransfer(t *testing.T) {
	env := newERC20Env(t)

	_, err := env.token.Mint(env.alice, big.NewInt(2)).SendTransaction(env.alice)
	require.NoError(t, err)
	require.Equal(t, int64(2), env.balanceOf(t, env.alice))

	supply, err := env.token.TotalSupply().Call()
	require.NoError(t, err)
	require.Equal(t, int64(2), supply.Int64())

	receipt, err := env.token.Transfer(env.bob, big.NewInt(1)).SendTransaction(env.alice)
	require.NoError(t, err)
	require.True(t, receipt.Value)
	require.Equal(t, int64(1), env.balanceOf(t, env.alice))
	require.Equal(t, int64(1), env.balanceOf(t, env.bob))

	transfers, err := env.token.FilterTransferLogs(receipt.Logs)
	require.NoError(t, err)
	require.Len(t, transfers, 1)
	require.Equal(t, env.alice, transfers[0].From)
	require.Equal(t, env.bob, transfers[0].To)
	require.Equal(t, int64(1), transfers[0].Amount.Int64())
	require.Equal(t, env.token.Address(), transfers[0].Raw.Address)
	require.Equal(t, receipt.TxHash, transfers[0].Raw.TxHash)

	approvals, err := env.token.FilterApprovalLogs(receipt.Logs)
	require.NoError(t, err)
	require.Empty(t, approvals)
}

func TestERC20CallDoesNotCommit(t *testing.T) {
	env := newERC20Env(t)

	ok, err := env.token.Mint(env.alice, big.NewInt(5)).From(env.alice).Call()
	require.NoError(t, err)
	require.Equal(t, struct{}{}, ok)
	require.Zero(t, env.balanceOf(t, env.alice))
}

func TestERC20TransferOverdraw(t *testing.T) {
	env := newERC20Env(t)

	_, err := env.token.Mint(env.alice, big.NewInt(1)).SendTransaction(env.alice)
	require.NoError(t, err)

	_, err = env.token.Transfer(env.bob, big.NewInt(2)).SendTransaction(env.alice)
	var revert *backend.RevertError
	require.ErrorAs(t, err, &revert)
	code, ok := abi.PanicCode(revert.Data)
	require.True(t, ok)
	require.Equal(t, uint64(0x11), code)

	require.Equal(t, int64(1), env.balanceOf(t, env.alice))
	require.Zero(t, env.balanceOf(t, env.bob))
}

func TestERC20Approve(t *testing.T) {
	env := newERC20Env(t)

	receipt, err := env.token.Approve(env.bob, big.NewInt(10)).SendTransaction(env.alice)
	require.NoError(t, err)

	approvals, err := env.token.FilterApprovalLogs(receipt.Logs)
	require.NoError(t, err)
	require.Len(t, approvals, 1)
	require.Equal(t, env.alice, approvals[0].Owner)
	require.Equal(t, env.bob, approvals[0].Spender)

	allowance, err := env.token.Allowance(env.alice, env.bob).Call()
	require.NoError(t, err)
	require.Equal(t, int64(10), allowance.Int64())

	_, err = env.token.Mint(env.alice, big.NewInt(10)).SendTransaction(env.alice)
	require.NoError(t, err)
	_, err = env.token.TransferFrom(env.alice, env.bob, big.NewInt(4)).SendTransaction(env.bob)
	require.NoError(t, err)
	require.Equal(t, int64(4), env.balanceOf(t, env.bob))

	allowance, err = env.token.Allowance(env.alice, env.bob).Call()
	require.NoError(t, err)
	require.Equal(t, int64(6), allowance.Int64())
}

func TestERC20At(t *testing.T) {
	env := newERC20Env(t)

	_, err := env.token.Mint(env.bob, big.NewInt(3)).SendTransaction(env.alice)
	require.NoError(t, err)

	rebound, err := mockerc20.NewMockErc20(env.token.Address(), env.sim)
	require.NoError(t, err)
	bal, err := rebound.BalanceOf(env.bob).Call()
	require.NoError(t, err)
	require.Equal(t, int64(3), bal.Int64())

	// A second deployment shares the backend but not the balances.
	addr, _, err := mockerc20.DeployMockErc20(env.sim, env.bob, "other", "O", 18)
	require.NoError(t, err)
	other := env.token.At(addr)
	bal, err = other.BalanceOf(env.bob).Call()
	require.NoError(t, err)
	require.Zero(t, bal.Sign())

	name, err := other.Name().Call()
	require.NoError(t, err)
	require.Equal(t, "other", name)
}

func TestERC20GenericBinding(t *testing.T) {
	env := newERC20Env(t)
	contract := env.token.Contract()

	_, err := contract.Method("mint", env.alice, big.NewInt(9))
	require.NoError(t, err)

	fc, err := contract.Method("balanceOf", env.alice)
	require.NoError(t, err)
	values, err := fc.Call()
	require.NoError(t, err)
	require.Len(t, values, 1)
	require.Zero(t, values[0].(*big.Int).Sign())

	_, err = contract.Method("balanceOf", "not an address")
	require.True(t, errors.Is(err, abi.ErrEncoding))
}

func ExampleFunctionCall() {
	sim := simulated.New()
	owner, _ := sim.CreateAccountWithBalance(uint256.NewInt(1e18))

	_, token, err := mockerc20.DeployMockErc20(sim, owner, "Example", "EX", 18)
	if err != nil {
		fmt.Println(err)
		return
	}
	if _, err := token.Mint(owner, big.NewInt(100)).SendTransaction(owner); err != nil {
		fmt.Println(err)
		return
	}
	balance, err := token.BalanceOf(owner).Call()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(balance)
	// Output: 100
}
