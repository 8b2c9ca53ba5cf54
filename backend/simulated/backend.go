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

// Package simulated implements an execution backend over an in-memory EVM
// state. Nothing is persisted and no blocks are produced: every message is
// executed and, for transactions, committed immediately.
package simulated

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/davebryson/evmup/backend"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/state"
	"github.com/ethereum/go-ethereum/core/tracing"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/core/vm"
	"github.com/ethereum/go-ethereum/core/vm/runtime"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/event"
	"github.com/ethereum/go-ethereum/log"
	"github.com/holiman/uint256"
)

var _ backend.Backend = (*Backend)(nil)

var errInvalidValue = errors.New("message value must be a non-negative 256 bit integer")

// checkpoint is a full copy of the backend state taken by Snapshot.
type checkpoint struct {
	state    *state.StateDB
	accounts mapset.Set[common.Address]
}

// Backend executes messages against an in-process EVM.
//
// All operations take an exclusive lock without waiting. An operation started
// while another one is in progress, including from within a tracer hook of the
// running execution, fails with backend.ErrBackendBusy.
type Backend struct {
	mu sync.Mutex

	config    Config
	state     *state.StateDB
	accounts  mapset.Set[common.Address] // Accounts created through the funding interface
	txs       uint64                     // Number of committed messages
	snapshots []checkpoint

	keygen  func() (*ecdsa.PrivateKey, error)
	logFeed event.Feed
	log     log.Logger
}

// New creates a backend with an empty state.
func New(opts ...Option) *Backend {
	config := DefaultConfig
	for _, opt := range opts {
		opt(&config)
	}
	config.sanitize()

	statedb, err := state.New(types.EmptyRootHash, state.NewDatabaseForTesting())
	if err != nil {
		// The in-memory database cannot fail to open an empty root
		panic(err)
	}
	return &Backend{
		config:   config,
		state:    statedb,
		accounts: mapset.NewThreadUnsafeSet[common.Address](),
		keygen:   crypto.GenerateKey,
		log:      log.New("module", "simulated"),
	}
}

// Config returns the configuration of the backend.
func (b *Backend) Config() Config {
	return b.config
}

func (b *Backend) lock() error {
	if !b.mu.TryLock() {
		busyMeter.Mark(1)
		return backend.ErrBackendBusy
	}
	return nil
}

// CreateAccountWithBalance records a fresh externally owned account holding
// amount.
func (b *Backend) CreateAccountWithBalance(amount *uint256.Int) (common.Address, error) {
	if err := b.lock(); err != nil {
		return common.Address{}, err
	}
	defer b.mu.Unlock()

	return b.createAccount(amount)
}

// BatchCreateAccountsWithBalance creates n funded accounts. Failed attempts
// are not retried; they are left out of the list and reported in failed.
func (b *Backend) BatchCreateAccountsWithBalance(n int, amount *uint256.Int) ([]common.Address, int) {
	if err := b.lock(); err != nil {
		return nil, n
	}
	defer b.mu.Unlock()

	var (
		accounts = make([]common.Address, 0, n)
		failed   int
	)
	for i := 0; i < n; i++ {
		addr, err := b.createAccount(amount)
		if err != nil {
			b.log.Warn("Failed to create account", "index", i, "err", err)
			failed++
			continue
		}
		accounts = append(accounts, addr)
	}
	return accounts, failed
}

func (b *Backend) createAccount(amount *uint256.Int) (common.Address, error) {
	if amount == nil {
		amount = new(uint256.Int)
	}
	key, err := b.keygen()
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to generate account key: %w", err)
	}
	addr := crypto.PubkeyToAddress(key.PublicKey)
	if b.state.Exist(addr) {
		return common.Address{}, fmt.Errorf("account %s already exists", addr)
	}
	b.state.CreateAccount(addr)
	b.state.AddBalance(addr, amount, tracing.BalanceChangeUnspecified)
	b.state.Finalise(false)
	b.accounts.Add(addr)

	accountCounter.Inc(1)
	b.log.Trace("Created account", "address", addr, "balance", amount)
	return addr, nil
}

// Accounts returns the accounts created through the funding interface.
func (b *Backend) Accounts() ([]common.Address, error) {
	if err := b.lock(); err != nil {
		return nil, err
	}
	defer b.mu.Unlock()

	return b.accounts.ToSlice(), nil
}

// Balance returns the balance of addr. Unknown accounts hold zero.
func (b *Backend) Balance(addr common.Address) (*uint256.Int, error) {
	if err := b.lock(); err != nil {
		return nil, err
	}
	defer b.mu.Unlock()

	return new(uint256.Int).Set(b.state.GetBalance(addr)), nil
}

// NonceAt returns the nonce of addr.
func (b *Backend) NonceAt(addr common.Address) (uint64, error) {
	if err := b.lock(); err != nil {
		return 0, err
	}
	defer b.mu.Unlock()

	return b.state.GetNonce(addr), nil
}

// CodeAt returns the code deployed at addr.
func (b *Backend) CodeAt(addr common.Address) ([]byte, error) {
	if err := b.lock(); err != nil {
		return nil, err
	}
	defer b.mu.Unlock()

	return common.CopyBytes(b.state.GetCode(addr)), nil
}

// StorageAt returns the value of a storage slot of addr.
func (b *Backend) StorageAt(addr common.Address, key common.Hash) (common.Hash, error) {
	if err := b.lock(); err != nil {
		return common.Hash{}, err
	}
	defer b.mu.Unlock()

	return b.state.GetState(addr, key), nil
}

// Transfer moves amount from one account to another through a plain value
// transfer message.
func (b *Backend) Transfer(to, from common.Address, amount *uint256.Int) error {
	msg := ethereum.CallMsg{From: from, To: &to}
	if amount != nil {
		msg.Value = amount.ToBig()
	}
	_, err := b.SendTransaction(msg)
	return err
}

// Deploy executes a create message and returns the new contract address.
func (b *Backend) Deploy(msg ethereum.CallMsg) (common.Address, error) {
	result, err := b.Execute(msg, true)
	if err != nil {
		return common.Address{}, err
	}
	if err := result.Unwrap(); err != nil {
		return common.Address{}, err
	}
	if result.ContractAddress == nil {
		return common.Address{}, backend.ErrNotCreated
	}
	return *result.ContractAddress, nil
}

// Call executes msg on a throwaway view of the state and returns its output.
// Logs emitted by the call are discarded.
func (b *Backend) Call(msg ethereum.CallMsg) ([]byte, error) {
	result, err := b.Execute(msg, false)
	if err != nil {
		return nil, err
	}
	if err := result.Unwrap(); err != nil {
		return nil, err
	}
	return result.ReturnData, nil
}

// SendTransaction executes msg and commits its state changes.
func (b *Backend) SendTransaction(msg ethereum.CallMsg) (*backend.Receipt, error) {
	result, err := b.Execute(msg, true)
	if err != nil {
		return nil, err
	}
	if err := result.Unwrap(); err != nil {
		return nil, err
	}
	return &backend.Receipt{
		TxHash:  result.TxHash,
		Output:  result.ReturnData,
		GasUsed: result.GasUsed,
		Logs:    result.Logs,
	}, nil
}

// Execute runs msg and returns the tagged outcome. A nil To creates a
// contract. With commit set, state changes of successful and failed
// executions alike are finalised, as a mined transaction would be; without
// it, the state is rolled back once the message completes.
//
// The returned error only covers problems preventing execution; reverts and
// halts are reported through the result.
func (b *Backend) Execute(msg ethereum.CallMsg, commit bool) (*backend.ExecutionResult, error) {
	if msg.Value != nil && (msg.Value.Sign() < 0 || msg.Value.BitLen() > 256) {
		return nil, errInvalidValue
	}
	if err := b.lock(); err != nil {
		return nil, err
	}
	result := b.execute(msg, commit)
	b.mu.Unlock()

	// Subscribers may call back into the backend, so deliver unlocked.
	if len(result.Logs) > 0 {
		b.logFeed.Send(result.Logs)
	}
	return result, nil
}

func (b *Backend) execute(msg ethereum.CallMsg, commit bool) *backend.ExecutionResult {
	defer execTimer.UpdateSince(time.Now())

	var (
		cfg    = b.runtimeConfig(msg)
		gas    = cfg.GasLimit
		result = new(backend.ExecutionResult)
		txHash common.Hash
		snap   int
	)
	if commit {
		txHash = types.NewTx(&types.LegacyTx{
			Nonce: b.txs,
			To:    msg.To,
			Value: cfg.Value,
			Gas:   gas,
			Data:  msg.Data,
		}).Hash()
		b.state.SetTxContext(txHash, int(b.txs))
	} else {
		snap = b.state.Snapshot()
	}

	var (
		ret      []byte
		leftOver uint64
		err      error
	)
	if msg.To == nil {
		deployMeter.Mark(1)

		var addr common.Address
		ret, addr, leftOver, err = runtime.Create(msg.Data, cfg)
		if err == nil {
			result.ContractAddress = &addr
		}
	} else {
		if commit {
			sendMeter.Mark(1)
		} else {
			callMeter.Mark(1)
		}
		ret, leftOver, err = runtime.Call(*msg.To, msg.Data, cfg)
	}
	result.ReturnData = ret
	result.GasUsed = gas - leftOver

	switch {
	case err == nil:
		result.Outcome = backend.Success
	case errors.Is(err, vm.ErrExecutionReverted):
		revertMeter.Mark(1)
		result.Outcome = backend.Revert
	default:
		haltMeter.Mark(1)
		result.Outcome = backend.Halt
		result.Err = err
	}
	b.log.Debug("Executed message", "from", msg.From, "to", msg.To, "commit", commit,
		"outcome", result.Outcome, "gas", result.GasUsed, "err", err)

	if !commit {
		b.state.RevertToSnapshot(snap)
		return result
	}
	if result.Outcome == backend.Success {
		result.TxHash = txHash
		result.Logs = b.txLogs(txHash)
	}
	// Empty accounts are not pruned, so a created account with no balance
	// keeps existing after it is touched.
	b.state.Finalise(false)
	b.txs++
	return result
}

// runtimeConfig builds the execution environment of a single message.
func (b *Backend) runtimeConfig(msg ethereum.CallMsg) *runtime.Config {
	cfg := &runtime.Config{
		ChainConfig: b.config.ChainConfig,
		Origin:      msg.From,
		Coinbase:    b.config.Coinbase,
		BlockNumber: new(big.Int).Set(b.config.BlockNumber),
		Time:        b.config.Time,
		GasLimit:    msg.Gas,
		GasPrice:    new(big.Int),
		Value:       new(big.Int),
		Random:      &common.Hash{},
		State:       b.state,
		EVMConfig:   vm.Config{Tracer: b.config.Tracer},
	}
	if cfg.GasLimit == 0 {
		cfg.GasLimit = b.config.GasLimit
	}
	if msg.GasPrice != nil {
		cfg.GasPrice.Set(msg.GasPrice)
	}
	if msg.Value != nil {
		cfg.Value.Set(msg.Value)
	}
	if b.config.BaseFee != nil {
		cfg.BaseFee = new(big.Int).Set(b.config.BaseFee)
	}
	return cfg
}

// txLogs returns copies of the logs emitted under txHash.
func (b *Backend) txLogs(txHash common.Hash) []*types.Log {
	emitted := b.state.GetLogs(txHash, b.config.BlockNumber.Uint64(), common.Hash{})
	if len(emitted) == 0 {
		return nil
	}
	logs := make([]*types.Log, len(emitted))
	for i, l := range emitted {
		cpy := *l
		cpy.Topics = append([]common.Hash(nil), l.Topics...)
		cpy.Data = common.CopyBytes(l.Data)
		logs[i] = &cpy
	}
	return logs
}

// SubscribeLogs delivers the logs of every committed message to ch. Delivery
// blocks the sender until ch accepts the batch, so subscribers should use a
// buffered channel or drain it promptly.
func (b *Backend) SubscribeLogs(ch chan<- []*types.Log) event.Subscription {
	return b.logFeed.Subscribe(ch)
}

// Snapshot records the complete backend state and returns an identifier for
// Rollback.
func (b *Backend) Snapshot() (int, error) {
	if err := b.lock(); err != nil {
		return 0, err
	}
	defer b.mu.Unlock()

	b.snapshots = append(b.snapshots, checkpoint{
		state:    b.state.Copy(),
		accounts: b.accounts.Clone(),
	})
	return len(b.snapshots) - 1, nil
}

// Rollback restores the state recorded by Snapshot. Snapshots taken after id
// are discarded; id itself stays valid.
func (b *Backend) Rollback(id int) error {
	if err := b.lock(); err != nil {
		return err
	}
	defer b.mu.Unlock()

	if id < 0 || id >= len(b.snapshots) {
		return fmt.Errorf("unknown snapshot %d", id)
	}
	cp := b.snapshots[id]
	b.state = cp.state.Copy()
	b.accounts = cp.accounts.Clone()
	b.snapshots = b.snapshots[:id+1]
	return nil
}
