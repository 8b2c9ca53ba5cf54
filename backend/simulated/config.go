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

package simulated

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/tracing"
	"github.com/ethereum/go-ethereum/params"
)

// DefaultGasLimit is the gas granted to messages that do not set one.
const DefaultGasLimit = 30_000_000

// Config contains the execution environment of a simulated backend.
type Config struct {
	ChainConfig *params.ChainConfig // Fork rules, all post-merge forks by default
	GasLimit    uint64              // Gas for messages with Gas == 0
	BlockNumber *big.Int            // Block number seen by executions
	Time        uint64              // Block timestamp seen by executions
	BaseFee     *big.Int            // BASEFEE, nil selects the protocol initial base fee
	Coinbase    common.Address      // COINBASE

	// Tracer receives the execution hooks of every message.
	Tracer *tracing.Hooks `toml:"-"`
}

// DefaultConfig contains default settings for the simulated backend.
var DefaultConfig = Config{
	ChainConfig: params.AllDevChainProtocolChanges,
	GasLimit:    DefaultGasLimit,
	BlockNumber: big.NewInt(1),
}

// Option adjusts the configuration of a new backend.
type Option func(*Config)

// WithGasLimit sets the default message gas limit.
func WithGasLimit(gas uint64) Option {
	return func(c *Config) { c.GasLimit = gas }
}

// WithChainConfig replaces the fork rules.
func WithChainConfig(config *params.ChainConfig) Option {
	return func(c *Config) { c.ChainConfig = config }
}

// WithBlockContext sets the block number and time seen by executions.
func WithBlockContext(number *big.Int, time uint64) Option {
	return func(c *Config) {
		c.BlockNumber = new(big.Int).Set(number)
		c.Time = time
	}
}

// WithTracer installs execution hooks.
func WithTracer(hooks *tracing.Hooks) Option {
	return func(c *Config) { c.Tracer = hooks }
}

// sanitize fills in zero values with defaults.
func (c *Config) sanitize() {
	if c.ChainConfig == nil {
		c.ChainConfig = DefaultConfig.ChainConfig
	}
	if c.GasLimit == 0 {
		c.GasLimit = DefaultGasLimit
	}
	if c.BlockNumber == nil {
		c.BlockNumber = new(big.Int)
	}
}
