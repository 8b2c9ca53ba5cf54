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

import "github.com/ethereum/go-ethereum/metrics"

var (
	callMeter   = metrics.NewRegisteredMeter("evmup/backend/calls", nil)
	sendMeter   = metrics.NewRegisteredMeter("evmup/backend/sends", nil)
	deployMeter = metrics.NewRegisteredMeter("evmup/backend/deploys", nil)
	revertMeter = metrics.NewRegisteredMeter("evmup/backend/reverts", nil)
	haltMeter   = metrics.NewRegisteredMeter("evmup/backend/halts", nil)
	busyMeter   = metrics.NewRegisteredMeter("evmup/backend/busy", nil)

	accountCounter = metrics.NewRegisteredCounter("evmup/backend/accounts", nil)
	execTimer      = metrics.NewRegisteredTimer("evmup/backend/exec", nil)
)
