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
	"fmt"

	gethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// MakeTopics converts filter query values into topics.
func MakeTopics(query ...[]interface{}) ([][]common.Hash, error) {
	return gethabi.MakeTopics(query...)
}

// Indexed returns the indexed subset of an event's inputs, in order.
func Indexed(args Arguments) Arguments {
	var indexed Arguments
	for _, arg := range args {
		if arg.Indexed {
			indexed = append(indexed, arg)
		}
	}
	return indexed
}

// Matches reports whether log could have been emitted by event. Non-anonymous
// events are matched on topic 0, anonymous ones on their indexed arity.
func Matches(event *Event, log *types.Log) bool {
	indexed := len(Indexed(event.Inputs))
	if event.Anonymous {
		return len(log.Topics) == indexed
	}
	return len(log.Topics) == indexed+1 && log.Topics[0] == event.ID
}

// eventTopics strips the signature topic and checks the indexed arity.
func eventTopics(event *Event, log *types.Log) ([]common.Hash, error) {
	if !Matches(event, log) {
		return nil, fmt.Errorf("%w: log is not a %s event", ErrDecoding, event.Sig)
	}
	if event.Anonymous {
		return log.Topics, nil
	}
	return log.Topics[1:], nil
}

// UnpackLog decodes a log into out, which must be a pointer to a struct with
// a field per event input. Indexed values are read from the topics; dynamic
// indexed values only survive as their hash and need a common.Hash field.
// A log whose data is shorter than the non-indexed inputs fails to decode.
func UnpackLog(event *Event, out interface{}, log *types.Log) error {
	topics, err := eventTopics(event, log)
	if err != nil {
		return err
	}
	if len(event.Inputs.NonIndexed()) > 0 {
		values, err := event.Inputs.Unpack(log.Data)
		if err != nil {
			return fmt.Errorf("%w: %s data: %v", ErrDecoding, event.Sig, err)
		}
		if err := event.Inputs.Copy(out, values); err != nil {
			return fmt.Errorf("%w: %s data: %v", ErrDecoding, event.Sig, err)
		}
	}
	if err := gethabi.ParseTopics(out, Indexed(event.Inputs), topics); err != nil {
		return fmt.Errorf("%w: %s topics: %v", ErrDecoding, event.Sig, err)
	}
	return nil
}

// UnpackLogIntoMap decodes a log into a map keyed by input name.
func UnpackLogIntoMap(event *Event, out map[string]interface{}, log *types.Log) error {
	topics, err := eventTopics(event, log)
	if err != nil {
		return err
	}
	if len(event.Inputs.NonIndexed()) > 0 {
		if err := event.Inputs.UnpackIntoMap(out, log.Data); err != nil {
			return fmt.Errorf("%w: %s data: %v", ErrDecoding, event.Sig, err)
		}
	}
	if err := gethabi.ParseTopicsIntoMap(out, Indexed(event.Inputs), topics); err != nil {
		return fmt.Errorf("%w: %s topics: %v", ErrDecoding, event.Sig, err)
	}
	return nil
}
