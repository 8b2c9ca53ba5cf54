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
	"reflect"

	"github.com/davebryson/evmup/abi"
	"github.com/ethereum/go-ethereum/core/types"
)

var logPtrType = reflect.TypeOf((*types.Log)(nil))

// ParseLog decodes a single log emitted by the named event into out, which
// must be a pointer to a struct with a field per event input.
func (c *BoundContract) ParseLog(out interface{}, event string, log *types.Log) error {
	ev, err := c.abi.EventByName(event)
	if err != nil {
		return err
	}
	return abi.UnpackLog(ev, out, log)
}

// ParseLogIntoMap decodes a single log emitted by the named event into a map
// keyed by input name.
func (c *BoundContract) ParseLogIntoMap(out map[string]interface{}, event string, log *types.Log) error {
	ev, err := c.abi.EventByName(event)
	if err != nil {
		return err
	}
	return abi.UnpackLogIntoMap(ev, out, log)
}

// FilterLogs decodes every log in logs emitted by the named event into a T.
// Logs of other events are skipped, so a batch without matches yields an
// empty slice rather than an error. A field `Raw *types.Log` in T, if
// present, is set to the source log.
//
// Logs are matched on their event signature only, not on their emitter.
func FilterLogs[T any](c *BoundContract, event string, logs []*types.Log) ([]*T, error) {
	ev, err := c.abi.EventByName(event)
	if err != nil {
		return nil, err
	}
	out := make([]*T, 0)
	for _, log := range logs {
		if !abi.Matches(ev, log) {
			continue
		}
		decoded := new(T)
		if err := abi.UnpackLog(ev, decoded, log); err != nil {
			return nil, err
		}
		setRaw(decoded, log)
		out = append(out, decoded)
	}
	return out, nil
}

// FilterLogMaps is the untyped counterpart of FilterLogs.
func (c *BoundContract) FilterLogMaps(event string, logs []*types.Log) ([]map[string]interface{}, error) {
	ev, err := c.abi.EventByName(event)
	if err != nil {
		return nil, err
	}
	out := make([]map[string]interface{}, 0)
	for _, log := range logs {
		if !abi.Matches(ev, log) {
			continue
		}
		decoded := make(map[string]interface{})
		if err := abi.UnpackLogIntoMap(ev, decoded, log); err != nil {
			return nil, err
		}
		out = append(out, decoded)
	}
	return out, nil
}

// setRaw stores log in the Raw field of a struct pointer, if it has one.
func setRaw(out interface{}, log *types.Log) {
	v := reflect.ValueOf(out).Elem()
	if v.Kind() != reflect.Struct {
		return
	}
	field := v.FieldByName("Raw")
	if field.IsValid() && field.CanSet() && field.Type() == logPtrType {
		field.Set(reflect.ValueOf(log))
	}
}
