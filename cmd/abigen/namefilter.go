// Copyright 2024 The go-ethereum Authors
// This file is part of go-ethereum.
//
// go-ethereum is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-ethereum is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-ethereum. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// nameFilter matches artifact identifiers of the form <dir>:<Contract>
// against exclusion patterns. Either side of a pattern may be a wildcard.
type nameFilter struct {
	fulls mapset.Set[string] // path/to/Contract.sol:Type
	files mapset.Set[string] // path/to/Contract.sol:*
	types mapset.Set[string] // *:Type
}

func newNameFilter(patterns ...string) (*nameFilter, error) {
	f := &nameFilter{
		fulls: mapset.NewThreadUnsafeSet[string](),
		files: mapset.NewThreadUnsafeSet[string](),
		types: mapset.NewThreadUnsafeSet[string](),
	}
	for _, pattern := range patterns {
		if err := f.add(pattern); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func (f *nameFilter) add(pattern string) error {
	ft := strings.Split(pattern, ":")
	if len(ft) != 2 {
		// filenames and types must not include ':' symbol
		return fmt.Errorf("invalid pattern: %s", pattern)
	}
	file, typ := ft[0], ft[1]
	switch {
	case file == "*":
		f.types.Add(typ)
	case typ == "*":
		f.files.Add(file)
	default:
		f.fulls.Add(pattern)
	}
	return nil
}

func (f *nameFilter) Matches(name string) bool {
	ft := strings.Split(name, ":")
	if len(ft) != 2 {
		return false
	}
	file, typ := ft[0], ft[1]
	return f.fulls.Contains(name) || f.files.Contains(file) || f.types.Contains(typ)
}
