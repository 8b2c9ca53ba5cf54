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
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	lru "github.com/hashicorp/golang-lru"
)

const signatureCacheSize = 1024

// signatureCache memoizes keccak256 over canonical signature strings. The
// package level selectors in errors.go read it during initialisation.
var signatureCache = newSignatureCache()

func newSignatureCache() *lru.Cache {
	cache, err := lru.New(signatureCacheSize)
	if err != nil {
		panic(err)
	}
	return cache
}

// SignatureHash returns keccak256 of a canonical signature such as
// "Transfer(address,address,uint256)". It is the topic 0 of a non-anonymous
// event with that signature.
func SignatureHash(sig string) common.Hash {
	if cached, ok := signatureCache.Get(sig); ok {
		return cached.(common.Hash)
	}
	hash := crypto.Keccak256Hash([]byte(sig))
	signatureCache.Add(sig, hash)
	return hash
}

// Selector returns the 4-byte function selector of a canonical signature.
func Selector(sig string) (sel [4]byte) {
	hash := SignatureHash(sig)
	copy(sel[:], hash[:4])
	return sel
}
