// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

const (
	// HashLength is the expected length of the common.Hash type
	HashLength = 32
)

var (
	ErrNoPrefix   = errors.New("could not byteify non 0x prefixed string")
	ErrHashLength = errors.New("unexpected hash length")
)

// EmptyHash is the all-zero hash.
var EmptyHash = Hash{}

// Hash is a 32-byte commitment to a trie subtree, used as the
// storage lookup key for stored nodes.
type Hash [32]byte

// NewHash casts a byte slice to a Hash.
// If the input is longer than 32 bytes, it takes the first 32 bytes.
func NewHash(in []byte) (res Hash) {
	res = [32]byte{}
	copy(res[:], in)
	return res
}

// Bytes turns a hash into a byte slice.
func (h Hash) Bytes() []byte {
	b := [32]byte(h)
	return b[:]
}

// IsEmpty returns true if the hash is empty, false otherwise.
func (h Hash) IsEmpty() bool {
	return h == EmptyHash
}

// String returns the hex string for the hash.
func (h Hash) String() string {
	return fmt.Sprintf("0x%x", h[:])
}

// Short returns the first 4 bytes and the last 4 bytes of the hex string for the hash.
func (h Hash) Short() string {
	const nBytes = 4
	return fmt.Sprintf("0x%x...%x", h[:nBytes], h[len(h)-nBytes:])
}

// HexToHash turns a 0x-prefixed hex string into a Hash.
func HexToHash(in string) (Hash, error) {
	if !strings.HasPrefix(in, "0x") {
		return Hash{}, fmt.Errorf("%w: %s", ErrNoPrefix, in)
	}

	in = strings.TrimPrefix(in, "0x")
	out, err := hex.DecodeString(in)
	if err != nil {
		return Hash{}, err
	}

	if len(out) != HashLength {
		return Hash{}, fmt.Errorf("%w: expected %d bytes, got %d",
			ErrHashLength, HashLength, len(out))
	}

	var buf = [32]byte{}
	copy(buf[:], out)
	return buf, nil
}

// MustHexToHash turns a 0x-prefixed hex string into a Hash
// and panics if it cannot.
func MustHexToHash(in string) Hash {
	h, err := HexToHash(in)
	if err != nil {
		panic(err)
	}
	return h
}
