// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package db contains the stored-node key value store interfaces
// together with implementations and decorators for them.
package db

import (
	"github.com/dragan2234/besu-verkle-trie/lib/common"
)

// NodeGetter retrieves stored node records keyed by the node location
// in the trie and the commitment hash the record was stored under.
// A nil record together with a nil error means the store holds no
// record for the key; it is not an error.
type NodeGetter interface {
	GetNode(location []byte, hash common.Hash) (encoded []byte, err error)
}

// NodePutter writes stored node records under (location, hash) keys.
type NodePutter interface {
	PutNode(location []byte, hash common.Hash, encoded []byte) (err error)
}

// Database is a read-write stored-node key value store.
type Database interface {
	NodeGetter
	NodePutter
}

// nodeKey joins location and hash into the flat store key.
func nodeKey(location []byte, hash common.Hash) (key []byte) {
	key = make([]byte, 0, len(location)+common.HashLength)
	key = append(key, location...)
	key = append(key, hash.Bytes()...)
	return key
}
