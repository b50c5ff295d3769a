// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package db

import (
	"sync"

	"github.com/dragan2234/besu-verkle-trie/lib/common"
)

// MemoryDB is an in-memory stored-node database. It is safe for
// concurrent use.
type MemoryDB struct {
	mutex sync.RWMutex
	data  map[string][]byte
}

// NewMemoryDB creates a new empty in-memory stored-node database.
func NewMemoryDB() *MemoryDB {
	return &MemoryDB{
		data: make(map[string][]byte),
	}
}

// GetNode returns the record stored at (location, hash),
// or nil if there is none.
func (mdb *MemoryDB) GetNode(location []byte, hash common.Hash) (
	encoded []byte, err error) {
	mdb.mutex.RLock()
	defer mdb.mutex.RUnlock()

	if value, found := mdb.data[string(nodeKey(location, hash))]; found {
		return value, nil
	}

	return nil, nil
}

// PutNode stores the record at (location, hash).
func (mdb *MemoryDB) PutNode(location []byte, hash common.Hash,
	encoded []byte) (err error) {
	mdb.mutex.Lock()
	defer mdb.mutex.Unlock()

	mdb.data[string(nodeKey(location, hash))] = encoded
	return nil
}
