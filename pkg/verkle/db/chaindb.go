// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package db

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/chaindb"
	"github.com/dragan2234/besu-verkle-trie/lib/common"
)

// ChainDB adapts a chaindb database to the stored-node database
// interface, keying each record by the node location followed by
// the commitment hash.
type ChainDB struct {
	db chaindb.Database
}

// NewChainDB wraps a chaindb database as a stored-node database.
func NewChainDB(db chaindb.Database) *ChainDB {
	return &ChainDB{
		db: db,
	}
}

// GetNode returns the record stored at (location, hash), or nil if
// the underlying database has no key for it.
func (cdb *ChainDB) GetNode(location []byte, hash common.Hash) (
	encoded []byte, err error) {
	encoded, err = cdb.db.Get(nodeKey(location, hash))
	if errors.Is(err, chaindb.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting node from database: %w", err)
	}

	return encoded, nil
}

// PutNode stores the record at (location, hash).
func (cdb *ChainDB) PutNode(location []byte, hash common.Hash,
	encoded []byte) (err error) {
	err = cdb.db.Put(nodeKey(location, hash), encoded)
	if err != nil {
		return fmt.Errorf("putting node in database: %w", err)
	}

	return nil
}
