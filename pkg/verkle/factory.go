// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package verkle reconstructs verkle trie nodes from records held in
// a stored-node key value database, keyed by node location and
// commitment hash.
package verkle

import (
	"fmt"

	"github.com/dragan2234/besu-verkle-trie/lib/common"
	"github.com/dragan2234/besu-verkle-trie/pkg/verkle/codec"
	"github.com/dragan2234/besu-verkle-trie/pkg/verkle/db"
	"github.com/dragan2234/besu-verkle-trie/pkg/verkle/node"
)

// Deserializer turns raw stored value bytes into a value of type V.
type Deserializer[V any] func(data []byte) (value V, err error)

// StoredNodeFactory reconstructs trie nodes from stored records.
// It holds no mutable state: every Retrieve call is independent and
// rebuilds its subtree from scratch, so a factory is safe for
// concurrent use as long as its node getter is.
type StoredNodeFactory[V any] struct {
	loader      db.NodeGetter
	deserialize Deserializer[V]
}

// NewStoredNodeFactory creates a factory reading records from the
// given loader and deserializing leaf values with deserialize.
func NewStoredNodeFactory[V any](loader db.NodeGetter,
	deserialize Deserializer[V]) *StoredNodeFactory[V] {
	return &StoredNodeFactory[V]{
		loader:      loader,
		deserialize: deserialize,
	}
}

// Retrieve reconstructs the node stored at (location, hash) together
// with, for a branch, its entire subtree. It returns nil without an
// error when the store holds no record for (location, hash); a stored
// null record is different and decodes to the Empty node. Malformed
// records and value deserialization failures abort the whole call.
func (f *StoredNodeFactory[V]) Retrieve(location []byte, hash common.Hash) (
	n node.Node[V], err error) {
	encoded, err := f.loader.GetNode(location, hash)
	if err != nil {
		return nil, fmt.Errorf("getting node at 0x%x: %w", location, err)
	}
	if encoded == nil {
		return nil, nil //nolint:nilnil
	}

	record, err := codec.Decode(encoded)
	if err != nil {
		return nil, fmt.Errorf("decoding record at 0x%x: %w", location, err)
	}

	switch record := record.(type) {
	case codec.NullRecord:
		return node.Empty[V]{}, nil
	case codec.LeafRecord:
		return f.createLeafNode(location, record)
	case codec.BranchRecord:
		return f.createBranchNode(location, record)
	default:
		// this is a programming error, Record is a closed set.
		panic(fmt.Sprintf("not implemented for record type %T", record))
	}
}

func (f *StoredNodeFactory[V]) createLeafNode(location []byte,
	record codec.LeafRecord) (n node.Node[V], err error) {
	value, err := f.deserialize(record.Value)
	if err != nil {
		return nil, fmt.Errorf("deserializing value at 0x%x: %w", location, err)
	}

	return node.Leaf[V]{
		NodeLocation: location,
		NodePath:     record.Path,
		Value:        value,
	}, nil
}

// createBranchNode retrieves all children of the branch eagerly.
// Children are looked up under the hash saved in the branch record,
// the same for every child; the appended index byte alone
// distinguishes their locations.
func (f *StoredNodeFactory[V]) createBranchNode(location []byte,
	record codec.BranchRecord) (n node.Node[V], err error) {
	branch := node.Branch[V]{
		NodeLocation: location,
		Hash:         record.Hash,
		NodePath:     record.Path,
	}

	for i := 0; i < node.ChildrenCapacity; i++ {
		child, err := f.Retrieve(childLocation(location, byte(i)), record.Hash)
		if err != nil {
			return nil, fmt.Errorf("retrieving child at index %d: %w", i, err)
		}

		if child == nil {
			branch.Children[i] = node.Empty[V]{}
			continue
		}
		branch.Children[i] = child
	}

	return branch, nil
}

func childLocation(parentLocation []byte, index byte) (location []byte) {
	location = make([]byte, 0, len(parentLocation)+1)
	location = append(location, parentLocation...)
	return append(location, index)
}
