// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package codec

import (
	"github.com/dragan2234/besu-verkle-trie/lib/common"
)

// Record is the representation of a decoded stored-node record.
// Whether a record is Null, Leaf or Branch is encoded solely by
// whether the first list element is empty and how many elements
// follow; see Decode.
type Record interface {
	isRecord()
}

type (
	// NullRecord marks an explicitly-stored empty subtree.
	NullRecord struct{}
	// LeafRecord holds a terminal entry with its raw value bytes.
	LeafRecord struct {
		Path  []byte
		Value []byte
	}
	// BranchRecord holds the commitment hash and path of an
	// internal node. Children are not part of the record; they are
	// stored under their own locations.
	BranchRecord struct {
		Hash common.Hash
		Path []byte
	}
)

func (NullRecord) isRecord()   {}
func (LeafRecord) isRecord()   {}
func (BranchRecord) isRecord() {}
