// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package node

import (
	"github.com/dragan2234/besu-verkle-trie/lib/common"
)

// ChildrenCapacity is the fixed number of children of a branch node,
// one per possible index byte.
const ChildrenCapacity = 256

// Node is the representation of a reconstructed trie node, generic
// over the leaf value type V. It is a closed set: Empty, Leaf and Branch.
// Nodes are immutable once built; walkers type switch over the variants.
type Node[V any] interface {
	isNode()
	// Location returns the accumulated index-byte path from the trie
	// root to this node, or nil where not applicable.
	Location() []byte
	// Path returns the residual key suffix of this node, or nil
	// where not applicable.
	Path() []byte
}

type (
	// Empty is the explicitly-stored marker for a location
	// holding no data. It has exactly one logical value.
	Empty[V any] struct{}
	// Leaf is a terminal entry holding a deserialized value.
	Leaf[V any] struct {
		// NodeLocation may be nil for a leaf built outside of
		// any storage context.
		NodeLocation []byte
		NodePath     []byte
		Value        V
	}
	// Branch is an internal node committing to up to
	// ChildrenCapacity subtrees. Children slots without a stored
	// subtree hold Empty, never nil.
	Branch[V any] struct {
		NodeLocation []byte
		Hash         common.Hash
		NodePath     []byte
		Children     [ChildrenCapacity]Node[V]
	}
)

func (Empty[V]) isNode()  {}
func (Leaf[V]) isNode()   {}
func (Branch[V]) isNode() {}

func (Empty[V]) Location() []byte { return nil }
func (Empty[V]) Path() []byte     { return nil }

func (l Leaf[V]) Location() []byte { return l.NodeLocation }
func (l Leaf[V]) Path() []byte     { return l.NodePath }

func (b Branch[V]) Location() []byte { return b.NodeLocation }
func (b Branch[V]) Path() []byte     { return b.NodePath }

// NewEmptyChildren returns a children array with every slot
// set to the Empty node.
func NewEmptyChildren[V any]() (children [ChildrenCapacity]Node[V]) {
	for i := 0; i < ChildrenCapacity; i++ {
		children[i] = Empty[V]{}
	}
	return children
}

// NumChildren returns the number of non-empty children of the branch.
func (b Branch[V]) NumChildren() (count int) {
	for _, child := range b.Children {
		if _, isEmpty := child.(Empty[V]); !isEmpty {
			count++
		}
	}
	return count
}
