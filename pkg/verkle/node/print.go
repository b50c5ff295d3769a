// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package node

import (
	"fmt"

	"github.com/qdm12/gotree"
)

func (Empty[V]) String() string {
	return "Empty"
}

func (l Leaf[V]) String() string {
	return l.StringNode().String()
}

// StringNode returns a gotree compatible node for String methods.
func (l Leaf[V]) StringNode() (stringNode *gotree.Node) {
	stringNode = gotree.New("Leaf")
	l.appendTo(stringNode)
	return stringNode
}

func (l Leaf[V]) appendTo(stringNode *gotree.Node) {
	stringNode.Appendf("Location: " + bytesToString(l.NodeLocation))
	stringNode.Appendf("Path: " + bytesToString(l.NodePath))
	stringNode.Appendf("Value: %v", l.Value)
}

func (b Branch[V]) String() string {
	return b.StringNode().String()
}

// StringNode returns a gotree compatible node for String methods.
// Empty children are not rendered.
func (b Branch[V]) StringNode() (stringNode *gotree.Node) {
	stringNode = gotree.New("Branch")
	b.appendTo(stringNode)
	return stringNode
}

func (b Branch[V]) appendTo(stringNode *gotree.Node) {
	stringNode.Appendf("Location: " + bytesToString(b.NodeLocation))
	stringNode.Appendf("Hash: " + b.Hash.Short())
	stringNode.Appendf("Path: " + bytesToString(b.NodePath))
	for i, child := range b.Children {
		switch child := child.(type) {
		case Leaf[V]:
			childNode := stringNode.Appendf("Leaf index %d", i)
			child.appendTo(childNode)
		case Branch[V]:
			childNode := stringNode.Appendf("Branch index %d", i)
			child.appendTo(childNode)
		}
	}
}

func bytesToString(b []byte) (s string) {
	switch {
	case b == nil:
		return "nil"
	case len(b) <= 20:
		return fmt.Sprintf("0x%x", b)
	default:
		return fmt.Sprintf("0x%x...%x", b[:8], b[len(b)-8:])
	}
}
