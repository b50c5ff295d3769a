// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package codec

import (
	"errors"
	"fmt"

	"github.com/dragan2234/besu-verkle-trie/lib/common"
	"github.com/ethereum/go-ethereum/rlp"
)

var (
	// ErrDecodeRecord is defined since no sentinel error is defined
	// in the rlp package.
	ErrDecodeRecord = errors.New("cannot decode record")
	ErrEmptyRecord  = errors.New("record has no elements")
	ErrRecordShape  = errors.New("unknown record shape")
	ErrHashLength   = errors.New("branch hash length mismatch")
)

// Decode decodes a stored-node record from its wire representation,
// an RLP list of byte strings. The record variant is dispatched on
// the first element and the element count:
//   - a single empty element is a null record
//   - an empty first element followed by path and value elements
//     is a leaf record
//   - a non-empty first element is the 32-byte hash of a branch
//     record, followed by its path element
//
// Any other shape is a hard error, never a silent absence.
func Decode(encoded []byte) (record Record, err error) {
	var values [][]byte
	err = rlp.DecodeBytes(encoded, &values)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDecodeRecord, err)
	}

	return DecodeValues(values)
}

// DecodeValues dispatches an already-unframed list of byte strings
// into a record, following the same rule as Decode.
func DecodeValues(values [][]byte) (record Record, err error) {
	if len(values) == 0 {
		return nil, ErrEmptyRecord
	}

	hashOrEmpty := values[0]

	if len(hashOrEmpty) == 0 && len(values) == 1 {
		return NullRecord{}, nil
	}

	if len(hashOrEmpty) == 0 {
		record, err = decodeLeaf(values)
		if err != nil {
			return nil, fmt.Errorf("cannot decode leaf record: %w", err)
		}
		return record, nil
	}

	record, err = decodeBranch(values)
	if err != nil {
		return nil, fmt.Errorf("cannot decode branch record: %w", err)
	}
	return record, nil
}

func decodeLeaf(values [][]byte) (record LeafRecord, err error) {
	if len(values) < 3 {
		return LeafRecord{}, fmt.Errorf("%w: %d elements for a leaf record",
			ErrRecordShape, len(values))
	}

	return LeafRecord{
		Path:  values[1],
		Value: values[2],
	}, nil
}

func decodeBranch(values [][]byte) (record BranchRecord, err error) {
	hashBytes := values[0]
	if len(hashBytes) != common.HashLength {
		return BranchRecord{}, fmt.Errorf("%w: expected %d bytes, got %d",
			ErrHashLength, common.HashLength, len(hashBytes))
	}

	if len(values) < 2 {
		return BranchRecord{}, fmt.Errorf("%w: %d elements for a branch record",
			ErrRecordShape, len(values))
	}

	return BranchRecord{
		Hash: common.NewHash(hashBytes),
		Path: values[1],
	}, nil
}
