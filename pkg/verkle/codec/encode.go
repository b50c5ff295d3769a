// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package codec

import (
	"fmt"

	"github.com/ethereum/go-ethereum/rlp"
)

// Encode produces the wire representation of a record, an RLP list
// of byte strings in [hashOrEmpty, path, value?] order. It is the
// exact inverse of Decode.
func Encode(record Record) (encoded []byte, err error) {
	var values [][]byte
	switch record := record.(type) {
	case NullRecord:
		values = [][]byte{{}}
	case LeafRecord:
		values = [][]byte{{}, record.Path, record.Value}
	case BranchRecord:
		values = [][]byte{record.Hash.Bytes(), record.Path}
	default:
		// this is a programming error, Record is a closed set.
		panic(fmt.Sprintf("not implemented for record type %T", record))
	}

	encoded, err = rlp.EncodeToBytes(values)
	if err != nil {
		return nil, fmt.Errorf("cannot encode record values: %w", err)
	}

	return encoded, nil
}
