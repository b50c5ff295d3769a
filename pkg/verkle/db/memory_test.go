// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package db

import (
	"testing"

	"github.com/dragan2234/besu-verkle-trie/lib/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_MemoryDB(t *testing.T) {
	t.Parallel()

	mdb := NewMemoryDB()

	location := []byte{1, 2}
	hash := common.Hash{3}

	// missing record
	encoded, err := mdb.GetNode(location, hash)
	require.NoError(t, err)
	assert.Nil(t, encoded)

	// put and get
	err = mdb.PutNode(location, hash, []byte{0xaa, 0xbb})
	require.NoError(t, err)

	encoded, err = mdb.GetNode(location, hash)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xaa, 0xbb}, encoded)

	// same hash at another location is still missing
	encoded, err = mdb.GetNode([]byte{9}, hash)
	require.NoError(t, err)
	assert.Nil(t, encoded)
}
