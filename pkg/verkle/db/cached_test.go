// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package db

import (
	"testing"

	"github.com/dragan2234/besu-verkle-trie/lib/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingGetter struct {
	calls   int
	encoded []byte
	err     error
}

func (c *countingGetter) GetNode(_ []byte, _ common.Hash) ([]byte, error) {
	c.calls++
	return c.encoded, c.err
}

func Test_CachedNodeGetter(t *testing.T) {
	t.Parallel()

	const maxSize = 1024 * 1024

	t.Run("second_fetch_served_from_cache", func(t *testing.T) {
		t.Parallel()

		inner := &countingGetter{encoded: []byte{0xaa}}
		cached := NewCachedNodeGetter(inner, maxSize)

		encoded, err := cached.GetNode([]byte{1}, common.Hash{2})
		require.NoError(t, err)
		assert.Equal(t, []byte{0xaa}, encoded)
		assert.Equal(t, 1, inner.calls)

		encoded, err = cached.GetNode([]byte{1}, common.Hash{2})
		require.NoError(t, err)
		assert.Equal(t, []byte{0xaa}, encoded)
		assert.Equal(t, 1, inner.calls)
	})

	t.Run("misses_not_cached", func(t *testing.T) {
		t.Parallel()

		inner := &countingGetter{}
		cached := NewCachedNodeGetter(inner, maxSize)

		encoded, err := cached.GetNode([]byte{1}, common.Hash{2})
		require.NoError(t, err)
		assert.Nil(t, encoded)

		_, _ = cached.GetNode([]byte{1}, common.Hash{2})
		assert.Equal(t, 2, inner.calls)
	})
}
