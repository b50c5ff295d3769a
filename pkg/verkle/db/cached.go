// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package db

import (
	"github.com/dragan2234/besu-verkle-trie/lib/common"
	"github.com/karlseguin/ccache/v3"
)

// ccache uses 350 bytes of overhead per entry
const cacheValueOverheadSize = 350

// cacheValue is a helper alias over []byte to implement ccache.Sized
type cacheValue []byte

// Size returns the size of the cacheValue taking the overhead into account
func (cv cacheValue) Size() int64 {
	return int64(len(cv) + cacheValueOverheadSize)
}

// CachedNodeGetter wraps a node getter with a byte-size bounded
// in-memory lru cache. Only found records are cached; misses and
// errors always reach the wrapped getter.
// Consider that values are deleted asyncronously so there is a chance
// that the max size can be exceeded.
type CachedNodeGetter struct {
	getter NodeGetter
	lru    *ccache.Cache[cacheValue]
}

// NewCachedNodeGetter wraps the given getter with an lru cache of
// maxSize bytes.
func NewCachedNodeGetter(getter NodeGetter, maxSize int64) *CachedNodeGetter {
	cache := ccache.New(ccache.Configure[cacheValue]().MaxSize(maxSize))
	return &CachedNodeGetter{
		getter: getter,
		lru:    cache,
	}
}

// GetNode returns the cached record for (location, hash) if present,
// deferring to the wrapped getter otherwise.
func (c *CachedNodeGetter) GetNode(location []byte, hash common.Hash) (
	encoded []byte, err error) {
	key := string(nodeKey(location, hash))

	item := c.lru.Get(key)
	if item != nil {
		return item.Value(), nil
	}

	encoded, err = c.getter.GetNode(location, hash)
	if err != nil || encoded == nil {
		return encoded, err
	}

	c.lru.Set(key, cacheValue(encoded), 0)
	return encoded, nil
}
