// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package db

import (
	"errors"
	"fmt"

	"github.com/dragan2234/besu-verkle-trie/lib/common"
	"github.com/prometheus/client_golang/prometheus"
)

// MeteredNodeGetter wraps a node getter and counts record lookups
// with prometheus counters.
type MeteredNodeGetter struct {
	getter         NodeGetter
	fetchedCounter prometheus.Counter
	missingCounter prometheus.Counter
}

// NewMeteredNodeGetter wraps the given getter with prometheus
// lookup counters.
func NewMeteredNodeGetter(getter NodeGetter) (metered *MeteredNodeGetter, err error) {
	metered = &MeteredNodeGetter{
		getter: getter,
	}
	err = metered.setupDefaults()
	if err != nil {
		return nil, err
	}

	return metered, nil
}

func (m *MeteredNodeGetter) setupDefaults() (err error) {
	collectorsToRegister := map[string]prometheus.Collector{}
	if m.fetchedCounter == nil {
		m.fetchedCounter = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "verkle_storage",
			Name:      "nodes_fetched_total",
			Help:      "total number of node records found in the store",
		})
		collectorsToRegister["fetched"] = m.fetchedCounter
	}

	if m.missingCounter == nil {
		m.missingCounter = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "verkle_storage",
			Name:      "nodes_missing_total",
			Help:      "total number of node record lookups finding no record",
		})
		collectorsToRegister["missing"] = m.missingCounter
	}

	for collectorName, collectorToRegister := range collectorsToRegister {
		err = prometheus.Register(collectorToRegister)
		if err != nil && !errors.As(err, &prometheus.AlreadyRegisteredError{}) {
			return fmt.Errorf("cannot register %s counter: %w", collectorName, err)
		}
	}

	return nil
}

// GetNode defers to the wrapped getter and counts the outcome.
func (m *MeteredNodeGetter) GetNode(location []byte, hash common.Hash) (
	encoded []byte, err error) {
	encoded, err = m.getter.GetNode(location, hash)
	if err != nil {
		return nil, err
	}

	if encoded == nil {
		m.missingCounter.Inc()
		return nil, nil
	}

	m.fetchedCounter.Inc()
	return encoded, nil
}
