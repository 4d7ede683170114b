// memo.go: memo construction and policy dispatch
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package mnemo

// New creates a memo with the eviction discipline selected by cfg.Policy.
//
// Policies:
//   - PolicyUnbounded: plain map semantics, no eviction.
//   - PolicyFIFO: strict insertion-order eviction once Capacity is exceeded.
//   - PolicyLRURetained: unbounded active tier plus a Capacity-bounded,
//     recency-ordered retired tier fed by Delete.
//
// Returns a configuration error when a bounded policy is given a
// non-positive Capacity, or when the policy is unknown.
func New[K comparable, V any](cfg Config) (Memo[K, V], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Policy {
	case PolicyFIFO:
		return newFIFOMemo[K, V](cfg), nil
	case PolicyLRURetained:
		return newLRUMemo[K, V](cfg), nil
	default:
		return newUnboundedMemo[K, V](cfg), nil
	}
}

// counters holds plain (unsynchronized) statistics counters shared by all
// memo implementations. The memo family is single-threaded, so no atomics.
type counters struct {
	hits      uint64
	misses    uint64
	sets      uint64
	deletes   uint64
	evictions uint64
}

func (c *counters) reset() {
	*c = counters{}
}
