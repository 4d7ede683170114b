// memoize.go: cache-aside wrapper for pure keyed computations
//
// This file implements Memoizer, an explicitly owned memo wrapped around a
// pure function. It replaces implicit process-lifetime caches: the caller
// owns the memo, chooses its eviction policy, and can reset it for test
// isolation.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package mnemo

// Memoizer wraps a pure function with a memo so repeated calls with the
// same key reuse the previously computed result.
//
// The compute function must be pure with respect to its key: Memoizer may
// serve any call from the memo, and never re-runs compute for a cached key.
// Like the memo family it wraps, Memoizer is not safe for concurrent use.
type Memoizer[K comparable, V any] struct {
	compute func(K) V
	memo    Memo[K, V]
}

// NewMemoizer creates a memoizer over compute, backed by a memo built
// from cfg.
//
// Returns MNEMO_INVALID_COMPUTE if compute is nil, or a configuration
// error if cfg is invalid.
func NewMemoizer[K comparable, V any](cfg Config, compute func(K) V) (*Memoizer[K, V], error) {
	if compute == nil {
		return nil, NewErrInvalidCompute("NewMemoizer")
	}
	memo, err := New[K, V](cfg)
	if err != nil {
		return nil, err
	}
	return &Memoizer[K, V]{compute: compute, memo: memo}, nil
}

// newMemoizer wraps an already-constructed memo. Internal construction
// path for components with fixed, known-valid configurations.
func newMemoizer[K comparable, V any](memo Memo[K, V], compute func(K) V) *Memoizer[K, V] {
	return &Memoizer[K, V]{compute: compute, memo: memo}
}

// GetOrCompute returns the memoized value for key, computing and caching
// it on a miss.
func (m *Memoizer[K, V]) GetOrCompute(key K) V {
	if value, found := m.memo.Get(key); found {
		return value
	}
	value := m.compute(key)
	m.memo.Set(key, value)
	return value
}

// Release logically releases a key from the backing memo. Under
// PolicyLRURetained the result stays available in the retired tier.
func (m *Memoizer[K, V]) Release(key K) {
	m.memo.Delete(key)
}

// Reset empties the backing memo. Intended for test isolation and for
// callers that invalidate results wholesale.
func (m *Memoizer[K, V]) Reset() {
	m.memo.Clear()
}

// Stats returns statistics of the backing memo.
func (m *Memoizer[K, V]) Stats() MemoStats {
	return m.memo.Stats()
}
