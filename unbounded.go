// unbounded.go: unbounded memo implementation
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package mnemo

// unboundedMemo implements Memo with direct map semantics and no eviction.
type unboundedMemo[K comparable, V any] struct {
	data    map[K]V
	logger  Logger
	clock   TimeProvider
	metrics MetricsCollector
	stats   counters
}

func newUnboundedMemo[K comparable, V any](cfg Config) *unboundedMemo[K, V] {
	return &unboundedMemo[K, V]{
		data:    make(map[K]V),
		logger:  cfg.Logger,
		clock:   cfg.TimeProvider,
		metrics: cfg.MetricsCollector,
	}
}

// Get retrieves a value. A miss is a normal (zero, false) result.
func (m *unboundedMemo[K, V]) Get(key K) (V, bool) {
	start := m.clock.Now()
	value, found := m.data[key]
	if found {
		m.stats.hits++
	} else {
		m.stats.misses++
	}
	m.metrics.RecordGet(m.clock.Now()-start, found)
	return value, found
}

// Set stores a key-value pair. It always succeeds.
func (m *unboundedMemo[K, V]) Set(key K, value V) {
	start := m.clock.Now()
	m.data[key] = value
	m.stats.sets++
	m.metrics.RecordSet(m.clock.Now() - start)
}

// Delete removes a key outright. Absent keys are a no-op.
func (m *unboundedMemo[K, V]) Delete(key K) {
	start := m.clock.Now()
	if _, ok := m.data[key]; ok {
		delete(m.data, key)
		m.stats.deletes++
	}
	m.metrics.RecordDelete(m.clock.Now() - start)
}

// Has checks key presence without recording a hit or miss.
func (m *unboundedMemo[K, V]) Has(key K) bool {
	_, ok := m.data[key]
	return ok
}

// Len returns the current number of entries.
func (m *unboundedMemo[K, V]) Len() int {
	return len(m.data)
}

// Clear removes all entries and resets statistics.
func (m *unboundedMemo[K, V]) Clear() {
	m.data = make(map[K]V)
	m.stats.reset()
	m.logger.Debug("memo cleared", "policy", PolicyUnbounded.String())
}

// Stats returns memo statistics.
func (m *unboundedMemo[K, V]) Stats() MemoStats {
	return MemoStats{
		Hits:    m.stats.hits,
		Misses:  m.stats.misses,
		Sets:    m.stats.sets,
		Deletes: m.stats.deletes,
		Size:    len(m.data),
	}
}
