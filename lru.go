// lru.go: two-tier retained-LRU memo implementation
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package mnemo

import "container/list"

// lruEntry is the retired-list payload for lruMemo.
type lruEntry[K comparable, V any] struct {
	key   K
	value V
}

// lruMemo implements Memo with two disjoint tiers.
//
// The active tier holds entries placed by Set. It is unbounded and fully
// exempt from capacity pressure: an active entry is never evicted, and Get
// hits on it imply no recency bookkeeping.
//
// The retired tier holds entries logically released by Delete. It is bounded
// by capacity and recency-ordered (list front is most recently used). A Get
// hit on a retired entry promotes it to the MRU position; once the tier
// exceeds capacity, least-recently-used retirees are discarded.
//
// A key is never present in both tiers at once. This is not a classical LRU
// cache: the asymmetry between the tiers is deliberate and callers rely on
// active entries being pinned.
type lruMemo[K comparable, V any] struct {
	capacity int
	active   map[K]V
	retired  *list.List
	index    map[K]*list.Element
	logger   Logger
	clock    TimeProvider
	metrics  MetricsCollector
	stats    counters
}

func newLRUMemo[K comparable, V any](cfg Config) *lruMemo[K, V] {
	return &lruMemo[K, V]{
		capacity: cfg.Capacity,
		active:   make(map[K]V),
		retired:  list.New(),
		index:    make(map[K]*list.Element),
		logger:   cfg.Logger,
		clock:    cfg.TimeProvider,
		metrics:  cfg.MetricsCollector,
	}
}

// Get retrieves a value, falling through from the active tier to the
// retired tier. A retired hit promotes the entry to most recently used;
// active hits imply no reordering.
func (m *lruMemo[K, V]) Get(key K) (V, bool) {
	start := m.clock.Now()

	if value, ok := m.active[key]; ok {
		m.stats.hits++
		m.metrics.RecordGet(m.clock.Now()-start, true)
		return value, true
	}

	if el, ok := m.index[key]; ok {
		m.retired.MoveToFront(el)
		m.stats.hits++
		m.metrics.RecordGet(m.clock.Now()-start, true)
		return el.Value.(*lruEntry[K, V]).value, true
	}

	m.stats.misses++
	m.metrics.RecordGet(m.clock.Now()-start, false)
	var zero V
	return zero, false
}

// Set places a key in the active tier, removing it from the retired tier
// first if present. Setting an already-active key overwrites its value.
func (m *lruMemo[K, V]) Set(key K, value V) {
	start := m.clock.Now()

	if el, ok := m.index[key]; ok {
		m.retired.Remove(el)
		delete(m.index, key)
	}
	m.active[key] = value

	m.stats.sets++
	m.metrics.RecordSet(m.clock.Now() - start)
}

// Delete logically releases an active key: the entry moves to the retired
// tier at the most-recently-used position, evicting least-recently-used
// retirees while the tier would exceed capacity. Deleting an absent or
// already-retired key is a no-op.
func (m *lruMemo[K, V]) Delete(key K) {
	start := m.clock.Now()

	value, ok := m.active[key]
	if !ok {
		m.metrics.RecordDelete(m.clock.Now() - start)
		return
	}
	delete(m.active, key)

	for m.retired.Len() >= m.capacity {
		m.evictRetired()
	}
	m.index[key] = m.retired.PushFront(&lruEntry[K, V]{key: key, value: value})

	m.stats.deletes++
	m.metrics.RecordDelete(m.clock.Now() - start)
}

// Has checks membership in either tier without promoting recency.
func (m *lruMemo[K, V]) Has(key K) bool {
	if _, ok := m.active[key]; ok {
		return true
	}
	_, ok := m.index[key]
	return ok
}

// Len returns the number of entries across both tiers.
func (m *lruMemo[K, V]) Len() int {
	return len(m.active) + m.retired.Len()
}

// Clear empties both tiers and resets statistics.
func (m *lruMemo[K, V]) Clear() {
	m.active = make(map[K]V)
	m.retired.Init()
	m.index = make(map[K]*list.Element)
	m.stats.reset()
	m.logger.Debug("memo cleared", "policy", PolicyLRURetained.String())
}

// Stats returns memo statistics. Size spans both tiers; Capacity bounds the
// retired tier only.
func (m *lruMemo[K, V]) Stats() MemoStats {
	return MemoStats{
		Hits:      m.stats.hits,
		Misses:    m.stats.misses,
		Sets:      m.stats.sets,
		Deletes:   m.stats.deletes,
		Evictions: m.stats.evictions,
		Size:      len(m.active) + m.retired.Len(),
		Capacity:  m.capacity,
	}
}

// evictRetired discards the least-recently-used retired entry.
func (m *lruMemo[K, V]) evictRetired() {
	back := m.retired.Back()
	if back == nil {
		return
	}
	entry := back.Value.(*lruEntry[K, V])
	m.retired.Remove(back)
	delete(m.index, entry.key)
	m.stats.evictions++
	m.metrics.RecordEviction()
	m.logger.Debug("retired memo entry evicted", "policy", PolicyLRURetained.String())
}
