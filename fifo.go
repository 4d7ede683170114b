// fifo.go: insertion-order bounded memo implementation
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package mnemo

import "container/list"

// fifoEntry is the list payload for fifoMemo.
type fifoEntry[K comparable, V any] struct {
	key   K
	value V
}

// fifoMemo implements Memo with strict insertion-order eviction.
// The list front is the newest insertion, the back the oldest. Get never
// touches the list: access has no effect on eviction order. Setting an
// existing key updates the value in place and keeps its original position.
type fifoMemo[K comparable, V any] struct {
	capacity int
	order    *list.List
	index    map[K]*list.Element
	logger   Logger
	clock    TimeProvider
	metrics  MetricsCollector
	stats    counters
}

func newFIFOMemo[K comparable, V any](cfg Config) *fifoMemo[K, V] {
	return &fifoMemo[K, V]{
		capacity: cfg.Capacity,
		order:    list.New(),
		index:    make(map[K]*list.Element),
		logger:   cfg.Logger,
		clock:    cfg.TimeProvider,
		metrics:  cfg.MetricsCollector,
	}
}

// Get retrieves a value without reordering entries.
func (m *fifoMemo[K, V]) Get(key K) (V, bool) {
	start := m.clock.Now()
	if el, ok := m.index[key]; ok {
		m.stats.hits++
		m.metrics.RecordGet(m.clock.Now()-start, true)
		return el.Value.(*fifoEntry[K, V]).value, true
	}
	m.stats.misses++
	m.metrics.RecordGet(m.clock.Now()-start, false)
	var zero V
	return zero, false
}

// Set stores a key-value pair, evicting oldest-inserted entries while the
// memo exceeds its capacity.
func (m *fifoMemo[K, V]) Set(key K, value V) {
	start := m.clock.Now()
	if el, ok := m.index[key]; ok {
		el.Value.(*fifoEntry[K, V]).value = value
	} else {
		m.index[key] = m.order.PushFront(&fifoEntry[K, V]{key: key, value: value})
		for m.order.Len() > m.capacity {
			m.evictOldest()
		}
	}
	m.stats.sets++
	m.metrics.RecordSet(m.clock.Now() - start)
}

// Delete removes a key outright, with no retention. Absent keys are a no-op.
func (m *fifoMemo[K, V]) Delete(key K) {
	start := m.clock.Now()
	if el, ok := m.index[key]; ok {
		m.order.Remove(el)
		delete(m.index, key)
		m.stats.deletes++
	}
	m.metrics.RecordDelete(m.clock.Now() - start)
}

// Has checks key presence without recording a hit or miss.
func (m *fifoMemo[K, V]) Has(key K) bool {
	_, ok := m.index[key]
	return ok
}

// Len returns the current number of entries.
func (m *fifoMemo[K, V]) Len() int {
	return len(m.index)
}

// Clear removes all entries and resets statistics.
func (m *fifoMemo[K, V]) Clear() {
	m.order.Init()
	m.index = make(map[K]*list.Element)
	m.stats.reset()
	m.logger.Debug("memo cleared", "policy", PolicyFIFO.String())
}

// Stats returns memo statistics.
func (m *fifoMemo[K, V]) Stats() MemoStats {
	return MemoStats{
		Hits:      m.stats.hits,
		Misses:    m.stats.misses,
		Sets:      m.stats.sets,
		Deletes:   m.stats.deletes,
		Evictions: m.stats.evictions,
		Size:      len(m.index),
		Capacity:  m.capacity,
	}
}

// evictOldest discards the oldest-inserted entry.
func (m *fifoMemo[K, V]) evictOldest() {
	back := m.order.Back()
	if back == nil {
		return
	}
	entry := back.Value.(*fifoEntry[K, V])
	m.order.Remove(back)
	delete(m.index, entry.key)
	m.stats.evictions++
	m.metrics.RecordEviction()
	m.logger.Debug("memo entry evicted", "policy", PolicyFIFO.String())
}
