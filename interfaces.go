// interfaces.go: public interfaces for Mnemo
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package mnemo

// Memo represents an in-memory memoization cache.
// K must be comparable (usable as a map key). V can be any type, including
// types whose zero value is a legitimate cached result: presence is always
// reported through the second return value of Get, never inferred from the
// value itself.
//
// Memo implementations are NOT safe for concurrent use. Callers that share a
// memo across goroutines must provide their own locking.
type Memo[K comparable, V any] interface {
	// Get retrieves a value from the memo.
	// Returns the value and true if present, the zero value and false otherwise.
	// A miss is a normal result, not an error.
	Get(key K) (value V, found bool)

	// Set stores a key-value pair in the memo.
	// Set always succeeds; bounded policies evict other entries as needed.
	Set(key K, value V)

	// Delete releases a key from the memo.
	// For PolicyLRURetained this is a logical release: the entry moves from the
	// active tier to the bounded retired tier, where it may still be served by
	// Get. For other policies the entry is removed outright. Deleting an absent
	// key is a no-op.
	Delete(key K)

	// Has checks whether a key is present without retrieving the value.
	// Unlike Get, Has never promotes a retired entry's recency.
	Has(key K) bool

	// Len returns the current number of entries, across all tiers.
	Len() int

	// Clear removes all entries and resets internal ordering state.
	// Statistics counters are reset as well.
	Clear()

	// Stats returns memo usage statistics.
	Stats() MemoStats
}

// MemoStats provides statistics about memo behavior.
type MemoStats struct {
	// Hits is the number of Get operations that found an entry
	Hits uint64

	// Misses is the number of Get operations that found nothing
	Misses uint64

	// Sets is the number of Set operations
	Sets uint64

	// Deletes is the number of Delete operations that released an entry
	Deletes uint64

	// Evictions is the number of entries discarded under capacity pressure
	Evictions uint64

	// Size is the current number of entries, across all tiers
	Size int

	// Capacity is the configured bound (0 for PolicyUnbounded; for
	// PolicyLRURetained it bounds the retired tier only)
	Capacity int
}

// HitRatio returns the memo hit ratio as a percentage (0-100).
// Returns 0.0 if no Get operations have been performed yet.
// Formula: (Hits / (Hits + Misses)) * 100
func (s MemoStats) HitRatio() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total) * 100
}

// Logger defines a minimal logging interface with zero overhead.
// Implementations should use structured logging and be allocation-free.
type Logger interface {
	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, keyvals ...interface{})

	// Info logs an info message with optional key-value pairs.
	Info(msg string, keyvals ...interface{})

	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, keyvals ...interface{})

	// Error logs an error message with optional key-value pairs.
	Error(msg string, keyvals ...interface{})
}

// NoOpLogger is a logger that does nothing. Used as default to avoid nil checks.
type NoOpLogger struct{}

// Debug does nothing (no-op implementation).
func (NoOpLogger) Debug(msg string, keyvals ...interface{}) {}

// Info does nothing (no-op implementation).
func (NoOpLogger) Info(msg string, keyvals ...interface{}) {}

// Warn does nothing (no-op implementation).
func (NoOpLogger) Warn(msg string, keyvals ...interface{}) {}

// Error does nothing (no-op implementation).
func (NoOpLogger) Error(msg string, keyvals ...interface{}) {}

// TimeProvider provides current time with caching for performance.
// This interface allows injecting optimized time implementations.
type TimeProvider interface {
	// Now returns the current time in nanoseconds since epoch.
	// This method must be very fast and allocation-free.
	Now() int64
}

// MetricsCollector defines an interface for collecting memo operation metrics.
// Implementations can send metrics to Prometheus, DataDog, StatsD, or other
// monitoring systems. All methods must be fast and allocation-free; they run
// inline on the operation path.
type MetricsCollector interface {
	// RecordGet records a Get operation with its latency and hit/miss result.
	RecordGet(latencyNs int64, hit bool)

	// RecordSet records a Set operation with its latency.
	RecordSet(latencyNs int64)

	// RecordDelete records a Delete operation with its latency.
	RecordDelete(latencyNs int64)

	// RecordEviction records a capacity-pressure eviction event.
	RecordEviction()
}

// NoOpMetricsCollector is a metrics collector that does nothing.
// Used as default to avoid nil checks and ensure zero overhead.
// All methods are inlined by the compiler.
type NoOpMetricsCollector struct{}

// RecordGet does nothing. Inlined by compiler.
func (NoOpMetricsCollector) RecordGet(latencyNs int64, hit bool) {}

// RecordSet does nothing. Inlined by compiler.
func (NoOpMetricsCollector) RecordSet(latencyNs int64) {}

// RecordDelete does nothing. Inlined by compiler.
func (NoOpMetricsCollector) RecordDelete(latencyNs int64) {}

// RecordEviction does nothing. Inlined by compiler.
func (NoOpMetricsCollector) RecordEviction() {}
