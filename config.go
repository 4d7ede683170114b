// config.go: configuration for Mnemo
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package mnemo

import (
	"github.com/agilira/go-timecache"
)

// Policy selects the eviction discipline of a memo.
type Policy int

const (
	// PolicyUnbounded keeps every entry; no eviction ever happens.
	PolicyUnbounded Policy = iota

	// PolicyFIFO bounds the memo to Capacity entries and evicts in strict
	// insertion order. Get never reorders entries.
	PolicyFIFO

	// PolicyLRURetained keeps an unbounded active tier plus a bounded,
	// recency-ordered retired tier fed by Delete. Capacity bounds the
	// retired tier only.
	PolicyLRURetained
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case PolicyUnbounded:
		return "unbounded"
	case PolicyFIFO:
		return "fifo"
	case PolicyLRURetained:
		return "lru-retained"
	default:
		return "unknown"
	}
}

// Config holds configuration parameters for a memo.
type Config struct {
	// Policy is the eviction discipline. Default: PolicyUnbounded.
	Policy Policy

	// Capacity is the entry bound for bounded policies.
	// Must be > 0 for PolicyFIFO and PolicyLRURetained; ignored by
	// PolicyUnbounded. There is no default: a non-positive capacity for a
	// bounded policy is a configuration error, not a value to clamp.
	Capacity int

	// Logger is used for debugging and monitoring.
	// If nil, NoOpLogger is used. Default: NoOpLogger.
	Logger Logger

	// TimeProvider provides current time for metric latency measurements.
	// If nil, a default implementation is used. Default: system time.
	TimeProvider TimeProvider

	// MetricsCollector is used for collecting operation metrics
	// (latencies, hit/miss rates). If nil, NoOpMetricsCollector is used
	// (zero overhead). Default: NoOpMetricsCollector.
	MetricsCollector MetricsCollector
}

// Validate checks configuration parameters and applies defaults for the
// ambient fields (Logger, TimeProvider, MetricsCollector).
//
// Unlike the ambient fields, Policy and Capacity are validated strictly:
// an unknown policy or a non-positive capacity for a bounded policy returns
// a configuration error. This method is called automatically by New, so you
// typically don't need to call it manually.
func (c *Config) Validate() error {
	if c.Logger == nil {
		c.Logger = NoOpLogger{}
	}

	if c.TimeProvider == nil {
		c.TimeProvider = &systemTimeProvider{}
	}

	if c.MetricsCollector == nil {
		c.MetricsCollector = NoOpMetricsCollector{}
	}

	switch c.Policy {
	case PolicyUnbounded:
		// No bound to validate.
	case PolicyFIFO, PolicyLRURetained:
		if c.Capacity <= 0 {
			return NewErrInvalidCapacity(c.Policy, c.Capacity)
		}
	default:
		return NewErrInvalidPolicy(int(c.Policy))
	}

	return nil
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Policy:           PolicyUnbounded,
		Logger:           NoOpLogger{},
		TimeProvider:     &systemTimeProvider{},
		MetricsCollector: NoOpMetricsCollector{},
	}
}

// systemTimeProvider is the default time provider using go-timecache.
// This provides much faster time access compared to time.Now() with zero allocations.
type systemTimeProvider struct{}

func (t *systemTimeProvider) Now() int64 {
	return timecache.CachedTimeNano()
}
