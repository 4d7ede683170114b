// memo_test.go: tests for memo construction and unbounded policy
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package mnemo

import "testing"

// TestNew_PolicyDispatch tests that New builds every policy
func TestNew_PolicyDispatch(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"unbounded", Config{Policy: PolicyUnbounded}},
		{"fifo", Config{Policy: PolicyFIFO, Capacity: 4}},
		{"lru-retained", Config{Policy: PolicyLRURetained, Capacity: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			memo, err := New[string, int](tt.cfg)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			memo.Set("k", 1)
			if value, found := memo.Get("k"); !found || value != 1 {
				t.Errorf("Expected 1, got %v (found=%v)", value, found)
			}
		})
	}
}

// TestNew_InvalidCapacity tests rejection of non-positive bounds
func TestNew_InvalidCapacity(t *testing.T) {
	for _, policy := range []Policy{PolicyFIFO, PolicyLRURetained} {
		for _, capacity := range []int{0, -1, -100} {
			_, err := New[string, int](Config{Policy: policy, Capacity: capacity})
			if err == nil {
				t.Errorf("Expected error for %s capacity=%d", policy, capacity)
				continue
			}
			if !IsInvalidCapacity(err) {
				t.Errorf("Expected MNEMO_INVALID_CAPACITY, got %v", GetErrorCode(err))
			}
			if !IsConfigError(err) {
				t.Errorf("Expected config error classification for %v", err)
			}
		}
	}
}

// TestNew_InvalidPolicy tests rejection of unknown policies
func TestNew_InvalidPolicy(t *testing.T) {
	_, err := New[string, int](Config{Policy: Policy(99), Capacity: 1})
	if err == nil {
		t.Fatal("Expected error for unknown policy")
	}
	if !IsInvalidPolicy(err) {
		t.Errorf("Expected MNEMO_INVALID_POLICY, got %v", GetErrorCode(err))
	}
}

// TestUnbounded_BasicOperations tests map semantics of the unbounded policy
func TestUnbounded_BasicOperations(t *testing.T) {
	memo, err := New[string, int](Config{Policy: PolicyUnbounded})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if _, found := memo.Get("missing"); found {
		t.Error("Expected miss on empty memo")
	}

	memo.Set("one", 1)
	memo.Set("two", 2)
	memo.Set("one", 11) // overwrite

	if value, found := memo.Get("one"); !found || value != 11 {
		t.Errorf("Expected 11, got %v (found=%v)", value, found)
	}
	if memo.Len() != 2 {
		t.Errorf("Expected 2 entries, got %d", memo.Len())
	}
}

// TestUnbounded_NoEviction tests that the unbounded policy never evicts
func TestUnbounded_NoEviction(t *testing.T) {
	memo, err := New[int, int](Config{Policy: PolicyUnbounded})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	const n = 10_000
	for i := 0; i < n; i++ {
		memo.Set(i, i)
	}
	if memo.Len() != n {
		t.Fatalf("Expected %d entries, got %d", n, memo.Len())
	}
	for i := 0; i < n; i++ {
		if value, found := memo.Get(i); !found || value != i {
			t.Fatalf("Expected %d, got %v (found=%v)", i, value, found)
		}
	}
	if memo.Stats().Evictions != 0 {
		t.Errorf("Expected zero evictions, got %d", memo.Stats().Evictions)
	}
}

// TestUnbounded_ZeroValueDistinctFromAbsent tests that a stored zero value
// is reported as found
func TestUnbounded_ZeroValueDistinctFromAbsent(t *testing.T) {
	memo, err := New[string, string](Config{Policy: PolicyUnbounded})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	memo.Set("empty", "")

	value, found := memo.Get("empty")
	if !found {
		t.Fatal("Expected stored empty value to be found")
	}
	if value != "" {
		t.Errorf("Expected empty string, got %q", value)
	}

	if _, found := memo.Get("absent"); found {
		t.Error("Expected absent key to be a miss")
	}
}

// TestUnbounded_DeleteAndClear tests direct removal and clearing
func TestUnbounded_DeleteAndClear(t *testing.T) {
	memo, err := New[string, int](Config{Policy: PolicyUnbounded})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	memo.Set("a", 1)
	memo.Set("b", 2)

	memo.Delete("a")
	if memo.Has("a") {
		t.Error("Expected a to be removed outright")
	}
	memo.Delete("a") // absent key is a no-op

	memo.Clear()
	if memo.Len() != 0 {
		t.Errorf("Expected empty memo after Clear, got %d entries", memo.Len())
	}
	if _, found := memo.Get("b"); found {
		t.Error("Expected b to be gone after Clear")
	}
}

// TestMemo_Stats tests hit/miss accounting and HitRatio
func TestMemo_Stats(t *testing.T) {
	memo, err := New[string, int](Config{Policy: PolicyUnbounded})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if ratio := memo.Stats().HitRatio(); ratio != 0 {
		t.Errorf("Expected 0 hit ratio before any Get, got %f", ratio)
	}

	memo.Set("k", 1)
	memo.Get("k")       // hit
	memo.Get("missing") // miss
	memo.Get("k")       // hit

	stats := memo.Stats()
	if stats.Hits != 2 || stats.Misses != 1 {
		t.Errorf("Expected hits=2 misses=1, got hits=%d misses=%d", stats.Hits, stats.Misses)
	}
	if stats.Sets != 1 {
		t.Errorf("Expected sets=1, got %d", stats.Sets)
	}
	if ratio := stats.HitRatio(); ratio < 66.6 || ratio > 66.7 {
		t.Errorf("Expected hit ratio ~66.67, got %f", ratio)
	}

	memo.Clear()
	if memo.Stats().Hits != 0 {
		t.Error("Expected stats reset after Clear")
	}
}

// TestMemo_StructKeys tests composite comparable keys
func TestMemo_StructKeys(t *testing.T) {
	type packratKey struct {
		loc     int
		expr    string
		callPre bool
	}

	memo, err := New[packratKey, []string](Config{Policy: PolicyFIFO, Capacity: 8})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	k1 := packratKey{loc: 10, expr: "ident", callPre: true}
	k2 := packratKey{loc: 10, expr: "ident", callPre: false}

	memo.Set(k1, []string{"a"})
	memo.Set(k2, []string{"b"})

	if value, found := memo.Get(k1); !found || value[0] != "a" {
		t.Errorf("Expected [a], got %v (found=%v)", value, found)
	}
	if value, found := memo.Get(k2); !found || value[0] != "b" {
		t.Errorf("Expected [b], got %v (found=%v)", value, found)
	}
}
