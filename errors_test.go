// errors_test.go: tests for structured error handling
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package mnemo

import "testing"

// TestNewErrInvalidCapacity tests capacity error construction and context
func TestNewErrInvalidCapacity(t *testing.T) {
	err := NewErrInvalidCapacity(PolicyFIFO, -2)
	if err == nil {
		t.Fatal("Expected error")
	}

	if GetErrorCode(err) != ErrCodeInvalidCapacity {
		t.Errorf("Expected MNEMO_INVALID_CAPACITY, got %v", GetErrorCode(err))
	}

	ctx := GetErrorContext(err)
	if ctx == nil {
		t.Fatal("Expected error context")
	}
	if ctx["provided_capacity"] != -2 {
		t.Errorf("Expected provided_capacity=-2, got %v", ctx["provided_capacity"])
	}
	if ctx["policy"] != "fifo" {
		t.Errorf("Expected policy=fifo, got %v", ctx["policy"])
	}
}

// TestNewErrInvalidPolicy tests policy error construction
func TestNewErrInvalidPolicy(t *testing.T) {
	err := NewErrInvalidPolicy(42)
	if !IsInvalidPolicy(err) {
		t.Errorf("Expected invalid policy classification, got %v", err)
	}
	if !IsConfigError(err) {
		t.Error("Expected config error classification")
	}
}

// TestNewErrUnknownFlag tests flag error construction
func TestNewErrUnknownFlag(t *testing.T) {
	err := NewErrUnknownFlag("bogus")
	if !IsUnknownFlag(err) {
		t.Errorf("Expected unknown flag classification, got %v", err)
	}
	// Flag errors are registry failures, not configuration errors.
	if IsConfigError(err) {
		t.Error("Expected flag error outside config classification")
	}
}

// TestErrorCheckers_NilSafety tests helpers against nil and foreign errors
func TestErrorCheckers_NilSafety(t *testing.T) {
	if IsInvalidCapacity(nil) || IsInvalidPolicy(nil) || IsUnknownFlag(nil) || IsConfigError(nil) {
		t.Error("Expected all checkers false for nil")
	}
	if GetErrorCode(nil) != "" {
		t.Error("Expected empty code for nil")
	}
	if GetErrorContext(nil) != nil {
		t.Error("Expected nil context for nil")
	}
}

// TestErrorCodes_Distinct tests that declared codes do not collide
func TestErrorCodes_Distinct(t *testing.T) {
	codes := map[string]bool{}
	for _, code := range []string{
		string(ErrCodeInvalidConfig),
		string(ErrCodeInvalidCapacity),
		string(ErrCodeInvalidPolicy),
		string(ErrCodeInvalidCompute),
		string(ErrCodeUnknownFlag),
	} {
		if codes[code] {
			t.Errorf("Duplicate error code %s", code)
		}
		codes[code] = true
	}
}
