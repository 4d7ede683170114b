// errors.go: structured error handling for mnemo operations
//
// This file provides structured error types using the go-errors library,
// enabling rich error context, categorization, and standardized error codes
// for memo construction and flag registry operations.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package mnemo

import (
	goerrors "errors"

	"github.com/agilira/go-errors"
)

// Error codes for mnemo operations
const (
	// Configuration errors (1xxx)
	ErrCodeInvalidConfig   errors.ErrorCode = "MNEMO_INVALID_CONFIG"
	ErrCodeInvalidCapacity errors.ErrorCode = "MNEMO_INVALID_CAPACITY"
	ErrCodeInvalidPolicy   errors.ErrorCode = "MNEMO_INVALID_POLICY"
	ErrCodeInvalidCompute  errors.ErrorCode = "MNEMO_INVALID_COMPUTE"

	// Flag registry errors (2xxx)
	ErrCodeUnknownFlag errors.ErrorCode = "MNEMO_UNKNOWN_FLAG"
)

// Common error messages
const (
	msgInvalidCapacity = "invalid capacity: must be greater than 0 for bounded policies"
	msgInvalidPolicy   = "invalid policy: must be one of unbounded, fifo, lru-retained"
	msgInvalidCompute  = "compute function cannot be nil"
	msgUnknownFlag     = "no such flag in registry"
)

// =============================================================================
// CONFIGURATION ERRORS
// =============================================================================

// NewErrInvalidCapacity creates an error for a non-positive bound on a
// bounded policy.
func NewErrInvalidCapacity(policy Policy, capacity int) error {
	return errors.NewWithContext(ErrCodeInvalidCapacity, msgInvalidCapacity, map[string]interface{}{
		"policy":            policy.String(),
		"provided_capacity": capacity,
		"minimum_required":  1,
	})
}

// NewErrInvalidPolicy creates an error for an unknown eviction policy.
func NewErrInvalidPolicy(policy int) error {
	return errors.NewWithContext(ErrCodeInvalidPolicy, msgInvalidPolicy, map[string]interface{}{
		"provided_policy": policy,
	})
}

// NewErrInvalidCompute creates an error when a memoizer compute function is nil.
func NewErrInvalidCompute(operation string) error {
	return errors.NewWithField(ErrCodeInvalidCompute, msgInvalidCompute, "operation", operation)
}

// =============================================================================
// FLAG REGISTRY ERRORS
// =============================================================================

// NewErrUnknownFlag creates an error for a flag name outside the registry's
// closed set of declared names.
func NewErrUnknownFlag(name string) error {
	return errors.NewWithField(ErrCodeUnknownFlag, msgUnknownFlag, "flag", name)
}

// =============================================================================
// ERROR CHECKING HELPERS
// =============================================================================

// IsInvalidCapacity checks if error is an invalid capacity error
func IsInvalidCapacity(err error) bool {
	return errors.HasCode(err, ErrCodeInvalidCapacity)
}

// IsInvalidPolicy checks if error is an invalid policy error
func IsInvalidPolicy(err error) bool {
	return errors.HasCode(err, ErrCodeInvalidPolicy)
}

// IsUnknownFlag checks if error is an unknown flag error
func IsUnknownFlag(err error) bool {
	return errors.HasCode(err, ErrCodeUnknownFlag)
}

// IsConfigError checks if error is a configuration error
func IsConfigError(err error) bool {
	if err == nil {
		return false
	}
	var coder errors.ErrorCoder
	if goerrors.As(err, &coder) {
		code := coder.ErrorCode()
		return code == ErrCodeInvalidConfig || code == ErrCodeInvalidCapacity ||
			code == ErrCodeInvalidPolicy || code == ErrCodeInvalidCompute
	}
	return false
}

// GetErrorCode extracts the error code from an error
func GetErrorCode(err error) errors.ErrorCode {
	if err == nil {
		return ""
	}
	var coder errors.ErrorCoder
	if goerrors.As(err, &coder) {
		return coder.ErrorCode()
	}
	return ""
}

// GetErrorContext extracts context from an error
func GetErrorContext(err error) map[string]interface{} {
	if err == nil {
		return nil
	}
	var mnemoErr *errors.Error
	if goerrors.As(err, &mnemoErr) {
		return mnemoErr.Context
	}
	return nil
}
