// util.go: small helpers for token list handling
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package mnemo

// Flatten recursively flattens nested []any elements of a token list into
// a single flat slice, preserving order. Non-slice elements pass through
// unchanged; a nil input yields an empty slice.
func Flatten(nested []any) []any {
	flat := make([]any, 0, len(nested))
	for _, item := range nested {
		if sub, ok := item.([]any); ok {
			flat = append(flat, Flatten(sub)...)
		} else {
			flat = append(flat, item)
		}
	}
	return flat
}
