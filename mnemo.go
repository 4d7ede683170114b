// Package mnemo provides bounded memoization caches and character-set
// range compaction for parser engines.
//
// Example usage:
//
//	memo, err := mnemo.New[string, int](mnemo.Config{
//		Policy:   mnemo.PolicyFIFO,
//		Capacity: 128,
//	})
//
//	memo.Set("key", 42)
//	value, found := memo.Get("key")
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package mnemo

const (
	// Version of the Mnemo library
	Version = "v0.1.0-dev"

	// DefaultPositionCacheSize is the bound of the memos backing PositionIndex
	DefaultPositionCacheSize = 128
)
