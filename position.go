// position.go: memoized offset to line/column lookup
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package mnemo

import "strings"

// sourcePos keys the position memos: a byte offset into a source text.
type sourcePos struct {
	loc int
	src string
}

// PositionIndex answers offset-to-position queries over source texts.
// Line and column numbers are 1-based. All answers are pure functions of
// (offset, text); the index memoizes them through bounded FIFO memos so
// that the repeated lookups typical of diagnostics come for free.
//
// Like the memos backing it, a PositionIndex is not safe for concurrent use.
type PositionIndex struct {
	lineno *Memoizer[sourcePos, int]
	column *Memoizer[sourcePos, int]
	line   *Memoizer[sourcePos, string]
}

// NewPositionIndex creates a position index with DefaultPositionCacheSize
// entries memoized per query kind.
func NewPositionIndex() *PositionIndex {
	return NewPositionIndexSize(DefaultPositionCacheSize)
}

// NewPositionIndexSize creates a position index whose per-query memos hold
// up to size entries. Sizes below 1 fall back to DefaultPositionCacheSize.
func NewPositionIndexSize(size int) *PositionIndex {
	if size < 1 {
		size = DefaultPositionCacheSize
	}
	cfg := Config{Policy: PolicyFIFO, Capacity: size}
	// The configuration is fixed and valid, so the fallible constructor
	// is bypassed.
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return &PositionIndex{
		lineno: newMemoizer[sourcePos, int](newFIFOMemo[sourcePos, int](cfg), computeLineNumber),
		column: newMemoizer[sourcePos, int](newFIFOMemo[sourcePos, int](cfg), computeColumn),
		line:   newMemoizer[sourcePos, string](newFIFOMemo[sourcePos, string](cfg), computeLine),
	}
}

// LineNumber returns the 1-based line number containing byte offset loc
// within s, counting newlines as line separators.
func (p *PositionIndex) LineNumber(loc int, s string) int {
	return p.lineno.GetOrCompute(sourcePos{loc: loc, src: s})
}

// Column returns the 1-based column of byte offset loc within s, counting
// newlines as line separators.
func (p *PositionIndex) Column(loc int, s string) int {
	return p.column.GetOrCompute(sourcePos{loc: loc, src: s})
}

// Line returns the full text of the line containing byte offset loc
// within s, without the surrounding newlines.
func (p *PositionIndex) Line(loc int, s string) string {
	return p.line.GetOrCompute(sourcePos{loc: loc, src: s})
}

// Reset empties the position memos. Intended for test isolation.
func (p *PositionIndex) Reset() {
	p.lineno.Reset()
	p.column.Reset()
	p.line.Reset()
}

func computeLineNumber(pos sourcePos) int {
	return strings.Count(pos.src[:clampOffset(pos.loc, pos.src)], "\n") + 1
}

func computeColumn(pos sourcePos) int {
	s, loc := pos.src, pos.loc
	if loc > 0 && loc < len(s) && s[loc-1] == '\n' {
		return 1
	}
	return loc - strings.LastIndex(s[:clampOffset(loc, s)], "\n")
}

func computeLine(pos sourcePos) string {
	s := pos.src
	loc := clampOffset(pos.loc, s)
	lastCR := strings.LastIndex(s[:loc], "\n")
	if next := strings.Index(s[loc:], "\n"); next >= 0 {
		return s[lastCR+1 : loc+next]
	}
	return s[lastCR+1:]
}

// clampOffset keeps slicing in bounds for offsets at or past the end of text.
func clampOffset(loc int, s string) int {
	if loc < 0 {
		return 0
	}
	if loc > len(s) {
		return len(s)
	}
	return loc
}
