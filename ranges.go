// ranges.go: character-set compaction into character-class range syntax
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package mnemo

import (
	"slices"
	"strings"
)

// CollapseToRanges compacts an arbitrary collection of characters into the
// shortest equivalent run-length token usable inside a character class.
//
// Duplicates and input order are irrelevant: the output depends only on set
// membership. The deduplicated characters are sorted by code point and
// partitioned into maximal runs of consecutive code points. A run of one
// emits the character, a run of two emits both characters (a dash would not
// be shorter), and a run of three or more emits "first-last". When the
// distinct count is three or fewer, run detection is skipped entirely and
// the characters are emitted individually.
//
// With escape enabled, the class metacharacters \ ^ - [ ] are
// backslash-escaped wherever they appear, and newline and tab are rendered
// as the two-character sequences \n and \t.
//
// The empty set collapses to the empty string; no input is an error.
func CollapseToRanges(chars string, escape bool) string {
	esc := escapeRangeRune
	if !escape {
		esc = func(r rune) string { return string(r) }
	}

	runes := dedupeSortRunes(chars)

	var b strings.Builder
	if len(runes) <= 3 {
		for _, r := range runes {
			b.WriteString(esc(r))
		}
		return b.String()
	}

	for i := 0; i < len(runes); {
		j := i
		for j+1 < len(runes) && runes[j+1] == runes[j]+1 {
			j++
		}
		first, last := runes[i], runes[j]
		switch {
		case first == last:
			b.WriteString(esc(first))
		case last == first+1:
			// A two-element run is not worth a dash.
			b.WriteString(esc(first))
			b.WriteString(esc(last))
		default:
			b.WriteString(esc(first))
			b.WriteByte('-')
			b.WriteString(esc(last))
		}
		i = j + 1
	}
	return b.String()
}

// EscapeRangeChars escapes every character of s for safe embedding in a
// character class: \ ^ - [ ] gain a backslash, newline and tab become the
// two-character sequences \n and \t. All other characters pass through.
func EscapeRangeChars(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteString(escapeRangeRune(r))
	}
	return b.String()
}

// escapeRangeRune renders a single character in character-class-safe form.
func escapeRangeRune(r rune) string {
	switch r {
	case '\\', '^', '-', '[', ']':
		return "\\" + string(r)
	case '\n':
		return `\n`
	case '\t':
		return `\t`
	default:
		return string(r)
	}
}

// dedupeSortRunes returns the distinct runes of s in ascending code-point order.
func dedupeSortRunes(s string) []rune {
	seen := make(map[rune]struct{}, len(s))
	runes := make([]rune, 0, len(s))
	for _, r := range s {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		runes = append(runes, r)
	}
	slices.Sort(runes)
	return runes
}
