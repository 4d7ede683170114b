// util_test.go: tests for token list helpers
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package mnemo

import (
	"reflect"
	"testing"
)

// TestFlatten tests recursive token list flattening
func TestFlatten(t *testing.T) {
	tests := []struct {
		name  string
		input []any
		want  []any
	}{
		{"nil", nil, []any{}},
		{"empty", []any{}, []any{}},
		{"flat", []any{1, 2, 3}, []any{1, 2, 3}},
		{"one level", []any{1, []any{2, 3}, 4}, []any{1, 2, 3, 4}},
		{"deep nesting", []any{[]any{[]any{[]any{"a"}}, "b"}, "c"}, []any{"a", "b", "c"}},
		{"empty sublists", []any{[]any{}, 1, []any{[]any{}}}, []any{1}},
		{"mixed types", []any{"x", []any{1, []any{true}}}, []any{"x", 1, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Flatten(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Flatten(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
