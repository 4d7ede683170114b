// flags.go: closed registry of diagnostic and compatibility flags
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package mnemo

import "sort"

// FlagDecl declares one flag of a registry's closed name set.
type FlagDecl struct {
	// Name is the flag identifier used by Enable/Disable/Enabled.
	Name string

	// Default is the flag's initial value.
	Default bool

	// Immutable pins the flag to its default. Attempts to change it are
	// logged as warnings and ignored rather than failing: mutating a
	// pinned flag is caller misuse, not a correctness hazard.
	Immutable bool
}

// FlagSet is a registry over a fixed, pre-declared set of named boolean
// flags. The name set is closed at construction: mutating an undeclared
// name is a configuration error. FlagSet is an explicit value meant to be
// constructed once and passed by reference to the components that read it,
// not process-global state.
//
// FlagSet itself is unsynchronized; see HotFlags for the file-watching
// wrapper that serializes mutations.
type FlagSet struct {
	values    map[string]bool
	immutable map[string]struct{}
	logger    Logger
}

// NewFlagSet creates a registry holding exactly the declared flags.
// A nil logger defaults to NoOpLogger. Re-declaring a name keeps the
// last declaration.
func NewFlagSet(decls []FlagDecl, logger Logger) *FlagSet {
	if logger == nil {
		logger = NoOpLogger{}
	}
	fs := &FlagSet{
		values:    make(map[string]bool, len(decls)),
		immutable: make(map[string]struct{}),
		logger:    logger,
	}
	for _, d := range decls {
		fs.values[d.Name] = d.Default
		if d.Immutable {
			fs.immutable[d.Name] = struct{}{}
		} else {
			delete(fs.immutable, d.Name)
		}
	}
	return fs
}

// Enable turns a declared flag on.
// Returns MNEMO_UNKNOWN_FLAG for names outside the declared set. Enabling
// an immutable flag logs a warning and leaves the registry unchanged.
func (fs *FlagSet) Enable(name string) error {
	return fs.set(name, true)
}

// Disable turns a declared flag off.
// Same failure modes as Enable.
func (fs *FlagSet) Disable(name string) error {
	return fs.set(name, false)
}

func (fs *FlagSet) set(name string, value bool) error {
	current, declared := fs.values[name]
	if !declared {
		return NewErrUnknownFlag(name)
	}
	if _, pinned := fs.immutable[name]; pinned {
		fs.logger.Warn("flag is immutable and cannot be overridden",
			"flag", name,
			"value", current)
		return nil
	}
	fs.values[name] = value
	return nil
}

// Enabled reports whether a flag is on. Undeclared names report false.
func (fs *FlagSet) Enabled(name string) bool {
	return fs.values[name]
}

// Names returns the declared flag names in sorted order.
func (fs *FlagSet) Names() []string {
	names := make([]string, 0, len(fs.values))
	for name := range fs.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultDiagnostics declares the parser diagnostic flags, all off by
// default, plus the immutable compatibility flag collect_all_and_tokens.
func DefaultDiagnostics() []FlagDecl {
	return []FlagDecl{
		{Name: "collect_all_and_tokens", Default: true, Immutable: true},
		{Name: "warn_multiple_tokens_in_named_alternation"},
		{Name: "warn_ungrouped_named_tokens_in_collection"},
		{Name: "warn_name_set_on_empty_forward"},
		{Name: "warn_on_parse_using_empty_forward"},
		{Name: "warn_on_assignment_to_forward"},
		{Name: "warn_on_multiple_string_args_to_oneof"},
		{Name: "enable_debug_on_named_expressions"},
	}
}
