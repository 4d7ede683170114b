// Package mnemo provides a small family of in-memory memoization caches
// with interchangeable eviction disciplines, together with the supporting
// pieces a parser engine needs around them: deterministic character-set
// compaction for character classes, memoized offset-to-line/column lookup,
// and a closed registry of diagnostic flags.
//
// # Overview
//
// Mnemo is built for repeated, expensive keyed computations: results are
// reused instead of recomputed, and memory stays bounded under one of three
// policies sharing a single generic contract.
//
// # Memo Family
//
// All three policies implement Memo[K, V]:
//
//   - PolicyUnbounded: direct map semantics, no eviction ever.
//   - PolicyFIFO: strict insertion-order eviction. Get never reorders
//     entries; the oldest insertion goes first regardless of access pattern.
//   - PolicyLRURetained: a two-tier memo. Set places entries in an
//     unbounded active tier that is exempt from eviction; Delete logically
//     releases an entry into a bounded, recency-ordered retired tier where
//     Get can still find it. Capacity pressure evicts only retirees, in
//     strict least-recently-used order.
//
// Basic usage:
//
//	memo, err := mnemo.New[string, Result](mnemo.Config{
//	    Policy:   mnemo.PolicyLRURetained,
//	    Capacity: 256,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	memo.Set("expr:1", result)           // active, pinned
//	memo.Delete("expr:1")                // released, retained up to capacity
//	if r, found := memo.Get("expr:1"); found {
//	    // served from the retired tier, promoted to most recently used
//	}
//
// A miss is a normal (zero, false) return, never an error. Construction is
// the only failure point: a bounded policy with a non-positive capacity is
// rejected with a structured MNEMO_INVALID_CAPACITY error rather than
// silently clamped.
//
// # Memoizer
//
// Memoizer wraps a pure function with an explicitly owned memo, replacing
// hidden process-lifetime caches with a value the caller controls and can
// reset:
//
//	fib, _ := mnemo.NewMemoizer[int, int](mnemo.Config{Policy: mnemo.PolicyUnbounded}, compute)
//	v := fib.GetOrCompute(40)
//	fib.Reset() // test isolation
//
// # Range Compaction
//
// CollapseToRanges turns an arbitrary set of characters into the most
// compact run-length token for a character class:
//
//	mnemo.CollapseToRanges("abcdef", true)  // "a-f"
//	mnemo.CollapseToRanges("ac", true)      // "ac"
//	mnemo.CollapseToRanges("", true)        // ""
//
// Output depends only on set membership, never on input order or
// multiplicity, and no input is an error.
//
// # Position Lookup
//
// PositionIndex answers 1-based line/column/line-text queries for byte
// offsets into source text, memoizing results through bounded FIFO memos:
//
//	idx := mnemo.NewPositionIndex()
//	line := idx.LineNumber(loc, source)
//	col := idx.Column(loc, source)
//
// # Diagnostic Flags
//
// FlagSet is a registry over a closed, pre-declared set of named boolean
// flags. Unknown names fail with MNEMO_UNKNOWN_FLAG; immutable flags warn
// and stay unchanged. HotFlags adds file-watching reconfiguration on top,
// using Argus:
//
//	flags := mnemo.NewFlagSet(mnemo.DefaultDiagnostics(), logger)
//	hf, err := mnemo.NewHotFlags(flags, mnemo.HotFlagsOptions{ConfigPath: "flags.yaml"})
//
// # Concurrency Model
//
// The memo family, Memoizer, PositionIndex and FlagSet are single-threaded
// and unsynchronized; sharing them across goroutines requires external
// locking. All operations are synchronous and non-blocking. The only
// component with internal synchronization is HotFlags, which serializes
// the Argus watcher goroutine against callers at its own boundary.
//
// # Error Handling
//
// Mnemo uses structured errors with error codes:
//
//   - MNEMO_INVALID_CAPACITY: non-positive bound for a bounded policy
//   - MNEMO_INVALID_POLICY: unknown eviction policy
//   - MNEMO_INVALID_COMPUTE: nil memoizer compute function
//   - MNEMO_UNKNOWN_FLAG: flag name outside the registry's declared set
//
// All errors carry context and can be classified with the Is* helpers.
//
// # License
//
// See LICENSE file in the repository.
package mnemo
