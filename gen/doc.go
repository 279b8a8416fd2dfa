// SPDX-License-Identifier: MIT

// Package gen builds sample generators for law checking on top of
// pgregory.net/rapid.
//
// A generator is a *rapid.Generator[A]: restartable, lazily evaluated and
// driven by the host property loop (rapid.Check), which owns the random
// state and shrinks counterexamples. This package adds what algebraic laws
// need on top of rapid's primitives:
//
//   - Map          — derive a generator of a related type.
//   - Filter       — reject-and-resample with a hard attempt cap
//     (ErrFilterExhausted instead of a silent hang).
//   - NonZero      — the common "exclude the zero element" filter.
//   - Pair/Triple/Quad, PairOf/TripleOf/QuadOf, TupleOf
//     — independent draws for n-ary identities.
//   - WithEdgeCases — mix fixed values (0, 1, -1, …) with random draws.
//   - Exists       — bounded existential search, used outside the
//     "for all samples" loop to find a witness.
//   - Samples      — a deterministic finite view of a generator.
//
// Quick example:
//
//	small := rapid.IntRange(-5, 5)
//	units := gen.NonZero(small, 0, func(a, b int) bool { return a == b })
//	triples := gen.TripleOf(small)
//
//	w, ok := gen.Exists(small, 50, func(x int) bool { return x*x == 9 })
package gen
