// SPDX-License-Identifier: MIT

// Package op defines operation handles: opaque callables that carry a
// display symbol used only when rendering counterexamples.
//
// What lives here:
//
//	Unary[A]      — a ↦ f(a), e.g. negation "-", complement "¬"
//	Binary[A]     — (a, b) ↦ a ⋆ b, e.g. "+", "·", "∨"
//	Partial[A]    — a ↦ (f(a), ok) for operations defined on a subset (inverse of units)
//	Action[S, V]  — (s, v) ↦ s·v, a scalar acting on a vector
//	Mapping[A, B] — a ↦ f(a) between two carriers (homomorphisms, norms, forms)
//
// Symbols never influence semantics. A handle is immutable: WithSymbol
// returns a copy, so a handle may be shared between laws and goroutines.
//
// Derived operators (Implies, Xor, Difference, Power, Square, Flip, Compose)
// are free functions over the base handles rather than methods of a
// structure type.
package op
