// SPDX-License-Identifier: MIT

// Package eq provides the equality relations laws compare under.
//
// A law never uses == directly: it asks an Eq[A] whether the two sides of
// an identity agree. That keeps the engine generic over carriers with
// structural equality (slices, matrices), approximate equality (floating
// point) or semantic equality (fractions in non-reduced form).
//
// Contract: an Eq must be reflexive and symmetric over the values its
// generator produces. The law engine trusts this and does not check it.
//
//	Default[A]()               — Go == for comparable carriers
//	Approx[F](abs, rel)        — |a-b| ≤ abs or |a-b| ≤ rel·max(|a|,|b|)
//	Structural[A](opts...)     — go-cmp deep equality
//	StructuralApprox[A](f, m)  — go-cmp with cmpopts.EquateApprox on floats
//	Slice(elem), By(key)       — lifting combinators
package eq
