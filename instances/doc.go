// SPDX-License-Identifier: MIT

// Package instances provides concrete carriers, each bundled with its
// operations, a sample generator, an equality and a renderer, together
// with the law suites the carrier is known to satisfy.
//
// Carriers:
//   - ZMod: residues ℤ/n (additive group, ring, field for prime n, unit group)
//   - Wrapping: fixed-width two's-complement integers (ring ℤ/2ᵏ, min/max lattice)
//   - Tropical: the (min, +) semiring with +∞, and Naturals under (+, ·)
//   - Reals, Rationals: float64 with tolerance and exact *big.Rat fields
//   - Bools, BitSet: Boolean algebras and the Boolean ring (⊕, ∧)
//   - Euclidean: ℝⁿ as an inner-product space
//   - CayleyDickson: ℤ, ℤ[i], ℍ(ℤ), 𝕆(ℤ), 𝕊(ℤ) with conjugation and norm
//   - Quaternions: the real quaternion division ring
//   - Matrices: 2×2 integer matrices (ring with transpose, Jordan product)
//     and strictly upper-triangular matrices (nilpotent algebra)
//
// Catalog assembles every suite, prefixed with its carrier, for the
// kosmos-laws command and the package tests.
package instances
