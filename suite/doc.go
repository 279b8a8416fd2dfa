// SPDX-License-Identifier: MIT

// Package suite composes laws into suites that mirror the algebraic
// hierarchy: Magma → Semigroup → Monoid → Group → AbelianGroup,
// Hemiring → Semiring → Ring → CommutativeRing → IntegralDomain/Field,
// lattices up to Boolean algebras, modules up to inner-product spaces,
// non-associative magmas and structure-preserving maps.
//
// Composition is list concatenation. Every constructor builds its parent
// suite and Extends it, so a stronger suite contains the weaker one by
// construction:
//
//	group, err := suite.Group(suite.GroupOps[int]{Op: add, Identity: 0, Inverse: neg}, dom)
//	...
//	suite.Run(t, group) // associativity, identity, invertibility as subtests
//
// Laws is the fast set; FullLaws appends checks that are implied by the
// axioms or slower to run (totality, inverse involution, cancellation,
// strict nilpotency). Two distinct laws with one name are rejected with
// ErrDuplicateLaw; VerifySuperset and VerifyFull check the inclusion
// invariants of hand-assembled suites.
//
// Capability structs (MagmaOps, RingOps, ModuleOps, …) are flat bundles
// of operations, not a type hierarchy.
package suite
