// SPDX-License-Identifier: MIT

// Package kosmos checks that concrete Go types really are the algebraic
// structures they claim to be, by testing the defining laws on generated
// samples.
//
// 🚀 What is kosmos?
//
//	A property-testing library for abstract algebra:
//		• Operations with display symbols: op.Unary, op.Binary, op.Partial, op.Action
//		• Carriers: a rapid generator, an equality and a renderer (law.Domain)
//		• Laws: associativity, identities, inverses, distributivity, lattice,
//		  Moufang/Bol/Jordan, nilpotency, bilinearity, homomorphisms, …
//		• Suites: Magma up to Field, lattices up to Boolean algebras,
//		  modules up to inner-product spaces, composed by inclusion
//		• Runner and CLI: concurrent execution outside go test, YAML config
//
// A failing law reports the identity, the sample and every intermediate
// value:
//
//	associativity (-): a-(b-c) = (a-b)-c
//	  a-(b-c) = 1-(2-3) = 1--1 = 2
//	  (a-b)-c = (1-2)-3 = -1-3 = -4
//
// Packages:
//
//	op/         — operations, display symbols, derived operators
//	gen/        — generator helpers: tuples, filters with a budget, edge cases, witnesses
//	eq/         — equalities: exact, approximate, structural (go-cmp)
//	printable/  — sample renderers
//	law/        — the laws, their traces and failure classes
//	suite/      — law suites following the algebraic hierarchy
//	matrix/     — dense generic matrices used as carriers
//	instances/  — ℤ/n, ℚ, ℝ, Boolean algebras, Cayley–Dickson, matrices, …
//	runner/     — runs suites outside go test and reports
//	config/     — YAML run configuration
//	cmd/kosmos-laws — list and run the instance catalog
//
// In tests, suites run as subtests:
//
//	s, err := suite.Field(ops, dom)
//	require.NoError(t, err)
//	suite.RunFull(t, s)
package kosmos
