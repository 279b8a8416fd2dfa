// SPDX-License-Identifier: MIT

// Package law implements algebraic laws as randomized, reusable checks.
//
// 🚀 What is a law?
//
//	A TestingLaw is a name plus a Test(t) procedure. Test drives the host
//	property loop (pgregory.net/rapid) which draws samples, and for every
//	sample the law evaluates both sides of an identity with the supplied
//	operations and compares them under the supplied equality:
//
//	    assoc, err := law.NewAssociativity(add, law.On(ints, eq.Default[int](), nil))
//	    ...
//	    assoc.Test(t) // t is *testing.T or any rapid.TB
//
// ✨ Collaborators (all supplied by the caller):
//   - op.Binary / op.Unary / op.Partial / op.Action / op.Mapping / op.Form
//     — opaque callables with display symbols,
//   - *rapid.Generator  — sample source (see package gen),
//   - eq.Eq             — equality relation,
//   - printable.Printable — renderer for counterexamples.
//
// Every law also exposes Verify(...) for a single explicit sample, which
// is what Test calls per draw. Verify returns nil or a *Violation.
//
// Failure taxonomy (errors.Is on a *Violation, Classify on recorded text):
//   - ErrLawViolated     — two sides differ for some sample,
//   - ErrTotality        — an operation panicked on a sampled input,
//   - ErrWitnessNotFound — a bounded existential search came up empty,
//   - ErrInvalidLaw      — construction rejected the collaborators
//     (returned by NewX before any sampling happens).
//
// Counterexamples carry the symbolic trace of both sides:
//
//	law: identity violated: associativity (⋆): a⋆(b⋆c) = (a⋆b)⋆c
//	  a⋆(b⋆c) = 1⋆(2⋆3) = 1⋆7 = 9
//	  (a⋆b)⋆c = (1⋆2)⋆3 = 4⋆3 = 11
//
// Rendering happens only when the message is requested, i.e. on the
// failure path. Laws hold no mutable state after construction and may be
// run repeatedly and concurrently.
package law
