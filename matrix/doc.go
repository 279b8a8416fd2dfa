// SPDX-License-Identifier: MIT

// Package matrix provides small generic dense matrices over integer and
// floating-point scalars.
//
// What & Why:
//
//	Dense[T] is a row-major matrix stored in one flat slice. It is the
//	carrier of the matrix reference structures (strictly upper-triangular
//	nilpotent algebras, the anticommutator Jordan algebra) and is kept
//	deliberately small: arithmetic, transpose, structural predicates.
//
// Conventions:
//
//	Operations never mutate their operands; each returns a fresh Dense.
//	Constructors and binary operations return sentinel errors
//	(ErrInvalidDimensions, ErrDimensionMismatch, ErrOutOfRange) that callers
//	match with errors.Is. Must* helpers panic instead and are meant for
//	closures whose shapes are fixed by construction.
//
// Complexity:
//
//	At/Set are O(1); Add, Sub, Scale, Neg, Transpose are O(r·c);
//	Mul is O(r·k·c).
package matrix
