// SPDX-License-Identifier: MIT

package suite

import (
	"github.com/katalvlaran/kosmos/law"
	"github.com/katalvlaran/kosmos/op"
)

// Capability structs bundle the operations one structure exposes. They
// are flat: a RingOps does not embed a GroupOps. Conversion methods build
// the view a weaker suite needs.

// MagmaOps is a carrier with one binary operation.
type MagmaOps[A any] struct {
	Op op.Binary[A]
}

// MonoidOps adds a two-sided identity.
type MonoidOps[A any] struct {
	Op       op.Binary[A]
	Identity A
}

// Magma drops the identity.
func (m MonoidOps[A]) Magma() MagmaOps[A] { return MagmaOps[A]{Op: m.Op} }

// GroupOps adds a total inverse.
type GroupOps[A any] struct {
	Op       op.Binary[A]
	Identity A
	Inverse  op.Unary[A]
}

// Monoid drops the inverse.
func (g GroupOps[A]) Monoid() MonoidOps[A] { return MonoidOps[A]{Op: g.Op, Identity: g.Identity} }

// RingOps bundles addition with zero and negation, and multiplication
// with one.
type RingOps[A any] struct {
	Add, Mul  op.Binary[A]
	Zero, One A
	Neg       op.Unary[A]
}

// Additive returns the additive group.
func (r RingOps[A]) Additive() GroupOps[A] {
	return GroupOps[A]{Op: r.Add, Identity: r.Zero, Inverse: r.Neg}
}

// Multiplicative returns the multiplicative monoid.
func (r RingOps[A]) Multiplicative() MonoidOps[A] {
	return MonoidOps[A]{Op: r.Mul, Identity: r.One}
}

// FieldOps adds a partial multiplicative inverse, defined on nonzero
// elements, and division.
type FieldOps[A any] struct {
	Add, Mul  op.Binary[A]
	Zero, One A
	Neg       op.Unary[A]
	Inv       op.Partial[A]
	Div       op.Binary[A]
}

// Ring drops the inverse and division.
func (f FieldOps[A]) Ring() RingOps[A] {
	return RingOps[A]{Add: f.Add, Mul: f.Mul, Zero: f.Zero, One: f.One, Neg: f.Neg}
}

// LatticeOps bundles join and meet.
type LatticeOps[A any] struct {
	Join, Meet op.Binary[A]
}

// BooleanOps adds the bounds and complement.
type BooleanOps[A any] struct {
	Join, Meet  op.Binary[A]
	Not         op.Unary[A]
	Bottom, Top A
}

// Lattice drops the bounds and complement.
func (b BooleanOps[A]) Lattice() LatticeOps[A] { return LatticeOps[A]{Join: b.Join, Meet: b.Meet} }

// ModuleOps describes V as a module over the scalar ring S.
type ModuleOps[S, V any] struct {
	Scalars law.Scalars[S]
	Add     op.Binary[V]
	Zero    V
	Neg     op.Unary[V]
	Scale   op.Action[S, V]
}

// Additive returns the additive group of V.
func (m ModuleOps[S, V]) Additive() GroupOps[V] {
	return GroupOps[V]{Op: m.Add, Identity: m.Zero, Inverse: m.Neg}
}

// Module returns the law-level view used by bilinearity.
func (m ModuleOps[S, V]) Module() law.Module[S, V] {
	return law.Module[S, V]{Add: m.Add, Scale: m.Scale}
}

// InnerProduct is a symmetric bilinear form with a non-negativity test on
// its values.
type InnerProduct[V, S any] struct {
	Form          op.Form[V, V, S]
	IsNonNegative func(S) bool
}

// StarOps carries a conjugation.
type StarOps[A any] struct {
	Conj op.Unary[A]
}

// NormOps carries a norm into N together with the product of N.
type NormOps[A, N any] struct {
	Norm op.Mapping[A, N]
	Mul  op.Binary[N]
}
