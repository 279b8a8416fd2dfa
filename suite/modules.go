// SPDX-License-Identifier: MIT

package suite

import (
	"strconv"

	"github.com/katalvlaran/kosmos/law"
	"github.com/katalvlaran/kosmos/op"
)

// RModule is an abelian group V with a scalar action of S satisfying
// compatibility, unit and both distributivity laws.
func RModule[S, V any](ops ModuleOps[S, V], scalars law.Domain[S], dom law.Domain[V]) (*Suite, error) {
	var c collector
	parent := c.suite(AbelianGroup(ops.Additive(), dom))
	m := ops.Module()
	for _, clause := range []law.ActionClause{law.Compatibility, law.Unital, law.VectorDistributivity, law.ScalarDistributivity} {
		c.law(law.NewScalarAction(clause, ops.Scalars, m, scalars, dom))
	}
	return c.build(named("RModule", ops.Add.Symbol(), ops.Scale.Symbol()), parent)
}

// VectorSpace is an RModule over a field. The laws are the same; the
// name records the stronger assumption on the scalars.
func VectorSpace[S, V any](ops ModuleOps[S, V], scalars law.Domain[S], dom law.Domain[V]) (*Suite, error) {
	var c collector
	parent := c.suite(RModule(ops, scalars, dom))
	return c.build(named("VectorSpace", ops.Add.Symbol(), ops.Scale.Symbol()), parent)
}

// Algebra is a VectorSpace with a bilinear product, not necessarily
// associative.
func Algebra[S, V any](ops ModuleOps[S, V], mul op.Binary[V], scalars law.Domain[S], dom law.Domain[V]) (*Suite, error) {
	var c collector
	parent := c.suite(VectorSpace(ops, scalars, dom))
	m := ops.Module()
	c.law(law.NewBilinearity(op.NewForm(mul.Symbol(), mul.Func()), m, m, law.Both, scalars, dom, dom.Codomain()))
	c.full(law.NewTotality(mul, dom))
	return c.build(named("Algebra", ops.Add.Symbol(), mul.Symbol()), parent)
}

// StarAlgebra is an Algebra whose conjugation is an involutive
// anti-automorphism.
func StarAlgebra[S, V any](ops ModuleOps[S, V], mul op.Binary[V], star StarOps[V], scalars law.Domain[S], dom law.Domain[V]) (*Suite, error) {
	var c collector
	alg := c.suite(Algebra(ops, mul, scalars, dom))
	conj := c.suite(Conjugation(star, RingOps[V]{Add: ops.Add, Mul: mul}, dom))
	return c.build(named("StarAlgebra", ops.Add.Symbol(), mul.Symbol(), star.Conj.Symbol()), alg, conj)
}

// CompositionAlgebra is a unital Algebra with a multiplicative norm.
// Composition algebras are alternative; the full set checks that.
func CompositionAlgebra[S, V, N any](ops ModuleOps[S, V], mul op.Binary[V], one V, norm NormOps[V, N], scalars law.Domain[S], dom law.Domain[V], cod law.Codomain[N]) (*Suite, error) {
	var c collector
	parent := c.suite(Algebra(ops, mul, scalars, dom))
	c.law(law.NewIdentity(mul, one, law.Both, dom))
	c.law(law.NewNormMultiplicative(norm.Norm, mul, norm.Mul, dom, cod))
	c.full(law.NewAlternativity(mul, law.Both, dom))
	c.full(law.NewFlexibility(mul, dom))
	return c.build(named("CompositionAlgebra", ops.Add.Symbol(), mul.Symbol(), norm.Norm.Name()), parent)
}

// InnerProductSpace is a VectorSpace with a symmetric, positive-definite
// bilinear form into the scalars.
func InnerProductSpace[S, V any](ops ModuleOps[S, V], ip InnerProduct[V, S], scalars law.Domain[S], dom law.Domain[V]) (*Suite, error) {
	var c collector
	parent := c.suite(VectorSpace(ops, scalars, dom))
	out := scalars.Codomain()
	c.law(law.NewBilinearity(ip.Form, ops.Module(), ops.Scalars.Module(), law.Both, scalars, dom, out))
	c.law(law.NewSymmetry(ip.Form, dom, out))
	c.law(law.NewPositiveDefinite(ip.Form, ip.IsNonNegative, ops.Zero, ops.Scalars.Zero, dom, out))
	return c.build(named("InnerProductSpace", ops.Add.Symbol(), ip.Form.Name()), parent)
}

// NilpotentAlgebra checks that products of n elements vanish while some
// product of n-1 does not, plus annihilation by zero. The fast set uses
// left-normed products; the full set checks every bracketing.
func NilpotentAlgebra[A any](ops MagmaOps[A], zero A, n int, dom law.Domain[A], opts ...law.Option) (*Suite, error) {
	var c collector
	parent := c.suite(Magma(ops, dom))
	c.law(law.NewNilpotency(ops.Op, zero, n, dom, opts...))
	c.law(law.NewAnnihilation(ops.Op, zero, law.Both, dom))
	strict := append([]law.Option{
		law.WithName("strict nilpotency of index " + strconv.Itoa(n) + " (" + ops.Op.Symbol() + ")"),
	}, opts...)
	c.full(law.NewNilpotency(ops.Op, zero, n, dom, append(strict, law.WithStrict())...))
	return c.build(named("NilpotentAlgebra", ops.Op.Symbol()), parent)
}

// JordanAlgebra is an abelian group with a commutative product that
// distributes over addition and satisfies the Jordan identity. Jordan
// algebras are power-associative; the full set checks that.
func JordanAlgebra[A any](ops RingOps[A], dom law.Domain[A]) (*Suite, error) {
	var c collector
	parent := c.suite(AbelianGroup(ops.Additive(), dom))
	c.law(law.NewDistributivity(ops.Mul, ops.Add, law.Both, dom))
	c.law(law.NewCommutativity(ops.Mul, dom))
	c.law(law.NewJordan(ops.Mul, dom))
	c.full(law.NewPowerAssociativity(ops.Mul, dom))
	return c.build(named("JordanAlgebra", ops.Add.Symbol(), ops.Mul.Symbol()), parent)
}
