// SPDX-License-Identifier: MIT

package suite

import "github.com/katalvlaran/kosmos/law"

// Hemiring is a commutative additive monoid and a multiplicative
// semigroup joined by two-sided distributivity. Its full set adds
// annihilation by zero.
func Hemiring[A any](ops RingOps[A], dom law.Domain[A]) (*Suite, error) {
	var c collector
	add := c.suite(CommutativeMonoid(MonoidOps[A]{Op: ops.Add, Identity: ops.Zero}, dom))
	mul := c.suite(Semigroup(MagmaOps[A]{Op: ops.Mul}, dom))
	c.law(law.NewDistributivity(ops.Mul, ops.Add, law.Both, dom))
	c.full(law.NewAnnihilation(ops.Mul, ops.Zero, law.Both, dom))
	return c.build(named("Hemiring", ops.Add.Symbol(), ops.Mul.Symbol()), add, mul)
}

// Semiring is Hemiring + multiplicative identity.
func Semiring[A any](ops RingOps[A], dom law.Domain[A]) (*Suite, error) {
	var c collector
	parent := c.suite(Hemiring(ops, dom))
	c.law(law.NewIdentity(ops.Mul, ops.One, law.Both, dom))
	return c.build(named("Semiring", ops.Add.Symbol(), ops.Mul.Symbol()), parent)
}

// Ring is Semiring + additive inverses. The full set adds the group
// consequences for addition.
func Ring[A any](ops RingOps[A], dom law.Domain[A]) (*Suite, error) {
	var c collector
	parent := c.suite(Semiring(ops, dom))
	c.law(law.NewInvertibility(ops.Add, ops.Zero, ops.Neg, dom))
	c.full(law.NewInverseInvolution(ops.Neg, dom))
	c.full(law.NewCancellativity(ops.Add, law.Both, dom))
	return c.build(named("Ring", ops.Add.Symbol(), ops.Mul.Symbol()), parent)
}

// CommutativeRing is Ring + commutative multiplication.
func CommutativeRing[A any](ops RingOps[A], dom law.Domain[A]) (*Suite, error) {
	var c collector
	parent := c.suite(Ring(ops, dom))
	c.law(law.NewCommutativity(ops.Mul, dom))
	return c.build(named("CommutativeRing", ops.Add.Symbol(), ops.Mul.Symbol()), parent)
}

// IntegralDomain is CommutativeRing + 0 ≠ 1 + no zero divisors.
func IntegralDomain[A any](ops RingOps[A], dom law.Domain[A]) (*Suite, error) {
	var c collector
	parent := c.suite(CommutativeRing(ops, dom))
	c.law(law.NewNonTrivial(ops.Zero, ops.One, dom.Codomain()))
	c.law(law.NewNoZeroDivisors(ops.Mul, ops.Zero, law.Both, dom))
	return c.build(named("IntegralDomain", ops.Add.Symbol(), ops.Mul.Symbol()), parent)
}

// DivisionRing is Ring + 0 ≠ 1 + inverses of nonzero elements.
func DivisionRing[A any](ops FieldOps[A], dom law.Domain[A]) (*Suite, error) {
	var c collector
	parent := c.suite(Ring(ops.Ring(), dom))
	units(&c, ops, dom)
	return c.build(named("DivisionRing", ops.Add.Symbol(), ops.Mul.Symbol()), parent)
}

// Field is CommutativeRing + 0 ≠ 1 + inverses of nonzero elements.
func Field[A any](ops FieldOps[A], dom law.Domain[A]) (*Suite, error) {
	var c collector
	parent := c.suite(CommutativeRing(ops.Ring(), dom))
	units(&c, ops, dom)
	return c.build(named("Field", ops.Add.Symbol(), ops.Mul.Symbol()), parent)
}

// units adds the laws shared by division rings and fields. Division is
// only checked when ops.Div is set.
func units[A any](c *collector, ops FieldOps[A], dom law.Domain[A]) {
	nonzero := func(a A) bool { return !dom.Eq.Eqv(a, ops.Zero) }
	c.law(law.NewNonTrivial(ops.Zero, ops.One, dom.Codomain()))
	c.law(law.NewPartialInvertibility(ops.Mul, ops.One, nonzero, ops.Inv, dom))
	if ops.Div.Valid() {
		c.full(law.NewDivision(ops.Mul, ops.Div, ops.Zero, dom))
	}
	c.full(law.NewNoZeroDivisors(ops.Mul, ops.Zero, law.Both, dom))
}
