// SPDX-License-Identifier: MIT

package suite

import (
	"github.com/katalvlaran/kosmos/law"
	"github.com/katalvlaran/kosmos/op"
)

// MonoidHomomorphism checks f(a⋆b) = f(a)·f(b) and f(e) = e'.
func MonoidHomomorphism[A, B any](f op.Mapping[A, B], a MonoidOps[A], b MonoidOps[B], dom law.Domain[A], cod law.Codomain[B]) (*Suite, error) {
	var c collector
	c.law(law.NewHomomorphism(f, a.Op, b.Op, dom, cod))
	c.law(law.NewUnitPreservation(f, a.Identity, b.Identity, dom.Codomain(), cod))
	return c.build(named("MonoidHomomorphism", f.Name()))
}

// GroupHomomorphism is MonoidHomomorphism; its full set adds
// f(a⁻¹) = f(a)⁻¹, which follows from the other two.
func GroupHomomorphism[A, B any](f op.Mapping[A, B], a GroupOps[A], b GroupOps[B], dom law.Domain[A], cod law.Codomain[B]) (*Suite, error) {
	var c collector
	parent := c.suite(MonoidHomomorphism(f, a.Monoid(), b.Monoid(), dom, cod))
	c.full(law.NewUnaryPreservation(f, a.Inverse, b.Inverse, dom, cod))
	return c.build(named("GroupHomomorphism", f.Name()), parent)
}

// RingHomomorphism checks that f preserves both operations, zero and one.
// The full set adds f(-a) = -f(a).
func RingHomomorphism[A, B any](f op.Mapping[A, B], a RingOps[A], b RingOps[B], dom law.Domain[A], cod law.Codomain[B]) (*Suite, error) {
	var c collector
	c.law(law.NewHomomorphism(f, a.Add, b.Add, dom, cod))
	c.law(law.NewHomomorphism(f, a.Mul, b.Mul, dom, cod))
	c.law(law.NewUnitPreservation(f, a.Zero, b.Zero, dom.Codomain(), cod))
	c.law(law.NewUnitPreservation(f, a.One, b.One, dom.Codomain(), cod))
	if a.Neg.Valid() && b.Neg.Valid() {
		c.full(law.NewUnaryPreservation(f, a.Neg, b.Neg, dom, cod))
	}
	return c.build(named("RingHomomorphism", f.Name()))
}

// Conjugation checks that star is an involution that preserves addition
// and reverses multiplication: (a+b)* = a*+b*, (ab)* = b*a*.
func Conjugation[A any](star StarOps[A], ring RingOps[A], dom law.Domain[A]) (*Suite, error) {
	var c collector
	c.law(law.NewInvolution(star.Conj, dom))
	if c.err != nil {
		return nil, c.err
	}
	conj := op.Endo(star.Conj)
	c.law(law.NewHomomorphism(conj, ring.Add, ring.Add, dom, dom.Codomain()))
	c.law(law.NewAntiHomomorphism(conj, ring.Mul, ring.Mul, dom, dom.Codomain()))
	return c.build(named("Conjugation", star.Conj.Symbol()))
}
