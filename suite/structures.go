// SPDX-License-Identifier: MIT

package suite

import (
	"strings"

	"github.com/katalvlaran/kosmos/law"
)

// Magma has no laws beyond closure; its full set checks totality.
func Magma[A any](ops MagmaOps[A], dom law.Domain[A]) (*Suite, error) {
	var c collector
	c.full(law.NewTotality(ops.Op, dom))
	return c.build(named("Magma", ops.Op.Symbol()))
}

// Semigroup is Magma + associativity.
func Semigroup[A any](ops MagmaOps[A], dom law.Domain[A]) (*Suite, error) {
	var c collector
	parent := c.suite(Magma(ops, dom))
	c.law(law.NewAssociativity(ops.Op, dom))
	return c.build(named("Semigroup", ops.Op.Symbol()), parent)
}

// Monoid is Semigroup + two-sided identity.
func Monoid[A any](ops MonoidOps[A], dom law.Domain[A]) (*Suite, error) {
	var c collector
	parent := c.suite(Semigroup(ops.Magma(), dom))
	c.law(law.NewIdentity(ops.Op, ops.Identity, law.Both, dom))
	return c.build(named("Monoid", ops.Op.Symbol()), parent)
}

// CommutativeMonoid is Monoid + commutativity.
func CommutativeMonoid[A any](ops MonoidOps[A], dom law.Domain[A]) (*Suite, error) {
	var c collector
	parent := c.suite(Monoid(ops, dom))
	c.law(law.NewCommutativity(ops.Op, dom))
	return c.build(named("CommutativeMonoid", ops.Op.Symbol()), parent)
}

// Group is Monoid + invertibility. Its full set adds the inverse
// involution and two-sided cancellation, both implied by the group axioms.
func Group[A any](ops GroupOps[A], dom law.Domain[A]) (*Suite, error) {
	var c collector
	parent := c.suite(Monoid(ops.Monoid(), dom))
	c.law(law.NewInvertibility(ops.Op, ops.Identity, ops.Inverse, dom))
	c.full(law.NewInverseInvolution(ops.Inverse, dom))
	c.full(law.NewCancellativity(ops.Op, law.Both, dom))
	c.full(law.NewUnaryTotality(ops.Inverse, dom))
	return c.build(named("Group", ops.Op.Symbol()), parent)
}

// AbelianGroup is Group + commutativity.
func AbelianGroup[A any](ops GroupOps[A], dom law.Domain[A]) (*Suite, error) {
	var c collector
	parent := c.suite(Group(ops, dom))
	c.law(law.NewCommutativity(ops.Op, dom))
	return c.build(named("AbelianGroup", ops.Op.Symbol()), parent)
}

// ---------- non-associative magmas ----------

// FlexibleMagma is Magma + flexibility.
func FlexibleMagma[A any](ops MagmaOps[A], dom law.Domain[A]) (*Suite, error) {
	var c collector
	parent := c.suite(Magma(ops, dom))
	c.law(law.NewFlexibility(ops.Op, dom))
	return c.build(named("FlexibleMagma", ops.Op.Symbol()), parent)
}

// AlternativeMagma is FlexibleMagma + left and right alternativity. Its
// full set adds the three Moufang identities and both Bol identities,
// which alternative algebras satisfy.
func AlternativeMagma[A any](ops MagmaOps[A], dom law.Domain[A]) (*Suite, error) {
	var c collector
	parent := c.suite(FlexibleMagma(ops, dom))
	c.law(law.NewAlternativity(ops.Op, law.Both, dom))
	for _, v := range []law.Variant{law.MoufangLeft, law.MoufangRight, law.MoufangMiddle} {
		c.full(law.NewMoufang(ops.Op, v, dom))
	}
	c.full(law.NewBol(ops.Op, law.Both, dom))
	return c.build(named("AlternativeMagma", ops.Op.Symbol()), parent)
}

// MoufangLoop checks a loop (two-sided identity and inverses) satisfying
// all three Moufang identities. A structure is Moufang only when every
// variant holds, so all three are regular laws.
func MoufangLoop[A any](ops GroupOps[A], dom law.Domain[A]) (*Suite, error) {
	var c collector
	parent := c.suite(Magma(MagmaOps[A]{Op: ops.Op}, dom))
	c.law(law.NewIdentity(ops.Op, ops.Identity, law.Both, dom))
	c.law(law.NewInvertibility(ops.Op, ops.Identity, ops.Inverse, dom))
	for _, v := range []law.Variant{law.MoufangLeft, law.MoufangRight, law.MoufangMiddle} {
		c.law(law.NewMoufang(ops.Op, v, dom))
	}
	c.full(law.NewBol(ops.Op, law.Both, dom))
	c.full(law.NewFlexibility(ops.Op, dom))
	return c.build(named("MoufangLoop", ops.Op.Symbol()), parent)
}

// PowerAssociativeMagma is Magma + power-associativity up to bound.
func PowerAssociativeMagma[A any](ops MagmaOps[A], dom law.Domain[A], opts ...law.Option) (*Suite, error) {
	var c collector
	parent := c.suite(Magma(ops, dom))
	c.law(law.NewPowerAssociativity(ops.Op, dom, opts...))
	return c.build(named("PowerAssociativeMagma", ops.Op.Symbol()), parent)
}

// ---------- lattices ----------

// Semilattice is Semigroup + commutativity + idempotence.
func Semilattice[A any](ops MagmaOps[A], dom law.Domain[A]) (*Suite, error) {
	var c collector
	parent := c.suite(Semigroup(ops, dom))
	c.law(law.NewCommutativity(ops.Op, dom))
	c.law(law.NewIdempotence(ops.Op, dom))
	return c.build(named("Semilattice", ops.Op.Symbol()), parent)
}

// Lattice is the join and meet semilattices + absorption.
func Lattice[A any](ops LatticeOps[A], dom law.Domain[A]) (*Suite, error) {
	var c collector
	join := c.suite(Semilattice(MagmaOps[A]{Op: ops.Join}, dom))
	meet := c.suite(Semilattice(MagmaOps[A]{Op: ops.Meet}, dom))
	c.law(law.NewAbsorption(ops.Join, ops.Meet, dom))
	return c.build(named("Lattice", ops.Join.Symbol(), ops.Meet.Symbol()), join, meet)
}

// DistributiveLattice is Lattice + distributivity of meet over join. The
// dual law follows from it in any lattice and is kept for the full set.
func DistributiveLattice[A any](ops LatticeOps[A], dom law.Domain[A]) (*Suite, error) {
	var c collector
	parent := c.suite(Lattice(ops, dom))
	c.law(law.NewDistributivity(ops.Meet, ops.Join, law.Both, dom))
	c.full(law.NewDistributivity(ops.Join, ops.Meet, law.Both, dom))
	return c.build(named("DistributiveLattice", ops.Join.Symbol(), ops.Meet.Symbol()), parent)
}

// BoundedLattice is Lattice + ⊥ as the join identity and ⊤ as the meet
// identity. The full set adds a∨⊤ = ⊤ and a∧⊥ = ⊥.
func BoundedLattice[A any](ops BooleanOps[A], dom law.Domain[A]) (*Suite, error) {
	var c collector
	parent := c.suite(Lattice(ops.Lattice(), dom))
	bounds(&c, ops, dom)
	return c.build(named("BoundedLattice", ops.Join.Symbol(), ops.Meet.Symbol()), parent)
}

// BooleanAlgebra is a bounded distributive lattice + complementation.
func BooleanAlgebra[A any](ops BooleanOps[A], dom law.Domain[A]) (*Suite, error) {
	var c collector
	parent := c.suite(DistributiveLattice(ops.Lattice(), dom))
	bounds(&c, ops, dom)
	c.law(law.NewComplementation(ops.Join, ops.Meet, ops.Not, ops.Bottom, ops.Top, dom))
	c.full(law.NewUnaryTotality(ops.Not, dom))
	return c.build(named("BooleanAlgebra", ops.Join.Symbol(), ops.Meet.Symbol(), ops.Not.Symbol()), parent)
}

func bounds[A any](c *collector, ops BooleanOps[A], dom law.Domain[A]) {
	join, meet := ops.Join.Symbol(), ops.Meet.Symbol()
	c.law(law.NewIdentity(ops.Join, ops.Bottom, law.Both, dom, law.WithName("bottom is the identity ("+join+")")))
	c.law(law.NewIdentity(ops.Meet, ops.Top, law.Both, dom, law.WithName("top is the identity ("+meet+")")))
	c.full(law.NewAnnihilation(ops.Join, ops.Top, law.Both, dom, law.WithName("top absorbs ("+join+")")))
	c.full(law.NewAnnihilation(ops.Meet, ops.Bottom, law.Both, dom, law.WithName("bottom absorbs ("+meet+")")))
}

func named(structure string, symbols ...string) string {
	return structure + " (" + strings.Join(symbols, ", ") + ")"
}
