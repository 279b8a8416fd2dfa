// SPDX-License-Identifier: MIT

package law

import (
	"pgregory.net/rapid"

	"github.com/katalvlaran/kosmos/gen"
	"github.com/katalvlaran/kosmos/op"
)

// HomomorphismLaw checks f(a⋆b) = f(a)·f(b), or f(a⋆b) = f(b)·f(a) for
// an anti-homomorphism.
type HomomorphismLaw[A, B any] struct {
	base
	f     op.Mapping[A, B]
	opA   op.Binary[A]
	opB   op.Binary[B]
	anti  bool
	dom   Domain[A]
	cod   Codomain[B]
	pairs *rapid.Generator[gen.Pair[A, A]]
}

// NewHomomorphism builds the law that f carries opA to opB.
func NewHomomorphism[A, B any](f op.Mapping[A, B], opA op.Binary[A], opB op.Binary[B], dom Domain[A], cod Codomain[B], opts ...Option) (*HomomorphismLaw[A, B], error) {
	return newHomomorphism("preserves", false, f, opA, opB, dom, cod, opts)
}

// NewAntiHomomorphism builds the law that f carries opA to opB with the
// operands swapped, as conjugation does.
func NewAntiHomomorphism[A, B any](f op.Mapping[A, B], opA op.Binary[A], opB op.Binary[B], dom Domain[A], cod Codomain[B], opts ...Option) (*HomomorphismLaw[A, B], error) {
	return newHomomorphism("reverses", true, f, opA, opB, dom, cod, opts)
}

// NewNormMultiplicative checks N(xy) = N(x)N(y) for a norm N.
func NewNormMultiplicative[A, N any](norm op.Mapping[A, N], mul op.Binary[A], mulN op.Binary[N], dom Domain[A], cod Codomain[N], opts ...Option) (*HomomorphismLaw[A, N], error) {
	name := "norm multiplicativity (" + norm.Name() + ")"
	return newHomomorphism("", false, norm, mul, mulN, dom, cod, append([]Option{WithName(name)}, opts...))
}

func newHomomorphism[A, B any](verb string, anti bool, f op.Mapping[A, B], opA op.Binary[A], opB op.Binary[B], dom Domain[A], cod Codomain[B], opts []Option) (*HomomorphismLaw[A, B], error) {
	s := gatherSettings(opts)
	name := s.nameOr(f.Name() + " " + verb + " " + opA.Symbol())
	if err := firstErr(requireValid(name, f.Valid(), opA.Valid(), opB.Valid()), dom.validate(name), cod.validate(name)); err != nil {
		return nil, err
	}
	return &HomomorphismLaw[A, B]{
		base: base{name}, f: f, opA: opA, opB: opB, anti: anti, dom: dom, cod: cod,
		pairs: gen.PairOf(dom.Gen),
	}, nil
}

// Verify checks the identity for one pair.
func (l *HomomorphismLaw[A, B]) Verify(a, b A) error {
	ab := l.opA.Apply(a, b)
	lhs := l.f.Apply(ab)
	fa, fb := l.f.Apply(a), l.f.Apply(b)
	first, second := fa, fb
	if l.anti {
		first, second = fb, fa
	}
	rhs := l.opB.Apply(first, second)
	if l.cod.Eq.Eqv(lhs, rhs) {
		return nil
	}
	return l.violation(func() string {
		fn, sa, sb := l.f.Name(), l.opA.Symbol(), l.opB.Symbol()
		ra, rb := l.dom.render, l.cod.render
		x, y := "a", "b"
		if l.anti {
			x, y = "b", "a"
		}
		return statement(
			call(fn, infix("a", sa, "b"))+" = "+infix(call(fn, x), sb, call(fn, y)),
			expr(call(fn, infix(ra(a), sa, ra(b))), call(fn, ra(ab)), rb(lhs)),
			expr(infix(call(fn, x), sb, call(fn, y)), infix(rb(first), sb, rb(second)), rb(rhs)),
		)
	})
}

// Test implements TestingLaw.
func (l *HomomorphismLaw[A, B]) Test(t rapid.TB) {
	t.Helper()
	forAll(t, l.pairs, "a,b", func(p gen.Pair[A, A]) error { return l.Verify(p.First, p.Second) })
}

// ---------- Unit preservation ----------

// UnitPreservationLaw checks f(e_A) = e_B. It is a single evaluation.
type UnitPreservationLaw[A, B any] struct {
	base
	f   op.Mapping[A, B]
	eA  A
	eB  B
	dom Codomain[A]
	cod Codomain[B]
}

// NewUnitPreservation builds the law that f maps eA to eB.
func NewUnitPreservation[A, B any](f op.Mapping[A, B], eA A, eB B, dom Codomain[A], cod Codomain[B], opts ...Option) (*UnitPreservationLaw[A, B], error) {
	s := gatherSettings(opts)
	name := s.nameOr(f.Name() + " preserves " + dom.render(eA))
	if err := firstErr(requireValid(name, f.Valid()), cod.validate(name)); err != nil {
		return nil, err
	}
	return &UnitPreservationLaw[A, B]{base: base{name}, f: f, eA: eA, eB: eB, dom: dom, cod: cod}, nil
}

// Verify evaluates the clause.
func (l *UnitPreservationLaw[A, B]) Verify() error {
	got := l.f.Apply(l.eA)
	if l.cod.Eq.Eqv(got, l.eB) {
		return nil
	}
	return l.violation(func() string {
		fn := l.f.Name()
		return statement(
			call(fn, "e")+" = e'",
			expr(call(fn, l.dom.render(l.eA)), l.cod.render(got)),
			expr("e'", l.cod.render(l.eB)),
		)
	})
}

// Test implements TestingLaw.
func (l *UnitPreservationLaw[A, B]) Test(t rapid.TB) {
	t.Helper()
	once(t, l.Verify)
}

// ---------- Involution ----------

// InvolutionLaw checks f(f(x)) = x.
type InvolutionLaw[A any] struct {
	base
	f   op.Unary[A]
	sym string
	dom Domain[A]
}

// NewInvolution builds the involution law for f.
func NewInvolution[A any](f op.Unary[A], dom Domain[A], opts ...Option) (*InvolutionLaw[A], error) {
	s := gatherSettings(opts)
	sym := s.symbolOr(f.Symbol())
	name := s.nameOr("involution (" + sym + ")")
	if err := firstErr(requireValid(name, f.Valid()), dom.validate(name)); err != nil {
		return nil, err
	}
	return &InvolutionLaw[A]{base: base{name}, f: f, sym: sym, dom: dom}, nil
}

// Verify checks the identity for one element.
func (l *InvolutionLaw[A]) Verify(x A) error {
	fx := l.f.Apply(x)
	ffx := l.f.Apply(fx)
	if l.dom.Eq.Eqv(ffx, x) {
		return nil
	}
	return l.violation(func() string {
		r, s := l.dom.render, l.sym
		nest := func(x string) string { return unary(s, wrap(s, unary(s, x))) }
		return statement(
			nest("x")+" = x",
			expr(nest(r(x)), unary(s, wrap(s, r(fx))), r(ffx)),
			expr("x", r(x)),
		)
	})
}

// Test implements TestingLaw.
func (l *InvolutionLaw[A]) Test(t rapid.TB) {
	t.Helper()
	forAll(t, l.dom.Gen, "x", l.Verify)
}

// wrap parenthesizes x unless sym renders in call syntax, so nested
// applications read (x⁻¹)⁻¹ and -(-x).
func wrap(sym, x string) string {
	if unary(sym, "") == call(sym, "") {
		return x
	}
	return par(x)
}

// ---------- Unary preservation ----------

// UnaryPreservationLaw checks f(u(a)) = u'(f(a)), e.g. that a group
// homomorphism carries inverses to inverses.
type UnaryPreservationLaw[A, B any] struct {
	base
	f   op.Mapping[A, B]
	uA  op.Unary[A]
	uB  op.Unary[B]
	dom Domain[A]
	cod Codomain[B]
}

// NewUnaryPreservation builds the law that f commutes with uA and uB.
func NewUnaryPreservation[A, B any](f op.Mapping[A, B], uA op.Unary[A], uB op.Unary[B], dom Domain[A], cod Codomain[B], opts ...Option) (*UnaryPreservationLaw[A, B], error) {
	s := gatherSettings(opts)
	name := s.nameOr(f.Name() + " preserves " + uA.Symbol())
	if err := firstErr(requireValid(name, f.Valid(), uA.Valid(), uB.Valid()), dom.validate(name), cod.validate(name)); err != nil {
		return nil, err
	}
	return &UnaryPreservationLaw[A, B]{base: base{name}, f: f, uA: uA, uB: uB, dom: dom, cod: cod}, nil
}

// Verify checks the identity for one element.
func (l *UnaryPreservationLaw[A, B]) Verify(a A) error {
	ua := l.uA.Apply(a)
	lhs := l.f.Apply(ua)
	fa := l.f.Apply(a)
	rhs := l.uB.Apply(fa)
	if l.cod.Eq.Eqv(lhs, rhs) {
		return nil
	}
	return l.violation(func() string {
		fn, sa, sb := l.f.Name(), l.uA.Symbol(), l.uB.Symbol()
		ra, rb := l.dom.render, l.cod.render
		return statement(
			call(fn, unary(sa, "a"))+" = "+unary(sb, wrap(sb, call(fn, "a"))),
			expr(call(fn, unary(sa, wrap(sa, ra(a)))), call(fn, ra(ua)), rb(lhs)),
			expr(unary(sb, wrap(sb, call(fn, ra(a)))), unary(sb, wrap(sb, rb(fa))), rb(rhs)),
		)
	})
}

// Test implements TestingLaw.
func (l *UnaryPreservationLaw[A, B]) Test(t rapid.TB) {
	t.Helper()
	forAll(t, l.dom.Gen, "a", l.Verify)
}
