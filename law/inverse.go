// SPDX-License-Identifier: MIT

package law

import (
	"fmt"

	"pgregory.net/rapid"

	"github.com/katalvlaran/kosmos/gen"
	"github.com/katalvlaran/kosmos/op"
)

// inverses checks a⋆a⁻¹ = e and a⁻¹⋆a = e for a computed inverse.
type inverses[A any] struct {
	base
	op     op.Binary[A]
	sym    string
	invSym string
	e      A
	dom    Domain[A]
}

func (l inverses[A]) check(a, inv A) error {
	r, s := l.dom.render, l.sym
	ai := unary(l.invSym, "a")
	if right := l.op.Apply(a, inv); !l.dom.Eq.Eqv(right, l.e) {
		return l.violation(func() string {
			return statement(
				shape("a*%s = e", s, "", ai),
				expr(shape("a*%s", s, "", ai), shape("%s*%s", s, "", r(a), r(inv)), r(right)),
				expr("e", r(l.e)),
			)
		})
	}
	if left := l.op.Apply(inv, a); !l.dom.Eq.Eqv(left, l.e) {
		return l.violation(func() string {
			return statement(
				shape("%s*a = e", s, "", ai),
				expr(shape("%s*a", s, "", ai), shape("%s*%s", s, "", r(inv), r(a)), r(left)),
				expr("e", r(l.e)),
			)
		})
	}
	return nil
}

// ---------- Invertibility ----------

// InvertibilityLaw checks a⋆a⁻¹ = e and a⁻¹⋆a = e for a total inverse.
type InvertibilityLaw[A any] struct {
	inverses[A]
	inv op.Unary[A]
}

// NewInvertibility builds the invertibility law for o with identity e and
// a total inverse.
func NewInvertibility[A any](o op.Binary[A], e A, inv op.Unary[A], dom Domain[A], opts ...Option) (*InvertibilityLaw[A], error) {
	s := gatherSettings(opts)
	sym := s.symbolOr(o.Symbol())
	name := s.nameOr("invertibility (" + sym + ")")
	if err := firstErr(requireValid(name, o.Valid(), inv.Valid()), dom.validate(name)); err != nil {
		return nil, err
	}
	return &InvertibilityLaw[A]{
		inverses: inverses[A]{base: base{name}, op: o, sym: sym, invSym: inv.Symbol(), e: e, dom: dom},
		inv:      inv,
	}, nil
}

// Verify checks both inverse identities for one element.
func (l *InvertibilityLaw[A]) Verify(a A) error {
	return l.check(a, l.inv.Apply(a))
}

// Test implements TestingLaw.
func (l *InvertibilityLaw[A]) Test(t rapid.TB) {
	t.Helper()
	forAll(t, l.dom.Gen, "a", l.Verify)
}

// ---------- Partial invertibility ----------

// PartialInvertibilityLaw checks inverses of units only.
//
// Every draw pairs a unit (the domain generator filtered by isUnit) with a
// raw element. The unit must have an inverse satisfying both identities;
// the raw element, when it is not a unit, must be declined by inverse
// without panicking.
type PartialInvertibilityLaw[A any] struct {
	inverses[A]
	isUnit  func(A) bool
	inverse op.Partial[A]
	pairs   *rapid.Generator[gen.Pair[A, A]]
}

// NewPartialInvertibility builds the invertibility law restricted to units.
// The pairing is checked eagerly: e must be a unit and must have an inverse.
func NewPartialInvertibility[A any](o op.Binary[A], e A, isUnit func(A) bool, inverse op.Partial[A], dom Domain[A], opts ...Option) (*PartialInvertibilityLaw[A], error) {
	s := gatherSettings(opts)
	sym := s.symbolOr(o.Symbol())
	name := s.nameOr("partial invertibility (" + sym + ")")
	if err := firstErr(requireValid(name, o.Valid(), inverse.Valid(), isUnit != nil), dom.validate(name)); err != nil {
		return nil, err
	}
	if !isUnit(e) {
		return nil, invalidf(name, "identity %s is not a unit", dom.render(e))
	}
	if _, ok := inverse.Apply(e); !ok {
		return nil, invalidf(name, "identity %s has no inverse", dom.render(e))
	}
	return &PartialInvertibilityLaw[A]{
		inverses: inverses[A]{base: base{name}, op: o, sym: sym, invSym: inverse.Symbol(), e: e, dom: dom},
		isUnit:   isUnit,
		inverse:  inverse,
		pairs:    gen.PairFrom(gen.Filter(dom.Gen, isUnit), dom.Gen),
	}, nil
}

// lookup applies the inverse, reporting a panic as ErrTotality.
func (l *PartialInvertibilityLaw[A]) lookup(a A) (inv A, ok bool, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = newViolation(ErrTotality, l.name, func() string {
				return fmt.Sprintf("%s panicked: %v", unary(l.invSym, l.dom.render(a)), p)
			})
		}
	}()
	inv, ok = l.inverse.Apply(a)
	return inv, ok, nil
}

// Verify checks one element. Units must invert; non-units must be declined.
func (l *PartialInvertibilityLaw[A]) Verify(a A) error {
	inv, ok, err := l.lookup(a)
	if err != nil {
		return err
	}
	if !l.isUnit(a) {
		if ok {
			return l.violation(func() string {
				return fmt.Sprintf("%s is not a unit but %s = %s",
					l.dom.render(a), unary(l.invSym, l.dom.render(a)), l.dom.render(inv))
			})
		}
		return nil
	}
	if !ok {
		return l.violation(func() string {
			return fmt.Sprintf("unit %s has no inverse", l.dom.render(a))
		})
	}
	return l.check(a, inv)
}

// Test implements TestingLaw.
func (l *PartialInvertibilityLaw[A]) Test(t rapid.TB) {
	t.Helper()
	forAll(t, l.pairs, "unit,a", func(p gen.Pair[A, A]) error {
		return firstErr(l.Verify(p.First), l.Verify(p.Second))
	})
}

// ---------- Inverse involution ----------

// NewInverseInvolution checks (a⁻¹)⁻¹ = a.
func NewInverseInvolution[A any](inv op.Unary[A], dom Domain[A], opts ...Option) (*InvolutionLaw[A], error) {
	name := "inverse involution (" + inv.Symbol() + ")"
	return NewInvolution(inv, dom, append([]Option{WithName(name)}, opts...)...)
}

// ---------- Division ----------

// DivisionLaw checks (a÷b)·b = a for every b ≠ 0.
type DivisionLaw[A any] struct {
	base
	mul, div op.Binary[A]
	zero     A
	dom      Domain[A]
	pairs    *rapid.Generator[gen.Pair[A, A]]
}

// NewDivision builds the division law. Divisors are drawn from the domain
// generator with zero filtered out.
func NewDivision[A any](mul, div op.Binary[A], zero A, dom Domain[A], opts ...Option) (*DivisionLaw[A], error) {
	s := gatherSettings(opts)
	name := s.nameOr("division (" + div.Symbol() + ")")
	if err := firstErr(requireValid(name, mul.Valid(), div.Valid()), dom.validate(name)); err != nil {
		return nil, err
	}
	return &DivisionLaw[A]{
		base: base{name}, mul: mul, div: div, zero: zero, dom: dom,
		pairs: gen.PairFrom(dom.Gen, gen.NonZero(dom.Gen, zero, dom.Eq.Eqv)),
	}, nil
}

// Verify checks the identity for a and a nonzero b.
func (l *DivisionLaw[A]) Verify(a, b A) error {
	q := l.div.Apply(a, b)
	back := l.mul.Apply(q, b)
	if l.dom.Eq.Eqv(back, a) {
		return nil
	}
	return l.violation(func() string {
		r, m, d := l.dom.render, l.mul.Symbol(), l.div.Symbol()
		return statement(
			shape("(a*b)+b = a", d, m),
			expr(shape("(a*b)+b", d, m), shape("(%s*%s)+%s", d, m, r(a), r(b), r(b)), shape("%s+%s", "", m, r(q), r(b)), r(back)),
			expr("a", r(a)),
		)
	})
}

// Test implements TestingLaw.
func (l *DivisionLaw[A]) Test(t rapid.TB) {
	t.Helper()
	forAll(t, l.pairs, "a,b", func(p gen.Pair[A, A]) error { return l.Verify(p.First, p.Second) })
}

// ---------- Cancellativity ----------

// CancellativityLaw checks c⋆a = c⋆b ⇒ a = b (left) and a⋆c = b⋆c ⇒ a = b
// (right). Samples whose premise is false pass without a check.
type CancellativityLaw[A any] struct {
	base
	op      op.Binary[A]
	sym     string
	side    Side
	dom     Domain[A]
	triples *rapid.Generator[gen.Triple[A, A, A]]
}

// NewCancellativity builds the cancellation law for o.
func NewCancellativity[A any](o op.Binary[A], side Side, dom Domain[A], opts ...Option) (*CancellativityLaw[A], error) {
	s := gatherSettings(opts)
	sym := s.symbolOr(o.Symbol())
	name := s.nameOr(side.String() + " cancellativity (" + sym + ")")
	if err := firstErr(requireValid(name, o.Valid()), dom.validate(name)); err != nil {
		return nil, err
	}
	if !side.valid() {
		return nil, invalidf(name, "unknown side %d", side)
	}
	return &CancellativityLaw[A]{base: base{name}, op: o, sym: sym, side: side, dom: dom, triples: gen.TripleOf(dom.Gen)}, nil
}

// Verify checks the implication for one triple.
func (l *CancellativityLaw[A]) Verify(a, b, c A) error {
	if l.dom.Eq.Eqv(a, b) {
		return nil
	}
	r, s := l.dom.render, l.sym
	if l.side.left() {
		if ca, cb := l.op.Apply(c, a), l.op.Apply(c, b); l.dom.Eq.Eqv(ca, cb) {
			return l.violation(func() string {
				return statement(
					shape("c*a = c*b ⇒ a = b", s, ""),
					expr("c"+s+"a", shape("%s*%s", s, "", r(c), r(a)), r(ca)),
					expr("c"+s+"b", shape("%s*%s", s, "", r(c), r(b)), r(cb)),
					"a = "+r(a)+" ≠ b = "+r(b),
				)
			})
		}
	}
	if l.side.right() {
		if ac, bc := l.op.Apply(a, c), l.op.Apply(b, c); l.dom.Eq.Eqv(ac, bc) {
			return l.violation(func() string {
				return statement(
					shape("a*c = b*c ⇒ a = b", s, ""),
					expr("a"+s+"c", shape("%s*%s", s, "", r(a), r(c)), r(ac)),
					expr("b"+s+"c", shape("%s*%s", s, "", r(b), r(c)), r(bc)),
					"a = "+r(a)+" ≠ b = "+r(b),
				)
			})
		}
	}
	return nil
}

// Test implements TestingLaw.
func (l *CancellativityLaw[A]) Test(t rapid.TB) {
	t.Helper()
	forAll(t, l.triples, "a,b,c", func(x gen.Triple[A, A, A]) error {
		return l.Verify(x.First, x.Second, x.Third)
	})
}
