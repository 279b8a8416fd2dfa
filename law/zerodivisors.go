// SPDX-License-Identifier: MIT

package law

import (
	"pgregory.net/rapid"

	"github.com/katalvlaran/kosmos/gen"
	"github.com/katalvlaran/kosmos/op"
)

// NoZeroDivisorsLaw checks that nonzero elements are not zero divisors:
// for x ≠ 0, x⋆y = 0 ⇒ y = 0 (Left) and y⋆x = 0 ⇒ y = 0 (Right).
// x is drawn with zero filtered out; y is drawn freely.
type NoZeroDivisorsLaw[A any] struct {
	base
	mul   op.Binary[A]
	sym   string
	zero  A
	side  Side
	dom   Domain[A]
	pairs *rapid.Generator[gen.Pair[A, A]]
}

// NewNoZeroDivisors builds the law for mul with zero element zero.
func NewNoZeroDivisors[A any](mul op.Binary[A], zero A, side Side, dom Domain[A], opts ...Option) (*NoZeroDivisorsLaw[A], error) {
	s := gatherSettings(opts)
	sym := s.symbolOr(mul.Symbol())
	name := s.nameOr("no " + side.String() + " zero divisors (" + sym + ")")
	if err := firstErr(requireValid(name, mul.Valid()), dom.validate(name)); err != nil {
		return nil, err
	}
	if !side.valid() {
		return nil, invalidf(name, "unknown side %d", side)
	}
	return &NoZeroDivisorsLaw[A]{
		base: base{name}, mul: mul, sym: sym, zero: zero, side: side, dom: dom,
		pairs: gen.PairFrom(gen.NonZero(dom.Gen, zero, dom.Eq.Eqv), dom.Gen),
	}, nil
}

// Verify checks the implications for a nonzero x and any y. A zero x
// passes trivially.
func (l *NoZeroDivisorsLaw[A]) Verify(x, y A) error {
	if l.dom.Eq.Eqv(x, l.zero) || l.dom.Eq.Eqv(y, l.zero) {
		return nil
	}
	if l.side.left() {
		if xy := l.mul.Apply(x, y); l.dom.Eq.Eqv(xy, l.zero) {
			return l.divisor("x*y = 0 ⇒ y = 0", x, y, x, y, xy)
		}
	}
	if l.side.right() {
		if yx := l.mul.Apply(y, x); l.dom.Eq.Eqv(yx, l.zero) {
			return l.divisor("y*x = 0 ⇒ y = 0", x, y, y, x, yx)
		}
	}
	return nil
}

func (l *NoZeroDivisorsLaw[A]) divisor(identity string, x, y, a, b, ab A) error {
	return l.violation(func() string {
		r, s := l.dom.render, l.sym
		return statement(
			shape(identity, s, ""),
			expr(shape("%s*%s", s, "", r(a), r(b)), r(ab)),
			"x = "+r(x)+", y = "+r(y)+" are both nonzero",
		)
	})
}

// Test implements TestingLaw.
func (l *NoZeroDivisorsLaw[A]) Test(t rapid.TB) {
	t.Helper()
	forAll(t, l.pairs, "x,y", func(p gen.Pair[A, A]) error { return l.Verify(p.First, p.Second) })
}
