// SPDX-License-Identifier: MIT

package law

import (
	"pgregory.net/rapid"

	"github.com/katalvlaran/kosmos/gen"
	"github.com/katalvlaran/kosmos/op"
)

// ---------- Distributivity ----------

// DistributivityLaw checks a·(b+c) = a·b+a·c (left) and (a+b)·c = a·c+b·c
// (right).
type DistributivityLaw[A any] struct {
	base
	mul, add op.Binary[A]
	side     Side
	dom      Domain[A]
	triples  *rapid.Generator[gen.Triple[A, A, A]]
}

// NewDistributivity builds the distributivity law of mul over add.
func NewDistributivity[A any](mul, add op.Binary[A], side Side, dom Domain[A], opts ...Option) (*DistributivityLaw[A], error) {
	s := gatherSettings(opts)
	name := s.nameOr(side.String() + " distributivity (" + s.symbolOr(mul.Symbol()) + " over " + add.Symbol() + ")")
	if err := firstErr(requireValid(name, mul.Valid(), add.Valid()), dom.validate(name)); err != nil {
		return nil, err
	}
	if !side.valid() {
		return nil, invalidf(name, "unknown side %d", side)
	}
	if s.symbol != "" {
		mul = mul.WithSymbol(s.symbol)
	}
	return &DistributivityLaw[A]{base: base{name}, mul: mul, add: add, side: side, dom: dom, triples: gen.TripleOf(dom.Gen)}, nil
}

// Verify checks the selected sides for one triple.
func (l *DistributivityLaw[A]) Verify(a, b, c A) error {
	r, m, p := l.dom.render, l.mul.Symbol(), l.add.Symbol()
	if l.side.left() {
		bc := l.add.Apply(b, c)
		lhs := l.mul.Apply(a, bc)
		ab, ac := l.mul.Apply(a, b), l.mul.Apply(a, c)
		rhs := l.add.Apply(ab, ac)
		if !l.dom.Eq.Eqv(lhs, rhs) {
			return l.violation(func() string {
				const left, right = "%s*(%s+%s)", "%s*%s+%s*%s"
				return statement(
					shape(left+" = "+right, m, p, "a", "b", "c", "a", "b", "a", "c"),
					expr(shape(left, m, p, "a", "b", "c"), shape(left, m, p, r(a), r(b), r(c)), shape("%s*%s", m, p, r(a), r(bc)), r(lhs)),
					expr(shape(right, m, p, "a", "b", "a", "c"), shape(right, m, p, r(a), r(b), r(a), r(c)), shape("%s+%s", m, p, r(ab), r(ac)), r(rhs)),
				)
			})
		}
	}
	if l.side.right() {
		ab := l.add.Apply(a, b)
		lhs := l.mul.Apply(ab, c)
		ac, bc := l.mul.Apply(a, c), l.mul.Apply(b, c)
		rhs := l.add.Apply(ac, bc)
		if !l.dom.Eq.Eqv(lhs, rhs) {
			return l.violation(func() string {
				const left, right = "(%s+%s)*%s", "%s*%s+%s*%s"
				return statement(
					shape(left+" = "+right, m, p, "a", "b", "c", "a", "c", "b", "c"),
					expr(shape(left, m, p, "a", "b", "c"), shape(left, m, p, r(a), r(b), r(c)), shape("%s*%s", m, p, r(ab), r(c)), r(lhs)),
					expr(shape(right, m, p, "a", "c", "b", "c"), shape(right, m, p, r(a), r(c), r(b), r(c)), shape("%s+%s", m, p, r(ac), r(bc)), r(rhs)),
				)
			})
		}
	}
	return nil
}

// Test implements TestingLaw.
func (l *DistributivityLaw[A]) Test(t rapid.TB) {
	t.Helper()
	forAll(t, l.triples, "a,b,c", func(x gen.Triple[A, A, A]) error {
		return l.Verify(x.First, x.Second, x.Third)
	})
}

// ---------- Absorption ----------

// AbsorptionLaw checks a∧(a∨b) = a and a∨(a∧b) = a.
type AbsorptionLaw[A any] struct {
	base
	join, meet op.Binary[A]
	dom        Domain[A]
	pairs      *rapid.Generator[gen.Pair[A, A]]
}

// NewAbsorption builds the absorption law for a lattice.
func NewAbsorption[A any](join, meet op.Binary[A], dom Domain[A], opts ...Option) (*AbsorptionLaw[A], error) {
	s := gatherSettings(opts)
	name := s.nameOr("absorption (" + join.Symbol() + ", " + meet.Symbol() + ")")
	if err := firstErr(requireValid(name, join.Valid(), meet.Valid()), dom.validate(name)); err != nil {
		return nil, err
	}
	return &AbsorptionLaw[A]{base: base{name}, join: join, meet: meet, dom: dom, pairs: gen.PairOf(dom.Gen)}, nil
}

// Verify checks both absorption identities for one pair.
func (l *AbsorptionLaw[A]) Verify(a, b A) error {
	return firstErr(l.absorb(l.meet, l.join, a, b), l.absorb(l.join, l.meet, a, b))
}

// absorb checks a outer (a inner b) = a.
func (l *AbsorptionLaw[A]) absorb(outer, inner op.Binary[A], a, b A) error {
	ab := inner.Apply(a, b)
	got := outer.Apply(a, ab)
	if l.dom.Eq.Eqv(got, a) {
		return nil
	}
	return l.violation(func() string {
		r, o, i := l.dom.render, outer.Symbol(), inner.Symbol()
		const pattern = "%s*(%s+%s)"
		return statement(
			shape(pattern+" = %s", o, i, "a", "a", "b", "a"),
			expr(shape(pattern, o, i, "a", "a", "b"), shape(pattern, o, i, r(a), r(a), r(b)), shape("%s*%s", o, i, r(a), r(ab)), r(got)),
			expr("a", r(a)),
		)
	})
}

// Test implements TestingLaw.
func (l *AbsorptionLaw[A]) Test(t rapid.TB) {
	t.Helper()
	forAll(t, l.pairs, "a,b", func(p gen.Pair[A, A]) error { return l.Verify(p.First, p.Second) })
}

// ---------- Complementation ----------

// ComplementationLaw checks ¬¬x = x, x∧¬x = ⊥ and x∨¬x = ⊤.
type ComplementationLaw[A any] struct {
	base
	join, meet  op.Binary[A]
	not         op.Unary[A]
	bottom, top A
	dom         Domain[A]
}

// NewComplementation builds the Boolean complement law. The bounds are
// checked eagerly: ¬⊥ must be ⊤ and ¬⊤ must be ⊥.
func NewComplementation[A any](join, meet op.Binary[A], not op.Unary[A], bottom, top A, dom Domain[A], opts ...Option) (*ComplementationLaw[A], error) {
	s := gatherSettings(opts)
	name := s.nameOr("complementation (" + not.Symbol() + ")")
	if err := firstErr(requireValid(name, join.Valid(), meet.Valid(), not.Valid()), dom.validate(name)); err != nil {
		return nil, err
	}
	if nb := not.Apply(bottom); !dom.Eq.Eqv(nb, top) {
		return nil, invalidf(name, "%s = %s, want ⊤ = %s", unary(not.Symbol(), "⊥"), dom.render(nb), dom.render(top))
	}
	if nt := not.Apply(top); !dom.Eq.Eqv(nt, bottom) {
		return nil, invalidf(name, "%s = %s, want ⊥ = %s", unary(not.Symbol(), "⊤"), dom.render(nt), dom.render(bottom))
	}
	return &ComplementationLaw[A]{base: base{name}, join: join, meet: meet, not: not, bottom: bottom, top: top, dom: dom}, nil
}

// Verify checks the three clauses for one element.
func (l *ComplementationLaw[A]) Verify(x A) error {
	r, n := l.dom.render, l.not.Symbol()
	nx := l.not.Apply(x)
	if nnx := l.not.Apply(nx); !l.dom.Eq.Eqv(nnx, x) {
		return l.violation(func() string {
			return statement(
				unary(n, unary(n, "x"))+" = x",
				expr(unary(n, unary(n, "x")), unary(n, unary(n, r(x))), unary(n, r(nx)), r(nnx)),
				expr("x", r(x)),
			)
		})
	}
	if err := l.bound(l.meet, x, nx, l.bottom, "⊥"); err != nil {
		return err
	}
	return l.bound(l.join, x, nx, l.top, "⊤")
}

// bound checks x op ¬x = want.
func (l *ComplementationLaw[A]) bound(o op.Binary[A], x, nx, want A, label string) error {
	got := o.Apply(x, nx)
	if l.dom.Eq.Eqv(got, want) {
		return nil
	}
	return l.violation(func() string {
		r, s, n := l.dom.render, o.Symbol(), l.not.Symbol()
		return statement(
			shape("x*%s = %s", s, "", unary(n, "x"), label),
			expr(shape("x*%s", s, "", unary(n, "x")), shape("%s*%s", s, "", r(x), r(nx)), r(got)),
			expr(label, r(want)),
		)
	})
}

// Test implements TestingLaw.
func (l *ComplementationLaw[A]) Test(t rapid.TB) {
	t.Helper()
	forAll(t, l.dom.Gen, "x", l.Verify)
}
