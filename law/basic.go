// SPDX-License-Identifier: MIT

package law

import (
	"fmt"

	"pgregory.net/rapid"

	"github.com/katalvlaran/kosmos/gen"
	"github.com/katalvlaran/kosmos/op"
)

// ---------- Totality ----------

// TotalityLaw checks that a binary operation does not panic on sampled
// inputs, i.e. that it is not partial in disguise.
type TotalityLaw[A any] struct {
	base
	op    op.Binary[A]
	sym   string
	dom   Domain[A]
	pairs *rapid.Generator[gen.Pair[A, A]]
}

// NewTotality builds the totality law for o.
func NewTotality[A any](o op.Binary[A], dom Domain[A], opts ...Option) (*TotalityLaw[A], error) {
	s := gatherSettings(opts)
	sym := s.symbolOr(o.Symbol())
	name := s.nameOr("totality (" + sym + ")")
	if err := firstErr(requireValid(name, o.Valid()), dom.validate(name)); err != nil {
		return nil, err
	}
	return &TotalityLaw[A]{base: base{name}, op: o, sym: sym, dom: dom, pairs: gen.PairOf(dom.Gen)}, nil
}

// Verify evaluates a⋆b and reports a panic as ErrTotality.
func (l *TotalityLaw[A]) Verify(a, b A) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = newViolation(ErrTotality, l.name, func() string {
				return fmt.Sprintf("%s panicked: %v", shape("%s*%s", l.sym, "", l.dom.render(a), l.dom.render(b)), p)
			})
		}
	}()
	l.op.Apply(a, b)
	return nil
}

// Test implements TestingLaw.
func (l *TotalityLaw[A]) Test(t rapid.TB) {
	t.Helper()
	forAll(t, l.pairs, "a,b", func(p gen.Pair[A, A]) error { return l.Verify(p.First, p.Second) })
}

// UnaryTotalityLaw checks that a unary operation does not panic.
type UnaryTotalityLaw[A any] struct {
	base
	op  op.Unary[A]
	sym string
	dom Domain[A]
}

// NewUnaryTotality builds the totality law for a unary operation.
func NewUnaryTotality[A any](u op.Unary[A], dom Domain[A], opts ...Option) (*UnaryTotalityLaw[A], error) {
	s := gatherSettings(opts)
	sym := s.symbolOr(u.Symbol())
	name := s.nameOr("totality (" + sym + ")")
	if err := firstErr(requireValid(name, u.Valid()), dom.validate(name)); err != nil {
		return nil, err
	}
	return &UnaryTotalityLaw[A]{base: base{name}, op: u, sym: sym, dom: dom}, nil
}

// Verify evaluates the operation on a and reports a panic as ErrTotality.
func (l *UnaryTotalityLaw[A]) Verify(a A) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = newViolation(ErrTotality, l.name, func() string {
				return fmt.Sprintf("%s panicked: %v", unary(l.sym, l.dom.render(a)), p)
			})
		}
	}()
	l.op.Apply(a)
	return nil
}

// Test implements TestingLaw.
func (l *UnaryTotalityLaw[A]) Test(t rapid.TB) {
	t.Helper()
	forAll(t, l.dom.Gen, "a", l.Verify)
}

// ---------- Associativity ----------

// AssociativityLaw checks a⋆(b⋆c) = (a⋆b)⋆c.
type AssociativityLaw[A any] struct {
	base
	op      op.Binary[A]
	sym     string
	dom     Domain[A]
	triples *rapid.Generator[gen.Triple[A, A, A]]
}

// NewAssociativity builds the associativity law for o.
func NewAssociativity[A any](o op.Binary[A], dom Domain[A], opts ...Option) (*AssociativityLaw[A], error) {
	s := gatherSettings(opts)
	sym := s.symbolOr(o.Symbol())
	name := s.nameOr("associativity (" + sym + ")")
	if err := firstErr(requireValid(name, o.Valid()), dom.validate(name)); err != nil {
		return nil, err
	}
	return &AssociativityLaw[A]{base: base{name}, op: o, sym: sym, dom: dom, triples: gen.TripleOf(dom.Gen)}, nil
}

// Verify checks the identity for one triple.
func (l *AssociativityLaw[A]) Verify(a, b, c A) error {
	bc := l.op.Apply(b, c)
	lhs := l.op.Apply(a, bc)
	ab := l.op.Apply(a, b)
	rhs := l.op.Apply(ab, c)
	if l.dom.Eq.Eqv(lhs, rhs) {
		return nil
	}
	return l.violation(func() string {
		r, s := l.dom.render, l.sym
		const left, right = "%s*(%s*%s)", "(%s*%s)*%s"
		return statement(
			shape(left, s, "", "a", "b", "c")+" = "+shape(right, s, "", "a", "b", "c"),
			expr(shape(left, s, "", "a", "b", "c"), shape(left, s, "", r(a), r(b), r(c)), shape("%s*%s", s, "", r(a), r(bc)), r(lhs)),
			expr(shape(right, s, "", "a", "b", "c"), shape(right, s, "", r(a), r(b), r(c)), shape("%s*%s", s, "", r(ab), r(c)), r(rhs)),
		)
	})
}

// Test implements TestingLaw.
func (l *AssociativityLaw[A]) Test(t rapid.TB) {
	t.Helper()
	forAll(t, l.triples, "a,b,c", func(x gen.Triple[A, A, A]) error {
		return l.Verify(x.First, x.Second, x.Third)
	})
}

// ---------- Commutativity ----------

// CommutativityLaw checks a⋆b = b⋆a.
type CommutativityLaw[A any] struct {
	base
	op    op.Binary[A]
	sym   string
	dom   Domain[A]
	pairs *rapid.Generator[gen.Pair[A, A]]
}

// NewCommutativity builds the commutativity law for o.
func NewCommutativity[A any](o op.Binary[A], dom Domain[A], opts ...Option) (*CommutativityLaw[A], error) {
	s := gatherSettings(opts)
	sym := s.symbolOr(o.Symbol())
	name := s.nameOr("commutativity (" + sym + ")")
	if err := firstErr(requireValid(name, o.Valid()), dom.validate(name)); err != nil {
		return nil, err
	}
	return &CommutativityLaw[A]{base: base{name}, op: o, sym: sym, dom: dom, pairs: gen.PairOf(dom.Gen)}, nil
}

// Verify checks the identity for one pair.
func (l *CommutativityLaw[A]) Verify(a, b A) error {
	lhs, rhs := l.op.Apply(a, b), l.op.Apply(b, a)
	if l.dom.Eq.Eqv(lhs, rhs) {
		return nil
	}
	return l.violation(func() string {
		r, s := l.dom.render, l.sym
		return statement(
			shape("%s*%s = %s*%s", s, "", "a", "b", "b", "a"),
			expr(shape("%s*%s", s, "", "a", "b"), shape("%s*%s", s, "", r(a), r(b)), r(lhs)),
			expr(shape("%s*%s", s, "", "b", "a"), shape("%s*%s", s, "", r(b), r(a)), r(rhs)),
		)
	})
}

// Test implements TestingLaw.
func (l *CommutativityLaw[A]) Test(t rapid.TB) {
	t.Helper()
	forAll(t, l.pairs, "a,b", func(p gen.Pair[A, A]) error { return l.Verify(p.First, p.Second) })
}

// ---------- Idempotence ----------

// IdempotenceLaw checks a⋆a = a.
type IdempotenceLaw[A any] struct {
	base
	op  op.Binary[A]
	sym string
	dom Domain[A]
}

// NewIdempotence builds the idempotence law for o.
func NewIdempotence[A any](o op.Binary[A], dom Domain[A], opts ...Option) (*IdempotenceLaw[A], error) {
	s := gatherSettings(opts)
	sym := s.symbolOr(o.Symbol())
	name := s.nameOr("idempotence (" + sym + ")")
	if err := firstErr(requireValid(name, o.Valid()), dom.validate(name)); err != nil {
		return nil, err
	}
	return &IdempotenceLaw[A]{base: base{name}, op: o, sym: sym, dom: dom}, nil
}

// Verify checks the identity for one element.
func (l *IdempotenceLaw[A]) Verify(a A) error {
	aa := l.op.Apply(a, a)
	if l.dom.Eq.Eqv(aa, a) {
		return nil
	}
	return l.violation(func() string {
		r := l.dom.render
		return statement(
			shape("%s*%s = %s", l.sym, "", "a", "a", "a"),
			expr(shape("%s*%s", l.sym, "", "a", "a"), shape("%s*%s", l.sym, "", r(a), r(a)), r(aa)),
			expr("a", r(a)),
		)
	})
}

// Test implements TestingLaw.
func (l *IdempotenceLaw[A]) Test(t rapid.TB) {
	t.Helper()
	forAll(t, l.dom.Gen, "a", l.Verify)
}

// ---------- Identity ----------

// IdentityLaw checks e⋆a = a (left), a⋆e = a (right) or both.
type IdentityLaw[A any] struct {
	base
	op   op.Binary[A]
	sym  string
	e    A
	side Side
	dom  Domain[A]
}

// NewIdentity builds the identity law for o with neutral element e.
func NewIdentity[A any](o op.Binary[A], e A, side Side, dom Domain[A], opts ...Option) (*IdentityLaw[A], error) {
	s := gatherSettings(opts)
	sym := s.symbolOr(o.Symbol())
	name := s.nameOr(side.String() + " identity (" + sym + ")")
	if err := firstErr(requireValid(name, o.Valid()), dom.validate(name)); err != nil {
		return nil, err
	}
	if !side.valid() {
		return nil, invalidf(name, "unknown side %d", side)
	}
	return &IdentityLaw[A]{base: base{name}, op: o, sym: sym, e: e, side: side, dom: dom}, nil
}

// Verify checks the selected sides for one element.
func (l *IdentityLaw[A]) Verify(a A) error {
	r, s := l.dom.render, l.sym
	if l.side.left() {
		ea := l.op.Apply(l.e, a)
		if !l.dom.Eq.Eqv(ea, a) {
			return l.violation(func() string {
				return statement(
					shape("e*%s = %s", s, "", "a", "a"),
					expr(shape("e*%s", s, "", "a"), shape("%s*%s", s, "", r(l.e), r(a)), r(ea)),
					expr("a", r(a)),
				)
			})
		}
	}
	if l.side.right() {
		ae := l.op.Apply(a, l.e)
		if !l.dom.Eq.Eqv(ae, a) {
			return l.violation(func() string {
				return statement(
					shape("%s*e = %s", s, "", "a", "a"),
					expr(shape("%s*e", s, "", "a"), shape("%s*%s", s, "", r(a), r(l.e)), r(ae)),
					expr("a", r(a)),
				)
			})
		}
	}
	return nil
}

// Test implements TestingLaw.
func (l *IdentityLaw[A]) Test(t rapid.TB) {
	t.Helper()
	forAll(t, l.dom.Gen, "a", l.Verify)
}

// ---------- Annihilation ----------

// AnnihilationLaw checks 0⋆a = 0 (left), a⋆0 = 0 (right) or both.
type AnnihilationLaw[A any] struct {
	base
	op   op.Binary[A]
	sym  string
	zero A
	side Side
	dom  Domain[A]
}

// NewAnnihilation builds the annihilation law for o with absorbing zero.
func NewAnnihilation[A any](o op.Binary[A], zero A, side Side, dom Domain[A], opts ...Option) (*AnnihilationLaw[A], error) {
	s := gatherSettings(opts)
	sym := s.symbolOr(o.Symbol())
	name := s.nameOr(side.String() + " annihilation (" + sym + ")")
	if err := firstErr(requireValid(name, o.Valid()), dom.validate(name)); err != nil {
		return nil, err
	}
	if !side.valid() {
		return nil, invalidf(name, "unknown side %d", side)
	}
	return &AnnihilationLaw[A]{base: base{name}, op: o, sym: sym, zero: zero, side: side, dom: dom}, nil
}

// Verify checks the selected sides for one element.
func (l *AnnihilationLaw[A]) Verify(a A) error {
	r, s := l.dom.render, l.sym
	if l.side.left() {
		za := l.op.Apply(l.zero, a)
		if !l.dom.Eq.Eqv(za, l.zero) {
			return l.violation(func() string {
				return statement(
					shape("0*%s = 0", s, "", "a"),
					expr(shape("0*%s", s, "", "a"), shape("%s*%s", s, "", r(l.zero), r(a)), r(za)),
					expr("0", r(l.zero)),
				)
			})
		}
	}
	if l.side.right() {
		az := l.op.Apply(a, l.zero)
		if !l.dom.Eq.Eqv(az, l.zero) {
			return l.violation(func() string {
				return statement(
					shape("%s*0 = 0", s, "", "a"),
					expr(shape("%s*0", s, "", "a"), shape("%s*%s", s, "", r(a), r(l.zero)), r(az)),
					expr("0", r(l.zero)),
				)
			})
		}
	}
	return nil
}

// Test implements TestingLaw.
func (l *AnnihilationLaw[A]) Test(t rapid.TB) {
	t.Helper()
	forAll(t, l.dom.Gen, "a", l.Verify)
}

// ---------- Non-triviality ----------

// NonTrivialLaw checks 0 ≠ 1, which separates fields and division rings
// from the zero ring.
type NonTrivialLaw[A any] struct {
	base
	zero, one A
	dom       Codomain[A]
}

// NewNonTrivial builds the 0 ≠ 1 law.
func NewNonTrivial[A any](zero, one A, dom Codomain[A], opts ...Option) (*NonTrivialLaw[A], error) {
	s := gatherSettings(opts)
	name := s.nameOr("non-triviality (0 ≠ 1)")
	if err := dom.validate(name); err != nil {
		return nil, err
	}
	return &NonTrivialLaw[A]{base: base{name}, zero: zero, one: one, dom: dom}, nil
}

// Verify checks the single clause.
func (l *NonTrivialLaw[A]) Verify() error {
	if !l.dom.Eq.Eqv(l.zero, l.one) {
		return nil
	}
	return l.violation(func() string {
		return statement("0 ≠ 1", expr("0", l.dom.render(l.zero)), expr("1", l.dom.render(l.one)))
	})
}

// Test implements TestingLaw; there is nothing to sample.
func (l *NonTrivialLaw[A]) Test(t rapid.TB) {
	t.Helper()
	once(t, l.Verify)
}
