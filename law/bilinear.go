// SPDX-License-Identifier: MIT

package law

import (
	"pgregory.net/rapid"

	"github.com/katalvlaran/kosmos/gen"
	"github.com/katalvlaran/kosmos/op"
)

// Module bundles the addition and scalar action of a carrier V over S.
type Module[S, V any] struct {
	Add   op.Binary[V]
	Scale op.Action[S, V]
}

func (m Module[S, V]) valid() bool { return m.Add.Valid() && m.Scale.Valid() }

// Scalars bundles the ring operations of a scalar carrier.
type Scalars[S any] struct {
	Add, Mul  op.Binary[S]
	Zero, One S
}

// Module views the scalars as a module over themselves, the codomain of
// bilinear forms.
// Without Mul the action is left unset.
func (sc Scalars[S]) Module() Module[S, S] {
	m := Module[S, S]{Add: sc.Add}
	if sc.Mul.Valid() {
		m.Scale = op.NewAction(sc.Mul.Symbol(), sc.Mul.Func())
	}
	return m
}

// BilinearMap describes f: V×W → X together with the linear structure of
// its arguments and result.
type BilinearMap[S, V, W, X any] struct {
	F op.Form[V, W, X]
	V Module[S, V]
	W Module[S, W]
	X Module[S, X]
}

// ---------- Bilinearity ----------

// BilinearityLaw checks additivity and homogeneity of f in its first
// argument (Left), its second (Right) or both:
//
//	f(v₁+v₂, w) = f(v₁, w)+f(v₂, w)    f(s·v, w) = s·f(v, w)
//	f(v, w₁+w₂) = f(v, w₁)+f(v, w₂)    f(v, s·w) = s·f(v, w)
type BilinearityLaw[S, V, W, X any] struct {
	base
	m       BilinearMap[S, V, W, X]
	side    Side
	scalars Domain[S]
	left    Domain[V]
	right   Domain[W]
	out     Codomain[X]
	samples *rapid.Generator[bilinearSample[S, V, W]]
}

type bilinearSample[S, V, W any] struct {
	s      S
	v1, v2 V
	w1, w2 W
}

// NewBilinearMap builds the bilinearity law for f: V×W → X over S.
func NewBilinearMap[S, V, W, X any](m BilinearMap[S, V, W, X], side Side, scalars Domain[S], left Domain[V], right Domain[W], out Codomain[X], opts ...Option) (*BilinearityLaw[S, V, W, X], error) {
	s := gatherSettings(opts)
	name := s.nameOr(side.String() + " bilinearity (" + m.F.Name() + ")")
	if err := firstErr(
		requireValid(name, m.F.Valid(), m.V.valid(), m.W.valid(), m.X.valid()),
		scalars.validate(name), left.validate(name), right.validate(name), out.validate(name),
	); err != nil {
		return nil, err
	}
	if !side.valid() {
		return nil, invalidf(name, "unknown side %d", side)
	}
	return &BilinearityLaw[S, V, W, X]{
		base: base{name}, m: m, side: side, scalars: scalars, left: left, right: right, out: out,
		samples: rapid.Custom(func(t *rapid.T) bilinearSample[S, V, W] {
			return bilinearSample[S, V, W]{
				s:  scalars.Gen.Draw(t, "s"),
				v1: left.Gen.Draw(t, "v1"),
				v2: left.Gen.Draw(t, "v2"),
				w1: right.Gen.Draw(t, "w1"),
				w2: right.Gen.Draw(t, "w2"),
			}
		}),
	}, nil
}

// NewBilinearity builds the bilinearity law for a form f: V×V → X whose
// arguments share one carrier.
func NewBilinearity[S, V, X any](f op.Form[V, V, X], vs Module[S, V], xs Module[S, X], side Side, scalars Domain[S], dom Domain[V], out Codomain[X], opts ...Option) (*BilinearityLaw[S, V, V, X], error) {
	return NewBilinearMap(BilinearMap[S, V, V, X]{F: f, V: vs, W: vs, X: xs}, side, scalars, dom, dom, out, opts...)
}

// Verify checks the selected clauses for one sample. Clauses about the
// first argument use w₁ as the fixed second argument; clauses about the
// second use v₁.
func (l *BilinearityLaw[S, V, W, X]) Verify(s S, v1, v2 V, w1, w2 W) error {
	f, fn := l.m.F, l.m.F.Name()
	rv, rw, rx, rs := l.left.render, l.right.render, l.out.render, l.scalars.render
	plusV, plusW, plusX := l.m.V.Add.Symbol(), l.m.W.Add.Symbol(), l.m.X.Add.Symbol()
	dotV, dotW, dotX := l.m.V.Scale.Symbol(), l.m.W.Scale.Symbol(), l.m.X.Scale.Symbol()

	if l.side.left() {
		sum := l.m.V.Add.Apply(v1, v2)
		lhs := f.Apply(sum, w1)
		a, b := f.Apply(v1, w1), f.Apply(v2, w1)
		rhs := l.m.X.Add.Apply(a, b)
		if !l.out.Eq.Eqv(lhs, rhs) {
			return l.violation(func() string {
				return statement(
					call(fn, "v₁"+plusV+"v₂", "w")+" = "+call(fn, "v₁", "w")+plusX+call(fn, "v₂", "w"),
					expr(call(fn, rv(v1)+plusV+rv(v2), rw(w1)), call(fn, rv(sum), rw(w1)), rx(lhs)),
					expr(call(fn, rv(v1), rw(w1))+plusX+call(fn, rv(v2), rw(w1)), rx(a)+plusX+rx(b), rx(rhs)),
				)
			})
		}
		sv := l.m.V.Scale.Apply(s, v1)
		lhs = f.Apply(sv, w1)
		a = f.Apply(v1, w1)
		rhs = l.m.X.Scale.Apply(s, a)
		if !l.out.Eq.Eqv(lhs, rhs) {
			return l.violation(func() string {
				return statement(
					call(fn, "s"+dotV+"v", "w")+" = s"+dotX+call(fn, "v", "w"),
					expr(call(fn, rs(s)+dotV+rv(v1), rw(w1)), call(fn, rv(sv), rw(w1)), rx(lhs)),
					expr(rs(s)+dotX+call(fn, rv(v1), rw(w1)), rs(s)+dotX+rx(a), rx(rhs)),
				)
			})
		}
	}
	if l.side.right() {
		sum := l.m.W.Add.Apply(w1, w2)
		lhs := f.Apply(v1, sum)
		a, b := f.Apply(v1, w1), f.Apply(v1, w2)
		rhs := l.m.X.Add.Apply(a, b)
		if !l.out.Eq.Eqv(lhs, rhs) {
			return l.violation(func() string {
				return statement(
					call(fn, "v", "w₁"+plusW+"w₂")+" = "+call(fn, "v", "w₁")+plusX+call(fn, "v", "w₂"),
					expr(call(fn, rv(v1), rw(w1)+plusW+rw(w2)), call(fn, rv(v1), rw(sum)), rx(lhs)),
					expr(call(fn, rv(v1), rw(w1))+plusX+call(fn, rv(v1), rw(w2)), rx(a)+plusX+rx(b), rx(rhs)),
				)
			})
		}
		sw := l.m.W.Scale.Apply(s, w1)
		lhs = f.Apply(v1, sw)
		a = f.Apply(v1, w1)
		rhs = l.m.X.Scale.Apply(s, a)
		if !l.out.Eq.Eqv(lhs, rhs) {
			return l.violation(func() string {
				return statement(
					call(fn, "v", "s"+dotW+"w")+" = s"+dotX+call(fn, "v", "w"),
					expr(call(fn, rv(v1), rs(s)+dotW+rw(w1)), call(fn, rv(v1), rw(sw)), rx(lhs)),
					expr(rs(s)+dotX+call(fn, rv(v1), rw(w1)), rs(s)+dotX+rx(a), rx(rhs)),
				)
			})
		}
	}
	return nil
}

// Test implements TestingLaw.
func (l *BilinearityLaw[S, V, W, X]) Test(t rapid.TB) {
	t.Helper()
	forAll(t, l.samples, "s,v1,v2,w1,w2", func(x bilinearSample[S, V, W]) error {
		return l.Verify(x.s, x.v1, x.v2, x.w1, x.w2)
	})
}

// ---------- Symmetry ----------

// SymmetryLaw checks f(v, w) = f(w, v).
type SymmetryLaw[V, X any] struct {
	base
	f     op.Form[V, V, X]
	dom   Domain[V]
	out   Codomain[X]
	pairs *rapid.Generator[gen.Pair[V, V]]
}

// NewSymmetry builds the symmetry law for a form.
func NewSymmetry[V, X any](f op.Form[V, V, X], dom Domain[V], out Codomain[X], opts ...Option) (*SymmetryLaw[V, X], error) {
	s := gatherSettings(opts)
	name := s.nameOr("symmetry (" + f.Name() + ")")
	if err := firstErr(requireValid(name, f.Valid()), dom.validate(name), out.validate(name)); err != nil {
		return nil, err
	}
	return &SymmetryLaw[V, X]{base: base{name}, f: f, dom: dom, out: out, pairs: gen.PairOf(dom.Gen)}, nil
}

// Verify checks the identity for one pair.
func (l *SymmetryLaw[V, X]) Verify(v, w V) error {
	lhs, rhs := l.f.Apply(v, w), l.f.Apply(w, v)
	if l.out.Eq.Eqv(lhs, rhs) {
		return nil
	}
	return l.violation(func() string {
		fn, r := l.f.Name(), l.dom.render
		return statement(
			call(fn, "v", "w")+" = "+call(fn, "w", "v"),
			expr(call(fn, r(v), r(w)), l.out.render(lhs)),
			expr(call(fn, r(w), r(v)), l.out.render(rhs)),
		)
	})
}

// Test implements TestingLaw.
func (l *SymmetryLaw[V, X]) Test(t rapid.TB) {
	t.Helper()
	forAll(t, l.pairs, "v,w", func(p gen.Pair[V, V]) error { return l.Verify(p.First, p.Second) })
}

// ---------- Positive definiteness ----------

// PositiveDefiniteLaw checks f(x, x) ≥ 0 and f(x, x) = 0 ⇔ x = 0, where
// "≥ 0" is decided by a caller-supplied predicate so that no ordering of
// the scalars is assumed.
type PositiveDefiniteLaw[V, X any] struct {
	base
	f             op.Form[V, V, X]
	isNonNegative func(X) bool
	zeroV         V
	zeroX         X
	dom           Domain[V]
	out           Codomain[X]
	vectors       *rapid.Generator[V]
}

// NewPositiveDefinite builds the positive-definiteness law. zeroV is mixed
// into the samples; zeroX must satisfy isNonNegative.
func NewPositiveDefinite[V, X any](f op.Form[V, V, X], isNonNegative func(X) bool, zeroV V, zeroX X, dom Domain[V], out Codomain[X], opts ...Option) (*PositiveDefiniteLaw[V, X], error) {
	s := gatherSettings(opts)
	name := s.nameOr("positive definiteness (" + f.Name() + ")")
	if err := firstErr(requireValid(name, f.Valid(), isNonNegative != nil), dom.validate(name), out.validate(name)); err != nil {
		return nil, err
	}
	if !isNonNegative(zeroX) {
		return nil, invalidf(name, "zero %s is not non-negative", out.render(zeroX))
	}
	return &PositiveDefiniteLaw[V, X]{
		base: base{name}, f: f, isNonNegative: isNonNegative, zeroV: zeroV, zeroX: zeroX,
		dom: dom, out: out, vectors: gen.WithEdgeCases(dom.Gen, zeroV),
	}, nil
}

// Verify checks both clauses for one vector.
func (l *PositiveDefiniteLaw[V, X]) Verify(x V) error {
	fn, r := l.f.Name(), l.dom.render
	q := l.f.Apply(x, x)
	if !l.isNonNegative(q) {
		return l.violation(func() string {
			return statement(call(fn, "x", "x")+" ≥ 0", expr(call(fn, r(x), r(x)), l.out.render(q)))
		})
	}
	zeroQ, zeroV := l.out.Eq.Eqv(q, l.zeroX), l.dom.Eq.Eqv(x, l.zeroV)
	if zeroQ == zeroV {
		return nil
	}
	return l.violation(func() string {
		return statement(
			call(fn, "x", "x")+" = 0 ⇔ x = 0",
			expr(call(fn, r(x), r(x)), l.out.render(q)),
			expr("x", r(x)),
		)
	})
}

// Test implements TestingLaw.
func (l *PositiveDefiniteLaw[V, X]) Test(t rapid.TB) {
	t.Helper()
	forAll(t, l.vectors, "x", l.Verify)
}

// ---------- Scalar action ----------

// ActionClause selects one axiom of a scalar action.
type ActionClause int

const (
	// Compatibility is (s·t)·v = s·(t·v).
	Compatibility ActionClause = iota
	// Unital is 1·v = v.
	Unital
	// VectorDistributivity is s·(v+w) = s·v+s·w.
	VectorDistributivity
	// ScalarDistributivity is (s+t)·v = s·v+t·v.
	ScalarDistributivity
)

// String implements fmt.Stringer.
func (c ActionClause) String() string {
	switch c {
	case Compatibility:
		return "compatibility"
	case Unital:
		return "unit"
	case VectorDistributivity:
		return "distributivity over vectors"
	case ScalarDistributivity:
		return "distributivity over scalars"
	default:
		return "unknown"
	}
}

// ScalarActionLaw checks one axiom of a module's scalar action.
type ScalarActionLaw[S, V any] struct {
	base
	clause  ActionClause
	sc      Scalars[S]
	m       Module[S, V]
	scalars Domain[S]
	dom     Domain[V]
	samples *rapid.Generator[gen.Quad[S, S, V, V]]
}

// NewScalarAction builds the selected action axiom. Only the operations the
// clause uses must be set.
func NewScalarAction[S, V any](clause ActionClause, sc Scalars[S], m Module[S, V], scalars Domain[S], dom Domain[V], opts ...Option) (*ScalarActionLaw[S, V], error) {
	s := gatherSettings(opts)
	name := s.nameOr("scalar action " + clause.String() + " (" + m.Scale.Symbol() + ")")
	var need []bool
	switch clause {
	case Compatibility:
		need = []bool{m.Scale.Valid(), sc.Mul.Valid()}
	case Unital:
		need = []bool{m.Scale.Valid()}
	case VectorDistributivity:
		need = []bool{m.Scale.Valid(), m.Add.Valid()}
	case ScalarDistributivity:
		need = []bool{m.Scale.Valid(), m.Add.Valid(), sc.Add.Valid()}
	default:
		return nil, invalidf(name, "unknown clause %d", clause)
	}
	if err := firstErr(requireValid(name, need...), scalars.validate(name), dom.validate(name)); err != nil {
		return nil, err
	}
	return &ScalarActionLaw[S, V]{
		base: base{name}, clause: clause, sc: sc, m: m, scalars: scalars, dom: dom,
		samples: gen.QuadFrom(scalars.Gen, scalars.Gen, dom.Gen, dom.Gen),
	}, nil
}

// Verify checks the clause for scalars s, t and vectors v, w; unused
// arguments are ignored.
func (l *ScalarActionLaw[S, V]) Verify(s, t S, v, w V) error {
	act, add := l.m.Scale, l.m.Add
	rs, rv := l.scalars.render, l.dom.render
	dot := act.Symbol()
	var (
		lhs, rhs V
		render   func() string
	)
	switch l.clause {
	case Compatibility:
		st := l.sc.Mul.Apply(s, t)
		tv := act.Apply(t, v)
		lhs, rhs = act.Apply(st, v), act.Apply(s, tv)
		render = func() string {
			m := l.sc.Mul.Symbol()
			return statement(
				"(s"+m+"t)"+dot+"v = s"+dot+"(t"+dot+"v)",
				expr(par(rs(s)+m+rs(t))+dot+rv(v), rs(st)+dot+rv(v), rv(lhs)),
				expr(rs(s)+dot+par(rs(t)+dot+rv(v)), rs(s)+dot+rv(tv), rv(rhs)),
			)
		}
	case Unital:
		lhs, rhs = act.Apply(l.sc.One, v), v
		render = func() string {
			return statement("1"+dot+"v = v", expr(rs(l.sc.One)+dot+rv(v), rv(lhs)), expr("v", rv(v)))
		}
	case VectorDistributivity:
		vw := add.Apply(v, w)
		sv, sw := act.Apply(s, v), act.Apply(s, w)
		lhs, rhs = act.Apply(s, vw), add.Apply(sv, sw)
		render = func() string {
			p := add.Symbol()
			return statement(
				"s"+dot+"(v"+p+"w) = s"+dot+"v"+p+"s"+dot+"w",
				expr(rs(s)+dot+par(rv(v)+p+rv(w)), rs(s)+dot+rv(vw), rv(lhs)),
				expr(rs(s)+dot+rv(v)+p+rs(s)+dot+rv(w), rv(sv)+p+rv(sw), rv(rhs)),
			)
		}
	case ScalarDistributivity:
		st := l.sc.Add.Apply(s, t)
		sv, tv := act.Apply(s, v), act.Apply(t, v)
		lhs, rhs = act.Apply(st, v), add.Apply(sv, tv)
		render = func() string {
			ps, p := l.sc.Add.Symbol(), add.Symbol()
			return statement(
				"(s"+ps+"t)"+dot+"v = s"+dot+"v"+p+"t"+dot+"v",
				expr(par(rs(s)+ps+rs(t))+dot+rv(v), rs(st)+dot+rv(v), rv(lhs)),
				expr(rs(s)+dot+rv(v)+p+rs(t)+dot+rv(v), rv(sv)+p+rv(tv), rv(rhs)),
			)
		}
	}
	if l.dom.Eq.Eqv(lhs, rhs) {
		return nil
	}
	return l.violation(render)
}

// Test implements TestingLaw.
func (l *ScalarActionLaw[S, V]) Test(t rapid.TB) {
	t.Helper()
	forAll(t, l.samples, "s,t,v,w", func(q gen.Quad[S, S, V, V]) error {
		return l.Verify(q.First, q.Second, q.Third, q.Fourth)
	})
}
