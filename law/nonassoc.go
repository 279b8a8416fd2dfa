// SPDX-License-Identifier: MIT

package law

import (
	"fmt"
	"strings"

	"pgregory.net/rapid"

	"github.com/katalvlaran/kosmos/gen"
	"github.com/katalvlaran/kosmos/op"
)

// Variant selects one of the three Moufang identities.
type Variant int

const (
	// MoufangLeft is z(x(zy)) = ((zx)z)y.
	MoufangLeft Variant = iota
	// MoufangRight is ((yz)x)z = y(z(xz)).
	MoufangRight
	// MoufangMiddle is (zx)(yz) = (z(xy))z.
	MoufangMiddle
)

// String implements fmt.Stringer.
func (v Variant) String() string {
	switch v {
	case MoufangLeft:
		return "left"
	case MoufangRight:
		return "right"
	case MoufangMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

type equation struct{ lhs, rhs *term }

// EquationLaw checks one or more identities between products of sampled
// variables under a single binary operation. It backs the laws of
// non-associative algebra (alternativity, Bol, Moufang, medial, Jordan,
// power-associativity).
type EquationLaw[A any] struct {
	base
	op     op.Binary[A]
	sym    string
	names  []string
	eqs    []equation
	dom    Domain[A]
	tuples *rapid.Generator[[]A]
}

func newEquationLaw[A any](defName string, o op.Binary[A], dom Domain[A], opts []Option, names []string, eqs ...equation) (*EquationLaw[A], error) {
	s := gatherSettings(opts)
	sym := s.symbolOr(o.Symbol())
	name := s.nameOr(defName + " (" + sym + ")")
	if err := firstErr(requireValid(name, o.Valid()), dom.validate(name)); err != nil {
		return nil, err
	}
	return &EquationLaw[A]{
		base: base{name}, op: o, sym: sym, names: names, eqs: eqs, dom: dom,
		tuples: gen.TupleOf(dom.Gen, len(names)),
	}, nil
}

// Arity is the number of variables drawn per sample.
func (l *EquationLaw[A]) Arity() int { return len(l.names) }

// Verify checks every identity for one assignment of the variables.
// Panics if len(xs) differs from Arity.
func (l *EquationLaw[A]) Verify(xs ...A) error {
	if len(xs) != len(l.names) {
		panic(fmt.Sprintf("law: %s: Verify got %d values, want %d", l.name, len(xs), len(l.names)))
	}
	o := l.op.Func()
	for _, e := range l.eqs {
		lhs, rhs := evaluate(e.lhs, o, xs), evaluate(e.rhs, o, xs)
		if l.dom.Eq.Eqv(lhs, rhs) {
			continue
		}
		return l.violation(func() string {
			return statement(
				e.lhs.render(l.sym, l.names)+" = "+e.rhs.render(l.sym, l.names),
				trace(e.lhs, l.sym, l.names, o, xs, l.dom.render, lhs),
				trace(e.rhs, l.sym, l.names, o, xs, l.dom.render, rhs),
			)
		})
	}
	return nil
}

// Test implements TestingLaw.
func (l *EquationLaw[A]) Test(t rapid.TB) {
	t.Helper()
	forAll(t, l.tuples, strings.Join(l.names, ","), func(xs []A) error { return l.Verify(xs...) })
}

// NewAlternativity checks x(xy) = (xx)y (left) and (yx)x = y(xx) (right).
func NewAlternativity[A any](o op.Binary[A], side Side, dom Domain[A], opts ...Option) (*EquationLaw[A], error) {
	if !side.valid() {
		return nil, invalidf("alternativity", "unknown side %d", side)
	}
	x, y := v(0), v(1)
	var eqs []equation
	if side.left() {
		eqs = append(eqs, equation{mul(x, mul(x, y)), mul(mul(x, x), y)})
	}
	if side.right() {
		eqs = append(eqs, equation{mul(mul(y, x), x), mul(y, mul(x, x))})
	}
	return newEquationLaw(side.String()+" alternativity", o, dom, opts, []string{"x", "y"}, eqs...)
}

// NewFlexibility checks x(yx) = (xy)x.
func NewFlexibility[A any](o op.Binary[A], dom Domain[A], opts ...Option) (*EquationLaw[A], error) {
	x, y := v(0), v(1)
	return newEquationLaw("flexibility", o, dom, opts, []string{"x", "y"},
		equation{mul(x, mul(y, x)), mul(mul(x, y), x)})
}

// NewBol checks a(b(ac)) = (a(ba))c (left) and ((ca)b)a = c((ab)a) (right).
func NewBol[A any](o op.Binary[A], side Side, dom Domain[A], opts ...Option) (*EquationLaw[A], error) {
	if !side.valid() {
		return nil, invalidf("Bol identity", "unknown side %d", side)
	}
	a, b, c := v(0), v(1), v(2)
	var eqs []equation
	if side.left() {
		eqs = append(eqs, equation{mul(a, mul(b, mul(a, c))), mul(mul(a, mul(b, a)), c)})
	}
	if side.right() {
		eqs = append(eqs, equation{mul(mul(mul(c, a), b), a), mul(c, mul(mul(a, b), a))})
	}
	return newEquationLaw(side.String()+" Bol identity", o, dom, opts, []string{"a", "b", "c"}, eqs...)
}

// NewMoufang checks one Moufang identity. A loop is Moufang when all three
// variants hold.
func NewMoufang[A any](o op.Binary[A], variant Variant, dom Domain[A], opts ...Option) (*EquationLaw[A], error) {
	x, y, z := v(0), v(1), v(2)
	var e equation
	switch variant {
	case MoufangLeft:
		e = equation{mul(z, mul(x, mul(z, y))), mul(mul(mul(z, x), z), y)}
	case MoufangRight:
		e = equation{mul(mul(mul(y, z), x), z), mul(y, mul(z, mul(x, z)))}
	case MoufangMiddle:
		e = equation{mul(mul(z, x), mul(y, z)), mul(mul(z, mul(x, y)), z)}
	default:
		return nil, invalidf("Moufang identity", "unknown variant %d", variant)
	}
	return newEquationLaw(variant.String()+" Moufang identity", o, dom, opts, []string{"x", "y", "z"}, e)
}

// NewMedial checks (a⋆b)⋆(c⋆d) = (a⋆c)⋆(b⋆d).
func NewMedial[A any](o op.Binary[A], dom Domain[A], opts ...Option) (*EquationLaw[A], error) {
	a, b, c, d := v(0), v(1), v(2), v(3)
	return newEquationLaw("medial", o, dom, opts, []string{"a", "b", "c", "d"},
		equation{mul(mul(a, b), mul(c, d)), mul(mul(a, c), mul(b, d))})
}

// NewJordan checks x∘(y∘x²) = (x∘y)∘x².
func NewJordan[A any](o op.Binary[A], dom Domain[A], opts ...Option) (*EquationLaw[A], error) {
	x, y := v(0), v(1)
	return newEquationLaw("Jordan identity", o, dom, opts, []string{"x", "y"},
		equation{mul(x, mul(y, pow(x, 2))), mul(mul(x, y), pow(x, 2))})
}

// NewPowerAssociativity checks that powers of a single element do not
// depend on bracketing: x(xx) = (xx)x, the degree-4 bracketings
// x(x(xx)) and (xx)(xx) against ((xx)x)x, and xᵘxᵛ = xᵘ⁺ᵛ for
// 1 ≤ u, v ≤ bound (WithBound, default DefaultPowerBound) with left-normed
// powers.
func NewPowerAssociativity[A any](o op.Binary[A], dom Domain[A], opts ...Option) (*EquationLaw[A], error) {
	bound := gatherSettings(opts).bound
	x := v(0)
	xx := mul(x, x)
	left4 := mul(mul(xx, x), x)
	eqs := []equation{
		{mul(x, xx), mul(xx, x)},
		{mul(x, mul(x, xx)), left4},
		{mul(xx, xx), left4},
	}
	for u := 1; u <= bound; u++ {
		for w := 1; w <= bound; w++ {
			eqs = append(eqs, equation{mul(pow(x, u), pow(x, w)), pow(x, u+w)})
		}
	}
	return newEquationLaw("power-associativity", o, dom, opts, []string{"x"}, eqs...)
}
