// SPDX-License-Identifier: MIT

package law

import (
	"fmt"
	"strconv"

	"pgregory.net/rapid"

	"github.com/katalvlaran/kosmos/gen"
	"github.com/katalvlaran/kosmos/op"
)

// NilpotencyLaw checks nilpotency of index n:
//
//   - every product of n sampled elements is zero (left-normed, or under
//     every bracketing with WithStrict);
//   - some product of n-1 elements is nonzero. This clause is existential,
//     so it is decided once per Test by a bounded search (WithAttempts,
//     default DefaultWitnessAttempts) instead of inside the property loop.
type NilpotencyLaw[A any] struct {
	base
	mul      op.Binary[A]
	sym      string
	zero     A
	n        int
	attempts int
	products []*term // all n-products checked
	shorter  []*term // all (n-1)-products a witness may use
	names    []string
	dom      Domain[A]
	tuples   *rapid.Generator[[]A]
	short    *rapid.Generator[[]A]
}

// NewNilpotency builds the nilpotency law of index n (n ≥ 2).
func NewNilpotency[A any](mul op.Binary[A], zero A, n int, dom Domain[A], opts ...Option) (*NilpotencyLaw[A], error) {
	s := gatherSettings(opts)
	sym := s.symbolOr(mul.Symbol())
	name := s.nameOr("nilpotency of index " + strconv.Itoa(n) + " (" + sym + ")")
	if err := firstErr(requireValid(name, mul.Valid()), dom.validate(name)); err != nil {
		return nil, err
	}
	if n < 2 {
		return nil, invalidf(name, "index %d < 2", n)
	}

	l := &NilpotencyLaw[A]{
		base: base{name}, mul: mul, sym: sym, zero: zero, n: n, attempts: s.attempts,
		dom:    dom,
		tuples: gen.TupleOf(dom.Gen, n),
		short:  gen.TupleOf(dom.Gen, n-1),
	}
	if s.strict {
		l.products = parenthesizations(0, n)
		l.shorter = parenthesizations(0, n-1)
	} else {
		l.products = []*term{leftNormed(n)}
		l.shorter = []*term{leftNormed(n - 1)}
	}
	l.names = make([]string, n)
	for i := range l.names {
		l.names[i] = "x" + subscript(i+1)
	}
	return l, nil
}

// Index returns n.
func (l *NilpotencyLaw[A]) Index() int { return l.n }

// Verify checks that every tracked product of the n values in xs is zero.
// Panics if len(xs) != n.
func (l *NilpotencyLaw[A]) Verify(xs ...A) error {
	if len(xs) != l.n {
		panic(fmt.Sprintf("law: %s: Verify got %d values, want %d", l.name, len(xs), l.n))
	}
	o := l.mul.Func()
	for _, p := range l.products {
		got := evaluate(p, o, xs)
		if l.dom.Eq.Eqv(got, l.zero) {
			continue
		}
		return l.violation(func() string {
			return statement(
				p.render(l.sym, l.names)+" = 0",
				trace(p, l.sym, l.names, o, xs, l.dom.render, got),
				expr("0", l.dom.render(l.zero)),
			)
		})
	}
	return nil
}

// Witness searches for n-1 elements with a nonzero product. The returned
// error wraps ErrWitnessNotFound when the budget runs out.
func (l *NilpotencyLaw[A]) Witness() ([]A, error) {
	o := l.mul.Func()
	xs, ok := gen.Exists(l.short, l.attempts, func(xs []A) bool {
		for _, p := range l.shorter {
			if !l.dom.Eq.Eqv(evaluate(p, o, xs), l.zero) {
				return true
			}
		}
		return false
	})
	if ok {
		return xs, nil
	}
	return nil, newViolation(ErrWitnessNotFound, l.name, func() string {
		return fmt.Sprintf("no nonzero product of %s in %d attempts", elements(l.n-1), l.attempts)
	})
}

// Test implements TestingLaw.
func (l *NilpotencyLaw[A]) Test(t rapid.TB) {
	t.Helper()
	forAll(t, l.tuples, "xs", func(xs []A) error { return l.Verify(xs...) })
	once(t, func() error {
		_, err := l.Witness()
		return err
	})
}

func elements(n int) string {
	if n == 1 {
		return "1 element"
	}
	return fmt.Sprintf("%d elements", n)
}

func subscript(n int) string {
	const digits = "₀₁₂₃₄₅₆₇₈₉"
	s := strconv.Itoa(n)
	out := make([]rune, 0, len(s))
	sub := []rune(digits)
	for _, d := range s {
		out = append(out, sub[d-'0'])
	}
	return string(out)
}
