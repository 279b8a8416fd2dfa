// SPDX-License-Identifier: MIT

package law

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"pgregory.net/rapid"

	"github.com/katalvlaran/kosmos/eq"
	"github.com/katalvlaran/kosmos/op"
	"github.com/katalvlaran/kosmos/printable"
)

// TestingLaw is the unit a host test framework invokes.
// Test returns normally when the law held for every sample and reports a
// failure through t otherwise.
type TestingLaw interface {
	Name() string
	Test(t rapid.TB)
}

// Domain bundles what a law needs to sample and compare one carrier.
type Domain[A any] struct {
	Gen *rapid.Generator[A]
	Eq  eq.Eq[A]
	Pr  printable.Printable[A]
}

// On builds a Domain. A nil pr renders with %v.
func On[A any](g *rapid.Generator[A], e eq.Eq[A], pr printable.Printable[A]) Domain[A] {
	return Domain[A]{Gen: g, Eq: e, Pr: printable.OrDefault(pr)}
}

// Codomain is a Domain without a generator: values of this carrier are
// only computed and compared, never sampled.
type Codomain[B any] struct {
	Eq eq.Eq[B]
	Pr printable.Printable[B]
}

// Into builds a Codomain. A nil pr renders with %v.
func Into[B any](e eq.Eq[B], pr printable.Printable[B]) Codomain[B] {
	return Codomain[B]{Eq: e, Pr: printable.OrDefault(pr)}
}

// Codomain drops the generator of d.
func (d Domain[A]) Codomain() Codomain[A] { return Codomain[A]{Eq: d.Eq, Pr: d.Pr} }

func (d Domain[A]) validate(name string) error {
	if d.Gen == nil {
		return invalidf(name, "nil generator")
	}
	if d.Eq == nil {
		return invalidf(name, "nil equality")
	}
	return nil
}

func (d Domain[A]) render(a A) string { return printable.OrDefault(d.Pr).Render(a) }

func (c Codomain[B]) validate(name string) error {
	if c.Eq == nil {
		return invalidf(name, "nil codomain equality")
	}
	return nil
}

func (c Codomain[B]) render(b B) string { return printable.OrDefault(c.Pr).Render(b) }

// base carries the law name.
type base struct{ name string }

// Name returns the law name.
func (b base) Name() string { return b.name }

func (b base) violation(render func() string) *Violation {
	return newViolation(ErrLawViolated, b.name, render)
}

// forAll runs verify on every sample g draws.
func forAll[S any](t rapid.TB, g *rapid.Generator[S], label string, verify func(S) error) {
	t.Helper()
	rapid.Check(t, func(rt *rapid.T) {
		s := g.Draw(rt, label)
		if err := verify(s); err != nil {
			rt.Fatalf("%v", err)
		}
	})
}

// once evaluates a sample-free clause (e.g. f(e) = e') in the host.
func once(t rapid.TB, verify func() error) {
	t.Helper()
	if err := verify(); err != nil {
		t.Fatalf("%v", err)
	}
}

func requireValid(name string, valid ...bool) error {
	for _, ok := range valid {
		if !ok {
			return invalidf(name, "nil operation")
		}
	}
	return nil
}

// firstErr returns the first non-nil error.
func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// ---------- trace rendering ----------

// expr joins the stages of one side of an identity: symbolic form,
// substituted operands, reductions, final value.
func expr(stages ...string) string { return strings.Join(stages, " = ") }

func infix(x, sym, y string) string { return x + sym + y }

func par(s string) string { return "(" + s + ")" }

func call(f string, args ...string) string { return f + "(" + strings.Join(args, ", ") + ")" }

// statement lays out a violated identity followed by one line per side.
func statement(identity string, sides ...string) string {
	return identity + "\n  " + strings.Join(sides, "\n  ")
}

// shape renders an expression pattern: '*' stands for the principal
// operation symbol, '+' for the secondary one and %s for operands.
//
//	shape("%s*(%s+%s)", "·", "+", "a", "b", "c") == "a·(b+c)"
func shape(pattern, star, plus string, operands ...string) string {
	r := strings.NewReplacer("*", escape(star), "+", escape(plus))
	args := make([]any, len(operands))
	for i, o := range operands {
		args[i] = o
	}
	return fmt.Sprintf(r.Replace(pattern), args...)
}

func escape(sym string) string { return strings.ReplaceAll(sym, "%", "%%") }

// unary renders a unary application: postfix for superscript-like symbols
// (a⁻¹, a*), prefix for single-rune symbols (-a, ¬a), call syntax otherwise.
func unary(sym, x string) string {
	switch sym {
	case op.Inverse, op.Conj, "²", "'", "†":
		return x + sym
	}
	if utf8.RuneCountInString(sym) == 1 {
		return sym + x
	}
	return call(sym, x)
}
