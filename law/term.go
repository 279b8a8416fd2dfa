// SPDX-License-Identifier: MIT

package law

import (
	"strconv"
	"strings"
)

// term is a product expression over numbered variables. Exactly one shape
// applies: a variable (l == nil), a product l⋆r, or a left-normed power
// lᵉˣᵖ (exp > 0, r == nil).
type term struct {
	leaf int
	l, r *term
	exp  int
}

func v(i int) *term            { return &term{leaf: i} }
func mul(l, r *term) *term     { return &term{l: l, r: r} }
func pow(l *term, n int) *term { return &term{l: l, exp: n} }

func (t *term) isLeaf() bool    { return t.l == nil }
func (t *term) isProduct() bool { return t.l != nil && t.r != nil }

// evaluate computes t with the variables bound to xs.
func evaluate[A any](t *term, o func(A, A) A, xs []A) A {
	switch {
	case t.isLeaf():
		return xs[t.leaf]
	case t.isProduct():
		return o(evaluate(t.l, o, xs), evaluate(t.r, o, xs))
	default:
		base := evaluate(t.l, o, xs)
		acc := base
		for i := 1; i < t.exp; i++ {
			acc = o(acc, base)
		}
		return acc
	}
}

// render prints t with each variable replaced by names[i]. Compound
// operands are parenthesized.
func (t *term) render(sym string, names []string) string {
	switch {
	case t.isLeaf():
		return names[t.leaf]
	case t.isProduct():
		return t.l.operand(sym, names) + sym + t.r.operand(sym, names)
	default:
		return t.l.operand(sym, names) + superscript(t.exp)
	}
}

func (t *term) operand(sym string, names []string) string {
	if !t.isProduct() {
		return t.render(sym, names)
	}
	return par(t.render(sym, names))
}

var superscripts = strings.NewReplacer(
	"0", "⁰", "1", "¹", "2", "²", "3", "³", "4", "⁴",
	"5", "⁵", "6", "⁶", "7", "⁷", "8", "⁸", "9", "⁹",
)

func superscript(n int) string { return superscripts.Replace(strconv.Itoa(n)) }

// parenthesizations enumerates every full binary bracketing of the
// variables lo..hi-1 in order (Catalan(hi-lo-1) terms).
func parenthesizations(lo, hi int) []*term {
	if hi-lo == 1 {
		return []*term{v(lo)}
	}
	var out []*term
	for split := lo + 1; split < hi; split++ {
		for _, l := range parenthesizations(lo, split) {
			for _, r := range parenthesizations(split, hi) {
				out = append(out, mul(l, r))
			}
		}
	}
	return out
}

// leftNormed returns ((x₀x₁)x₂)…x_{n-1}.
func leftNormed(n int) *term {
	t := v(0)
	for i := 1; i < n; i++ {
		t = mul(t, v(i))
	}
	return t
}

// trace renders one side of an equation: symbolic form, substituted
// values, the top-level reduction and the final value.
func trace[A any](t *term, sym string, names []string, o func(A, A) A, xs []A, pr func(A) string, value A) string {
	vals := make([]string, len(xs))
	for i, x := range xs {
		vals[i] = pr(x)
	}
	stages := []string{t.render(sym, names)}
	if !t.isLeaf() {
		stages = append(stages, t.render(sym, vals))
	}
	if t.isProduct() && !(t.l.isLeaf() && t.r.isLeaf()) {
		stages = append(stages, pr(evaluate(t.l, o, xs))+sym+pr(evaluate(t.r, o, xs)))
	}
	stages = append(stages, pr(value))
	return expr(stages...)
}
