// SPDX-License-Identifier: MIT

package law

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParenthesizations_CatalanCounts(t *testing.T) {
	want := []int{1, 1, 2, 5, 14, 42}
	for n, c := range want {
		assert.Len(t, parenthesizations(0, n+1), c, "n=%d", n+1)
	}
}

func TestParenthesizations_Render(t *testing.T) {
	names := []string{"a", "b", "c", "d"}
	var got []string
	for _, p := range parenthesizations(0, 3) {
		got = append(got, p.render("·", names))
	}
	assert.Equal(t, []string{"a·(b·c)", "(a·b)·c"}, got)

	assert.Equal(t, "((a·b)·c)·d", leftNormed(4).render("·", names))
	assert.Equal(t, "a·a²", mul(v(0), pow(v(0), 2)).render("·", names))
	assert.Equal(t, "a¹²", pow(v(0), 12).render("·", names))
}

func TestEvaluate(t *testing.T) {
	sub := func(a, b int) int { return a - b }
	xs := []int{1, 2, 3}
	assert.Equal(t, 2, evaluate(mul(v(0), mul(v(1), v(2))), sub, xs))
	assert.Equal(t, -4, evaluate(leftNormed(3), sub, xs))

	add := func(a, b int) int { return a + b }
	assert.Equal(t, 6, evaluate(pow(v(1), 3), add, xs))
	assert.Equal(t, 2, evaluate(pow(v(1), 1), add, xs))
}

func TestTrace(t *testing.T) {
	sub := func(a, b int) int { return a - b }
	xs := []int{1, 2, 3}
	names := []string{"a", "b", "c"}
	pr := strconv.Itoa

	tm := mul(v(0), mul(v(1), v(2)))
	assert.Equal(t, "a-(b-c) = 1-(2-3) = 1--1 = 2", trace(tm, "-", names, sub, xs, pr, 2))

	pair := mul(v(0), v(1))
	assert.Equal(t, "a-b = 1-2 = -1", trace(pair, "-", names, sub, xs, pr, -1))
	assert.Equal(t, "a = 1", trace(v(0), "-", names, sub, xs, pr, 1))
}

func TestSubscriptAndSuperscript(t *testing.T) {
	assert.Equal(t, "₁₀", subscript(10))
	assert.Equal(t, "²³", superscript(23))
}

func TestRenderHelpers(t *testing.T) {
	assert.Equal(t, "a·(b+c)", shape("%s*(%s+%s)", "·", "+", "a", "b", "c"))
	assert.Equal(t, "50%·x", shape("%s*x", "·", "", "50%"))
	assert.Equal(t, "a%b", shape("a*b", "%", ""))

	assert.Equal(t, "x⁻¹", unary("⁻¹", "x"))
	assert.Equal(t, "¬x", unary("¬", "x"))
	assert.Equal(t, "conj(x)", unary("conj", "x"))
	assert.Equal(t, "(x)", wrap("-", "x"))
	assert.Equal(t, "x", wrap("conj", "x"))

	require.Equal(t, "e\n  l\n  r", statement("e", "l", "r"))
}
