// SPDX-License-Identifier: MIT

package printable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/kosmos/printable"
)

func TestDefault(t *testing.T) {
	assert.Equal(t, "42", printable.Default[int]().Render(42))
	assert.Equal(t, "[1 2]", printable.Default[[]int]().Render([]int{1, 2}))
}

func TestFloat_TrimsZeros(t *testing.T) {
	p := printable.Float[float64](3)
	assert.Equal(t, "2.5", p.Render(2.5))
	assert.Equal(t, "3", p.Render(3.0))
	assert.Equal(t, "0", p.Render(-0.0001))
	assert.Equal(t, "0.333", p.Render(1.0/3))
	assert.Panics(t, func() { printable.Float[float64](-1) })
}

func TestQuotedAndSeq(t *testing.T) {
	assert.Equal(t, `"a b"`, printable.Quoted[string]().Render("a b"))

	s := printable.Seq(printable.Float[float64](1))
	assert.Equal(t, "[1, 2.5]", s.Render([]float64{1, 2.5}))
	assert.Equal(t, "[]", s.Render(nil))

	pair := printable.Pair(printable.Default[int](), printable.Quoted[string]())
	assert.Equal(t, `(1, "x")`, pair(1, "x"))

	triple := printable.Triple(printable.Default[int](), printable.Default[int](), printable.Float[float64](2))
	assert.Equal(t, "(1, 2, 0.5)", triple(1, 2, 0.5))
}

func TestDump_FollowsPointers(t *testing.T) {
	type node struct {
		V    int
		Next *node
	}
	out := printable.Dump[*node]().Render(&node{V: 1, Next: &node{V: 2}})
	assert.Contains(t, out, "V:1")
	assert.Contains(t, out, "V:2")
	assert.NotContains(t, out, "0x", "pointer addresses must be hidden")
}

func TestOrDefault(t *testing.T) {
	assert.Equal(t, "7", printable.OrDefault[int](nil).Render(7))
	custom := printable.Func[int](func(int) string { return "x" })
	assert.Equal(t, "x", printable.OrDefault[int](custom).Render(7))
}
