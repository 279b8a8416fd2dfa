// SPDX-License-Identifier: MIT

package op_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kosmos/op"
)

func TestBinary_WithSymbolCopies(t *testing.T) {
	add := op.NewBinary(op.Plus, func(a, b int) int { return a + b })
	other := add.WithSymbol("⊕")

	assert.Equal(t, op.Plus, add.Symbol(), "original symbol must stay immutable")
	assert.Equal(t, "⊕", other.Symbol())
	assert.Equal(t, 5, other.Apply(2, 3), "renaming must not change semantics")
}

func TestConstructors_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { op.NewUnary[int]("-", nil) })
	assert.Panics(t, func() { op.NewBinary[int]("+", nil) })
	assert.Panics(t, func() { op.NewPartial[int]("⁻¹", nil) })
	assert.Panics(t, func() { op.NewAction[int, int]("·", nil) })
	assert.Panics(t, func() { op.NewMapping[int, int]("f", nil) })
	assert.Panics(t, func() { op.NewForm[int, int, int]("f", nil) })
}

func TestZeroValues_AreInvalid(t *testing.T) {
	var u op.Unary[int]
	var b op.Binary[int]
	assert.False(t, u.Valid())
	assert.False(t, b.Valid())
	assert.True(t, op.NewUnary("-", func(a int) int { return -a }).Valid())
}

func TestTotal_LiftsUnary(t *testing.T) {
	neg := op.NewUnary(op.Minus, func(a int) int { return -a })
	p := op.Total(neg)

	v, ok := p.Apply(4)
	require.True(t, ok)
	assert.Equal(t, -4, v)
	assert.Equal(t, op.Minus, p.Symbol())
}

func TestDerived_BooleanOperators(t *testing.T) {
	join := op.NewBinary(op.Join, func(a, b bool) bool { return a || b })
	meet := op.NewBinary(op.Meet, func(a, b bool) bool { return a && b })
	not := op.NewUnary(op.Not, func(a bool) bool { return !a })

	implies := op.Implies(join, not)
	xor := op.Xor(join, meet, not)
	diff := op.Difference(meet, not)

	for _, a := range []bool{false, true} {
		for _, b := range []bool{false, true} {
			assert.Equal(t, !a || b, implies.Apply(a, b), "implies(%v,%v)", a, b)
			assert.Equal(t, a != b, xor.Apply(a, b), "xor(%v,%v)", a, b)
			assert.Equal(t, a && !b, diff.Apply(a, b), "diff(%v,%v)", a, b)
		}
	}
}

func TestPower_LeftNormed(t *testing.T) {
	// Subtraction is not associative, so left-normed order is observable:
	// ((x-x)-x)-x = -2x.
	sub := op.NewBinary(op.Minus, func(a, b int) int { return a - b })
	assert.Equal(t, -14, op.Power(sub, 7, 4))
	assert.Equal(t, 7, op.Power(sub, 7, 1))
	assert.Panics(t, func() { op.Power(sub, 7, 0) })

	sq := op.Square(op.NewBinary(op.Times, func(a, b int) int { return a * b }))
	assert.Equal(t, 49, sq.Apply(7))
}

func TestFlipAndCompose(t *testing.T) {
	sub := op.NewBinary(op.Minus, func(a, b int) int { return a - b })
	assert.Equal(t, 3, op.Flip(sub).Apply(2, 5))

	double := op.NewMapping("d", func(a int) int { return 2 * a })
	str := op.NewMapping("s", func(a int) string { return string(rune('a' + a)) })
	c := op.Compose(double, str)
	assert.Equal(t, "e", c.Apply(2))
	assert.Equal(t, "s∘d", c.Name())
}
