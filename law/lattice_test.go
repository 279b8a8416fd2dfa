// SPDX-License-Identifier: MIT

package law_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/katalvlaran/kosmos/eq"
	"github.com/katalvlaran/kosmos/law"
	"github.com/katalvlaran/kosmos/op"
	"github.com/katalvlaran/kosmos/printable"
)

var (
	bits = law.On(rapid.Uint8(), eq.Default[uint8](),
		printable.Func[uint8](func(b uint8) string { return fmt.Sprintf("%08b", b) }))
	or  = op.NewBinary(op.Join, func(a, b uint8) uint8 { return a | b })
	and = op.NewBinary(op.Meet, func(a, b uint8) uint8 { return a & b })
	not = op.NewUnary(op.Not, func(a uint8) uint8 { return ^a })
)

func TestDistributivity(t *testing.T) {
	l, err := law.NewDistributivity(times, plus, law.Both, ints)
	require.NoError(t, err)
	assert.Equal(t, "two-sided distributivity (· over +)", l.Name())
	l.Test(t)

	bad, err := law.NewDistributivity(plus, times, law.Left, ints)
	require.NoError(t, err)
	err = bad.Verify(1, 2, 3)
	require.ErrorIs(t, err, law.ErrLawViolated)
	assert.Contains(t, err.Error(), "a+(b·c) = 1+(2·3) = 1+6 = 7")

	for _, side := range []law.Side{law.Both, law.Left, law.Right} {
		l, err := law.NewDistributivity(and, or, side, bits)
		require.NoError(t, err)
		l.Test(t)
	}
}

func TestAbsorption(t *testing.T) {
	l, err := law.NewAbsorption(maxOp, minOp, ints)
	require.NoError(t, err)
	assert.Equal(t, "absorption (∨, ∧)", l.Name())
	l.Test(t)

	bad, err := law.NewAbsorption(plus, minOp, ints)
	require.NoError(t, err)
	err = bad.Verify(2, 5)
	require.ErrorIs(t, err, law.ErrLawViolated)
	assert.Contains(t, err.Error(), "a+(a∧b) = a\n  a+(a∧b) = 2+(2∧5) = 2+2 = 4\n  a = 2")
}

func TestComplementation(t *testing.T) {
	l, err := law.NewComplementation(or, and, not, 0, 0xff, bits)
	require.NoError(t, err)
	l.Test(t)

	// Clearing the low bit keeps ¬⊥ = ⊤, ¬⊤ = ⊥ and ¬¬x = x on even x but
	// breaks x∨¬x = ⊤.
	lossy := op.NewUnary(op.Not, func(a uint8) uint8 {
		if a == 0 || a == 0xff {
			return ^a
		}
		return ^a &^ 1
	})
	bad, err := law.NewComplementation(or, and, lossy, 0, 0xff, bits)
	require.NoError(t, err)
	err = bad.Verify(0b10)
	require.ErrorIs(t, err, law.ErrLawViolated)
	assert.Contains(t, err.Error(), "x∨¬x = ⊤\n  x∨¬x = 00000010∨11111100 = 11111110\n  ⊤ = 11111111")
}

func TestComplementation_BoundsCheckedEagerly(t *testing.T) {
	id := op.NewUnary(op.Not, func(a uint8) uint8 { return a })
	_, err := law.NewComplementation(or, and, id, 0, 0xff, bits)
	require.ErrorIs(t, err, law.ErrInvalidLaw)
	assert.Contains(t, err.Error(), "¬⊥ = 00000000, want ⊤ = 11111111")
}
