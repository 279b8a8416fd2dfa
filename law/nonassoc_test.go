// SPDX-License-Identifier: MIT

package law_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/katalvlaran/kosmos/eq"
	"github.com/katalvlaran/kosmos/law"
	"github.com/katalvlaran/kosmos/matrix"
	"github.com/katalvlaran/kosmos/op"
	"github.com/katalvlaran/kosmos/runner"
)

func smallMatrices(n int) law.Domain[*matrix.Dense[int64]] {
	g := rapid.Custom(func(t *rapid.T) *matrix.Dense[int64] {
		rows := make([][]int64, n)
		for i := range rows {
			rows[i] = rapid.SliceOfN(rapid.Int64Range(-3, 3), n, n).Draw(t, "row")
		}
		m, err := matrix.FromRows(rows)
		if err != nil {
			panic(err)
		}
		return m
	})
	return law.On(g, eq.Func[*matrix.Dense[int64]](matrix.Equal[int64]), nil)
}

func TestAlternativity(t *testing.T) {
	for _, side := range []law.Side{law.Both, law.Left, law.Right} {
		l, err := law.NewAlternativity(plus, side, ints)
		require.NoError(t, err)
		l.Test(t)
	}

	l, err := law.NewAlternativity(minus, law.Left, ints)
	require.NoError(t, err)
	assert.Equal(t, "left alternativity (-)", l.Name())
	assert.Equal(t, 2, l.Arity())

	err = l.Verify(1, 2)
	require.ErrorIs(t, err, law.ErrLawViolated)
	assert.Equal(t, "law: identity violated: left alternativity (-): x-(x-y) = (x-x)-y\n"+
		"  x-(x-y) = 1-(1-2) = 1--1 = 2\n"+
		"  (x-x)-y = (1-1)-2 = 0-2 = -2", err.Error())

	_, err = law.NewAlternativity(minus, law.Side(9), ints)
	assert.ErrorIs(t, err, law.ErrInvalidLaw)
}

func TestFlexibility_CommutativeIsFlexible(t *testing.T) {
	sq := op.NewBinary(op.Star, func(a, b int) int { return a*a + b*b })
	l, err := law.NewFlexibility(sq, ints)
	require.NoError(t, err)
	l.Test(t)

	bad, err := law.NewFlexibility(minus, ints)
	require.NoError(t, err)
	assert.ErrorIs(t, bad.Verify(1, 2), law.ErrLawViolated)
}

func TestMoufangAndBol_HoldInGroups(t *testing.T) {
	mul := op.NewBinary(op.Times, matrix.MustMul[int64])
	dom := smallMatrices(2)
	for _, variant := range []law.Variant{law.MoufangLeft, law.MoufangRight, law.MoufangMiddle} {
		l, err := law.NewMoufang(mul, variant, dom)
		require.NoError(t, err)
		assert.Equal(t, 3, l.Arity())
		l.Test(t)
	}
	bol, err := law.NewBol(mul, law.Both, dom)
	require.NoError(t, err)
	bol.Test(t)

	_, err = law.NewMoufang(mul, law.Variant(7), dom)
	assert.ErrorIs(t, err, law.ErrInvalidLaw)
}

func TestMoufang_SubtractionFails(t *testing.T) {
	l, err := law.NewMoufang(minus, law.MoufangLeft, ints)
	require.NoError(t, err)
	assert.Equal(t, "left Moufang identity (-)", l.Name())
	assert.Equal(t, runner.Failed, outcome(l).Status)
}

func TestMedial(t *testing.T) {
	// Subtraction is medial: both sides equal a-b-c+d.
	l, err := law.NewMedial(minus, ints)
	require.NoError(t, err)
	l.Test(t)

	sq := op.NewBinary(op.Star, func(a, b int) int { return a*a + b })
	bad, err := law.NewMedial(sq, ints)
	require.NoError(t, err)
	err = bad.Verify(1, 2, 3, 4)
	require.ErrorIs(t, err, law.ErrLawViolated)
	assert.Contains(t, err.Error(), "(a⋆b)⋆(c⋆d) = (a⋆c)⋆(b⋆d)\n"+
		"  (a⋆b)⋆(c⋆d) = (1⋆2)⋆(3⋆4) = 3⋆13 = 22\n"+
		"  (a⋆c)⋆(b⋆d) = (1⋆3)⋆(2⋆4) = 4⋆8 = 24")
}

func TestJordan_Anticommutator(t *testing.T) {
	jordan := op.NewBinary(op.Circle, matrix.MustAnticommutator[int64])
	l, err := law.NewJordan(jordan, smallMatrices(2))
	require.NoError(t, err)
	l.Test(t)

	sqr := op.NewBinary(op.Times, func(a, b int) int { return a*a - b })
	bad, err := law.NewJordan(sqr, ints)
	require.NoError(t, err)
	err = bad.Verify(1, 2)
	require.ErrorIs(t, err, law.ErrLawViolated)
	assert.Contains(t, err.Error(), "x·(y·x²) = (x·y)·x²")
}

func TestPowerAssociativity(t *testing.T) {
	l, err := law.NewPowerAssociativity(times, ints, law.WithBound(3))
	require.NoError(t, err)
	assert.Equal(t, 1, l.Arity())
	l.Test(t)

	bad, err := law.NewPowerAssociativity(minus, ints)
	require.NoError(t, err)
	err = bad.Verify(3)
	require.ErrorIs(t, err, law.ErrLawViolated)
	assert.Contains(t, err.Error(), "x-(x-x) = (x-x)-x\n  x-(x-x) = 3-(3-3) = 3-0 = 3\n  (x-x)-x = (3-3)-3 = 0-3 = -3")
	assert.NoError(t, bad.Verify(0))
}

func TestEquationLaw_WrongArityPanics(t *testing.T) {
	l, err := law.NewFlexibility(plus, ints)
	require.NoError(t, err)
	assert.Panics(t, func() { _ = l.Verify(1) })
}
