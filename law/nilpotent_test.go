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

var matMul = op.NewBinary(op.Times, matrix.MustMul[int64])

func mat(rows ...[]int64) *matrix.Dense[int64] {
	m, err := matrix.FromRows(rows)
	if err != nil {
		panic(err)
	}
	return m
}

func zeroMat(n int) *matrix.Dense[int64] {
	m, err := matrix.Zero[int64](n)
	if err != nil {
		panic(err)
	}
	return m
}

// strictlyUpper draws n×n matrices with zeros on and below the diagonal.
func strictlyUpper(n int) *rapid.Generator[*matrix.Dense[int64]] {
	return rapid.Custom(func(t *rapid.T) *matrix.Dense[int64] {
		m := zeroMat(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := m.Set(i, j, rapid.Int64Range(-5, 5).Draw(t, "entry")); err != nil {
					panic(err)
				}
			}
		}
		return m
	})
}

func matrices(g *rapid.Generator[*matrix.Dense[int64]]) law.Domain[*matrix.Dense[int64]] {
	return law.On(g, eq.Func[*matrix.Dense[int64]](matrix.Equal[int64]), nil)
}

func TestNilpotency_StrictlyUpper2x2(t *testing.T) {
	l, err := law.NewNilpotency(matMul, zeroMat(2), 2, matrices(strictlyUpper(2)))
	require.NoError(t, err)
	assert.Equal(t, "nilpotency of index 2 (·)", l.Name())
	assert.Equal(t, 2, l.Index())

	l.Test(t)

	witness, err := l.Witness()
	require.NoError(t, err)
	require.Len(t, witness, 1)
	assert.False(t, matrix.IsZero(witness[0]))
}

func TestNilpotency_MutatedMatrixFails(t *testing.T) {
	mutated := mat([]int64{1, 1}, []int64{0, 0})
	g := rapid.OneOf(strictlyUpper(2), rapid.Just(mutated))
	l, err := law.NewNilpotency(matMul, zeroMat(2), 2, matrices(g))
	require.NoError(t, err)

	err = l.Verify(mutated, mutated)
	require.ErrorIs(t, err, law.ErrLawViolated)
	assert.Equal(t, "law: identity violated: nilpotency of index 2 (·): x₁·x₂ = 0\n"+
		"  x₁·x₂ = [[1 1] [0 0]]·[[1 1] [0 0]] = [[1 1] [0 0]]\n"+
		"  0 = [[0 0] [0 0]]", err.Error())

	res := outcome(l)
	require.Equal(t, runner.Failed, res.Status)
	assert.ErrorIs(t, res.Kind, law.ErrLawViolated)
	assert.Contains(t, res.Message, "x₁·x₂ = 0")
}

func TestNilpotency_Index3AllBracketings(t *testing.T) {
	l, err := law.NewNilpotency(matMul, zeroMat(3), 3, matrices(strictlyUpper(3)), law.WithStrict())
	require.NoError(t, err)
	l.Test(t)

	e12 := mat([]int64{0, 1, 0}, []int64{0, 0, 0}, []int64{0, 0, 0})
	assert.NoError(t, l.Verify(e12, e12, e12))
	assert.Panics(t, func() { _ = l.Verify(e12) })
}

func TestNilpotency_StrictCatchesNonAssociativeProducts(t *testing.T) {
	// 1⋆1 = 2 and 1⋆2 = 1, every other product is 0. Left-normed triples
	// (x⋆y)⋆z always vanish while 1⋆(1⋆1) does not.
	star := op.NewBinary(op.Star, func(a, b int) int {
		switch {
		case a == 1 && b == 1:
			return 2
		case a == 1 && b == 2:
			return 1
		default:
			return 0
		}
	})
	dom := law.On(rapid.IntRange(0, 2), eq.Default[int](), nil)

	loose, err := law.NewNilpotency(star, 0, 3, dom)
	require.NoError(t, err)
	loose.Test(t)
	assert.NoError(t, loose.Verify(1, 1, 1))

	strict, err := law.NewNilpotency(star, 0, 3, dom, law.WithStrict())
	require.NoError(t, err)
	err = strict.Verify(1, 1, 1)
	require.ErrorIs(t, err, law.ErrLawViolated)
	assert.Contains(t, err.Error(), "x₁⋆(x₂⋆x₃) = 0\n  x₁⋆(x₂⋆x₃) = 1⋆(1⋆1) = 1⋆2 = 1")
	assert.Equal(t, runner.Failed, outcome(strict).Status)
}

func TestNilpotency_WitnessNotFound(t *testing.T) {
	zero := op.NewBinary(op.Times, func(a, b int) int { return 0 })
	dom := law.On(rapid.Just(0), eq.Default[int](), nil)
	l, err := law.NewNilpotency(zero, 0, 2, dom, law.WithAttempts(10))
	require.NoError(t, err)

	_, err = l.Witness()
	require.ErrorIs(t, err, law.ErrWitnessNotFound)
	assert.Contains(t, err.Error(), "no nonzero product of 1 element in 10 attempts")

	res := outcome(l)
	assert.ErrorIs(t, res.Kind, law.ErrWitnessNotFound)

	l3, err := law.NewNilpotency(zero, 0, 3, dom, law.WithAttempts(5))
	require.NoError(t, err)
	_, err = l3.Witness()
	assert.Contains(t, err.Error(), "no nonzero product of 2 elements in 5 attempts")
}

func TestNilpotency_IndexBelowTwo(t *testing.T) {
	_, err := law.NewNilpotency(times, 0, 1, ints)
	assert.ErrorIs(t, err, law.ErrInvalidLaw)
}
