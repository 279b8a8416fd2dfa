// SPDX-License-Identifier: MIT

package law_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/katalvlaran/kosmos/eq"
	"github.com/katalvlaran/kosmos/law"
	"github.com/katalvlaran/kosmos/op"
)

type vec2 = [2]float64

var (
	// Dyadic rationals keep sums and products exact in float64.
	dyadic = rapid.Custom(func(t *rapid.T) float64 {
		return float64(rapid.IntRange(-1000, 1000).Draw(t, "k")) / 16
	})
	reals   = law.On(dyadic, eq.Approx[float64](1e-9, 1e-9), nil)
	vectors = law.On(
		rapid.Custom(func(t *rapid.T) vec2 { return vec2{dyadic.Draw(t, "x"), dyadic.Draw(t, "y")} }),
		eq.Func[vec2](func(a, b vec2) bool { return reals.Eq.Eqv(a[0], b[0]) && reals.Eq.Eqv(a[1], b[1]) }),
		nil,
	)

	scalars = law.Scalars[float64]{
		Add:  op.NewBinary(op.Plus, func(a, b float64) float64 { return a + b }),
		Mul:  op.NewBinary(op.Times, func(a, b float64) float64 { return a * b }),
		Zero: 0,
		One:  1,
	}
	plane = law.Module[float64, vec2]{
		Add:   op.NewBinary(op.Plus, func(a, b vec2) vec2 { return vec2{a[0] + b[0], a[1] + b[1]} }),
		Scale: op.NewAction(op.Times, func(s float64, v vec2) vec2 { return vec2{s * v[0], s * v[1]} }),
	}
	dot = op.NewForm("dot", func(v, w vec2) float64 { return v[0]*w[0] + v[1]*w[1] })
)

func TestBilinearity_DotProduct(t *testing.T) {
	l, err := law.NewBilinearity(dot, plane, scalars.Module(), law.Both, reals, vectors, reals.Codomain())
	require.NoError(t, err)
	assert.Equal(t, "two-sided bilinearity (dot)", l.Name())

	v1, v2, w := vec2{1, 0}, vec2{0, 1}, vec2{2, 3}
	assert.Equal(t, 5.0, dot.Apply(plane.Add.Apply(v1, v2), w))
	assert.Equal(t, 2.0, dot.Apply(v1, w))
	assert.Equal(t, 3.0, dot.Apply(v2, w))
	assert.NoError(t, l.Verify(1, v1, v2, w, w))

	l.Test(t)
}

func TestBilinearity_AffineFormFails(t *testing.T) {
	shifted := op.NewForm("f", func(v, w vec2) float64 { return dot.Apply(v, w) + 1 })
	l, err := law.NewBilinearity(shifted, plane, scalars.Module(), law.Left, reals, vectors, reals.Codomain())
	require.NoError(t, err)

	err = l.Verify(1, vec2{1, 0}, vec2{0, 1}, vec2{2, 3}, vec2{})
	require.ErrorIs(t, err, law.ErrLawViolated)
	assert.Equal(t, "law: identity violated: left bilinearity (f): f(v₁+v₂, w) = f(v₁, w)+f(v₂, w)\n"+
		"  f([1 0]+[0 1], [2 3]) = f([1 1], [2 3]) = 6\n"+
		"  f([1 0], [2 3])+f([0 1], [2 3]) = 3+4 = 7", err.Error())
}

func TestBilinearMap_MixedCarriers(t *testing.T) {
	// f(v, s) = s·v is bilinear from ℝ²×ℝ to ℝ².
	m := law.BilinearMap[float64, vec2, float64, vec2]{
		F: op.NewForm("act", func(v vec2, s float64) vec2 { return plane.Scale.Apply(s, v) }),
		V: plane,
		W: scalars.Module(),
		X: plane,
	}
	l, err := law.NewBilinearMap(m, law.Both, reals, vectors, reals, vectors.Codomain())
	require.NoError(t, err)
	l.Test(t)

	_, err = law.NewBilinearMap(law.BilinearMap[float64, vec2, float64, vec2]{F: m.F, V: plane, X: plane},
		law.Both, reals, vectors, reals, vectors.Codomain())
	assert.ErrorIs(t, err, law.ErrInvalidLaw)
}

func TestSymmetry(t *testing.T) {
	l, err := law.NewSymmetry(dot, vectors, reals.Codomain())
	require.NoError(t, err)
	l.Test(t)

	skew := op.NewForm("g", func(v, w vec2) float64 { return v[0] * w[1] })
	bad, err := law.NewSymmetry(skew, vectors, reals.Codomain())
	require.NoError(t, err)
	err = bad.Verify(vec2{1, 0}, vec2{0, 1})
	require.ErrorIs(t, err, law.ErrLawViolated)
	assert.Contains(t, err.Error(), "g(v, w) = g(w, v)\n  g([1 0], [0 1]) = 1\n  g([0 1], [1 0]) = 0")
}

func TestPositiveDefinite(t *testing.T) {
	nonNegative := func(x float64) bool { return x >= 0 }
	l, err := law.NewPositiveDefinite(dot, nonNegative, vec2{}, 0, vectors, reals.Codomain())
	require.NoError(t, err)
	assert.NoError(t, l.Verify(vec2{}))
	l.Test(t)

	degenerate := op.NewForm("h", func(v, w vec2) float64 { return v[0] * w[0] })
	bad, err := law.NewPositiveDefinite(degenerate, nonNegative, vec2{}, 0, vectors, reals.Codomain())
	require.NoError(t, err)
	err = bad.Verify(vec2{0, 1})
	require.ErrorIs(t, err, law.ErrLawViolated)
	assert.Contains(t, err.Error(), "h(x, x) = 0 ⇔ x = 0")

	negative := op.NewForm("n", func(v, w vec2) float64 { return -dot.Apply(v, w) })
	bad, err = law.NewPositiveDefinite(negative, nonNegative, vec2{}, 0, vectors, reals.Codomain())
	require.NoError(t, err)
	assert.ErrorIs(t, bad.Verify(vec2{1, 0}), law.ErrLawViolated)

	_, err = law.NewPositiveDefinite(dot, func(x float64) bool { return x > 0 }, vec2{}, 0, vectors, reals.Codomain())
	assert.ErrorIs(t, err, law.ErrInvalidLaw)
}

func TestScalarAction_AllClauses(t *testing.T) {
	for _, clause := range []law.ActionClause{law.Compatibility, law.Unital, law.VectorDistributivity, law.ScalarDistributivity} {
		l, err := law.NewScalarAction(clause, scalars, plane, reals, vectors)
		require.NoError(t, err)
		t.Run(l.Name(), func(t *testing.T) { l.Test(t) })
	}

	_, err := law.NewScalarAction(law.ActionClause(9), scalars, plane, reals, vectors)
	assert.ErrorIs(t, err, law.ErrInvalidLaw)
	_, err = law.NewScalarAction(law.Compatibility, law.Scalars[float64]{}, plane, reals, vectors)
	assert.ErrorIs(t, err, law.ErrInvalidLaw)
}

func TestScalarAction_ShiftedActionIsNotUnital(t *testing.T) {
	shifted := law.Module[float64, vec2]{
		Add:   plane.Add,
		Scale: op.NewAction(op.Times, func(s float64, v vec2) vec2 { return vec2{s*v[0] + 1, s * v[1]} }),
	}
	l, err := law.NewScalarAction(law.Unital, scalars, shifted, reals, vectors)
	require.NoError(t, err)
	assert.Equal(t, "scalar action unit (·)", l.Name())

	err = l.Verify(0, 0, vec2{1, 2}, vec2{})
	require.ErrorIs(t, err, law.ErrLawViolated)
	assert.Contains(t, err.Error(), "1·v = v\n  1·[1 2] = [2 2]\n  v = [1 2]")
}
