// SPDX-License-Identifier: MIT

package instances_test

import (
	"flag"
	"math/big"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kosmos/config"
	"github.com/katalvlaran/kosmos/instances"
	"github.com/katalvlaran/kosmos/law"
	"github.com/katalvlaran/kosmos/runner"
	"github.com/katalvlaran/kosmos/suite"
)

func TestMain(m *testing.M) {
	_ = flag.Set("rapid.nofailfile", "true")
	os.Exit(m.Run())
}

// failures runs every full law of s outside of go test and returns the
// failed results.
func failures(t *testing.T, s suite.LawSuite) []runner.Result {
	t.Helper()
	var out []runner.Result
	for _, l := range s.FullLaws() {
		if r := runner.Capture(l); r.Failed() {
			out = append(out, r)
		}
	}
	return out
}

func TestCatalog_EverySuiteHolds(t *testing.T) {
	suites, err := instances.Catalog(config.Default())
	require.NoError(t, err)
	require.NotEmpty(t, suites)

	for _, s := range suites {
		t.Run(s.Name(), func(t *testing.T) { suite.RunFull(t, s) })
	}
}

func TestCatalog_NamesAreUniqueAndPrefixed(t *testing.T) {
	suites, err := instances.Catalog(config.Default())
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, s := range suites {
		assert.False(t, seen[s.Name()], "duplicate suite %q", s.Name())
		seen[s.Name()] = true
		assert.Contains(t, s.Name(), ": ")
	}
	assert.True(t, seen["ℤ/5: Field (+, ·)"])
	assert.True(t, seen["𝔹: BooleanAlgebra (∨, ∧, ¬)"])
}

func TestCatalog_Selects(t *testing.T) {
	cfg := config.Default()
	cfg.Suites = []string{"booleanalgebra"}
	suites, err := instances.Catalog(cfg)
	require.NoError(t, err)

	require.Len(t, suites, 2)
	for _, s := range suites {
		assert.Contains(t, s.Name(), "BooleanAlgebra")
	}
}

func TestCatalog_InvalidTolerance(t *testing.T) {
	cfg := config.Default()
	cfg.Tolerance = -1
	_, err := instances.Catalog(cfg)
	assert.ErrorIs(t, err, instances.ErrInvalidParameter)
}

func TestZMod(t *testing.T) {
	_, err := instances.NewZMod(1)
	assert.ErrorIs(t, err, instances.ErrInvalidParameter)

	z6, err := instances.NewZMod(6)
	require.NoError(t, err)
	assert.Equal(t, "ℤ/6", z6.Name())
	assert.Equal(t, 4, z6.Reduce(-8))
	assert.False(t, z6.IsPrime())

	tests := []struct {
		a, inv int
		ok     bool
	}{
		{a: 1, inv: 1, ok: true},
		{a: 5, inv: 5, ok: true},
		{a: 2, ok: false},
		{a: 3, ok: false},
		{a: 0, ok: false},
	}
	for _, tt := range tests {
		inv, ok := z6.Inverse(tt.a)
		assert.Equal(t, tt.ok, ok, "a=%d", tt.a)
		if tt.ok {
			assert.Equal(t, tt.inv, inv, "a=%d", tt.a)
		}
	}

	_, err = z6.Field()
	assert.ErrorIs(t, err, instances.ErrNotAField)
}

func TestZMod_PrimeField(t *testing.T) {
	z7, err := instances.NewZMod(7)
	require.NoError(t, err)
	f, err := z7.Field()
	require.NoError(t, err)

	inv, ok := f.Inv.Apply(3)
	require.True(t, ok)
	assert.Equal(t, 5, inv)
	assert.Equal(t, 4, f.Div.Apply(5, 3))

	_, ok = f.Inv.Apply(0)
	assert.False(t, ok)
	assert.Panics(t, func() { f.Div.Apply(1, 0) })
}

func TestZMod_CompositeHasZeroDivisors(t *testing.T) {
	z6, err := instances.NewZMod(6)
	require.NoError(t, err)
	s, err := suite.IntegralDomain(z6.Ring(), z6.Domain())
	require.NoError(t, err)

	failed := failures(t, s)
	require.Len(t, failed, 1)
	assert.Equal(t, "no two-sided zero divisors (·)", failed[0].Law)
	assert.ErrorIs(t, failed[0].Kind, law.ErrLawViolated)
}

func TestWrapping_IsNotAnIntegralDomain(t *testing.T) {
	var w instances.Wrapping[int8]
	assert.Equal(t, "int8", w.Name())

	r := w.Ring()
	assert.Equal(t, int8(0), r.Mul.Apply(16, 16))
	assert.Equal(t, int8(-128), r.Add.Apply(127, 1))

	l, err := law.NewNoZeroDivisors(r.Mul, r.Zero, law.Both, w.Domain())
	require.NoError(t, err)
	err = l.Verify(16, 16)
	require.ErrorIs(t, err, law.ErrLawViolated)
	assert.Contains(t, err.Error(), "16·16 = 0")
}

func TestEvenNaturals_FormAHemiring(t *testing.T) {
	s, err := suite.Hemiring(instances.Naturals(), instances.EvenDomain())
	require.NoError(t, err)
	assert.Empty(t, failures(t, s))
}

func TestTropical(t *testing.T) {
	r := instances.Tropical()
	assert.Equal(t, int64(3), r.Add.Apply(instances.Inf, 3))
	assert.Equal(t, instances.Inf, r.Mul.Apply(instances.Inf, -3))
	assert.Equal(t, int64(5), r.Mul.Apply(2, 3))
	assert.Equal(t, "∞", instances.TropicalDomain().Pr.Render(instances.Inf))
}

func TestReals(t *testing.T) {
	_, err := instances.NewReals(-1e-9)
	assert.ErrorIs(t, err, instances.ErrInvalidParameter)

	r, err := instances.NewReals(1e-9)
	require.NoError(t, err)
	f := r.Field()

	_, ok := f.Inv.Apply(1e-12)
	assert.False(t, ok, "values within tolerance of zero are not units")
	inv, ok := f.Inv.Apply(4)
	require.True(t, ok)
	assert.Equal(t, 0.25, inv)
	assert.True(t, r.Eq().Eqv(0.1+0.2, 0.3))
}

func TestRationals_DoNotMutateOperands(t *testing.T) {
	f := instances.Rationals()
	a, b := big.NewRat(1, 2), big.NewRat(1, 3)

	sum := f.Add.Apply(a, b)
	assert.Equal(t, "5/6", sum.RatString())
	assert.Equal(t, "1/2", a.RatString())
	assert.Equal(t, "1/3", b.RatString())

	q := f.Div.Apply(a, b)
	assert.Equal(t, "3/2", q.RatString())
	assert.Equal(t, "0", f.Zero.RatString())
}

func TestBooleanRing(t *testing.T) {
	r := instances.BooleanRing(instances.Bools())
	assert.Equal(t, "⊕", r.Add.Symbol())
	assert.True(t, r.Add.Apply(true, false))
	assert.False(t, r.Add.Apply(true, true))
	assert.True(t, r.Neg.Apply(true))

	bits := instances.BooleanRing(instances.BitSet())
	assert.Equal(t, uint8(0b0110), bits.Add.Apply(0b0101, 0b0011))
	assert.Equal(t, "00000101", instances.BitSetDomain().Pr.Render(5))
}

func TestEuclidean(t *testing.T) {
	_, err := instances.NewEuclidean(0, 1e-9)
	assert.ErrorIs(t, err, instances.ErrInvalidParameter)

	e, err := instances.NewEuclidean(3, 1e-9)
	require.NoError(t, err)
	assert.Equal(t, "ℝ^3", e.Name())

	dot := e.InnerProduct().Form
	assert.Equal(t, 32.0, dot.Apply([]float64{1, 2, 3}, []float64{4, 5, 6}))
	assert.Equal(t, []float64{5, 7, 9}, e.Module().Add.Apply([]float64{1, 2, 3}, []float64{4, 5, 6}))
	assert.Equal(t, "[0.5, 1, 1.5]", e.Domain().Pr.Render([]float64{0.5, 1, 1.5}))
}

func TestCayleyDickson_Products(t *testing.T) {
	_, err := instances.NewCayleyDickson(5)
	assert.ErrorIs(t, err, instances.ErrInvalidParameter)

	gauss, err := instances.NewCayleyDickson(1)
	require.NoError(t, err)
	assert.Equal(t, "ℤ[i]", gauss.Name())
	// (1+2i)(3+4i) = -5+10i
	assert.Equal(t, []int64{-5, 10}, gauss.Mul().Apply([]int64{1, 2}, []int64{3, 4}))

	quat, err := instances.NewCayleyDickson(2)
	require.NoError(t, err)
	i, j := []int64{0, 1, 0, 0}, []int64{0, 0, 1, 0}
	assert.Equal(t, []int64{0, 0, 0, 1}, quat.Mul().Apply(i, j))
	assert.Equal(t, []int64{0, 0, 0, -1}, quat.Mul().Apply(j, i))
	assert.Equal(t, []int64{1, -2, -3, -4}, quat.Star().Conj.Apply([]int64{1, 2, 3, 4}))
	assert.Equal(t, int64(30), quat.Norm().Norm.Apply([]int64{1, 2, 3, 4}))
	assert.Equal(t, "[1 -2 3 -4]", quat.Domain().Pr.Render([]int64{1, -2, 3, -4}))
}

func TestCayleyDickson_OctonionsAreNotAssociative(t *testing.T) {
	oct, err := instances.NewCayleyDickson(3)
	require.NoError(t, err)
	s, err := suite.Semigroup(suite.MagmaOps[[]int64]{Op: oct.Mul()}, oct.Domain())
	require.NoError(t, err)

	failed := failures(t, s)
	require.Len(t, failed, 1)
	assert.Equal(t, "associativity (·)", failed[0].Law)
}

func TestCayleyDickson_SedenionNormIsNotMultiplicative(t *testing.T) {
	sed, err := instances.NewCayleyDickson(4)
	require.NoError(t, err)
	norm := sed.Norm()
	l, err := law.NewNormMultiplicative(norm.Norm, sed.Mul(), norm.Mul, sed.Domain(), instances.ScalarDomain().Codomain())
	require.NoError(t, err)

	r := runner.Capture(l)
	assert.Equal(t, runner.Failed, r.Status)
	assert.ErrorIs(t, r.Kind, law.ErrLawViolated)
}

func TestQuaternions(t *testing.T) {
	i, j := instances.Quaternion{0, 1, 0, 0}, instances.Quaternion{0, 0, 1, 0}
	assert.Equal(t, instances.Quaternion{0, 0, 0, 1}, i.Mul(j))
	assert.Equal(t, instances.Quaternion{0, 0, 0, -1}, j.Mul(i))
	assert.Equal(t, "(1, 0.5, 0, -2)", instances.Quaternion{1, 0.5, 0, -2}.String())

	h, err := instances.NewQuaternions(1e-9)
	require.NoError(t, err)
	ops := h.DivisionRing()
	inv, ok := ops.Inv.Apply(instances.Quaternion{0, 2, 0, 0})
	require.True(t, ok)
	assert.Equal(t, instances.Quaternion{0, -0.5, 0, 0}, inv)
	_, ok = ops.Inv.Apply(instances.Quaternion{})
	assert.False(t, ok)
}

func TestQuaternions_AreNotAField(t *testing.T) {
	h, err := instances.NewQuaternions(1e-9)
	require.NoError(t, err)
	s, err := suite.Field(h.DivisionRing(), h.Domain())
	require.NoError(t, err)

	failed := failures(t, s)
	require.Len(t, failed, 1)
	assert.Equal(t, "commutativity (·)", failed[0].Law)
}

func TestMatrices(t *testing.T) {
	_, err := instances.NewMatrices(0)
	assert.ErrorIs(t, err, instances.ErrInvalidParameter)
	_, err = instances.NewStrictUpper(1)
	assert.ErrorIs(t, err, instances.ErrInvalidParameter)

	m2, err := instances.NewMatrices(2)
	require.NoError(t, err)
	assert.Equal(t, "M2(ℤ)", m2.Name())
	r := m2.Ring()
	assert.Equal(t, "[[1 0] [0 1]]", r.One.String())
	assert.Equal(t, "[[0 0] [0 0]]", r.Zero.String())

	n3, err := instances.NewStrictUpper(3)
	require.NoError(t, err)
	assert.Equal(t, 3, n3.Index())
	assert.Equal(t, "N3(ℤ)", n3.Name())
}

func TestMatrices_AreNotCommutative(t *testing.T) {
	m2, err := instances.NewMatrices(2)
	require.NoError(t, err)
	s, err := suite.CommutativeRing(m2.Ring(), m2.Domain())
	require.NoError(t, err)

	failed := failures(t, s)
	require.Len(t, failed, 1)
	assert.Equal(t, "commutativity (·)", failed[0].Law)
}

func TestProjection(t *testing.T) {
	z6, _ := instances.NewZMod(6)
	z4, _ := instances.NewZMod(4)
	_, err := instances.Projection(z6, z4)
	assert.ErrorIs(t, err, instances.ErrInvalidParameter)

	z3, _ := instances.NewZMod(3)
	p, err := instances.Projection(z6, z3)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Apply(5))
	assert.Equal(t, "mod3", p.Name())
}

func TestReduction_IsARingHomomorphism(t *testing.T) {
	z3, _ := instances.NewZMod(3)
	s, err := suite.RingHomomorphism(instances.Reduction(z3), instances.Integers(), z3.Ring(), instances.IntegersDomain(), z3.Domain().Codomain())
	require.NoError(t, err)
	assert.Empty(t, failures(t, s))
}
