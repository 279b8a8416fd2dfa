// SPDX-License-Identifier: MIT

package law_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/katalvlaran/kosmos/eq"
	"github.com/katalvlaran/kosmos/law"
	"github.com/katalvlaran/kosmos/op"
	"github.com/katalvlaran/kosmos/printable"
	"github.com/katalvlaran/kosmos/runner"
)

var (
	rationals = law.On(
		rapid.Custom(func(t *rapid.T) *big.Rat {
			num := rapid.IntRange(-10, 10).Draw(t, "num")
			den := rapid.IntRange(1, 10).Draw(t, "den")
			return big.NewRat(int64(num), int64(den))
		}),
		eq.Func[*big.Rat](func(a, b *big.Rat) bool { return a.Cmp(b) == 0 }),
		printable.Func[*big.Rat](func(r *big.Rat) string { return r.RatString() }),
	)
	ratMul = op.NewBinary(op.Times, func(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) })
	ratDiv = op.NewBinary(op.Divide, func(a, b *big.Rat) *big.Rat { return new(big.Rat).Quo(a, b) })
	isUnit = func(a *big.Rat) bool { return a.Sign() != 0 }
)

// ------------------------------------------------------------------------
// 1. Total and partial inverses
// ------------------------------------------------------------------------

func TestInvertibility_ZMod5(t *testing.T) {
	add, _, dom := zmod(5)
	inv := op.NewUnary(op.Minus, func(a int) int { return (5 - a) % 5 })
	l, err := law.NewInvertibility(add, 0, inv, dom)
	require.NoError(t, err)
	l.Test(t)

	wrong := op.NewUnary(op.Minus, func(a int) int { return a })
	bad, err := law.NewInvertibility(add, 0, wrong, dom)
	require.NoError(t, err)
	err = bad.Verify(2)
	require.ErrorIs(t, err, law.ErrLawViolated)
	assert.Contains(t, err.Error(), "a+-a = e\n  a+-a = 2+2 = 4\n  e = 0")
}

func TestPartialInvertibility_ZeroIsDeclined(t *testing.T) {
	inverse := op.NewPartial(op.Inverse, func(a *big.Rat) (*big.Rat, bool) {
		if a.Sign() == 0 {
			return nil, false
		}
		return new(big.Rat).Inv(a), true
	})
	l, err := law.NewPartialInvertibility(ratMul, big.NewRat(1, 1), isUnit, inverse, rationals)
	require.NoError(t, err)

	assert.NoError(t, l.Verify(new(big.Rat)))
	assert.NoError(t, l.Verify(big.NewRat(-3, 7)))
	l.Test(t)
}

func TestPartialInvertibility_PanickingInverseIsTotalityFailure(t *testing.T) {
	inverse := op.NewPartial(op.Inverse, func(a *big.Rat) (*big.Rat, bool) {
		return new(big.Rat).Inv(a), true
	})
	l, err := law.NewPartialInvertibility(ratMul, big.NewRat(1, 1), isUnit, inverse, rationals)
	require.NoError(t, err)

	err = l.Verify(new(big.Rat))
	require.ErrorIs(t, err, law.ErrTotality)
	assert.Contains(t, err.Error(), "0⁻¹ panicked")
}

func TestPartialInvertibility_NonUnitWithInverse(t *testing.T) {
	inverse := op.NewPartial(op.Inverse, func(a *big.Rat) (*big.Rat, bool) {
		if a.Sign() == 0 {
			return new(big.Rat), true
		}
		return new(big.Rat).Inv(a), true
	})
	l, err := law.NewPartialInvertibility(ratMul, big.NewRat(1, 1), isUnit, inverse, rationals)
	require.NoError(t, err)

	err = l.Verify(new(big.Rat))
	require.ErrorIs(t, err, law.ErrLawViolated)
	assert.Contains(t, err.Error(), "0 is not a unit but 0⁻¹ = 0")
}

func TestPartialInvertibility_InconsistentPairingIsRejected(t *testing.T) {
	none := op.NewPartial(op.Inverse, func(a *big.Rat) (*big.Rat, bool) { return nil, false })
	_, err := law.NewPartialInvertibility(ratMul, big.NewRat(1, 1), isUnit, none, rationals)
	assert.ErrorIs(t, err, law.ErrInvalidLaw)

	_, err = law.NewPartialInvertibility(ratMul, new(big.Rat), isUnit, none, rationals)
	assert.ErrorIs(t, err, law.ErrInvalidLaw)

	_, err = law.NewPartialInvertibility(ratMul, big.NewRat(1, 1), nil, none, rationals)
	assert.ErrorIs(t, err, law.ErrInvalidLaw)
}

func TestInverseInvolution(t *testing.T) {
	l, err := law.NewInverseInvolution(neg, ints)
	require.NoError(t, err)
	assert.Equal(t, "inverse involution (-)", l.Name())
	l.Test(t)
}

// ------------------------------------------------------------------------
// 2. Division
// ------------------------------------------------------------------------

func TestDivision_Rationals(t *testing.T) {
	l, err := law.NewDivision(ratMul, ratDiv, new(big.Rat), rationals)
	require.NoError(t, err)
	l.Test(t)
}

func TestDivision_TruncatingIntegerDivisionFails(t *testing.T) {
	div := op.NewBinary(op.Divide, func(a, b int) int { return a / b })
	l, err := law.NewDivision(times, div, 0, ints)
	require.NoError(t, err)

	err = l.Verify(1, 2)
	require.ErrorIs(t, err, law.ErrLawViolated)
	assert.Equal(t, "law: identity violated: division (÷): (a÷b)·b = a\n"+
		"  (a÷b)·b = (1÷2)·2 = 0·2 = 0\n"+
		"  a = 1", err.Error())
	// Zero divisors are never drawn, so the failure is a violation, not a panic.
	assert.ErrorIs(t, outcome(l).Kind, law.ErrLawViolated)
}

// ------------------------------------------------------------------------
// 3. Cancellativity
// ------------------------------------------------------------------------

func TestLeftCancellativity_MultiplicationMod5(t *testing.T) {
	_, mul, _ := zmod(5)
	dom := law.On(rapid.SampledFrom([]int{1, 2, 3}), eq.Default[int](), nil)
	l, err := law.NewCancellativity(mul, law.Left, dom)
	require.NoError(t, err)
	assert.Equal(t, "left cancellativity (·)", l.Name())

	// 3·1 = 3 and 3·2 = 1 differ, so nothing is concluded.
	assert.NoError(t, l.Verify(1, 2, 3))
	// 3·2 = 3·2 holds and so does 2 = 2.
	assert.NoError(t, l.Verify(2, 2, 3))
	l.Test(t)
}

func TestLeftCancellativity_MultiplicationMod4Fails(t *testing.T) {
	_, mul, dom := zmod(4)
	l, err := law.NewCancellativity(mul, law.Left, dom)
	require.NoError(t, err)

	err = l.Verify(1, 3, 2)
	require.ErrorIs(t, err, law.ErrLawViolated)
	assert.Contains(t, err.Error(), "c·a = c·b ⇒ a = b\n"+
		"  c·a = 2·1 = 2\n"+
		"  c·b = 2·3 = 2\n"+
		"  a = 1 ≠ b = 3")
	assert.Equal(t, runner.Failed, outcome(l).Status)
}

func TestRightCancellativity(t *testing.T) {
	_, mul, dom := zmod(4)
	l, err := law.NewCancellativity(mul, law.Right, dom)
	require.NoError(t, err)
	err = l.Verify(1, 3, 2)
	require.ErrorIs(t, err, law.ErrLawViolated)
	assert.Contains(t, err.Error(), "a·c = b·c ⇒ a = b")
}
