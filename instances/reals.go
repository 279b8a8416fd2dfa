// SPDX-License-Identifier: MIT

package instances

import (
	"fmt"
	"math"
	"math/big"

	"pgregory.net/rapid"

	"github.com/katalvlaran/kosmos/eq"
	"github.com/katalvlaran/kosmos/gen"
	"github.com/katalvlaran/kosmos/law"
	"github.com/katalvlaran/kosmos/op"
	"github.com/katalvlaran/kosmos/printable"
	"github.com/katalvlaran/kosmos/suite"
)

// Dyadic draws k/16 for |k| ≤ 1000. Sums and products of up to a few
// such values are exact in float64, so only inversion and division
// need the tolerance.
func Dyadic() *rapid.Generator[float64] {
	return gen.Map(rapid.IntRange(-1000, 1000), func(k int) float64 { return float64(k) / 16 })
}

// Reals is float64 compared within a tolerance.
type Reals struct{ tol float64 }

// NewReals returns the reals with absolute and relative tolerance tol.
func NewReals(tol float64) (Reals, error) {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		return Reals{}, fmt.Errorf("%w: tolerance %v", ErrInvalidParameter, tol)
	}
	return Reals{tol: tol}, nil
}

// Tolerance returns the comparison tolerance.
func (r Reals) Tolerance() float64 { return r.tol }

// Eq compares within the tolerance.
func (r Reals) Eq() eq.Eq[float64] { return eq.Approx[float64](r.tol, r.tol) }

// Domain draws dyadic rationals.
func (r Reals) Domain() law.Domain[float64] {
	return law.On(Dyadic(), r.Eq(), printable.Float[float64](6))
}

// Field returns the field operations; zero has no inverse.
func (r Reals) Field() suite.FieldOps[float64] {
	isZero := func(a float64) bool { return r.Eq().Eqv(a, 0) }
	return suite.FieldOps[float64]{
		Add:  op.NewBinary(op.Plus, func(a, b float64) float64 { return a + b }),
		Mul:  op.NewBinary(op.Times, func(a, b float64) float64 { return a * b }),
		Zero: 0,
		One:  1,
		Neg:  op.NewUnary(op.Minus, func(a float64) float64 { return -a }),
		Inv: op.NewPartial(op.Inverse, func(a float64) (float64, bool) {
			if isZero(a) {
				return 0, false
			}
			return 1 / a, true
		}),
		Div: op.NewBinary(op.Divide, func(a, b float64) float64 { return a / b }),
	}
}

// Lattice orders the reals: join is max, meet is min.
func (r Reals) Lattice() suite.LatticeOps[float64] {
	return suite.LatticeOps[float64]{
		Join: op.NewBinary(op.Join, func(a, b float64) float64 { return math.Max(a, b) }),
		Meet: op.NewBinary(op.Meet, func(a, b float64) float64 { return math.Min(a, b) }),
	}
}

// Scalars returns the reals as the scalar ring of a module.
func (r Reals) Scalars() law.Scalars[float64] {
	f := r.Field()
	return law.Scalars[float64]{Add: f.Add, Mul: f.Mul, Zero: f.Zero, One: f.One}
}

// RationalsDomain draws p/q with |p| ≤ 50 and 1 ≤ q ≤ 20, compared
// exactly.
func RationalsDomain() law.Domain[*big.Rat] {
	g := rapid.Custom(func(t *rapid.T) *big.Rat {
		p := rapid.Int64Range(-50, 50).Draw(t, "p")
		q := rapid.Int64Range(1, 20).Draw(t, "q")
		return big.NewRat(p, q)
	})
	return law.On(g,
		eq.Func[*big.Rat](func(a, b *big.Rat) bool { return a.Cmp(b) == 0 }),
		printable.Func[*big.Rat](func(a *big.Rat) string { return a.RatString() }))
}

// Rationals returns the exact field ℚ. Every operation allocates a fresh
// value; operands are never mutated.
func Rationals() suite.FieldOps[*big.Rat] {
	return suite.FieldOps[*big.Rat]{
		Add:  op.NewBinary(op.Plus, func(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }),
		Mul:  op.NewBinary(op.Times, func(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }),
		Zero: new(big.Rat),
		One:  big.NewRat(1, 1),
		Neg:  op.NewUnary(op.Minus, func(a *big.Rat) *big.Rat { return new(big.Rat).Neg(a) }),
		Inv: op.NewPartial(op.Inverse, func(a *big.Rat) (*big.Rat, bool) {
			if a.Sign() == 0 {
				return nil, false
			}
			return new(big.Rat).Inv(a), true
		}),
		Div: op.NewBinary(op.Divide, func(a, b *big.Rat) *big.Rat { return new(big.Rat).Quo(a, b) }),
	}
}
