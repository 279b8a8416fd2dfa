// SPDX-License-Identifier: MIT

package instances

import (
	"fmt"
	"math"

	"pgregory.net/rapid"

	"github.com/katalvlaran/kosmos/eq"
	"github.com/katalvlaran/kosmos/law"
	"github.com/katalvlaran/kosmos/op"
	"github.com/katalvlaran/kosmos/suite"
)

// IntegersDomain draws |a| ≤ 1000.
func IntegersDomain() law.Domain[int] {
	return law.On(rapid.IntRange(-1000, 1000), eq.Default[int](), nil)
}

// Integers returns the ring ℤ on int. Samples stay far from overflow.
func Integers() suite.RingOps[int] {
	return suite.RingOps[int]{
		Add:  op.NewBinary(op.Plus, func(a, b int) int { return a + b }),
		Mul:  op.NewBinary(op.Times, func(a, b int) int { return a * b }),
		Zero: 0,
		One:  1,
		Neg:  op.NewUnary(op.Minus, func(a int) int { return -a }),
	}
}

// Reduction is the quotient map ℤ → ℤ/n.
func Reduction(z ZMod) op.Mapping[int, int] {
	return op.NewMapping(fmt.Sprintf("mod%d", z.n), z.Reduce)
}

// Projection is the quotient map ℤ/m → ℤ/n for n dividing m.
func Projection(from, to ZMod) (op.Mapping[int, int], error) {
	if from.n%to.n != 0 {
		return op.Mapping[int, int]{}, fmt.Errorf("%w: %d does not divide %d", ErrInvalidParameter, to.n, from.n)
	}
	return op.NewMapping(fmt.Sprintf("mod%d", to.n), to.Reduce), nil
}

// Parity maps ℤ onto the Boolean ring: odd integers go to true.
func Parity() op.Mapping[int, bool] {
	return op.NewMapping("odd", func(a int) bool { return a%2 != 0 })
}

// Exp is the exponential, a group homomorphism from (ℝ, +) onto the
// positive reals under multiplication.
func Exp() op.Mapping[float64, float64] {
	return op.NewMapping("exp", math.Exp)
}

// PositiveReals returns the multiplicative group of the positive reals.
func PositiveReals() suite.GroupOps[float64] {
	return suite.GroupOps[float64]{
		Op:       op.NewBinary(op.Times, func(a, b float64) float64 { return a * b }),
		Identity: 1,
		Inverse:  op.NewUnary(op.Inverse, func(a float64) float64 { return 1 / a }),
	}
}
