// SPDX-License-Identifier: MIT

package instances

import (
	"fmt"

	"pgregory.net/rapid"

	"github.com/katalvlaran/kosmos/eq"
	"github.com/katalvlaran/kosmos/law"
	"github.com/katalvlaran/kosmos/op"
	"github.com/katalvlaran/kosmos/printable"
	"github.com/katalvlaran/kosmos/suite"
)

// BoolDomain draws both truth values.
func BoolDomain() law.Domain[bool] {
	return law.On(rapid.Bool(), eq.Default[bool](), nil)
}

// Bools returns the two-element Boolean algebra.
func Bools() suite.BooleanOps[bool] {
	return suite.BooleanOps[bool]{
		Join:   op.NewBinary(op.Join, func(a, b bool) bool { return a || b }),
		Meet:   op.NewBinary(op.Meet, func(a, b bool) bool { return a && b }),
		Not:    op.NewUnary(op.Not, func(a bool) bool { return !a }),
		Bottom: false,
		Top:    true,
	}
}

// BooleanRing turns a Boolean algebra into a ring: addition is symmetric
// difference, multiplication is meet, and every element is its own
// negative.
func BooleanRing[A any](b suite.BooleanOps[A]) suite.RingOps[A] {
	return suite.RingOps[A]{
		Add:  op.Xor(b.Join, b.Meet, b.Not),
		Mul:  b.Meet,
		Zero: b.Bottom,
		One:  b.Top,
		Neg:  op.NewUnary(op.Minus, func(a A) A { return a }),
	}
}

// BitSetDomain draws subsets of an 8-element set, rendered as bit strings.
func BitSetDomain() law.Domain[uint8] {
	return law.On(rapid.Uint8(), eq.Default[uint8](), printable.Func[uint8](func(a uint8) string {
		return fmt.Sprintf("%08b", a)
	}))
}

// BitSet returns the power set of an 8-element set ordered by inclusion.
func BitSet() suite.BooleanOps[uint8] {
	return suite.BooleanOps[uint8]{
		Join:   op.NewBinary(op.Join, func(a, b uint8) uint8 { return a | b }),
		Meet:   op.NewBinary(op.Meet, func(a, b uint8) uint8 { return a & b }),
		Not:    op.NewUnary(op.Not, func(a uint8) uint8 { return ^a }),
		Bottom: 0,
		Top:    0xff,
	}
}
