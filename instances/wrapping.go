// SPDX-License-Identifier: MIT

package instances

import (
	"fmt"

	"golang.org/x/exp/constraints"
	"pgregory.net/rapid"

	"github.com/katalvlaran/kosmos/eq"
	"github.com/katalvlaran/kosmos/law"
	"github.com/katalvlaran/kosmos/op"
	"github.com/katalvlaran/kosmos/suite"
)

// Wrapping is a fixed-width signed integer type with Go's wrapping
// arithmetic, i.e. the ring ℤ/2ᵏ in two's-complement representatives.
// It has zero divisors (2^(k-1)·2 = 0), so it is not an integral domain.
type Wrapping[T constraints.Signed] struct{}

// Name returns the Go type name, e.g. int8.
func (Wrapping[T]) Name() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}

// Domain draws from the whole range of T.
func (Wrapping[T]) Domain() law.Domain[T] {
	return law.On(rapid.Make[T](), eq.Default[T](), nil)
}

// Ring returns wrapping addition and multiplication.
func (Wrapping[T]) Ring() suite.RingOps[T] {
	return suite.RingOps[T]{
		Add:  op.NewBinary(op.Plus, func(a, b T) T { return a + b }),
		Mul:  op.NewBinary(op.Times, func(a, b T) T { return a * b }),
		Zero: 0,
		One:  1,
		Neg:  op.NewUnary(op.Minus, func(a T) T { return -a }),
	}
}

// Lattice orders T numerically: join is max, meet is min.
func (Wrapping[T]) Lattice() suite.LatticeOps[T] {
	return suite.LatticeOps[T]{
		Join: op.NewBinary(op.Join, func(a, b T) T { return max(a, b) }),
		Meet: op.NewBinary(op.Meet, func(a, b T) T { return min(a, b) }),
	}
}
