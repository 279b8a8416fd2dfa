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

// MaxCayleyDickson is the deepest supported doubling (sedenions).
const MaxCayleyDickson = 4

var cayleyNames = [MaxCayleyDickson + 1]string{"ℤ", "ℤ[i]", "ℍ(ℤ)", "𝕆(ℤ)", "𝕊(ℤ)"}

// CayleyDickson is the k-fold Cayley–Dickson double of the integers:
// elements are 2^k integer components and
//
//	(a, b)(c, d) = (ac − d*b, da + bc*),  (a, b)* = (a*, −b).
//
// Level 1 is commutative, level 2 is associative, levels up to 3 are
// composition algebras, and level 4 is only flexible and
// power-associative.
type CayleyDickson struct{ k int }

// NewCayleyDickson returns level k, 0 ≤ k ≤ MaxCayleyDickson.
func NewCayleyDickson(k int) (CayleyDickson, error) {
	if k < 0 || k > MaxCayleyDickson {
		return CayleyDickson{}, fmt.Errorf("%w: Cayley–Dickson level %d not in [0, %d]", ErrInvalidParameter, k, MaxCayleyDickson)
	}
	return CayleyDickson{k: k}, nil
}

// Level returns k.
func (c CayleyDickson) Level() int { return c.k }

// Dim returns 2^k.
func (c CayleyDickson) Dim() int { return 1 << c.k }

// Name returns the conventional name of the level.
func (c CayleyDickson) Name() string { return cayleyNames[c.k] }

// Domain draws components in [-5, 5]. Elements render as spew dumps of
// their component vectors.
func (c CayleyDickson) Domain() law.Domain[[]int64] {
	return law.On(rapid.SliceOfN(rapid.Int64Range(-5, 5), c.Dim(), c.Dim()),
		eq.Structural[[]int64](),
		printable.Dump[[]int64]())
}

// One returns the multiplicative identity (1, 0, …).
func (c CayleyDickson) One() []int64 {
	one := make([]int64, c.Dim())
	one[0] = 1
	return one
}

// Mul returns the Cayley–Dickson product.
func (c CayleyDickson) Mul() op.Binary[[]int64] { return op.NewBinary(op.Times, cdMul) }

// Star returns the conjugation.
func (c CayleyDickson) Star() suite.StarOps[[]int64] {
	return suite.StarOps[[]int64]{Conj: op.NewUnary(op.Conj, cdConj)}
}

// Norm returns the sum of squares, multiplicative up to level 3.
func (c CayleyDickson) Norm() suite.NormOps[[]int64, int64] {
	return suite.NormOps[[]int64, int64]{
		Norm: op.NewMapping("N", func(x []int64) int64 {
			var sum int64
			for _, v := range x {
				sum += v * v
			}
			return sum
		}),
		Mul: op.NewBinary(op.Times, func(a, b int64) int64 { return a * b }),
	}
}

// Module returns the componentwise ℤ-module.
func (c CayleyDickson) Module() suite.ModuleOps[int64, []int64] {
	return suite.ModuleOps[int64, []int64]{
		Scalars: law.Scalars[int64]{
			Add:  op.NewBinary(op.Plus, func(a, b int64) int64 { return a + b }),
			Mul:  op.NewBinary(op.Times, func(a, b int64) int64 { return a * b }),
			Zero: 0,
			One:  1,
		},
		Add:  op.NewBinary(op.Plus, cdAdd),
		Zero: make([]int64, c.Dim()),
		Neg:  op.NewUnary(op.Minus, mapEach(func(a int64) int64 { return -a })),
		Scale: op.NewAction(op.Times, func(s int64, v []int64) []int64 {
			return mapEach(func(a int64) int64 { return s * a })(v)
		}),
	}
}

// Ring returns the additive group with the Cayley–Dickson product.
func (c CayleyDickson) Ring() suite.RingOps[[]int64] {
	m := c.Module()
	return suite.RingOps[[]int64]{Add: m.Add, Mul: c.Mul(), Zero: m.Zero, One: c.One(), Neg: m.Neg}
}

// ScalarDomain draws the integer scalars.
func ScalarDomain() law.Domain[int64] {
	return law.On(rapid.Int64Range(-5, 5), eq.Default[int64](), nil)
}

func cdAdd(x, y []int64) []int64 { return zipWith(func(a, b int64) int64 { return a + b })(x, y) }

func cdSub(x, y []int64) []int64 { return zipWith(func(a, b int64) int64 { return a - b })(x, y) }

func cdMul(x, y []int64) []int64 {
	n := len(x)
	if n == 1 {
		return []int64{x[0] * y[0]}
	}
	h := n / 2
	a, b := x[:h], x[h:]
	c, d := y[:h], y[h:]
	left := cdSub(cdMul(a, c), cdMul(cdConj(d), b))
	right := cdAdd(cdMul(d, a), cdMul(b, cdConj(c)))
	return append(left, right...)
}

func cdConj(x []int64) []int64 {
	n := len(x)
	if n == 1 {
		return []int64{x[0]}
	}
	h := n / 2
	out := cdConj(x[:h])
	for _, v := range x[h:] {
		out = append(out, -v)
	}
	return out
}
