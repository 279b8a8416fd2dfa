// SPDX-License-Identifier: MIT

package instances

import (
	"fmt"

	"pgregory.net/rapid"

	"github.com/katalvlaran/kosmos/eq"
	"github.com/katalvlaran/kosmos/law"
	"github.com/katalvlaran/kosmos/matrix"
	"github.com/katalvlaran/kosmos/op"
	"github.com/katalvlaran/kosmos/printable"
	"github.com/katalvlaran/kosmos/suite"
)

// Mat is a square integer matrix.
type Mat = *matrix.Dense[int64]

// Matrices is the ring of n×n integer matrices.
type Matrices struct{ n int }

// NewMatrices returns M_n(ℤ). n must be positive.
func NewMatrices(n int) (Matrices, error) {
	if n < 1 {
		return Matrices{}, fmt.Errorf("%w: matrix size %d < 1", ErrInvalidParameter, n)
	}
	return Matrices{n: n}, nil
}

// Name returns M_n(ℤ).
func (m Matrices) Name() string { return fmt.Sprintf("M%d(ℤ)", m.n) }

// Domain draws matrices with entries in [-3, 3].
func (m Matrices) Domain() law.Domain[Mat] { return matrixDomain(m.n, false) }

// Ring returns matrix addition and multiplication.
func (m Matrices) Ring() suite.RingOps[Mat] {
	return suite.RingOps[Mat]{
		Add:  op.NewBinary(op.Plus, matrix.MustAdd[int64]),
		Mul:  op.NewBinary(op.Times, matrix.MustMul[int64]),
		Zero: mustSquare(matrix.Zero[int64](m.n)),
		One:  mustSquare(matrix.Identity[int64](m.n)),
		Neg:  op.NewUnary(op.Minus, matrix.Neg[int64]),
	}
}

// Transpose returns transposition as a conjugation.
func (m Matrices) Transpose() suite.StarOps[Mat] {
	return suite.StarOps[Mat]{Conj: op.NewUnary("†", matrix.Transpose[int64])}
}

// Jordan replaces the product with the anticommutator a∘b = ab + ba,
// which makes M_n(ℤ) a Jordan algebra. It has no unit in general, so One
// is left zero.
func (m Matrices) Jordan() suite.RingOps[Mat] {
	r := m.Ring()
	return suite.RingOps[Mat]{
		Add:  r.Add,
		Mul:  op.NewBinary(op.Circle, matrix.MustAnticommutator[int64]),
		Zero: r.Zero,
		Neg:  r.Neg,
	}
}

// StrictUpper is the algebra of strictly upper-triangular n×n integer
// matrices, nilpotent of index n.
type StrictUpper struct{ n int }

// NewStrictUpper returns the strictly upper n×n matrices, n ≥ 2.
func NewStrictUpper(n int) (StrictUpper, error) {
	if n < 2 {
		return StrictUpper{}, fmt.Errorf("%w: nilpotent index %d < 2", ErrInvalidParameter, n)
	}
	return StrictUpper{n: n}, nil
}

// Name returns N_n(ℤ).
func (s StrictUpper) Name() string { return fmt.Sprintf("N%d(ℤ)", s.n) }

// Index returns n: every product of n elements vanishes.
func (s StrictUpper) Index() int { return s.n }

// Domain draws strictly upper matrices with entries in [-3, 3].
func (s StrictUpper) Domain() law.Domain[Mat] { return matrixDomain(s.n, true) }

// Magma returns matrix multiplication.
func (s StrictUpper) Magma() suite.MagmaOps[Mat] {
	return suite.MagmaOps[Mat]{Op: op.NewBinary(op.Times, matrix.MustMul[int64])}
}

// Zero returns the zero matrix.
func (s StrictUpper) Zero() Mat { return mustSquare(matrix.Zero[int64](s.n)) }

func matrixDomain(n int, strict bool) law.Domain[Mat] {
	g := rapid.Custom(func(t *rapid.T) Mat {
		m := mustSquare(matrix.Zero[int64](n))
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if strict && j <= i {
					continue
				}
				if err := m.Set(i, j, rapid.Int64Range(-3, 3).Draw(t, "entry")); err != nil {
					panic(err)
				}
			}
		}
		return m
	})
	return law.On(g, eq.Func[Mat](matrix.Equal[int64]), printable.Func[Mat](func(m Mat) string { return m.String() }))
}

func mustSquare(m Mat, err error) Mat {
	if err != nil {
		panic(err)
	}
	return m
}
