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

// Euclidean is ℝⁿ with the dot product.
type Euclidean struct {
	n     int
	reals Reals
}

// NewEuclidean returns ℝⁿ over NewReals(tol). n must be positive.
func NewEuclidean(n int, tol float64) (Euclidean, error) {
	if n < 1 {
		return Euclidean{}, fmt.Errorf("%w: dimension %d < 1", ErrInvalidParameter, n)
	}
	r, err := NewReals(tol)
	if err != nil {
		return Euclidean{}, err
	}
	return Euclidean{n: n, reals: r}, nil
}

// Name returns ℝ^n.
func (e Euclidean) Name() string { return fmt.Sprintf("ℝ^%d", e.n) }

// Reals returns the scalar field.
func (e Euclidean) Reals() Reals { return e.reals }

// Domain draws vectors of dyadic components.
func (e Euclidean) Domain() law.Domain[[]float64] {
	return law.On(rapid.SliceOfN(Dyadic(), e.n, e.n),
		eq.Slice(e.reals.Eq()),
		printable.Seq(printable.Float[float64](6)))
}

// Module returns componentwise addition and scaling.
func (e Euclidean) Module() suite.ModuleOps[float64, []float64] {
	return suite.ModuleOps[float64, []float64]{
		Scalars: e.reals.Scalars(),
		Add:     op.NewBinary(op.Plus, zipWith(func(a, b float64) float64 { return a + b })),
		Zero:    make([]float64, e.n),
		Neg:     op.NewUnary(op.Minus, mapEach(func(a float64) float64 { return -a })),
		Scale: op.NewAction(op.Times, func(s float64, v []float64) []float64 {
			return mapEach(func(a float64) float64 { return s * a })(v)
		}),
	}
}

// InnerProduct returns the dot product.
func (e Euclidean) InnerProduct() suite.InnerProduct[[]float64, float64] {
	return suite.InnerProduct[[]float64, float64]{
		Form: op.NewForm("dot", func(v, w []float64) float64 {
			var sum float64
			for i := range v {
				sum += v[i] * w[i]
			}
			return sum
		}),
		IsNonNegative: func(x float64) bool { return x >= -e.reals.tol },
	}
}

func zipWith[T any](fn func(a, b T) T) func(x, y []T) []T {
	return func(x, y []T) []T {
		out := make([]T, len(x))
		for i := range x {
			out[i] = fn(x[i], y[i])
		}
		return out
	}
}

func mapEach[T any](fn func(T) T) func([]T) []T {
	return func(x []T) []T {
		out := make([]T, len(x))
		for i := range x {
			out[i] = fn(x[i])
		}
		return out
	}
}
