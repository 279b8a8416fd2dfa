// SPDX-License-Identifier: MIT

package eq

import (
	"math"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/exp/constraints"
)

// Default tolerances for Approx.
const (
	DefaultAbsTolerance = 1e-9
	DefaultRelTolerance = 1e-9
)

// Eq decides equality of two carrier values.
type Eq[A any] interface {
	Eqv(a, b A) bool
}

// Func adapts a plain function to Eq.
type Func[A any] func(a, b A) bool

// Eqv implements Eq.
func (f Func[A]) Eqv(a, b A) bool { return f(a, b) }

// Default compares with ==.
func Default[A comparable]() Eq[A] {
	return Func[A](func(a, b A) bool { return a == b })
}

// Approx compares floating-point values within an absolute OR relative
// tolerance. NaN equals NaN (otherwise reflexivity breaks), infinities are
// equal only to themselves. Panics on negative or NaN tolerances.
func Approx[F constraints.Float](abs, rel float64) Eq[F] {
	if !(abs >= 0) || !(rel >= 0) {
		panic("eq: Approx: tolerances must be non-negative")
	}
	return Func[F](func(a, b F) bool {
		return closeEnough(float64(a), float64(b), abs, rel)
	})
}

func closeEnough(a, b, abs, rel float64) bool {
	if a == b {
		return true
	}
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	d := math.Abs(a - b)
	if d <= abs {
		return true
	}
	return d <= rel*math.Max(math.Abs(a), math.Abs(b))
}

// Structural compares with cmp.Equal. Carriers with unexported fields need
// an explicit option (cmp.AllowUnexported, cmp.Comparer, ...) or cmp panics.
func Structural[A any](opts ...cmp.Option) Eq[A] {
	return Func[A](func(a, b A) bool { return cmp.Equal(a, b, opts...) })
}

// StructuralApprox is Structural with every float64/float32 leaf compared
// by cmpopts.EquateApprox(fraction, margin); NaNs compare equal.
// Panics on negative or NaN fraction/margin.
func StructuralApprox[A any](fraction, margin float64, opts ...cmp.Option) Eq[A] {
	if !(fraction >= 0) || !(margin >= 0) {
		panic("eq: StructuralApprox: fraction and margin must be non-negative")
	}
	all := append([]cmp.Option{cmpopts.EquateApprox(fraction, margin), cmpopts.EquateNaNs()}, opts...)
	return Structural[A](all...)
}

// Slice lifts an element relation to equal-length slices.
func Slice[A any](elem Eq[A]) Eq[[]A] {
	return Func[[]A](func(a, b []A) bool {
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !elem.Eqv(a[i], b[i]) {
				return false
			}
		}
		return true
	})
}

// By compares values through a comparable key, e.g. a canonical form.
func By[A any, K comparable](key func(A) K) Eq[A] {
	return Func[A](func(a, b A) bool { return key(a) == key(b) })
}

// Not negates a relation. It is meant for inequality clauses such as
// 0 ≠ 1 and is not itself an equality.
func Not[A any](e Eq[A]) Eq[A] {
	return Func[A](func(a, b A) bool { return !e.Eqv(a, b) })
}
