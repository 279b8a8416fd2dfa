// SPDX-License-Identifier: MIT

package instances

import (
	"math"
	"strconv"

	"pgregory.net/rapid"

	"github.com/katalvlaran/kosmos/eq"
	"github.com/katalvlaran/kosmos/gen"
	"github.com/katalvlaran/kosmos/law"
	"github.com/katalvlaran/kosmos/op"
	"github.com/katalvlaran/kosmos/printable"
	"github.com/katalvlaran/kosmos/suite"
)

// Inf is the tropical +∞, the identity of min and the zero of the
// tropical semiring.
const Inf int64 = math.MaxInt64

// Tropical returns the (min, +) semiring over int64 extended with Inf.
// Addition ⊕ is min, multiplication ⊗ is + with Inf absorbing.
// There is no additive inverse, so Neg is unset.
func Tropical() suite.RingOps[int64] {
	return suite.RingOps[int64]{
		Add: op.NewBinary("⊕", func(a, b int64) int64 { return min(a, b) }),
		Mul: op.NewBinary("⊗", func(a, b int64) int64 {
			if a == Inf || b == Inf {
				return Inf
			}
			return a + b
		}),
		Zero: Inf,
		One:  0,
	}
}

// TropicalDomain draws small integers and, often, Inf.
func TropicalDomain() law.Domain[int64] {
	g := gen.WithEdgeCases(rapid.Int64Range(-100, 1000), Inf, 0)
	return law.On(g, eq.Default[int64](), printable.Func[int64](func(a int64) string {
		if a == Inf {
			return "∞"
		}
		return strconv.FormatInt(a, 10)
	}))
}

// Naturals returns (+, ·) on uint64: a semiring without negation.
func Naturals() suite.RingOps[uint64] {
	return suite.RingOps[uint64]{
		Add:  op.NewBinary(op.Plus, func(a, b uint64) uint64 { return a + b }),
		Mul:  op.NewBinary(op.Times, func(a, b uint64) uint64 { return a * b }),
		Zero: 0,
		One:  1,
	}
}

// NaturalsDomain draws 0..1000, small enough that products of three stay
// exact.
func NaturalsDomain() law.Domain[uint64] {
	return law.On(rapid.Uint64Range(0, 1000), eq.Default[uint64](), nil)
}

// EvenDomain draws even naturals, closed under + and · but without 1:
// a hemiring and not a semiring.
func EvenDomain() law.Domain[uint64] {
	return law.On(gen.Map(rapid.Uint64Range(0, 500), func(n uint64) uint64 { return 2 * n }), eq.Default[uint64](), nil)
}
