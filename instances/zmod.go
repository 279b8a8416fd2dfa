// SPDX-License-Identifier: MIT

package instances

import (
	"fmt"
	"strconv"

	"pgregory.net/rapid"

	"github.com/katalvlaran/kosmos/eq"
	"github.com/katalvlaran/kosmos/gen"
	"github.com/katalvlaran/kosmos/law"
	"github.com/katalvlaran/kosmos/op"
	"github.com/katalvlaran/kosmos/suite"
)

// ZMod is the ring of residues modulo n, represented by 0..n-1.
type ZMod struct{ n int }

// NewZMod returns ℤ/n. n must be at least 2.
func NewZMod(n int) (ZMod, error) {
	if n < 2 {
		return ZMod{}, fmt.Errorf("%w: modulus %d < 2", ErrInvalidParameter, n)
	}
	return ZMod{n: n}, nil
}

// Modulus returns n.
func (z ZMod) Modulus() int { return z.n }

// Name returns ℤ/n.
func (z ZMod) Name() string { return "ℤ/" + strconv.Itoa(z.n) }

// Reduce maps any integer to its residue.
func (z ZMod) Reduce(a int) int {
	r := a % z.n
	if r < 0 {
		r += z.n
	}
	return r
}

// Domain draws residues uniformly.
func (z ZMod) Domain() law.Domain[int] {
	return law.On(rapid.IntRange(0, z.n-1), eq.Default[int](), nil)
}

// Ring returns addition, multiplication and negation modulo n.
func (z ZMod) Ring() suite.RingOps[int] {
	return suite.RingOps[int]{
		Add:  op.NewBinary(op.Plus, func(a, b int) int { return (a + b) % z.n }),
		Mul:  op.NewBinary(op.Times, func(a, b int) int { return (a * b) % z.n }),
		Zero: 0,
		One:  1,
		Neg:  op.NewUnary(op.Minus, func(a int) int { return (z.n - a) % z.n }),
	}
}

// Inverse returns the multiplicative inverse of a, if a is a unit.
func (z ZMod) Inverse(a int) (int, bool) {
	// extended Euclid on (a, n)
	r0, r1 := z.n, z.Reduce(a)
	t0, t1 := 0, 1
	for r1 != 0 {
		q := r0 / r1
		r0, r1 = r1, r0-q*r1
		t0, t1 = t1, t0-q*t1
	}
	if r0 != 1 {
		return 0, false
	}
	return z.Reduce(t0), true
}

// IsUnit reports whether a is invertible modulo n.
func (z ZMod) IsUnit(a int) bool {
	_, ok := z.Inverse(a)
	return ok
}

// IsPrime reports whether n is prime.
func (z ZMod) IsPrime() bool {
	for d := 2; d*d <= z.n; d++ {
		if z.n%d == 0 {
			return false
		}
	}
	return true
}

// Field returns the field operations. It fails for composite n.
func (z ZMod) Field() (suite.FieldOps[int], error) {
	if !z.IsPrime() {
		return suite.FieldOps[int]{}, fmt.Errorf("%w: %s", ErrNotAField, z.Name())
	}
	r := z.Ring()
	return suite.FieldOps[int]{
		Add: r.Add, Mul: r.Mul, Zero: r.Zero, One: r.One, Neg: r.Neg,
		Inv: op.NewPartial(op.Inverse, z.Inverse),
		Div: op.NewBinary(op.Divide, func(a, b int) int {
			inv, ok := z.Inverse(b)
			if !ok {
				panic(fmt.Sprintf("instances: %d is not invertible in %s", b, z.Name()))
			}
			return (a * inv) % z.n
		}),
	}, nil
}

// Units returns the multiplicative group of units and a domain drawing
// only units.
func (z ZMod) Units() (suite.GroupOps[int], law.Domain[int]) {
	d := z.Domain()
	d.Gen = gen.Filter(d.Gen, z.IsUnit)
	return suite.GroupOps[int]{
		Op:       z.Ring().Mul,
		Identity: 1,
		Inverse: op.NewUnary(op.Inverse, func(a int) int {
			inv, ok := z.Inverse(a)
			if !ok {
				panic(fmt.Sprintf("instances: %d is not a unit of %s", a, z.Name()))
			}
			return inv
		}),
	}, d
}
