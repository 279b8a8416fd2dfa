// SPDX-License-Identifier: MIT

package instances

import (
	"fmt"

	"github.com/katalvlaran/kosmos/eq"
	"github.com/katalvlaran/kosmos/gen"
	"github.com/katalvlaran/kosmos/law"
	"github.com/katalvlaran/kosmos/op"
	"github.com/katalvlaran/kosmos/printable"
	"github.com/katalvlaran/kosmos/suite"
)

// Quaternion is w + xi + yj + zk.
type Quaternion [4]float64

// String renders the four components.
func (q Quaternion) String() string {
	f := printable.Float[float64](6)
	return fmt.Sprintf("(%s, %s, %s, %s)", f.Render(q[0]), f.Render(q[1]), f.Render(q[2]), f.Render(q[3]))
}

// Conj returns w − xi − yj − zk.
func (q Quaternion) Conj() Quaternion { return Quaternion{q[0], -q[1], -q[2], -q[3]} }

// Norm returns w² + x² + y² + z².
func (q Quaternion) Norm() float64 { return q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3] }

// Mul is the Hamilton product.
func (q Quaternion) Mul(p Quaternion) Quaternion {
	a1, b1, c1, d1 := q[0], q[1], q[2], q[3]
	a2, b2, c2, d2 := p[0], p[1], p[2], p[3]
	return Quaternion{
		a1*a2 - b1*b2 - c1*c2 - d1*d2,
		a1*b2 + b1*a2 + c1*d2 - d1*c2,
		a1*c2 - b1*d2 + c1*a2 + d1*b2,
		a1*d2 + b1*c2 - c1*b2 + d1*a2,
	}
}

// Quaternions is the real division algebra ℍ.
type Quaternions struct{ reals Reals }

// NewQuaternions compares components within tol.
func NewQuaternions(tol float64) (Quaternions, error) {
	r, err := NewReals(tol)
	if err != nil {
		return Quaternions{}, err
	}
	return Quaternions{reals: r}, nil
}

// Domain draws quaternions with dyadic components.
func (h Quaternions) Domain() law.Domain[Quaternion] {
	g := gen.Map(gen.QuadOf(Dyadic()), func(q gen.Quad[float64, float64, float64, float64]) Quaternion {
		return Quaternion{q.First, q.Second, q.Third, q.Fourth}
	})
	re := h.reals.Eq()
	return law.On(g, eq.Func[Quaternion](func(p, q Quaternion) bool {
		for i := range p {
			if !re.Eqv(p[i], q[i]) {
				return false
			}
		}
		return true
	}), printable.Func[Quaternion](Quaternion.String))
}

// DivisionRing returns the ring operations with q⁻¹ = q*/N(q).
func (h Quaternions) DivisionRing() suite.FieldOps[Quaternion] {
	inv := func(q Quaternion) (Quaternion, bool) {
		n := q.Norm()
		if h.reals.Eq().Eqv(n, 0) {
			return Quaternion{}, false
		}
		c := q.Conj()
		return Quaternion{c[0] / n, c[1] / n, c[2] / n, c[3] / n}, true
	}
	return suite.FieldOps[Quaternion]{
		Add: op.NewBinary(op.Plus, func(p, q Quaternion) Quaternion {
			return Quaternion{p[0] + q[0], p[1] + q[1], p[2] + q[2], p[3] + q[3]}
		}),
		Mul:  op.NewBinary(op.Times, Quaternion.Mul),
		Zero: Quaternion{},
		One:  Quaternion{1, 0, 0, 0},
		Neg:  op.NewUnary(op.Minus, func(q Quaternion) Quaternion { return Quaternion{-q[0], -q[1], -q[2], -q[3]} }),
		Inv:  op.NewPartial(op.Inverse, inv),
		Div: op.NewBinary(op.Divide, func(p, q Quaternion) Quaternion {
			qi, ok := inv(q)
			if !ok {
				panic("instances: quaternion division by zero")
			}
			return p.Mul(qi)
		}),
	}
}
