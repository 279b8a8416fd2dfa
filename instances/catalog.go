// SPDX-License-Identifier: MIT

package instances

import (
	"fmt"

	"github.com/katalvlaran/kosmos/config"
	"github.com/katalvlaran/kosmos/op"
	"github.com/katalvlaran/kosmos/suite"
)

// catalog accumulates named suites; the first error sticks.
type catalog struct {
	cfg     config.Config
	carrier string
	suites  []suite.LawSuite
	err     error
}

// in sets the carrier prefix of the following suites.
func (c *catalog) in(carrier string) *catalog {
	c.carrier = carrier
	return c
}

func (c *catalog) add(s *suite.Suite, err error) {
	if c.err != nil {
		return
	}
	if err != nil {
		c.err = fmt.Errorf("instances: %s: %w", c.carrier, err)
		return
	}
	named, err := suite.Concat(c.carrier+": "+s.Name(), s)
	if err != nil {
		c.err = fmt.Errorf("instances: %s: %w", c.carrier, err)
		return
	}
	if c.cfg.Selects(named.Name()) {
		c.suites = append(c.suites, named)
	}
}

// Catalog builds the suite of every instance, each named
// "carrier: Structure (ops)", and keeps those selected by cfg.Suites.
// cfg.Tolerance sets the comparison tolerance of the float carriers.
func Catalog(cfg config.Config) ([]suite.LawSuite, error) {
	reals, err := NewReals(cfg.Tolerance)
	if err != nil {
		return nil, err
	}
	euclid, err := NewEuclidean(3, cfg.Tolerance)
	if err != nil {
		return nil, err
	}
	quats, err := NewQuaternions(cfg.Tolerance)
	if err != nil {
		return nil, err
	}

	c := &catalog{cfg: cfg}
	modular(c)
	integers(c)
	orders(c, reals)
	booleans(c)

	c.in("ℝ").add(suite.Field(reals.Field(), reals.Domain()))
	c.in("ℚ").add(suite.Field(Rationals(), RationalsDomain()))
	c.in("ℍ").add(suite.DivisionRing(quats.DivisionRing(), quats.Domain()))
	c.in(euclid.Name()).add(suite.InnerProductSpace(euclid.Module(), euclid.InnerProduct(), reals.Domain(), euclid.Domain()))

	cayley(c)
	matrices(c)
	homomorphisms(c, reals)

	if c.err != nil {
		return nil, c.err
	}
	return c.suites, nil
}

func modular(c *catalog) {
	z5 := must(NewZMod(5))
	c.in(z5.Name()).add(suite.AbelianGroup(z5.Ring().Additive(), z5.Domain()))
	c.in(z5.Name()).add(suite.MoufangLoop(z5.Ring().Additive(), z5.Domain()))
	c.in(z5.Name()).add(suite.Field(must(z5.Field()), z5.Domain()))

	z7 := must(NewZMod(7))
	units, dom := z7.Units()
	c.in("(" + z7.Name() + ")ˣ").add(suite.AbelianGroup(units, dom))

	z12 := must(NewZMod(12))
	c.in(z12.Name()).add(suite.CommutativeRing(z12.Ring(), z12.Domain()))
}

func integers(c *catalog) {
	c.in("ℤ").add(suite.IntegralDomain(Integers(), IntegersDomain()))

	var w Wrapping[int8]
	c.in(w.Name()).add(suite.CommutativeRing(w.Ring(), w.Domain()))
	c.in(w.Name()).add(suite.DistributiveLattice(w.Lattice(), w.Domain()))

	c.in("𝕋").add(suite.Semiring(Tropical(), TropicalDomain()))
	c.in("ℕ").add(suite.Semiring(Naturals(), NaturalsDomain()))
	c.in("2ℕ").add(suite.Hemiring(Naturals(), EvenDomain()))
}

func orders(c *catalog, reals Reals) {
	c.in("ℝ").add(suite.DistributiveLattice(reals.Lattice(), reals.Domain()))
}

func booleans(c *catalog) {
	c.in("𝔹").add(suite.BooleanAlgebra(Bools(), BoolDomain()))
	c.in("𝔹").add(suite.CommutativeRing(BooleanRing(Bools()), BoolDomain()))
	c.in("𝒫(8)").add(suite.BooleanAlgebra(BitSet(), BitSetDomain()))
	c.in("𝒫(8)").add(suite.CommutativeRing(BooleanRing(BitSet()), BitSetDomain()))
}

func cayley(c *catalog) {
	for k := 1; k <= MaxCayleyDickson; k++ {
		cd := must(NewCayleyDickson(k))
		name, dom, mul := cd.Name(), cd.Domain(), cd.Mul()
		switch {
		case k == 1:
			c.in(name).add(suite.IntegralDomain(cd.Ring(), dom))
		case k == 2:
			c.in(name).add(suite.Ring(cd.Ring(), dom))
		case k == 3:
			c.in(name).add(suite.AlternativeMagma(suite.MagmaOps[[]int64]{Op: mul}, dom))
		default:
			c.in(name).add(suite.FlexibleMagma(suite.MagmaOps[[]int64]{Op: mul}, dom))
			c.in(name).add(suite.PowerAssociativeMagma(suite.MagmaOps[[]int64]{Op: mul}, dom))
		}
		c.in(name).add(suite.StarAlgebra(cd.Module(), mul, cd.Star(), ScalarDomain(), dom))
		if k < MaxCayleyDickson {
			c.in(name).add(suite.CompositionAlgebra(cd.Module(), mul, cd.One(), cd.Norm(), ScalarDomain(), dom, ScalarDomain().Codomain()))
		}
	}
}

func matrices(c *catalog) {
	m2 := must(NewMatrices(2))
	c.in(m2.Name()).add(suite.Ring(m2.Ring(), m2.Domain()))
	c.in(m2.Name()).add(suite.Conjugation(m2.Transpose(), m2.Ring(), m2.Domain()))
	c.in(m2.Name()).add(suite.JordanAlgebra(m2.Jordan(), m2.Domain()))

	n3 := must(NewStrictUpper(3))
	c.in(n3.Name()).add(suite.NilpotentAlgebra(n3.Magma(), n3.Zero(), n3.Index(), n3.Domain()))
}

func homomorphisms(c *catalog, reals Reals) {
	z3, z4, z6, z12 := must(NewZMod(3)), must(NewZMod(4)), must(NewZMod(6)), must(NewZMod(12))

	c.in("ℤ → " + z6.Name()).add(suite.RingHomomorphism(Reduction(z6), Integers(), z6.Ring(), IntegersDomain(), z6.Domain().Codomain()))
	c.in("ℤ → 𝔹").add(suite.RingHomomorphism(Parity(), Integers(), BooleanRing(Bools()), IntegersDomain(), BoolDomain().Codomain()))
	c.in(z6.Name() + " → " + z3.Name()).add(suite.GroupHomomorphism(must(Projection(z6, z3)), z6.Ring().Additive(), z3.Ring().Additive(), z6.Domain(), z3.Domain().Codomain()))
	c.in(z12.Name() + " → " + z4.Name()).add(suite.RingHomomorphism(must(Projection(z12, z4)), z12.Ring(), z4.Ring(), z12.Domain(), z4.Domain().Codomain()))

	gauss := must(NewCayleyDickson(1))
	c.in(gauss.Name()).add(suite.RingHomomorphism(op.Endo(gauss.Star().Conj), gauss.Ring(), gauss.Ring(), gauss.Domain(), gauss.Domain().Codomain()))
	c.in(gauss.Name() + " → ℤ").add(suite.MonoidHomomorphism(gauss.Norm().Norm,
		suite.MonoidOps[[]int64]{Op: gauss.Mul(), Identity: gauss.One()},
		suite.MonoidOps[int64]{Op: gauss.Norm().Mul, Identity: 1},
		gauss.Domain(), ScalarDomain().Codomain()))

	c.in("ℝ → ℝ₊").add(suite.GroupHomomorphism(Exp(), reals.Field().Ring().Additive(), PositiveReals(), reals.Domain(), reals.Domain().Codomain()))
}

// must is for parameters fixed in this file, which cannot be invalid.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
