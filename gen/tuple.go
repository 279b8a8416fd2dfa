// SPDX-License-Identifier: MIT

package gen

import "pgregory.net/rapid"

// Pair holds two independently drawn values.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple holds three independently drawn values.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Quad holds four independently drawn values.
type Quad[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

// PairFrom draws (a, b) from two generators.
func PairFrom[A, B any](ga *rapid.Generator[A], gb *rapid.Generator[B]) *rapid.Generator[Pair[A, B]] {
	return rapid.Custom(func(t *rapid.T) Pair[A, B] {
		return Pair[A, B]{
			First:  ga.Draw(t, "first"),
			Second: gb.Draw(t, "second"),
		}
	})
}

// TripleFrom draws (a, b, c) from three generators.
func TripleFrom[A, B, C any](ga *rapid.Generator[A], gb *rapid.Generator[B], gc *rapid.Generator[C]) *rapid.Generator[Triple[A, B, C]] {
	return rapid.Custom(func(t *rapid.T) Triple[A, B, C] {
		return Triple[A, B, C]{
			First:  ga.Draw(t, "first"),
			Second: gb.Draw(t, "second"),
			Third:  gc.Draw(t, "third"),
		}
	})
}

// QuadFrom draws (a, b, c, d) from four generators.
func QuadFrom[A, B, C, D any](ga *rapid.Generator[A], gb *rapid.Generator[B], gc *rapid.Generator[C], gd *rapid.Generator[D]) *rapid.Generator[Quad[A, B, C, D]] {
	return rapid.Custom(func(t *rapid.T) Quad[A, B, C, D] {
		return Quad[A, B, C, D]{
			First:  ga.Draw(t, "first"),
			Second: gb.Draw(t, "second"),
			Third:  gc.Draw(t, "third"),
			Fourth: gd.Draw(t, "fourth"),
		}
	})
}

// PairOf draws two independent values from g.
func PairOf[A any](g *rapid.Generator[A]) *rapid.Generator[Pair[A, A]] {
	return PairFrom(g, g)
}

// TripleOf draws three independent values from g.
func TripleOf[A any](g *rapid.Generator[A]) *rapid.Generator[Triple[A, A, A]] {
	return TripleFrom(g, g, g)
}

// QuadOf draws four independent values from g.
func QuadOf[A any](g *rapid.Generator[A]) *rapid.Generator[Quad[A, A, A, A]] {
	return QuadFrom(g, g, g, g)
}

// TupleOf draws exactly n independent values from g. Panics if n < 0.
func TupleOf[A any](g *rapid.Generator[A], n int) *rapid.Generator[[]A] {
	if n < 0 {
		panic("gen: TupleOf(n<0)")
	}
	return rapid.SliceOfN(g, n, n)
}
