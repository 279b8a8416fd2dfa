// SPDX-License-Identifier: MIT

package gen

import "pgregory.net/rapid"

// Map derives a generator of B by applying fn to every draw of g.
func Map[A, B any](g *rapid.Generator[A], fn func(A) B) *rapid.Generator[B] {
	return rapid.Map(g, fn)
}

// Filter restricts g to values satisfying pred.
//
// Each draw resamples g until pred holds, at most DefaultFilterAttempts
// times (WithAttempts overrides). When the budget runs out the current
// property run fails with ErrFilterExhausted rather than looping forever;
// the failure names the budget so a too-narrow predicate is easy to spot.
func Filter[A any](g *rapid.Generator[A], pred func(A) bool, opts ...Option) *rapid.Generator[A] {
	o := gatherOptions(opts)
	return rapid.Custom(func(t *rapid.T) A {
		for i := 0; i < o.attempts; i++ {
			v := g.Draw(t, "candidate")
			if pred(v) {
				return v
			}
		}
		t.Fatalf("%v: no accepted value in %d attempts", ErrFilterExhausted, o.attempts)

		var zero A
		return zero
	})
}

// NonZero filters out values equal to zero under equal.
func NonZero[A any](g *rapid.Generator[A], zero A, equal func(A, A) bool, opts ...Option) *rapid.Generator[A] {
	return Filter(g, func(a A) bool { return !equal(a, zero) }, opts...)
}

// WithEdgeCases mixes the given fixed values into g. Each draw picks either
// one of the values or a fresh draw of g. With no values, g is returned.
func WithEdgeCases[A any](g *rapid.Generator[A], values ...A) *rapid.Generator[A] {
	if len(values) == 0 {
		return g
	}
	fixed := append([]A(nil), values...)
	return rapid.OneOf(rapid.SampledFrom(fixed), g)
}

// Exists searches for a value of g satisfying pred, trying at most
// maxAttempts deterministic samples (seeds base, base+1, …).
//
// It is the existential counterpart of the property loop: rapid.Check
// quantifies over all samples and cannot witness existence, so clauses
// such as "some product of n-1 elements is non-zero" call Exists once.
// A sample whose generation or predicate panics counts as a miss.
// maxAttempts <= 0 finds nothing.
func Exists[A any](g *rapid.Generator[A], maxAttempts int, pred func(A) bool, opts ...Option) (A, bool) {
	o := gatherOptions(opts)
	for i := 0; i < maxAttempts; i++ {
		if v, ok := tryExample(g, o.seed+i, pred); ok {
			return v, true
		}
	}

	var zero A
	return zero, false
}

// Samples returns n deterministic draws of g.
// Panics if n < 0 or if g cannot produce a value.
func Samples[A any](g *rapid.Generator[A], n int, opts ...Option) []A {
	if n < 0 {
		panic("gen: Samples(n<0)")
	}
	o := gatherOptions(opts)
	out := make([]A, n)
	for i := range out {
		out[i] = g.Example(o.seed + i)
	}
	return out
}

func tryExample[A any](g *rapid.Generator[A], seed int, pred func(A) bool) (v A, ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	v = g.Example(seed)
	return v, pred(v)
}
