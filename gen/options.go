// SPDX-License-Identifier: MIT

package gen

// DefaultFilterAttempts bounds how many candidates Filter draws before
// giving up with ErrFilterExhausted.
const DefaultFilterAttempts = 100

// DefaultSeed is the base seed used by Exists and Samples when no WithSeed
// option is supplied. Seeds base, base+1, … are tried in order.
const DefaultSeed = 1

// Option tunes Filter, Exists and Samples.
type Option func(*options)

type options struct {
	attempts int
	seed     int
}

// WithAttempts overrides the resample budget of Filter.
// Panics if n <= 0.
func WithAttempts(n int) Option {
	if n <= 0 {
		panic("gen: WithAttempts(n<=0)")
	}
	return func(o *options) { o.attempts = n }
}

// WithSeed sets the base seed of Exists and Samples.
func WithSeed(seed int) Option {
	return func(o *options) { o.seed = seed }
}

func gatherOptions(opts []Option) options {
	o := options{attempts: DefaultFilterAttempts, seed: DefaultSeed}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
