// SPDX-License-Identifier: MIT

package law

// Defaults (single source of truth).
const (
	// DefaultWitnessAttempts bounds existential searches (nilpotency).
	DefaultWitnessAttempts = 1000

	// DefaultPowerBound is the largest exponent u, v used by the
	// xᵘ·xᵛ = xᵘ⁺ᵛ clause of power-associativity.
	DefaultPowerBound = 4
)

// Side selects which half of a one-sided law is checked.
type Side int

const (
	// Both checks the left and the right variant.
	Both Side = iota
	// Left checks only the left variant.
	Left
	// Right checks only the right variant.
	Right
)

// String implements fmt.Stringer.
func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	case Both:
		return "two-sided"
	default:
		return "unknown"
	}
}

func (s Side) valid() bool { return s == Both || s == Left || s == Right }

func (s Side) left() bool  { return s == Both || s == Left }
func (s Side) right() bool { return s == Both || s == Right }

// Option customizes a law at construction time.
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*settings)

type settings struct {
	name     string
	symbol   string
	attempts int
	bound    int
	strict   bool
}

// WithName overrides the default law name. Panics on "".
func WithName(name string) Option {
	if name == "" {
		panic("law: WithName(\"\")")
	}
	return func(s *settings) { s.name = name }
}

// WithSymbol overrides the display symbol of the law's principal
// operation in names and traces. Panics on "".
func WithSymbol(symbol string) Option {
	if symbol == "" {
		panic("law: WithSymbol(\"\")")
	}
	return func(s *settings) { s.symbol = symbol }
}

// WithAttempts sets the budget of existential searches. Panics if n <= 0.
func WithAttempts(n int) Option {
	if n <= 0 {
		panic("law: WithAttempts(n<=0)")
	}
	return func(s *settings) { s.attempts = n }
}

// WithBound sets the exponent bound of power-associativity. Panics if n < 1.
func WithBound(n int) Option {
	if n < 1 {
		panic("law: WithBound(n<1)")
	}
	return func(s *settings) { s.bound = n }
}

// WithStrict makes nilpotency check every parenthesization of a product
// instead of the left-normed one (needed for non-associative algebras).
func WithStrict() Option {
	return func(s *settings) { s.strict = true }
}

func gatherSettings(opts []Option) settings {
	s := settings{attempts: DefaultWitnessAttempts, bound: DefaultPowerBound}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}

func (s settings) symbolOr(def string) string {
	if s.symbol != "" {
		return s.symbol
	}
	return def
}

func (s settings) nameOr(def string) string {
	if s.name != "" {
		return s.name
	}
	return def
}
