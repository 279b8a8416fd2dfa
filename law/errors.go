// SPDX-License-Identifier: MIT

package law

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/kosmos/gen"
)

var (
	// ErrLawViolated marks a sample for which the two sides of an identity
	// differ under the supplied equality.
	ErrLawViolated = errors.New("law: identity violated")

	// ErrTotality marks an operation that panicked on a sampled input. It
	// is reported by the totality laws (and by partial inverses on
	// non-units) rather than by every law individually.
	ErrTotality = errors.New("law: operation is not total")

	// ErrWitnessNotFound marks an existential clause whose bounded search
	// found no witness. A witness may still exist but was not sampled.
	ErrWitnessNotFound = errors.New("law: no witness found")

	// ErrInvalidLaw marks collaborators rejected at construction time
	// (nil operations or generators, inconsistent identity/inverse
	// pairings, out-of-range parameters).
	ErrInvalidLaw = errors.New("law: invalid law configuration")
)

// Violation is a failed check. The message is rendered on demand.
type Violation struct {
	// Law is the name of the failing law.
	Law string

	kind   error
	render func() string
}

func newViolation(kind error, law string, render func() string) *Violation {
	return &Violation{Law: law, kind: kind, render: render}
}

// Error renders the full counterexample trace.
func (v *Violation) Error() string {
	return fmt.Sprintf("%v: %s: %s", v.kind, v.Law, v.render())
}

// Unwrap exposes the failure class for errors.Is.
func (v *Violation) Unwrap() error { return v.kind }

// invalidf builds a construction error for law name.
func invalidf(name, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidLaw, name, fmt.Sprintf(format, args...))
}

// Classify maps a recorded failure message back to its sentinel. rapid
// reports failures as text, so the runner uses this to recover the failure
// class. Unknown messages (e.g. a panic inside an operation under a
// non-totality law) yield nil.
func Classify(msg string) error {
	for _, sentinel := range []error{ErrTotality, ErrWitnessNotFound, gen.ErrFilterExhausted, ErrLawViolated} {
		if strings.Contains(msg, sentinel.Error()) {
			return sentinel
		}
	}
	return nil
}
