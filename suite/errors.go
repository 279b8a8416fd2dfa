// SPDX-License-Identifier: MIT

package suite

import "errors"

var (
	// ErrDuplicateLaw is returned when two distinct laws of one suite share
	// a name. The same law reached through two parents is merged instead.
	ErrDuplicateLaw = errors.New("suite: duplicate law name")

	// ErrNotSuperset is returned by VerifySuperset and VerifyFull when a
	// law of the weaker list is missing from the stronger one.
	ErrNotSuperset = errors.New("suite: not a superset")

	// ErrEmptySuite is returned when a suite would have no laws at all.
	ErrEmptySuite = errors.New("suite: no laws")

	// ErrNilLaw is returned when a nil law is passed to a composition.
	ErrNilLaw = errors.New("suite: nil law")
)
