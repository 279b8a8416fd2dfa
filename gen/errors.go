// SPDX-License-Identifier: MIT

package gen

import "errors"

// ErrFilterExhausted is reported (through the property runner) when a
// filtered generator could not produce an accepted value within its
// attempt budget. It usually means the predicate is too restrictive for
// the underlying generator.
var ErrFilterExhausted = errors.New("gen: filter exhausted its attempts")
