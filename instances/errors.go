// SPDX-License-Identifier: MIT

package instances

import "errors"

var (
	// ErrInvalidParameter marks a carrier parameter out of range
	// (modulus, dimension, tolerance, Cayley–Dickson level).
	ErrInvalidParameter = errors.New("instances: invalid parameter")

	// ErrNotAField is returned by ZMod.Field for a composite modulus.
	ErrNotAField = errors.New("instances: not a field")
)
