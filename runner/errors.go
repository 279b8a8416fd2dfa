// SPDX-License-Identifier: MIT

package runner

import "errors"

// ErrLawsFailed is returned by Run when at least one law failed. The
// Report still carries every result.
var ErrLawsFailed = errors.New("runner: laws failed")
