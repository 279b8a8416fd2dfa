// SPDX-License-Identifier: MIT

package suite

import (
	"testing"

	"github.com/katalvlaran/kosmos/law"
)

// Run runs every law of s.Laws as a subtest of t.
func Run(t *testing.T, s LawSuite) {
	t.Helper()
	run(t, s.Laws())
}

// RunFull runs every law of s.FullLaws as a subtest of t.
func RunFull(t *testing.T, s LawSuite) {
	t.Helper()
	run(t, s.FullLaws())
}

func run(t *testing.T, laws []law.TestingLaw) {
	t.Helper()
	for _, l := range laws {
		t.Run(l.Name(), func(t *testing.T) { l.Test(t) })
	}
}
