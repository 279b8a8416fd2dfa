// SPDX-License-Identifier: MIT

package runner

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/exp/slices"
)

// Report collects the results of one Run in suite order.
type Report struct {
	Results  []Result
	Duration time.Duration
}

// Passed returns the results with status Passed.
func (r Report) Passed() []Result { return r.filter(Passed) }

// Failed returns the failed results, grouped by suite.
func (r Report) Failed() []Result {
	out := r.filter(Failed)
	slices.SortStableFunc(out, func(a, b Result) int { return strings.Compare(a.Suite, b.Suite) })
	return out
}

// Skipped returns the results with status Skipped.
func (r Report) Skipped() []Result { return r.filter(Skipped) }

func (r Report) filter(s Status) []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Status == s {
			out = append(out, res)
		}
	}
	return out
}

// Summary renders a one-line tally followed by one block per failure.
func (r Report) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d laws: %d passed, %d failed, %d skipped (%s)\n",
		len(r.Results), len(r.Passed()), len(r.Failed()), len(r.Skipped()), r.Duration.Round(time.Millisecond))
	for _, res := range r.Failed() {
		fmt.Fprintf(&b, "FAIL %s / %s\n", res.Suite, res.Law)
		for _, line := range strings.Split(strings.TrimSpace(res.Message), "\n") {
			fmt.Fprintf(&b, "    %s\n", line)
		}
	}
	return b.String()
}
