// SPDX-License-Identifier: MIT

package runner

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"testing"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/kosmos/config"
	"github.com/katalvlaran/kosmos/law"
	"github.com/katalvlaran/kosmos/suite"
)

// Defaults (single source of truth).
const (
	// DefaultParallel bounds the number of laws running at once.
	DefaultParallel = config.DefaultParallel
)

// Option customizes a Runner. Constructors panic on nonsensical values.
type Option func(*Runner)

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("runner: WithLogger(nil)")
	}
	return func(r *Runner) { r.log = l }
}

// WithParallel bounds concurrent laws. Panics if n < 1.
func WithParallel(n int) Option {
	if n < 1 {
		panic("runner: WithParallel(n<1)")
	}
	return func(r *Runner) { r.parallel = n }
}

// WithChecks sets the number of samples per law (rapid.checks).
// Panics if n < 1. Zero Runner value keeps rapid's own setting.
//
// rapid reads its flags process-wide: while Run is in progress, any other
// rapid.Check in the process sees the runner's values. Run restores the
// previous values when it returns.
func WithChecks(n int) Option {
	if n < 1 {
		panic("runner: WithChecks(n<1)")
	}
	return func(r *Runner) { r.checks = n }
}

// WithFull runs FullLaws instead of Laws.
func WithFull(full bool) Option {
	return func(r *Runner) { r.full = full }
}

// WithFailFile lets rapid persist failing cases under testdata/rapid.
func WithFailFile(keep bool) Option {
	return func(r *Runner) { r.failfile = keep }
}

// Runner executes law suites outside of go test.
type Runner struct {
	log      *slog.Logger
	parallel int
	checks   int
	full     bool
	failfile bool
}

// New returns a Runner. Without options it logs nowhere, runs
// DefaultParallel laws at once and leaves rapid's sample count alone.
func New(opts ...Option) *Runner {
	r := &Runner{
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		parallel: DefaultParallel,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// FromConfig returns a Runner configured by cfg; opts are applied last.
func FromConfig(cfg config.Config, opts ...Option) *Runner {
	base := []Option{WithParallel(cfg.Parallel), WithChecks(cfg.Checks), WithFull(cfg.Full), WithFailFile(cfg.FailFile)}
	return New(append(base, opts...)...)
}

type job struct {
	suite string
	law   law.TestingLaw
}

// Run executes every law of suites, at most parallel at a time, and
// returns the report in suite order. It returns ErrLawsFailed when a law
// failed and the context error when ctx ended first; laws not started by
// then are reported as Skipped.
func (r *Runner) Run(ctx context.Context, suites ...suite.LawSuite) (Report, error) {
	rapidFlags.Lock()
	defer rapidFlags.Unlock()
	restore, err := r.configureRapid()
	if err != nil {
		return Report{}, err
	}
	defer restore()

	var jobs []job
	for _, s := range suites {
		laws := s.Laws()
		if r.full {
			laws = s.FullLaws()
		}
		for _, l := range laws {
			jobs = append(jobs, job{suite: s.Name(), law: l})
		}
	}

	start := time.Now()
	results := make([]Result, len(jobs))
	for i, j := range jobs {
		results[i] = Result{Suite: j.suite, Law: j.law.Name(), Status: Skipped}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallel)
	for i, j := range jobs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res := Capture(j.law)
			res.Suite = j.suite
			results[i] = res
			r.logResult(res)
			return nil
		})
	}
	err = g.Wait()
	if err == nil {
		err = ctx.Err()
	}

	rep := Report{Results: results, Duration: time.Since(start)}
	r.log.Info("law run finished",
		slog.Int("laws", len(results)),
		slog.Int("passed", len(rep.Passed())),
		slog.Int("failed", len(rep.Failed())),
		slog.Int("skipped", len(rep.Skipped())),
		slog.Duration("duration", rep.Duration),
	)
	if err != nil {
		return rep, fmt.Errorf("runner: run interrupted: %w", err)
	}
	if n := len(rep.Failed()); n > 0 {
		return rep, fmt.Errorf("%w: %d of %d", ErrLawsFailed, n, len(results))
	}
	return rep, nil
}

func (r *Runner) logResult(res Result) {
	attrs := []any{
		slog.String("suite", res.Suite),
		slog.String("law", res.Law),
		slog.String("status", res.Status.String()),
		slog.Duration("duration", res.Duration),
	}
	if res.Failed() {
		kind := "unclassified"
		if res.Kind != nil {
			kind = res.Kind.Error()
		}
		r.log.Warn("law failed", append(attrs, slog.String("kind", kind), slog.String("message", res.Message))...)
		return
	}
	r.log.Debug("law done", attrs...)
}

// rapidFlags is held for a whole Run: rapid keeps its settings in
// process-wide flags, so two runs must not interleave.
var rapidFlags sync.Mutex

// configureRapid applies checks and failfile to the flags rapid registers
// on flag.CommandLine; rapid has no programmatic setting for either. The
// returned func puts the previous values back. Callers hold rapidFlags.
func (r *Runner) configureRapid() (func(), error) {
	initTestingFlags()
	var names []string
	if r.checks > 0 {
		names = append(names, "rapid.checks")
	}
	names = append(names, "rapid.nofailfile")
	prev := make(map[string]string, len(names))
	for _, name := range names {
		f := flag.Lookup(name)
		if f == nil {
			return nil, fmt.Errorf("runner: flag %s is not registered", name)
		}
		prev[name] = f.Value.String()
	}
	restore := func() {
		for name, v := range prev {
			_ = flag.Set(name, v)
		}
	}

	if r.checks > 0 {
		if err := setFlag("rapid.checks", strconv.Itoa(r.checks)); err != nil {
			restore()
			return nil, err
		}
	}
	if err := setFlag("rapid.nofailfile", strconv.FormatBool(!r.failfile)); err != nil {
		restore()
		return nil, err
	}
	return restore, nil
}

// initTestingFlags gives a plain binary the flag state of a test binary.
// rapid.Check calls testing.Short, which panics unless testing.Init ran
// and flag.CommandLine was parsed. Parsing no arguments leaves the
// command line to the caller's own flag handling.
func initTestingFlags() {
	testing.Init()
	if !flag.Parsed() {
		_ = flag.CommandLine.Parse(nil)
	}
}

func setFlag(name, value string) error {
	if flag.Lookup(name) == nil {
		return fmt.Errorf("runner: flag %s is not registered", name)
	}
	if err := flag.Set(name, value); err != nil {
		return fmt.Errorf("runner: set %s=%s: %w", name, value, err)
	}
	return nil
}
