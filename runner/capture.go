// SPDX-License-Identifier: MIT

package runner

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/katalvlaran/kosmos/law"
)

// Status is the outcome of one law.
type Status int

const (
	// Passed means the law held for every sample.
	Passed Status = iota
	// Failed means the law reported a failure.
	Failed
	// Skipped means the law called Skip or was never started because the
	// run was cancelled.
	Skipped
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Passed:
		return "pass"
	case Failed:
		return "fail"
	case Skipped:
		return "skip"
	default:
		return "unknown"
	}
}

// Result is the recorded outcome of one law.
type Result struct {
	Suite    string
	Law      string
	Status   Status
	Kind     error // failure class (law.ErrLawViolated, …); nil when unknown
	Message  string
	Logs     []string
	Duration time.Duration
}

// Failed reports whether the law failed.
func (r Result) Failed() bool { return r.Status == Failed }

// Capture runs l against a recording rapid.TB and returns the outcome.
//
// The law runs in its own goroutine so that FailNow and SkipNow, which end
// the calling goroutine, stop the law without stopping the caller. A panic
// escaping the law is recorded as a failure.
func Capture(l law.TestingLaw) Result {
	rec := &recorder{name: l.Name()}
	start := time.Now()
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer func() {
			if p := recover(); p != nil {
				rec.record(fmt.Sprintf("panic: %v", p))
				rec.markFailed()
			}
		}()
		l.Test(rec)
	}()
	<-done

	res := Result{Law: l.Name(), Duration: time.Since(start)}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	res.Logs = append(res.Logs, rec.logs...)
	switch {
	case rec.failed:
		res.Status = Failed
		res.Message = strings.Join(rec.errs, "\n")
		res.Kind = law.Classify(res.Message)
	case rec.skipped:
		res.Status = Skipped
	default:
		res.Status = Passed
	}
	return res
}

// recorder implements rapid.TB by recording instead of reporting.
type recorder struct {
	name string

	mu      sync.Mutex
	failed  bool
	skipped bool
	errs    []string
	logs    []string
}

func (r *recorder) Helper()      {}
func (r *recorder) Name() string { return r.name }

func (r *recorder) Log(args ...any) { r.log(fmt.Sprint(args...)) }
func (r *recorder) Logf(format string, args ...any) {
	r.log(fmt.Sprintf(format, args...))
}

func (r *recorder) Error(args ...any) {
	r.record(fmt.Sprint(args...))
	r.markFailed()
}

func (r *recorder) Errorf(format string, args ...any) {
	r.record(fmt.Sprintf(format, args...))
	r.markFailed()
}

func (r *recorder) Fatal(args ...any) {
	r.Error(args...)
	r.FailNow()
}

func (r *recorder) Fatalf(format string, args ...any) {
	r.Errorf(format, args...)
	r.FailNow()
}

func (r *recorder) Fail() { r.markFailed() }

func (r *recorder) FailNow() {
	r.markFailed()
	runtime.Goexit()
}

func (r *recorder) Failed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.failed
}

func (r *recorder) Skip(args ...any) {
	r.Log(args...)
	r.SkipNow()
}

func (r *recorder) Skipf(format string, args ...any) {
	r.Logf(format, args...)
	r.SkipNow()
}

func (r *recorder) Skipped() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.skipped
}

func (r *recorder) SkipNow() {
	r.mu.Lock()
	r.skipped = true
	r.mu.Unlock()
	runtime.Goexit()
}

func (r *recorder) markFailed() {
	r.mu.Lock()
	r.failed = true
	r.mu.Unlock()
}

func (r *recorder) record(msg string) {
	r.mu.Lock()
	r.errs = append(r.errs, msg)
	r.mu.Unlock()
}

func (r *recorder) log(msg string) {
	r.mu.Lock()
	r.logs = append(r.logs, msg)
	r.mu.Unlock()
}
