package search

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/lstsched/decision"
	"github.com/katalvlaran/lstsched/greedy"
	"github.com/katalvlaran/lstsched/instance"
)

var (
	// ErrSearchExhausted indicates that even the final upper bound was rejected.
	ErrSearchExhausted = errors.New("search: no deadline accepted")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Step describes one decide call and the bounds after it.
type Step struct {
	Lower, Upper int64
	D            int64
	OK           bool
}

// Option configures Run.
type Option func(*Options)

// Options holds search tuning.
type Options struct {
	// SolveTimeout bounds every LP solve attempt. Zero disables it.
	SolveTimeout time.Duration

	// Epsilon is the support tolerance handed to decision.
	Epsilon float64

	// Prefetch enables speculative concurrent evaluation.
	Prefetch bool

	// OnStep, if set, is called after every visited decide call.
	OnStep func(Step)

	err error
}

// DefaultOptions returns sequential search with decision defaults.
func DefaultOptions() Options {
	d := decision.DefaultOptions()
	return Options{SolveTimeout: d.Timeout, Epsilon: d.Epsilon}
}

// WithSolveTimeout bounds each LP solve; a timed out solve counts as "no".
func WithSolveTimeout(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: negative solve timeout %v", ErrOptionViolation, d)
			return
		}
		o.SolveTimeout = d
	}
}

// WithEpsilon sets the support tolerance; eps must lie in [0, 0.5).
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps < 0 || eps >= 0.5 {
			o.err = fmt.Errorf("%w: epsilon %g outside [0,0.5)", ErrOptionViolation, eps)
			return
		}
		o.Epsilon = eps
	}
}

// WithPrefetch toggles speculative evaluation of upcoming midpoints.
func WithPrefetch(on bool) Option {
	return func(o *Options) { o.Prefetch = on }
}

// WithOnStep registers a progress callback.
func WithOnStep(fn func(Step)) Option {
	return func(o *Options) { o.OnStep = fn }
}

// Result is the record of one search run.
type Result struct {
	// RunID identifies the run in reports.
	RunID string

	Matrix *instance.Matrix

	// Greedy is the baseline schedule; its makespan is t0.
	Greedy greedy.Schedule

	// Lower and Upper are the final search bounds; Upper is the smallest
	// accepted deadline.
	Lower, Upper int64

	// Best is the decision that produced the returned schedule, or nil
	// when every accepted decision was worse than the greedy schedule.
	Best *decision.Solution

	// Assignment, Loads and Makespan describe the returned schedule.
	Assignment []int
	Loads      []int64
	Makespan   int64

	// Calls counts visited decide calls; Evaluated also counts
	// speculative ones.
	Calls     int
	Evaluated int

	Steps   []Step
	Elapsed time.Duration
}

// Deadline returns the deadline the returned schedule was accepted at:
// Best.D, or t0 for the greedy schedule.
func (r *Result) Deadline() int64 {
	if r.Best != nil {
		return r.Best.D
	}
	return r.Greedy.Makespan
}
