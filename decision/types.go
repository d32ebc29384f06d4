package decision

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/lstsched/bipartite"
	"github.com/katalvlaran/lstsched/matching"
	"github.com/katalvlaran/lstsched/solver"
)

var (
	// ErrNo marks a "no" answer of the decision procedure.
	ErrNo = errors.New("decision: no")

	// ErrBoundExceeded indicates a rounded makespan above 2d.
	ErrBoundExceeded = errors.New("decision: rounded makespan exceeds 2d")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("decision: invalid option supplied")
)

// Failure is a "no" answer at deadline D.
type Failure struct {
	D     int64
	Cause error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("decision: no at d=%d: %v", f.D, f.Cause)
}

// Unwrap exposes both ErrNo and the cause.
func (f *Failure) Unwrap() []error { return []error{ErrNo, f.Cause} }

// IsFailure reports whether err is a "no" answer rather than a fatal error.
func IsFailure(err error) bool {
	return errors.Is(err, ErrNo)
}

// Solution is a successful decision at deadline D.
type Solution struct {
	// D is the deadline the decision was made for.
	D int64

	// LPMakespan is the optimal Cmax of the LP relaxation.
	LPMakespan float64

	// Fractional is the LP solution the rounding started from.
	Fractional solver.Assignment

	// Graph is the support graph G of Fractional.
	Graph *bipartite.Graph

	// Matching holds the forced pairs, the matched pairs and G′.
	Matching *matching.Result

	// Assignment[j] is the machine of job j.
	Assignment []int

	// Loads[i] is the processing time placed on machine i.
	Loads []int64

	// Makespan is max(Loads); at most 2·D.
	Makespan int64
}

// Optimum is the outcome of Exact and IntegralAt.
type Optimum struct {
	Assignment []int
	Loads      []int64
	Makespan   int64
	// Nodes is the number of LP relaxations branch and bound solved.
	Nodes int
	// Elapsed is the wall-clock time of the solve.
	Elapsed time.Duration
}

// Option configures Decide and Exact.
type Option func(*Options)

// Options holds per-call tuning passed through to the solver.
type Options struct {
	// Timeout bounds one LP solve attempt. Zero disables it.
	Timeout time.Duration

	// Epsilon is both the snapping tolerance and the support threshold.
	Epsilon float64

	// NodeLimit caps branch and bound in Exact.
	NodeLimit int

	err error
}

// DefaultOptions mirrors solver.DefaultOptions.
func DefaultOptions() Options {
	return Options{Timeout: solver.DefaultTimeout, Epsilon: solver.DefaultEpsilon, NodeLimit: solver.DefaultNodeLimit}
}

// WithTimeout sets the per-solve budget. d < 0 is invalid.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: negative timeout %v", ErrOptionViolation, d)
			return
		}
		o.Timeout = d
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

// WithNodeLimit caps the branch-and-bound nodes of Exact.
func WithNodeLimit(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: node limit %d", ErrOptionViolation, n)
			return
		}
		o.NodeLimit = n
	}
}

func (o Options) solverOptions() []solver.Option {
	return []solver.Option{
		solver.WithTimeout(o.Timeout),
		solver.WithEpsilon(o.Epsilon),
		solver.WithNodeLimit(o.NodeLimit),
	}
}

func apply(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}
