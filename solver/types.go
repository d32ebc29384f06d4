package solver

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// Sentinel errors for model construction and solving.
var (
	// ErrInfeasible indicates that no assignment satisfies the model.
	ErrInfeasible = errors.New("solver: infeasible")

	// ErrTimeout indicates the solve budget (time or nodes) was exhausted.
	ErrTimeout = errors.New("solver: budget exhausted")

	// ErrSolver indicates an unexpected failure of the numeric backend.
	ErrSolver = errors.New("solver: numeric failure")

	// ErrBadDeadlines indicates a deadline vector of the wrong length or
	// negative deadlines / threshold.
	ErrBadDeadlines = errors.New("solver: bad deadlines")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solver: invalid option supplied")
)

// Mode selects the domain of the x_ij variables.
type Mode int

const (
	// Continuous relaxes x_ij to [0,1].
	Continuous Mode = iota
	// Binary restricts x_ij to {0,1}.
	Binary
)

func (m Mode) String() string {
	switch m {
	case Continuous:
		return "continuous"
	case Binary:
		return "binary"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Default tuning values.
const (
	DefaultTimeout   = 10 * time.Second
	DefaultEpsilon   = 1e-9
	DefaultNodeLimit = 20000
)

// Option configures Solve via functional arguments.
type Option func(*Options)

// Options holds solver tuning.
type Options struct {
	// Timeout bounds one simplex attempt in Continuous mode and the whole
	// search in Binary mode. Zero disables it.
	Timeout time.Duration

	// Epsilon snaps values within Epsilon of 0 or 1 to exactly 0 or 1.
	Epsilon float64

	// NodeLimit caps the number of LP relaxations explored in Binary mode.
	NodeLimit int

	err error
}

// DefaultOptions returns DefaultTimeout, DefaultEpsilon and DefaultNodeLimit.
func DefaultOptions() Options {
	return Options{Timeout: DefaultTimeout, Epsilon: DefaultEpsilon, NodeLimit: DefaultNodeLimit}
}

// WithTimeout sets a per-solve wall-clock budget. d < 0 is invalid.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: negative timeout %v", ErrOptionViolation, d)
			return
		}
		o.Timeout = d
	}
}

// WithEpsilon sets the snapping tolerance. eps must lie in [0, 0.5).
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps < 0 || eps >= 0.5 {
			o.err = fmt.Errorf("%w: epsilon %g outside [0,0.5)", ErrOptionViolation, eps)
			return
		}
		o.Epsilon = eps
	}
}

// WithNodeLimit caps branch-and-bound nodes. n must be positive.
func WithNodeLimit(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: node limit %d", ErrOptionViolation, n)
			return
		}
		o.NodeLimit = n
	}
}

// Pair identifies the variable x_ij.
type Pair struct {
	Machine, Job int
}

// Entry is the value of one x_ij in a solution.
type Entry struct {
	Machine int
	Job     int
	Value   float64
}

// Assignment is the value of every modeled x_ij, sorted by (Machine, Job).
type Assignment []Entry

// Value returns x_ij, or 0 when the pair was not modeled.
func (a Assignment) Value(i, j int) float64 {
	k := sort.Search(len(a), func(k int) bool {
		return a[k].Machine > i || (a[k].Machine == i && a[k].Job >= j)
	})
	if k < len(a) && a[k].Machine == i && a[k].Job == j {
		return a[k].Value
	}
	return 0
}

// Support returns the entries with Value > eps, in the same order.
func (a Assignment) Support(eps float64) []Entry {
	out := make([]Entry, 0, len(a))
	for _, e := range a {
		if e.Value > eps {
			out = append(out, e)
		}
	}
	return out
}

// Integral reports whether every value is 0 or 1 within eps.
func (a Assignment) Integral(eps float64) bool {
	for _, e := range a {
		if e.Value > eps && e.Value < 1-eps {
			return false
		}
	}
	return true
}

// Result is a solved model.
type Result struct {
	// Objective is the optimal Cmax.
	Objective float64

	// Assignment holds x_ij for every eligible pair.
	Assignment Assignment

	// Nodes is the number of LP relaxations solved (1 in Continuous mode).
	Nodes int

	// Perturbed is set when the first attempt ran out of budget or failed
	// numerically and the answer came from the perturbed retry.
	Perturbed bool
}
