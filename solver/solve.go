package solver

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/golang/glog"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

const (
	// simplexTol is the tolerance handed to lp.Simplex.
	simplexTol = 1e-10
	// retrySeed orders the shuffled columns of the perturbed retry.
	retrySeed = 1
)

// Solve optimizes md. Continuous models get one simplex solve, retried
// once on a perturbed form when the first attempt exhausts its budget or
// fails numerically. Binary models run branch and bound over LP
// relaxations under a single budget.
//
// Returns ErrInfeasible when no assignment meets the deadlines, ErrTimeout
// when ctx or the configured budget expires, ErrSolver on numeric failure,
// ErrOptionViolation for bad options.
func Solve(ctx context.Context, md *Model, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	if md.mode == Binary {
		ctx, cancel := withBudget(ctx, o.Timeout)
		defer cancel()
		return branchAndBound(ctx, md, o)
	}

	res, err := attempt(ctx, md, o, false)
	if (errors.Is(err, ErrTimeout) || errors.Is(err, ErrSolver)) && ctx.Err() == nil {
		glog.V(1).Infof("solver: %v, retrying on a perturbed form", err)
		res, err = attempt(ctx, md, o, true)
	}
	return res, err
}

func withBudget(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d > 0 {
		return context.WithTimeout(ctx, d)
	}
	return context.WithCancel(ctx)
}

// attempt runs relax under a fresh budget.
func attempt(ctx context.Context, md *Model, o Options, perturb bool) (*Result, error) {
	ctx, cancel := withBudget(ctx, o.Timeout)
	defer cancel()
	return relax(ctx, md, o, perturb)
}

// relax solves the LP relaxation of md.
func relax(ctx context.Context, md *Model, o Options, perturb bool) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	if md.uncovered >= 0 {
		glog.V(2).Infof("solver: job %d has no machine with p_ij <= %d", md.uncovered, md.threshold)
		return nil, ErrInfeasible
	}

	form := md.standardForm()
	if perturb {
		form = md.perturbedForm(retrySeed)
	}
	f, z, err := twoPhase(ctx, form)
	switch {
	case errors.Is(err, lp.ErrInfeasible):
		return nil, ErrInfeasible
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrSolver, err)
	}
	z = form.unpermute(z)

	res := &Result{
		Objective:  f,
		Assignment: make(Assignment, len(md.vars)),
		Nodes:      1,
		Perturbed:  perturb,
	}
	for k, pr := range md.vars {
		res.Assignment[k] = Entry{Machine: pr.Machine, Job: pr.Job, Value: snap(z[k], o.Epsilon)}
	}

	return res, nil
}

// snap clamps v to [0,1] and rounds values within eps of 0 or 1.
func snap(v, eps float64) float64 {
	switch {
	case v <= eps:
		return 0
	case v >= 1-eps:
		return 1
	default:
		return v
	}
}

// fractional returns the variable whose value is closest to 1/2, or -1 if
// the assignment is integral within eps.
func fractional(a Assignment, eps float64) int {
	best, bestDist := -1, math.Inf(1)
	for k, e := range a {
		if e.Value <= eps || e.Value >= 1-eps {
			continue
		}
		if d := math.Abs(e.Value - 0.5); d < bestDist {
			best, bestDist = k, d
		}
	}
	return best
}
