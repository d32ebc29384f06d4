package search

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/golang/glog"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lstsched/decision"
	"github.com/katalvlaran/lstsched/greedy"
	"github.com/katalvlaran/lstsched/instance"
)

// prefetchLimit is the number of deadlines evaluated at once.
const prefetchLimit = 3

// outcome is a cached Decide result.
type outcome struct {
	sol *decision.Solution
	err error
}

// runner evaluates deadlines, optionally ahead of need.
type runner struct {
	ctx  context.Context
	p    *instance.Matrix
	opts []decision.Option

	mu        sync.Mutex
	cache     map[int64]outcome
	evaluated int
}

func (r *runner) decide(d int64) outcome {
	sol, err := decision.Decide(r.ctx, r.p, d, r.opts...)
	r.mu.Lock()
	r.cache[d] = outcome{sol: sol, err: err}
	r.evaluated++
	r.mu.Unlock()
	return outcome{sol: sol, err: err}
}

func (r *runner) cached(d int64) (outcome, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out, ok := r.cache[d]
	return out, ok
}

// get returns the outcome at d. With prefetch, the midpoints that follow
// either answer at d are evaluated concurrently with d itself.
func (r *runner) get(lower, upper, d int64, prefetch bool) outcome {
	if out, ok := r.cached(d); ok {
		return out
	}
	if !prefetch {
		return r.decide(d)
	}

	want := []int64{d}
	if lower < d {
		want = append(want, lower+(d-lower)/2)
	}
	if d+1 < upper {
		want = append(want, d+1+(upper-d-1)/2)
	}

	var g errgroup.Group
	g.SetLimit(prefetchLimit)
	for _, x := range want {
		if _, ok := r.cached(x); ok {
			continue
		}
		g.Go(func() error {
			r.decide(x)
			return nil
		})
	}
	_ = g.Wait()
	glog.V(2).Infof("search: prefetched %v", want)

	out, _ := r.cached(d)
	return out
}

// Run searches for the smallest accepted deadline and returns the best
// schedule found.
func Run(ctx context.Context, p *instance.Matrix, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if p == nil {
		return nil, fmt.Errorf("search: %w: nil matrix", instance.ErrInvalidMatrix)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()

	// 1) Greedy bound and incumbent.
	base := greedy.List(p)
	res := &Result{
		RunID:      uuid.NewString(),
		Matrix:     p,
		Greedy:     base,
		Lower:      base.Makespan / int64(p.Machines()),
		Upper:      base.Makespan,
		Assignment: base.Assignment,
		Loads:      base.Loads,
		Makespan:   base.Makespan,
	}
	glog.V(1).Infof("search: run %s: %dx%d, t0=%d, bounds [%d, %d]",
		res.RunID, p.Machines(), p.Jobs(), base.Makespan, res.Lower, res.Upper)

	r := &runner{
		ctx:   ctx,
		p:     p,
		opts:  []decision.Option{decision.WithTimeout(o.SolveTimeout), decision.WithEpsilon(o.Epsilon)},
		cache: make(map[int64]outcome),
	}
	accepted := false

	// visit consumes the outcome at d and reports whether it was a schedule.
	visit := func(out outcome, d int64) (bool, error) {
		res.Calls++
		if err := ctx.Err(); err != nil {
			return false, fmt.Errorf("search: %w", err)
		}
		if out.err != nil && !decision.IsFailure(out.err) {
			return false, out.err
		}
		ok := out.err == nil
		if ok {
			accepted = true
			// ties replace the incumbent so Best tracks the smallest d
			// that reached the returned makespan
			if out.sol.Makespan <= res.Makespan {
				res.Best = out.sol
				res.Assignment, res.Loads, res.Makespan = out.sol.Assignment, out.sol.Loads, out.sol.Makespan
			}
		}
		return ok, nil
	}
	step := func(d int64, ok bool) {
		s := Step{Lower: res.Lower, Upper: res.Upper, D: d, OK: ok}
		res.Steps = append(res.Steps, s)
		glog.V(1).Infof("search: d=%d ok=%t -> [%d, %d], best %d", d, ok, res.Lower, res.Upper, res.Makespan)
		if o.OnStep != nil {
			o.OnStep(s)
		}
	}

	// 2) Bisection.
	for res.Lower < res.Upper {
		d := res.Lower + (res.Upper-res.Lower)/2
		ok, err := visit(r.get(res.Lower, res.Upper, d, o.Prefetch), d)
		if err != nil {
			return nil, err
		}
		if ok {
			res.Upper = d
		} else {
			res.Lower = d + 1
		}
		step(d, ok)
	}

	// 3) Final bound check when nothing was accepted.
	if !accepted {
		d := res.Upper
		ok, err := visit(r.get(res.Lower, res.Upper, d, false), d)
		if err != nil {
			return nil, err
		}
		step(d, ok)
		if !ok {
			glog.Warningf("search: run %s: final bound %d rejected", res.RunID, d)
			return nil, fmt.Errorf("%w: d=%d", ErrSearchExhausted, d)
		}
	}

	res.Evaluated = r.evaluated
	res.Elapsed = time.Since(start)
	glog.V(1).Infof("search: run %s: deadline %d, makespan %d, %d calls in %v",
		res.RunID, res.Upper, res.Makespan, res.Calls, res.Elapsed)

	return res, nil
}
