package decision

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang/glog"

	"github.com/katalvlaran/lstsched/bipartite"
	"github.com/katalvlaran/lstsched/instance"
	"github.com/katalvlaran/lstsched/matching"
	"github.com/katalvlaran/lstsched/solver"
)

// Decide runs the two-relaxed decision procedure for deadline d.
func Decide(ctx context.Context, p *instance.Matrix, d int64, opts ...Option) (*Solution, error) {
	o, err := apply(opts)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("decision: %w: nil matrix", instance.ErrInvalidMatrix)
	}

	// 1) LP with uniform deadlines and threshold d.
	md, err := solver.Uniform(p, d, solver.Continuous)
	if err != nil {
		return nil, fmt.Errorf("decision: build model: %w", err)
	}
	res, err := solver.Solve(ctx, md, o.solverOptions()...)
	switch {
	case errors.Is(err, solver.ErrInfeasible):
		glog.V(1).Infof("decision: d=%d: LP infeasible", d)
		return nil, &Failure{D: d, Cause: err}
	case errors.Is(err, solver.ErrTimeout):
		glog.Warningf("decision: d=%d: LP solve timed out, treating as infeasible", d)
		return nil, &Failure{D: d, Cause: err}
	case errors.Is(err, solver.ErrSolver):
		glog.Warningf("decision: d=%d: no optimal LP solution: %v", d, err)
		return nil, &Failure{D: d, Cause: err}
	case err != nil:
		return nil, fmt.Errorf("decision: solve at d=%d: %w", d, err)
	}

	// 2) Support graph of the fractional solution.
	support := res.Assignment.Support(o.Epsilon)
	edges := make([]bipartite.Edge, len(support))
	for k, e := range support {
		edges[k] = bipartite.Edge{Machine: e.Machine, Job: e.Job}
	}
	g, err := bipartite.Build(edges, p.Machines(), p.Jobs())
	if err != nil {
		return nil, fmt.Errorf("decision: support graph: %w", err)
	}
	glog.V(2).Infof("decision: d=%d: Cmax*=%.4f, support %d nodes %d edges, %d fractional",
		d, res.Objective, g.NodeCount(), g.EdgeCount(), len(support)-integralCount(support, o.Epsilon))

	// 3) Pseudoforest precondition.
	if err = g.CheckPseudoforest(); err != nil {
		glog.Warningf("decision: d=%d: support is not a pseudoforest: %v", d, err)
		return nil, &Failure{D: d, Cause: fmt.Errorf("%w: %w", matching.ErrRoundingPrecondition, err)}
	}

	// 4) Round.
	mr, err := matching.MatchAll(g)
	switch {
	case errors.Is(err, matching.ErrInternalInconsistency):
		glog.Errorf("decision: d=%d: %v", d, err)
		return nil, fmt.Errorf("decision: round at d=%d: %w", d, err)
	case errors.Is(err, matching.ErrRoundingPrecondition):
		glog.Warningf("decision: d=%d: rounding precondition: %v", d, err)
		return nil, &Failure{D: d, Cause: err}
	case err != nil:
		return nil, fmt.Errorf("decision: round at d=%d: %w", d, err)
	}

	// 5) Loads and the 2d bound.
	loads := p.Load(mr.Assignment)
	var mk int64
	for _, l := range loads {
		if l > mk {
			mk = l
		}
	}
	if exceedsDouble(mk, d) {
		glog.Warningf("decision: d=%d: rounded makespan %d exceeds 2·%d", d, mk, d)
		return nil, &Failure{D: d, Cause: fmt.Errorf("%w: %d > 2·%d", ErrBoundExceeded, mk, d)}
	}
	glog.V(2).Infof("decision: d=%d: %d forced, %d matched, makespan %d",
		d, len(mr.Forced), len(mr.Matched), mk)

	return &Solution{
		D:          d,
		LPMakespan: res.Objective,
		Fractional: res.Assignment,
		Graph:      g,
		Matching:   mr,
		Assignment: mr.Assignment,
		Loads:      loads,
		Makespan:   mk,
	}, nil
}

// exceedsDouble reports mk > 2d for non-negative mk and d without
// computing 2d, which overflows for d near the int64 limit.
func exceedsDouble(mk, d int64) bool { return mk-d > d }

func integralCount(es []solver.Entry, eps float64) int {
	k := 0
	for _, e := range es {
		if e.Value >= 1-eps {
			k++
		}
	}
	return k
}
