package decision

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang/glog"

	"github.com/katalvlaran/lstsched/instance"
	"github.com/katalvlaran/lstsched/solver"
)

// Exact computes an optimal schedule with the binary model. Deadlines are
// the row sums and every pair is eligible, so only Cmax constrains it.
//
// Exhausting the node budget or ctx returns an error wrapping
// solver.ErrTimeout. Intended for small instances.
func Exact(ctx context.Context, p *instance.Matrix, opts ...Option) (*Optimum, error) {
	o, err := apply(opts)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("decision: %w: nil matrix", instance.ErrInvalidMatrix)
	}

	deadlines := make([]int64, p.Machines())
	for i := range deadlines {
		deadlines[i] = p.RowSum(i)
	}
	md, err := solver.Build(p, deadlines, p.Max(), solver.Binary)
	if err != nil {
		return nil, fmt.Errorf("decision: exact model: %w", err)
	}
	opt, err := integral(ctx, p, md, o)
	if err != nil {
		return nil, fmt.Errorf("decision: exact: %w", err)
	}
	glog.V(1).Infof("decision: exact optimum %d after %d nodes in %v", opt.Makespan, opt.Nodes, opt.Elapsed)

	return opt, nil
}

// IntegralAt solves IP(P, d, t) with every deadline and the threshold
// equal to d: the integral counterpart of the LP that Decide rounds. Its
// makespan is the best any schedule restricted to p_ij ≤ d can reach
// under deadline d, a reference point for the rounded result rather than
// the optimum.
//
// An integrally infeasible d is a *Failure wrapping solver.ErrInfeasible.
// Exhausting the node budget or ctx returns an error wrapping
// solver.ErrTimeout.
func IntegralAt(ctx context.Context, p *instance.Matrix, d int64, opts ...Option) (*Optimum, error) {
	o, err := apply(opts)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("decision: %w: nil matrix", instance.ErrInvalidMatrix)
	}

	md, err := solver.Uniform(p, d, solver.Binary)
	if err != nil {
		return nil, fmt.Errorf("decision: build model: %w", err)
	}
	opt, err := integral(ctx, p, md, o)
	switch {
	case errors.Is(err, solver.ErrInfeasible):
		glog.V(1).Infof("decision: d=%d: IP infeasible", d)
		return nil, &Failure{D: d, Cause: err}
	case err != nil:
		return nil, fmt.Errorf("decision: IP at d=%d: %w", d, err)
	}
	glog.V(1).Infof("decision: d=%d: IP makespan %d after %d nodes in %v", d, opt.Makespan, opt.Nodes, opt.Elapsed)

	return opt, nil
}

// integral runs branch and bound on md and decodes the binary solution.
func integral(ctx context.Context, p *instance.Matrix, md *solver.Model, o Options) (*Optimum, error) {
	start := time.Now()
	res, err := solver.Solve(ctx, md, o.solverOptions()...)
	if err != nil {
		return nil, err
	}

	assign := make([]int, p.Jobs())
	for _, e := range res.Assignment {
		if e.Value > 0.5 {
			assign[e.Job] = e.Machine
		}
	}

	return &Optimum{
		Assignment: assign,
		Loads:      p.Load(assign),
		Makespan:   p.Makespan(assign),
		Nodes:      res.Nodes,
		Elapsed:    time.Since(start),
	}, nil
}
