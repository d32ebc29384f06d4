package solver

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/golang/glog"
)

// objTol absorbs floating-point noise when comparing objective values.
const objTol = 1e-7

// branchAndBound searches for an integral optimum of md depth-first.
// Each node is an LP relaxation with some jobs pinned to a machine and
// some pairs removed. The most fractional x_ij is branched on, the
// pinned child first. Nodes whose relaxation cannot beat the incumbent
// by a whole time unit are pruned, since integral loads are integers.
func branchAndBound(ctx context.Context, md *Model, o Options) (*Result, error) {
	var (
		best  *Result
		stack = []*Model{md}
		nodes int
	)

	for len(stack) > 0 {
		if nodes >= o.NodeLimit {
			return nil, fmt.Errorf("%w: node limit %d reached", ErrTimeout, o.NodeLimit)
		}
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nodes++

		res, err := relax(ctx, node, o, false)
		if errors.Is(err, ErrInfeasible) {
			continue
		}
		if err != nil {
			return nil, err
		}

		// bound: integral objectives are whole numbers
		if best != nil && math.Ceil(res.Objective-objTol) >= best.Objective-objTol {
			continue
		}

		k := fractional(res.Assignment, o.Epsilon)
		if k < 0 {
			res.Objective = math.Round(res.Objective)
			best = res
			glog.V(2).Infof("solver: incumbent Cmax=%g after %d nodes", best.Objective, nodes)
			continue
		}

		e := res.Assignment[k]
		pr := Pair{Machine: e.Machine, Job: e.Job}
		stack = append(stack, node.branch(pr, false), node.branch(pr, true))
	}

	if best == nil {
		return nil, ErrInfeasible
	}
	best.Nodes = nodes

	return best, nil
}
