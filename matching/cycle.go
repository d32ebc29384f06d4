package matching

import (
	"fmt"

	"github.com/katalvlaran/lstsched/bipartite"
)

// Cycle returns the nodes of the unique cycle of a unicyclic component,
// found by repeatedly peeling leaves. The result is sorted machines first.
//
// Returns *CycleError if nothing survives peeling or the survivors do not
// form a single even cycle.
// Complexity: O(V + E).
func Cycle(g *bipartite.Graph, comp bipartite.Component) ([]bipartite.Node, error) {
	deg := make(map[bipartite.Node]int, comp.Size())
	var leaves []bipartite.Node
	for _, v := range comp.Nodes {
		d := g.Degree(v)
		deg[v] = d
		if d <= 1 {
			leaves = append(leaves, v)
		}
	}

	// 1) Peel: a removed leaf lowers the degree of its neighbors.
	removed := make(map[bipartite.Node]bool, comp.Size())
	for len(leaves) > 0 {
		v := leaves[len(leaves)-1]
		leaves = leaves[:len(leaves)-1]
		if removed[v] {
			continue
		}
		removed[v] = true
		for _, w := range g.Neighbors(v) {
			if removed[w] {
				continue
			}
			deg[w]--
			if deg[w] == 1 {
				leaves = append(leaves, w)
			}
		}
	}

	// 2) Survivors form the cycle; each must keep exactly two cycle edges.
	var cycle []bipartite.Node
	for _, v := range comp.Nodes {
		if !removed[v] {
			cycle = append(cycle, v)
		}
	}
	if len(cycle) == 0 {
		return nil, &CycleError{Component: comp}
	}
	for _, v := range cycle {
		if deg[v] != 2 {
			return nil, fmt.Errorf("%w: %s has %d cycle edges", ErrRoundingPrecondition, v, deg[v])
		}
	}
	if len(cycle)%2 != 0 {
		return nil, &CycleError{Length: len(cycle), Component: comp}
	}

	return cycle, nil
}

// MatchCycle matches every job of a unicyclic component. It removes the
// cycle edge between the lowest cycle job and its lowest cycle machine,
// then matches the resulting tree rooted at that job. g is not modified.
func MatchCycle(g *bipartite.Graph, comp bipartite.Component) ([]Pair, error) {
	if !comp.IsUnicyclic() {
		return nil, fmt.Errorf("%w: component of %d nodes has %d edges, want one cycle",
			ErrRoundingPrecondition, comp.Size(), comp.Edges)
	}
	cycle, err := Cycle(g, comp)
	if err != nil {
		return nil, err
	}

	// 1) Lowest job on the cycle and its lowest machine on the cycle.
	onCycle := make(map[bipartite.Node]bool, len(cycle))
	for _, v := range cycle {
		onCycle[v] = true
	}
	var job bipartite.Node
	found := false
	for _, v := range cycle {
		if v.IsJob() {
			job, found = v, true
			break
		}
	}
	if !found {
		return nil, &CycleError{Length: len(cycle), Component: comp}
	}
	var machine bipartite.Node
	for _, w := range g.Neighbors(job) {
		if onCycle[w] {
			machine = w
			break
		}
	}

	// 2) Break the cycle on a private copy.
	t := g.Clone()
	t.RemoveEdge(machine.Index, job.Index)
	tree := bipartite.Component{Nodes: comp.Nodes, Edges: comp.Edges - 1}

	// 3) The job lost one edge, so root there: all its neighbors are children.
	return matchTree(t, tree, job)
}
