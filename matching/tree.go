package matching

import (
	"fmt"

	"github.com/katalvlaran/lstsched/bipartite"
)

// frame is one pending node of the explicit DFS stack.
type frame struct {
	node   bipartite.Node
	parent bipartite.Node
	root   bool
}

// MatchTree matches every job of the tree component comp of g to a
// distinct machine. The tree is rooted at its lowest job.
//
// Returns ErrRoundingPrecondition if comp is not a tree and
// ErrInternalInconsistency if some job finds no free child machine.
// Complexity: O(V + E log Δ).
func MatchTree(g *bipartite.Graph, comp bipartite.Component) ([]Pair, error) {
	if !comp.IsTree() {
		return nil, fmt.Errorf("%w: component of %d nodes has %d edges, want a tree",
			ErrRoundingPrecondition, comp.Size(), comp.Edges)
	}
	jobs := comp.Jobs()
	if len(jobs) == 0 {
		return nil, nil
	}

	return matchTree(g, comp, bipartite.Job(jobs[0]))
}

// matchTree walks the tree containing root with an explicit stack. Each
// job picks its lowest-index unmatched neighbor other than its parent;
// every other neighbor is pushed so that lower indices are visited first.
func matchTree(g *bipartite.Graph, comp bipartite.Component, root bipartite.Node) ([]Pair, error) {
	taken := make(map[int]bool)
	visited := make(map[bipartite.Node]bool, comp.Size())
	pairs := make([]Pair, 0, len(comp.Jobs()))

	stack := []frame{{node: root, root: true}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// 1) A revisit means the component was not a tree after all.
		if visited[f.node] {
			return nil, inconsistent(f.node, "visited twice, component is not a tree")
		}
		visited[f.node] = true

		nbrs := g.Neighbors(f.node)

		// 2) Jobs take one child machine.
		if f.node.IsJob() {
			matched := false
			for _, w := range nbrs {
				if (!f.root && w == f.parent) || taken[w.Index] {
					continue
				}
				taken[w.Index] = true
				pairs = append(pairs, Pair{Machine: w.Index, Job: f.node.Index})
				matched = true
				break
			}
			if !matched {
				return nil, inconsistent(f.node, "no free child machine")
			}
		}

		// 3) Descend into children, lowest index on top of the stack.
		for k := len(nbrs) - 1; k >= 0; k-- {
			w := nbrs[k]
			if !f.root && w == f.parent {
				continue
			}
			stack = append(stack, frame{node: w, parent: f.node})
		}
	}

	// 4) Postcondition: every job of the component is covered.
	if len(visited) != comp.Size() {
		return nil, inconsistent(root, "walk reached %d of %d nodes", len(visited), comp.Size())
	}

	return pairs, nil
}
