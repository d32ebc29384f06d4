package bipartite

import "sort"

// Components partitions the live nodes into connected components.
// Traversal is an iterative DFS from the lowest unvisited id, so the
// result is deterministic: components are ordered by their smallest
// node (machines before jobs) and each component lists machines first.
// Complexity: O(V log V + E).
func (g *Graph) Components() []Component {
	seen := make([]bool, len(g.adj))
	var comps []Component

	for start, ok := range g.live {
		if !ok || seen[start] {
			continue
		}

		// 1) Collect the component with an explicit stack.
		var ids []int
		degSum := 0
		stack := []int{start}
		seen[start] = true
		for len(stack) > 0 {
			a := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			ids = append(ids, a)
			degSum += len(g.adj[a])
			for b := range g.adj[a] {
				if !seen[b] {
					seen[b] = true
					stack = append(stack, b)
				}
			}
		}

		// 2) Order nodes by id: machines first, then jobs.
		sort.Ints(ids)
		nodes := make([]Node, len(ids))
		for k, a := range ids {
			nodes[k] = g.node(a)
		}

		// 3) Every edge was counted from both endpoints.
		comps = append(comps, Component{Nodes: nodes, Edges: degSum / 2})
	}

	return comps
}

// IsPseudoforest reports whether every component has edges ≤ nodes.
// An isolated node (one node, no edge) trivially qualifies.
func (g *Graph) IsPseudoforest() bool {
	return g.CheckPseudoforest() == nil
}

// CheckPseudoforest returns a *PseudoforestError for the first component
// with more edges than nodes, or nil.
func (g *Graph) CheckPseudoforest() error {
	for _, c := range g.Components() {
		if !c.IsPseudotree() {
			return &PseudoforestError{Component: c}
		}
	}

	return nil
}
