// Package bipartite implements the machine/job support graph G(x) of a
// fractional assignment and the structural checks the rounding step
// relies on.
//
// What:
//
//   - Node is a tagged value {Machine, i} or {Job, j}; no string labels.
//   - Graph stores index-based adjacency: machines occupy ids [0, m),
//     jobs occupy ids [m, m+n). Nodes can be removed; removed nodes are
//     no longer live and drop all their edges.
//   - Components partitions the live nodes with an iterative DFS.
//   - IsPseudoforest / CheckPseudoforest verify that every connected
//     component has at most as many edges as nodes.
//
// Why:
//
//	An extreme-point solution of the assignment LP has a pseudoforest
//	support graph. Every tree component can be matched from the job side
//	and every unicyclic component becomes a tree after dropping one cycle
//	edge. A component with more edges than nodes means the solution was
//	not a vertex and the rounding cannot proceed for this deadline.
//
// Complexity:
//
//   - Build:        O(V + E)
//   - Components:   O(V log V + E) (nodes are sorted per component)
//   - Pseudoforest: O(V log V + E)
//   - Memory:       O(V + E)
//
// Errors:
//
//	ErrEdgeOutOfRange  - edge endpoint outside the m×n index space.
//	ErrDuplicateEdge   - the same (machine, job) pair was added twice.
//	ErrNodeNotFound    - operation on a removed or unknown node.
//	ErrNotPseudoforest - a component has more edges than nodes.
package bipartite
