package bipartite

import (
	"fmt"
	"sort"
)

// Graph is a mutable bipartite graph over m machines and n jobs.
// It is not safe for concurrent mutation; each rounding attempt owns its
// own Graph.
type Graph struct {
	m, n  int
	adj   []map[int]struct{} // id → neighbor ids
	live  []bool
	alive int // live node count
	edges int
}

// New returns a graph with m machine and n job nodes and no edges.
func New(m, n int) *Graph {
	g := &Graph{
		m:     m,
		n:     n,
		adj:   make([]map[int]struct{}, m+n),
		live:  make([]bool, m+n),
		alive: m + n,
	}
	for id := range g.adj {
		g.adj[id] = make(map[int]struct{})
		g.live[id] = true
	}

	return g
}

// Build creates the graph with one edge per supported (machine, job) pair.
func Build(support []Edge, m, n int) (*Graph, error) {
	g := New(m, n)
	for _, e := range support {
		if err := g.AddEdge(e.Machine, e.Job); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// id maps a node to its adjacency slot, or -1 when out of range.
func (g *Graph) id(v Node) int {
	switch {
	case v.Kind == MachineNode && v.Index >= 0 && v.Index < g.m:
		return v.Index
	case v.Kind == JobNode && v.Index >= 0 && v.Index < g.n:
		return g.m + v.Index
	default:
		return -1
	}
}

func (g *Graph) node(id int) Node {
	if id < g.m {
		return Machine(id)
	}
	return Job(id - g.m)
}

// AddEdge inserts the undirected edge machine i – job j.
func (g *Graph) AddEdge(i, j int) error {
	a, b := g.id(Machine(i)), g.id(Job(j))
	if a < 0 || b < 0 {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrEdgeOutOfRange, i, j, g.m, g.n)
	}
	if !g.live[a] || !g.live[b] {
		return fmt.Errorf("%w: (%d,%d)", ErrNodeNotFound, i, j)
	}
	if _, ok := g.adj[a][b]; ok {
		return fmt.Errorf("%w: (%d,%d)", ErrDuplicateEdge, i, j)
	}
	g.adj[a][b] = struct{}{}
	g.adj[b][a] = struct{}{}
	g.edges++

	return nil
}

// RemoveEdge deletes machine i – job j if present.
func (g *Graph) RemoveEdge(i, j int) {
	a, b := g.id(Machine(i)), g.id(Job(j))
	if a < 0 || b < 0 {
		return
	}
	if _, ok := g.adj[a][b]; !ok {
		return
	}
	delete(g.adj[a], b)
	delete(g.adj[b], a)
	g.edges--
}

// HasEdge reports whether machine i – job j is an edge.
func (g *Graph) HasEdge(i, j int) bool {
	a, b := g.id(Machine(i)), g.id(Job(j))
	if a < 0 || b < 0 {
		return false
	}
	_, ok := g.adj[a][b]
	return ok
}

// RemoveNode deletes v and all its incident edges.
func (g *Graph) RemoveNode(v Node) error {
	a := g.id(v)
	if a < 0 || !g.live[a] {
		return fmt.Errorf("%w: %s", ErrNodeNotFound, v)
	}
	for b := range g.adj[a] {
		delete(g.adj[b], a)
		g.edges--
	}
	g.adj[a] = make(map[int]struct{})
	g.live[a] = false
	g.alive--

	return nil
}

// HasNode reports whether v exists and has not been removed.
func (g *Graph) HasNode(v Node) bool {
	a := g.id(v)
	return a >= 0 && g.live[a]
}

// Degree returns the number of edges at v (0 for unknown nodes).
func (g *Graph) Degree(v Node) int {
	a := g.id(v)
	if a < 0 {
		return 0
	}
	return len(g.adj[a])
}

// Neighbors returns v's neighbors ordered by index.
func (g *Graph) Neighbors(v Node) []Node {
	a := g.id(v)
	if a < 0 {
		return nil
	}
	ids := g.sortedAdj(a)
	out := make([]Node, len(ids))
	for k, b := range ids {
		out[k] = g.node(b)
	}

	return out
}

func (g *Graph) sortedAdj(a int) []int {
	ids := make([]int, 0, len(g.adj[a]))
	for b := range g.adj[a] {
		ids = append(ids, b)
	}
	sort.Ints(ids)

	return ids
}

// Nodes returns the live nodes, machines first, each side by index.
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, g.alive)
	for id, ok := range g.live {
		if ok {
			out = append(out, g.node(id))
		}
	}

	return out
}

// Edges returns every edge sorted by (machine, job).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	for i := 0; i < g.m; i++ {
		for _, b := range g.sortedAdj(i) {
			out = append(out, Edge{Machine: i, Job: b - g.m})
		}
	}

	return out
}

// NodeCount returns the number of live nodes.
func (g *Graph) NodeCount() int { return g.alive }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return g.edges }

// Machines returns m, the size of the machine index space.
func (g *Graph) Machines() int { return g.m }

// Jobs returns n, the size of the job index space.
func (g *Graph) Jobs() int { return g.n }

// Clone returns a deep copy of g.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		m:     g.m,
		n:     g.n,
		adj:   make([]map[int]struct{}, len(g.adj)),
		live:  append([]bool(nil), g.live...),
		alive: g.alive,
		edges: g.edges,
	}
	for id, nb := range g.adj {
		c.adj[id] = make(map[int]struct{}, len(nb))
		for b := range nb {
			c.adj[id][b] = struct{}{}
		}
	}

	return c
}
