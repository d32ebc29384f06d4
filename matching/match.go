package matching

import (
	"github.com/katalvlaran/lstsched/bipartite"
)

// MatchAll rounds the support graph g into a full job assignment.
//
// Each component of G′ is dispatched by its edge count: trees go to
// MatchTree, unicyclic components to MatchCycle, anything denser is a
// *bipartite.PseudoforestError wrapped in ErrRoundingPrecondition.
// The combined result is checked by Verify before it is returned.
func MatchAll(g *bipartite.Graph) (*Result, error) {
	// 1) Degree reduction.
	r, forced, err := Reduce(g)
	if err != nil {
		return nil, err
	}

	// 2) Per-component matching in G′.
	var matched []Pair
	for _, c := range r.Components() {
		var ps []Pair
		switch {
		case c.IsTree():
			ps, err = MatchTree(r, c)
		case c.IsUnicyclic():
			ps, err = MatchCycle(r, c)
		default:
			err = &roundingError{cause: &bipartite.PseudoforestError{Component: c}}
		}
		if err != nil {
			return nil, err
		}
		matched = append(matched, ps...)
	}

	// 3) Union and verification.
	if err = Verify(g, forced, matched); err != nil {
		return nil, err
	}
	assign := make([]int, g.Jobs())
	for _, p := range forced {
		assign[p.Job] = p.Machine
	}
	for _, p := range matched {
		assign[p.Job] = p.Machine
	}

	return &Result{Reduced: r, Forced: forced, Matched: matched, Assignment: assign}, nil
}

// roundingError carries a pseudoforest violation under ErrRoundingPrecondition
// while keeping the pseudoforest error reachable through errors.As.
type roundingError struct{ cause error }

func (e *roundingError) Error() string { return "matching: " + e.cause.Error() }

func (e *roundingError) Unwrap() []error { return []error{ErrRoundingPrecondition, e.cause} }

// Verify checks the postconditions of MatchAll against the input
// graph g: every pair is an edge, every job is assigned exactly once and
// no machine is matched twice inside G′.
func Verify(g *bipartite.Graph, forced, matched []Pair) error {
	seen := make([]bool, g.Jobs())
	cover := func(p Pair) error {
		if p.Job < 0 || p.Job >= g.Jobs() || p.Machine < 0 || p.Machine >= g.Machines() {
			return inconsistent(bipartite.Job(p.Job), "pair (m%d, j%d) out of range", p.Machine, p.Job)
		}
		if !g.HasEdge(p.Machine, p.Job) {
			return inconsistent(bipartite.Job(p.Job), "m%d is not a support edge", p.Machine)
		}
		if seen[p.Job] {
			return inconsistent(bipartite.Job(p.Job), "assigned twice")
		}
		seen[p.Job] = true
		return nil
	}

	for _, p := range forced {
		if err := cover(p); err != nil {
			return err
		}
	}
	used := make(map[int]bool, len(matched))
	for _, p := range matched {
		if err := cover(p); err != nil {
			return err
		}
		if used[p.Machine] {
			return inconsistent(bipartite.Machine(p.Machine), "matched twice")
		}
		used[p.Machine] = true
	}
	for j, ok := range seen {
		if !ok {
			return inconsistent(bipartite.Job(j), "not assigned")
		}
	}

	return nil
}
