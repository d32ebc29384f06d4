package matching

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lstsched/bipartite"
)

var (
	// ErrInternalInconsistency marks a violated postcondition. It is a bug,
	// not an outcome, and callers must abort.
	ErrInternalInconsistency = errors.New("matching: internal inconsistency")

	// ErrRoundingPrecondition marks a component that cannot be rounded:
	// not a pseudotree, no cycle where one is required, or an odd cycle.
	ErrRoundingPrecondition = errors.New("matching: rounding precondition violated")
)

// Pair assigns a job to a machine.
type Pair struct {
	Machine, Job int
}

// InconsistencyError describes which invariant broke and where.
type InconsistencyError struct {
	Reason string
	Node   bipartite.Node
}

func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("matching: internal inconsistency at %s: %s", e.Node, e.Reason)
}

func (e *InconsistencyError) Unwrap() error { return ErrInternalInconsistency }

func inconsistent(v bipartite.Node, format string, args ...any) error {
	return &InconsistencyError{Reason: fmt.Sprintf(format, args...), Node: v}
}

// CycleError reports a unicyclic component whose cycle is missing or odd.
type CycleError struct {
	// Length is the number of nodes on the detected cycle (0 if none).
	Length int
	// Component is the offending component.
	Component bipartite.Component
}

func (e *CycleError) Error() string {
	if e.Length == 0 {
		return fmt.Sprintf("matching: no cycle in component of %d nodes and %d edges", e.Component.Size(), e.Component.Edges)
	}
	return fmt.Sprintf("matching: odd cycle of length %d", e.Length)
}

func (e *CycleError) Unwrap() error { return ErrRoundingPrecondition }

// Result is the outcome of MatchAll.
type Result struct {
	// Reduced is G′: G without degree-1 jobs and isolated machines.
	Reduced *bipartite.Graph

	// Forced are the degree-1 jobs with their only machine.
	Forced []Pair

	// Matched are the pairs chosen inside G′.
	Matched []Pair

	// Assignment[j] is the machine of job j.
	Assignment []int
}

// Pairs returns Forced and Matched ordered by job.
func (r *Result) Pairs() []Pair {
	out := make([]Pair, 0, len(r.Assignment))
	for j, i := range r.Assignment {
		out = append(out, Pair{Machine: i, Job: j})
	}
	return out
}
