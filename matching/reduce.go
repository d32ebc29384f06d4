package matching

import (
	"github.com/katalvlaran/lstsched/bipartite"
)

// Reduce returns G′ and the forced pairs of g. g itself is not modified.
//
// A job with no edge at all means its LP row was not satisfied and is
// reported as ErrInternalInconsistency, as is any job left with degree
// below 2 in G′.
// Complexity: O(V + E).
func Reduce(g *bipartite.Graph) (*bipartite.Graph, []Pair, error) {
	r := g.Clone()
	var forced []Pair

	// 1) Strip degree-1 jobs; their single x_ij is 1.
	for j := 0; j < r.Jobs(); j++ {
		v := bipartite.Job(j)
		if !r.HasNode(v) {
			continue
		}
		switch r.Degree(v) {
		case 0:
			return nil, nil, inconsistent(v, "job has no supported machine")
		case 1:
			w := r.Neighbors(v)[0]
			forced = append(forced, Pair{Machine: w.Index, Job: j})
			if err := r.RemoveNode(v); err != nil {
				return nil, nil, inconsistent(v, "remove: %v", err)
			}
		}
	}

	// 2) Drop machines that lost every edge.
	for i := 0; i < r.Machines(); i++ {
		v := bipartite.Machine(i)
		if r.HasNode(v) && r.Degree(v) == 0 {
			if err := r.RemoveNode(v); err != nil {
				return nil, nil, inconsistent(v, "remove: %v", err)
			}
		}
	}

	// 3) Postcondition: every remaining job has degree ≥ 2.
	for j := 0; j < r.Jobs(); j++ {
		v := bipartite.Job(j)
		if r.HasNode(v) && r.Degree(v) < 2 {
			return nil, nil, inconsistent(v, "degree %d after reduction", r.Degree(v))
		}
	}

	return r, forced, nil
}
