package greedy

import "github.com/katalvlaran/lstsched/instance"

// Schedule is an integral job→machine assignment.
type Schedule struct {
	// Assignment[j] is the machine that runs job j.
	Assignment []int
	// Loads[i] is the total processing time placed on machine i.
	Loads []int64
	// Makespan is max(Loads).
	Makespan int64
}

// List assigns every job, in index order, to the machine minimizing
// that machine's post-assignment load.
func List(p *instance.Matrix) Schedule {
	m, n := p.Machines(), p.Jobs()
	s := Schedule{
		Assignment: make([]int, n),
		Loads:      make([]int64, m),
	}

	for j := 0; j < n; j++ {
		best := 0
		bestLoad := s.Loads[0] + p.At(0, j)
		for i := 1; i < m; i++ {
			if l := s.Loads[i] + p.At(i, j); l < bestLoad {
				best, bestLoad = i, l
			}
		}
		s.Assignment[j] = best
		s.Loads[best] = bestLoad
		if bestLoad > s.Makespan {
			s.Makespan = bestLoad
		}
	}

	return s
}

// Makespan is List(p).Makespan.
func Makespan(p *instance.Matrix) int64 {
	return List(p).Makespan
}

// MinTime assigns each job to the machine with the smallest p_ij,
// ignoring the load already placed there.
func MinTime(p *instance.Matrix) Schedule {
	m, n := p.Machines(), p.Jobs()
	s := Schedule{Assignment: make([]int, n)}
	for j := 0; j < n; j++ {
		best := 0
		for i := 1; i < m; i++ {
			if p.At(i, j) < p.At(best, j) {
				best = i
			}
		}
		s.Assignment[j] = best
	}
	s.Loads = p.Load(s.Assignment)
	s.Makespan = p.Makespan(s.Assignment)

	return s
}
