package solver

import (
	"errors"
	"fmt"
	"math"
)

// ErrConstraintViolation is returned by Verify for a solution that breaks
// one of the model's constraints.
var ErrConstraintViolation = errors.New("solver: constraint violated")

// Verify checks res against every constraint of md within tol:
// values in [0,1] (and {0,1} in Binary mode), each job's values summing
// to 1, each machine's weighted load at most its deadline and at most
// the reported objective.
func Verify(md *Model, res *Result, tol float64) error {
	m, n := md.p.Machines(), md.p.Jobs()
	jobSum := make([]float64, n)
	load := make([]float64, m)

	for _, e := range res.Assignment {
		if !md.eligible(e.Machine, e.Job) {
			return fmt.Errorf("%w: x[%d][%d] is not a model variable", ErrConstraintViolation, e.Machine, e.Job)
		}
		if e.Value < -tol || e.Value > 1+tol {
			return fmt.Errorf("%w: x[%d][%d]=%g outside [0,1]", ErrConstraintViolation, e.Machine, e.Job, e.Value)
		}
		if md.mode == Binary && e.Value > tol && e.Value < 1-tol {
			return fmt.Errorf("%w: x[%d][%d]=%g not binary", ErrConstraintViolation, e.Machine, e.Job, e.Value)
		}
		jobSum[e.Job] += e.Value
		load[e.Machine] += e.Value * float64(md.p.At(e.Machine, e.Job))
	}

	for j, s := range jobSum {
		if math.Abs(s-1) > tol {
			return fmt.Errorf("%w: job %d sums to %g", ErrConstraintViolation, j, s)
		}
	}
	for i, l := range load {
		if l > float64(md.deadlines[i])+tol {
			return fmt.Errorf("%w: machine %d load %g exceeds deadline %d", ErrConstraintViolation, i, l, md.deadlines[i])
		}
		if l > res.Objective+tol {
			return fmt.Errorf("%w: machine %d load %g exceeds Cmax %g", ErrConstraintViolation, i, l, res.Objective)
		}
	}

	return nil
}
