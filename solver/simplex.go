package solver

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/golang/glog"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

const (
	// phaseOneTol is the largest artificial sum still read as feasible.
	phaseOneTol = 1e-7
	// independenceTol is the relative residual below which a column is
	// treated as dependent on the basis built so far.
	independenceTol = 1e-9
)

// errAbandoned is raised inside a simplex goroutine whose context is done.
var errAbandoned = errors.New("solver: simplex abandoned")

// guarded reads through to a and panics with errAbandoned once stop is set.
// lp.Simplex reads A on every pivot, so setting stop ends the run at the
// next pivot instead of letting it spin.
type guarded struct {
	a    *mat.Dense
	stop *atomic.Bool
}

func (g guarded) Dims() (r, c int) { return g.a.Dims() }

func (g guarded) At(i, j int) float64 {
	if g.stop.Load() {
		panic(errAbandoned)
	}
	return g.a.At(i, j)
}

func (g guarded) T() mat.Matrix { return mat.Transpose{Matrix: g} }

// twoPhase solves f with an explicit phase I so that both phases start
// from a supplied basis and stay cancellable.
//
//  1. Phase I: one artificial column per job row, minimize their sum from
//     the basis {artificials, slacks}, which is feasible since b ≥ 0.
//  2. A positive artificial sum means the form is infeasible.
//  3. Complete the phase I support to a basis of A.
//  4. Phase II from that basis. If gonum rejects it, fall back to a
//     cold start.
func twoPhase(ctx context.Context, f *lpForm) (float64, []float64, error) {
	rows, cols := f.a.Dims()

	// 1. phase I
	a1 := mat.NewDense(rows, cols+f.jobs, nil)
	a1.Slice(0, rows, 0, cols).(*mat.Dense).Copy(f.a)
	c1 := make([]float64, cols+f.jobs)
	start := make([]int, 0, rows)
	for j := 0; j < f.jobs; j++ {
		a1.Set(j, cols+j, 1)
		c1[cols+j] = 1
		start = append(start, cols+j)
	}
	start = append(start, f.slack...)

	art, z1, err := simplex(ctx, c1, a1, f.b, start)
	if err != nil {
		return 0, nil, err
	}

	// 2. feasibility
	if art > phaseOneTol {
		glog.V(2).Infof("solver: phase I ended with artificial sum %g", art)
		return 0, nil, lp.ErrInfeasible
	}

	// 3. basis completion
	basis, err := completeBasis(f.a, z1[:cols], f.slack)
	if err != nil {
		return 0, nil, err
	}

	// 4. phase II
	opt, z, err := simplex(ctx, f.c, f.a, f.b, basis)
	if err == nil || errors.Is(err, lp.ErrInfeasible) || ctx.Err() != nil {
		return opt, z, err
	}
	glog.V(2).Infof("solver: warm start rejected (%v), cold start", err)
	return simplex(ctx, f.c, f.a, f.b, nil)
}

// completeBasis picks rows(a) linearly independent columns of a: first
// every column with z ≠ 0, then the preferred columns, then the rest in
// order. Independence is tested by Gram-Schmidt against the columns
// already taken.
func completeBasis(a *mat.Dense, z []float64, prefer []int) ([]int, error) {
	rows, cols := a.Dims()

	order := make([]int, 0, cols+len(prefer))
	taken := make([]bool, cols)
	push := func(k int) {
		if !taken[k] {
			taken[k] = true
			order = append(order, k)
		}
	}
	for k, v := range z {
		if v != 0 {
			push(k)
		}
	}
	for _, k := range prefer {
		push(k)
	}
	for k := 0; k < cols; k++ {
		push(k)
	}

	q := make([][]float64, 0, rows)
	basis := make([]int, 0, rows)
	for _, k := range order {
		if len(basis) == rows {
			break
		}
		v := mat.Col(nil, k, a)
		norm := floats.Norm(v, 2)
		if norm == 0 {
			continue
		}
		// two passes keep the residual honest for near-parallel columns
		for pass := 0; pass < 2; pass++ {
			for _, u := range q {
				floats.AddScaled(v, -floats.Dot(u, v), u)
			}
		}
		r := floats.Norm(v, 2)
		if r <= independenceTol*norm {
			continue
		}
		floats.Scale(1/r, v)
		q = append(q, v)
		basis = append(basis, k)
	}
	if len(basis) < rows {
		return nil, fmt.Errorf("rank %d below %d rows", len(basis), rows)
	}

	return basis, nil
}

type simplexOutcome struct {
	f   float64
	z   []float64
	err error
}

// simplex runs lp.Simplex in its own goroutine over a guarded view of a.
// When ctx is done the guard is tripped and the goroutine unwinds at its
// next read of A. With a nil basis gonum runs its own phase I on a private
// copy of A, which the guard cannot reach; only that cold start can
// outlive ctx.
func simplex(ctx context.Context, c []float64, a *mat.Dense, b []float64, basis []int) (float64, []float64, error) {
	var stop atomic.Bool
	done := make(chan simplexOutcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				if err, ok := r.(error); ok && errors.Is(err, errAbandoned) {
					done <- simplexOutcome{err: err}
					return
				}
				done <- simplexOutcome{err: fmt.Errorf("simplex panic: %v", r)}
			}
		}()
		f, z, err := lp.Simplex(c, guarded{a: a, stop: &stop}, b, simplexTol, basis)
		done <- simplexOutcome{f: f, z: z, err: err}
	}()

	select {
	case <-ctx.Done():
		stop.Store(true)
		return 0, nil, ctx.Err()
	case out := <-done:
		return out.f, out.z, out.err
	}
}
