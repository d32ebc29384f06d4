package solver

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lstsched/instance"
)

// Model is LP(P, d, t) in standard form. It is immutable once built and
// never shared between Solve calls.
type Model struct {
	p         *instance.Matrix
	deadlines []int64
	threshold int64
	mode      Mode

	// vars lists the eligible pairs; column k of A belongs to vars[k].
	vars []Pair
	// forced[j] >= 0 pins job j to that machine (branching only).
	forced []int
	// forbidden pairs are excluded from vars (branching only).
	forbidden map[Pair]bool

	// uncovered is the first job with no eligible machine, or -1.
	uncovered int
}

// Build constructs LP(P, d, t) for the given mode. Pairs with p_ij > t get
// no variable. deadlines must have one entry per machine.
//
// A job with no eligible machine does not fail Build; Solve reports it as
// ErrInfeasible without calling the numeric backend.
func Build(p *instance.Matrix, deadlines []int64, threshold int64, mode Mode) (*Model, error) {
	if p == nil {
		return nil, instance.ErrEmptyMatrix
	}
	if len(deadlines) != p.Machines() {
		return nil, fmt.Errorf("%w: got %d deadlines for %d machines", ErrBadDeadlines, len(deadlines), p.Machines())
	}
	for i, d := range deadlines {
		if d < 0 {
			return nil, fmt.Errorf("%w: d[%d]=%d", ErrBadDeadlines, i, d)
		}
	}
	if threshold < 0 {
		return nil, fmt.Errorf("%w: threshold %d", ErrBadDeadlines, threshold)
	}

	forced := make([]int, p.Jobs())
	for j := range forced {
		forced[j] = -1
	}
	md := &Model{
		p:         p,
		deadlines: append([]int64(nil), deadlines...),
		threshold: threshold,
		mode:      mode,
		forced:    forced,
		forbidden: map[Pair]bool{},
	}
	md.collectVars()

	return md, nil
}

// Uniform is Build with every deadline and the threshold equal to d.
func Uniform(p *instance.Matrix, d int64, mode Mode) (*Model, error) {
	if p == nil {
		return nil, instance.ErrEmptyMatrix
	}
	deadlines := make([]int64, p.Machines())
	for i := range deadlines {
		deadlines[i] = d
	}
	return Build(p, deadlines, d, mode)
}

// collectVars enumerates eligible pairs in (machine, job) order and
// records the first job left without any.
func (md *Model) collectVars() {
	m, n := md.p.Machines(), md.p.Jobs()
	covered := make([]bool, n)
	md.vars = md.vars[:0]
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			if !md.eligible(i, j) {
				continue
			}
			md.vars = append(md.vars, Pair{Machine: i, Job: j})
			covered[j] = true
		}
	}
	md.uncovered = -1
	for j, ok := range covered {
		if !ok {
			md.uncovered = j
			break
		}
	}
}

func (md *Model) eligible(i, j int) bool {
	if md.p.At(i, j) > md.threshold {
		return false
	}
	if f := md.forced[j]; f >= 0 && f != i {
		return false
	}
	return !md.forbidden[Pair{Machine: i, Job: j}]
}

// Eligible reports whether x_ij is a variable of the model.
func (md *Model) Eligible(i, j int) bool { return md.eligible(i, j) }

// Vars returns the modeled pairs in column order.
func (md *Model) Vars() []Pair { return append([]Pair(nil), md.vars...) }

// Mode returns the variable domain of the model.
func (md *Model) Mode() Mode { return md.mode }

// Deadlines returns a copy of the deadline vector.
func (md *Model) Deadlines() []int64 { return append([]int64(nil), md.deadlines...) }

// Threshold returns t.
func (md *Model) Threshold() int64 { return md.threshold }

// Matrix returns the processing matrix the model was built from.
func (md *Model) Matrix() *instance.Matrix { return md.p }

// branch returns a copy of md with job j pinned to machine i (force) or
// with x_ij removed (forbid).
func (md *Model) branch(pr Pair, force bool) *Model {
	child := &Model{
		p:         md.p,
		deadlines: md.deadlines,
		threshold: md.threshold,
		mode:      md.mode,
		forced:    append([]int(nil), md.forced...),
		forbidden: make(map[Pair]bool, len(md.forbidden)+1),
	}
	for k, v := range md.forbidden {
		child.forbidden[k] = v
	}
	if force {
		child.forced[pr.Job] = pr.Machine
	} else {
		child.forbidden[pr] = true
	}
	child.collectVars()

	return child
}

// lpForm is min cᵀz, Az = b, z ≥ 0 together with the layout facts the
// two-phase driver needs.
type lpForm struct {
	c []float64
	a *mat.Dense
	b []float64

	// jobs is the number of leading job rows; they carry no slack.
	jobs int
	// slack[r] is the unit column of row jobs+r.
	slack []int
	// perm[k] is the model column stored at column k, nil for identity.
	perm []int
}

// unpermute maps a solution of f back to model column order.
func (f *lpForm) unpermute(z []float64) []float64 {
	if f.perm == nil {
		return z
	}
	out := make([]float64, len(z))
	for k, src := range f.perm {
		out[src] = z[k]
	}
	return out
}

// standardForm lays the model out as min cᵀz, Az = b, z ≥ 0 with columns
//
//	[0, E)           x_ij in vars order
//	E                Cmax
//	[E+1, E+1+m)     deadline slacks s_i
//	[E+1+m, E+1+2m)  makespan slacks u_i
//
// and rows
//
//	[0, n)           job rows        Σ x_ij = 1
//	[n, n+m)         deadline rows   Σ p_ij x_ij + s_i = d_i
//	[n+m, n+2m)      makespan rows   Σ p_ij x_ij − Cmax + u_i = 0
func (md *Model) standardForm() *lpForm {
	m, n, e := md.p.Machines(), md.p.Jobs(), len(md.vars)
	rows, cols := n+2*m, e+1+2*m
	cmax := e

	f := &lpForm{
		c:     make([]float64, cols),
		a:     mat.NewDense(rows, cols, nil),
		b:     make([]float64, rows),
		jobs:  n,
		slack: make([]int, 2*m),
	}
	f.c[cmax] = 1

	for j := 0; j < n; j++ {
		f.b[j] = 1
	}
	for k, pr := range md.vars {
		pij := float64(md.p.At(pr.Machine, pr.Job))
		f.a.Set(pr.Job, k, 1)
		f.a.Set(n+pr.Machine, k, pij)
		f.a.Set(n+m+pr.Machine, k, pij)
	}
	for i := 0; i < m; i++ {
		f.b[n+i] = float64(md.deadlines[i])
		f.a.Set(n+i, e+1+i, 1)
		f.slack[i] = e + 1 + i

		f.a.Set(n+m+i, cmax, -1)
		f.a.Set(n+m+i, e+1+m+i, 1)
		f.slack[m+i] = e + 1 + m + i
	}

	return f
}

// perturbScale is the step of the ε ramp added to non-job right-hand sides.
const perturbScale = 1e-6

// perturbedForm is standardForm with the x columns shuffled and row
// jobs+r of b raised by perturbScale·(r+1). Deadline rows gain a little
// room and makespan rows read load ≤ Cmax + ε, which breaks the ties that
// make the plain form degenerate. Job rows are untouched.
func (md *Model) perturbedForm(seed int64) *lpForm {
	base := md.standardForm()
	rows, cols := base.a.Dims()
	e := len(md.vars)

	perm := make([]int, cols)
	for k := range perm {
		perm[k] = k
	}
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(e, func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })

	f := &lpForm{
		c:     make([]float64, cols),
		a:     mat.NewDense(rows, cols, nil),
		b:     append([]float64(nil), base.b...),
		jobs:  base.jobs,
		slack: base.slack,
		perm:  perm,
	}
	col := make([]float64, rows)
	for k, src := range perm {
		f.c[k] = base.c[src]
		f.a.SetCol(k, mat.Col(col, src, base.a))
	}
	for r := base.jobs; r < rows; r++ {
		f.b[r] += perturbScale * float64(r-base.jobs+1)
	}

	return f
}
