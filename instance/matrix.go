package instance

import "fmt"

// Matrix is an immutable m×n matrix of processing times.
// The zero value is not usable; construct with New.
type Matrix struct {
	m, n int
	data []int64 // row-major, len m*n
}

// New validates rows and returns a Matrix holding a private copy of them.
// Returns ErrEmptyMatrix, ErrRaggedMatrix or ErrNegativeTime (all wrapping
// ErrInvalidMatrix), with the first offending cell attached where it exists.
// Complexity: O(m·n).
func New(rows [][]int64) (*Matrix, error) {
	// 1) Shape: at least one machine and one job.
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMatrix
	}
	m, n := len(rows), len(rows[0])

	// 2) Rectangularity and values, row by row.
	data := make([]int64, 0, m*n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRaggedMatrix, i, len(row), n)
		}
		for j, v := range row {
			if v < 0 {
				return nil, &CellError{Machine: i, Job: j, Err: ErrNegativeTime}
			}
		}
		data = append(data, row...)
	}

	return &Matrix{m: m, n: n, data: data}, nil
}

// MustNew is New that panics on error. Intended for tests and literals.
func MustNew(rows [][]int64) *Matrix {
	p, err := New(rows)
	if err != nil {
		panic(err)
	}
	return p
}

// Machines returns the number of rows m.
func (p *Matrix) Machines() int { return p.m }

// Jobs returns the number of columns n.
func (p *Matrix) Jobs() int { return p.n }

// At returns p[i][j]. It panics on out-of-range indices like a slice would.
func (p *Matrix) At(i, j int) int64 {
	if i < 0 || i >= p.m || j < 0 || j >= p.n {
		panic(fmt.Sprintf("instance: index (%d,%d) out of range %dx%d", i, j, p.m, p.n))
	}
	return p.data[i*p.n+j]
}

// Row returns a copy of machine i's processing times.
func (p *Matrix) Row(i int) []int64 {
	out := make([]int64, p.n)
	copy(out, p.data[i*p.n:(i+1)*p.n])
	return out
}

// Rows returns a deep copy of the matrix as nested slices.
func (p *Matrix) Rows() [][]int64 {
	out := make([][]int64, p.m)
	for i := range out {
		out[i] = p.Row(i)
	}
	return out
}

// RowSum is the load of machine i if it ran every job.
func (p *Matrix) RowSum(i int) int64 {
	var s int64
	for _, v := range p.data[i*p.n : (i+1)*p.n] {
		s += v
	}
	return s
}

// Max returns the largest processing time in the matrix.
func (p *Matrix) Max() int64 {
	var best int64
	for _, v := range p.data {
		if v > best {
			best = v
		}
	}
	return best
}

// Load returns the load of every machine under assign, where assign[j]
// is the machine of job j. Jobs with a negative machine are skipped.
func (p *Matrix) Load(assign []int) []int64 {
	loads := make([]int64, p.m)
	for j, i := range assign {
		if i < 0 {
			continue
		}
		loads[i] += p.At(i, j)
	}
	return loads
}

// Makespan returns the largest load under assign.
func (p *Matrix) Makespan(assign []int) int64 {
	var best int64
	for _, l := range p.Load(assign) {
		if l > best {
			best = l
		}
	}
	return best
}
