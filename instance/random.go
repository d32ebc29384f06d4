package instance

import (
	"fmt"
	"math/rand"
)

// Default bounds used by the instance generator.
const (
	DefaultMinTime = 1
	DefaultMaxTime = 100
)

// Random draws an m×n matrix with times uniform in [lo, hi].
// The same rng seed always yields the same matrix.
func Random(m, n int, lo, hi int64, rng *rand.Rand) (*Matrix, error) {
	if rng == nil {
		return nil, fmt.Errorf("%w: nil rng", ErrBadRange)
	}
	if lo < 0 || hi < lo {
		return nil, fmt.Errorf("%w: [%d,%d]", ErrBadRange, lo, hi)
	}
	if m <= 0 || n <= 0 {
		return nil, ErrEmptyMatrix
	}

	span := hi - lo + 1
	rows := make([][]int64, m)
	for i := range rows {
		rows[i] = make([]int64, n)
		for j := range rows[i] {
			rows[i][j] = lo + rng.Int63n(span)
		}
	}

	return New(rows)
}
