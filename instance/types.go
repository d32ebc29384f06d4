package instance

import (
	"errors"
	"fmt"
)

// Sentinel errors for matrix construction and parsing.
var (
	// ErrInvalidMatrix is the umbrella error for a malformed processing matrix.
	ErrInvalidMatrix = errors.New("instance: invalid processing matrix")

	// ErrEmptyMatrix indicates zero machines or zero jobs.
	ErrEmptyMatrix = fmt.Errorf("%w: empty", ErrInvalidMatrix)

	// ErrRaggedMatrix indicates rows of different lengths.
	ErrRaggedMatrix = fmt.Errorf("%w: non-rectangular", ErrInvalidMatrix)

	// ErrNegativeTime indicates a negative processing time.
	ErrNegativeTime = fmt.Errorf("%w: negative processing time", ErrInvalidMatrix)

	// ErrParse indicates a CSV cell that is not a base-10 integer.
	ErrParse = errors.New("instance: parse error")

	// ErrBadRange is returned by Random for empty or negative time bounds.
	ErrBadRange = errors.New("instance: invalid random range")
)

// CellError pinpoints the offending cell of a rejected matrix.
type CellError struct {
	Machine, Job int
	Err          error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("p[%d][%d]: %v", e.Machine, e.Job, e.Err)
}

func (e *CellError) Unwrap() error { return e.Err }
