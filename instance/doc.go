// Package instance holds the immutable processing-time matrix P of an
// unrelated-machines scheduling problem, together with its validation,
// CSV persistence and a random instance generator.
//
// What:
//
//   - Matrix: m×n non-negative processing times, p[i][j] is the time
//     machine i needs for job j. Rows are machines, columns are jobs.
//   - New validates shape and values before anything downstream sees them;
//     an empty, ragged or negative matrix never reaches the solver.
//   - ReadCSV / WriteCSV: one comma-separated row of integers per machine.
//   - Random: uniform integer times in [lo, hi], reproducible from a seed.
//
// Errors:
//
//   - ErrInvalidMatrix wraps every shape/value violation:
//     ErrEmptyMatrix, ErrRaggedMatrix, ErrNegativeTime.
//   - ErrParse for non-integer CSV cells.
//
// Complexity:
//
//   - New:     Time O(m·n), Memory O(m·n) (input is copied).
//   - At:      O(1).
//   - RowSum:  O(n).
package instance
