// Package solver builds the assignment LP of the Lenstra–Shmoys–Tardos
// rounding theorem and delegates the numeric solve to gonum's simplex.
//
// Model LP(P, d, t):
//
//	minimize    Cmax
//	subject to  Σ_{i: p_ij ≤ t} x_ij = 1             for every job j
//	            Σ_{j: p_ij ≤ t} p_ij·x_ij ≤ d_i      for every machine i
//	            Σ_{j: p_ij ≤ t} p_ij·x_ij ≤ Cmax     for every machine i
//	            x_ij ≥ 0, Cmax ≥ 0
//
// Only eligible pairs (p_ij ≤ t) get a variable. The inequalities are
// turned into equalities with one slack column each, giving the standard
// form min cᵀx, Ax = b, x ≥ 0 expected by lp.Simplex. The simplex returns
// a basic feasible solution, i.e. an extreme point of the feasible region.
//
// Solving runs two phases of lp.Simplex, each from an explicit basis:
// phase I minimizes one artificial per job row starting from the
// artificials and slacks, phase II minimizes Cmax from a basis completed
// around the phase I support. Both phases read A through a guard, so an
// expired budget stops the pivoting instead of leaving it running.
//
// Modes:
//
//   - Continuous: one LP solve under Timeout (DefaultTimeout unless
//     overridden). If it runs out of time or fails numerically it is
//     retried once, under a fresh budget, on a perturbed form: x columns
//     shuffled and the deadline and makespan right-hand sides raised by
//     a small ε ramp. Values are snapped afterwards as usual.
//   - Binary: depth-first branch and bound on top of the LP relaxation,
//     bounded by a node budget. Only meant for small reference runs.
//
// Errors:
//
//   - ErrInfeasible: no assignment meets the deadlines. Expected outcome.
//   - ErrTimeout:    the budget or context expired, or the node budget
//     ran out.
//   - ErrSolver:     unexpected numeric failure inside the simplex.
//   - ErrBadDeadlines: malformed deadline vector or threshold.
//
// Complexity: model construction is O((n+2m)·(E+2m+1)) for the dense
// constraint matrix, E = number of eligible pairs. The simplex is
// polynomial in practice; branch and bound is exponential in the worst case.
package solver
