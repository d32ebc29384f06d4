// Package decision implements the two-relaxed decision procedure of the
// Lenstra–Shmoys–Tardos 2-approximation for R||Cmax.
//
// Decide(p, d) answers either "no" or a schedule of makespan at most 2d:
//
//  1. Solve LP(P, d, d) in continuous mode (solver package).
//  2. Build the support graph of the fractional solution (bipartite).
//  3. Check that it is a pseudoforest.
//  4. Reduce and match (matching), giving an integral assignment.
//  5. Compute loads and the rounded makespan M, and require M ≤ 2d.
//
// Each LP solve has a wall-clock budget (solver.DefaultTimeout unless
// WithTimeout says otherwise) and is retried once on a perturbed form
// before a timeout counts as "no".
//
// Every x_ij that survives step 1 has p_ij ≤ d, so each machine receives
// at most its fractional load (≤ d) plus one matched job (≤ d).
//
// Outcomes:
//
//   - *Solution: M ≤ 2d.
//   - an error wrapping ErrNo: the procedure answered "no" at this d.
//     The cause (solver.ErrInfeasible, solver.ErrTimeout,
//     solver.ErrSolver, matching.ErrRoundingPrecondition or
//     ErrBoundExceeded) is also reachable via errors.Is. IsFailure
//     reports this case. As with an LP that ends without an optimal
//     status, a numeric failure of the backend is a "no".
//   - any other error is fatal: malformed input, bad options or
//     matching.ErrInternalInconsistency.
//
// Decide is a pure function of (P, d); calls share no state and may run
// concurrently.
//
// Exact solves the binary model to optimality with branch and bound.
// IntegralAt solves the binary counterpart of step 1 at a given d, the
// integral schedule the rounding is compared with. Both are references
// for small instances, not part of the approximation.
package decision
