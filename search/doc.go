// Package search drives the decision procedure with a binary search over
// integer deadlines.
//
// Algorithm:
//
//  1. t0 = greedy makespan; lower = ⌊t0/m⌋, upper = t0. The optimum lies
//     in [lower, upper] because the greedy schedule is within a factor m
//     of it.
//  2. While lower < upper: d = ⌊(lower+upper)/2⌋. A "no" from Decide
//     proves OPT > d, so lower = d+1; a schedule lowers upper to d.
//  3. If no call succeeded, Decide(upper) is evaluated once more; a "no"
//     there is ErrSearchExhausted.
//
// The greedy schedule is the initial incumbent and is replaced by any
// accepted schedule that is no longer, so the result never exceeds t0. Any accepted
// deadline d ≤ OPT yields a makespan ≤ 2d ≤ 2·OPT.
//
// Every LP solve runs under WithSolveTimeout (solver.DefaultTimeout by
// default). A solve that still times out after its perturbed retry is a
// "no", which may push lower past OPT but never yields a schedule.
//
// Fatal errors from Decide abort the search and are returned as is.
//
// Prefetch mode evaluates the midpoint and both possible next midpoints
// concurrently (golang.org/x/sync/errgroup, at most three at a time).
// Outcomes are cached per deadline and bisection stays sequential, so
// the visited deadlines are exactly those of a sequential run.
//
// Complexity: O(log(t0 − t0/m)) decide calls.
package search
