// Package greedy computes the list-scheduling baseline used as the upper
// end of the deadline search.
//
// Schedule processes jobs in index order and assigns each one to the
// machine whose own load after taking the job is smallest, breaking ties
// by the lowest machine index. MinTime is the cruder "fastest machine
// per job" rule, kept for comparison.
//
// Both are O(m·n) and deterministic. The greedy makespan t0 satisfies
// OPT ≤ t0 ≤ m·OPT.
package greedy
