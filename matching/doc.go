// Package matching rounds a fractional assignment by matching on its
// pseudoforest support graph.
//
// Steps:
//
//  1. Reduce: every job of degree 1 already has x_ij = 1 (its only
//     incident variable must carry the whole job). Such jobs are
//     recorded as forced pairs and removed, then machines left isolated
//     are removed. In the reduced graph G′ every job has degree ≥ 2.
//  2. MatchTree: for a tree component, root at a job and walk it with an
//     explicit stack; each job takes one unmatched child machine. Every
//     machine has at most one parent, so no machine is taken twice.
//  3. MatchCycle: a unicyclic component has one even cycle. Removing one
//     cycle edge leaves a tree rooted at the job side of that edge.
//  4. MatchAll: Reduce, dispatch per component, union with the forced
//     pairs and Verify the result.
//
// Invariants checked by Verify:
//
//   - every job of G appears in exactly one pair;
//   - no machine appears twice among the pairs matched in G′;
//   - every pair is an edge of G.
//
// Forced pairs may share a machine; their load is already accounted for
// by the LP. A broken invariant is ErrInternalInconsistency and is never
// repaired. A missing or odd cycle is ErrRoundingPrecondition.
//
// Tie-breaking is lowest index first everywhere, so results are
// reproducible for a given graph.
package matching
