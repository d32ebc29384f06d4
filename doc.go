// Package lstsched schedules independent jobs on unrelated parallel
// machines (R||Cmax) with the Lenstra–Shmoys–Tardos 2-approximation.
//
// The pipeline, one package per stage:
//
//	instance/   processing-time matrix P (m machines × n jobs), CSV I/O, generator
//	greedy/     list-scheduling baseline t0, the upper search bound
//	solver/     LP(P, d, t) in standard form, solved with gonum's simplex;
//	            binary branch and bound for exact reference runs
//	bipartite/  support graph of a fractional solution, pseudoforest check
//	matching/   degree-1 reduction, tree and cycle matching, verification
//	decision/   Decide(P, d): "no" or a schedule with makespan ≤ 2d
//	search/     binary search over d in [t0/m, t0], optional prefetch
//	report/     text listing, CSV rows, YAML summary with host info
//	config/     YAML settings mapped to package options
//	cmd/lstsched  command-line front end
//
// Guarantee: the returned makespan is at most 2·OPT and never above the
// greedy makespan.
//
// Quick start:
//
//	p, _ := instance.ReadCSV(f)
//	res, err := search.Run(ctx, p)
//	if err != nil { ... }
//	report.Listing(os.Stdout, res)
package lstsched
