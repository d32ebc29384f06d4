package matching_test

import (
	"fmt"

	"github.com/katalvlaran/lstsched/bipartite"
	"github.com/katalvlaran/lstsched/matching"
)

func ExampleMatchAll() {
	// j0 is forced to m2; j1 and j2 share the 4-cycle m0–j1–m1–j2
	g, _ := bipartite.Build([]bipartite.Edge{
		{Machine: 2, Job: 0},
		{Machine: 0, Job: 1}, {Machine: 1, Job: 1},
		{Machine: 0, Job: 2}, {Machine: 1, Job: 2},
	}, 3, 3)

	res, err := matching.MatchAll(g)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Forced)
	fmt.Println(res.Assignment)
	// Output:
	// [{2 0}]
	// [2 1 0]
}
