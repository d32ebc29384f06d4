package decision_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lstsched/decision"
	"github.com/katalvlaran/lstsched/instance"
)

func ExampleDecide() {
	p := instance.MustNew([][]int64{{2, 4, 3, 2}, {3, 1, 6, 2}, {1, 3, 2, 5}})

	_, err := decision.Decide(context.Background(), p, 2)
	fmt.Println(decision.IsFailure(err))

	sol, err := decision.Decide(context.Background(), p, 3)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(sol.Makespan <= 2*sol.D)
	// Output:
	// true
	// true
}

func ExampleIntegralAt() {
	p := instance.MustNew([][]int64{{2, 4, 3, 2}, {3, 1, 6, 2}, {1, 3, 2, 5}})

	ip, err := decision.IntegralAt(context.Background(), p, 3)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(ip.Makespan)
	// Output:
	// 3
}
