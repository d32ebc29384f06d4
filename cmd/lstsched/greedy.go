package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lstsched/greedy"
)

func newGreedyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "greedy <matrix.csv|->",
		Short: "Print the greedy baselines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := readMatrix(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			list, fast := greedy.List(p), greedy.MinTime(p)
			fmt.Fprintf(w, "list:     makespan %d, assignment %v\n", list.Makespan, list.Assignment)
			_, err = fmt.Fprintf(w, "min-time: makespan %d, assignment %v\n", fast.Makespan, fast.Assignment)
			return err
		},
	}
}
