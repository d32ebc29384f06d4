package main

import (
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lstsched/instance"
)

func newGenerateCmd() *cobra.Command {
	var (
		m, n   int
		lo, hi int64
		seed   int64
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random processing-time matrix as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			p, err := instance.Random(m, n, lo, hi, rand.New(rand.NewSource(seed)))
			if err != nil {
				return err
			}
			return instance.WriteCSV(cmd.OutOrStdout(), p)
		},
	}
	fl := cmd.Flags()
	fl.IntVarP(&m, "machines", "m", 3, "number of machines")
	fl.IntVarP(&n, "jobs", "n", 10, "number of jobs")
	fl.Int64Var(&lo, "min", instance.DefaultMinTime, "smallest processing time")
	fl.Int64Var(&hi, "max", instance.DefaultMaxTime, "largest processing time")
	fl.Int64Var(&seed, "seed", 0, "random seed, defaults to the current time")
	return cmd
}
