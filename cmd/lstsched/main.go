// Command lstsched schedules jobs on unrelated parallel machines with the
// Lenstra–Shmoys–Tardos 2-approximation.
//
//	lstsched solve matrix.csv [--format yaml] [--exact]
//	lstsched generate -m 5 -n 20 --seed 7 > matrix.csv
//	lstsched greedy matrix.csv
//
// A matrix file has one comma-separated row of processing times per
// machine. glog flags (-v, --logtostderr, ...) are accepted by every
// command.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lstsched/instance"
)

func main() {
	// glog reads its settings from the standard flag set; cobra fills it in.
	_ = flag.CommandLine.Parse(nil)
	defer glog.Flush()

	root := &cobra.Command{
		Use:           "lstsched",
		Short:         "2-approximate makespan scheduling on unrelated machines",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	root.AddCommand(newSolveCmd(), newGenerateCmd(), newGreedyCmd())

	if err := root.Execute(); err != nil {
		glog.Errorf("lstsched: %v", err)
		fmt.Fprintln(os.Stderr, "lstsched:", err)
		glog.Flush()
		os.Exit(1)
	}
}

// readMatrix loads a matrix from path, or from stdin when path is "-".
func readMatrix(path string, stdin io.Reader) (*instance.Matrix, error) {
	if path == "-" {
		return instance.ReadCSV(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := instance.ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}
