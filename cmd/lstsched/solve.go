package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/lstsched/config"
	"github.com/katalvlaran/lstsched/decision"
	"github.com/katalvlaran/lstsched/instance"
	"github.com/katalvlaran/lstsched/report"
	"github.com/katalvlaran/lstsched/search"
	"github.com/katalvlaran/lstsched/solver"
)

type solveFlags struct {
	config     string
	timeout    time.Duration
	prefetch   bool
	format     string
	exact      bool
	ip         bool
	fractional bool
	sysinfo    bool
}

func newSolveCmd() *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "solve <matrix.csv|->",
		Short: "Run the binary search and print the best schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return runSolve(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), args[0], cfg, f)
		},
	}
	f.register(cmd.Flags())
	return cmd
}

func (f *solveFlags) register(fl *pflag.FlagSet) {
	fl.StringVar(&f.config, "config", "", "YAML configuration file")
	fl.DurationVar(&f.timeout, "timeout", solver.DefaultTimeout, "per-LP solve budget, 0 for none")
	fl.BoolVar(&f.prefetch, "prefetch", false, "evaluate upcoming deadlines concurrently")
	fl.StringVar(&f.format, "format", config.FormatText, "output format: text, csv or yaml")
	fl.BoolVar(&f.exact, "exact", false, "also compute the exact optimum (small instances only)")
	fl.BoolVar(&f.ip, "ip", false, "also solve IP(P, d, t) at the found deadline for reference")
	fl.BoolVar(&f.fractional, "fractional", false, "print the LP solution the schedule was rounded from")
	fl.BoolVar(&f.sysinfo, "sysinfo", true, "attach host information to yaml output")
}

// resolveConfig loads --config and lets explicitly set flags override it.
func resolveConfig(cmd *cobra.Command, f solveFlags) (*config.Config, error) {
	cfg := config.Default()
	if f.config != "" {
		var err error
		if cfg, err = config.Load(f.config); err != nil {
			return nil, err
		}
	}
	fl := cmd.Flags()
	if fl.Changed("timeout") {
		cfg.Solver.Timeout = f.timeout
	}
	if fl.Changed("prefetch") {
		cfg.Search.Prefetch = f.prefetch
	}
	if fl.Changed("format") {
		cfg.Output.Format = f.format
	}
	return cfg, cfg.Validate()
}

func runSolve(ctx context.Context, stdin io.Reader, w io.Writer, path string, cfg *config.Config, f solveFlags) error {
	p, err := readMatrix(path, stdin)
	if err != nil {
		return err
	}

	res, err := search.Run(ctx, p, cfg.SearchOptions()...)
	if err != nil {
		return err
	}

	var opt *decision.Optimum
	if f.exact {
		if opt, err = decision.Exact(ctx, p, cfg.DecisionOptions()...); err != nil {
			return err
		}
	}

	var ip *report.IPRun
	if f.ip {
		if ip, err = referenceIP(ctx, p, res.Upper, cfg); err != nil {
			return err
		}
	}

	switch cfg.Output.Format {
	case config.FormatCSV:
		return report.WriteCSV(w, res)
	case config.FormatYAML:
		s := report.Summarize(res)
		if opt != nil {
			s.Optimum = &opt.Makespan
		}
		s.IP = ip
		if f.sysinfo {
			info, err := report.CollectSysInfo()
			if err != nil {
				glog.Warningf("lstsched: %v", err)
			}
			s.System = &info
		}
		return report.WriteYAML(w, s)
	default:
		if err = report.Listing(w, res); err != nil {
			return err
		}
		if f.fractional && res.Best != nil {
			if err = report.Fractional(w, res.Best, p.Machines(), p.Jobs()); err != nil {
				return err
			}
		}
		if ip != nil {
			if err = report.WriteIP(w, ip); err != nil {
				return err
			}
		}
		if opt != nil {
			if _, err = fmt.Fprintf(w, "Optimal makespan: %d (%d nodes)\n", opt.Makespan, opt.Nodes); err != nil {
				return err
			}
		}
		_, err = fmt.Fprintln(w, summaryBox(res, opt))
		return err
	}
}

// referenceIP solves IP(P, d, t) at d; an integrally infeasible d is a
// result, not an error.
func referenceIP(ctx context.Context, p *instance.Matrix, d int64, cfg *config.Config) (*report.IPRun, error) {
	start := time.Now()
	opt, err := decision.IntegralAt(ctx, p, d, cfg.DecisionOptions()...)
	if err != nil && !decision.IsFailure(err) {
		return nil, err
	}
	return report.NewIPRun(d, opt, time.Since(start)), nil
}
