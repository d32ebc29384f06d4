package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lstsched/decision"
	"github.com/katalvlaran/lstsched/search"
)

// MachineRow is one CSV row.
type MachineRow struct {
	Machine int    `csv:"machine"`
	Jobs    string `csv:"jobs"`
	Load    int64  `csv:"load"`
}

// Summary is the YAML document of one run.
type Summary struct {
	RunID      string   `yaml:"run_id"`
	Machines   int      `yaml:"machines"`
	Jobs       int      `yaml:"jobs"`
	Greedy     int64    `yaml:"greedy_makespan"`
	Lower      int64    `yaml:"lower"`
	Upper      int64    `yaml:"upper"`
	Deadline   int64    `yaml:"deadline"`
	LPMakespan *float64 `yaml:"lp_makespan,omitempty"`
	Makespan   int64    `yaml:"makespan"`
	Optimum    *int64   `yaml:"optimum,omitempty"`
	IP         *IPRun   `yaml:"ip,omitempty"`
	Calls      int      `yaml:"calls"`
	Evaluated  int      `yaml:"evaluated"`
	Elapsed    string   `yaml:"elapsed"`
	Assignment []int    `yaml:"assignment"`
	Loads      []int64  `yaml:"loads"`
	System     *SysInfo `yaml:"system,omitempty"`
}

// IPRun is the integral reference solve at the found deadline.
type IPRun struct {
	D        int64  `yaml:"d"`
	Feasible bool   `yaml:"feasible"`
	Makespan int64  `yaml:"makespan,omitempty"`
	Nodes    int    `yaml:"nodes,omitempty"`
	Elapsed  string `yaml:"elapsed"`
}

// NewIPRun records the IntegralAt outcome at d; ip is nil when d was
// integrally infeasible.
func NewIPRun(d int64, ip *decision.Optimum, elapsed time.Duration) *IPRun {
	run := &IPRun{D: d, Elapsed: elapsed.String()}
	if ip != nil {
		run.Feasible, run.Makespan, run.Nodes = true, ip.Makespan, ip.Nodes
	}
	return run
}

// Summarize builds the Summary of res. Optimum, IP and System are left
// for the caller to fill in.
func Summarize(res *search.Result) *Summary {
	s := &Summary{
		RunID:      res.RunID,
		Machines:   res.Matrix.Machines(),
		Jobs:       res.Matrix.Jobs(),
		Greedy:     res.Greedy.Makespan,
		Lower:      res.Lower,
		Upper:      res.Upper,
		Deadline:   res.Deadline(),
		Makespan:   res.Makespan,
		Calls:      res.Calls,
		Evaluated:  res.Evaluated,
		Elapsed:    res.Elapsed.String(),
		Assignment: res.Assignment,
		Loads:      res.Loads,
	}
	if res.Best != nil {
		lp := res.Best.LPMakespan
		s.LPMakespan = &lp
	}
	return s
}

// jobsOf groups the jobs of assign by machine, in job order.
func jobsOf(assign []int, m int) [][]int {
	out := make([][]int, m)
	for j, i := range assign {
		out[i] = append(out[i], j)
	}
	return out
}

// Rows returns the per-machine rows of res.
func Rows(res *search.Result) []*MachineRow {
	byMachine := jobsOf(res.Assignment, res.Matrix.Machines())
	rows := make([]*MachineRow, len(byMachine))
	for i, js := range byMachine {
		ids := make([]string, len(js))
		for k, j := range js {
			ids[k] = strconv.Itoa(j)
		}
		rows[i] = &MachineRow{Machine: i, Jobs: strings.Join(ids, " "), Load: res.Loads[i]}
	}
	return rows
}

// WriteCSV writes Rows(res) with a header line.
func WriteCSV(w io.Writer, res *search.Result) error {
	if err := gocsv.Marshal(Rows(res), w); err != nil {
		return fmt.Errorf("report: csv: %w", err)
	}
	return nil
}

// WriteYAML encodes s.
func WriteYAML(w io.Writer, s *Summary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("report: yaml: %w", err)
	}
	return enc.Close()
}

// Listing writes a per-machine listing followed by the bounds:
//
//	Machine 0: [ Job3 ] load 2
func Listing(w io.Writer, res *search.Result) error {
	n := res.Matrix.Jobs()
	width := len("Job" + strconv.Itoa(n-1))

	var b strings.Builder
	fmt.Fprintf(&b, "Pij: %d machines x %d jobs\n", res.Matrix.Machines(), n)
	fmt.Fprintf(&b, "Greedy makespan: t = %d\n", res.Greedy.Makespan)
	if res.Best == nil && res.Upper < res.Greedy.Makespan {
		fmt.Fprintf(&b, "Deadline: d = %d (greedy schedule, smallest accepted d = %d)\n", res.Deadline(), res.Upper)
	} else {
		fmt.Fprintf(&b, "Deadline: d = %d\n", res.Deadline())
	}
	if res.Best != nil {
		fmt.Fprintf(&b, "LP makespan = %.4f\n", res.Best.LPMakespan)
	} else {
		b.WriteString("LP makespan = - (greedy schedule kept)\n")
	}
	fmt.Fprintf(&b, "Makespan = %d\n", res.Makespan)

	for i, js := range jobsOf(res.Assignment, res.Matrix.Machines()) {
		names := make([]string, len(js))
		for k, j := range js {
			names[k] = fmt.Sprintf("%-*s", width, "Job"+strconv.Itoa(j))
		}
		fmt.Fprintf(&b, "Machine %d: [ %s ] load %d\n", i, strings.Join(names, ", "), res.Loads[i])
	}
	fmt.Fprintf(&b, "Decide calls: %d, elapsed %v\n", res.Calls, res.Elapsed)

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteIP writes the one-line text form of run.
func WriteIP(w io.Writer, run *IPRun) error {
	var err error
	if run.Feasible {
		_, err = fmt.Fprintf(w, "IP(P, d, t) at d = %d: makespan %d, %d nodes, %s\n", run.D, run.Makespan, run.Nodes, run.Elapsed)
	} else {
		_, err = fmt.Fprintf(w, "IP(P, d, t) at d = %d: infeasible, %s\n", run.D, run.Elapsed)
	}
	return err
}

// Fractional writes the LP solution a decision was rounded from, one row
// of x_ij per machine. Pairs without a variable print as "-".
//
//	x at d = 3, LP makespan 2.5000
//	Machine 0: [ -      0.5000 1.0000 ]
func Fractional(w io.Writer, sol *decision.Solution, m, n int) error {
	var b strings.Builder
	fmt.Fprintf(&b, "x at d = %d, LP makespan %.4f\n", sol.D, sol.LPMakespan)

	modeled := make(map[[2]int]bool, len(sol.Fractional))
	for _, e := range sol.Fractional {
		modeled[[2]int{e.Machine, e.Job}] = true
	}
	for i := 0; i < m; i++ {
		cells := make([]string, n)
		for j := 0; j < n; j++ {
			if !modeled[[2]int{i, j}] {
				cells[j] = fmt.Sprintf("%-6s", "-")
				continue
			}
			cells[j] = fmt.Sprintf("%.4f", sol.Fractional.Value(i, j))
		}
		fmt.Fprintf(&b, "Machine %d: [ %s ]\n", i, strings.Join(cells, " "))
	}

	_, err := io.WriteString(w, b.String())
	return err
}
