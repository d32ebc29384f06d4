package report_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lstsched/decision"
	"github.com/katalvlaran/lstsched/greedy"
	"github.com/katalvlaran/lstsched/instance"
	"github.com/katalvlaran/lstsched/report"
	"github.com/katalvlaran/lstsched/search"
	"github.com/katalvlaran/lstsched/solver"
)

func fixture() *search.Result {
	p := instance.MustNew([][]int64{{2, 4, 3, 2}, {3, 1, 6, 2}, {1, 3, 2, 5}})
	return &search.Result{
		RunID:      "run-1",
		Matrix:     p,
		Greedy:     greedy.List(p),
		Lower:      3,
		Upper:      3,
		Assignment: []int{2, 1, 2, 0},
		Loads:      []int64{2, 1, 3},
		Makespan:   3,
		Calls:      2,
		Evaluated:  2,
	}
}

func TestListing(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Listing(&buf, fixture()))

	want := `Pij: 3 machines x 4 jobs
Greedy makespan: t = 3
Deadline: d = 3
LP makespan = - (greedy schedule kept)
Makespan = 3
Machine 0: [ Job3 ] load 2
Machine 1: [ Job1 ] load 1
Machine 2: [ Job0, Job2 ] load 3
Decide calls: 2, elapsed 0s
`
	assert.Equal(t, want, buf.String())
}

func TestListing_PadsJobNames(t *testing.T) {
	p := instance.MustNew([][]int64{make([]int64, 11)})
	res := &search.Result{
		Matrix:     p,
		Greedy:     greedy.List(p),
		Assignment: make([]int, 11),
		Loads:      []int64{0},
		Best:       &decision.Solution{D: 0, LPMakespan: 0},
	}
	var buf bytes.Buffer
	require.NoError(t, report.Listing(&buf, res))
	assert.Contains(t, buf.String(), "[ Job0 , Job1 , ")
	assert.Contains(t, buf.String(), "Job10 ]")
	assert.Contains(t, buf.String(), "LP makespan = 0.0000")
}

func TestListing_GreedyKeptBelowAcceptedDeadline(t *testing.T) {
	res := fixture()
	res.Upper = 2

	var buf bytes.Buffer
	require.NoError(t, report.Listing(&buf, res))
	assert.Contains(t, buf.String(), "Deadline: d = 3 (greedy schedule, smallest accepted d = 2)\n")
}

func TestFractional(t *testing.T) {
	sol := &decision.Solution{
		D:          3,
		LPMakespan: 2.5,
		Fractional: solver.Assignment{
			{Machine: 0, Job: 0, Value: 0.5},
			{Machine: 0, Job: 1, Value: 1},
			{Machine: 1, Job: 0, Value: 0.5},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, report.Fractional(&buf, sol, 2, 2))

	want := `x at d = 3, LP makespan 2.5000
Machine 0: [ 0.5000 1.0000 ]
Machine 1: [ 0.5000 -      ]
`
	assert.Equal(t, want, buf.String())
}

func TestWriteIP(t *testing.T) {
	var buf bytes.Buffer
	ip := &decision.Optimum{Makespan: 3, Nodes: 4}
	require.NoError(t, report.WriteIP(&buf, report.NewIPRun(3, ip, time.Millisecond)))
	assert.Equal(t, "IP(P, d, t) at d = 3: makespan 3, 4 nodes, 1ms\n", buf.String())

	buf.Reset()
	require.NoError(t, report.WriteIP(&buf, report.NewIPRun(2, nil, time.Millisecond)))
	assert.Equal(t, "IP(P, d, t) at d = 2: infeasible, 1ms\n", buf.String())
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteCSV(&buf, fixture()))
	assert.Equal(t, "machine,jobs,load\n0,3,2\n1,1,1\n2,0 2,3\n", buf.String())
}

func TestWriteYAML(t *testing.T) {
	s := report.Summarize(fixture())
	opt := int64(3)
	s.Optimum = &opt
	s.System = &report.SysInfo{Platform: "linux", CPU: "test", RAM: "1 GB"}
	s.IP = report.NewIPRun(3, &decision.Optimum{Makespan: 3, Nodes: 1}, time.Second)

	var buf bytes.Buffer
	require.NoError(t, report.WriteYAML(&buf, s))
	assert.True(t, strings.HasPrefix(buf.String(), "run_id: run-1\n"))
	assert.NotContains(t, buf.String(), "lp_makespan")

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, 3, doc["makespan"])
	assert.Equal(t, 3, doc["optimum"])
	assert.Equal(t, 3, doc["greedy_makespan"])
	assert.Equal(t, []any{2, 1, 2, 0}, doc["assignment"])
	assert.Equal(t, "linux", doc["system"].(map[string]any)["platform"])
	assert.Equal(t, true, doc["ip"].(map[string]any)["feasible"])
	assert.Equal(t, "1s", doc["ip"].(map[string]any)["elapsed"])
}
