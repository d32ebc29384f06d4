package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lstsched/config"
)

const referenceCSV = "2,4,3,2\n3,1,6,2\n1,3,2,5\n"

func TestRunSolve_Formats(t *testing.T) {
	ctx := context.Background()

	cfg := config.Default()
	var out bytes.Buffer
	require.NoError(t, runSolve(ctx, strings.NewReader(referenceCSV), &out, "-", cfg, solveFlags{exact: true, ip: true, fractional: true}))
	assert.Contains(t, out.String(), "Greedy makespan: t = 3")
	assert.Contains(t, out.String(), "IP(P, d, t) at d = 3: makespan 3")
	assert.Contains(t, out.String(), "x at d = 3, LP makespan")
	assert.Contains(t, out.String(), "Optimal makespan: 3")
	assert.Contains(t, out.String(), "optimum")
	assert.Contains(t, out.String(), "deadline")

	cfg.Output.Format = config.FormatCSV
	out.Reset()
	require.NoError(t, runSolve(ctx, strings.NewReader(referenceCSV), &out, "-", cfg, solveFlags{}))
	assert.True(t, strings.HasPrefix(out.String(), "machine,jobs,load\n"))
	assert.Equal(t, 4, strings.Count(out.String(), "\n"))

	cfg.Output.Format = config.FormatYAML
	out.Reset()
	require.NoError(t, runSolve(ctx, strings.NewReader(referenceCSV), &out, "-", cfg, solveFlags{exact: true, ip: true}))
	assert.Contains(t, out.String(), "greedy_makespan: 3")
	assert.Contains(t, out.String(), "feasible: true")
	assert.Contains(t, out.String(), "optimum: 3")
	assert.NotContains(t, out.String(), "system:")
}

func TestRunSolve_BadInput(t *testing.T) {
	err := runSolve(context.Background(), strings.NewReader("1,x\n"), &bytes.Buffer{}, "-", config.Default(), solveFlags{})
	require.Error(t, err)
}

func TestCommands(t *testing.T) {
	var out bytes.Buffer
	gen := newGenerateCmd()
	gen.SetOut(&out)
	gen.SetArgs([]string{"-m", "2", "-n", "5", "--seed", "1"})
	require.NoError(t, gen.Execute())
	assert.Equal(t, 2, strings.Count(out.String(), "\n"))

	matrix := out.String()
	out.Reset()
	gr := newGreedyCmd()
	gr.SetIn(strings.NewReader(matrix))
	gr.SetOut(&out)
	gr.SetArgs([]string{"-"})
	require.NoError(t, gr.Execute())
	assert.Contains(t, out.String(), "list:")
	assert.Contains(t, out.String(), "min-time:")

	out.Reset()
	solve := newSolveCmd()
	solve.SetIn(strings.NewReader(referenceCSV))
	solve.SetOut(&out)
	solve.SetArgs([]string{"--format", "csv", "--prefetch", "-"})
	require.NoError(t, solve.Execute())
	assert.True(t, strings.HasPrefix(out.String(), "machine,jobs,load\n"))

	solve = newSolveCmd()
	solve.SetIn(strings.NewReader(referenceCSV))
	solve.SetArgs([]string{"--format", "xml", "-"})
	solve.SilenceErrors, solve.SilenceUsage = true, true
	require.ErrorIs(t, solve.Execute(), config.ErrInvalid)
}
