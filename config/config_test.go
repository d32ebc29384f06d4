package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lstsched/config"
	"github.com/katalvlaran/lstsched/solver"
)

func TestParse_Defaults(t *testing.T) {
	c, err := config.Parse([]byte("search:\n  prefetch: true\n"))
	require.NoError(t, err)
	assert.True(t, c.Search.Prefetch)
	assert.Equal(t, solver.DefaultTimeout, c.Solver.Timeout)
	assert.Equal(t, solver.DefaultEpsilon, c.Solver.Epsilon)
	assert.Equal(t, solver.DefaultNodeLimit, c.Solver.NodeLimit)
	assert.Equal(t, config.FormatText, c.Output.Format)
	assert.Len(t, c.SearchOptions(), 3)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	data := "solver:\n  timeout: 1500ms\n  epsilon: 0.000001\n  node_limit: 50\noutput:\n  format: csv\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	c, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, c.Solver.Timeout)
	assert.InDelta(t, 1e-6, c.Solver.Epsilon, 1e-12)
	assert.Equal(t, 50, c.Solver.NodeLimit)
	assert.Equal(t, config.FormatCSV, c.Output.Format)
	assert.Len(t, c.DecisionOptions(), 3)
}

func TestParse_ZeroTimeoutDisablesBudget(t *testing.T) {
	c, err := config.Parse([]byte("solver:\n  timeout: 0s\n"))
	require.NoError(t, err)
	assert.Zero(t, c.Solver.Timeout)
	assert.Positive(t, config.Default().Solver.Timeout)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"negative timeout": "solver:\n  timeout: -1s\n",
		"epsilon too big":  "solver:\n  epsilon: 0.5\n",
		"zero node limit":  "solver:\n  node_limit: 0\n",
		"unknown format":   "output:\n  format: xml\n",
		"not yaml":         "solver: [",
	}
	for name, data := range cases {
		_, err := config.Parse([]byte(data))
		require.ErrorIs(t, err, config.ErrInvalid, name)
	}

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, config.ErrInvalid)
}
