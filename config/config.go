// Package config loads run settings from YAML and turns them into
// package options.
//
// Example file:
//
//	solver:
//	  timeout: 30s
//	  epsilon: 1e-9
//	  node_limit: 20000
//	search:
//	  prefetch: true
//	output:
//	  format: yaml
//
// Missing keys keep their defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lstsched/decision"
	"github.com/katalvlaran/lstsched/search"
	"github.com/katalvlaran/lstsched/solver"
)

// ErrInvalid is returned for unreadable files and out-of-range values.
var ErrInvalid = errors.New("config: invalid configuration")

// Output formats.
const (
	FormatText = "text"
	FormatCSV  = "csv"
	FormatYAML = "yaml"
)

// Config is the on-disk configuration.
type Config struct {
	Solver Solver `yaml:"solver"`
	Search Search `yaml:"search"`
	Output Output `yaml:"output"`
}

// Solver tunes every LP solve.
type Solver struct {
	Timeout   time.Duration `yaml:"timeout"`
	Epsilon   float64       `yaml:"epsilon"`
	NodeLimit int           `yaml:"node_limit"`
}

// Search tunes the binary search.
type Search struct {
	Prefetch bool `yaml:"prefetch"`
}

// Output selects the report format.
type Output struct {
	Format string `yaml:"format"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Solver: Solver{
			Timeout:   solver.DefaultTimeout,
			Epsilon:   solver.DefaultEpsilon,
			NodeLimit: solver.DefaultNodeLimit,
		},
		Output: Output{Format: FormatText},
	}
}

// Load reads and validates the file at path on top of Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(data []byte) (*Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch {
	case c.Solver.Timeout < 0:
		return fmt.Errorf("%w: solver.timeout %v is negative", ErrInvalid, c.Solver.Timeout)
	case c.Solver.Epsilon < 0 || c.Solver.Epsilon >= 0.5:
		return fmt.Errorf("%w: solver.epsilon %g outside [0,0.5)", ErrInvalid, c.Solver.Epsilon)
	case c.Solver.NodeLimit <= 0:
		return fmt.Errorf("%w: solver.node_limit %d must be positive", ErrInvalid, c.Solver.NodeLimit)
	}
	switch c.Output.Format {
	case FormatText, FormatCSV, FormatYAML:
	default:
		return fmt.Errorf("%w: output.format %q", ErrInvalid, c.Output.Format)
	}
	return nil
}

// SearchOptions converts c into search.Run options.
func (c *Config) SearchOptions() []search.Option {
	return []search.Option{
		search.WithSolveTimeout(c.Solver.Timeout),
		search.WithEpsilon(c.Solver.Epsilon),
		search.WithPrefetch(c.Search.Prefetch),
	}
}

// DecisionOptions converts c into decision options, for Exact.
func (c *Config) DecisionOptions() []decision.Option {
	return []decision.Option{
		decision.WithTimeout(c.Solver.Timeout),
		decision.WithEpsilon(c.Solver.Epsilon),
		decision.WithNodeLimit(c.Solver.NodeLimit),
	}
}
