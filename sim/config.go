package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/inference-sim/coresim/sim/trace"
)

// SimConfig holds run configuration, loadable from a YAML file.
// Zero values mean "not set in YAML" and do not override CLI defaults.
type SimConfig struct {
	Cores      int    `yaml:"cores"`
	Scheme     string `yaml:"scheme"`
	Quantum    int64  `yaml:"quantum"`
	TraceLevel string `yaml:"trace_level"`
}

// LoadSimConfig reads and parses a YAML run configuration file.
func LoadSimConfig(path string) (*SimConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sim config: %w", err)
	}
	var cfg SimConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing sim config: %w", err)
	}
	return &cfg, nil
}

// Validate checks that every set field holds a usable value.
// Quantum is required only when the scheme is round robin.
func (c *SimConfig) Validate() error {
	if c.Cores < 0 {
		return fmt.Errorf("cores must be positive, got %d", c.Cores)
	}
	if c.Scheme != "" && !IsValidScheme(c.Scheme) {
		return fmt.Errorf("unknown scheme %q", c.Scheme)
	}
	if c.Quantum < 0 {
		return fmt.Errorf("quantum must be non-negative, got %d", c.Quantum)
	}
	if c.Scheme != "" {
		if s, _ := ParseScheme(c.Scheme); s == RR && c.Quantum == 0 {
			return fmt.Errorf("scheme rr requires a positive quantum")
		}
	}
	if !trace.IsValidTraceLevel(c.TraceLevel) {
		return fmt.Errorf("unknown trace level %q", c.TraceLevel)
	}
	return nil
}
