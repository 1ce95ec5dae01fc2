package sim

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultOutputPath is where the trace is written when no path is given.
const DefaultOutputPath = "processes.dat"

// ConfigurationError reports a generator parameter that cannot produce a
// well-formed trace.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

// IntRange is a half-open stepped range: Start, Start+Step, ... < Stop.
type IntRange struct {
	Start int `yaml:"start"`
	Stop  int `yaml:"stop"`
	Step  int `yaml:"step"`
}

// Len returns the number of reachable values.
func (r IntRange) Len() int {
	span := r.Stop - r.Start
	n := span / r.Step
	if span%r.Step != 0 {
		n++
	}
	return n
}

// Values lists every reachable value in ascending order.
func (r IntRange) Values() []int {
	n := r.Len()
	out := make([]int, 0, n)
	for k := 0; k < n; k++ {
		out = append(out, r.Start+k*r.Step)
	}
	return out
}

// Sample draws one reachable value uniformly.
func (r IntRange) Sample(src Source) int {
	return r.Start + r.Step*src.Intn(r.Len())
}

func (r IntRange) validate(field string) error {
	if r.Step <= 0 {
		return &ConfigurationError{Field: field + ".step", Reason: fmt.Sprintf("must be positive, got %d", r.Step)}
	}
	if r.Stop <= r.Start {
		return &ConfigurationError{Field: field, Reason: fmt.Sprintf("empty range [%d, %d)", r.Start, r.Stop)}
	}
	// Stop > Start, so a non-positive span means Stop-Start wrapped.
	if r.Stop-r.Start <= 0 {
		return &ConfigurationError{Field: field, Reason: fmt.Sprintf("range [%d, %d) too wide", r.Start, r.Stop)}
	}
	return nil
}

// GeneratorConfig holds every tunable of a generation run.
// Loaded from YAML via LoadConfig(path) or built from DefaultConfig().
type GeneratorConfig struct {
	ProcessLength  int          `yaml:"process_length"` // events emitted per process
	MaxProcesses   int          `yaml:"max_processes"`  // pool holds PIDs [3, MaxProcesses)
	RunRange       IntRange     `yaml:"run"`
	DiskReadRange  IntRange     `yaml:"diskread"`
	SemaphoreRange IntRange     `yaml:"semaphore"`
	Profiles       ProfileTable `yaml:"profiles"`
	Seed           *int64       `yaml:"seed,omitempty"` // nil = caller picks
	OutputPath     string       `yaml:"output,omitempty"`
}

// DefaultConfig returns the stock parameters: 15 events per process, PIDs
// below 10, run durations {10..90 step 20}, disk reads {10, 20} and
// semaphores {0, 1, 2}.
func DefaultConfig() GeneratorConfig {
	return GeneratorConfig{
		ProcessLength:  15,
		MaxProcesses:   10,
		RunRange:       IntRange{Start: 10, Stop: 100, Step: 20},
		DiskReadRange:  IntRange{Start: 10, Stop: 30, Step: 10},
		SemaphoreRange: IntRange{Start: 0, Stop: 3, Step: 1},
		Profiles:       DefaultProfiles(),
		OutputPath:     DefaultOutputPath,
	}
}

// Validate returns a *ConfigurationError for the first invalid field.
func (c *GeneratorConfig) Validate() error {
	if c.ProcessLength <= 0 {
		return &ConfigurationError{Field: "process_length", Reason: fmt.Sprintf("must be positive, got %d", c.ProcessLength)}
	}
	if c.MaxProcesses < int(firstPoolPID) {
		return &ConfigurationError{Field: "max_processes", Reason: fmt.Sprintf("must be at least %d, got %d", firstPoolPID, c.MaxProcesses)}
	}
	if err := c.RunRange.validate("run"); err != nil {
		return err
	}
	if err := c.DiskReadRange.validate("diskread"); err != nil {
		return err
	}
	if err := c.SemaphoreRange.validate("semaphore"); err != nil {
		return err
	}
	return c.Profiles.Validate()
}

// LoadConfig reads a YAML config and overlays it on DefaultConfig().
// Keys absent from the file keep their defaults; unknown keys are rejected.
func LoadConfig(path string) (*GeneratorConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading generator config: %w", err)
	}
	cfg := DefaultConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing generator config %s: %w", path, err)
	}
	return &cfg, nil
}
