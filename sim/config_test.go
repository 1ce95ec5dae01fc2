package sim

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestIntRange_Values_StepConstrainsReachableSet(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, []int{10, 30, 50, 70, 90}, cfg.RunRange.Values())
	assert.Equal(t, []int{10, 20}, cfg.DiskReadRange.Values())
	assert.Equal(t, []int{0, 1, 2}, cfg.SemaphoreRange.Values())
}

func TestIntRange_Len_MatchesValues(t *testing.T) {
	for _, r := range []IntRange{{10, 100, 20}, {10, 30, 10}, {0, 3, 1}, {0, 1, 5}, {5, 6, 1}} {
		assert.Equal(t, len(r.Values()), r.Len(), "%+v", r)
	}
}

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 15, cfg.ProcessLength)
	assert.Equal(t, 10, cfg.MaxProcesses)
	assert.Equal(t, DefaultOutputPath, cfg.OutputPath)
	assert.Nil(t, cfg.Seed)
}

func TestGeneratorConfig_Validate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GeneratorConfig)
		field  string
	}{
		{"zero process length", func(c *GeneratorConfig) { c.ProcessLength = 0 }, "process_length"},
		{"max processes below pool start", func(c *GeneratorConfig) { c.MaxProcesses = 2 }, "max_processes"},
		{"run step zero", func(c *GeneratorConfig) { c.RunRange.Step = 0 }, "run.step"},
		{"diskread empty", func(c *GeneratorConfig) { c.DiskReadRange = IntRange{30, 10, 10} }, "diskread"},
		{"semaphore empty", func(c *GeneratorConfig) { c.SemaphoreRange = IntRange{0, 0, 1} }, "semaphore"},
		{"no profiles", func(c *GeneratorConfig) { c.Profiles = nil }, "profiles"},
		{"run span overflows", func(c *GeneratorConfig) { c.RunRange = IntRange{math.MinInt/2 - 10, math.MaxInt/2 + 10, 1} }, "run"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			var cfgErr *ConfigurationError
			require.True(t, errors.As(err, &cfgErr), "expected ConfigurationError, got %v", err)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestGeneratorConfig_Validate_MaxProcessesThree_Allowed(t *testing.T) {
	// An empty pool is legal: the run emits only the header.
	cfg := DefaultConfig()
	cfg.MaxProcesses = 3
	assert.NoError(t, cfg.Validate())
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadConfig_PartialFile_KeepsDefaults(t *testing.T) {
	// GIVEN a config overriding only process_length and the run range
	path := writeConfig(t, "process_length: 4\nrun:\n  start: 5\n  stop: 50\n  step: 5\nseed: 7\n")

	// WHEN loaded
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	// THEN overridden keys change and the rest keep their defaults
	def := DefaultConfig()
	assert.Equal(t, 4, cfg.ProcessLength)
	assert.Equal(t, IntRange{5, 50, 5}, cfg.RunRange)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(7), *cfg.Seed)
	assert.Equal(t, def.MaxProcesses, cfg.MaxProcesses)
	assert.Equal(t, def.DiskReadRange, cfg.DiskReadRange)
	assert.Equal(t, def.Profiles, cfg.Profiles)
	assert.Equal(t, def.OutputPath, cfg.OutputPath)
}

func TestLoadConfig_Profiles_ReplaceDefaultTable(t *testing.T) {
	path := writeConfig(t, `profiles:
  - [{kind: run, p: 0.5}, {kind: fork, p: 1.0}]
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ProfileTable{{{KindRun, 0.5}, {KindFork, 1.0}}}, cfg.Profiles)
}

func TestLoadConfig_EmptyFile_Defaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), *cfg)
}

func TestLoadConfig_UnknownKey_Rejected(t *testing.T) {
	// Typos must not be silently ignored.
	_, err := LoadConfig(writeConfig(t, "proces_length: 4\n"))
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile_Error(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDefaultConfig_YAMLRoundTrip(t *testing.T) {
	// GIVEN the default config marshalled to YAML
	def := DefaultConfig()
	data, err := yaml.Marshal(&def)
	require.NoError(t, err)

	// WHEN loaded back through LoadConfig
	cfg, err := LoadConfig(writeConfig(t, string(data)))
	require.NoError(t, err)

	// THEN it is unchanged
	assert.Equal(t, def, *cfg)
}

func TestIntRange_Len_HugeStep_NoOverflow(t *testing.T) {
	// GIVEN a range whose step dwarfs its span
	r := IntRange{Start: 5, Stop: 10, Step: math.MaxInt}

	// THEN it is valid and has exactly one reachable value
	assert.NoError(t, r.validate("run"))
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, []int{5}, r.Values())
}

func TestLoadConfig_NaNThreshold_Rejected(t *testing.T) {
	path := writeConfig(t, `profiles:
  - [{kind: run, p: 0.9}, {kind: diskread, p: .nan}, {kind: up, p: 0.1}, {kind: fork, p: 1.0}]
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	var cfgErr *ConfigurationError
	require.True(t, errors.As(cfg.Validate(), &cfgErr))
	assert.Equal(t, "profiles[0][1]", cfgErr.Field)
}
