package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/proctrace/sim"
)

// resolveConfig builds the generator config: defaults, then the --config
// file, then any flag the user set explicitly. Flags left at their default
// never overwrite file values.
func resolveConfig(cmd *cobra.Command) (*sim.GeneratorConfig, error) {
	var cfg *sim.GeneratorConfig
	if configPath != "" {
		loaded, err := sim.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		logrus.Infof("Loaded generator config from %s", configPath)
		cfg = loaded
	} else {
		def := sim.DefaultConfig()
		cfg = &def
	}

	if cmd.Flags().Changed("output") {
		cfg.OutputPath = outputPath
	}
	if cmd.Flags().Changed("process-length") {
		cfg.ProcessLength = processLength
	}
	if cmd.Flags().Changed("max-processes") {
		cfg.MaxProcesses = maxProcesses
	}

	if cfg.OutputPath == "" {
		return nil, &sim.ConfigurationError{Field: "output", Reason: "path must not be empty"}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("generator config: %w", err)
	}
	return cfg, nil
}

// resolveSeed prefers --seed, then the config file seed, then the clock.
func resolveSeed(cmd *cobra.Command, cfg *sim.GeneratorConfig) int64 {
	if cmd.Flags().Changed("seed") {
		return seed
	}
	if cfg.Seed != nil {
		return *cfg.Seed
	}
	s := sim.ClockSeed()
	logrus.Infof("No seed given; using %d (pass --seed %d to reproduce)", s, s)
	return s
}
