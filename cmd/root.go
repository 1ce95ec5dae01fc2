package cmd

import (
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/proctrace/sim"
	"github.com/inference-sim/proctrace/sim/trace"
)

var (
	// CLI flags for trace generation
	configPath    string // YAML generator config (optional)
	outputPath    string // Trace file to write
	seed          int64  // Seed for event selection; unset = clock-derived
	processLength int    // Events emitted per process
	maxProcesses  int    // Pool holds PIDs [3, maxProcesses)
	logLevel      string // Log verbosity level
	quiet         bool   // Suppress echo of generated lines
	showSummary   bool   // Print a summary table to stderr
	summaryOut    string // Write the summary as YAML to this path
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "proctrace",
	Short: "Synthetic process event trace generator for scheduler simulators",
}

// generateCmd writes a trace using parameters from the config file and CLI flags
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a process event trace",
	Long: "Generate a process event trace (fork, run, diskread, keyboardread, diskwrite, down, up) " +
		"and write it to --output, echoing each generated line to stdout.",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if err := runGenerate(cmd); err != nil {
			logrus.Fatalf("Trace generation failed: %v", err)
		}
	},
}

// runGenerate resolves configuration, generates the trace and reports on it.
func runGenerate(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	runSeed := resolveSeed(cmd, cfg)

	var echo io.Writer = cmd.OutOrStdout()
	if quiet {
		echo = nil
	}

	logrus.Infof("Generating trace: output=%s, process_length=%d, max_processes=%d, seed=%d",
		cfg.OutputPath, cfg.ProcessLength, cfg.MaxProcesses, runSeed)

	g, err := sim.NewGenerator(*cfg, sim.NewSource(runSeed), echo)
	if err != nil {
		return err
	}
	gt, err := g.GenerateFile(cfg.OutputPath)
	if err != nil {
		return err
	}

	summary := trace.Summarize(gt)
	logCompletion(cfg.OutputPath, summary)

	if showSummary {
		renderSummary(cmd.ErrOrStderr(), summary)
	}
	if summaryOut != "" {
		if err := writeSummaryYAML(summaryOut, summary); err != nil {
			return err
		}
	}
	return nil
}

// logCompletion reports how much was written to path. A failed stat only
// loses the file size, so it is logged at debug level.
func logCompletion(path string, summary *trace.GenerationSummary) {
	info, err := os.Stat(path)
	if err != nil {
		logrus.Debugf("Cannot stat %s for completion report: %v", path, err)
		logrus.Infof("Wrote %s events to %s; termination=%s",
			humanize.Comma(int64(summary.TotalEvents)), path, summary.Termination)
		return
	}
	logrus.Infof("Wrote %s events (%s) to %s; termination=%s",
		humanize.Comma(int64(summary.TotalEvents)), humanize.Bytes(uint64(info.Size())),
		path, summary.Termination)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// registerGenerateFlags binds the generate flags to cmd. Defaults come from
// sim.DefaultConfig so an unset flag never disagrees with the config layer.
func registerGenerateFlags(cmd *cobra.Command) {
	def := sim.DefaultConfig()

	cmd.Flags().StringVar(&configPath, "config", "", "Path to YAML generator config (print one with: proctrace defaults)")
	cmd.Flags().StringVar(&outputPath, "output", def.OutputPath, "Trace file to write (overwritten)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed for random event generation (default: derived from the clock)")
	cmd.Flags().IntVar(&processLength, "process-length", def.ProcessLength, "Events generated per process")
	cmd.Flags().IntVar(&maxProcesses, "max-processes", def.MaxProcesses, "Exclusive upper bound on PIDs; forks draw from [3, max-processes)")
	cmd.Flags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "Do not echo generated lines to stdout")
	cmd.Flags().BoolVar(&showSummary, "summary", false, "Print a summary table to stderr")
	cmd.Flags().StringVar(&summaryOut, "summary-out", "", "Write the run summary as YAML to this path")
}

// init sets up CLI flags and subcommands
func init() {
	registerGenerateFlags(generateCmd)

	// Attach `generate` as a subcommand to `root`
	rootCmd.AddCommand(generateCmd)
}
