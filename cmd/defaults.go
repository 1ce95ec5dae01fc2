package cmd

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/inference-sim/proctrace/sim"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the default generator config as YAML",
	Long:  "Print the built-in generator configuration as YAML. The output can be edited and passed back with `generate --config`.",
	Run: func(cmd *cobra.Command, args []string) {
		if err := writeDefaults(cmd.OutOrStdout()); err != nil {
			logrus.Fatalf("YAML marshal failed: %v", err)
		}
	},
}

// writeDefaults marshals sim.DefaultConfig to YAML and writes it to w.
func writeDefaults(w io.Writer) error {
	cfg := sim.DefaultConfig()
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, string(data))
	return err
}

func init() {
	rootCmd.AddCommand(defaultsCmd)
}
