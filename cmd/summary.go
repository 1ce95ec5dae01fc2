package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/inference-sim/proctrace/sim"
	"github.com/inference-sim/proctrace/sim/trace"
)

// renderSummary prints per-kind counts and run totals as tables.
func renderSummary(w io.Writer, s *trace.GenerationSummary) {
	kinds := tablewriter.NewWriter(w)
	kinds.SetHeader([]string{"Kind", "Count", "Share"})
	for _, k := range sim.EventKinds() {
		count := s.KindCounts[k.String()]
		share := 0.0
		if s.TotalEvents > 0 {
			share = 100 * float64(count) / float64(s.TotalEvents)
		}
		kinds.Append([]string{k.String(), strconv.Itoa(count), fmt.Sprintf("%.1f%%", share)})
	}
	kinds.SetFooter([]string{"total", strconv.Itoa(s.TotalEvents), ""})
	kinds.Render()

	totals := tablewriter.NewWriter(w)
	totals.SetHeader([]string{"Metric", "Value"})
	totals.AppendBulk([][]string{
		{"processes generated", strconv.Itoa(s.ProcessesGenerated)},
		{"mean events/process", fmt.Sprintf("%.2f", s.MeanEventsPerProcess)},
		{"forks issued", strconv.Itoa(s.ForksIssued)},
		{"forks suppressed", strconv.Itoa(s.ForksSuppressed)},
		{"highest pid", strconv.Itoa(s.MaxPID)},
		{"dropped pids", fmt.Sprint(s.DroppedPIDs)},
		{"termination", string(s.Termination)},
	})
	totals.Render()
}

// writeSummaryYAML writes the summary to path as YAML.
func writeSummaryYAML(path string, s *trace.GenerationSummary) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling summary: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}
