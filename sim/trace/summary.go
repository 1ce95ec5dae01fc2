package trace

// GenerationSummary aggregates statistics from a GenerationTrace.
type GenerationSummary struct {
	TotalEvents          int            `yaml:"total_events"` // generated lines, headers excluded
	KindCounts           map[string]int `yaml:"kind_counts"`
	ProcessesGenerated   int            `yaml:"processes_generated"`
	EventsPerProcess     map[int]int    `yaml:"events_per_process"`
	MeanEventsPerProcess float64        `yaml:"mean_events_per_process"`
	SeedForks            int            `yaml:"seed_forks"`   // forks issued by PID 0
	ForksIssued          int            `yaml:"forks_issued"` // forks issued by generated processes
	ForksSuppressed      int            `yaml:"forks_suppressed"`
	MaxPID               int            `yaml:"max_pid"`
	DroppedPIDs          []int          `yaml:"dropped_pids"`
	Termination          Termination    `yaml:"termination"`
}

// Summarize computes aggregate statistics from a GenerationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(gt *GenerationTrace) *GenerationSummary {
	summary := &GenerationSummary{
		KindCounts:       make(map[string]int),
		EventsPerProcess: make(map[int]int),
		DroppedPIDs:      make([]int, 0),
	}
	if gt == nil {
		return summary
	}

	summary.TotalEvents = len(gt.Events)
	for _, e := range gt.Events {
		summary.KindCounts[e.Kind]++
		summary.EventsPerProcess[e.PID]++
	}

	summary.ProcessesGenerated = len(gt.Processed)
	if summary.ProcessesGenerated > 0 {
		summary.MeanEventsPerProcess = float64(summary.TotalEvents) / float64(summary.ProcessesGenerated)
	}

	for _, f := range gt.Forks {
		if f.Parent == 0 {
			summary.SeedForks++
		} else {
			summary.ForksIssued++
		}
		if f.Child > summary.MaxPID {
			summary.MaxPID = f.Child
		}
	}
	summary.ForksSuppressed = len(gt.Suppressions)
	summary.DroppedPIDs = append(summary.DroppedPIDs, gt.Dropped...)
	summary.Termination = gt.Termination

	return summary
}
