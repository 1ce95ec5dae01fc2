package trace

// GenerationTrace collects records during a single generation run.
type GenerationTrace struct {
	Events       []EventRecord
	Forks        []ForkRecord
	Suppressions []SuppressionRecord
	Processed    []int // PIDs in the order their events were generated
	Dropped      []int // PIDs still queued when generation stopped
	Termination  Termination
}

// NewGenerationTrace creates a GenerationTrace ready for recording.
func NewGenerationTrace() *GenerationTrace {
	return &GenerationTrace{
		Events:       make([]EventRecord, 0),
		Forks:        make([]ForkRecord, 0),
		Suppressions: make([]SuppressionRecord, 0),
		Processed:    make([]int, 0),
		Dropped:      make([]int, 0),
	}
}

// RecordEvent appends a generated event.
func (gt *GenerationTrace) RecordEvent(record EventRecord) {
	gt.Events = append(gt.Events, record)
}

// RecordFork appends a PID allocation.
func (gt *GenerationTrace) RecordFork(record ForkRecord) {
	gt.Forks = append(gt.Forks, record)
}

// RecordSuppression appends a fork that was downgraded to run.
func (gt *GenerationTrace) RecordSuppression(record SuppressionRecord) {
	gt.Suppressions = append(gt.Suppressions, record)
}

// RecordProcess marks pid as the process now being generated.
func (gt *GenerationTrace) RecordProcess(pid int) {
	gt.Processed = append(gt.Processed, pid)
}

// Finish stores the termination condition and the PIDs left in the queue.
func (gt *GenerationTrace) Finish(reason Termination, dropped []int) {
	gt.Termination = reason
	gt.Dropped = append(gt.Dropped[:0], dropped...)
}
