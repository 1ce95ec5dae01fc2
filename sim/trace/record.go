// Package trace records what a generation run produced: every emitted event,
// every fork, suppressed forks and how the run ended.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// EventRecord captures one generated (non-header) trace line.
type EventRecord struct {
	Seq  int // position among generated lines, starting at 0
	PID  int
	Kind string // wire token, e.g. "diskread"
	Arg  int
	// HasArg is false for keyboardread and diskwrite.
	HasArg bool
}

// ForkRecord captures a PID handed out by fork. The two seed processes are
// recorded with Parent 0.
type ForkRecord struct {
	Parent int
	Child  int
}

// SuppressionRecord captures a fork outcome that was downgraded to run
// because the PID pool was empty.
type SuppressionRecord struct {
	Seq int
	PID int
}

// Termination names the condition that stopped generation.
type Termination string

const (
	// TerminationQueueEmpty means every queued process was generated.
	TerminationQueueEmpty Termination = "queue-empty"
	// TerminationPoolEmpty means the PID pool ran dry; remaining queued PIDs
	// were never generated.
	TerminationPoolEmpty Termination = "pool-empty"
)
