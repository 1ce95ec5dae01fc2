// Implements the trace generation loop: seed two processes, then pop PIDs from
// the work queue and emit a fixed number of random events for each until the
// queue or the PID pool runs out.

package sim

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/proctrace/sim/trace"
)

// ErrNoMatchingThreshold is returned when a draw exceeds every threshold of
// a profile. Validated profiles end at 1.0, so this signals a Source that
// returned a value outside [0, 1).
var ErrNoMatchingThreshold = errors.New("draw matched no profile threshold")

// Generator produces one process trace per call to Generate.
//
// Thread-safety: NOT thread-safe. Must be called from a single goroutine.
type Generator struct {
	cfg  GeneratorConfig
	src  Source
	echo io.Writer // receives every generated line; nil disables echo
}

// NewGenerator validates cfg and returns a Generator drawing from src.
// Generated lines (but not the two header lines) are also written to echo
// when it is non-nil.
func NewGenerator(cfg GeneratorConfig, src Source, echo io.Writer) (*Generator, error) {
	if src == nil {
		return nil, fmt.Errorf("NewGenerator: src must not be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	for _, u := range cfg.Profiles.Unreachable() {
		logrus.Warnf("profile %d: %q ties the preceding threshold and can never be selected", u.Profile, u.Kind)
	}
	return &Generator{cfg: cfg, src: src, echo: echo}, nil
}

// Config returns the configuration the generator was built with.
func (g *Generator) Config() GeneratorConfig {
	return g.cfg
}

// GenerateFile writes a trace to path, replacing any existing file.
func (g *Generator) GenerateFile(path string) (*trace.GenerationTrace, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating trace file: %w", err)
	}
	defer func() { _ = file.Close() }()

	w := bufio.NewWriter(file)
	gt, err := g.Generate(w)
	if err != nil {
		return gt, fmt.Errorf("generating %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return gt, fmt.Errorf("flushing %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return gt, fmt.Errorf("closing %s: %w", path, err)
	}
	return gt, nil
}

// Generate writes a complete trace to w and returns what was generated.
// The first two lines are always "0 fork 1" and "0 fork 2".
func (g *Generator) Generate(w io.Writer) (*trace.GenerationTrace, error) {
	gt := trace.NewGenerationTrace()
	queue := &WorkQueue{}
	pool := NewPIDPool(firstPoolPID, PID(g.cfg.MaxProcesses))

	for _, pid := range seedPIDs {
		header := Event{PID: osPID, Kind: KindFork, Arg: int(pid)}
		if _, err := fmt.Fprintln(w, header); err != nil {
			return gt, fmt.Errorf("writing header: %w", err)
		}
		gt.RecordFork(trace.ForkRecord{Parent: int(osPID), Child: int(pid)})
		queue.Enqueue(pid)
	}

	seq := 0
	for queue.Len() > 0 && pool.Len() > 0 {
		pid, _ := queue.Dequeue()
		gt.RecordProcess(int(pid))
		logrus.Debugf("generating %d events for pid %d (queue=%v, pool=%d)", g.cfg.ProcessLength, pid, queue, pool.Len())

		for i := 0; i < g.cfg.ProcessLength; i++ {
			ev, err := g.nextEvent(pid, seq, queue, pool, gt)
			if err != nil {
				return gt, err
			}
			if err := g.emit(w, ev); err != nil {
				return gt, err
			}
			gt.RecordEvent(trace.EventRecord{
				Seq:    seq,
				PID:    int(ev.PID),
				Kind:   ev.Kind.String(),
				Arg:    ev.Arg,
				HasArg: ev.Kind.HasArg(),
			})
			seq++
		}
	}

	reason := trace.TerminationPoolEmpty
	if queue.Len() == 0 {
		reason = trace.TerminationQueueEmpty
	}
	dropped := make([]int, 0, queue.Len())
	for _, pid := range queue.Items() {
		dropped = append(dropped, int(pid))
	}
	if len(dropped) > 0 {
		logrus.Debugf("pid pool exhausted; %d queued pids never generated: %v", len(dropped), queue)
	}
	gt.Finish(reason, dropped)
	return gt, nil
}

// nextEvent draws one event for pid. A fork pops the pool and enqueues the
// child; with the pool empty it is downgraded to a run.
func (g *Generator) nextEvent(pid PID, seq int, queue *WorkQueue, pool *PIDPool, gt *trace.GenerationTrace) (Event, error) {
	u := g.src.Float64()
	kind, ok := g.cfg.Profiles.For(pid).Select(u)
	if !ok {
		return Event{}, fmt.Errorf("pid %d, draw %v: %w", pid, u, ErrNoMatchingThreshold)
	}

	ev := Event{PID: pid, Kind: kind}
	switch kind {
	case KindRun:
		ev.Arg = g.cfg.RunRange.Sample(g.src)
	case KindDiskRead:
		ev.Arg = g.cfg.DiskReadRange.Sample(g.src)
	case KindDown, KindUp:
		ev.Arg = g.cfg.SemaphoreRange.Sample(g.src)
	case KindFork:
		child, ok := pool.Allocate()
		if !ok {
			logrus.Debugf("pid %d: fork suppressed, pid pool empty", pid)
			gt.RecordSuppression(trace.SuppressionRecord{Seq: seq, PID: int(pid)})
			ev.Kind = KindRun
			ev.Arg = g.cfg.RunRange.Sample(g.src)
			break
		}
		queue.Enqueue(child)
		gt.RecordFork(trace.ForkRecord{Parent: int(pid), Child: int(child)})
		logrus.Debugf("pid %d forked pid %d", pid, child)
		ev.Arg = int(child)
	}
	return ev, nil
}

func (g *Generator) emit(w io.Writer, ev Event) error {
	line := ev.String()
	if _, err := fmt.Fprintln(w, line); err != nil {
		return fmt.Errorf("writing event %q: %w", line, err)
	}
	if g.echo != nil {
		if _, err := fmt.Fprintln(g.echo, line); err != nil {
			return fmt.Errorf("echoing event %q: %w", line, err)
		}
	}
	return nil
}
