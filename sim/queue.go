// Implements the WorkQueue of processes awaiting event generation and the
// PIDPool that fork draws new process identifiers from.

package sim

import (
	"fmt"
	"strings"
)

// WorkQueue is a FIFO of PIDs waiting for their events to be generated.
// Forked children are appended to the back, so generation walks the fork
// tree breadth-first.
type WorkQueue struct {
	queue []PID
}

// Enqueue adds a PID to the back of the queue.
func (wq *WorkQueue) Enqueue(pid PID) {
	wq.queue = append(wq.queue, pid)
}

// Dequeue removes the PID at the front of the queue.
// ok is false if the queue is empty.
func (wq *WorkQueue) Dequeue() (pid PID, ok bool) {
	if len(wq.queue) == 0 {
		return 0, false
	}
	pid = wq.queue[0]
	wq.queue = wq.queue[1:]
	return pid, true
}

// Len returns the number of queued PIDs.
func (wq *WorkQueue) Len() int {
	return len(wq.queue)
}

// Items returns the queued PIDs front to back.
// The returned slice is a copy.
func (wq *WorkQueue) Items() []PID {
	return append([]PID(nil), wq.queue...)
}

func (wq *WorkQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, pid := range wq.queue {
		sb.WriteString(fmt.Sprint(int(pid)))
		if i < len(wq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// PIDPool hands out unused PIDs in ascending order. It is never
// replenished, so every PID is issued at most once. Only the next PID and
// the limit are stored.
type PIDPool struct {
	next  PID
	limit PID
}

// NewPIDPool returns a pool holding [first, limit).
// The pool is empty when limit <= first.
func NewPIDPool(first, limit PID) *PIDPool {
	if limit < first {
		limit = first
	}
	return &PIDPool{next: first, limit: limit}
}

// Allocate removes and returns the lowest unused PID.
// ok is false once the pool is exhausted.
func (p *PIDPool) Allocate() (pid PID, ok bool) {
	if p.next >= p.limit {
		return 0, false
	}
	pid = p.next
	p.next++
	return pid, true
}

// Len returns the number of PIDs still available.
func (p *PIDPool) Len() int {
	return int(p.limit - p.next)
}
