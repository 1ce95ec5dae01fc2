// Defines the event kinds and the Event record emitted into a process trace.
// One Event renders as one line of processes.dat.

package sim

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// PID identifies a simulated process. PID 0 is the operating system itself.
type PID int

const (
	// osPID is the notional parent of the two seed processes.
	osPID PID = 0
	// firstPoolPID is the lowest PID handed out by fork.
	firstPoolPID PID = 3
)

// seedPIDs are created by the operating system before generation starts.
var seedPIDs = []PID{1, 2}

// EventKind is the category of simulated process activity.
type EventKind int

const (
	KindRun EventKind = iota
	KindDiskRead
	KindKeyboardRead
	KindDiskWrite
	KindDown
	KindUp
	KindFork
)

var kindNames = [...]string{
	KindRun:          "run",
	KindDiskRead:     "diskread",
	KindKeyboardRead: "keyboardread",
	KindDiskWrite:    "diskwrite",
	KindDown:         "down",
	KindUp:           "up",
	KindFork:         "fork",
}

// EventKinds returns every kind in wire order.
func EventKinds() []EventKind {
	return []EventKind{KindRun, KindDiskRead, KindKeyboardRead, KindDiskWrite, KindDown, KindUp, KindFork}
}

// IsValid reports whether k is one of the declared kinds.
func (k EventKind) IsValid() bool {
	return k >= KindRun && k <= KindFork
}

func (k EventKind) String() string {
	if !k.IsValid() {
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
	return kindNames[k]
}

// HasArg reports whether lines of this kind carry a third field.
// keyboardread and diskwrite are the only argument-less kinds.
func (k EventKind) HasArg() bool {
	return k != KindKeyboardRead && k != KindDiskWrite
}

// ParseEventKind maps a wire token back to its kind.
func ParseEventKind(s string) (EventKind, error) {
	for i, name := range kindNames {
		if name == s {
			return EventKind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown event kind %q", s)
}

// MarshalYAML writes the kind as its wire token.
func (k EventKind) MarshalYAML() (interface{}, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("cannot marshal invalid event kind %d", int(k))
	}
	return k.String(), nil
}

// UnmarshalYAML accepts the wire token (e.g. "diskread").
func (k *EventKind) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseEventKind(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*k = parsed
	return nil
}

// Event is one line of the trace: "<pid> <kind>[ <arg>]".
// Arg is ignored for kinds without an argument.
type Event struct {
	PID  PID
	Kind EventKind
	Arg  int
}

func (e Event) String() string {
	if e.Kind.HasArg() {
		return fmt.Sprintf("%d %s %d", e.PID, e.Kind, e.Arg)
	}
	return fmt.Sprintf("%d %s", e.PID, e.Kind)
}
