package sim

import (
	"fmt"
)

// Threshold pairs an event kind with the cumulative probability at which it
// stops being selected.
type Threshold struct {
	Kind       EventKind `yaml:"kind"`
	Cumulative float64   `yaml:"p"`
}

// Profile is an ordered cumulative-probability table. A draw u in [0,1)
// selects the first threshold whose Cumulative is >= u.
type Profile []Threshold

// ProfileTable holds one Profile per residue class; a PID uses
// table[pid mod len(table)].
type ProfileTable []Profile

// DefaultProfiles returns the three stock profiles.
//
// Profile 2 ends with two thresholds at 1.0, so its fork entry can never be
// selected. The table is kept as-is.
func DefaultProfiles() ProfileTable {
	return ProfileTable{
		{
			{KindRun, 0.3}, {KindDiskRead, 0.6}, {KindKeyboardRead, 0.8},
			{KindDiskWrite, 0.85}, {KindDown, 0.9}, {KindUp, 0.95}, {KindFork, 1.0},
		},
		{
			{KindRun, 0.6}, {KindDiskRead, 0.7}, {KindKeyboardRead, 0.8},
			{KindDiskWrite, 0.85}, {KindDown, 0.9}, {KindUp, 0.95}, {KindFork, 1.0},
		},
		{
			{KindRun, 0.5}, {KindDiskRead, 0.6}, {KindKeyboardRead, 0.7},
			{KindDiskWrite, 0.8}, {KindDown, 0.9}, {KindUp, 1.0}, {KindFork, 1.0},
		},
	}
}

// For returns the profile governing pid.
// The table must be non-empty (see Validate).
func (t ProfileTable) For(pid PID) Profile {
	return t[int(pid)%len(t)]
}

// Select returns the first kind whose cumulative threshold is >= u.
// ok is false when u exceeds every threshold.
func (p Profile) Select(u float64) (kind EventKind, ok bool) {
	for _, th := range p {
		if u <= th.Cumulative {
			return th.Kind, true
		}
	}
	return 0, false
}

// Validate checks that every profile is non-empty, uses known kinds, is
// non-decreasing within [0,1] and terminates at exactly 1.0. NaN thresholds
// are rejected as outside [0,1].
func (t ProfileTable) Validate() error {
	if len(t) == 0 {
		return &ConfigurationError{Field: "profiles", Reason: "at least one profile required"}
	}
	for i, p := range t {
		field := fmt.Sprintf("profiles[%d]", i)
		if len(p) == 0 {
			return &ConfigurationError{Field: field, Reason: "profile has no thresholds"}
		}
		prev := 0.0
		for j, th := range p {
			entry := fmt.Sprintf("%s[%d]", field, j)
			if !th.Kind.IsValid() {
				return &ConfigurationError{Field: entry, Reason: fmt.Sprintf("unknown event kind %d", int(th.Kind))}
			}
			if !(th.Cumulative >= 0 && th.Cumulative <= 1) {
				return &ConfigurationError{Field: entry, Reason: fmt.Sprintf("threshold %v outside [0, 1]", th.Cumulative)}
			}
			if th.Cumulative < prev {
				return &ConfigurationError{Field: entry, Reason: fmt.Sprintf("threshold %v below preceding %v", th.Cumulative, prev)}
			}
			prev = th.Cumulative
		}
		if last := p[len(p)-1].Cumulative; last != 1.0 {
			return &ConfigurationError{Field: field, Reason: fmt.Sprintf("last threshold must be 1.0, got %v", last)}
		}
	}
	return nil
}

// UnreachableKind names a threshold that can never be selected because it
// ties the threshold before it.
type UnreachableKind struct {
	Profile int
	Kind    EventKind
}

// Unreachable lists every threshold equal to its predecessor.
func (t ProfileTable) Unreachable() []UnreachableKind {
	var out []UnreachableKind
	for i, p := range t {
		for j := 1; j < len(p); j++ {
			if p[j].Cumulative == p[j-1].Cumulative {
				out = append(out, UnreachableKind{Profile: i, Kind: p[j].Kind})
			}
		}
	}
	return out
}
