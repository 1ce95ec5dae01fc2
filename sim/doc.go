// Package sim generates synthetic operating-system process traces.
//
// # Reading Guide
//
// Start with these files:
//   - event.go: PIDs, event kinds and the one-line wire format
//   - profile.go: cumulative-probability profiles that pick an event kind
//   - generator.go: the generation loop, fork handling and termination
//
// # Output format
//
// A trace is a flat text file (processes.dat by default), one event per line:
//
//	<pid> <kind> [<arg>]
//
// kind is one of run, diskread, keyboardread, diskwrite, down, up, fork.
// keyboardread and diskwrite carry no argument. The file always starts with
// "0 fork 1" and "0 fork 2".
//
// # Bounding
//
// New PIDs come from a PIDPool that is never replenished. Generation stops as
// soon as either the work queue or the pool is empty, which bounds the fork
// tree without any depth guard.
//
// Decision records for a run live in sim/trace.
package sim
