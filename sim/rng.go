package sim

import (
	"math/rand"
	"time"
)

// Source is the randomness a Generator consumes. *rand.Rand satisfies it.
//
// Per generated event the generator calls Float64 exactly once to pick the
// kind, then Intn at most once for the argument. Scripted sources in tests
// rely on that order.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// NewSource returns a deterministic source for seed.
// Two runs with the same seed and configuration produce identical traces.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// ClockSeed derives a seed from the wall clock for runs without --seed.
// Callers should log it so the run can be reproduced.
func ClockSeed() int64 {
	return time.Now().UnixNano()
}
