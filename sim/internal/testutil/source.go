package testutil

import "fmt"

// ScriptedSource replays fixed draws. Floats and Ints are consumed in order
// and wrap around when exhausted; an empty list yields 0.
type ScriptedSource struct {
	Floats []float64
	Ints   []int

	floatIdx int
	intIdx   int
}

// Float64 returns the next scripted float.
func (s *ScriptedSource) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[s.floatIdx%len(s.Floats)]
	s.floatIdx++
	return v
}

// Intn returns the next scripted int. It panics if the value is not in
// [0, n), mirroring the contract of math/rand.
func (s *ScriptedSource) Intn(n int) int {
	if len(s.Ints) == 0 {
		return 0
	}
	v := s.Ints[s.intIdx%len(s.Ints)]
	s.intIdx++
	if v < 0 || v >= n {
		panic(fmt.Sprintf("ScriptedSource: scripted value %d outside [0, %d)", v, n))
	}
	return v
}

// Calls reports how many Float64 and Intn draws have been made.
func (s *ScriptedSource) Calls() (floats, ints int) {
	return s.floatIdx, s.intIdx
}
