package world

import (
	"math/rand"
	"time"
)

// Rand is the random source used for spawn lanes and chance rolls.
// *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// NewRand returns a seeded source. A zero seed uses the current time.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// ScriptedRand replays Values in order, wrapping around, each reduced modulo n.
// With no values it always returns n-1, which never wins a chance roll.
type ScriptedRand struct {
	Values []int
	next   int
}

// Intn returns the next scripted value in [0, n).
func (s *ScriptedRand) Intn(n int) int {
	if len(s.Values) == 0 {
		return n - 1
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v % n
}
