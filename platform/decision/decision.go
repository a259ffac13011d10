// Package decision isolates the randomness behind simulated business outcomes
// (credit draws, coverage checks, quote variation) so services can be tested
// with deterministic sequences instead of true randomness.
package decision

import "math/rand"

// Source yields uniform draws in [0, 1).
type Source interface {
	Float64() float64
}

type randomSource struct{}

func (randomSource) Float64() float64 { return rand.Float64() }

// NewRandom returns a Source backed by the shared math/rand generator.
func NewRandom() Source {
	return randomSource{}
}

// Sequence is a deterministic Source for tests. It replays the configured
// values in order and cycles when exhausted. Not safe for concurrent use.
type Sequence struct {
	values []float64
	next   int
}

// NewSequence creates a Sequence from the given draws. It panics when called
// with no values, since a Source must always be able to produce a draw.
func NewSequence(values ...float64) *Sequence {
	if len(values) == 0 {
		panic("decision: sequence needs at least one value")
	}
	return &Sequence{values: values}
}

// Float64 returns the next configured draw.
func (s *Sequence) Float64() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}
