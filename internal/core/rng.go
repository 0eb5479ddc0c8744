package core

import "math/rand/v2"

// Source yields uniform samples in [0, 1). Simulations draw all of their
// randomness through a Source so tests can script the sequence.
type Source interface {
	Float64() float64
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a uniform sample in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// SeqSource replays a fixed sequence of samples, wrapping around when
// exhausted. It is intended for tests.
type SeqSource struct {
	vals []float64
	pos  int
}

// NewSeqSource returns a Source that yields vals in order.
func NewSeqSource(vals ...float64) *SeqSource {
	return &SeqSource{vals: vals}
}

// Float64 returns the next scripted value, or 0 for an empty sequence.
func (s *SeqSource) Float64() float64 {
	if len(s.vals) == 0 {
		return 0
	}
	v := s.vals[s.pos%len(s.vals)]
	s.pos++
	return v
}

// Draws reports how many samples have been consumed.
func (s *SeqSource) Draws() int { return s.pos }
