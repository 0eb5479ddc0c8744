package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(42), NewRNG(42)
	for i := 0; i < 100; i++ {
		va, vb := a.Float64(), b.Float64()
		if va != vb {
			t.Fatalf("draw %d diverged: %v != %v", i, va, vb)
		}
		if va < 0 || va >= 1 {
			t.Fatalf("draw %d out of range: %v", i, va)
		}
	}
}

func TestSeqSourceWraps(t *testing.T) {
	s := NewSeqSource(0.1, 0.2)
	got := []float64{s.Float64(), s.Float64(), s.Float64()}
	if got[0] != 0.1 || got[1] != 0.2 || got[2] != 0.1 {
		t.Fatalf("unexpected sequence %v", got)
	}
	if s.Draws() != 3 {
		t.Fatalf("expected 3 draws, got %d", s.Draws())
	}
	if NewSeqSource().Float64() != 0 {
		t.Fatal("empty sequence should yield 0")
	}
}
