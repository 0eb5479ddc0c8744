package core

import (
	"errors"
	"slices"
	"testing"
)

type stubSim struct{}

func (stubSim) Name() string { return "stub" }
func (stubSim) Size() Size { return Size{W: 1, H: 1} }
func (stubSim) Reset(int64) {}
func (stubSim) Step() {}
func (stubSim) Cells() []uint8 { return []uint8{0} }

func TestRegistryLookup(t *testing.T) {
	Register("stub", func(map[string]string) (Sim, error) { return stubSim{}, nil })
	Register("", func(map[string]string) (Sim, error) { return stubSim{}, nil })
	Register("nil", nil)

	if !slices.Contains(Names(), "stub") || slices.Contains(Names(), "nil") {
		t.Fatalf("unexpected registry names %v", Names())
	}
	sim, err := Lookup("stub", nil)
	if err != nil || sim.Name() != "stub" {
		t.Fatalf("Lookup(stub) = %v, %v", sim, err)
	}
	if _, err := Lookup("missing", nil); !errors.Is(err, ErrUnknownSim) {
		t.Fatalf("expected ErrUnknownSim, got %v", err)
	}
}
