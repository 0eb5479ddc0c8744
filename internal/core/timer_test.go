package core

import (
	"testing"
	"time"
)

func TestFixedStepPacing(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(4)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first call should step immediately")
	}
	clock = clock.Add(100 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("should wait a full interval")
	}
	clock = clock.Add(150 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("expected a step after 250ms at 4/s")
	}

	fs.Reset()
	if fs.ShouldStep() {
		t.Fatal("reset should clear accumulated time")
	}
}
