package life

import "testing"

func TestDetectorFlagsStillLife(t *testing.T) {
	// A 2x2 board of live cells is a block; it never changes.
	b := boardOf([]uint8{1, 1, 1, 1}, 2)
	d := NewStagnationDetector()

	if d.Observe(b) {
		t.Fatal("Expected the first observation to be fresh")
	}
	b.Advance()
	if !d.Observe(b) {
		t.Error("Expected a still life to be flagged on its second observation")
	}
}

func TestDetectorFlagsShortCycle(t *testing.T) {
	// A vertical blinker has period two, so the third observation
	// repeats the first.
	b := boardOf([]uint8{
		0, 0, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, 0, 0,
	}, 5)
	d := NewStagnationDetector()

	if d.Observe(b) {
		t.Fatal("Expected the first observation to be fresh")
	}
	b.Advance()
	if d.Observe(b) {
		t.Fatal("Expected the horizontal phase to be fresh")
	}
	b.Advance()
	if !d.Observe(b) {
		t.Error("Expected the repeated vertical phase to be flagged")
	}
}

func TestDetectorPassesFreshStates(t *testing.T) {
	// A traveling glider produces a new state every generation.
	b := boardOf([]uint8{
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 1, 0, 0, 0, 0, 0,
		0, 0, 0, 1, 0, 0, 0, 0,
		0, 1, 1, 1, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
	}, 8)
	d := NewStagnationDetector()

	for gen := 0; gen < 5; gen++ {
		if d.Observe(b) {
			t.Fatalf("Expected generation %d of a traveling glider to be fresh", gen)
		}
		b.Advance()
	}
}
