package life

import (
	"crypto/md5"
	"fmt"
	"slices"
)

// historyDepth bounds how many recent generations a detector remembers,
// and with it the longest cycle it can recognize.
const historyDepth = 5

// StagnationDetector reports when a board has stopped evolving. A board
// is stagnant once its state matches one seen within the last few
// generations: a still life repeats immediately, an oscillator repeats
// after its period.
//
// Call Observe once per generation on a single board. A detector is not
// safe for concurrent use.
type StagnationDetector struct {
	history []string
}

func NewStagnationDetector() *StagnationDetector {
	return &StagnationDetector{history: make([]string, 0, historyDepth)}
}

// Observe records the board's current state and reports whether that
// state already occurred within the detector's window.
func (d *StagnationDetector) Observe(b *Board) bool {
	hash := b.fingerprint()
	seen := slices.Contains(d.history, hash)
	d.history = append(d.history, hash)
	if len(d.history) > historyDepth {
		d.history = d.history[1:]
	}
	return seen
}

// fingerprint hashes the cells so generations can be compared without
// retaining full copies.
func (b *Board) fingerprint() string {
	buf := make([]byte, len(b.grid.cells))
	for i, alive := range b.grid.cells {
		if alive {
			buf[i] = 1
		}
	}
	return fmt.Sprintf("%x", md5.Sum(buf))
}
