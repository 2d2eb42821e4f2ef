// Package patterns provides classic Game of Life configurations as
// ready-made boards. Each pattern is embedded in a board sized so it has
// room to behave: still lifes sit inside a dead border, oscillators have
// margin to cycle, and the glider has runway to travel.
package patterns

import "github.com/vortexofdoom/go-life/life"

// board converts a flat row-major sequence of 0/1 values into a Board.
func board(cells []uint8, cols int) *life.Board {
	states := make([]bool, len(cells))
	for i, c := range cells {
		states[i] = c != 0
	}
	return life.FromCells(states, cols)
}

// Block returns the 2x2 block still life centered on a 4x4 board.
func Block() *life.Board {
	return board([]uint8{
		0, 0, 0, 0,
		0, 1, 1, 0,
		0, 1, 1, 0,
		0, 0, 0, 0,
	}, 4)
}

// Beehive returns the six-cell beehive still life on a 6x6 board.
func Beehive() *life.Board {
	return board([]uint8{
		0, 0, 0, 0, 0, 0,
		0, 0, 1, 1, 0, 0,
		0, 1, 0, 0, 1, 0,
		0, 0, 1, 1, 0, 0,
		0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0,
	}, 6)
}

// Boat returns the five-cell boat still life on a 5x5 board.
func Boat() *life.Board {
	return board([]uint8{
		0, 0, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 1, 0, 1, 0,
		0, 1, 1, 0, 0,
		0, 0, 0, 0, 0,
	}, 5)
}

// Blinker returns the period-2 blinker oscillator in its vertical phase,
// centered on a 5x5 board.
func Blinker() *life.Board {
	return board([]uint8{
		0, 0, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, 0, 0,
	}, 5)
}

// Toad returns the period-2 toad oscillator on a 6x6 board.
func Toad() *life.Board {
	return board([]uint8{
		0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0,
		0, 0, 1, 1, 1, 0,
		0, 1, 1, 1, 0, 0,
		0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0,
	}, 6)
}

// Glider returns the five-cell glider near the top-left corner of an 8x8
// board, oriented to travel one cell down and right every four
// generations until it reaches the far edges and decays.
func Glider() *life.Board {
	return board([]uint8{
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 1, 0, 0, 0, 0, 0,
		0, 0, 0, 1, 0, 0, 0, 0,
		0, 1, 1, 1, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
	}, 8)
}
