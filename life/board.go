// Package life implements Conway's Game of Life on a finite rectangular
// board. Neighborhoods are clamped at the board's edges rather than
// wrapped, so the board behaves as a bounded plane, not a torus.
package life

import (
	"slices"

	"github.com/vortexofdoom/go-life/rules"
)

// Board is a finite grid of live and dead cells evolved by the standard
// birth/survival rule. The zero value is not usable; construct boards
// with Dead, Random, RandomFrom, or FromCells.
type Board struct {
	grid grid
}

// Dead returns a rows x cols board with every cell dead. It panics if
// either dimension is less than 1.
func Dead(rows, cols int) *Board {
	return &Board{grid: newGrid(rows, cols, false)}
}

// Random returns a rows x cols board with every cell independently live or
// dead with equal probability, drawn from the shared math/rand
// generator. rows x cols must not overflow int.
func Random(rows, cols int) *Board {
	return RandomFrom(rows, cols, globalSource{})
}

// RandomFrom is Random drawing from src instead of the shared generator.
// src is invoked once per cell in row-major order, so boards built from
// a seeded source are reproducible.
func RandomFrom(rows, cols int, src BoolSource) *Board {
	g := newGrid(rows, cols, false)
	g.fillWith(src.Bool)
	return &Board{grid: g}
}

// FromCells returns a board whose cells are taken from a flat row-major
// sequence holding len(cells)/cols rows. The slice is copied; the caller
// keeps ownership of cells. It panics unless len(cells) is a positive
// multiple of cols.
func FromCells(cells []bool, cols int) *Board {
	return &Board{grid: gridFromCells(cells, cols)}
}

// Rows returns the number of rows on the board.
func (b *Board) Rows() int {
	return b.grid.rows
}

// Cols returns the number of columns on the board.
func (b *Board) Cols() int {
	return b.grid.cols
}

// Cell reports whether the cell at (row, col) is alive. Both indices
// must be within the board.
func (b *Board) Cell(row, col int) bool {
	return b.grid.at(row, col)
}

// Population returns the number of live cells on the board.
func (b *Board) Population() (count int) {
	for _, alive := range b.grid.cells {
		if alive {
			count++
		}
	}
	return
}

// Equal reports whether both boards have the same dimensions and
// identical cell states.
func (b *Board) Equal(other *Board) bool {
	return b.grid.rows == other.grid.rows &&
		b.grid.cols == other.grid.cols &&
		slices.Equal(b.grid.cells, other.grid.cells)
}

// Advance replaces the board's cells with the next generation. Every new
// state is decided against a snapshot of the current generation, so a
// freshly computed state never leaks into another cell's neighbor count
// within the same pass. Dimensions are preserved.
//
// Advance is not safe for concurrent use on the same board; distinct
// boards may be advanced concurrently.
func (b *Board) Advance() {
	next := make([]bool, len(b.grid.cells))
	for row := 0; row < b.grid.rows; row++ {
		for col := 0; col < b.grid.cols; col++ {
			next[b.grid.index(row, col)] = rules.NextState(b.LiveNeighbors(row, col), b.grid.at(row, col))
		}
	}
	b.grid.cells = next
}

// LiveNeighbors returns the number of live cells among the up-to-8 cells
// surrounding (row, col), excluding (row, col) itself. The neighborhood
// window is clamped to the board, never wrapped: interior cells see 8
// candidates, edge cells 5, corner cells 3, and a dimension-1 axis
// collapses its side of the window to the single valid index.
func (b *Board) LiveNeighbors(row, col int) (count int) {
	var (
		minRow = max(0, row-1)
		maxRow = min(b.grid.rows-1, row+1)
		minCol = max(0, col-1)
		maxCol = min(b.grid.cols-1, col+1)
	)
	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue // skip the cell itself
			}
			if b.grid.at(r, c) {
				count++
			}
		}
	}
	return
}
