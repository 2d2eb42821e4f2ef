package life

import "fmt"

// grid is the dense backing store for a board: a flat row-major slice of
// cell states plus its dimensions. It is deliberately not an interface;
// only one storage strategy is ever needed.
type grid struct {
	rows  int
	cols  int
	cells []bool
}

// newGrid creates a rows x cols grid with every cell set to fill.
func newGrid(rows, cols int, fill bool) grid {
	if rows < 1 || cols < 1 {
		panic(fmt.Sprintf("life: grid dimensions must be positive, got %dx%d", rows, cols))
	}
	g := grid{
		rows:  rows,
		cols:  cols,
		cells: make([]bool, rows*cols),
	}
	if fill {
		for i := range g.cells {
			g.cells[i] = true
		}
	}
	return g
}

// gridFromCells builds a grid from a flat row-major sequence and a column
// count. The slice is copied, so later mutation of cells by the caller
// never reaches the grid. len(cells) must be a positive multiple of cols.
func gridFromCells(cells []bool, cols int) grid {
	if cols < 1 || len(cells) == 0 || len(cells)%cols != 0 {
		panic(fmt.Sprintf("life: cell count %d does not form whole rows of %d columns", len(cells), cols))
	}
	g := grid{
		rows:  len(cells) / cols,
		cols:  cols,
		cells: make([]bool, len(cells)),
	}
	copy(g.cells, cells)
	return g
}

// index maps (row, col) to the flat cell offset.
func (g grid) index(row, col int) int {
	return row*g.cols + col
}

// at returns the state of the cell at (row, col).
func (g grid) at(row, col int) bool {
	return g.cells[g.index(row, col)]
}

// fillWith sets every cell to the result of gen, invoked once per cell in
// row-major order.
func (g grid) fillWith(gen func() bool) {
	for i := range g.cells {
		g.cells[i] = gen()
	}
}
