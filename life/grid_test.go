package life

import "testing"

func TestNewGridFill(t *testing.T) {
	g := newGrid(2, 3, true)
	if g.rows != 2 || g.cols != 3 || len(g.cells) != 6 {
		t.Fatalf("Expected a 2x3 grid with 6 cells, got %dx%d with %d", g.rows, g.cols, len(g.cells))
	}
	for i, alive := range g.cells {
		if !alive {
			t.Errorf("Expected cell %d to be live in a filled grid", i)
		}
	}

	for i, alive := range newGrid(2, 3, false).cells {
		if alive {
			t.Errorf("Expected cell %d to be dead in an empty grid", i)
		}
	}
}

func TestIndexIsRowMajor(t *testing.T) {
	g := newGrid(3, 4, false)

	tests := []struct {
		row, col int
		want     int
	}{
		{0, 0, 0},
		{0, 3, 3},
		{1, 0, 4},
		{2, 3, 11},
	}
	for _, tt := range tests {
		if got := g.index(tt.row, tt.col); got != tt.want {
			t.Errorf("index(%d, %d) = %d, want %d", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestFillWithVisitsEveryCellOnce(t *testing.T) {
	g := newGrid(3, 3, false)

	calls := 0
	g.fillWith(func() bool {
		calls++
		return calls%2 == 1
	})

	if calls != 9 {
		t.Fatalf("Expected 9 generator calls for 9 cells, got %d", calls)
	}
	// A single pass leaves the cells alternating from the first one on.
	for i, alive := range g.cells {
		if want := i%2 == 0; alive != want {
			t.Errorf("Expected cell %d to be %v, got %v", i, want, alive)
		}
	}
}

func TestGridFromCellsCopies(t *testing.T) {
	cells := []bool{true, true, false, false}
	g := gridFromCells(cells, 2)

	cells[1] = false
	if !g.at(0, 1) {
		t.Error("Expected the grid to be detached from the caller's slice")
	}
}
