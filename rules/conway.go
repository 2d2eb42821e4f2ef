package rules

/*
NextState applies Conway's Game of Life rules to determine the next state
of a cell from its live neighbor count and current state.

	0-1 neighbors: dead (underpopulation)
	2 neighbors:   unchanged
	3 neighbors:   alive (birth if dead, survival if alive)
	4+ neighbors:  dead (overcrowding)
*/
func NextState(liveNeighbors int, alive bool) bool {
	switch {
	case liveNeighbors <= 1:
		return false
	case liveNeighbors == 2:
		return alive
	case liveNeighbors == 3:
		return true
	default:
		return false
	}
}
