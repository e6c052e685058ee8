package rules

// Next returns the state of a cell in the following generation:
//
//   - a live cell with fewer than two or more than three live neighbours dies
//   - a live cell with two or three live neighbours lives on
//   - a dead cell with exactly three live neighbours becomes alive
//   - any other dead cell stays dead
func Next(alive bool, neighbours int) bool {
	if alive {
		return neighbours == 2 || neighbours == 3
	}
	return neighbours == 3
}
