package rules

/*
ApplyConwayRules decides whether a cell is alive in the next generation.

A live cell with 2 or 3 live neighbors survives, a dead cell with exactly 3
live neighbors is born, and every other cell is dead.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	switch {
	case alive && (neighbors == 2 || neighbors == 3):
		return true
	case !alive && neighbors == 3:
		return true
	default:
		return false
	}
}
