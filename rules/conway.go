package rules

/*
ApplyConwayRules returns whether a cell is alive in the next generation.

A live cell survives with 2 or 3 live neighbors; a dead cell is born with
exactly 3. Every other cell is dead in the next generation.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}
