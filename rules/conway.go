package rules

const (
	// BirthNeighbors is the neighbor count that brings a dead cell to life.
	BirthNeighbors = 3

	// SurviveMin and SurviveMax bound the neighbor counts a live cell survives with.
	SurviveMin = 2
	SurviveMax = 3
)

/*
ApplyConwayRules returns whether a cell is alive in the next generation (B3/S23).

A live cell survives with 2 or 3 live neighbors, a dead cell is born with exactly 3.
Every other cell is dead in the next generation.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return neighbors >= SurviveMin && neighbors <= SurviveMax
	}
	return neighbors == BirthNeighbors
}
