package rules

// ApplyConwayRules folds survival, underpopulation, overcrowding and
// reproduction into one decision: a cell lives on with exactly two live
// neighbors if already alive, and with exactly three in any case.
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
