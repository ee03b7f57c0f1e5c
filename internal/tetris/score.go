package tetris

// ScoreFor returns the points awarded for clearing the given number of
// lines at once, scaled by the current level. Standard values: single 100,
// double 300, triple 500, tetris 800. Clearing more than four lines is not
// reachable with four-cell pieces and scores nothing.
func ScoreFor(lines, level int) int {
	switch lines {
	case 1:
		return 100 * level
	case 2:
		return 300 * level
	case 3:
		return 500 * level
	case 4:
		return 800 * level
	}
	return 0
}

// LevelFor returns the level for a total line count: one level per ten
// lines, starting at 1.
func LevelFor(totalLines int) int {
	return totalLines/10 + 1
}
