package solver

// countSolutions counts complete grids reachable from the current
// state, stopping once limit is reached. With limit 2 this answers the
// uniqueness question. The generator deliberately does not call this:
// generation only confirms a solution exists (see PuzzleGenerator).
func (e *Engine) countSolutions(limit int) int {
	e.attempts++
	if e.solved() {
		return 1
	}
	r, c, err := e.selectCell()
	if err != nil {
		return 0
	}
	found := 0
	for _, v := range e.orderedCandidates(r, c) {
		if !e.cand.CanPlace(r, c, v) {
			continue
		}
		snap := snapshot{grid: e.grid, cand: e.cand}
		e.place(r, c, v)
		e.propagate()
		found += e.countSolutions(limit - found)
		e.backtracks++
		e.grid, e.cand = snap.grid, snap.cand
		if found >= limit {
			break
		}
	}
	return found
}
