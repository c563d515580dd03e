package game

// Children returns every legal successor of b: one board per empty
// cell, each with the mover's mark placed there. Terminal and illegal
// boards have no successors. Order is unspecified.
func Children(b Board) []Board {
	var mark Cell
	switch Classify(b) {
	case XToMove:
		mark = X
	case OToMove:
		mark = O
	default:
		return nil
	}

	children := make([]Board, 0, Rows*Cols)
	for r, row := range b {
		for c, cell := range row {
			if cell == Empty {
				children = append(children, b.Place(r, c, mark))
			}
		}
	}
	return children
}
