package game

// StateCategory is the semantic category of a board, always recomputed
// from the cell contents and never stored.
type StateCategory int

const (
	Illegal StateCategory = iota
	XWins
	OWins
	Draw
	XToMove
	OToMove
)

func (s StateCategory) String() string {
	switch s {
	case Illegal:
		return "illegal"
	case XWins:
		return "xwin"
	case OWins:
		return "owin"
	case Draw:
		return "draw"
	case XToMove:
		return "xturn"
	case OToMove:
		return "oturn"
	}
	return "unknown"
}

// Terminal reports whether no further moves are possible.
func (s StateCategory) Terminal() bool {
	return s == XWins || s == OWins || s == Draw
}

// The 8 winning lines: 3 rows, 3 columns, 2 diagonals.
var lines = [8][3][2]int{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{2, 0}, {1, 1}, {0, 2}},
}

func countMarks(b Board) (x, o int) {
	for _, row := range b {
		for _, cell := range row {
			switch cell {
			case X:
				x++
			case O:
				o++
			}
		}
	}
	return x, o
}

// hasWin reports whether mark completes any line. It is deliberately
// permissive: presented with a board showing three-in-a-row for both
// players it answers true for either, so it stays internal to Classify,
// which rules that case out first.
func hasWin(b Board, mark Cell) bool {
	for _, line := range lines {
		a, m, z := line[0], line[1], line[2]
		if b[a[0]][a[1]] == mark && b[m[0]][m[1]] == mark && b[z[0]][z[1]] == mark {
			return true
		}
	}
	return false
}

// Classify maps a board to its category:
//
//   - Illegal: not reachable by any valid sequence of alternating moves
//   - XWins / OWins: the game is over with a winner
//   - Draw: all nine cells filled, no winner
//   - XToMove / OToMove: the game continues, with that player's turn
//
// X moves first, so X is to move whenever the mark counts are equal.
func Classify(b Board) StateCategory {
	x, o := countMarks(b)
	if x-o > 1 || o-x > 1 {
		return Illegal
	}

	xwin, owin := hasWin(b, X), hasWin(b, O)
	switch {
	case xwin && owin:
		return Illegal
	case xwin:
		return XWins
	case owin:
		return OWins
	case x+o == Rows*Cols:
		return Draw
	case x > o:
		return OToMove
	default:
		return XToMove
	}
}
