package game

import "fmt"

// Values holds one win-probability estimate per player for a single
// board, each in [0, 1].
type Values struct {
	X float64
	O float64
}

// For returns the estimate from mark's point of view.
func (v Values) For(mark Cell) float64 {
	switch mark {
	case X:
		return v.X
	case O:
		return v.O
	}
	panic(fmt.Sprintf("no value for cell %v", mark))
}

// Set replaces the estimate from mark's point of view.
func (v *Values) Set(mark Cell, value float64) {
	switch mark {
	case X:
		v.X = value
	case O:
		v.O = value
	default:
		panic(fmt.Sprintf("no value for cell %v", mark))
	}
}

// ValueTable maps every reachable legal board to its per-player value
// estimates. The key set is fixed at build time; training mutates the
// Values in place through the shared pointers.
type ValueTable map[Board]*Values

// BuildValueTable enumerates the full reachable state space by
// breadth-first traversal from the empty board and assigns each board
// its starting estimate: (1,0) for an X win, (0,1) for an O win, (0,0)
// for a draw, and (0.5,0.5) for any position still in play. The
// traversal terminates because placements only ever add marks, so the
// successor relation is a finite DAG.
func BuildValueTable() ValueTable {
	table := make(ValueTable)
	queue := []Board{{}}
	seen := map[Board]struct{}{{}: {}}

	for len(queue) > 0 {
		board := queue[0]
		queue = queue[1:]

		var score Values
		switch Classify(board) {
		case XWins:
			score = Values{X: 1, O: 0}
		case OWins:
			score = Values{X: 0, O: 1}
		case Draw:
			score = Values{X: 0, O: 0}
		default:
			score = Values{X: 0.5, O: 0.5}
		}
		table[board] = &score

		for _, child := range Children(board) {
			if _, ok := seen[child]; !ok {
				seen[child] = struct{}{}
				queue = append(queue, child)
			}
		}
	}
	return table
}
