package game

import (
	"fmt"
	"strings"
)

// Cell is the content of one board square.
type Cell uint8

const (
	Empty Cell = iota
	X
	O
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return " "
	case X:
		return "x"
	case O:
		return "o"
	}
	return "?"
}

// Opponent returns the other player's mark. Empty maps to itself.
func (c Cell) Opponent() Cell {
	switch c {
	case X:
		return O
	case O:
		return X
	}
	return c
}

const (
	Rows = 3
	Cols = 3
)

// Board is one complete snapshot of the grid. It is a value type:
// boards compare with == and serve directly as map keys, and placing a
// mark always yields a new Board. The zero value is the empty board.
type Board [Rows][Cols]Cell

// FromRows builds a Board from a row-major grid. A grid that is not
// exactly 3x3, or that contains an unknown cell value, is a caller bug
// and panics rather than classifying as illegal.
func FromRows(rows [][]Cell) Board {
	if len(rows) != Rows {
		panic(fmt.Sprintf("board does not have %d rows: %v", Rows, rows))
	}
	var b Board
	for r, row := range rows {
		if len(row) != Cols {
			panic(fmt.Sprintf("board row %d does not have %d columns: %v", r, Cols, row))
		}
		for c, cell := range row {
			if cell != Empty && cell != X && cell != O {
				panic(fmt.Sprintf("unknown cell value %d at row %d col %d", cell, r, c))
			}
			b[r][c] = cell
		}
	}
	return b
}

// Place returns a copy of the board with mark set at (r, c).
func (b Board) Place(r, c int, mark Cell) Board {
	b[r][c] = mark
	return b
}

// Marks counts the placed marks, which is also the ply number.
func (b Board) Marks() int {
	n := 0
	for _, row := range b {
		for _, cell := range row {
			if cell != Empty {
				n++
			}
		}
	}
	return n
}

// String renders the board the way a scoresheet would:
//
//	-------
//	|x|o| |
//	-------
func (b Board) String() string {
	const rule = "-------"
	var sb strings.Builder
	sb.WriteString(rule)
	for _, row := range b {
		sb.WriteByte('\n')
		for _, cell := range row {
			sb.WriteByte('|')
			sb.WriteString(cell.String())
		}
		sb.WriteString("|\n")
		sb.WriteString(rule)
	}
	return sb.String()
}
