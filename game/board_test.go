package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// boardOf builds a board from a 9-char row-major string of 'x', 'o'
// and '.'.
func boardOf(t *testing.T, cells string) Board {
	t.Helper()
	require.Len(t, cells, Rows*Cols, "board literal must cover all nine cells")

	var b Board
	for i, ch := range cells {
		switch ch {
		case 'x':
			b[i/Cols][i%Cols] = X
		case 'o':
			b[i/Cols][i%Cols] = O
		case '.':
		default:
			t.Fatalf("unknown cell literal %q", ch)
		}
	}
	return b
}

func TestFromRows(t *testing.T) {
	t.Run("accepts a 3x3 grid", func(t *testing.T) {
		got := FromRows([][]Cell{
			{X, Empty, Empty},
			{Empty, O, Empty},
			{Empty, Empty, Empty},
		})
		require.Equal(t, boardOf(t, "x...o...."), got)
	})

	t.Run("panics on wrong row count", func(t *testing.T) {
		require.Panics(t, func() {
			FromRows([][]Cell{{X, O, X}, {O, X, O}})
		}, "a misshaped board is a caller bug, not an illegal state")
	})

	t.Run("panics on wrong column count", func(t *testing.T) {
		require.Panics(t, func() {
			FromRows([][]Cell{{X, O, X}, {O, X}, {O, X, O}})
		})
	})

	t.Run("panics on unknown cell value", func(t *testing.T) {
		require.Panics(t, func() {
			FromRows([][]Cell{{X, O, X}, {O, Cell(42), O}, {O, X, O}})
		})
	})
}

func TestPlace(t *testing.T) {
	t.Run("returns a copy with one mark added", func(t *testing.T) {
		b := boardOf(t, "x........")
		got := b.Place(1, 1, O)

		require.Equal(t, boardOf(t, "x...o...."), got)
		require.Equal(t, boardOf(t, "x........"), b,
			"placing must not mutate the receiver")
	})
}

func TestMarks(t *testing.T) {
	require.Equal(t, 0, Board{}.Marks())
	require.Equal(t, 3, boardOf(t, "xo..x....").Marks())
	require.Equal(t, 9, boardOf(t, "xoxoxoxox").Marks())
}

func TestBoardString(t *testing.T) {
	got := boardOf(t, "xo....x..").String()
	want := "-------\n" +
		"|x|o| |\n" +
		"-------\n" +
		"| | | |\n" +
		"-------\n" +
		"|x| | |\n" +
		"-------"
	require.Equal(t, want, got)
}

func TestOpponent(t *testing.T) {
	require.Equal(t, O, X.Opponent())
	require.Equal(t, X, O.Opponent())
	require.Equal(t, Empty, Empty.Opponent())
}
