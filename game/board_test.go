package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoardGetSet(t *testing.T) {
	t.Run("reading inside the board", func(t *testing.T) {
		b := NewBoard()

		d, ok := b.Get(3, 4)

		require.True(t, ok, "Cell should be on the board")
		require.Equal(t, Black, d)
	})

	t.Run("reading off the board", func(t *testing.T) {
		b := NewBoard()

		for _, cell := range [][2]int{{8, 0}, {0, 8}, {-1, 3}, {3, -1}, {8, 8}} {
			d, ok := b.Get(cell[0], cell[1])
			require.False(t, ok, "Cell %v should be reported off the board", cell)
			require.Equal(t, Empty, d)
		}
	})

	t.Run("writing off the board is ignored", func(t *testing.T) {
		b := NewBoard()
		before := b

		b.Set(8, 0, Black)
		b.Set(0, 8, White)
		b.Set(-1, -1, Black)

		require.Equal(t, before, b, "Board should not change")
	})

	t.Run("writing inside the board", func(t *testing.T) {
		var b Board

		b.Set(7, 7, White)

		d, ok := b.Get(7, 7)
		require.True(t, ok)
		require.Equal(t, White, d)
	})
}

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	occupied := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] != Empty {
				occupied++
			}
		}
	}
	require.Equal(t, 4, occupied, "Opening should have exactly four discs")
	require.Equal(t, White, b[3][3])
	require.Equal(t, Black, b[3][4])
	require.Equal(t, Black, b[4][3])
	require.Equal(t, White, b[4][4])
}

func TestParseBoard(t *testing.T) {
	t.Run("round trip through String", func(t *testing.T) {
		b := NewBoard()

		parsed, err := ParseBoard(
			"........",
			"........",
			"........",
			"...WB...",
			"...BW...",
			"........",
			"........",
			"........",
		)

		require.NoError(t, err)
		require.Equal(t, b, parsed)
		require.Equal(t, "........\n........\n........\n...WB...\n...BW...\n........\n........\n........", parsed.String())
	})

	t.Run("rejecting malformed input", func(t *testing.T) {
		_, err := ParseBoard("........")
		require.Error(t, err, "Should reject a wrong number of rows")

		rows := []string{"........", "........", "........", "...X....", "........", "........", "........", "........"}
		_, err = ParseBoard(rows...)
		require.Error(t, err, "Should reject unknown cell runes")

		rows[3] = "......."
		_, err = ParseBoard(rows...)
		require.Error(t, err, "Should reject short rows")
	})
}

func TestDiscOpponent(t *testing.T) {
	require.Equal(t, White, Black.Opponent())
	require.Equal(t, Black, White.Opponent())
	require.Equal(t, Empty, Empty.Opponent())
}

func TestMoveNotation(t *testing.T) {
	m := Move{Row: 2, Col: 3}
	require.Equal(t, "d3", m.String())

	parsed, err := ParseMove("D3")
	require.NoError(t, err)
	require.Equal(t, m, parsed)

	_, err = ParseMove("i1")
	require.Error(t, err)
	_, err = ParseMove("a9")
	require.Error(t, err)
	for _, bad := range []string{"d3x", "d03", "d", "", "3d", "a0"} {
		_, err = ParseMove(bad)
		require.Error(t, err, "Should reject %q", bad)
	}
}

func TestParseDisc(t *testing.T) {
	for _, side := range []Disc{Black, White} {
		parsed, err := ParseDisc(side.String())
		require.NoError(t, err)
		require.Equal(t, side, parsed)
	}

	parsed, err := ParseDisc(" W ")
	require.NoError(t, err)
	require.Equal(t, White, parsed)

	_, err = ParseDisc("empty")
	require.Error(t, err, "Empty is a cell state, not a side")
	require.False(t, Empty.IsSide())
}
