package game

import (
	"fmt"
	"strings"
)

// Board is the 8x8 grid of cells, indexed [row][col] from the top-left corner.
// Board is a plain value: assigning it copies every cell.
type Board [Size][Size]Disc

// NewBoard returns a board set up with the four center discs of the opening.
func NewBoard() Board {
	var b Board
	b[3][3] = White
	b[3][4] = Black
	b[4][3] = Black
	b[4][4] = White
	return b
}

// ParseBoard builds a board from Size rows of Size runes each, using 'B' for
// black, 'W' for white and '.' for empty cells. Spaces are ignored.
func ParseBoard(rows ...string) (Board, error) {
	var b Board
	if len(rows) != Size {
		return b, fmt.Errorf("expected %d rows, got %d", Size, len(rows))
	}
	for r, row := range rows {
		row = strings.ReplaceAll(row, " ", "")
		if len(row) != Size {
			return b, fmt.Errorf("row %d: expected %d cells, got %d", r, Size, len(row))
		}
		for c, ch := range row {
			switch ch {
			case 'B', 'b':
				b[r][c] = Black
			case 'W', 'w':
				b[r][c] = White
			case '.':
				b[r][c] = Empty
			default:
				return b, fmt.Errorf("row %d col %d: unexpected cell %q", r, c, ch)
			}
		}
	}
	return b, nil
}

// Get returns the disc at (row, col). ok is false when the coordinate lies
// off the board, which callers walking rays use as their stop condition.
func (b *Board) Get(row, col int) (disc Disc, ok bool) {
	if !inBounds(row, col) {
		return Empty, false
	}
	return b[row][col], true
}

// Set places disc at (row, col). Off-board writes are ignored.
func (b *Board) Set(row, col int, disc Disc) {
	if !inBounds(row, col) {
		return
	}
	b[row][col] = disc
}

// String renders the board one row per line in ParseBoard notation.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			sb.WriteRune(b[r][c].rune())
		}
		if r < Size-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func inBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}
