package game

import (
	"fmt"
	"strings"
)

// Move is a target cell for placing a disc.
type Move struct {
	Row int
	Col int
}

// String formats the move in board notation, e.g. "d3" for row 2, column 3.
func (m Move) String() string {
	if !inBounds(m.Row, m.Col) {
		return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
	}
	return fmt.Sprintf("%c%d", 'a'+rune(m.Col), m.Row+1)
}

// ParseMove parses board notation such as "d3". The column letter may be
// upper case; nothing else may follow the row digit.
func ParseMove(s string) (Move, error) {
	if len(s) != 2 {
		return Move{}, fmt.Errorf("invalid move %q: expected a column letter and a row digit", s)
	}
	col := strings.ToLower(s[:1])[0]
	m := Move{Row: int(s[1]) - '1', Col: int(col) - 'a'}
	if !inBounds(m.Row, m.Col) {
		return Move{}, fmt.Errorf("invalid move %q: off the board", s)
	}
	return m, nil
}
