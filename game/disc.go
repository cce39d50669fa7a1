package game

import (
	"fmt"
	"strings"
)

// Disc is the content of a single cell. Black and White also name the two
// sides; Empty is only ever a cell state.
type Disc int

const (
	Empty Disc = iota
	Black      // Moves first
	White
)

// Opponent returns the other side. Empty has no opponent and maps to itself.
func (d Disc) Opponent() Disc {
	switch d {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

// IsSide reports whether d names one of the two playing sides.
func (d Disc) IsSide() bool {
	return d == Black || d == White
}

func (d Disc) String() string {
	switch d {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "empty"
	}
}

// rune returns the single-character board notation of the disc.
func (d Disc) rune() rune {
	switch d {
	case Black:
		return 'B'
	case White:
		return 'W'
	default:
		return '.'
	}
}

// ParseDisc parses a side name such as "black" or "W".
func ParseDisc(s string) (Disc, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "black", "b":
		return Black, nil
	case "white", "w":
		return White, nil
	}
	return Empty, fmt.Errorf("unknown side %q", s)
}
