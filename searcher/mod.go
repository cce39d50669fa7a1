package searcher

import (
	"errors"
	"fmt"
	"othello/game"
	"strings"
)

// ErrNoLegalMoves is returned when a move is requested for a side that has
// none. Callers are expected to check game.GameState.LegalMoves first.
var ErrNoLegalMoves = errors.New("no legal moves")

// Difficulty selects the move-selection strategy.
type Difficulty int

const (
	Easy   Difficulty = iota // Uniform random legal move
	Medium                   // Greedy: maximize own disc count after one ply
	Hard                     // Minimax with alpha-beta pruning
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	}
	return fmt.Sprintf("difficulty(%d)", int(d))
}

// ParseDifficulty parses "easy", "medium" or "hard".
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}

// UnmarshalText lets a Difficulty be read from config files.
func (d *Difficulty) UnmarshalText(text []byte) error {
	parsed, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalText is the inverse of UnmarshalText.
func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Searcher picks a move for a side. Implementations never modify state.
type Searcher interface {
	FindMove(state *game.GameState, side game.Disc) (game.Move, error)
	// Metrics reports on the last FindMove call. Zero unless WithMetrics is set.
	Metrics() SearchMetrics
}

// New returns the searcher for difficulty.
func New(difficulty Difficulty, options ...Option) Searcher {
	switch difficulty {
	case Easy:
		return NewRandom(options...)
	case Medium:
		return NewGreedy(options...)
	case Hard:
		return NewMinimax(options...)
	}
	panic(fmt.Sprintf("unknown difficulty %d", int(difficulty)))
}

// SelectMove picks a move for side at the given difficulty.
func SelectMove(state *game.GameState, side game.Disc, difficulty Difficulty, options ...Option) (game.Move, error) {
	return New(difficulty, options...).FindMove(state, side)
}

// legalMoves returns the legal moves of side or ErrNoLegalMoves.
func legalMoves(state *game.GameState, side game.Disc) ([]game.Move, error) {
	moves := state.LegalMoves(side)
	if len(moves) == 0 {
		return nil, fmt.Errorf("cannot select a move for %s: %w", side, ErrNoLegalMoves)
	}
	return moves, nil
}
