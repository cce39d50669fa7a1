package player

import (
	"errors"
	"fmt"
	"othello/game"
	"othello/searcher"
	"strings"
)

// ErrQuit is returned by a human player who leaves the game.
var ErrQuit = errors.New("player quit")

// Player chooses moves for one side.
type Player interface {
	Disc() game.Disc
	Name() string
	// FindMove is only called when the player's side has a legal move.
	FindMove(state *game.GameState) (game.Move, error)
}

// Mode is the pairing of players in a game.
type Mode int

const (
	PvP Mode = iota // Two humans sharing the terminal
	PvC             // Human (black) against the CPU (white)
)

func (m Mode) String() string {
	switch m {
	case PvP:
		return "pvp"
	case PvC:
		return "pvc"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode parses "pvp" or "pvc".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pvp":
		return PvP, nil
	case "pvc", "cpu":
		return PvC, nil
	}
	return 0, fmt.Errorf("unknown game mode %q", s)
}

type cpu struct {
	disc       game.Disc
	difficulty searcher.Difficulty
	searcher   searcher.Searcher
}

// NewCPU returns a computer player backed by the searcher for difficulty.
func NewCPU(disc game.Disc, difficulty searcher.Difficulty, options ...searcher.Option) Player {
	return &cpu{
		disc:       disc,
		difficulty: difficulty,
		searcher:   searcher.New(difficulty, options...),
	}
}

func (c *cpu) Disc() game.Disc { return c.disc }

func (c *cpu) Name() string {
	return fmt.Sprintf("cpu-%s", c.difficulty)
}

func (c *cpu) FindMove(state *game.GameState) (game.Move, error) {
	return c.searcher.FindMove(state, c.disc)
}

// Metrics reports on the CPU's last search.
func (c *cpu) Metrics() searcher.SearchMetrics {
	return c.searcher.Metrics()
}

// Difficulty returns the CPU's difficulty tier.
func (c *cpu) Difficulty() searcher.Difficulty {
	return c.difficulty
}

// MoveSource asks a person for a move, typically through a user interface.
type MoveSource func(state *game.GameState, disc game.Disc) (game.Move, error)

type human struct {
	disc   game.Disc
	name   string
	source MoveSource
}

// NewHuman returns a player whose moves come from source.
func NewHuman(disc game.Disc, name string, source MoveSource) Player {
	return &human{disc: disc, name: name, source: source}
}

func (h *human) Disc() game.Disc { return h.disc }

func (h *human) Name() string { return h.name }

func (h *human) FindMove(state *game.GameState) (game.Move, error) {
	return h.source(state, h.disc)
}

// MetricsReporter is implemented by players that can report search metrics.
type MetricsReporter interface {
	Metrics() searcher.SearchMetrics
}

// DifficultyReporter is implemented by computer players.
type DifficultyReporter interface {
	Difficulty() searcher.Difficulty
}
