package engine

import (
	"fmt"
	"othello/game"
	"othello/meta"
	"othello/player"
	"othello/searcher"
	"othello/utils"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Engine runs a game between two players on the local machine.
type Engine struct {
	ID        uuid.UUID
	State     *game.GameState
	Players   [2]player.Player // Black, White
	observers []func(Update)
}

// Update describes one turn: a move, or a pass when the side was stuck.
type Update struct {
	Turn   int
	Side   game.Disc
	Move   game.Move
	Passed bool
	State  *game.GameState // Copy of the state after the turn
}

type MoveRecord struct {
	Turn     int
	Side     game.Disc
	Move     game.Move
	Duration time.Duration
	Search   searcher.SearchMetrics
}

type Result struct {
	ID        uuid.UUID
	Winner    game.Disc // Empty for a draw
	Black     int
	White     int
	Moves     []MoveRecord
	Passes    int
	StartTime time.Time
	Duration  time.Duration
}

type Option func(e *Engine)

// WithObserver registers fn to be called after every turn.
func WithObserver(fn func(Update)) Option {
	return func(e *Engine) {
		if fn != nil {
			e.observers = append(e.observers, fn)
		}
	}
}

// WithState starts the game from state instead of the opening position.
func WithState(state *game.GameState) Option {
	return func(e *Engine) {
		if state != nil {
			e.State = state.Copy()
		}
	}
}

func LocalEngine(black, white player.Player, options ...Option) *Engine {
	if black.Disc() != game.Black {
		panic("first player must play black")
	}
	if white.Disc() != game.White {
		panic("second player must play white")
	}

	eng := &Engine{
		ID:      uuid.New(),
		State:   game.NewGameState(),
		Players: [2]player.Player{black, white},
	}
	for _, option := range options {
		option(eng)
	}
	return eng
}

// Run executes the game loop until neither side can move.
func (e *Engine) Run() (Result, error) {
	logger := log.With().Str("game", e.ID.String()).Logger()
	result := Result{ID: e.ID, StartTime: time.Now()}

	logger.Info().Msgf("%s (black) vs %s (white)", e.Players[0].Name(), e.Players[1].Name())

	turnCount := 1
	for !e.State.IsOver() && turnCount <= meta.MAX_TURNS {
		side := e.State.Turn()

		if e.State.Pass() {
			logger.Debug().Stringer("side", side).Int("turn", turnCount).Msg("no legal moves, passing")
			result.Passes++
			e.notify(Update{Turn: turnCount, Side: side, Passed: true, State: e.State.Copy()})
			turnCount++
			continue
		}

		record, err := e.playTurn(logger, side, turnCount)
		if err != nil {
			return result, err
		}
		result.Moves = append(result.Moves, record)
		e.notify(Update{Turn: turnCount, Side: side, Move: record.Move, State: e.State.Copy()})
		turnCount++
	}

	if !e.State.IsOver() {
		return result, fmt.Errorf("game %s stopped after %d turns without finishing", e.ID, meta.MAX_TURNS)
	}

	result.Winner = e.State.Winner()
	result.Black, result.White = e.State.Counts()
	result.Duration = time.Since(result.StartTime)

	logger.Info().
		Stringer("winner", result.Winner).
		Int("black", result.Black).
		Int("white", result.White).
		Int("passes", result.Passes).
		Dur("duration", result.Duration).
		Msg("game over")

	return result, nil
}

func (e *Engine) playTurn(logger zerolog.Logger, side game.Disc, turn int) (MoveRecord, error) {
	p := e.player(side)
	start := time.Now()

	move, err := p.FindMove(e.State.Copy())
	if err != nil {
		return MoveRecord{}, fmt.Errorf("%s (%s) failed to move: %w", p.Name(), side, err)
	}

	if utils.FindIndex(e.State.LegalMoves(side), move) < 0 {
		return MoveRecord{}, fmt.Errorf("%s (%s) played %s: %w", p.Name(), side, move, ErrIllegalMove)
	}
	e.State.PlayMove(move, side)

	record := MoveRecord{
		Turn:     turn,
		Side:     side,
		Move:     move,
		Duration: time.Since(start),
	}
	if reporter, ok := p.(player.MetricsReporter); ok {
		record.Search = reporter.Metrics()
	}

	logger.Debug().
		Int("turn", turn).
		Stringer("side", side).
		Stringer("move", move).
		Dur("took", record.Duration).
		Msg("move played")

	return record, nil
}

func (e *Engine) player(side game.Disc) player.Player {
	if side == game.Black {
		return e.Players[0]
	}
	return e.Players[1]
}

func (e *Engine) notify(u Update) {
	for _, fn := range e.observers {
		fn(u)
	}
}
