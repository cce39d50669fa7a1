package tui

import (
	"errors"
	"othello/engine"
	"othello/game"
	"othello/player"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
)

// thinkingPlayer shows the thinking animation before each CPU move.
type thinkingPlayer struct {
	player.Player
	ui *UI
}

func (t thinkingPlayer) FindMove(state *game.GameState) (game.Move, error) {
	if d, ok := t.Player.(player.DifficultyReporter); ok {
		t.ui.state = state
		t.ui.think(d.Difficulty())
	}
	return t.Player.FindMove(state)
}

// Run plays one interactive game on screen: menus, the game itself and the
// final result. Quitting at any point is not an error.
func Run(screen tcell.Screen, options ...Option) error {
	u := New(screen, options...)

	mode, difficulty, err := u.setup()
	if errors.Is(err, player.ErrQuit) {
		return nil
	}
	if err != nil {
		return err
	}

	black := player.NewHuman(game.Black, "black", u.HumanMove)
	white := player.NewHuman(game.White, "white", u.HumanMove)
	if mode == player.PvC {
		cpu := thinkingPlayer{Player: player.NewCPU(u.human.Opponent(), difficulty), ui: u}
		if u.human == game.Black {
			white = cpu
		} else {
			black = cpu
		}
	}

	log.Info().
		Stringer("mode", mode).
		Stringer("difficulty", difficulty).
		Stringer("human", u.human).
		Msg("starting interactive game")

	e := engine.LocalEngine(black, white, engine.WithObserver(u.Observe))
	u.state = e.State.Copy()
	u.draw()

	result, err := e.Run()
	if errors.Is(err, player.ErrQuit) {
		log.Info().Msg("player quit")
		return nil
	}
	if err != nil {
		return err
	}

	u.GameOver(result)
	return nil
}
