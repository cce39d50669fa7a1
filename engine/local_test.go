package engine

import (
	"othello/game"
	"othello/player"
	"othello/searcher"
	"testing"

	"github.com/stretchr/testify/require"
)

func scripted(disc game.Disc, moves ...game.Move) player.Player {
	i := 0
	return player.NewHuman(disc, "scripted", func(*game.GameState, game.Disc) (game.Move, error) {
		m := moves[i%len(moves)]
		i++
		return m, nil
	})
}

func TestLocalEngineRun(t *testing.T) {
	t.Run("playing a full CPU game", func(t *testing.T) {
		black := player.NewCPU(game.Black, searcher.Easy, searcher.WithSeed(5))
		white := player.NewCPU(game.White, searcher.Medium)
		updates := 0
		e := LocalEngine(black, white, WithObserver(func(u Update) {
			updates++
			require.NotNil(t, u.State, "Observers should receive a state copy")
		}))

		result, err := e.Run()

		require.NoError(t, err)
		require.True(t, e.State.IsOver(), "Game should run to the end")
		require.LessOrEqual(t, result.Black+result.White, 64)
		require.Equal(t, result.Black+result.White-4, len(result.Moves), "Each move adds exactly one disc")
		require.Equal(t, len(result.Moves)+result.Passes, updates, "Observers should see every turn")
		require.Equal(t, e.ID, result.ID)
		require.Equal(t, e.State.Winner(), result.Winner)
	})

	t.Run("passing when only one side is stuck", func(t *testing.T) {
		b, err := game.ParseBoard(
			"BW......",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
		)
		require.NoError(t, err)
		var passed []game.Disc
		e := LocalEngine(
			player.NewCPU(game.Black, searcher.Medium),
			player.NewCPU(game.White, searcher.Medium),
			WithState(game.NewGameStateFrom(b, game.White)),
			WithObserver(func(u Update) {
				if u.Passed {
					passed = append(passed, u.Side)
				}
			}),
		)

		result, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, []game.Disc{game.White}, passed, "White should pass instead of ending the game")
		require.Equal(t, 1, result.Passes)
		require.Len(t, result.Moves, 1)
		require.Equal(t, game.Move{Row: 0, Col: 2}, result.Moves[0].Move)
		require.Equal(t, game.Black, result.Winner)
		require.Equal(t, 3, result.Black)
		require.Equal(t, 0, result.White)
	})

	t.Run("rejecting an illegal move", func(t *testing.T) {
		e := LocalEngine(scripted(game.Black, game.Move{Row: 0, Col: 0}), player.NewCPU(game.White, searcher.Easy))
		before := e.State.Copy()

		_, err := e.Run()

		require.ErrorIs(t, err, ErrIllegalMove)
		require.Equal(t, before, e.State, "State should not change")
	})

	t.Run("stopping when a player quits", func(t *testing.T) {
		quitter := player.NewHuman(game.Black, "quitter", func(*game.GameState, game.Disc) (game.Move, error) {
			return game.Move{}, player.ErrQuit
		})
		e := LocalEngine(quitter, player.NewCPU(game.White, searcher.Easy))

		_, err := e.Run()

		require.ErrorIs(t, err, player.ErrQuit)
	})

	t.Run("players only ever see copies", func(t *testing.T) {
		vandal := player.NewHuman(game.Black, "vandal", func(state *game.GameState, disc game.Disc) (game.Move, error) {
			moves := state.LegalMoves(disc)
			state.PlayMove(moves[0], disc)
			return moves[0], nil
		})
		e := LocalEngine(vandal, player.NewCPU(game.White, searcher.Medium))

		result, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, result.Black+result.White-4, len(result.Moves))
	})
}

func TestLocalEngineSeats(t *testing.T) {
	require.Panics(t, func() {
		LocalEngine(player.NewCPU(game.White, searcher.Easy), player.NewCPU(game.White, searcher.Easy))
	}, "Black seat must hold a black player")
	require.Panics(t, func() {
		LocalEngine(player.NewCPU(game.Black, searcher.Easy), player.NewCPU(game.Black, searcher.Easy))
	}, "White seat must hold a white player")
}
