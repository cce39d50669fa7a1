package tui

import (
	"othello/engine"
	"othello/game"
	"othello/player"
	"othello/searcher"
)

// SelectMode shows the game mode menu, and the difficulty menu for games
// against the CPU. It returns player.ErrQuit when the user quits.
func (u *UI) SelectMode() (player.Mode, searcher.Difficulty, error) {
	for {
		u.drawLines(
			"Welcome to Othello!",
			"",
			"Select game mode:",
			"  1. Player vs. Player",
			"  2. Player vs. CPU",
			"",
			"Press 'q' to quit.",
		)
		ev, ok := u.nextKey()
		if !ok || isQuit(ev) {
			return 0, 0, player.ErrQuit
		}
		switch keyRune(ev) {
		case '1':
			return player.PvP, 0, nil
		case '2':
			if u.difficulty != nil {
				return player.PvC, *u.difficulty, nil
			}
			difficulty, back, err := u.selectDifficulty()
			if err != nil {
				return 0, 0, err
			}
			if back {
				continue
			}
			return player.PvC, difficulty, nil
		}
	}
}

// setup returns the mode and difficulty, asking only for what was not
// preset through options.
func (u *UI) setup() (player.Mode, searcher.Difficulty, error) {
	if u.mode == nil {
		return u.SelectMode()
	}
	if *u.mode == player.PvP {
		return player.PvP, 0, nil
	}
	if u.difficulty != nil {
		return player.PvC, *u.difficulty, nil
	}
	difficulty, back, err := u.selectDifficulty()
	if err != nil {
		return 0, 0, err
	}
	if back {
		return u.SelectMode()
	}
	return player.PvC, difficulty, nil
}

func (u *UI) selectDifficulty() (difficulty searcher.Difficulty, back bool, err error) {
	for {
		u.drawLines(
			"Select CPU difficulty:",
			"",
			"1. Easy - Random moves",
			"2. Medium - Greedy strategy",
			"3. Hard - Minimax algorithm",
			"",
			"Press 'b' to go back, 'q' to quit.",
		)
		ev, ok := u.nextKey()
		if !ok || isQuit(ev) {
			return 0, false, player.ErrQuit
		}
		switch keyRune(ev) {
		case '1':
			return searcher.Easy, false, nil
		case '2':
			return searcher.Medium, false, nil
		case '3':
			return searcher.Hard, false, nil
		case 'b':
			return 0, true, nil
		}
	}
}

// GameOver shows the final tally and the winner, then waits for 'q'.
func (u *UI) GameOver(result engine.Result) {
	u.message = ""
	u.draw()

	line := "It's a draw!"
	switch result.Winner {
	case game.Black:
		line = "Black wins!"
	case game.White:
		line = "White wins!"
	}
	drawText(u.screen, 0, infoTop+4, styleDefault, "Game Over!")
	drawText(u.screen, 0, infoTop+5, styleDefault, line)
	drawText(u.screen, 0, infoTop+6, styleDefault, "Press 'q' to exit.")
	u.screen.Show()

	for {
		ev, ok := u.nextKey()
		if !ok || isQuit(ev) {
			return
		}
	}
}

func (u *UI) drawLines(lines ...string) {
	u.screen.Clear()
	for y, line := range lines {
		drawText(u.screen, 0, y, styleDefault, line)
	}
	u.screen.Show()
}
