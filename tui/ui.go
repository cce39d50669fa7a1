// Package tui is the terminal front end: menus, board rendering and keyboard
// input. It only reads game state and feeds chosen moves back to the engine.
package tui

import (
	"fmt"
	"othello/engine"
	"othello/game"
	"othello/player"
	"othello/searcher"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
)

const (
	boardLeft = 2 // Screen column of the first board cell
	boardTop  = 1 // Screen row of the first board cell
	infoTop   = boardTop + game.Size + 1
)

const helpText = "Use arrow keys to move, Enter/Space to place, 'q' to quit."

var (
	styleDefault = tcell.StyleDefault
	styleBoard   = tcell.StyleDefault.Background(tcell.ColorDarkGreen)
	styleCursor  = tcell.StyleDefault.Background(tcell.ColorYellow)
	styleWarning = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleError   = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// UI draws on a tcell screen and turns key presses into moves.
type UI struct {
	screen   tcell.Screen
	state    *game.GameState
	cursor   game.Move
	message  string
	thinking map[searcher.Difficulty]time.Duration

	mode       *player.Mode
	difficulty *searcher.Difficulty
	human      game.Disc // Side of the human against the CPU
}

type Option func(u *UI)

// WithoutAnimation skips the CPU thinking animation.
func WithoutAnimation() Option {
	return func(u *UI) {
		u.thinking = map[searcher.Difficulty]time.Duration{}
	}
}

// WithMode skips the game mode menu.
func WithMode(mode player.Mode) Option {
	return func(u *UI) {
		u.mode = &mode
	}
}

// WithDifficulty skips the CPU difficulty menu.
func WithDifficulty(difficulty searcher.Difficulty) Option {
	return func(u *UI) {
		u.difficulty = &difficulty
	}
}

// WithHumanSide sets the side the human plays against the CPU. Black is the
// default.
func WithHumanSide(side game.Disc) Option {
	return func(u *UI) {
		if side.IsSide() {
			u.human = side
		}
	}
}

func New(screen tcell.Screen, options ...Option) *UI {
	u := &UI{
		screen: screen,
		state:  game.NewGameState(),
		human:  game.Black,
		thinking: map[searcher.Difficulty]time.Duration{
			searcher.Easy:   800 * time.Millisecond,
			searcher.Medium: 1200 * time.Millisecond,
			searcher.Hard:   2000 * time.Millisecond,
		},
	}
	for _, option := range options {
		option(u)
	}
	return u
}

// cellPosition maps a board cell to screen coordinates.
func cellPosition(row, col int) (x, y int) {
	return boardLeft + col*2, boardTop + row
}

// moveCursor applies an arrow key to the cursor, clamped to the board.
func moveCursor(cursor game.Move, key tcell.Key) game.Move {
	switch key {
	case tcell.KeyUp:
		cursor.Row = max(cursor.Row-1, 0)
	case tcell.KeyDown:
		cursor.Row = min(cursor.Row+1, game.Size-1)
	case tcell.KeyLeft:
		cursor.Col = max(cursor.Col-1, 0)
	case tcell.KeyRight:
		cursor.Col = min(cursor.Col+1, game.Size-1)
	}
	return cursor
}

func isQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyCtrlC || keyRune(ev) == 'q'
}

func isPlace(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEnter || keyRune(ev) == ' '
}

// keyRune returns the typed character, or 0 for special keys.
func keyRune(ev *tcell.EventKey) rune {
	if ev.Key() != tcell.KeyRune {
		return 0
	}
	return ev.Rune()
}

// nextKey blocks until a key press. ok is false once the screen is closed.
func (u *UI) nextKey() (ev *tcell.EventKey, ok bool) {
	for {
		switch ev := u.screen.PollEvent().(type) {
		case nil:
			return nil, false
		case *tcell.EventResize:
			u.screen.Sync()
		case *tcell.EventKey:
			return ev, true
		}
	}
}

// HumanMove is a player.MoveSource reading the move from the keyboard. Only
// legal cells are accepted.
func (u *UI) HumanMove(state *game.GameState, disc game.Disc) (game.Move, error) {
	u.state = state
	for {
		u.draw()
		ev, ok := u.nextKey()
		if !ok || isQuit(ev) {
			return game.Move{}, player.ErrQuit
		}
		if isPlace(ev) {
			if state.IsLegal(u.cursor.Row, u.cursor.Col, disc) {
				u.message = ""
				return u.cursor, nil
			}
			u.message = fmt.Sprintf("%s is not a legal move for %s", u.cursor, disc)
			continue
		}
		u.cursor = moveCursor(u.cursor, ev.Key())
	}
}

// Observe redraws the board after every turn. It is an engine observer.
func (u *UI) Observe(update engine.Update) {
	u.state = update.State
	if update.Passed {
		u.message = fmt.Sprintf("%s has no legal moves and passes", update.Side)
	} else {
		u.message = ""
	}
	u.draw()
}

// think plays the "CPU is thinking" animation for difficulty.
func (u *UI) think(difficulty searcher.Difficulty) {
	total := u.thinking[difficulty]
	if total <= 0 {
		return
	}
	verb := map[searcher.Difficulty]string{
		searcher.Easy:   "thinking",
		searcher.Medium: "analyzing",
		searcher.Hard:   "calculating",
	}[difficulty]

	const frames = 3
	for i := 1; i <= frames; i++ {
		u.draw()
		u.clearLine(infoTop + 3)
		drawText(u.screen, 0, infoTop+3, styleWarning, "CPU is "+verb+strings.Repeat(".", i))
		u.screen.Show()
		time.Sleep(total / frames)
	}
	u.clearLine(infoTop + 3)
	u.screen.Show()
}

// draw renders the board, tally and help line.
func (u *UI) draw() {
	u.screen.Clear()

	for c := 0; c < game.Size; c++ {
		x, _ := cellPosition(0, c)
		u.screen.SetContent(x, 0, 'a'+rune(c), nil, styleDefault)
	}
	for r := 0; r < game.Size; r++ {
		_, y := cellPosition(r, 0)
		u.screen.SetContent(0, y, '1'+rune(r), nil, styleDefault)
		for c := 0; c < game.Size; c++ {
			x, y := cellPosition(r, c)
			disc, _ := u.state.Get(r, c)
			style := styleBoard
			if u.cursor.Row == r && u.cursor.Col == c {
				style = styleCursor
			}
			u.screen.SetContent(x, y, discRune(disc), nil, style.Foreground(discColor(disc)))
			u.screen.SetContent(x+1, y, ' ', nil, style)
		}
	}

	turn := u.state.Turn()
	drawText(u.screen, 0, infoTop, styleDefault, "Turn: ")
	u.screen.SetContent(6, infoTop, discRune(turn), nil, styleDefault.Foreground(discColor(turn)))
	drawText(u.screen, 8, infoTop, styleDefault, turn.String())

	black, white := u.state.Counts()
	drawText(u.screen, 0, infoTop+1, styleDefault, fmt.Sprintf("Black: %d | White: %d", black, white))
	drawText(u.screen, 0, infoTop+2, styleDefault, helpText)
	if u.message != "" {
		drawText(u.screen, 0, infoTop+3, styleError, u.message)
	}
	u.screen.Show()
}

func (u *UI) clearLine(y int) {
	w, _ := u.screen.Size()
	for x := 0; x < w; x++ {
		u.screen.SetContent(x, y, ' ', nil, styleDefault)
	}
}

func discRune(d game.Disc) rune {
	if d == game.Empty {
		return '.'
	}
	return '●'
}

func discColor(d game.Disc) tcell.Color {
	if d == game.Black {
		return tcell.ColorBlack
	}
	return tcell.ColorWhite
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
