package game

import "fmt"

// directions holds the eight compass steps as (row, col) deltas.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// GameState is the board plus the side to move. It is changed only through
// Play and Pass; use Copy to explore hypothetical positions.
type GameState struct {
	board Board
	turn  Disc
}

// NewGameState returns the opening position with black to move.
func NewGameState() *GameState {
	return &GameState{
		board: NewBoard(),
		turn:  Black,
	}
}

// NewGameStateFrom returns a state for an arbitrary position.
func NewGameStateFrom(board Board, turn Disc) *GameState {
	if !turn.IsSide() {
		panic(fmt.Sprintf("side to move must be black or white, got %s", turn))
	}
	return &GameState{board: board, turn: turn}
}

// Copy returns an independent copy of the state.
func (gs *GameState) Copy() *GameState {
	c := *gs
	return &c
}

// Turn returns the side to move.
func (gs *GameState) Turn() Disc {
	return gs.turn
}

// Board returns a copy of the board.
func (gs *GameState) Board() Board {
	return gs.board
}

// Get returns the disc at (row, col), or ok=false when off the board.
func (gs *GameState) Get(row, col int) (Disc, bool) {
	return gs.board.Get(row, col)
}

// IsLegal reports whether side may place a disc at (row, col).
func (gs *GameState) IsLegal(row, col int, side Disc) bool {
	if d, ok := gs.board.Get(row, col); !ok || d != Empty {
		return false
	}
	for _, dir := range directions {
		if gs.captures(row, col, dir, side) > 0 {
			return true
		}
	}
	return false
}

// captures returns how many opponent discs a disc of side placed at
// (row, col) would flip along dir. Zero means the ray does not validate.
func (gs *GameState) captures(row, col int, dir [2]int, side Disc) int {
	opponent := side.Opponent()
	n := 0
	r, c := row+dir[0], col+dir[1]
	for {
		d, ok := gs.board.Get(r, c)
		switch {
		case !ok || d == Empty:
			return 0
		case d == opponent:
			n++
		case d == side:
			return n
		}
		r += dir[0]
		c += dir[1]
	}
}

// LegalMoves returns every legal move of side in row-major order.
func (gs *GameState) LegalMoves(side Disc) []Move {
	var moves []Move
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if gs.IsLegal(r, c, side) {
				moves = append(moves, Move{Row: r, Col: c})
			}
		}
	}
	return moves
}

// hasMoves is LegalMoves without the allocation.
func (gs *GameState) hasMoves(side Disc) bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if gs.IsLegal(r, c, side) {
				return true
			}
		}
	}
	return false
}

// Play places a disc of side at (row, col), flips every captured opponent
// disc and hands the turn over. It returns false, leaving the state
// untouched, when the move is illegal.
func (gs *GameState) Play(row, col int, side Disc) bool {
	if !gs.IsLegal(row, col, side) {
		return false
	}

	gs.board.Set(row, col, side)
	for _, dir := range directions {
		n := gs.captures(row, col, dir, side)
		r, c := row, col
		for i := 0; i < n; i++ {
			r += dir[0]
			c += dir[1]
			gs.board.Set(r, c, side)
		}
	}
	gs.turn = gs.turn.Opponent()
	return true
}

// PlayMove is Play for a Move value.
func (gs *GameState) PlayMove(m Move, side Disc) bool {
	return gs.Play(m.Row, m.Col, side)
}

// Pass hands the turn to the opponent when the side to move is stuck but the
// game goes on. It returns false and changes nothing otherwise.
func (gs *GameState) Pass() bool {
	if gs.hasMoves(gs.turn) || gs.IsOver() {
		return false
	}
	gs.turn = gs.turn.Opponent()
	return true
}

// IsOver reports whether neither side has a legal move.
func (gs *GameState) IsOver() bool {
	return !gs.hasMoves(Black) && !gs.hasMoves(White)
}

// Counts returns the number of black and white discs on the board.
func (gs *GameState) Counts() (black, white int) {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			switch gs.board[r][c] {
			case Black:
				black++
			case White:
				white++
			}
		}
	}
	return black, white
}

// Count returns the number of discs side has on the board.
func (gs *GameState) Count(side Disc) int {
	black, white := gs.Counts()
	switch side {
	case Black:
		return black
	case White:
		return white
	}
	return 0
}

// Winner returns the side with more discs once the game is over, or Empty
// for a draw or a game still in progress.
func (gs *GameState) Winner() Disc {
	if !gs.IsOver() {
		return Empty
	}
	black, white := gs.Counts()
	switch {
	case black > white:
		return Black
	case white > black:
		return White
	}
	return Empty
}
