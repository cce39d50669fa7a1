package game

// Size is the fixed width and height of the board.
const Size = 8

// Evaluate scores a position from the perspective side's point of view.
// Higher is better for perspective.
type Evaluate func(state *GameState, perspective Disc) int
