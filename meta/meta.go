// meta/meta.go
package meta

// SearchDepth defines the number of plies the hard CPU looks ahead.
const SearchDepth = 4

// GO_ROUTINES defines the default number of goroutines for root-parallel search.
const GO_ROUTINES = 4

// GAMES defines the number of games per matchup in experiments.
const GAMES = 10

// MAX_TURNS bounds the engine loop. A game has at most 60 moves and a pass
// can never follow a pass, so 120 turns always suffice.
const MAX_TURNS = 120
