package engine

import "errors"

// ErrIllegalMove is returned when a player answers with a move its side may
// not play.
var ErrIllegalMove = errors.New("illegal move")

type Runner interface {
	// Run plays a game to completion and reports the outcome
	Run() (Result, error)
}
