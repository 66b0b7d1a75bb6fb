package apperror

import "errors"

var (
	ErrNotFound           = errors.New("session not found")
	ErrUnknownGame        = errors.New("unknown game")
	ErrInvalidRequest     = errors.New("invalid request")
	ErrOutOfRange         = errors.New("coordinates out of range")
	ErrIllegalMove        = errors.New("illegal move")
	ErrNotYourTurn        = errors.New("it's not your turn")
	ErrGameFinished       = errors.New("game is already finished")
	ErrInvariantViolation = errors.New("invariant violation")
)
