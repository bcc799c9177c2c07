package apperror

import "errors"

var (
	ErrGameFinished   = errors.New("game is already finished")
	ErrCellOccupied   = errors.New("cell is already occupied")
	ErrMoveOutOfRange = errors.New("move is out of history range")
	ErrGameNotFound   = errors.New("game not found")

	ErrSessionNotFound = errors.New("session not found")
	ErrForeignGame     = errors.New("game belongs to another session")
)
