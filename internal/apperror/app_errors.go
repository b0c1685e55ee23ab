package apperror

import "errors"

var (
	ErrGameFinished  = errors.New("game is already finished")
	ErrCellOccupied  = errors.New("cell is already occupied")
	ErrInvalidIndex  = errors.New("index is out of range")
	ErrUnknownPlayer = errors.New("unknown player mark")
)
