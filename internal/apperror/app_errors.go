package apperror

import "errors"

// Placement and input errors are recoverable: the caller retries with the same participant.
var (
	ErrParse              = errors.New("malformed input")
	ErrOutOfBounds        = errors.New("coordinate is out of bounds")
	ErrOverlap            = errors.New("ship overlaps another ship")
	ErrAdjacentHorizontal = errors.New("horizontal ship is adjacent to another horizontal ship")
)

var (
	ErrInvalidShipLength   = errors.New("invalid ship length")
	ErrDuplicateShipLength = errors.New("ship length is already placed")
	ErrIncompleteFleet     = errors.New("fleet is not complete")
)

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrGameStarted      = errors.New("game is already started")
)
