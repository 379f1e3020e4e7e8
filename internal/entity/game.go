package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/battleship/internal/apperror"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

type Status int

const (
	StatusInitializing Status = iota
	StatusP1Turn
	StatusP2Turn
	StatusP1Win
	StatusP2Win
)

func (that Status) String() string {
	switch that {
	case StatusInitializing:
		return "Initializing"
	case StatusP1Turn:
		return "P1Turn"
	case StatusP2Turn:
		return "P2Turn"
	case StatusP1Win:
		return "P1Win"
	case StatusP2Win:
		return "P2Win"
	default:
		return "Unknown"
	}
}

func (that Status) IsFinished() bool {
	return that == StatusP1Win || that == StatusP2Win
}

func (that Status) IsOngoing() bool {
	return that == StatusP1Turn || that == StatusP2Turn
}

func (that Status) IsInitializing() bool {
	return that == StatusInitializing
}

// ActiveSide - returns the side whose turn it is. Only meaningful while ongoing.
func (that Status) ActiveSide() Side {
	if that == StatusP2Turn {
		return SideTwo
	}

	return SideOne
}

// Winner - returns the winning side of a finished game.
func (that Status) Winner() (Side, bool) {
	switch that {
	case StatusP1Win:
		return SideOne, true
	case StatusP2Win:
		return SideTwo, true
	default:
		return 0, false
	}
}

// ConfirmOngoingState - returns nil only while a side is on turn.
func (that Status) ConfirmOngoingState() error {
	switch {
	case that.IsInitializing():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrUnknownGameStatus, int(that))
	}
}

// TurnStatus - returns the status in which side is on turn.
func TurnStatus(side Side) Status {
	if side == SideTwo {
		return StatusP2Turn
	}

	return StatusP1Turn
}

// WinStatus - returns the terminal status in which side has won.
func WinStatus(side Side) Status {
	if side == SideTwo {
		return StatusP2Win
	}

	return StatusP1Win
}
