package entity

import (
	"fmt"

	"github.com/rocketscienceinc/battleship/internal/apperror"
)

type CellState int

const (
	Unknown CellState = iota
	Hit
	Miss
)

func (that CellState) String() string {
	switch that {
	case Unknown:
		return "Unknown"
	case Hit:
		return "Hit"
	case Miss:
		return "Miss"
	default:
		return "Invalid"
	}
}

// Board records own-ship occupancy. Indexed as [x][y].
type Board struct {
	cells [Size][Size]bool
}

// Occupied - reports whether a ship covers the coordinate. Off-board coordinates are never occupied.
func (that *Board) Occupied(c Coord) bool {
	if !c.InBoard() {
		return false
	}

	return that.cells[c.X][c.Y]
}

// Occupy - marks the coordinate as covered by a ship.
func (that *Board) Occupy(c Coord) error {
	if !c.InBoard() {
		return fmt.Errorf("%w: %s", apperror.ErrOutOfBounds, c)
	}

	if that.cells[c.X][c.Y] {
		return fmt.Errorf("%w: %s", apperror.ErrOverlap, c)
	}

	that.cells[c.X][c.Y] = true

	return nil
}

// Count - returns the number of occupied cells.
func (that *Board) Count() int {
	count := 0
	for x := range that.cells {
		for y := range that.cells[x] {
			if that.cells[x][y] {
				count++
			}
		}
	}

	return count
}

// Cells - returns a copy of the occupancy grid.
func (that *Board) Cells() [Size][Size]bool {
	return that.cells
}

// View records what an observer has learned about the opponent's board. Indexed as [x][y].
type View struct {
	cells [Size][Size]CellState
}

// Record - stores the outcome of a shot. A repeated shot overwrites the previous outcome.
func (that *View) Record(c Coord, hit bool) error {
	if !c.InBoard() {
		return fmt.Errorf("%w: %s", apperror.ErrOutOfBounds, c)
	}

	if hit {
		that.cells[c.X][c.Y] = Hit
	} else {
		that.cells[c.X][c.Y] = Miss
	}

	return nil
}

// At - returns the recorded state; off-board coordinates are Unknown.
func (that *View) At(c Coord) CellState {
	if !c.InBoard() {
		return Unknown
	}

	return that.cells[c.X][c.Y]
}

func (that *View) CountHits() int {
	return that.count(Hit)
}

func (that *View) CountMisses() int {
	return that.count(Miss)
}

// Cells - returns a copy of the tri-state grid.
func (that *View) Cells() [Size][Size]CellState {
	return that.cells
}

func (that *View) count(state CellState) int {
	count := 0
	for x := range that.cells {
		for y := range that.cells[x] {
			if that.cells[x][y] == state {
				count++
			}
		}
	}

	return count
}
