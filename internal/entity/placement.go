package entity

import (
	"fmt"

	"github.com/rocketscienceinc/battleship/internal/apperror"
)

// Placement is one ship: Length consecutive cells starting at Anchor and extending along Orientation.
type Placement struct {
	Length      int         `json:"length"`
	Anchor      Coord       `json:"anchor"`
	Orientation Orientation `json:"orientation"`
}

// Span is the bounding box of a placement.
type Span struct {
	MinX, MaxX int
	MinY, MaxY int
}

// Cells - expands the placement into the cells it covers by repeated shifting.
func (that Placement) Cells() ([]Coord, error) {
	if that.Length < 1 {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidShipLength, that.Length)
	}

	if !that.Anchor.InBoard() {
		return nil, fmt.Errorf("%w: anchor %s", apperror.ErrOutOfBounds, that.Anchor)
	}

	cells := make([]Coord, 0, that.Length)
	current := that.Anchor
	cells = append(cells, current)

	for i := 1; i < that.Length; i++ {
		next, err := current.Shift(that.Orientation)
		if err != nil {
			return nil, fmt.Errorf("ship of length %d at %s %s: %w", that.Length, that.Anchor, that.Orientation, err)
		}

		cells = append(cells, next)
		current = next
	}

	return cells, nil
}

// Span - returns the min/max extent of the placement on both axes.
func (that Placement) Span() (Span, error) {
	cells, err := that.Cells()
	if err != nil {
		return Span{}, err
	}

	span := Span{MinX: cells[0].X, MaxX: cells[0].X, MinY: cells[0].Y, MaxY: cells[0].Y}
	for _, c := range cells[1:] {
		span.MinX = min(span.MinX, c.X)
		span.MaxX = max(span.MaxX, c.X)
		span.MinY = min(span.MinY, c.Y)
		span.MaxY = max(span.MaxY, c.Y)
	}

	return span, nil
}

func (that Placement) String() string {
	return fmt.Sprintf("%s at %s %s", ShipName(that.Length), that.Anchor, that.Orientation)
}

// ShipName - returns the display name for a ship length.
func ShipName(length int) string {
	switch length {
	case 2:
		return "Destroyer"
	case 3:
		return "Cruiser"
	case 4:
		return "Battleship"
	case 5:
		return "Carrier"
	default:
		return fmt.Sprintf("Size %d", length)
	}
}

// FleetCells - returns the number of cells a complete fleet covers.
func FleetCells() int {
	total := 0
	for length := MinShipLength; length <= MaxShipLength; length++ {
		total += length
	}

	return total
}
