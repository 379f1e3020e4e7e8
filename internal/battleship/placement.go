package battleship

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/battleship/internal/apperror"
	"github.com/rocketscienceinc/battleship/internal/entity"
)

// FleetBuilder collects one validated placement per ship length, shortest first.
// A rejected placement leaves the builder untouched, so the caller can retry the same length.
type FleetBuilder struct {
	board  entity.Board
	placed []entity.Placement
}

func NewFleetBuilder() *FleetBuilder {
	return &FleetBuilder{
		placed: make([]entity.Placement, 0, entity.NumShips),
	}
}

// NextLength - returns the length of the ship to place next, or 0 once the fleet is complete.
func (that *FleetBuilder) NextLength() int {
	if that.Done() {
		return 0
	}

	return entity.MinShipLength + len(that.placed)
}

func (that *FleetBuilder) Done() bool {
	return len(that.placed) == entity.NumShips
}

// Place - validates the next ship and commits it on success.
func (that *FleetBuilder) Place(anchor entity.Coord, orientation entity.Orientation) error {
	placement := entity.Placement{
		Length:      that.NextLength(),
		Anchor:      anchor,
		Orientation: orientation,
	}

	cells, err := that.check(placement)
	if err != nil {
		return err
	}

	for _, cell := range cells {
		if err = that.board.Occupy(cell); err != nil {
			return fmt.Errorf("failed to occupy cell: %w", err)
		}
	}

	that.placed = append(that.placed, placement)

	return nil
}

// Check - reports whether the placement would be accepted as the next ship, without committing it.
func (that *FleetBuilder) Check(placement entity.Placement) error {
	_, err := that.check(placement)
	return err
}

// Placements - returns the fleet ordered by length. Available only once complete.
func (that *FleetBuilder) Placements() ([]entity.Placement, error) {
	if !that.Done() {
		return nil, fmt.Errorf("%w: %d of %d ships placed", apperror.ErrIncompleteFleet, len(that.placed), entity.NumShips)
	}

	return slices.Clone(that.placed), nil
}

// Board - returns the occupancy board of the complete fleet.
func (that *FleetBuilder) Board() (entity.Board, error) {
	if !that.Done() {
		return entity.Board{}, fmt.Errorf("%w: %d of %d ships placed", apperror.ErrIncompleteFleet, len(that.placed), entity.NumShips)
	}

	return that.board, nil
}

func (that *FleetBuilder) check(placement entity.Placement) ([]entity.Coord, error) {
	if that.Done() {
		return nil, fmt.Errorf("%w: fleet already has %d ships", apperror.ErrInvalidShipLength, entity.NumShips)
	}

	if placement.Length != that.NextLength() {
		return nil, fmt.Errorf("%w: got %d, want %d", apperror.ErrInvalidShipLength, placement.Length, that.NextLength())
	}

	cells, err := placement.Cells()
	if err != nil {
		return nil, err
	}

	for _, cell := range cells {
		if that.board.Occupied(cell) {
			return nil, fmt.Errorf("%w: %s at %s", apperror.ErrOverlap, placement, cell)
		}
	}

	if !placement.Orientation.IsHorizontal() {
		return cells, nil
	}

	for _, other := range that.placed {
		adjacent, err := adjacentHorizontal(placement, other)
		if err != nil {
			return nil, err
		}

		if adjacent {
			return nil, fmt.Errorf("%w: %s next to %s", apperror.ErrAdjacentHorizontal, placement, other)
		}
	}

	return cells, nil
}

// adjacentHorizontal - reports two horizontal ships on neighbouring rows whose x-spans overlap.
// Vertical and mixed pairs are never adjacent under this rule.
func adjacentHorizontal(a, b entity.Placement) (bool, error) {
	if !a.Orientation.IsHorizontal() || !b.Orientation.IsHorizontal() {
		return false, nil
	}

	spanA, err := a.Span()
	if err != nil {
		return false, err
	}

	spanB, err := b.Span()
	if err != nil {
		return false, err
	}

	if spanA.MinY-spanB.MinY != 1 && spanB.MinY-spanA.MinY != 1 {
		return false, nil
	}

	return spanA.MaxX >= spanB.MinX && spanA.MinX <= spanB.MaxX, nil
}

// ValidateFleet - validates a participant's batch, given in any length order, and burns it into a board.
// The batch must hold exactly one ship per length from MinShipLength to MaxShipLength.
func ValidateFleet(batch []entity.Placement) (entity.Board, []entity.Placement, error) {
	seen := make(map[int]bool, len(batch))
	for _, placement := range batch {
		if placement.Length < entity.MinShipLength || placement.Length > entity.MaxShipLength {
			return entity.Board{}, nil, fmt.Errorf("%w: %d", apperror.ErrInvalidShipLength, placement.Length)
		}

		if seen[placement.Length] {
			return entity.Board{}, nil, fmt.Errorf("%w: %d", apperror.ErrDuplicateShipLength, placement.Length)
		}

		seen[placement.Length] = true
	}

	if len(batch) != entity.NumShips {
		return entity.Board{}, nil, fmt.Errorf("%w: %d of %d ships placed", apperror.ErrIncompleteFleet, len(batch), entity.NumShips)
	}

	ordered := slices.Clone(batch)
	slices.SortFunc(ordered, func(a, b entity.Placement) int {
		return a.Length - b.Length
	})

	builder := NewFleetBuilder()
	for _, placement := range ordered {
		if err := builder.Place(placement.Anchor, placement.Orientation); err != nil {
			return entity.Board{}, nil, fmt.Errorf("invalid placement: %w", err)
		}
	}

	board, err := builder.Board()
	if err != nil {
		return entity.Board{}, nil, err
	}

	placements, err := builder.Placements()
	if err != nil {
		return entity.Board{}, nil, err
	}

	return board, placements, nil
}
