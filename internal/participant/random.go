package participant

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/battleship/internal/battleship"
	"github.com/rocketscienceinc/battleship/internal/entity"
)

// RandomName selects the random participant instead of a script file.
const RandomName = "random"

const maxPlacementAttempts = 256

var (
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrFleetNotPlaced   = errors.New("could not place fleet")
)

// Random places its fleet and fires at unexplored cells uniformly at random.
type Random struct {
	Tracker

	name string
	rnd  *rand.Rand
}

func NewRandom(name string, seed int64) *Random {
	return &Random{
		name: name,
		rnd:  rand.New(rand.NewSource(seed)), //nolint: gosec // it's ok
	}
}

func (that *Random) Name() string {
	return that.name
}

// PlaceShips - drops ships on random anchors until the fleet is complete, starting over when a ship gets stuck.
func (that *Random) PlaceShips() ([]entity.Placement, error) {
	orientations := []entity.Orientation{entity.Up, entity.Down, entity.Left, entity.Right}

	for range maxPlacementAttempts {
		builder := battleship.NewFleetBuilder()

		for attempt := 0; !builder.Done() && attempt < maxPlacementAttempts; attempt++ {
			anchor := entity.Coord{X: that.rnd.Intn(entity.Size), Y: that.rnd.Intn(entity.Size)}
			orientation := orientations[that.rnd.Intn(len(orientations))]

			// rejected anchors are simply retried
			_ = builder.Place(anchor, orientation)
		}

		if builder.Done() {
			return builder.Placements()
		}
	}

	return nil, fmt.Errorf("%w after %d attempts", ErrFleetNotPlaced, maxPlacementAttempts)
}

func (that *Random) Turn() (entity.Coord, error) {
	view := that.View()

	available := make([]entity.Coord, 0, entity.Size*entity.Size)
	for x := range entity.Size {
		for y := range entity.Size {
			coord := entity.Coord{X: x, Y: y}
			if view.At(coord) == entity.Unknown {
				available = append(available, coord)
			}
		}
	}

	if len(available) == 0 {
		return entity.Coord{}, ErrNoAvailableMoves
	}

	return available[that.rnd.Intn(len(available))], nil
}
