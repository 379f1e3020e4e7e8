package participant

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/rocketscienceinc/battleship/internal/apperror"
	"github.com/rocketscienceinc/battleship/internal/battleship"
	"github.com/rocketscienceinc/battleship/internal/entity"
)

var ErrScriptExhausted = errors.New("script has no more shots")

type shipScript struct {
	Length int    `yaml:"length"`
	At     string `yaml:"at"`
	Facing string `yaml:"facing"`
}

type fleetScript struct {
	Name  string       `yaml:"name"`
	Ships []shipScript `yaml:"ships"`
	Shots []string     `yaml:"shots"`
}

// Script replays a fleet and a fixed sequence of shots read from YAML.
type Script struct {
	Tracker

	name       string
	placements []entity.Placement
	shots      []entity.Coord
	fired      int
}

// LoadScript - reads a script file. The file name is used when the script has no name.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	script, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse script %s: %w", path, err)
	}

	if script.name == "" {
		script.name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return script, nil
}

// ParseScript - decodes a script. Several ships of one length may be listed: they are tried in order
// and the first one the fleet accepts is kept, the way a prompt would be retried.
func ParseScript(data []byte) (*Script, error) {
	var raw fleetScript
	if err := yaml.UnmarshalStrict(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrParse, err)
	}

	placements, err := buildFleet(raw.Ships)
	if err != nil {
		return nil, err
	}

	shots := make([]entity.Coord, 0, len(raw.Shots))
	for _, shot := range raw.Shots {
		coord, err := entity.ParseCoord(shot)
		if err != nil {
			return nil, fmt.Errorf("invalid shot: %w", err)
		}

		shots = append(shots, coord)
	}

	return &Script{
		name:       raw.Name,
		placements: placements,
		shots:      shots,
	}, nil
}

func buildFleet(ships []shipScript) ([]entity.Placement, error) {
	candidates := make(map[int][]entity.Placement, entity.NumShips)
	for _, ship := range ships {
		anchor, err := entity.ParseCoord(ship.At)
		if err != nil {
			return nil, fmt.Errorf("invalid ship anchor: %w", err)
		}

		orientation, err := entity.ParseOrientation(ship.Facing)
		if err != nil {
			return nil, fmt.Errorf("invalid ship orientation: %w", err)
		}

		candidates[ship.Length] = append(candidates[ship.Length], entity.Placement{
			Length:      ship.Length,
			Anchor:      anchor,
			Orientation: orientation,
		})
	}

	for length := range candidates {
		if length < entity.MinShipLength || length > entity.MaxShipLength {
			return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidShipLength, length)
		}
	}

	builder := battleship.NewFleetBuilder()
	for !builder.Done() {
		length := builder.NextLength()

		options, ok := candidates[length]
		if !ok {
			return nil, fmt.Errorf("%w: no %s in script", apperror.ErrIncompleteFleet, entity.ShipName(length))
		}

		var lastErr error
		for _, option := range options {
			if lastErr = builder.Place(option.Anchor, option.Orientation); lastErr == nil {
				break
			}
		}

		if lastErr != nil {
			return nil, fmt.Errorf("no valid placement for %s: %w", entity.ShipName(length), lastErr)
		}
	}

	return builder.Placements()
}

func (that *Script) PlaceShips() ([]entity.Placement, error) {
	return slices.Clone(that.placements), nil
}

func (that *Script) Turn() (entity.Coord, error) {
	if that.fired >= len(that.shots) {
		return entity.Coord{}, fmt.Errorf("%w: %s fired %d shots", ErrScriptExhausted, that.name, that.fired)
	}

	shot := that.shots[that.fired]
	that.fired++

	return shot, nil
}

func (that *Script) Name() string {
	return that.name
}

// Remaining - returns the number of shots left in the script.
func (that *Script) Remaining() int {
	return len(that.shots) - that.fired
}
