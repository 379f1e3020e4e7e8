package entity

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/rocketscienceinc/battleship/internal/apperror"
)

const (
	Size     = 8
	NumShips = 5

	MinShipLength = 2
	MaxShipLength = NumShips + 1
)

// Coord is a 0-indexed board position. Off-board values are representable but never stored in a grid.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type Orientation int

const (
	Up Orientation = iota
	Down
	Left
	Right
)

func (that Orientation) String() string {
	switch that {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// IsHorizontal - reports whether ships with this orientation extend along a row.
func (that Orientation) IsHorizontal() bool {
	return that == Left || that == Right
}

// ParseOrientation - parses one of the literal tokens Up, Down, Left or Right.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.TrimSpace(s) {
	case "Up":
		return Up, nil
	case "Down":
		return Down, nil
	case "Left":
		return Left, nil
	case "Right":
		return Right, nil
	default:
		return 0, fmt.Errorf("%w: orientation %q", apperror.ErrParse, s)
	}
}

// InBoard - reports whether both components are within [0, Size-1].
func (that Coord) InBoard() bool {
	return that.X >= 0 && that.X < Size && that.Y >= 0 && that.Y < Size
}

// Shift - moves the coordinate one cell along the orientation.
func (that Coord) Shift(o Orientation) (Coord, error) {
	return that.ShiftBy(o, 1)
}

// ShiftBy - moves the coordinate dist cells along the orientation.
// Up and Right increase the axis, Down and Left decrease it.
func (that Coord) ShiftBy(o Orientation, dist int) (Coord, error) {
	if dist < 0 {
		return Coord{}, fmt.Errorf("%w: negative distance %d", apperror.ErrOutOfBounds, dist)
	}

	shifted := that
	switch o {
	case Up:
		shifted.Y += dist
	case Down:
		shifted.Y -= dist
	case Left:
		shifted.X -= dist
	case Right:
		shifted.X += dist
	default:
		return Coord{}, fmt.Errorf("%w: orientation %d", apperror.ErrParse, o)
	}

	if !shifted.InBoard() {
		return Coord{}, fmt.Errorf("%w: %s shifted %s by %d", apperror.ErrOutOfBounds, that, o, dist)
	}

	return shifted, nil
}

// String - renders the 1-indexed text form "(x, y)".
func (that Coord) String() string {
	return fmt.Sprintf("(%d, %d)", that.X+1, that.Y+1)
}

// ParseCoord - parses the 1-indexed text form "(x, y)" into a 0-indexed coordinate.
// Whitespace anywhere in the input is ignored.
func ParseCoord(s string) (Coord, error) {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)

	body, ok := strings.CutPrefix(compact, "(")
	if !ok {
		return Coord{}, fmt.Errorf("%w: coordinate %q must start with '('", apperror.ErrParse, s)
	}

	body, ok = strings.CutSuffix(body, ")")
	if !ok {
		return Coord{}, fmt.Errorf("%w: coordinate %q must end with ')'", apperror.ErrParse, s)
	}

	first, second, ok := strings.Cut(body, ",")
	if !ok {
		return Coord{}, fmt.Errorf("%w: coordinate %q is missing ','", apperror.ErrParse, s)
	}

	x, err := strconv.Atoi(first)
	if err != nil {
		return Coord{}, fmt.Errorf("%w: coordinate %q: %w", apperror.ErrParse, s, err)
	}

	y, err := strconv.Atoi(second)
	if err != nil {
		return Coord{}, fmt.Errorf("%w: coordinate %q: %w", apperror.ErrParse, s, err)
	}

	if x < 1 || x > Size || y < 1 || y > Size {
		return Coord{}, fmt.Errorf("%w: coordinate %q must be within 1-%d", apperror.ErrParse, s, Size)
	}

	return Coord{X: x - 1, Y: y - 1}, nil
}
