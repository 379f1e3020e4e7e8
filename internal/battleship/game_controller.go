package battleship

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/battleship/internal/apperror"
	"github.com/rocketscienceinc/battleship/internal/entity"
)

// Participant is one side of a match: a human behind some interface, a script or an algorithm.
// The game calls into exactly one participant at a time and blocks until the call returns.
type Participant interface {
	// PlaceShips returns one placement per ship length, in any order.
	PlaceShips() ([]entity.Placement, error)
	// Turn returns the next coordinate to fire at.
	Turn() (entity.Coord, error)
	// HitFeedback is called once per successful Turn with the outcome of the shot.
	HitFeedback(coord entity.Coord, hit bool)
	// CountHits returns the confirmed hits accumulated from HitFeedback.
	CountHits() int
	Name() string
}

type Option func(*Game)

// WithWinThreshold - overrides the number of hits that wins the game. Non-positive values are ignored.
func WithWinThreshold(hits int) Option {
	return func(game *Game) {
		if hits > 0 {
			game.winThreshold = hits
		}
	}
}

// Game is the match state machine. It owns both occupancy boards and the status.
type Game struct {
	ID string

	logger       *slog.Logger
	status       entity.Status
	winThreshold int

	participants map[entity.Side]Participant
	boards       map[entity.Side]*entity.Board
}

// New - creates a game in the Initializing state.
func New(logger *slog.Logger, p1, p2 Participant, opts ...Option) *Game {
	id := uuid.NewString()

	game := &Game{
		ID:           id,
		logger:       logger.With("component", "battleship", "game_id", id),
		status:       entity.StatusInitializing,
		winThreshold: entity.FleetCells(),
		participants: map[entity.Side]Participant{
			entity.SideOne: p1,
			entity.SideTwo: p2,
		},
		boards: map[entity.Side]*entity.Board{
			entity.SideOne: {},
			entity.SideTwo: {},
		},
	}

	for _, opt := range opts {
		opt(game)
	}

	return game
}

// Start - creates a game and collects both fleets, leaving it on P1's turn.
func Start(logger *slog.Logger, p1, p2 Participant, opts ...Option) (*Game, error) {
	game := New(logger, p1, p2, opts...)

	if err := game.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize game: %w", err)
	}

	return game, nil
}

// Initialize - requests placements from P1 then P2 and burns them into the boards.
// Nothing is committed unless both fleets are valid.
func (that *Game) Initialize() error {
	if !that.status.IsInitializing() {
		return apperror.ErrGameStarted
	}

	boards := make(map[entity.Side]entity.Board, len(that.participants))
	for _, side := range []entity.Side{entity.SideOne, entity.SideTwo} {
		participant := that.participants[side]

		batch, err := participant.PlaceShips()
		if err != nil {
			return fmt.Errorf("failed to get placements from %s: %w", participant.Name(), err)
		}

		board, _, err := ValidateFleet(batch)
		if err != nil {
			return fmt.Errorf("failed to validate fleet of %s: %w", participant.Name(), err)
		}

		boards[side] = board
	}

	for side, board := range boards {
		*that.boards[side] = board
	}

	that.status = entity.StatusP1Turn
	that.logger.Info("fleets placed", "player_one", that.participants[entity.SideOne].Name(),
		"player_two", that.participants[entity.SideTwo].Name(), "win_threshold", that.winThreshold)

	return nil
}

// Turn - advances the game by one step and returns the resulting status.
// An Initializing game is initialized; a finished game is returned unchanged.
func (that *Game) Turn() (entity.Status, error) {
	switch {
	case that.status.IsInitializing():
		if err := that.Initialize(); err != nil {
			return that.status, err
		}

		return that.status, nil
	case that.status.IsFinished():
		return that.status, nil
	}

	if err := that.status.ConfirmOngoingState(); err != nil {
		return that.status, err
	}

	side := that.status.ActiveSide()
	shooter := that.participants[side]

	target, err := shooter.Turn()
	if err != nil {
		return that.status, fmt.Errorf("failed to get target from %s: %w", shooter.Name(), err)
	}

	if !target.InBoard() {
		return that.status, fmt.Errorf("%w: target %s from %s", apperror.ErrOutOfBounds, target, shooter.Name())
	}

	hit := that.boards[side.Opponent()].Occupied(target)
	shooter.HitFeedback(target, hit)

	hits := shooter.CountHits()
	that.logger.Debug("shot fired", "side", side.String(), "player", shooter.Name(), "target", target.String(), "hit", hit, "hits", hits)

	if hits >= that.winThreshold {
		that.status = entity.WinStatus(side)
		that.logger.Info("game won", "side", side.String(), "player", shooter.Name(), "hits", hits)

		return that.status, nil
	}

	that.status = entity.TurnStatus(side.Opponent())

	return that.status, nil
}

func (that *Game) Status() entity.Status {
	return that.status
}

func (that *Game) WinThreshold() int {
	return that.winThreshold
}

// Board - returns a copy of the side's occupancy board.
func (that *Game) Board(side entity.Side) entity.Board {
	board, ok := that.boards[side]
	if !ok {
		return entity.Board{}
	}

	return *board
}

func (that *Game) Participant(side entity.Side) Participant {
	return that.participants[side]
}

// Winner - returns the winning participant once the game is finished.
func (that *Game) Winner() (Participant, bool) {
	side, ok := that.status.Winner()
	if !ok {
		return nil, false
	}

	return that.participants[side], true
}
