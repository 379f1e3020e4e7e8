package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/battleship/internal/apperror"
	"github.com/rocketscienceinc/battleship/internal/battleship"
	"github.com/rocketscienceinc/battleship/internal/entity"
)

var (
	ErrTurnLimitReached    = errors.New("turn limit reached")
	ErrRetryLimitReached   = errors.New("retry limit reached")
	ErrParticipantRequired = errors.New("two participants are required")
)

// Result is the outcome of a match driven by the GameManager.
type Result struct {
	GameID string        `json:"game_id"`
	Status entity.Status `json:"status"`
	Winner string        `json:"winner,omitempty"`
	Shots  int           `json:"shots"`
}

// GameManager drives games to a terminal state and owns the retry policy for recoverable errors.
type GameManager struct {
	logger *slog.Logger

	maxTurns   int
	maxRetries int
	options    []battleship.Option
}

func NewGameManager(logger *slog.Logger, maxTurns, maxRetries int, options ...battleship.Option) *GameManager {
	return &GameManager{
		logger: logger,

		maxTurns:   maxTurns,
		maxRetries: maxRetries,
		options:    options,
	}
}

// Play - runs a full match. A non-positive maxTurns means no turn limit.
// Cancelling ctx stops the match between turns.
func (that *GameManager) Play(ctx context.Context, p1, p2 battleship.Participant) (*Result, error) {
	if p1 == nil || p2 == nil {
		return nil, ErrParticipantRequired
	}

	game := battleship.New(that.logger, p1, p2, that.options...)
	log := that.logger.With("method", "Play", "game_id", game.ID)

	if err := game.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize game: %w", err)
	}

	result := &Result{GameID: game.ID, Status: game.Status()}

	for !game.Status().IsFinished() {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("match interrupted: %w", err)
		}

		if that.maxTurns > 0 && result.Shots >= that.maxTurns {
			return result, fmt.Errorf("%w: %d shots", ErrTurnLimitReached, result.Shots)
		}

		status, err := that.turn(game, log)
		result.Status = status
		if err != nil {
			return result, err
		}

		result.Shots++
	}

	if winner, ok := game.Winner(); ok {
		result.Winner = winner.Name()
	}

	log.Info("match finished", "status", result.Status.String(), "winner", result.Winner, "shots", result.Shots)

	return result, nil
}

// turn - plays one shot, retrying recoverable errors up to maxRetries times.
func (that *GameManager) turn(game *battleship.Game, log *slog.Logger) (entity.Status, error) {
	var (
		status entity.Status
		err    error
	)

	for attempt := 0; attempt <= that.maxRetries; attempt++ {
		status, err = game.Turn()
		if err == nil {
			return status, nil
		}

		if !isRecoverable(err) {
			return status, fmt.Errorf("failed to make turn: %w", err)
		}

		log.Warn("turn rejected", "status", status.String(), "attempt", attempt+1, "error", err)
	}

	return status, fmt.Errorf("%w: %w", ErrRetryLimitReached, err)
}

func isRecoverable(err error) bool {
	return errors.Is(err, apperror.ErrParse) || errors.Is(err, apperror.ErrOutOfBounds)
}
