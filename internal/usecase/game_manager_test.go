package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/battleship/internal/apperror"
	"github.com/rocketscienceinc/battleship/internal/battleship"
	"github.com/rocketscienceinc/battleship/internal/entity"
	"github.com/rocketscienceinc/battleship/internal/participant"
	"github.com/rocketscienceinc/battleship/testing/suite"
)

var errAbandoned = errors.New("participant abandoned the match")

const (
	rowsFleet = `
ships:
  - {length: 2, at: "(1, 1)", facing: Right}
  - {length: 3, at: "(1, 3)", facing: Right}
  - {length: 4, at: "(1, 5)", facing: Right}
  - {length: 5, at: "(1, 7)", facing: Right}
  - {length: 6, at: "(8, 1)", facing: Up}
`
	columnsFleet = `
ships:
  - {length: 2, at: "(1, 1)", facing: Up}
  - {length: 3, at: "(3, 1)", facing: Up}
  - {length: 4, at: "(5, 1)", facing: Up}
  - {length: 5, at: "(7, 1)", facing: Up}
  - {length: 6, at: "(2, 3)", facing: Up}
`
)

// sharpshooter hits every cell of the columns fleet.
const sharpshooterShots = `
shots: ["(1, 1)", "(1, 2)", "(3, 1)", "(3, 2)", "(3, 3)", "(5, 1)", "(5, 2)", "(5, 3)", "(5, 4)",
        "(7, 1)", "(7, 2)", "(7, 3)", "(7, 4)", "(7, 5)", "(2, 3)", "(2, 4)", "(2, 5)", "(2, 6)", "(2, 7)", "(2, 8)"]
`

// drifter never hits the rows fleet.
const drifterShots = `
shots: ["(1, 8)", "(2, 8)", "(3, 8)", "(4, 8)", "(5, 8)", "(6, 8)", "(7, 8)", "(8, 8)", "(1, 6)", "(2, 6)",
        "(3, 6)", "(4, 6)", "(5, 6)", "(6, 6)", "(7, 6)", "(8, 7)", "(8, 8)", "(1, 4)", "(2, 4)", "(3, 4)"]
`

func loadScript(t *testing.T, name, fleet, shots string) *participant.Script {
	t.Helper()

	script, err := participant.ParseScript([]byte("name: " + name + "\n" + fleet + shots))
	require.NoError(t, err)

	return script
}

// offBoardOnce fires off the board once before delegating to a script.
type offBoardOnce struct {
	*participant.Script
	misfired bool
}

func (that *offBoardOnce) Turn() (entity.Coord, error) {
	if !that.misfired {
		that.misfired = true
		return entity.Coord{X: -1, Y: entity.Size}, nil
	}

	return that.Script.Turn()
}

// alwaysOffBoard never produces a usable target.
type alwaysOffBoard struct {
	*participant.Script
	attempts int
}

func (that *alwaysOffBoard) Turn() (entity.Coord, error) {
	that.attempts++
	return entity.Coord{X: entity.Size, Y: entity.Size}, nil
}

// quitter abandons the match on its first turn.
type quitter struct {
	*participant.Script
}

func (that *quitter) Turn() (entity.Coord, error) {
	return entity.Coord{}, errAbandoned
}

func TestGameManager_Play(t *testing.T) {
	t.Run("Plays a match to the winner", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: a sharpshooter against a drifter
		p1 := loadScript(t, "sharpshooter", rowsFleet, sharpshooterShots)
		p2 := loadScript(t, "drifter", columnsFleet, drifterShots)
		manager := NewGameManager(st.Logger, 100, 3)

		// When: playing the match
		result, err := manager.Play(ctx, p1, p2)

		// Then: P1 wins with its 20th shot
		require.NoError(t, err)
		assert.NotEmpty(t, result.GameID)
		assert.Equal(t, entity.StatusP1Win, result.Status)
		assert.Equal(t, "sharpshooter", result.Winner)
		assert.Equal(t, 39, result.Shots)
		assert.Equal(t, 20, p1.CountHits())
		assert.Zero(t, p2.CountHits())
	})

	t.Run("Configured threshold ends the match early", func(t *testing.T) {
		ctx, st := suite.New(t)

		p1 := loadScript(t, "sharpshooter", rowsFleet, sharpshooterShots)
		p2 := loadScript(t, "drifter", columnsFleet, drifterShots)
		manager := NewGameManager(st.Logger, 100, 3, battleship.WithWinThreshold(5))

		result, err := manager.Play(ctx, p1, p2)

		require.NoError(t, err)
		assert.Equal(t, entity.StatusP1Win, result.Status)
		assert.Equal(t, 9, result.Shots)
		assert.Equal(t, 15, p1.Remaining())
	})

	t.Run("Off-board target is retried", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: P1 misfires once before following its script
		p1 := &offBoardOnce{Script: loadScript(t, "sharpshooter", rowsFleet, sharpshooterShots)}
		p2 := loadScript(t, "drifter", columnsFleet, drifterShots)
		manager := NewGameManager(st.Logger, 100, 1)

		// When: playing the match
		result, err := manager.Play(ctx, p1, p2)

		// Then: the misfire cost no shot
		require.NoError(t, err)
		assert.Equal(t, entity.StatusP1Win, result.Status)
		assert.Equal(t, 39, result.Shots)
	})

	t.Run("Retry budget is enforced", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: P1 never fires on the board
		p1 := &alwaysOffBoard{Script: loadScript(t, "lost", rowsFleet, "")}
		p2 := loadScript(t, "drifter", columnsFleet, drifterShots)
		manager := NewGameManager(st.Logger, 100, 2)

		// When: playing the match
		result, err := manager.Play(ctx, p1, p2)

		// Then: the match is abandoned after the initial attempt and two retries
		require.ErrorIs(t, err, ErrRetryLimitReached)
		require.ErrorIs(t, err, apperror.ErrOutOfBounds)
		assert.Equal(t, 3, p1.attempts)
		assert.Equal(t, entity.StatusP1Turn, result.Status)
		assert.Zero(t, result.Shots)
	})

	t.Run("Participant failure is not retried", func(t *testing.T) {
		ctx, st := suite.New(t)

		p1 := loadScript(t, "sharpshooter", rowsFleet, sharpshooterShots)
		p2 := &quitter{Script: loadScript(t, "quitter", columnsFleet, "")}
		manager := NewGameManager(st.Logger, 100, 3)

		result, err := manager.Play(ctx, p1, p2)

		require.ErrorIs(t, err, errAbandoned)
		assert.Equal(t, entity.StatusP2Turn, result.Status)
		assert.Equal(t, 1, result.Shots)
	})

	t.Run("Turn limit", func(t *testing.T) {
		ctx, st := suite.New(t)

		p1 := loadScript(t, "sharpshooter", rowsFleet, sharpshooterShots)
		p2 := loadScript(t, "drifter", columnsFleet, drifterShots)
		manager := NewGameManager(st.Logger, 10, 3)

		result, err := manager.Play(ctx, p1, p2)

		require.ErrorIs(t, err, ErrTurnLimitReached)
		assert.Equal(t, 10, result.Shots)
		assert.True(t, result.Status.IsOngoing())
	})

	t.Run("Cancelled context stops between turns", func(t *testing.T) {
		ctx, st := suite.New(t)
		ctx, cancel := context.WithCancel(ctx)
		cancel()

		p1 := loadScript(t, "sharpshooter", rowsFleet, sharpshooterShots)
		p2 := loadScript(t, "drifter", columnsFleet, drifterShots)
		manager := NewGameManager(st.Logger, 100, 3)

		result, err := manager.Play(ctx, p1, p2)

		require.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, result.Shots)
		assert.Equal(t, 20, p1.Remaining())
	})

	t.Run("Requires two participants", func(t *testing.T) {
		ctx, st := suite.New(t)

		p1 := loadScript(t, "sharpshooter", rowsFleet, sharpshooterShots)
		manager := NewGameManager(st.Logger, 100, 3)

		_, err := manager.Play(ctx, p1, nil)

		require.ErrorIs(t, err, ErrParticipantRequired)
	})
}
