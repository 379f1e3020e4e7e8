package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/battleship/internal/battleship"
	"github.com/rocketscienceinc/battleship/internal/config"
	"github.com/rocketscienceinc/battleship/internal/participant"
	"github.com/rocketscienceinc/battleship/internal/usecase"
)

// RunApp - runs one match between the two configured fleet scripts.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	seed := conf.Match.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	playerOne, err := newParticipant(conf.Match.PlayerOne, "random-one", seed)
	if err != nil {
		return fmt.Errorf("could not load player one: %w", err)
	}

	playerTwo, err := newParticipant(conf.Match.PlayerTwo, "random-two", seed+1)
	if err != nil {
		return fmt.Errorf("could not load player two: %w", err)
	}

	gameManager := usecase.NewGameManager(logger, conf.Match.MaxTurns, conf.Match.MaxRetries,
		battleship.WithWinThreshold(conf.Match.WinThreshold))

	log.Info("Starting match", "player_one", playerOne.Name(), "player_two", playerTwo.Name())

	result, err := gameManager.Play(ctx, playerOne, playerTwo)
	if err != nil {
		return fmt.Errorf("match failed: %w", err)
	}

	log.Info("Match result", "game_id", result.GameID, "status", result.Status.String(),
		"winner", result.Winner, "shots", result.Shots,
		"player_one_hits", playerOne.CountHits(), "player_two_hits", playerTwo.CountHits())

	return nil
}

// newParticipant - builds the random participant for "random", otherwise loads a fleet script.
func newParticipant(source, name string, seed int64) (battleship.Participant, error) {
	if source == participant.RandomName {
		return participant.NewRandom(name, seed), nil
	}

	return participant.LoadScript(source)
}
