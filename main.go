package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	app "github.com/rocketscienceinc/battleship/internal"
	"github.com/rocketscienceinc/battleship/internal/config"
)

const configFile = "battleship/config.yml"

// main - is the entry point of the application. It initializes the configuration, logger, and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()
	logger := initLogger(conf)

	if err := app.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize config. Looks in the working directory first, then in the XDG config directories.
func initConfig() *config.Config {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	localPath := filepath.Join(baseDir, "./config.yml")
	if _, err = os.Stat(localPath); err == nil {
		return config.MustLoad(localPath)
	} else if !errors.Is(err, fs.ErrNotExist) {
		panic(fmt.Errorf("failed to stat config: %w", err))
	}

	if xdgPath, err := xdg.SearchConfigFile(configFile); err == nil {
		return config.MustLoad(xdgPath)
	}

	return config.MustLoadEnv()
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
