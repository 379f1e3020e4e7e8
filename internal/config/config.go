package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"BATTLESHIP_LOG_LEVEL" env-default:"info"`
	Match    Match  `yaml:"match"`
}

type Match struct {
	PlayerOne    string `yaml:"player-one" env:"BATTLESHIP_PLAYER_ONE" env-default:"fleets/player-one.yml"`
	PlayerTwo    string `yaml:"player-two" env:"BATTLESHIP_PLAYER_TWO" env-default:"fleets/player-two.yml"`
	WinThreshold int    `yaml:"win-threshold" env:"BATTLESHIP_WIN_THRESHOLD" env-default:"0"`
	MaxTurns     int    `yaml:"max-turns" env:"BATTLESHIP_MAX_TURNS" env-default:"256"`
	MaxRetries   int    `yaml:"max-retries" env:"BATTLESHIP_MAX_RETRIES" env-default:"3"`
	// Seed drives the random participant. Zero picks a fresh seed per run.
	Seed         int64  `yaml:"seed" env:"BATTLESHIP_SEED" env-default:"0"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// MustLoadEnv - load configuration from the environment only, for runs without a config file.
func MustLoadEnv() *Config {
	config := &Config{}

	if err := cleanenv.ReadEnv(config); err != nil {
		panic(fmt.Errorf("unable to load config from environment: %w", err))
	}

	return config
}
