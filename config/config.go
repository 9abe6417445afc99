package config

import (
	"errors"
	"fmt"
	"os"

	"tictactoe/meta"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rs/zerolog"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	LogLevel   string `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"info"`
	Games      int    `yaml:"games" env:"TTT_GAMES" env-default:"1"`
	PlayerX    string `yaml:"player-x" env:"TTT_PLAYER_X" env-default:"user"`
	PlayerO    string `yaml:"player-o" env:"TTT_PLAYER_O" env-default:"mcts"`
	MCTSRounds int    `yaml:"mcts-rounds" env:"TTT_MCTS_ROUNDS" env-default:"8190"`
	Seed       uint64 `yaml:"seed" env:"TTT_SEED" env-default:"0"` // 0 seeds from the clock
	NoColor    bool   `yaml:"no-color" env:"TTT_NO_COLOR"`         // Zero value keeps colour on
	OutputDir  string `yaml:"output-dir" env:"TTT_OUTPUT_DIR"`     // Records are written only when set
}

// Load reads the file at path when it exists, the environment otherwise.
// Environment variables override values from the file.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, config); err != nil {
				return nil, fmt.Errorf("unable to load config file: %w", err)
			}
			return config, config.Validate()
		}
	}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}
	return config, config.Validate()
}

func (c *Config) Validate() error {
	if c.Games < meta.MINIMUM_GAMES {
		return fmt.Errorf("%w: games must be at least %d, got %d", ErrInvalidConfig, meta.MINIMUM_GAMES, c.Games)
	}
	if c.MCTSRounds <= 0 {
		return fmt.Errorf("%w: mcts-rounds must be positive, got %d", ErrInvalidConfig, c.MCTSRounds)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Level is the parsed LogLevel, info when it cannot be parsed.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
