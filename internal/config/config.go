package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tiptaptoe/internal/entity"
)

var ErrUnknownLogLevel = errors.New("unknown log level")

type Config struct {
	LogLevel string `yaml:"log-level" env:"TIPTAPTOE_LOG_LEVEL" env-default:"info"`
	NoColor  bool   `yaml:"no-color" env:"TIPTAPTOE_NO_COLOR"`
	Moves    []Move `yaml:"moves"`
}

// Move - one scripted call as written in config.yml.
type Move struct {
	Row    int    `yaml:"row"`
	Col    int    `yaml:"col"`
	Player string `yaml:"player"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// SlogLevel - maps log-level to a slog level.
func (that *Config) SlogLevel() (slog.Level, error) {
	switch that.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLogLevel, that.LogLevel)
	}
}

// ScriptedMoves - validates the configured moves into engine values.
func (that *Config) ScriptedMoves() ([]entity.Move, error) {
	moves := make([]entity.Move, 0, len(that.Moves))

	for i, m := range that.Moves {
		move, err := m.toEntity()
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i, err)
		}
		moves = append(moves, move)
	}

	return moves, nil
}

func (that Move) toEntity() (entity.Move, error) {
	pos, err := entity.ParsePosition(that.Row, that.Col)
	if err != nil {
		return entity.Move{}, err
	}

	player, err := entity.ParsePlayer(that.Player)
	if err != nil {
		return entity.Move{}, err
	}

	return entity.Move{Position: pos, Player: player}, nil
}
