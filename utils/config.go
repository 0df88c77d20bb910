package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Frontend names accepted by Config.Frontend
const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
	FrontendHeadless = "headless"
)

// ErrInvalidConfig is the cause of every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	WindowWidth    int    `json:"windowWidth" yaml:"windowWidth"`
	WindowHeight   int    `json:"windowHeight" yaml:"windowHeight"`
	Title          string `json:"title" yaml:"title"`
	CellSize       int    `json:"cellSize" yaml:"cellSize"`
	NumAlive       int    `json:"numAlive" yaml:"numAlive"`
	PauseTime      int    `json:"pauseTime" yaml:"pauseTime"` // milliseconds
	Seed           int64  `json:"seed" yaml:"seed"`           // 0 = time-based
	Frontend       string `json:"frontend" yaml:"frontend"`
	MaxGenerations int    `json:"maxGenerations" yaml:"maxGenerations"`
	StatsOutput    string `json:"statsOutput" yaml:"statsOutput"`
	StatsInterval  int    `json:"statsInterval" yaml:"statsInterval"`
}

// DefaultConfig returns the classic 800x600 window with 2px cells
func DefaultConfig() Config {
	return Config{
		WindowWidth:    800,
		WindowHeight:   600,
		Title:          "Conway's Game of Life",
		CellSize:       2,
		NumAlive:       15000,
		PauseTime:      50,
		Frontend:       FrontendWindow,
		MaxGenerations: 0,
		StatsInterval:  100,
	}
}

// LoadConfig loads configuration from a JSON or YAML file on top of the defaults.
// Files ending in .yaml or .yml are parsed as YAML, anything else as JSON.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &config); err != nil {
			return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal yaml from file: %+v", filename)
		}
	default:
		if err = json.Unmarshal(data, &config); err != nil {
			return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
		}
	}

	return config, nil
}

// Validate reports the first setting that cannot produce a playable board
func (c Config) Validate() error {
	switch {
	case c.CellSize <= 0:
		return errors.Wrapf(ErrInvalidConfig, "cellSize must be positive, got %d", c.CellSize)
	case c.WindowWidth < c.CellSize || c.WindowHeight < c.CellSize:
		return errors.Wrapf(ErrInvalidConfig, "window %dx%d is smaller than one %dpx cell",
			c.WindowWidth, c.WindowHeight, c.CellSize)
	case c.NumAlive < 0:
		return errors.Wrapf(ErrInvalidConfig, "numAlive must not be negative, got %d", c.NumAlive)
	case c.PauseTime < 0:
		return errors.Wrapf(ErrInvalidConfig, "pauseTime must not be negative, got %d", c.PauseTime)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "maxGenerations must not be negative, got %d", c.MaxGenerations)
	}

	switch c.Frontend {
	case FrontendWindow, FrontendTerminal, FrontendHeadless:
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown frontend %q", c.Frontend)
	}
	return nil
}

// GridSize returns the board dimensions in cells
func (c Config) GridSize() (width, height int) {
	return c.WindowWidth / c.CellSize, c.WindowHeight / c.CellSize
}

// Pause returns the delay between frames
func (c Config) Pause() time.Duration {
	return time.Duration(c.PauseTime) * time.Millisecond
}
