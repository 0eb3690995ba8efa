// Package config holds the CLI settings: typed defaults, a YAML or JSON
// overlay loaded from disk, and validation.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/markov/board"
	"github.com/katalvlaran/markov/internal/logging"
)

var (
	// ErrUnsupportedFormat indicates a config file with an unknown extension.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")
	// ErrInvalid indicates a config value out of range.
	ErrInvalid = errors.New("config: invalid value")
)

// Defaults.
const (
	DefaultMaxWords     = 20
	DefaultMaxLineBytes = 1 << 20
	DefaultMaxLength    = 60
)

// Config is the full CLI configuration.
type Config struct {
	LogLevel string `yaml:"log_level" json:"log_level"`
	Tweets   Tweets `yaml:"tweets" json:"tweets"`
	Snakes   Snakes `yaml:"snakes" json:"snakes"`
}

// Tweets configures the text generator.
type Tweets struct {
	MaxWords     int `yaml:"max_words" json:"max_words"`
	MaxLineBytes int `yaml:"max_line_bytes" json:"max_line_bytes"`
}

// Snakes configures the board simulator.
type Snakes struct {
	MaxLength int          `yaml:"max_length" json:"max_length"`
	Board     board.Layout `yaml:"board" json:"board"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel: "info",
		Tweets: Tweets{
			MaxWords:     DefaultMaxWords,
			MaxLineBytes: DefaultMaxLineBytes,
		},
		Snakes: Snakes{
			MaxLength: DefaultMaxLength,
			Board:     board.DefaultLayout(),
		},
	}
}

// Load reads path and overlays it onto Default, detecting the format by
// extension (.yaml, .yml, .json). Keys absent from the file keep their
// defaults; a board section replaces the whole default board.
// The result is validated.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read file: %w", err)
	}

	cfg := Default()
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		err = cfg.overlayYAML(data)
	case ".json":
		err = cfg.overlayJSON(data)
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) overlayYAML(data []byte) error {
	var probe struct {
		Snakes struct {
			Board *yaml.Node `yaml:"board"`
		} `yaml:"snakes"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("config: parse yaml: %w", err)
	}
	if probe.Snakes.Board != nil {
		c.Snakes.Board = board.Layout{}
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parse yaml: %w", err)
	}

	return nil
}

func (c *Config) overlayJSON(data []byte) error {
	var probe struct {
		Snakes struct {
			Board json.RawMessage `json:"board"`
		} `json:"snakes"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("config: parse json: %w", err)
	}
	if probe.Snakes.Board != nil {
		c.Snakes.Board = board.Layout{}
	}
	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parse json: %w", err)
	}

	return nil
}

// Validate checks every field. The board layout is validated by board.New.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalid, err)
	}
	if c.Tweets.MaxWords < 1 {
		return fmt.Errorf("%w: tweets.max_words %d < 1", ErrInvalid, c.Tweets.MaxWords)
	}
	if c.Tweets.MaxLineBytes < 1 {
		return fmt.Errorf("%w: tweets.max_line_bytes %d < 1", ErrInvalid, c.Tweets.MaxLineBytes)
	}
	if c.Snakes.MaxLength < 1 {
		return fmt.Errorf("%w: snakes.max_length %d < 1", ErrInvalid, c.Snakes.MaxLength)
	}
	if _, err := board.New(c.Snakes.Board); err != nil {
		return fmt.Errorf("%w: snakes.board: %w", ErrInvalid, err)
	}

	return nil
}

// Level returns the parsed log level.
func (c Config) Level() (slog.Level, error) {
	return logging.ParseLevel(c.LogLevel)
}
