// Package config loads the pocketcube configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	koanfjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Default configuration values.
const (
	DefaultMaxDepth      = 8
	DefaultScrambleMoves = 5
)

// Config holds the application configuration. Flags override values
// loaded from the file; the file overrides the defaults.
type Config struct {
	DBPath        string `json:"db_path,omitempty"`
	MaxDepth      int    `json:"max_depth,omitempty"`
	ScrambleMoves int    `json:"scramble_moves,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		MaxDepth:      DefaultMaxDepth,
		ScrambleMoves: DefaultScrambleMoves,
	}
}

// DefaultPath returns the default config file path.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".pocketcube", "config.json"), nil
}

// Load loads configuration from the given path. A missing file is not
// an error; defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("stat config: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), koanfjson.Parser()); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	if cfg.ScrambleMoves <= 0 {
		cfg.ScrambleMoves = DefaultScrambleMoves
	}
	return cfg, nil
}
