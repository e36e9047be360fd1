package game

import (
	"fmt"
	"os"
	"strconv"

	"github.com/samdwyer/delvegen/internal/gamedata"
	"github.com/samdwyer/delvegen/internal/world"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvSeed     = "DELVEGEN_SEED"
	EnvPreset   = "DELVEGEN_PRESET"
	EnvTileSize = "DELVEGEN_TILE_SIZE"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// Preset is the ID of the generation preset from presets.json.
	Preset string

	// TileSize is the world pixels per tile reported in spawn and exit points.
	TileSize int
}

// DefaultConfig returns the classic preset with a random seed.
func DefaultConfig() Config {
	return Config{
		Preset:   gamedata.DefaultPresetID,
		TileSize: world.DefaultTileSize,
	}
}

// ConfigFromEnv starts from DefaultConfig and applies any DELVEGEN_* variables that are set.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("parse %s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}

	if v := os.Getenv(EnvPreset); v != "" {
		cfg.Preset = v
	}

	if v := os.Getenv(EnvTileSize); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("parse %s: %w", EnvTileSize, err)
		}
		if size <= 0 {
			return cfg, fmt.Errorf("%s must be positive, got %d", EnvTileSize, size)
		}
		cfg.TileSize = size
	}

	return cfg, nil
}
