// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

import "fmt"

// XonixConfig contains all configuration for the Xonix game.
type XonixConfig struct {
	Grid     XonixGrid     `yaml:"grid"`
	Enemies  XonixEnemies  `yaml:"enemies"`
	Gameplay XonixGameplay `yaml:"gameplay"`
}

// XonixGrid defines the playfield dimensions. Width and height count
// cells including the permanent one-cell border ring; cell size is the
// edge length of one cell in sub-cell simulation units.
type XonixGrid struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
}

// XonixEnemies defines enemy placement and movement parameters.
// Speeds are per-axis velocity magnitudes in sub-cell units per tick.
type XonixEnemies struct {
	Count    int     `yaml:"count"`
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
	Radius   float64 `yaml:"radius"`
}

// XonixGameplay defines win conditions.
type XonixGameplay struct {
	// WinThreshold is the claimed-territory percentage that wins the
	// session. Must lie in (0, 100].
	WinThreshold float64 `yaml:"win_threshold"`
}

// Validate checks the configuration for values the engine cannot run
// with. It is called at load time and again when a config is applied to
// a game, so broken values are rejected before any grid is built.
func (c XonixConfig) Validate() error {
	// A grid needs at least one interior cell inside the border ring.
	if c.Grid.Width < 3 || c.Grid.Height < 3 {
		return fmt.Errorf("config: grid %dx%d has no interior; width and height must be at least 3", c.Grid.Width, c.Grid.Height)
	}
	if c.Grid.CellSize <= 0 {
		return fmt.Errorf("config: cell size must be positive, got %d", c.Grid.CellSize)
	}
	if c.Enemies.Count < 0 {
		return fmt.Errorf("config: enemy count must not be negative, got %d", c.Enemies.Count)
	}
	if c.Enemies.MinSpeed <= 0 || c.Enemies.MaxSpeed <= 0 {
		return fmt.Errorf("config: enemy speeds must be positive, got [%g, %g]", c.Enemies.MinSpeed, c.Enemies.MaxSpeed)
	}
	if c.Enemies.MaxSpeed < c.Enemies.MinSpeed {
		return fmt.Errorf("config: enemy speed range inverted: min %g > max %g", c.Enemies.MinSpeed, c.Enemies.MaxSpeed)
	}
	if c.Enemies.Radius <= 0 {
		return fmt.Errorf("config: enemy radius must be positive, got %g", c.Enemies.Radius)
	}
	if c.Gameplay.WinThreshold <= 0 || c.Gameplay.WinThreshold > 100 {
		return fmt.Errorf("config: win threshold must lie in (0, 100], got %g", c.Gameplay.WinThreshold)
	}
	return nil
}

// DifficultyPreset names a difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value to a preset, accepting the empty
// string as normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty preset %q (want easy, normal, or hard)", s)
	}
}

// ApplyXonixPreset adjusts enemy pressure and the win threshold for a
// difficulty preset. Normal leaves the config untouched.
func ApplyXonixPreset(cfg *XonixConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		if cfg.Enemies.Count > 1 {
			cfg.Enemies.Count--
		}
		cfg.Enemies.MaxSpeed = cfg.Enemies.MinSpeed
		cfg.Gameplay.WinThreshold = 65.0
	case DifficultyHard:
		cfg.Enemies.Count += 2
		cfg.Enemies.MinSpeed *= 1.5
		cfg.Enemies.MaxSpeed *= 1.5
		cfg.Gameplay.WinThreshold = 85.0
	}
}
