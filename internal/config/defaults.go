package config

import (
	_ "embed"
)

//go:embed defaults/xonix.yaml
var defaultXonixYAML []byte

// DefaultXonixConfig returns the hardcoded default Xonix configuration.
// It mirrors defaults/xonix.yaml and serves as the last-resort fallback.
func DefaultXonixConfig() XonixConfig {
	return XonixConfig{
		Grid: XonixGrid{
			Width:    70,
			Height:   50,
			CellSize: 10,
		},
		Enemies: XonixEnemies{
			Count:    3,
			MinSpeed: 1.5,
			MaxSpeed: 2.5,
			Radius:   4.0,
		},
		Gameplay: XonixGameplay{
			WinThreshold: 75.0,
		},
	}
}
