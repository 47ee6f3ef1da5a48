package config

import (
	_ "embed"
)

//go:embed defaults/collapse.yaml
var defaultYAML []byte

// Default returns the built-in configuration: a 6x5 board with five colors,
// five moves and one point per removed block.
func Default() Config {
	return Config{
		Width:          6,
		Height:         5,
		ColorCount:     5,
		TotalMoves:     5,
		PointsPerBlock: 1,
	}
}
