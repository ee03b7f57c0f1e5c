package config

import (
	_ "embed"
)

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

// DefaultBlocksConfig returns the default Blockfall configuration.
func DefaultBlocksConfig() BlocksConfig {
	return BlocksConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Speed: SpeedConfig{
			BaseInterval:    1.0,
			PerLevelSpeedup: 0.05,
			MinInterval:     0.1,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "blocks":
		return defaultBlocksYAML
	default:
		return nil
	}
}
