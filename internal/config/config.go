// Package config provides YAML-based game configuration loading for the
// Blockfall platform.
package config

// BlocksConfig contains all configuration for the Blockfall game.
type BlocksConfig struct {
	Board BoardConfig `yaml:"board"`
	Speed SpeedConfig `yaml:"speed"`
}

// BoardConfig defines the well dimensions.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpeedConfig defines the gravity cadence. The interval between gravity
// steps is base_interval - (level-1)*per_level_speedup seconds, floored at
// min_interval.
type SpeedConfig struct {
	BaseInterval    float64 `yaml:"base_interval"`
	PerLevelSpeedup float64 `yaml:"per_level_speedup"`
	MinInterval     float64 `yaml:"min_interval"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyBlocksPreset scales the gravity cadence for a difficulty preset.
// Normal leaves the configured values untouched.
func ApplyBlocksPreset(cfg *BlocksConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.BaseInterval *= 1.25
	case DifficultyHard:
		cfg.Speed.BaseInterval *= 0.75
		cfg.Speed.MinInterval *= 0.75
	}
}
