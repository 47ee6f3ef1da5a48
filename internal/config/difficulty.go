package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a flag value to a preset. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal or hard)", ErrInvalidConfiguration, s)
	}
}

// ApplyDifficulty adjusts colors and move budget for a preset.
// Fewer colors make larger groups; more moves give more chances to score.
func ApplyDifficulty(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.ColorCount = max(cfg.ColorCount-1, min(cfg.ColorCount, 2)) // Never adds colors
		cfg.TotalMoves += 3
	case DifficultyHard:
		cfg.ColorCount++
		cfg.TotalMoves = max(cfg.TotalMoves-2, 1)
	}
}
