package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy     DifficultyPreset = "easy"
	DifficultyNormal   DifficultyPreset = "normal"
	DifficultyHard     DifficultyPreset = "hard"
	DifficultyMarathon DifficultyPreset = "marathon"
)

// Presets lists every preset from shortest to longest course.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyMarathon}

// ParsePreset converts a name into a preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Presets {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q", name)
}

// CountForPreset returns the number of hazard blocks for a preset.
func CountForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 3
	case DifficultyHard:
		return 10
	case DifficultyMarathon:
		return 20
	default:
		return 5
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	cfg.Course.Count = CountForPreset(preset)

	// Longer courses get more time before simulate gives up.
	minSeconds := float64(cfg.Course.Count+2) * 8
	if cfg.Run.MaxSeconds < minSeconds {
		cfg.Run.MaxSeconds = minSeconds
	}
}
