package config

import (
	_ "embed"
)

//go:embed defaults/course.yaml
var defaultCourseYAML []byte

// DefaultConfig returns the default course configuration.
func DefaultConfig() Config {
	return Config{
		Course: CourseSection{
			Count:   5,
			Palette: []string{"spinner", "axe", "limbo"},
			Seed:    1,
		},
		Run: RunSection{
			TickRate:   60,
			MaxSeconds: 120,
		},
		Physics: PhysicsSection{
			Gravity:   9.81,
			KillPlane: -5,
		},
		Probe: ProbeSection{
			Speed:     3.0,
			JumpSpeed: 4.5,
		},
		Log: LogSection{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultCourseYAML
}
