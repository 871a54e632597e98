// Package config provides YAML-based course configuration loading and
// difficulty presets.
package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hazard-course/internal/core"
	"github.com/vovakirdan/hazard-course/internal/hazard"
)

// Config contains all configuration for a course run.
type Config struct {
	Course  CourseSection  `yaml:"course"`
	Run     RunSection     `yaml:"run"`
	Physics PhysicsSection `yaml:"physics"`
	Probe   ProbeSection   `yaml:"probe"`
	Log     LogSection     `yaml:"log"`
}

// CourseSection defines the generated layout.
type CourseSection struct {
	Count   int      `yaml:"count"`
	Palette []string `yaml:"palette"`
	Seed    int64    `yaml:"seed"`
}

// RunSection defines frame timing.
type RunSection struct {
	TickRate   int     `yaml:"tick_rate"`
	MaxSeconds float64 `yaml:"max_seconds"`
}

// PhysicsSection defines the reference world parameters.
type PhysicsSection struct {
	Gravity   float64 `yaml:"gravity"`
	KillPlane float64 `yaml:"kill_plane"`
}

// ProbeSection defines the autopilot used by simulate.
type ProbeSection struct {
	Speed     float64 `yaml:"speed"`
	JumpSpeed float64 `yaml:"jump_speed"`
}

// LogSection defines logging output.
type LogSection struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid")

// Palette parses the configured hazard ids.
func (c Config) Palette() ([]hazard.Type, error) {
	return hazard.ParsePalette(c.Course.Palette)
}

// Runtime returns the values a run is started with.
func (c Config) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		TickRate: c.Run.TickRate,
		Seed:     c.Course.Seed,
		Count:    c.Course.Count,
	}
}

// LogLevel parses the configured log level.
func (c Config) LogLevel() (log.Level, error) {
	if c.Log.Level == "" {
		return log.InfoLevel, nil
	}
	return log.ParseLevel(c.Log.Level)
}

// Validate checks the configuration before anything is generated.
func (c Config) Validate() error {
	if c.Course.Count < 0 {
		return fmt.Errorf("%w: course.count must not be negative, got %d", ErrInvalid, c.Course.Count)
	}
	if len(c.Course.Palette) == 0 {
		return fmt.Errorf("%w: course.palette must not be empty", ErrInvalid)
	}
	if _, err := c.Palette(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Run.TickRate <= 0 {
		return fmt.Errorf("%w: run.tick_rate must be positive, got %d", ErrInvalid, c.Run.TickRate)
	}
	if c.Run.MaxSeconds <= 0 {
		return fmt.Errorf("%w: run.max_seconds must be positive", ErrInvalid)
	}
	if c.Physics.Gravity <= 0 {
		return fmt.Errorf("%w: physics.gravity must be positive", ErrInvalid)
	}
	if c.Physics.KillPlane >= 0 {
		return fmt.Errorf("%w: physics.kill_plane must be below the floor", ErrInvalid)
	}
	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	return nil
}
