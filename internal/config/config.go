// Package config provides YAML-based game configuration loading.
// All tuning constants are fixed at construction time; the simulation core
// never re-reads configuration at runtime.
package config

import (
	"fmt"
	"math"
)

// Config contains every tuning constant for a game session.
// Speeds are in pixels per millisecond; durations in milliseconds.
type Config struct {
	FPS   float64     `yaml:"fps"`
	Field FieldConfig `yaml:"field"`
	Bird  BirdConfig  `yaml:"bird"`
	Pipes PipeConfig  `yaml:"pipes"`
}

// FieldConfig defines the play field dimensions in pixels.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BirdConfig defines the avatar's geometry and motion constants.
type BirdConfig struct {
	X                 float64 `yaml:"x"` // Fixed horizontal position
	Width             float64 `yaml:"width"`
	Height            float64 `yaml:"height"`
	SinkSpeed         float64 `yaml:"sink_speed"`          // px/ms while not climbing
	ClimbSpeed        float64 `yaml:"climb_speed"`         // average px/ms while climbing
	ClimbDurationMsec float64 `yaml:"climb_duration_msec"` // length of one full climb
	InitialClimbMsec  float64 `yaml:"initial_climb_msec"`  // partial climb at game start
}

// PipeConfig defines obstacle geometry and cadence.
type PipeConfig struct {
	Width           float64 `yaml:"width"`
	PieceHeight     float64 `yaml:"piece_height"`
	AddIntervalMsec float64 `yaml:"add_interval_msec"`
	ScrollSpeed     float64 `yaml:"scroll_speed"` // px/ms leftward
}

// TotalBodyPieces returns the number of pipe body pieces a pipe pair splits
// between its top and bottom columns. The field height minus three bird
// heights (the gap) and three piece heights (two end caps plus one body
// piece) determines it.
func (c Config) TotalBodyPieces() int {
	return int((c.Field.Height - 3*c.Bird.Height - 3*c.Pipes.PieceHeight) / c.Pipes.PieceHeight)
}

// Validate rejects configurations the simulation cannot run on.
// Obstacle construction assumes valid geometry, so everything is checked
// here, at load time, and never again inside the core.
func (c Config) Validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("config: fps must be positive, got %v", c.FPS)
	}
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		return fmt.Errorf("config: field dimensions must be positive, got %vx%v", c.Field.Width, c.Field.Height)
	}
	if c.Bird.Width <= 0 || c.Bird.Height <= 0 {
		return fmt.Errorf("config: bird dimensions must be positive, got %vx%v", c.Bird.Width, c.Bird.Height)
	}
	if c.Bird.SinkSpeed <= 0 || c.Bird.ClimbSpeed <= 0 {
		return fmt.Errorf("config: bird speeds must be positive")
	}
	if c.Bird.ClimbDurationMsec <= 0 {
		return fmt.Errorf("config: climb duration must be positive, got %v", c.Bird.ClimbDurationMsec)
	}
	if c.Bird.InitialClimbMsec < 0 || c.Bird.InitialClimbMsec > c.Bird.ClimbDurationMsec {
		return fmt.Errorf("config: initial climb must be within [0, climb duration]")
	}
	if c.Bird.X < 0 || c.Bird.X+c.Bird.Width > c.Field.Width {
		return fmt.Errorf("config: bird x position out of field")
	}
	if c.Pipes.Width <= 0 || c.Pipes.PieceHeight <= 0 {
		return fmt.Errorf("config: pipe dimensions must be positive")
	}
	if c.Pipes.ScrollSpeed <= 0 {
		return fmt.Errorf("config: pipe scroll speed must be positive, got %v", c.Pipes.ScrollSpeed)
	}
	if c.Pipes.AddIntervalMsec <= 0 {
		return fmt.Errorf("config: pipe add interval must be positive, got %v", c.Pipes.AddIntervalMsec)
	}

	// The spawn cadence is a modulo on the frame clock, so the interval has
	// to come out as a whole number of frames.
	frames := c.FPS * c.Pipes.AddIntervalMsec / 1000.0
	if frames < 1 || frames != math.Trunc(frames) {
		return fmt.Errorf("config: pipe add interval of %vms is not a whole number of frames at %v fps", c.Pipes.AddIntervalMsec, c.FPS)
	}

	// Each pipe needs at least one body piece per column after the random
	// split, which requires at least two pieces total.
	if total := c.TotalBodyPieces(); total < 2 {
		return fmt.Errorf("config: field too small for pipes: %d body pieces available, need at least 2", total)
	}

	return nil
}
