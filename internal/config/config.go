// Package config provides YAML-based tuning and difficulty presets for the
// game.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// PongConfig contains all configuration for the game.
// Screen geometry is fixed at 320x200 and intentionally not configurable.
type PongConfig struct {
	Physics PongPhysics `yaml:"physics"`
	Timing  PongTiming  `yaml:"timing"`
	Display PongDisplay `yaml:"display"`
	Log     LogConfig   `yaml:"log"`
}

// PongPhysics defines ball and paddle movement.
type PongPhysics struct {
	BallSpeed    float64 `yaml:"ball_speed"`     // Serve speed on both axes, pixels per frame
	PaddleSpeed  float64 `yaml:"paddle_speed"`   // Pixels per key press
	SpeedUp      float64 `yaml:"speed_up"`       // Horizontal multiplier on every paddle hit
	MaxBallSpeed float64 `yaml:"max_ball_speed"` // Cap on |dx|; 0 = unbounded
}

// PongTiming defines frame pacing.
type PongTiming struct {
	FrameDelay time.Duration `yaml:"frame_delay"`
}

// PongDisplay selects how the game is shown.
type PongDisplay struct {
	Backend string `yaml:"backend"`
}

// LogConfig controls the diagnostic logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty = stderr
}

// Validate checks that the configuration can drive a game.
func (c PongConfig) Validate() error {
	var problems []string
	if c.Physics.BallSpeed <= 0 {
		problems = append(problems, "physics.ball_speed must be positive")
	}
	if c.Physics.PaddleSpeed <= 0 {
		problems = append(problems, "physics.paddle_speed must be positive")
	}
	if c.Physics.SpeedUp < 1 {
		problems = append(problems, "physics.speed_up must be at least 1")
	}
	if c.Physics.MaxBallSpeed < 0 {
		problems = append(problems, "physics.max_ball_speed must not be negative")
	}
	if c.Timing.FrameDelay <= 0 {
		problems = append(problems, "timing.frame_delay must be positive")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty validates a preset name. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(s)); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal or hard)", ErrInvalid, s)
	}
}

// ApplyPongPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyPongPreset(cfg *PongConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Physics.BallSpeed = 2
		cfg.Physics.MaxBallSpeed = 6
	case DifficultyHard:
		cfg.Physics.BallSpeed = 4
		cfg.Physics.PaddleSpeed = 6
	}
}
