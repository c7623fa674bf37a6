package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Physics: PongPhysics{
			BallSpeed:    3,
			PaddleSpeed:  5,
			SpeedUp:      1.1,
			MaxBallSpeed: 0,
		},
		Timing: PongTiming{
			FrameDelay: 16 * time.Millisecond,
		},
		Display: PongDisplay{
			Backend: "tui",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPongYAML
}
