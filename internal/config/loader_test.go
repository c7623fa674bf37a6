package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg PongConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultPongConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultPongConfig())
	}
}

func TestLoadPongFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadPong("")
	if err != nil {
		t.Fatalf("LoadPong failed: %v", err)
	}
	if cfg != DefaultPongConfig() {
		t.Errorf("LoadPong(\"\") = %+v, expected defaults", cfg)
	}
}

func TestLoadPongUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".pong13")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	data := []byte("physics:\n  max_ball_speed: 9\n")
	if err := os.WriteFile(filepath.Join(dir, "pong.yaml"), data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPong("")
	if err != nil {
		t.Fatalf("LoadPong failed: %v", err)
	}
	if cfg.Physics.MaxBallSpeed != 9 {
		t.Errorf("MaxBallSpeed = %v, expected 9", cfg.Physics.MaxBallSpeed)
	}
	if cfg.Physics.BallSpeed != 3 {
		t.Errorf("unset fields should keep defaults, BallSpeed = %v", cfg.Physics.BallSpeed)
	}
}

func TestLoadPongCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("timing:\n  frame_delay: 20ms\nlog:\n  level: debug\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPong(path)
	if err != nil {
		t.Fatalf("LoadPong failed: %v", err)
	}
	if cfg.Timing.FrameDelay != 20*time.Millisecond {
		t.Errorf("FrameDelay = %v, expected 20ms", cfg.Timing.FrameDelay)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, expected debug", cfg.Log.Level)
	}
	if cfg.Physics.SpeedUp != 1.1 {
		t.Errorf("SpeedUp = %v, expected default 1.1", cfg.Physics.SpeedUp)
	}
}

func TestLoadPongCustomPathErrors(t *testing.T) {
	if _, err := LoadPong(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("physics: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPong(path); err == nil {
		t.Error("expected error for malformed custom config")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PongConfig)
		valid  bool
	}{
		{"defaults", func(*PongConfig) {}, true},
		{"zero ball speed", func(c *PongConfig) { c.Physics.BallSpeed = 0 }, false},
		{"negative paddle speed", func(c *PongConfig) { c.Physics.PaddleSpeed = -1 }, false},
		{"slowdown on hit", func(c *PongConfig) { c.Physics.SpeedUp = 0.9 }, false},
		{"negative cap", func(c *PongConfig) { c.Physics.MaxBallSpeed = -2 }, false},
		{"zero frame delay", func(c *PongConfig) { c.Timing.FrameDelay = 0 }, false},
		{"explicit cap", func(c *PongConfig) { c.Physics.MaxBallSpeed = 12 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultPongConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestDifficultyPresets(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		ballSpeed   float64
		paddleSpeed float64
		maxSpeed    float64
	}{
		{DifficultyEasy, 2, 5, 6},
		{DifficultyNormal, 3, 5, 0},
		{DifficultyHard, 4, 6, 0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultPongConfig()
			ApplyPongPreset(&cfg, tc.preset)

			if cfg.Physics.BallSpeed != tc.ballSpeed {
				t.Errorf("BallSpeed = %v, expected %v", cfg.Physics.BallSpeed, tc.ballSpeed)
			}
			if cfg.Physics.PaddleSpeed != tc.paddleSpeed {
				t.Errorf("PaddleSpeed = %v, expected %v", cfg.Physics.PaddleSpeed, tc.paddleSpeed)
			}
			if cfg.Physics.MaxBallSpeed != tc.maxSpeed {
				t.Errorf("MaxBallSpeed = %v, expected %v", cfg.Physics.MaxBallSpeed, tc.maxSpeed)
			}
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	if p, err := ParseDifficulty(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParseDifficulty(\"\") = %q, %v", p, err)
	}
	if p, err := ParseDifficulty("HARD"); err != nil || p != DifficultyHard {
		t.Errorf("ParseDifficulty(\"HARD\") = %q, %v", p, err)
	}
	if _, err := ParseDifficulty("fixed"); !errors.Is(err, ErrInvalid) {
		t.Errorf("ParseDifficulty(\"fixed\") error = %v, expected ErrInvalid", err)
	}
}

func TestLoadAppliesPresetAndValidates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pong.yaml")
	if err := os.WriteFile(path, []byte("timing:\n  frame_delay: 0s\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path, DifficultyNormal); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load with zero frame delay = %v, expected ErrInvalid", err)
	}

	t.Setenv("HOME", t.TempDir())
	cfg, err := Load("", DifficultyEasy)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Physics.BallSpeed != 2 {
		t.Errorf("BallSpeed = %v, expected 2 after easy preset", cfg.Physics.BallSpeed)
	}
}
