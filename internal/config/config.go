package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/olivier-w/glide/internal/scroll"
)

// Config is the on-disk configuration. Every field is optional; missing
// values take the defaults from Default.
type Config struct {
	Animation AnimationConfig `yaml:"animation"`
	Input     InputConfig     `yaml:"input"`
}

// AnimationConfig tunes the scroll animation profile.
type AnimationConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Easing     string `yaml:"easing"`        // linear | ease-in-out | ease-out-cubic | smoothstep
	Duration   string `yaml:"duration"`      // constant | distance
	DurationMs int    `yaml:"duration_ms"`   // constant mode: segment duration
	MsPer100   int    `yaml:"ms_per_100"`    // distance mode: ms per 100 cells
	MinMs      int    `yaml:"min_ms"`        // distance mode: lower clamp
	MaxMs      int    `yaml:"max_ms"`        // distance mode: upper clamp
}

// InputConfig tunes how key and wheel input maps to scroll requests.
type InputConfig struct {
	WheelLines  int `yaml:"wheel_lines"`  // lines per wheel notch
	PageOverlap int `yaml:"page_overlap"` // lines of context kept across a page scroll
	FPS         int `yaml:"fps"`          // animation frame rate
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Animation: AnimationConfig{
			Enabled:    true,
			Easing:     "ease-in-out",
			Duration:   "constant",
			DurationMs: 220,
			MsPer100:   80,
			MinMs:      120,
			MaxMs:      600,
		},
		Input: InputConfig{
			WheelLines:  3,
			PageOverlap: 2,
			FPS:         60,
		},
	}
}

// Path returns the config file location, honoring XDG_CONFIG_HOME.
func Path() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "glide", "config.yaml"), nil
}

// Load reads the config file at path. A missing file yields the
// defaults; a malformed file is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config: %w", err)
	}
	cfg.sanitize()
	return cfg, nil
}

func (c *Config) sanitize() {
	d := Default()
	if c.Animation.DurationMs <= 0 {
		c.Animation.DurationMs = d.Animation.DurationMs
	}
	if c.Animation.MsPer100 <= 0 {
		c.Animation.MsPer100 = d.Animation.MsPer100
	}
	if c.Animation.MinMs <= 0 {
		c.Animation.MinMs = d.Animation.MinMs
	}
	if c.Animation.MaxMs < c.Animation.MinMs {
		c.Animation.MaxMs = d.Animation.MaxMs
	}
	if c.Input.WheelLines <= 0 {
		c.Input.WheelLines = d.Input.WheelLines
	}
	if c.Input.PageOverlap < 0 {
		c.Input.PageOverlap = d.Input.PageOverlap
	}
	if c.Input.FPS < 10 || c.Input.FPS > 240 {
		c.Input.FPS = d.Input.FPS
	}
}

// EasingFunc resolves the configured easing name. Unknown names fall
// back to ease-in-out; config is advisory, never fatal.
func (c AnimationConfig) EasingFunc() scroll.Easing {
	switch c.Easing {
	case "linear":
		return scroll.EaseLinear
	case "ease-out-cubic":
		return scroll.EaseOutCubic
	case "smoothstep":
		return scroll.EaseSmoothstep
	default:
		return scroll.EaseInOut
	}
}

// DurationPolicy resolves the configured duration policy.
func (c AnimationConfig) DurationPolicy() scroll.DurationPolicy {
	if c.Duration == "distance" {
		return scroll.DurationPolicy{
			Mode:   scroll.DurationDistance,
			PerLen: time.Duration(c.MsPer100) * time.Millisecond,
			Min:    time.Duration(c.MinMs) * time.Millisecond,
			Max:    time.Duration(c.MaxMs) * time.Millisecond,
		}
	}
	return scroll.DurationPolicy{
		Mode:  scroll.DurationConstant,
		Fixed: time.Duration(c.DurationMs) * time.Millisecond,
	}
}

// FrameInterval returns the delay between animation frames.
func (c InputConfig) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}
