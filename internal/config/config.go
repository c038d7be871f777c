// Package config holds the tunable parameters of a Pixel Hunt session.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Shadowed overlay text is drawn twice: dark first, light on top.
var (
	TextDarkColor   = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	TextLightColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	BackgroundColor = color.RGBA{R: 18, G: 22, B: 34, A: 255}
	RetryFillColor  = color.RGBA{R: 60, G: 90, B: 60, A: 230}
)

// Overlay text layout.
const (
	OverlayFontSize = 50
	ScoreX          = 50
	ScoreY          = 75
	ShadowOffset    = 5
)

// TargetConfig describes the shootable sprite and its motion ranges.
type TargetConfig struct {
	SpriteWidth      float64 `yaml:"sprite_width"`
	SpriteHeight     float64 `yaml:"sprite_height"`
	Frames           int     `yaml:"frames"`
	MinScale         float64 `yaml:"min_scale"`
	MaxScale         float64 `yaml:"max_scale"`
	SpeedMin         float64 `yaml:"speed_min"`
	SpeedMax         float64 `yaml:"speed_max"`
	Drift            float64 `yaml:"drift"`
	FrameIntervalMin float64 `yaml:"frame_interval_min_ms"`
	FrameIntervalMax float64 `yaml:"frame_interval_max_ms"`
}

// ExplosionConfig describes the explosion sprite sheet timing.
type ExplosionConfig struct {
	SpriteWidth   float64 `yaml:"sprite_width"`
	SpriteHeight  float64 `yaml:"sprite_height"`
	Frames        int     `yaml:"frames"`
	FrameInterval float64 `yaml:"frame_interval_ms"`
}

// ParticleConfig describes the trail puffs emitted by targets.
type ParticleConfig struct {
	PerBatch     int     `yaml:"per_batch"`
	MaxRadiusMin float64 `yaml:"max_radius_min"`
	MaxRadiusMax float64 `yaml:"max_radius_max"`
	Growth       float64 `yaml:"growth"`
	Jitter       float64 `yaml:"jitter"`
}

// Rect is an axis-aligned rectangle in canvas pixels.
type Rect struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Contains reports whether (px,py) lies inside r.
func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px < r.X+r.W && py >= r.Y && py < r.Y+r.H
}

// AssetConfig lists asset file paths.
type AssetConfig struct {
	TargetSprite    string `yaml:"target_sprite"`
	ExplosionSprite string `yaml:"explosion_sprite"`
	ExplosionSound  string `yaml:"explosion_sound"`
}

// AudioConfig controls sound playback.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// Config is the full set of session parameters.
type Config struct {
	CanvasWidth   int             `yaml:"canvas_width"`
	CanvasHeight  int             `yaml:"canvas_height"`
	SpawnInterval float64         `yaml:"spawn_interval_ms"`
	UniqueColors  bool            `yaml:"unique_colors"`
	Target        TargetConfig    `yaml:"target"`
	Explosion     ExplosionConfig `yaml:"explosion"`
	Particles     ParticleConfig  `yaml:"particles"`
	RetryButton   Rect            `yaml:"retry_button"`
	Assets        AssetConfig     `yaml:"assets"`
	Audio         AudioConfig     `yaml:"audio"`
}

// Default returns the stock configuration.
func Default() Config {
	c := Config{
		CanvasWidth:   1280,
		CanvasHeight:  720,
		SpawnInterval: 500,
		UniqueColors:  true,
		Target: TargetConfig{
			SpriteWidth:      205,
			SpriteHeight:     176,
			Frames:           5,
			MinScale:         0.4,
			MaxScale:         1.0,
			SpeedMin:         3,
			SpeedMax:         6,
			Drift:            2.5,
			FrameIntervalMin: 50,
			FrameIntervalMax: 100,
		},
		Explosion: ExplosionConfig{
			SpriteWidth:   200,
			SpriteHeight:  179,
			Frames:        6,
			FrameInterval: 100,
		},
		Particles: ParticleConfig{
			PerBatch:     5,
			MaxRadiusMin: 35,
			MaxRadiusMax: 55,
			Growth:       0.5,
			Jitter:       25,
		},
		Assets: AssetConfig{
			TargetSprite:    "assets/alien.png",
			ExplosionSprite: "assets/boom.png",
			ExplosionSound:  "assets/boom.wav",
		},
		Audio: AudioConfig{Enabled: true, Volume: 0.6},
	}
	c.RetryButton = DefaultRetryButton(c.CanvasWidth, c.CanvasHeight)
	return c
}

// DefaultRetryButton centres a 200x60 button below the game-over line.
func DefaultRetryButton(w, h int) Rect {
	return Rect{X: float64(w)/2 - 100, Y: float64(h)/2 + 40, W: 200, H: 60}
}

// Load reads a YAML file on top of Default, then applies env overrides.
// An empty path yields the defaults with env overrides.
func Load(path string) (Config, error) {
	c := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return c, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := Parse(data, &c); err != nil {
			return c, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	c.ApplyEnv()
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// Parse decodes YAML into c. Fields absent from data keep their value.
// The retry button follows the canvas unless the document sets it.
func Parse(data []byte, c *Config) error {
	var probe struct {
		RetryButton *Rect `yaml:"retry_button"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return err
	}
	if probe.RetryButton == nil {
		c.RetryButton = DefaultRetryButton(c.CanvasWidth, c.CanvasHeight)
	}
	return nil
}

// ApplyEnv overrides audio settings from PIXELHUNT_AUDIO_ENABLED and
// PIXELHUNT_VOLUME (0-100). Unparseable values are ignored.
func (c *Config) ApplyEnv() {
	if enabled := os.Getenv("PIXELHUNT_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			c.Audio.Enabled = val
		}
	}
	if volume := os.Getenv("PIXELHUNT_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			c.Audio.Volume = float64(val) / 100.0
			if c.Audio.Volume < 0 {
				c.Audio.Volume = 0
			}
			if c.Audio.Volume > 1 {
				c.Audio.Volume = 1
			}
		}
	}
}

// Validate reports the first field that would break the simulation.
// Targets must always move left and particles must always grow, otherwise
// a session never ends or its particle population never drains.
func (c Config) Validate() error {
	switch {
	case c.CanvasWidth <= 0 || c.CanvasHeight <= 0:
		return fmt.Errorf("%w: canvas %dx%d", ErrInvalidConfig, c.CanvasWidth, c.CanvasHeight)
	case c.SpawnInterval <= 0:
		return fmt.Errorf("%w: spawn_interval_ms %.1f", ErrInvalidConfig, c.SpawnInterval)
	case c.Target.SpriteWidth <= 0 || c.Target.SpriteHeight <= 0:
		return fmt.Errorf("%w: target sprite size", ErrInvalidConfig)
	case c.Target.Frames < 1 || c.Explosion.Frames < 1:
		return fmt.Errorf("%w: frame counts must be >= 1", ErrInvalidConfig)
	case c.Target.MinScale <= 0 || c.Target.MaxScale > 1 || c.Target.MinScale > c.Target.MaxScale:
		return fmt.Errorf("%w: target scale [%.2f, %.2f]", ErrInvalidConfig, c.Target.MinScale, c.Target.MaxScale)
	case c.Target.SpeedMin <= 0:
		return fmt.Errorf("%w: target speed_min %.2f must be positive", ErrInvalidConfig, c.Target.SpeedMin)
	case c.Target.SpeedMin > c.Target.SpeedMax:
		return fmt.Errorf("%w: target speed range", ErrInvalidConfig)
	case c.Target.FrameIntervalMin < 0:
		return fmt.Errorf("%w: target frame_interval_min_ms %.1f", ErrInvalidConfig, c.Target.FrameIntervalMin)
	case c.Target.FrameIntervalMin > c.Target.FrameIntervalMax:
		return fmt.Errorf("%w: target frame interval range", ErrInvalidConfig)
	case c.Explosion.FrameInterval <= 0:
		return fmt.Errorf("%w: explosion frame_interval_ms %.1f", ErrInvalidConfig, c.Explosion.FrameInterval)
	case c.Particles.Growth <= 0:
		return fmt.Errorf("%w: particles growth %.2f must be positive", ErrInvalidConfig, c.Particles.Growth)
	case c.Particles.MaxRadiusMin > c.Particles.MaxRadiusMax:
		return fmt.Errorf("%w: particle radius range", ErrInvalidConfig)
	case c.Particles.PerBatch < 0:
		return fmt.Errorf("%w: particles per_batch %d", ErrInvalidConfig, c.Particles.PerBatch)
	}
	return nil
}
