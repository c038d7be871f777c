package sim

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/Garsondee/Pixel-Hunt/internal/config"
)

// targetHost receives the side effects a target produces while updating.
type targetHost interface {
	spawnTrail(x, y, size float64, c RGB)
	targetEscaped(t *Target)
}

// Target is the shootable entity. It scrolls leftward, bounces between the
// top and bottom edges, and paints a flat Color silhouette on the collision
// surface at the same rectangle its sprite occupies on the visible canvas.
type Target struct {
	ID     int
	X, Y   float64
	W, H   float64
	DirX   float64 // leftward speed, px/frame
	DirY   float64 // vertical speed, px/frame
	Scale  float64
	Color  RGB
	anim   frameTimer
	frames int

	canvasH   float64
	sheet     *SpriteSheet
	host      targetHost
	destroyed bool
	hit       bool
}

// TargetSpec fixes every randomised attribute of a target.
type TargetSpec struct {
	X, Y          float64
	DirX, DirY    float64
	Scale         float64
	FrameInterval float64
	Color         RGB
}

// RandomTargetSpec rolls a spec for a target entering at the right edge.
func RandomTargetSpec(cfg config.Config, rng *rand.Rand, c RGB) TargetSpec {
	tc := cfg.Target
	scale := tc.MinScale + rng.Float64()*(tc.MaxScale-tc.MinScale)
	h := tc.SpriteHeight * scale
	return TargetSpec{
		X:             float64(cfg.CanvasWidth),
		Y:             rng.Float64() * math.Max(0, float64(cfg.CanvasHeight)-h),
		DirX:          tc.SpeedMin + rng.Float64()*(tc.SpeedMax-tc.SpeedMin),
		DirY:          rng.Float64()*2*tc.Drift - tc.Drift,
		Scale:         scale,
		FrameInterval: tc.FrameIntervalMin + rng.Float64()*(tc.FrameIntervalMax-tc.FrameIntervalMin),
		Color:         c,
	}
}

func newTarget(id int, spec TargetSpec, cfg config.Config, sheet *SpriteSheet, host targetHost) *Target {
	return &Target{
		ID:      id,
		X:       spec.X,
		Y:       spec.Y,
		W:       cfg.Target.SpriteWidth * spec.Scale,
		H:       cfg.Target.SpriteHeight * spec.Scale,
		DirX:    spec.DirX,
		DirY:    spec.DirY,
		Scale:   spec.Scale,
		Color:   spec.Color,
		anim:    frameTimer{interval: spec.FrameInterval},
		frames:  cfg.Target.Frames,
		canvasH: float64(cfg.CanvasHeight),
		sheet:   sheet,
		host:    host,
	}
}

// Label is the short identifier used in logs.
func (t *Target) Label() string {
	return fmt.Sprintf("T%d", t.ID)
}

// Frame returns the current animation frame, always in [0, frames-1].
func (t *Target) Frame() int {
	return t.anim.frame
}

// FrameInterval returns the per-instance animation interval in ms.
func (t *Target) FrameInterval() float64 {
	return t.anim.interval
}

func (t *Target) maxY() float64 {
	return math.Max(0, t.canvasH-t.H)
}

func (t *Target) Update(dt float64) {
	maxY := t.maxY()
	if t.Y < 0 || t.Y > maxY {
		t.DirY = -t.DirY
	}
	t.X -= t.DirX
	t.Y += t.DirY
	// Clamp back inside and point the drift inward so the next move
	// leaves the edge.
	if t.Y < 0 {
		t.Y = 0
		t.DirY = math.Abs(t.DirY)
	} else if t.Y > maxY {
		t.Y = maxY
		t.DirY = -math.Abs(t.DirY)
	}

	if t.X < -t.W && !t.destroyed {
		t.destroyed = true
		if t.host != nil {
			t.host.targetEscaped(t)
		}
	}

	if t.anim.advance(dt) {
		if t.anim.frame >= t.frames {
			t.anim.frame = 0
		}
		if t.host != nil {
			t.host.spawnTrail(t.X, t.Y, t.W, t.Color)
		}
	}
}

// Draw paints the silhouette and the sprite over the same rectangle.
func (t *Target) Draw(canvas, collision Surface) {
	collision.FillRect(t.X, t.Y, t.W, t.H, t.Color.Opaque())
	canvas.DrawSprite(t.sheet, t.anim.frame, t.X, t.Y, t.W, t.H)
}

func (t *Target) Destroyed() bool {
	return t.destroyed
}

// Hit marks the target as shot. It reports false if it was already gone.
func (t *Target) Hit() bool {
	if t.destroyed {
		return false
	}
	t.destroyed = true
	t.hit = true
	return true
}

// WasHit distinguishes a shot target from one that escaped.
func (t *Target) WasHit() bool {
	return t.hit
}

// Center returns the pixel centre of the target rectangle.
func (t *Target) Center() (float64, float64) {
	return math.Floor(t.X + t.W/2), math.Floor(t.Y + t.H/2)
}
