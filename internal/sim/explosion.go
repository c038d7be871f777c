package sim

import (
	"fmt"

	"github.com/Garsondee/Pixel-Hunt/internal/config"
)

// Explosion is the burst left where a target was shot. It plays its sound
// on the first update and expires after its last sprite frame.
type Explosion struct {
	ID     int
	X, Y   float64 // centre
	Size   float64
	anim   frameTimer
	frames int

	sheet     *SpriteSheet
	sound     Sound
	played    bool
	destroyed bool
}

func newExplosion(id int, x, y, size float64, cfg config.ExplosionConfig, sheet *SpriteSheet, sound Sound) *Explosion {
	if sound == nil {
		sound = NopSound{}
	}
	return &Explosion{
		ID:     id,
		X:      x,
		Y:      y,
		Size:   size,
		anim:   frameTimer{interval: cfg.FrameInterval},
		frames: cfg.Frames,
		sheet:  sheet,
		sound:  sound,
	}
}

// Label is the short identifier used in logs.
func (e *Explosion) Label() string {
	return fmt.Sprintf("E%d", e.ID)
}

// Frame returns the current sprite frame; it equals the frame count once
// the animation has run out.
func (e *Explosion) Frame() int {
	return e.anim.frame
}

func (e *Explosion) Update(dt float64) {
	if !e.played {
		e.played = true
		e.sound.Play()
	}
	if e.anim.advance(dt) && e.anim.frame >= e.frames {
		e.destroyed = true
	}
}

func (e *Explosion) Draw(canvas, _ Surface) {
	if e.anim.frame >= e.frames {
		return
	}
	half := e.Size * 0.5
	canvas.DrawSprite(e.sheet, e.anim.frame, e.X-half, e.Y-half, e.Size, e.Size)
}

func (e *Explosion) Destroyed() bool {
	return e.destroyed
}
