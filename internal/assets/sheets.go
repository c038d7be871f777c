// Package assets loads sprite sheets and sounds for a session. Every loader
// falls back to a generated placeholder so a missing file never stops play.
package assets

import (
	"fmt"
	"image"
	_ "image/png" // register PNG decoder
	"log"
	"os"

	"github.com/Garsondee/Pixel-Hunt/internal/config"
	"github.com/Garsondee/Pixel-Hunt/internal/sim"
)

// LoadSheet decodes an image file as a horizontal strip of frames cells.
func LoadSheet(path string, frameW, frameH, frames int) (*sim.SpriteSheet, error) {
	f, err := os.Open(path) // #nosec G304 -- path comes from local config
	if err != nil {
		return nil, fmt.Errorf("open sprite sheet: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode sprite sheet %s: %w", path, err)
	}
	b := img.Bounds()
	if b.Dx() < frameW*frames || b.Dy() < frameH {
		return nil, fmt.Errorf("sprite sheet %s is %dx%d, need at least %dx%d",
			path, b.Dx(), b.Dy(), frameW*frames, frameH)
	}
	return sim.NewSpriteSheet(img, frameW, frameH, frames), nil
}

// Sheets loads the target and explosion strips named in cfg. A sheet that
// cannot be loaded is replaced by a generated one and the failure is logged.
func Sheets(cfg config.Config) (target, explosion *sim.SpriteSheet) {
	tc, ec := cfg.Target, cfg.Explosion
	target, err := LoadSheet(cfg.Assets.TargetSprite, int(tc.SpriteWidth), int(tc.SpriteHeight), tc.Frames)
	if err != nil {
		log.Printf("assets: %v; using generated target sprite", err)
		target = PlaceholderTargetSheet(tc)
	}
	explosion, err = LoadSheet(cfg.Assets.ExplosionSprite, int(ec.SpriteWidth), int(ec.SpriteHeight), ec.Frames)
	if err != nil {
		log.Printf("assets: %v; using generated explosion sprite", err)
		explosion = PlaceholderExplosionSheet(ec)
	}
	return target, explosion
}
