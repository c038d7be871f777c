package assets

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"

	"github.com/Garsondee/Pixel-Hunt/internal/config"
	"github.com/Garsondee/Pixel-Hunt/internal/sim"
)

const ellipseSegments = 36

var (
	bodyColor   = color.RGBA{R: 120, G: 70, B: 160, A: 255}
	wingColor   = color.RGBA{R: 80, G: 40, B: 120, A: 255}
	eyeColor    = color.RGBA{R: 250, G: 230, B: 80, A: 255}
	flameColors = []color.RGBA{
		{R: 255, G: 240, B: 160, A: 255},
		{R: 255, G: 180, B: 60, A: 230},
		{R: 230, G: 90, B: 30, A: 200},
		{R: 120, G: 60, B: 40, A: 150},
	}
)

// PlaceholderTargetSheet draws a flapping creature strip matching tc's
// frame size and count.
func PlaceholderTargetSheet(tc config.TargetConfig) *sim.SpriteSheet {
	fw, fh := int(tc.SpriteWidth), int(tc.SpriteHeight)
	img := image.NewRGBA(image.Rect(0, 0, fw*tc.Frames, fh))
	for f := 0; f < tc.Frames; f++ {
		ox := float64(f * fw)
		w, h := float64(fw), float64(fh)
		// Wings sweep from up to down across the cycle.
		flap := math.Sin(2 * math.Pi * float64(f) / float64(tc.Frames))
		wingY := h*0.45 - flap*h*0.25
		fillEllipse(img, ox+w*0.22, wingY, w*0.2, h*0.12, wingColor)
		fillEllipse(img, ox+w*0.78, wingY, w*0.2, h*0.12, wingColor)
		fillEllipse(img, ox+w*0.5, h*0.5, w*0.22, h*0.3, bodyColor)
		fillEllipse(img, ox+w*0.42, h*0.42, w*0.04, h*0.05, eyeColor)
		fillEllipse(img, ox+w*0.58, h*0.42, w*0.04, h*0.05, eyeColor)
	}
	return sim.NewSpriteSheet(img, fw, fh, tc.Frames)
}

// PlaceholderExplosionSheet draws a burst that grows and cools frame by
// frame.
func PlaceholderExplosionSheet(ec config.ExplosionConfig) *sim.SpriteSheet {
	fw, fh := int(ec.SpriteWidth), int(ec.SpriteHeight)
	img := image.NewRGBA(image.Rect(0, 0, fw*ec.Frames, fh))
	for f := 0; f < ec.Frames; f++ {
		ox := float64(f * fw)
		cx, cy := ox+float64(fw)/2, float64(fh)/2
		grow := float64(f+1) / float64(ec.Frames)
		maxR := math.Min(float64(fw), float64(fh)) * 0.48
		for i := len(flameColors) - 1; i >= 0; i-- {
			// Outer rings are the cooler colours; the hot core fades out
			// over the last frames.
			if i == 0 && f >= ec.Frames-2 {
				continue
			}
			ring := maxR * grow * float64(i+1) / float64(len(flameColors))
			fillEllipse(img, cx, cy, ring, ring, flameColors[i])
		}
	}
	return sim.NewSpriteSheet(img, fw, fh, ec.Frames)
}

func fillEllipse(dst *image.RGBA, cx, cy, rx, ry float64, c color.Color) {
	if rx <= 0 || ry <= 0 {
		return
	}
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.MoveTo(float32(cx+rx), float32(cy))
	for i := 1; i < ellipseSegments; i++ {
		a := 2 * math.Pi * float64(i) / ellipseSegments
		z.LineTo(float32(cx+rx*math.Cos(a)), float32(cy+ry*math.Sin(a)))
	}
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}
