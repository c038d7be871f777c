package game

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"

	"github.com/Garsondee/Pixel-Hunt/internal/config"
	"github.com/Garsondee/Pixel-Hunt/internal/sim"
)

// Surface is the visible canvas of the desktop build. The session draws
// into it during Update and Game.Draw blits it to the screen.
type Surface struct {
	img    *ebiten.Image
	face   *text.GoTextFace
	sheets map[*sim.SpriteSheet]*ebiten.Image
}

// NewSurface creates a w×h canvas with the bold overlay face.
func NewSurface(w, h int) (*Surface, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("load overlay font: %w", err)
	}
	return &Surface{
		img:    ebiten.NewImage(w, h),
		face:   &text.GoTextFace{Source: src, Size: config.OverlayFontSize},
		sheets: make(map[*sim.SpriteSheet]*ebiten.Image),
	}, nil
}

// Image returns the backing offscreen image.
func (s *Surface) Image() *ebiten.Image {
	return s.img
}

func (s *Surface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Surface) Clear() {
	s.img.Clear()
}

func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	vector.FillRect(s.img, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s *Surface) FillCircle(cx, cy, r float64, c color.Color) {
	if r <= 0 {
		return
	}
	vector.FillCircle(s.img, float32(cx), float32(cy), float32(r), c, true)
}

// sheetImage uploads a sheet to the GPU once and reuses it afterwards.
func (s *Surface) sheetImage(sheet *sim.SpriteSheet) *ebiten.Image {
	if img, ok := s.sheets[sheet]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(sheet.Image)
	s.sheets[sheet] = img
	return img
}

func (s *Surface) DrawSprite(sheet *sim.SpriteSheet, frame int, x, y, w, h float64) {
	if sheet == nil || sheet.Image == nil {
		return
	}
	sr := sheet.FrameRect(frame)
	if sr.Empty() {
		return
	}
	// NewImageFromImage rebases the sheet to the origin.
	sr = sr.Sub(sheet.Image.Bounds().Min)
	sub := s.sheetImage(sheet).SubImage(sr).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Scale(w/float64(sr.Dx()), h/float64(sr.Dy()))
	op.GeoM.Translate(x, y)
	s.img.DrawImage(sub, op)
}

// DrawText draws s with its baseline at y.
func (s *Surface) DrawText(str string, x, y float64, c color.Color, align sim.Align) {
	if str == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-s.face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(c)
	if align == sim.AlignCenter {
		op.PrimaryAlign = text.AlignCenter
	}
	text.Draw(s.img, str, s.face, op)
}

// PixelAt satisfies sim.Surface; hit-testing always reads a sim.Raster.
func (s *Surface) PixelAt(x, y int) color.RGBA {
	return color.RGBAModel.Convert(s.img.At(x, y)).(color.RGBA)
}
