package sim

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// circleSegments is the polygon resolution used for filled circles.
const circleSegments = 32

// Align selects the horizontal anchor for DrawText.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// RGB is the flat colour key painted on the collision surface.
type RGB struct {
	R, G, B uint8
}

// Opaque returns c as a fully opaque colour.
func (c RGB) Opaque() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// WithAlpha returns c with a straight (non-premultiplied) alpha in [0,1].
func (c RGB) WithAlpha(a float64) color.NRGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(a * 255))}
}

// Matches reports whether a read-back pixel is exactly this key.
// Only opaque pixels match; a cleared pixel never resolves to a target.
func (c RGB) Matches(px color.RGBA) bool {
	return px.A == 255 && px.R == c.R && px.G == c.G && px.B == c.B
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// Surface is a 2D raster render target. The visible canvas and the hidden
// collision surface both implement it and always share dimensions.
type Surface interface {
	Size() (w, h int)
	Clear()
	FillRect(x, y, w, h float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	DrawSprite(sheet *SpriteSheet, frame int, x, y, w, h float64)
	DrawText(s string, x, y float64, c color.Color, align Align)
	PixelAt(x, y int) color.RGBA
}

// Raster is a CPU-side Surface backed by an *image.RGBA.
// Rectangles are filled without anti-aliasing, so a silhouette painted with
// an opaque colour reads back as exactly that colour.
type Raster struct {
	img  *image.RGBA
	face font.Face
}

// NewRaster creates a transparent w×h raster. face may be nil, in which
// case DrawText is a no-op (the collision surface never needs text).
func NewRaster(w, h int, face font.Face) *Raster {
	return &Raster{
		img:  image.NewRGBA(image.Rect(0, 0, w, h)),
		face: face,
	}
}

// Image exposes the backing pixels for presentation layers.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

func (r *Raster) Size() (int, int) {
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

func (r *Raster) Clear() {
	clear(r.img.Pix)
}

// pixelRect snaps a float rectangle to the pixel grid. Every surface that
// draws a target uses the same snapping so visible and collision pixels agree.
func pixelRect(x, y, w, h float64) image.Rectangle {
	return image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Floor(x+w)), int(math.Floor(y+h)),
	)
}

func (r *Raster) FillRect(x, y, w, h float64, c color.Color) {
	dr := pixelRect(x, y, w, h).Intersect(r.img.Bounds())
	if dr.Empty() {
		return
	}
	draw.Draw(r.img, dr, image.NewUniform(c), image.Point{}, draw.Over)
}

func (r *Raster) FillCircle(cx, cy, radius float64, c color.Color) {
	if radius <= 0 {
		return
	}
	bbox := image.Rect(
		int(math.Floor(cx-radius)), int(math.Floor(cy-radius)),
		int(math.Ceil(cx+radius)), int(math.Ceil(cy+radius)),
	)
	dr := bbox.Intersect(r.img.Bounds())
	if dr.Empty() {
		return
	}
	// The rasterizer mask is anchored at dr.Min, so the path is expressed
	// relative to the clipped rectangle.
	ox := float32(cx) - float32(dr.Min.X)
	oy := float32(cy) - float32(dr.Min.Y)
	z := vector.NewRasterizer(dr.Dx(), dr.Dy())
	z.MoveTo(ox+float32(radius), oy)
	for i := 1; i < circleSegments; i++ {
		a := 2 * math.Pi * float64(i) / circleSegments
		z.LineTo(ox+float32(radius*math.Cos(a)), oy+float32(radius*math.Sin(a)))
	}
	z.ClosePath()
	z.Draw(r.img, dr, image.NewUniform(c), image.Point{})
}

func (r *Raster) DrawSprite(sheet *SpriteSheet, frame int, x, y, w, h float64) {
	if sheet == nil || sheet.Image == nil {
		return
	}
	sr := sheet.FrameRect(frame)
	if sr.Empty() {
		return
	}
	dr := pixelRect(x, y, w, h)
	if dr.Empty() || !dr.Overlaps(r.img.Bounds()) {
		return
	}
	draw.ApproxBiLinear.Scale(r.img, dr, sheet.Image, sr, draw.Over, nil)
}

func (r *Raster) DrawText(s string, x, y float64, c color.Color, align Align) {
	if r.face == nil || s == "" {
		return
	}
	d := &font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(c),
		Face: r.face,
	}
	if align == AlignCenter {
		x -= float64(d.MeasureString(s)) / 64 / 2
	}
	d.Dot = fixed.P(int(math.Round(x)), int(math.Round(y)))
	d.DrawString(s)
}

func (r *Raster) PixelAt(x, y int) color.RGBA {
	if !(image.Point{X: x, Y: y}).In(r.img.Bounds()) {
		return color.RGBA{}
	}
	return r.img.RGBAAt(x, y)
}
