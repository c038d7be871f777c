package main

import (
	"image"
	"image/color"
	"math"
)

// view maps a canvas onto a grid of terminal cells. Each cell shows two
// vertically stacked pixel blocks using the upper half block glyph.
type view struct {
	canvasW, canvasH int
	cols, rows       int
}

func newView(canvasW, canvasH, cols, rows int) view {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return view{canvasW: canvasW, canvasH: canvasH, cols: cols, rows: rows}
}

func (v view) cellW() float64 { return float64(v.canvasW) / float64(v.cols) }
func (v view) halfH() float64 { return float64(v.canvasH) / float64(v.rows*2) }

// block returns the canvas pixels behind the top (half 0) or bottom
// (half 1) of cell (col,row).
func (v view) block(col, row, half int) image.Rectangle {
	x0 := int(math.Floor(float64(col) * v.cellW()))
	x1 := int(math.Floor(float64(col+1) * v.cellW()))
	y0 := int(math.Floor(float64(row*2+half) * v.halfH()))
	y1 := int(math.Floor(float64(row*2+half+1) * v.halfH()))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return image.Rect(x0, y0, x1, y1).Intersect(image.Rect(0, 0, v.canvasW, v.canvasH))
}

// toCanvas returns the canvas pixel under the centre of cell (col,row).
func (v view) toCanvas(col, row int) (float64, float64) {
	x := math.Floor((float64(col) + 0.5) * v.cellW())
	y := math.Floor((float64(row) + 0.5) * 2 * v.halfH())
	return x, y
}

// average blends the pixels of r over bg and returns their mean colour.
func average(img *image.RGBA, r image.Rectangle, bg color.RGBA) color.RGBA {
	r = r.Intersect(img.Bounds())
	n := r.Dx() * r.Dy()
	if n == 0 {
		return bg
	}
	var sr, sg, sb int
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			px := img.RGBAAt(x, y)
			// Premultiplied source over an opaque background.
			inv := 255 - int(px.A)
			sr += int(px.R) + int(bg.R)*inv/255
			sg += int(px.G) + int(bg.G)*inv/255
			sb += int(px.B) + int(bg.B)*inv/255
		}
	}
	return color.RGBA{R: uint8(sr / n), G: uint8(sg / n), B: uint8(sb / n), A: 255}
}
