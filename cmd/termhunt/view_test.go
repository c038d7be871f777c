package main

import (
	"image"
	"image/color"
	"testing"
)

func TestView_BlocksTileTheCanvas(t *testing.T) {
	v := newView(1280, 720, 160, 45)
	covered := 0
	for row := 0; row < v.rows; row++ {
		for col := 0; col < v.cols; col++ {
			covered += v.block(col, row, 0).Dx() * v.block(col, row, 0).Dy()
			covered += v.block(col, row, 1).Dx() * v.block(col, row, 1).Dy()
		}
	}
	if covered != 1280*720 {
		t.Fatalf("expected blocks to cover the canvas exactly once, covered %d", covered)
	}
	if got := v.block(0, 0, 1); got != image.Rect(0, 8, 8, 16) {
		t.Fatalf("unexpected bottom half block %v", got)
	}
}

func TestView_ToCanvasHitsCellCentre(t *testing.T) {
	v := newView(1280, 720, 160, 45) // 8x16 pixels per cell
	x, y := v.toCanvas(10, 3)
	if x != 84 || y != 56 {
		t.Fatalf("expected (84,56), got (%.0f,%.0f)", x, y)
	}
	if !image.Pt(int(x), int(y)).In(v.block(10, 3, 0).Union(v.block(10, 3, 1))) {
		t.Fatal("click point should fall inside the clicked cell")
	}
}

func TestView_ClampsDegenerateGrid(t *testing.T) {
	v := newView(100, 100, 0, -3)
	if v.cols != 1 || v.rows != 1 {
		t.Fatalf("expected a 1x1 grid, got %dx%d", v.cols, v.rows)
	}
}

func TestAverage_BlendsOverBackground(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 200, A: 255})
	bg := color.RGBA{B: 100, A: 255}

	got := average(img, img.Bounds(), bg)
	want := color.RGBA{R: 100, B: 50, A: 255}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if got := average(img, image.Rect(5, 5, 6, 6), bg); got != bg {
		t.Fatalf("an empty block should show the background, got %+v", got)
	}
}
