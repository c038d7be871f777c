package assets

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gopxl/beep"

	"github.com/Garsondee/Pixel-Hunt/internal/config"
)

func alphaAt(img image.Image, x, y int) uint32 {
	_, _, _, a := img.At(x, y).RGBA()
	return a
}

func TestPlaceholderTargetSheet(t *testing.T) {
	tc := config.Default().Target
	sheet := PlaceholderTargetSheet(tc)
	b := sheet.Image.Bounds()
	if b.Dx() != 205*5 || b.Dy() != 176 {
		t.Fatalf("unexpected sheet size %v", b)
	}
	if sheet.Frames != 5 || sheet.FrameW != 205 || sheet.FrameH != 176 {
		t.Fatalf("unexpected sheet layout %+v", sheet)
	}
	for f := 0; f < sheet.Frames; f++ {
		r := sheet.FrameRect(f)
		cx, cy := r.Min.X+r.Dx()/2, r.Min.Y+r.Dy()/2
		if alphaAt(sheet.Image, cx, cy) == 0 {
			t.Fatalf("frame %d: expected an opaque body at the centre", f)
		}
	}

	differs := false
	for y := 0; y < 176 && !differs; y++ {
		for x := 0; x < 205; x++ {
			if sheet.Image.At(x, y) != sheet.Image.At(x+205*1, y) {
				differs = true
				break
			}
		}
	}
	if !differs {
		t.Fatal("expected the wings to move between frames")
	}
}

func TestPlaceholderExplosionSheetGrows(t *testing.T) {
	ec := config.Default().Explosion
	sheet := PlaceholderExplosionSheet(ec)
	first := sheet.FrameRect(0)
	last := sheet.FrameRect(ec.Frames - 1)

	if alphaAt(sheet.Image, first.Min.X+100, first.Min.Y+89) == 0 {
		t.Fatal("expected the first frame to have a core")
	}
	if alphaAt(sheet.Image, first.Min.X+140, first.Min.Y+89) != 0 {
		t.Fatal("the first frame should still be small")
	}
	if alphaAt(sheet.Image, last.Min.X+140, last.Min.Y+89) == 0 {
		t.Fatal("the last frame should have spread out")
	}
}

func writePNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "sheet.png")
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSheet(t *testing.T) {
	path := writePNG(t, 20, 10)
	sheet, err := LoadSheet(path, 10, 10, 2)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if sheet.FrameRect(1) != image.Rect(10, 0, 20, 10) {
		t.Fatalf("unexpected frame rect %v", sheet.FrameRect(1))
	}

	if _, err := LoadSheet(path, 10, 10, 3); err == nil {
		t.Fatal("expected an error for a strip shorter than its frame count")
	}
	if _, err := LoadSheet(filepath.Join(t.TempDir(), "missing.png"), 10, 10, 1); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestSheets_FallBackToPlaceholders(t *testing.T) {
	cfg := config.Default()
	dir := t.TempDir()
	cfg.Assets.TargetSprite = filepath.Join(dir, "none.png")
	cfg.Assets.ExplosionSprite = filepath.Join(dir, "none.png")
	target, explosion := Sheets(cfg)
	if target == nil || explosion == nil {
		t.Fatal("expected generated sheets when files are missing")
	}
	if target.Frames != cfg.Target.Frames || explosion.Frames != cfg.Explosion.Frames {
		t.Fatal("generated sheets should match configured frame counts")
	}
}

func pcmSamples(pcm []byte) []int16 {
	out := make([]int16, len(pcm)/2)
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(pcm[i*2:]))
	}
	return out
}

func TestBoomRendersExpectedLength(t *testing.T) {
	rate := beep.SampleRate(SampleRate)
	pcm := RenderPCM(BoomStreamer(rate, 1, 1))
	want := rate.N(boomDuration) * 4 // two channels, two bytes each
	if len(pcm) != want {
		t.Fatalf("expected %d bytes, got %d", want, len(pcm))
	}
	s := pcmSamples(pcm)
	if s[0] != 0 || s[1] != 0 {
		t.Fatalf("attack should start from silence, got %d/%d", s[0], s[1])
	}
}

func TestBoomIsDeterministicPerSeed(t *testing.T) {
	rate := beep.SampleRate(SampleRate)
	a := RenderPCM(BoomStreamer(rate, 0.8, 42))
	b := RenderPCM(BoomStreamer(rate, 0.8, 42))
	if !bytes.Equal(a, b) {
		t.Fatal("same seed should render the same samples")
	}
}

func TestBoomDecays(t *testing.T) {
	s := pcmSamples(RenderPCM(BoomStreamer(beep.SampleRate(SampleRate), 1, 7)))
	quarter := len(s) / 4
	energy := func(part []int16) float64 {
		var e float64
		for _, v := range part {
			e += float64(v) * float64(v)
		}
		return e
	}
	head, tail := energy(s[:quarter]), energy(s[len(s)-quarter:])
	if head == 0 {
		t.Fatal("expected audible samples at the start")
	}
	if tail >= head {
		t.Fatalf("expected the tail to be quieter: head=%.0f tail=%.0f", head, tail)
	}
}

func TestBoomSilentAtZeroVolume(t *testing.T) {
	for _, v := range RenderPCM(BoomStreamer(beep.SampleRate(SampleRate), 0, 3)) {
		if v != 0 {
			t.Fatal("zero volume should render silence")
		}
	}
}
