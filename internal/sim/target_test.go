package sim

import (
	"math/rand"
	"testing"

	"github.com/Garsondee/Pixel-Hunt/internal/config"
)

// fakeHost records the side effects a target reports.
type fakeHost struct {
	trails  int
	escaped []*Target
}

func (h *fakeHost) spawnTrail(_, _, _ float64, _ RGB) { h.trails++ }
func (h *fakeHost) targetEscaped(t *Target)           { h.escaped = append(h.escaped, t) }

func newTestTarget(spec TargetSpec, host targetHost) *Target {
	return newTarget(1, spec, config.Default(), nil, host)
}

func TestTarget_SizeFromScale(t *testing.T) {
	tgt := newTestTarget(TargetSpec{Scale: 0.5}, nil)
	if tgt.W != 102.5 || tgt.H != 88 {
		t.Fatalf("expected 102.5x88, got %.1fx%.1f", tgt.W, tgt.H)
	}
}

func TestTarget_ReflectsAboveTop(t *testing.T) {
	tgt := newTestTarget(TargetSpec{X: 500, Y: -1, DirX: 3, DirY: -2, Scale: 0.5, FrameInterval: 1000}, nil)
	tgt.Update(16)
	if tgt.DirY != 2 {
		t.Fatalf("expected DirY flipped to 2, got %.1f", tgt.DirY)
	}
	if tgt.Y < 0 || tgt.Y > tgt.maxY() {
		t.Fatalf("expected y back in range, got %.1f", tgt.Y)
	}
}

// A target above the top that is already heading down is negated upward,
// then the clamp points it back down from y=0.
func TestTarget_OutOfRangeMovingInwardKeepsInwardDrift(t *testing.T) {
	tgt := newTestTarget(TargetSpec{X: 500, Y: -1, DirX: 3, DirY: 2, Scale: 0.5, FrameInterval: 1000}, nil)
	tgt.Update(16)
	if tgt.Y != 0 {
		t.Fatalf("expected y clamped to 0, got %.1f", tgt.Y)
	}
	if tgt.DirY != 2 {
		t.Fatalf("expected DirY to end pointing inward at 2, got %.1f", tgt.DirY)
	}
	tgt.Update(16)
	if tgt.Y != 2 {
		t.Fatalf("expected target to move down to y=2, got %.1f", tgt.Y)
	}
}

func TestTarget_ReflectsBelowBottom(t *testing.T) {
	cfg := config.Default()
	tgt := newTestTarget(TargetSpec{X: 500, Y: float64(cfg.CanvasHeight), DirX: 3, DirY: 2, Scale: 0.5, FrameInterval: 1000}, nil)
	tgt.Update(16)
	if tgt.DirY >= 0 {
		t.Fatalf("expected DirY negative after bottom bounce, got %.1f", tgt.DirY)
	}
	if tgt.Y != tgt.maxY() {
		t.Fatalf("expected y clamped to %.1f, got %.1f", tgt.maxY(), tgt.Y)
	}
}

func TestTarget_StaysInVerticalRange(t *testing.T) {
	cfg := config.Default()
	rng := rand.New(rand.NewSource(42)) // #nosec G404 -- test
	for i := 0; i < 50; i++ {
		spec := RandomTargetSpec(cfg, rng, RGB{})
		spec.DirY *= 4 // exaggerate drift so bounces happen often
		tgt := newTestTarget(spec, nil)
		for f := 0; f < 400; f++ {
			tgt.Update(16)
			if tgt.Y < 0 || tgt.Y > tgt.maxY() {
				t.Fatalf("target %d frame %d: y=%.2f outside [0, %.2f]", i, f, tgt.Y, tgt.maxY())
			}
		}
	}
}

func TestTarget_XDecreasesMonotonically(t *testing.T) {
	cfg := config.Default()
	rng := rand.New(rand.NewSource(3)) // #nosec G404 -- test
	tgt := newTestTarget(RandomTargetSpec(cfg, rng, RGB{}), nil)
	prev := tgt.X
	for f := 0; f < 100; f++ {
		tgt.Update(16)
		if tgt.X >= prev {
			t.Fatalf("frame %d: x did not decrease (%.2f -> %.2f)", f, prev, tgt.X)
		}
		prev = tgt.X
	}
}

func TestTarget_DestroyedExactlyWhenPastLeftEdge(t *testing.T) {
	host := &fakeHost{}
	tgt := newTestTarget(TargetSpec{X: 10, Y: 100, DirX: 5, Scale: 0.5, FrameInterval: 1e9}, host)
	for f := 0; f < 100; f++ {
		tgt.Update(16)
		if tgt.Destroyed() != (tgt.X < -tgt.W) {
			t.Fatalf("frame %d: destroyed=%v with x=%.1f w=%.1f", f, tgt.Destroyed(), tgt.X, tgt.W)
		}
	}
	if !tgt.Destroyed() {
		t.Fatal("expected target to have escaped")
	}
	if len(host.escaped) != 1 {
		t.Fatalf("expected exactly one escape report, got %d", len(host.escaped))
	}
	if tgt.WasHit() {
		t.Fatal("escaped target should not report a hit")
	}
}

func TestTarget_HitTargetDoesNotEscape(t *testing.T) {
	host := &fakeHost{}
	tgt := newTestTarget(TargetSpec{X: 0, Y: 100, DirX: 5, Scale: 0.5, FrameInterval: 1e9}, host)
	if !tgt.Hit() {
		t.Fatal("first hit should succeed")
	}
	if tgt.Hit() {
		t.Fatal("second hit on a destroyed target should fail")
	}
	for f := 0; f < 50; f++ {
		tgt.Update(16)
	}
	if len(host.escaped) != 0 {
		t.Fatalf("a shot target must not count as escaped, got %d reports", len(host.escaped))
	}
}

func TestTarget_FrameWrapsAndEmitsTrail(t *testing.T) {
	host := &fakeHost{}
	tgt := newTestTarget(TargetSpec{X: 1000, Y: 100, DirX: 1, Scale: 0.5, FrameInterval: 10}, host)
	want := []int{1, 2, 3, 4, 0, 1, 2}
	for i, w := range want {
		tgt.Update(11)
		if tgt.Frame() != w {
			t.Fatalf("advance %d: expected frame %d, got %d", i, w, tgt.Frame())
		}
	}
	if host.trails != len(want) {
		t.Fatalf("expected one trail batch per advance (%d), got %d", len(want), host.trails)
	}
}

func TestTarget_NoAdvanceBelowInterval(t *testing.T) {
	host := &fakeHost{}
	tgt := newTestTarget(TargetSpec{X: 1000, Y: 100, DirX: 1, Scale: 0.5, FrameInterval: 50}, host)
	tgt.Update(20)
	tgt.Update(20)
	if tgt.Frame() != 0 || host.trails != 0 {
		t.Fatalf("expected no advance at 40ms, frame=%d trails=%d", tgt.Frame(), host.trails)
	}
	tgt.Update(20)
	if tgt.Frame() != 1 || host.trails != 1 {
		t.Fatalf("expected one advance at 60ms, frame=%d trails=%d", tgt.Frame(), host.trails)
	}
}

func TestTarget_DrawPaintsSilhouette(t *testing.T) {
	key := RGB{R: 10, G: 20, B: 30}
	tgt := newTestTarget(TargetSpec{X: 100, Y: 50, Scale: 0.5, Color: key}, nil)
	canvas := newRecordingSurface(400, 300)
	collision := NewRaster(400, 300, nil)
	tgt.Draw(canvas, collision)

	cx, cy := tgt.Center()
	if !key.Matches(collision.PixelAt(int(cx), int(cy))) {
		t.Fatalf("expected collision key at centre, got %+v", collision.PixelAt(int(cx), int(cy)))
	}
	if collision.PixelAt(99, 50).A != 0 {
		t.Fatal("pixel left of the target should be clear")
	}
	if len(canvas.sprites) != 1 || canvas.sprites[0] != 0 {
		t.Fatalf("expected one sprite draw at frame 0, got %v", canvas.sprites)
	}
}

func TestRandomTargetSpec_Ranges(t *testing.T) {
	cfg := config.Default()
	rng := rand.New(rand.NewSource(9)) // #nosec G404 -- test
	for i := 0; i < 200; i++ {
		s := RandomTargetSpec(cfg, rng, RGB{})
		if s.X != float64(cfg.CanvasWidth) {
			t.Fatalf("spawn x should be the right edge, got %.1f", s.X)
		}
		if s.Scale < 0.4 || s.Scale > 1.0 {
			t.Fatalf("scale %.3f outside [0.4, 1.0]", s.Scale)
		}
		if s.DirX < 3 || s.DirX > 6 {
			t.Fatalf("dirX %.3f outside [3, 6]", s.DirX)
		}
		if s.DirY < -2.5 || s.DirY > 2.5 {
			t.Fatalf("dirY %.3f outside [-2.5, 2.5]", s.DirY)
		}
		if s.FrameInterval < 50 || s.FrameInterval > 100 {
			t.Fatalf("frame interval %.1f outside [50, 100]", s.FrameInterval)
		}
		maxY := float64(cfg.CanvasHeight) - cfg.Target.SpriteHeight*s.Scale
		if s.Y < 0 || s.Y > maxY {
			t.Fatalf("spawn y %.1f outside [0, %.1f]", s.Y, maxY)
		}
	}
}
