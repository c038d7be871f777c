package main

import (
	"testing"

	"github.com/Garsondee/Pixel-Hunt/internal/sim"
)

func TestLeftmost_SkipsDestroyed(t *testing.T) {
	ts := sim.NewTestSim(sim.WithSpawnInterval(1e9),
		sim.WithTarget(sim.TargetSpec{X: 100, Y: 100, Scale: 0.5, FrameInterval: 1e9, Color: sim.RGB{R: 1}}),
		sim.WithTarget(sim.TargetSpec{X: 400, Y: 300, Scale: 0.6, FrameInterval: 1e9, Color: sim.RGB{R: 2}}),
	)
	targets := ts.Session.Targets()
	if got := leftmost(targets); got == nil || got.X != 100 {
		t.Fatalf("expected the target at x=100, got %+v", got)
	}
	targets[0].Hit()
	if got := leftmost(targets); got == nil || got.X != 400 {
		t.Fatalf("expected the shot target to be skipped, got %+v", got)
	}
	if leftmost(nil) != nil {
		t.Fatal("expected nil for no targets")
	}
}

func TestGunner_ReadyOncePerReaction(t *testing.T) {
	g := newGunner(1, 1, 100)
	shots := 0
	for i := 0; i < 60; i++ {
		if g.ready(20) {
			shots++
		}
	}
	// 60 frames of 20ms at one shot per 100ms.
	if shots != 12 {
		t.Fatalf("expected 12 shots, got %d", shots)
	}
}

func TestGunner_AimAccuracy(t *testing.T) {
	tgt := &sim.Target{X: 200, Y: 100, W: 80, H: 60}
	cx, cy := tgt.Center()

	perfect := newGunner(1, 1, 100)
	for i := 0; i < 20; i++ {
		if x, y := perfect.aim(tgt); x != cx || y != cy {
			t.Fatalf("accuracy 1 should always aim at the centre, got (%.0f,%.0f)", x, y)
		}
	}

	blind := newGunner(1, 0, 100)
	for i := 0; i < 20; i++ {
		if x, _ := blind.aim(tgt); x >= tgt.X {
			t.Fatalf("accuracy 0 should aim off the silhouette, got x=%.0f", x)
		}
	}
}

func TestRunSession_Deterministic(t *testing.T) {
	a, _ := runSession(1, 77, 900, 0.8, 200)
	b, _ := runSession(1, 77, 900, 0.8, 200)
	if a.score != b.score || a.frames != b.frames || a.hits != b.hits || a.misses != b.misses {
		t.Fatalf("same seed should replay identically: %+v vs %+v", a, b)
	}
	if a.spawns == 0 {
		t.Fatal("expected targets to spawn")
	}
}

func TestRunSession_PerfectGunnerScores(t *testing.T) {
	rs, _ := runSession(1, 5, 1200, 1, 100)
	if rs.score == 0 || rs.firstHitFrame < 0 {
		t.Fatalf("a perfect gunner should score, got %+v", rs)
	}
}

func TestRunSession_IdleGunnerLoses(t *testing.T) {
	rs, dump := runSession(1, 5, 5000, 0, 1e9)
	if !rs.ended || rs.firstEscapeFrame < 0 {
		t.Fatalf("with no shots a target should escape, got %+v\n%s", rs, dump)
	}
	if rs.score != 0 || rs.firstHitFrame != -1 {
		t.Fatalf("expected no hits, got score %d first hit %d", rs.score, rs.firstHitFrame)
	}
}

func TestSummarize(t *testing.T) {
	s := summarize([]runStats{
		{score: 4, frames: 100, ended: true},
		{score: 10, frames: 300},
		{score: 1, frames: 200, ended: true},
	})
	if s.mean != 5 || s.min != 1 || s.max != 10 {
		t.Fatalf("unexpected score summary %+v", s)
	}
	if s.meanFrames != 200 || s.endedRuns != 2 {
		t.Fatalf("unexpected survival summary %+v", s)
	}
	if (summarize(nil) != scoreSummary{}) {
		t.Fatal("empty input should summarise to zero")
	}
}

func TestHitRate(t *testing.T) {
	if got := hitRate(0, 0); got != "n/a" {
		t.Fatalf("expected n/a, got %q", got)
	}
	if got := hitRate(3, 1); got != "75.0%" {
		t.Fatalf("expected 75.0%%, got %q", got)
	}
}
