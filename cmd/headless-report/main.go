package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"

	"github.com/Garsondee/Pixel-Hunt/internal/sim"
)

type runStats struct {
	runIndex  int
	seed      int64
	sessionID string

	score  int
	frames int
	hits   int
	misses int
	spawns int
	ended  bool

	firstHitFrame    int
	firstEscapeFrame int
}

// gunner is a scripted player. Once per reaction period it aims at the
// target closest to the left edge and pulls off target with probability
// 1-accuracy.
type gunner struct {
	rng        *rand.Rand
	accuracy   float64
	reactionMs float64
	sinceShot  float64
}

func newGunner(seed int64, accuracy, reactionMs float64) *gunner {
	return &gunner{
		rng:        rand.New(rand.NewSource(seed ^ 0x5eed)), // #nosec G404 -- scripted player
		accuracy:   accuracy,
		reactionMs: reactionMs,
	}
}

// ready advances the reaction timer by dt and reports whether a shot is due.
func (g *gunner) ready(dt float64) bool {
	g.sinceShot += dt
	if g.sinceShot < g.reactionMs {
		return false
	}
	g.sinceShot = 0
	return true
}

// aim returns the click point for t: its centre, or just left of its
// silhouette on a missed roll.
func (g *gunner) aim(t *sim.Target) (float64, float64) {
	x, y := t.Center()
	if g.rng.Float64() >= g.accuracy {
		x = math.Floor(t.X) - 1
	}
	return x, y
}

// leftmost returns the live target nearest the left edge, or nil.
func leftmost(targets []*sim.Target) *sim.Target {
	var best *sim.Target
	for _, t := range targets {
		if t.Destroyed() {
			continue
		}
		if best == nil || t.X < best.X {
			best = t
		}
	}
	return best
}

func main() {
	var runs int
	var frames int
	var seedBase int64
	var seedStep int64
	var accuracy float64
	var reactionMs float64
	var verbose bool

	flag.IntVar(&runs, "runs", 5, "number of headless sessions")
	flag.IntVar(&frames, "frames", 3600, "maximum frames per session")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.Float64Var(&accuracy, "accuracy", 0.8, "probability a scripted shot is on target")
	flag.Float64Var(&reactionMs, "reaction-ms", 250, "scripted gunner's time between shots")
	flag.BoolVar(&verbose, "verbose", false, "dump each session's event log")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if frames <= 0 {
		fmt.Println("error: -frames must be > 0")
		return
	}
	if accuracy < 0 || accuracy > 1 {
		fmt.Println("error: -accuracy must be in [0,1]")
		return
	}
	if reactionMs <= 0 {
		fmt.Println("error: -reaction-ms must be > 0")
		return
	}

	fmt.Printf("=== Headless Pixel Hunt Report ===\n")
	fmt.Printf("runs=%d frames=%d seed_base=%d seed_step=%d accuracy=%.2f reaction_ms=%.0f\n\n",
		runs, frames, seedBase, seedStep, accuracy, reactionMs)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats, dump := runSession(i+1, seed, frames, accuracy, reactionMs)
		all = append(all, stats)
		printRun(stats)
		if verbose {
			fmt.Print(dump)
			fmt.Println()
		}
	}

	printAggregate(all)
}

// runSession plays one seeded session with the scripted gunner and returns
// its stats and the dumped event log.
func runSession(runIndex int, seed int64, frames int, accuracy, reactionMs float64) (runStats, string) {
	ts := sim.NewTestSim(sim.WithSeed(seed))
	gun := newGunner(seed, accuracy, reactionMs)

	ran := 0
	for ran < frames && ts.Step(sim.DefaultStepMs) {
		ran++
		if !gun.ready(sim.DefaultStepMs) {
			continue
		}
		if t := leftmost(ts.Session.Targets()); t != nil {
			ts.Click(gun.aim(t))
		}
	}

	firstHit, firstEscape := -1, -1
	if e, ok := ts.SimLog.FirstOf("hit", "target_hit"); ok {
		firstHit = e.Frame
	}
	if e, ok := ts.SimLog.FirstOf("escape", "left_edge"); ok {
		firstEscape = e.Frame
	}
	return runStats{
		runIndex:         runIndex,
		seed:             seed,
		sessionID:        ts.Session.ID.String(),
		score:            ts.Session.Score(),
		frames:           ran,
		hits:             ts.Session.Hits(),
		misses:           ts.Session.Misses(),
		spawns:           ts.SimLog.CountCategory("spawn", "target"),
		ended:            ts.Session.Ended(),
		firstHitFrame:    firstHit,
		firstEscapeFrame: firstEscape,
	}, ts.SimLog.Dump()
}

func printRun(rs runStats) {
	outcome := "survived"
	if rs.ended {
		outcome = "game_over"
	}
	fmt.Printf("--- Run %d (seed=%d session=%s) ---\n", rs.runIndex, rs.seed, rs.sessionID)
	fmt.Printf("outcome=%s score=%d frames=%d spawns=%d\n", outcome, rs.score, rs.frames, rs.spawns)
	fmt.Printf("shots: hits=%d misses=%d hit_rate=%s\n", rs.hits, rs.misses, hitRate(rs.hits, rs.misses))
	fmt.Printf("phase_markers: first_hit=%d first_escape=%d\n\n", rs.firstHitFrame, rs.firstEscapeFrame)
}

type scoreSummary struct {
	mean, min, max float64
	meanFrames     float64
	endedRuns      int
}

func summarize(all []runStats) scoreSummary {
	if len(all) == 0 {
		return scoreSummary{}
	}
	s := scoreSummary{min: math.Inf(1), max: math.Inf(-1)}
	totalScore, totalFrames := 0, 0
	for _, rs := range all {
		totalScore += rs.score
		totalFrames += rs.frames
		s.min = math.Min(s.min, float64(rs.score))
		s.max = math.Max(s.max, float64(rs.score))
		if rs.ended {
			s.endedRuns++
		}
	}
	s.mean = avg(totalScore, len(all))
	s.meanFrames = avg(totalFrames, len(all))
	return s
}

func printAggregate(all []runStats) {
	s := summarize(all)
	totalHits, totalMisses := 0, 0
	escapes := make([]int, 0, len(all))
	for _, rs := range all {
		totalHits += rs.hits
		totalMisses += rs.misses
		if rs.firstEscapeFrame >= 0 {
			escapes = append(escapes, rs.firstEscapeFrame)
		}
	}
	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d game_over=%d\n", len(all), s.endedRuns)
	fmt.Printf("score: mean=%.1f min=%.0f max=%.0f\n", s.mean, s.min, s.max)
	fmt.Printf("survival: mean_frames=%.1f mean_first_escape=%s\n", s.meanFrames, avgFrameString(escapes))
	fmt.Printf("shots: hits=%d misses=%d hit_rate=%s\n", totalHits, totalMisses, hitRate(totalHits, totalMisses))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgFrameString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func hitRate(hits, misses int) string {
	if hits+misses == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", 100*float64(hits)/float64(hits+misses))
}
