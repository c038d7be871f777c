package sim

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/Garsondee/Pixel-Hunt/internal/config"
)

// Assets bundles what entities draw and play. Any field may be nil; a
// missing sheet is simply not drawn and a missing sound is silent.
type Assets struct {
	TargetSheet    *SpriteSheet
	ExplosionSheet *SpriteSheet
	ExplosionSound Sound
}

// Session owns one game: the three entity populations, the score, the
// end-of-game flags, and the frame loop that advances them. All methods
// must be called from the single goroutine that also runs the scheduler.
type Session struct {
	ID uuid.UUID

	cfg       config.Config
	rng       *rand.Rand
	canvas    Surface
	collision *Raster
	assets    Assets
	sched     Scheduler
	log       *SimLog
	palette   palette
	clock     Clock
	spawner   Spawner

	score      int
	aboutToEnd bool
	ended      bool
	frame      int
	hits       int
	misses     int
	nextID     int

	targets    []*Target
	explosions []*Explosion
	particles  []*Particle
}

// Option configures a Session at construction.
type Option func(*Session)

// WithRand sets the random source used for spawning and particles.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) { s.rng = rng }
}

// WithAssets sets sprite sheets and sounds.
func WithAssets(a Assets) Option {
	return func(s *Session) { s.assets = a }
}

// WithLog sets the event log.
func WithLog(l *SimLog) Option {
	return func(s *Session) { s.log = l }
}

// NewSession builds a session drawing onto canvas and scheduling frames on
// sched. The hidden collision surface is created to match canvas.
func NewSession(cfg config.Config, canvas Surface, sched Scheduler, opts ...Option) *Session {
	w, h := canvas.Size()
	s := &Session{
		ID:        uuid.New(),
		cfg:       cfg,
		canvas:    canvas,
		collision: NewRaster(w, h, nil),
		sched:     sched,
		spawner:   Spawner{Interval: cfg.SpawnInterval},
	}
	for _, o := range opts {
		o(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 -- game only
	}
	if s.log == nil {
		s.log = NewSimLog(false)
	}
	s.palette = palette{rng: s.rng, unique: cfg.UniqueColors}
	return s
}

// Start requests the first frame.
func (s *Session) Start() {
	s.log.Add(s.frame, "--", "session", "start", s.ID.String(), 0)
	s.sched.RequestFrame(s.Tick)
}

// Tick is the per-frame loop body. It clears both surfaces, spawns on
// schedule, updates and draws every entity, culls the destroyed ones, and
// requests the next frame unless the game has ended.
func (s *Session) Tick(ts float64) {
	s.frame++
	s.canvas.Clear()
	s.collision.Clear()

	dt := s.clock.Tick(ts)
	if s.spawner.Advance(dt) {
		s.SpawnTarget(RandomTargetSpec(s.cfg, s.rng, s.palette.pick(s.targets)))
	}

	if !s.aboutToEnd {
		s.drawShadowed(fmt.Sprintf("Score: %d", s.score), config.ScoreX, config.ScoreY, AlignLeft)
	} else {
		s.ended = true
	}

	all := make([]Entity, 0, len(s.particles)+len(s.targets)+len(s.explosions))
	for _, p := range s.particles {
		all = append(all, p)
	}
	for _, t := range s.targets {
		all = append(all, t)
	}
	for _, e := range s.explosions {
		all = append(all, e)
	}
	for _, e := range all {
		e.Update(dt)
		e.Draw(s.canvas, s.collision)
	}

	s.targets = cull(s.targets)
	s.explosions = cull(s.explosions)
	s.particles = cull(s.particles)

	s.log.AddVerbose(s.frame, "--", "population", "counts",
		fmt.Sprintf("targets=%d explosions=%d particles=%d", len(s.targets), len(s.explosions), len(s.particles)),
		float64(len(s.targets)))

	if !s.ended {
		s.sched.RequestFrame(s.Tick)
		return
	}
	s.drawGameOver()
	s.log.Add(s.frame, "--", "state", "game_over", fmt.Sprintf("score=%d session=%s", s.score, s.ID), float64(s.score))
}

// SpawnTarget adds a target built from spec and re-sorts the population by
// ascending width so larger targets draw on top.
func (s *Session) SpawnTarget(spec TargetSpec) *Target {
	s.nextID++
	t := newTarget(s.nextID, spec, s.cfg, s.assets.TargetSheet, s)
	s.targets = append(s.targets, t)
	sort.SliceStable(s.targets, func(i, j int) bool { return s.targets[i].W < s.targets[j].W })
	s.log.Add(s.frame, t.Label(), "spawn", "target",
		fmt.Sprintf("%s at (%.0f,%.0f) w=%.0f", t.Color, t.X, t.Y, t.W), t.W)
	return t
}

// Click handles a pointer click at canvas coordinates. While the game is
// running it resolves the click against the collision surface; after the
// game has ended a click inside the retry button restarts the session.
// It reports whether a target was hit.
func (s *Session) Click(px, py float64) bool {
	if s.ended {
		if s.cfg.RetryButton.Contains(px, py) {
			s.Restart()
		}
		return false
	}
	return s.shoot(px, py)
}

// shoot resolves a click by reading the collision pixel under the cursor
// and matching it against the live targets' colour keys.
func (s *Session) shoot(px, py float64) bool {
	pixel := s.collision.PixelAt(int(math.Floor(px)), int(math.Floor(py)))
	for _, t := range s.targets {
		if t.destroyed || !t.Color.Matches(pixel) {
			continue
		}
		t.Hit()
		s.score++
		s.hits++
		s.nextID++
		e := newExplosion(s.nextID, px, py, t.W, s.cfg.Explosion, s.assets.ExplosionSheet, s.assets.ExplosionSound)
		s.explosions = append(s.explosions, e)
		s.log.Add(s.frame, t.Label(), "hit", "target_hit",
			fmt.Sprintf("%s at (%.0f,%.0f)", t.Color, px, py), float64(s.score))
		return true
	}
	s.misses++
	s.log.Add(s.frame, "--", "miss", "no_target", fmt.Sprintf("(%.0f,%.0f)", px, py), 0)
	return false
}

// Reset reinitialises all session state. The next tick starts a fresh
// clock, so the restart does not inherit the time spent on the game-over screen.
func (s *Session) Reset() {
	old := s.ID
	s.ID = uuid.New()
	s.score = 0
	s.aboutToEnd = false
	s.ended = false
	s.hits = 0
	s.misses = 0
	s.targets = nil
	s.explosions = nil
	s.particles = nil
	s.clock.Reset()
	s.spawner.Reset()
	s.canvas.Clear()
	s.collision.Clear()
	s.log.Add(s.frame, "--", "session", "reset", fmt.Sprintf("%s -> %s", old, s.ID), 0)
}

// Restart resets the session and resumes the frame loop.
func (s *Session) Restart() {
	s.Reset()
	s.sched.RequestFrame(s.Tick)
}

func (s *Session) spawnTrail(x, y, size float64, c RGB) {
	for i := 0; i < s.cfg.Particles.PerBatch; i++ {
		s.particles = append(s.particles, newParticle(x, y, size, c, s.cfg.Particles, s.rng))
	}
}

func (s *Session) targetEscaped(t *Target) {
	s.aboutToEnd = true
	s.log.Add(s.frame, t.Label(), "escape", "left_edge", fmt.Sprintf("x=%.1f w=%.1f", t.X, t.W), t.X)
}

func (s *Session) drawShadowed(text string, x, y float64, align Align) {
	s.canvas.DrawText(text, x, y, config.TextDarkColor, align)
	s.canvas.DrawText(text, x+config.ShadowOffset, y+config.ShadowOffset, config.TextLightColor, align)
}

func (s *Session) drawGameOver() {
	w, h := s.canvas.Size()
	s.drawShadowed(fmt.Sprintf("GAME OVER, your score is %d", s.score), float64(w)*0.5, float64(h)*0.5, AlignCenter)
	rb := s.cfg.RetryButton
	s.canvas.FillRect(rb.X, rb.Y, rb.W, rb.H, config.RetryFillColor)
	s.drawShadowed("Retry", rb.X+rb.W*0.5, rb.Y+rb.H*0.8, AlignCenter)
}

// Score returns the number of targets shot this session.
func (s *Session) Score() int { return s.score }

// AboutToEnd reports whether a target has escaped this frame or earlier.
func (s *Session) AboutToEnd() bool { return s.aboutToEnd }

// Ended reports whether the loop has stopped requesting frames.
func (s *Session) Ended() bool { return s.ended }

// Frame returns the number of ticks run since construction.
func (s *Session) Frame() int { return s.frame }

// Hits and Misses count resolved clicks since the last reset.
func (s *Session) Hits() int   { return s.hits }
func (s *Session) Misses() int { return s.misses }

func (s *Session) Targets() []*Target       { return s.targets }
func (s *Session) Explosions() []*Explosion { return s.explosions }
func (s *Session) Particles() []*Particle   { return s.particles }

// Canvas returns the visible surface.
func (s *Session) Canvas() Surface { return s.canvas }

// Collision returns the hidden hit-test surface.
func (s *Session) Collision() *Raster { return s.collision }

func (s *Session) Config() config.Config { return s.cfg }

func (s *Session) Log() *SimLog { return s.log }
