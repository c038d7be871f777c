package game

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Garsondee/Pixel-Hunt/internal/config"
	"github.com/Garsondee/Pixel-Hunt/internal/sim"
)

// statusDuration is how long a one-line status message stays up.
const statusDuration = 2 * time.Second

// Game drives a sim.Session from ebiten's Update/Draw loop. Each Update
// forwards input, then runs the session's pending frame with the wall-clock
// time since start, which draws into the offscreen canvas. Draw only blits.
type Game struct {
	cfg     config.Config
	session *sim.Session
	sched   *sim.StepScheduler
	canvas  *Surface
	start   time.Time

	feed     *EventFeed
	showFeed bool

	status      string
	statusUntil time.Time
}

// New builds a game over a fresh session and requests its first frame.
func New(cfg config.Config, assets sim.Assets, rng *rand.Rand) (*Game, error) {
	canvas, err := NewSurface(cfg.CanvasWidth, cfg.CanvasHeight)
	if err != nil {
		return nil, err
	}
	g := &Game{
		cfg:    cfg,
		sched:  &sim.StepScheduler{},
		canvas: canvas,
		start:  time.Now(),
		feed:   NewEventFeed(),
	}
	g.session = sim.NewSession(cfg, canvas, g.sched, sim.WithRand(rng), sim.WithAssets(assets))
	g.session.Start()
	log.Printf("session %s started", g.session.ID)
	return g, nil
}

// Session exposes the running session.
func (g *Game) Session() *sim.Session {
	return g.session
}

func (g *Game) Update() error {
	g.handleInput()
	g.sched.Step(g.elapsedMs())
	g.feed.Sync(g.session.Log())
	return nil
}

func (g *Game) elapsedMs() float64 {
	return float64(time.Since(g.start)) / float64(time.Millisecond)
}

func (g *Game) handleInput() {
	// Left click: shoot, or retry on the game-over screen.
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		wasEnded := g.session.Ended()
		g.session.Click(float64(mx), float64(my))
		if wasEnded && !g.session.Ended() {
			log.Printf("session %s started", g.session.ID)
		}
	}

	// H: toggle event feed.
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showFeed = !g.showFeed
	}

	// C: copy the final score.
	if g.session.Ended() && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if err := copyScore(g.session); err != nil {
			log.Printf("clipboard: %v", err)
			g.setStatus("clipboard unavailable")
		} else {
			g.setStatus("score copied")
		}
	}
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusUntil = time.Now().Add(statusDuration)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	screen.DrawImage(g.canvas.Image(), nil)

	if g.showFeed {
		g.feed.Draw(screen, g.cfg.CanvasWidth-feedPanelWidth, g.cfg.CanvasHeight)
	}

	if g.session.Ended() {
		rb := g.cfg.RetryButton
		ebitenutil.DebugPrintAt(screen, "[C] copy score", int(rb.X), int(rb.Y+rb.H)+8)
	}
	if g.status != "" && time.Now().Before(g.statusUntil) {
		ebitenutil.DebugPrintAt(screen, g.status, 8, g.cfg.CanvasHeight-20)
	}
	if !g.showFeed {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("[H] events  %.0f fps", ebiten.ActualFPS()), 8, 4)
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.CanvasWidth, g.cfg.CanvasHeight
}
