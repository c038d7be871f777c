package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Pixel-Hunt/internal/assets"
	"github.com/Garsondee/Pixel-Hunt/internal/config"
	"github.com/Garsondee/Pixel-Hunt/internal/sim"
)

// bellSound rings the terminal bell for each explosion.
type bellSound struct {
	screen tcell.Screen
}

func (b bellSound) Play() {
	_ = b.screen.Beep()
}

type terminal struct {
	screen  tcell.Screen
	session *sim.Session
	sched   *sim.StepScheduler
	canvas  *sim.Raster
	view    view
	start   time.Time
	pressed bool // left button held, for edge-triggered clicks
}

func main() {
	var configPath string
	var seed int64
	var bell bool

	flag.StringVar(&configPath, "config", "", "YAML config file (defaults apply when empty)")
	flag.Int64Var(&seed, "seed", 0, "RNG seed (0 = time based)")
	flag.BoolVar(&bell, "bell", true, "ring the terminal bell on hits")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal(err)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	t, err := newTerminal(cfg, seed, bell && cfg.Audio.Enabled)
	if err != nil {
		log.Fatal(err)
	}
	t.run()
}

func newTerminal(cfg config.Config, seed int64, bell bool) (*terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	face, err := sim.NewOverlayFace(config.OverlayFontSize)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	target, explosion := assets.Sheets(cfg)
	var sound sim.Sound = sim.NopSound{}
	if bell {
		sound = bellSound{screen: screen}
	}

	t := &terminal{
		screen: screen,
		sched:  &sim.StepScheduler{},
		canvas: sim.NewRaster(cfg.CanvasWidth, cfg.CanvasHeight, face),
		start:  time.Now(),
	}
	t.resize()
	t.session = sim.NewSession(cfg, t.canvas, t.sched,
		sim.WithRand(rand.New(rand.NewSource(seed))), // #nosec G404 -- gameplay randomness
		sim.WithAssets(sim.Assets{TargetSheet: target, ExplosionSheet: explosion, ExplosionSound: sound}),
	)
	t.session.Start()
	return t, nil
}

// resize fits the canvas to the terminal, keeping the last row for status.
func (t *terminal) resize() {
	cols, rows := t.screen.Size()
	w, h := t.canvas.Size()
	t.view = newView(w, h, cols, rows-1)
}

func (t *terminal) run() {
	defer t.screen.Fini()

	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !t.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			t.sched.Step(float64(time.Since(t.start)) / float64(time.Millisecond))
			t.draw()
		}
	}
}

// handleEvent processes one terminal event and reports whether to keep
// running.
func (t *terminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case 'r':
				if t.session.Ended() {
					t.session.Restart()
				}
			}
		}
	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !t.pressed {
			col, row := ev.Position()
			if row < t.view.rows {
				t.session.Click(t.view.toCanvas(col, row))
			}
		}
		t.pressed = down
	case *tcell.EventResize:
		t.resize()
		t.screen.Sync()
	}
	return true
}

func (t *terminal) draw() {
	img := t.canvas.Image()
	for row := 0; row < t.view.rows; row++ {
		for col := 0; col < t.view.cols; col++ {
			top := average(img, t.view.block(col, row, 0), config.BackgroundColor)
			bottom := average(img, t.view.block(col, row, 1), config.BackgroundColor)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			t.screen.SetContent(col, row, '▀', nil, style)
		}
	}
	t.drawStatus(t.statusLine())
	t.screen.Show()
}

func (t *terminal) statusLine() string {
	s := t.session
	if s.Ended() {
		return fmt.Sprintf(" GAME OVER  score %d  [r] retry  [q] quit", s.Score())
	}
	return fmt.Sprintf(" score %d  targets %d  [q] quit", s.Score(), len(s.Targets()))
}

func (t *terminal) drawStatus(line string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	row := t.view.rows
	col := 0
	for _, r := range line {
		if col >= t.view.cols {
			break
		}
		t.screen.SetContent(col, row, r, nil, style)
		col++
	}
	for ; col < t.view.cols; col++ {
		t.screen.SetContent(col, row, ' ', nil, style)
	}
}
