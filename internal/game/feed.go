package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Pixel-Hunt/internal/sim"
)

const (
	feedPanelWidth = 340
	feedMaxEntries = 40
	feedLineHeight = 14
)

// FeedEntry is a single line in the event feed.
type FeedEntry struct {
	Frame    int
	Label    string // e.g. "T3", or "--" for session events
	Category string // hit, escape, state, session
	Message  string
}

// EventFeed is a ring buffer of recent session events rendered on-screen.
type EventFeed struct {
	entries []FeedEntry
	head    int
	count   int
	synced  int // SimLog entries already consumed
}

// NewEventFeed creates an event feed with a fixed capacity.
func NewEventFeed() *EventFeed {
	return &EventFeed{
		entries: make([]FeedEntry, feedMaxEntries),
	}
}

// Add appends an entry, overwriting the oldest once full.
func (f *EventFeed) Add(frame int, label, category, msg string) {
	f.entries[f.head] = FeedEntry{
		Frame:    frame,
		Label:    label,
		Category: category,
		Message:  msg,
	}
	f.head = (f.head + 1) % feedMaxEntries
	if f.count < feedMaxEntries {
		f.count++
	}
}

// Recent returns entries in chronological order (oldest first).
func (f *EventFeed) Recent() []FeedEntry {
	result := make([]FeedEntry, f.count)
	for i := 0; i < f.count; i++ {
		idx := (f.head - f.count + i + feedMaxEntries) % feedMaxEntries
		result[i] = f.entries[idx]
	}
	return result
}

// Sync copies the player-facing events recorded in log since the last call.
func (f *EventFeed) Sync(log *sim.SimLog) {
	entries := log.Entries()
	if f.synced > len(entries) {
		f.synced = 0 // log was reset
	}
	for _, e := range entries[f.synced:] {
		switch e.Category {
		case "hit", "escape", "state", "session":
			f.Add(e.Frame, e.Entity, e.Category, e.Key+" "+e.Value)
		}
	}
	f.synced = len(entries)
}

func feedColor(category string) color.RGBA {
	switch category {
	case "hit":
		return color.RGBA{R: 90, G: 210, B: 90, A: 255}
	case "escape":
		return color.RGBA{R: 220, G: 70, B: 70, A: 255}
	case "state":
		return color.RGBA{R: 230, G: 200, B: 60, A: 255}
	}
	return color.RGBA{R: 140, G: 140, B: 160, A: 255}
}

// Draw renders the feed as a panel anchored at panelX.
func (f *EventFeed) Draw(screen *ebiten.Image, panelX int, panelH int) {
	vector.FillRect(screen, float32(panelX), 0, float32(feedPanelWidth), float32(panelH), color.RGBA{R: 10, G: 12, B: 18, A: 220}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1.0, color.RGBA{R: 50, G: 60, B: 90, A: 255}, false)

	vector.FillRect(screen, float32(panelX), 0, float32(feedPanelWidth), 16, color.RGBA{R: 20, G: 24, B: 40, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "EVENTS  [H] hide", panelX+8, 0)

	entries := f.Recent()
	maxVisible := (panelH - 24) / feedLineHeight
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}

	y := 20
	for _, e := range entries {
		vector.FillRect(screen, float32(panelX+5), float32(y+4), 3, 6, feedColor(e.Category), false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%4d %-3s %s", e.Frame, e.Label, e.Message), panelX+12, y)
		y += feedLineHeight
	}
}
