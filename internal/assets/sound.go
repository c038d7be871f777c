package assets

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/Garsondee/Pixel-Hunt/internal/config"
	"github.com/Garsondee/Pixel-Hunt/internal/sim"
)

// playerSound starts a fresh player per Play so overlapping explosions
// each get their own voice.
type playerSound struct {
	ctx    *audio.Context
	pcm    []byte
	volume float64
}

func (s *playerSound) Play() {
	p := s.ctx.NewPlayerFromBytes(s.pcm)
	p.SetVolume(s.volume)
	p.Play()
}

// ExplosionSound returns the sound played by each explosion. Disabled audio
// or a nil context yields a silent sound. When the WAV at path cannot be
// read the synthesised boom is used instead.
func ExplosionSound(ctx *audio.Context, ac config.AudioConfig, path string) sim.Sound {
	if !ac.Enabled || ctx == nil {
		return sim.NopSound{}
	}
	pcm, err := loadWAV(ctx.SampleRate(), path)
	if err != nil {
		log.Printf("assets: %v; using synthesised explosion sound", err)
		pcm = RenderPCM(BoomStreamer(beep.SampleRate(ctx.SampleRate()), 1, time.Now().UnixNano()))
	}
	return &playerSound{ctx: ctx, pcm: pcm, volume: ac.Volume}
}

func loadWAV(sampleRate int, path string) ([]byte, error) {
	f, err := os.Open(path) // #nosec G304 -- path comes from local config
	if err != nil {
		return nil, fmt.Errorf("open sound: %w", err)
	}
	defer f.Close()

	stream, err := wav.DecodeWithSampleRate(sampleRate, f)
	if err != nil {
		return nil, fmt.Errorf("decode sound %s: %w", path, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read sound %s: %w", path, err)
	}
	return pcm, nil
}
