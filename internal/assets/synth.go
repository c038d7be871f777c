package assets

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate is the PCM rate shared by the audio context and synthesised
// sounds.
const SampleRate = 44100

const (
	boomDuration = 600 * time.Millisecond
	boomAttack   = 4 * time.Millisecond
	boomCutoff   = 0.08 // one-pole low-pass coefficient, lower is duller
	boomDecay    = 7.0  // exponential decay rate over the whole sound
)

// rumble is low-passed white noise.
type rumble struct {
	rng  *rand.Rand
	prev float64
}

func (r *rumble) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		x := r.rng.Float64()*2 - 1
		r.prev += boomCutoff * (x - r.prev)
		samples[i][0] = r.prev
		samples[i][1] = r.prev
	}
	return len(samples), true
}

func (r *rumble) Err() error { return nil }

// decay applies a linear attack followed by an exponential tail.
type decay struct {
	streamer beep.Streamer
	position int
	attack   int
	total    int
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		var vol float64
		if d.position < d.attack {
			vol = float64(d.position) / float64(d.attack)
		} else {
			vol = math.Exp(-boomDecay * float64(d.position) / float64(d.total))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// newVolume scales s linearly by vol; zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// BoomStreamer synthesises the fallback explosion sound at the given rate.
// The noise is seeded so the same seed renders the same samples.
func BoomStreamer(rate beep.SampleRate, volume float64, seed int64) beep.Streamer {
	total := rate.N(boomDuration)
	src := &rumble{rng: rand.New(rand.NewSource(seed))} // #nosec G404 -- audio noise
	shaped := &decay{streamer: src, attack: rate.N(boomAttack), total: total}
	// The filter output peaks well under full scale; bring it up before
	// the caller's volume.
	return newVolume(beep.Take(total, newVolume(shaped, 3)), volume)
}

// RenderPCM drains s into signed 16-bit little-endian stereo PCM, the
// format ebiten's audio players consume.
func RenderPCM(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, ch := range frame {
				ch = math.Max(-1, math.Min(1, ch))
				v := int16(ch * math.MaxInt16)
				out = append(out, byte(v), byte(v>>8))
			}
		}
		if !ok || n == 0 {
			return out
		}
	}
}
