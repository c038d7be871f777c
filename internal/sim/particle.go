package sim

import (
	"math/rand"

	"github.com/Garsondee/Pixel-Hunt/internal/config"
)

// particleFadeMargin: a particle is culled once its radius comes within
// this many pixels of its maximum.
const particleFadeMargin = 5

// Particle is a fading puff trailing a target. It drifts right at a
// constant speed and grows a fixed amount per update.
type Particle struct {
	X, Y      float64
	Radius    float64
	MaxRadius float64
	SpeedX    float64
	Growth    float64
	Color     RGB
	destroyed bool
}

// newParticle jitters a puff around the visual centre of a source of the
// given width at (x,y).
func newParticle(x, y, size float64, c RGB, cfg config.ParticleConfig, rng *rand.Rand) *Particle {
	jitter := func() float64 { return rng.Float64()*2*cfg.Jitter - cfg.Jitter }
	return &Particle{
		X:         x + size*0.5 + jitter(),
		Y:         y + size*0.33 + jitter(),
		Radius:    rng.Float64() * size * 0.1,
		MaxRadius: cfg.MaxRadiusMin + rng.Float64()*(cfg.MaxRadiusMax-cfg.MaxRadiusMin),
		SpeedX:    rng.Float64() + 0.5,
		Growth:    cfg.Growth,
		Color:     c,
	}
}

func (p *Particle) Update(_ float64) {
	p.X += p.SpeedX
	p.Radius += p.Growth
	if p.Radius > p.MaxRadius-particleFadeMargin {
		p.destroyed = true
	}
}

// Alpha fades linearly from opaque at radius 0 to clear at MaxRadius.
func (p *Particle) Alpha() float64 {
	if p.MaxRadius <= 0 {
		return 0
	}
	a := 1 - p.Radius/p.MaxRadius
	if a < 0 {
		return 0
	}
	return a
}

func (p *Particle) Draw(canvas, _ Surface) {
	canvas.FillCircle(p.X, p.Y, p.Radius, p.Color.WithAlpha(p.Alpha()))
}

func (p *Particle) Destroyed() bool {
	return p.destroyed
}
