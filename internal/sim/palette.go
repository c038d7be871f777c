package sim

import "math/rand"

// maxColorRolls bounds the reroll loop. With at most a few dozen live
// targets out of 16.7M keys a clash on every roll is not a practical case.
const maxColorRolls = 64

// palette hands out collision colour keys.
type palette struct {
	rng    *rand.Rand
	unique bool
}

func roll(rng *rand.Rand) RGB {
	return RGB{R: uint8(rng.Intn(256)), G: uint8(rng.Intn(256)), B: uint8(rng.Intn(256))}
}

// pick returns a key. When unique is set it rerolls until the key differs
// from every live target's key.
func (p palette) pick(live []*Target) RGB {
	c := roll(p.rng)
	if !p.unique {
		return c
	}
	for i := 0; i < maxColorRolls && colorInUse(c, live); i++ {
		c = roll(p.rng)
	}
	return c
}

func colorInUse(c RGB, live []*Target) bool {
	for _, t := range live {
		if !t.destroyed && t.Color == c {
			return true
		}
	}
	return false
}
