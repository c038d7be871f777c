package sim

// Entity is anything that takes part in the per-frame pass.
type Entity interface {
	Update(dt float64)
	Draw(canvas, collision Surface)
	Destroyed() bool
}

// Sound is a fire-and-forget effect. Implementations must not block and
// swallow their own playback failures.
type Sound interface {
	Play()
}

// NopSound is the silent Sound used when audio is off or failed to load.
type NopSound struct{}

func (NopSound) Play() {}

// cull drops destroyed entries in place, keeping order.
func cull[E Entity](list []E) []E {
	kept := list[:0]
	for _, e := range list {
		if !e.Destroyed() {
			kept = append(kept, e)
		}
	}
	clear(list[len(kept):])
	return kept
}
