package game

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/Garsondee/Pixel-Hunt/internal/sim"
)

// scoreText is the line copied from the game-over screen.
func scoreText(s *sim.Session) string {
	return fmt.Sprintf("Pixel Hunt score: %d (hits %d, misses %d, session %s)",
		s.Score(), s.Hits(), s.Misses(), s.ID)
}

func copyScore(s *sim.Session) error {
	if err := clipboard.WriteAll(scoreText(s)); err != nil {
		return fmt.Errorf("copy score: %w", err)
	}
	return nil
}
