package world

import (
	"fmt"
	"slices"

	"github.com/tomz197/dodger/internal/object"
)

// Snapshot is a read-only copy of the world for rendering.
type Snapshot struct {
	PlayerX     float64
	PlayerY     float64
	Health      int
	Score       int
	HighScore   int
	GameOver    bool
	PowerUpTime float64

	PlayerBullets []object.Entity
	EnemyBullets  []object.Entity
	Enemies       []object.Entity
	Obstacles     []object.Entity
	PowerUps      []object.Entity
}

// Snapshot copies the current state. Later updates do not affect it.
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		PlayerX:       w.PlayerX,
		PlayerY:       PlayerRow,
		Health:        w.Health,
		Score:         w.Score,
		HighScore:     w.HighScore,
		GameOver:      w.GameOver(),
		PowerUpTime:   w.PowerUpTime,
		PlayerBullets: slices.Clone(w.PlayerBullets),
		EnemyBullets:  slices.Clone(w.EnemyBullets),
		Enemies:       slices.Clone(w.Enemies),
		Obstacles:     slices.Clone(w.Obstacles),
		PowerUps:      slices.Clone(w.PowerUps),
	}
}

// StatusLine returns the HUD text.
func (s Snapshot) StatusLine() string {
	return fmt.Sprintf("SCORE: %d  HP: %d%%", s.Score, s.Health)
}

// Overlay returns the game-over message lines, or nil while playing.
func (s Snapshot) Overlay() []string {
	if !s.GameOver {
		return nil
	}
	return []string{GameOverTitle, GameOverPrompt}
}

// PowerUpActive reports whether the player should be drawn highlighted.
func (s Snapshot) PowerUpActive() bool {
	return s.PowerUpTime > 0
}
