// Package world holds the authoritative game state and the per-frame simulation.
//
// A frame runs ApplyInput, then Update: spawn, advance, resolve collisions, cull,
// and the game-over check. Nothing here touches graphics or the terminal.
package world

import "github.com/tomz197/dodger/internal/object"

// Phase is the game's top-level state.
type Phase int

const (
	PhasePlaying  Phase = iota // Simulation runs
	PhaseGameOver              // Frozen until reset
)

// World holds the player scalars, timers and every live entity.
type World struct {
	PlayerX   float64
	Health    int
	Score     int
	HighScore int // Kept across resets
	Phase     Phase

	FireTimer     float64 // Seconds since the last volley
	EnemyTimer    float64
	ObstacleTimer float64
	PowerUpTime   float64 // Remaining spread-fire seconds

	PlayerBullets []object.Entity
	EnemyBullets  []object.Entity
	Enemies       []object.Entity
	Obstacles     []object.Entity
	PowerUps      []object.Entity

	rng          Rand
	pendingShots []int // Enemy indices that fire in the next Advance
}

// New creates a world ready to play. A nil rng is replaced by a time-seeded one.
func New(rng Rand) *World {
	if rng == nil {
		rng = NewRand(0)
	}
	w := &World{rng: rng}
	w.Reset()
	return w
}

// Reset starts a new game in place. The high score survives.
func (w *World) Reset() {
	w.PlayerX = StartLane
	w.Health = MaxHealth
	w.Score = 0
	w.Phase = PhasePlaying

	w.FireTimer = 0
	w.EnemyTimer = 0
	w.ObstacleTimer = 0
	w.PowerUpTime = 0

	w.PlayerBullets = w.PlayerBullets[:0]
	w.EnemyBullets = w.EnemyBullets[:0]
	w.Enemies = w.Enemies[:0]
	w.Obstacles = w.Obstacles[:0]
	w.PowerUps = w.PowerUps[:0]
	w.pendingShots = w.pendingShots[:0]
}

// GameOver reports whether the simulation is frozen.
func (w *World) GameOver() bool {
	return w.Phase == PhaseGameOver
}

// PowerUpActive reports whether side bullets are being fired.
func (w *World) PowerUpActive() bool {
	return w.PowerUpTime > 0
}

// sequences returns pointers to every entity slice in draw order.
func (w *World) sequences() []*[]object.Entity {
	return []*[]object.Entity{
		&w.Obstacles,
		&w.Enemies,
		&w.PowerUps,
		&w.PlayerBullets,
		&w.EnemyBullets,
	}
}
