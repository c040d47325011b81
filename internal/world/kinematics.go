package world

import "github.com/tomz197/dodger/internal/object"

// Advance moves every entity by its speed over dt seconds.
// Drifting player bullets also slide sideways. Enemy shots rolled by Spawn
// leave from the enemy's moved position and travel in the same step.
func (w *World) Advance(dt float64) {
	advanceAll(w.Obstacles, dt)
	advanceAll(w.Enemies, dt)
	advanceAll(w.PowerUps, dt)
	advanceAll(w.PlayerBullets, dt)
	w.emitEnemyShots()
	advanceAll(w.EnemyBullets, dt)
}

func advanceAll(entities []object.Entity, dt float64) {
	for i := range entities {
		advance(&entities[i], dt)
	}
}

func advance(e *object.Entity, dt float64) {
	e.Y += e.Speed * dt
	switch e.Drift {
	case object.DriftLeft:
		e.X -= BulletDrift * dt
	case object.DriftRight:
		e.X += BulletDrift * dt
	}
}
