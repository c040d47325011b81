package world

import (
	"github.com/tomz197/dodger/internal/object"
	"github.com/tomz197/dodger/internal/physics"
)

// Resolve applies every collision rule once, in order. Each rule skips
// entities deactivated by an earlier one.
func (w *World) Resolve() {
	w.checkEnemyBulletHits()
	w.checkObstacleHits()
	w.checkBulletEnemyHits()
	w.checkPowerUpPickups()
	w.checkEnemiesEscaped()
}

// checkEnemyBulletHits damages the player once per touching enemy bullet.
func (w *World) checkEnemyBulletHits() {
	for i := range w.EnemyBullets {
		b := &w.EnemyBullets[i]
		if !b.IsActive() {
			continue
		}
		if physics.Near(w.PlayerX, PlayerRow, b.X, b.Y, EnemyBulletReach) {
			b.Deactivate()
			w.Health -= EnemyBulletDamage
		}
	}
}

// checkObstacleHits kills the player on contact with any obstacle.
func (w *World) checkObstacleHits() {
	for i := range w.Obstacles {
		o := &w.Obstacles[i]
		if !o.IsActive() {
			continue
		}
		box := physics.Box{X: o.X, Y: o.Y, Width: float64(o.Width), Height: float64(o.Height)}
		if physics.InsetOverlap(w.PlayerX, PlayerRow, box, ObstacleInset) {
			w.Health = 0
		}
	}
}

// checkBulletEnemyHits pairs bullets with enemies. A bullet kills at most one
// enemy and an enemy dies to at most one bullet.
func (w *World) checkBulletEnemyHits() {
	for i := range w.PlayerBullets {
		b := &w.PlayerBullets[i]
		for j := range w.Enemies {
			if !b.IsActive() {
				break
			}
			e := &w.Enemies[j]
			if !e.IsActive() {
				continue
			}
			if physics.Near(b.X, b.Y, e.X, e.Y, BulletEnemyReach) {
				b.Deactivate()
				e.Deactivate()
				w.Score += ScoreKill
				if w.rng.Intn(PowerUpDropOdds) == 0 {
					w.PowerUps = append(w.PowerUps, object.NewPowerUp(e.X, e.Y, PowerUpSpeed))
				}
			}
		}
	}
}

// checkPowerUpPickups restarts the spread-fire window on pickup.
func (w *World) checkPowerUpPickups() {
	for i := range w.PowerUps {
		p := &w.PowerUps[i]
		if !p.IsActive() {
			continue
		}
		if physics.Near(w.PlayerX, PlayerRow, p.X, p.Y, PowerUpReach) {
			p.Deactivate()
			w.PowerUpTime = PowerUpWindow
		}
	}
}

// checkEnemiesEscaped penalizes every enemy that got past the bottom row.
func (w *World) checkEnemiesEscaped() {
	for i := range w.Enemies {
		e := &w.Enemies[i]
		if e.IsActive() && e.Y >= GridH {
			e.Deactivate()
			w.Score -= ScoreMiss
		}
	}
}

