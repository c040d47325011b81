package world

import (
	"math"

	"github.com/tomz197/dodger/internal/object"
)

// Difficulty returns the spawn-rate and speed multiplier for a score.
// It grows without bound; only strongly negative scores hit the floor.
func Difficulty(score int) float64 {
	return math.Max(MinDifficulty, 1+float64(score)/ScorePerDifficulty)
}

// EnemyInterval returns the seconds between enemy spawns at a score.
// It stops shrinking below score -150, where Difficulty hits its floor.
func EnemyInterval(score int) float64 {
	return EnemyBaseInterval / Difficulty(score)
}

// Spawn advances the cooldown timers and emits whatever is due this frame.
func (w *World) Spawn(dt float64) {
	difficulty := Difficulty(w.Score)

	w.FireTimer += dt
	if w.FireTimer >= FireInterval {
		w.fireVolley()
		w.FireTimer = 0
	}

	w.EnemyTimer += dt
	if w.EnemyTimer >= EnemyBaseInterval/difficulty {
		lane := float64(w.rng.Intn(GridW))
		w.Enemies = append(w.Enemies, object.NewEnemy(lane, EnemySpawnRow, EnemyBaseSpeed*difficulty))
		w.EnemyTimer = 0
	}

	w.ObstacleTimer += dt
	if w.ObstacleTimer >= ObstacleInterval {
		lane := float64(w.rng.Intn(GridW - ObstacleSize))
		w.Obstacles = append(w.Obstacles,
			object.NewObstacle(lane, ObstacleSpawnRow, ObstacleSpeed, ObstacleSize, ObstacleSize))
		w.ObstacleTimer = 0
	}

	w.rollEnemyFire()

	if w.PowerUpTime > 0 {
		w.PowerUpTime = math.Max(0, w.PowerUpTime-dt)
	}
}

// fireVolley emits the player's bullets, with two drifting side bullets
// while a power-up is active.
func (w *World) fireVolley() {
	x := w.PlayerX + BulletMuzzleX
	w.PlayerBullets = append(w.PlayerBullets,
		object.NewPlayerBullet(x, PlayerRow, BulletSpeed, object.DriftNone))
	if w.PowerUpActive() {
		w.PlayerBullets = append(w.PlayerBullets,
			object.NewPlayerBullet(x, PlayerRow, BulletSpeed, object.DriftLeft),
			object.NewPlayerBullet(x, PlayerRow, BulletSpeed, object.DriftRight))
	}
}

// rollEnemyFire decides which enemies shoot this frame. The bullets are
// created by Advance once the shooters have moved.
func (w *World) rollEnemyFire() {
	for i := range w.Enemies {
		if w.rng.Intn(100) < EnemyFireChance {
			w.pendingShots = append(w.pendingShots, i)
		}
	}
}

// emitEnemyShots fires every pending shot from its enemy's current position.
func (w *World) emitEnemyShots() {
	for _, i := range w.pendingShots {
		e := &w.Enemies[i]
		w.EnemyBullets = append(w.EnemyBullets,
			object.NewEnemyBullet(e.X+EnemyMuzzleX, e.Y+EnemyMuzzleY, EnemyBulletSpeed))
	}
	w.pendingShots = w.pendingShots[:0]
}
