package world

import (
	"testing"

	"github.com/tomz197/dodger/internal/object"
)

func TestAdvance(t *testing.T) {
	w := newTestWorld()
	w.PlayerBullets = []object.Entity{
		object.NewPlayerBullet(4, 19, BulletSpeed, object.DriftNone),
		object.NewPlayerBullet(4, 19, BulletSpeed, object.DriftLeft),
		object.NewPlayerBullet(4, 19, BulletSpeed, object.DriftRight),
	}
	w.Enemies = []object.Entity{object.NewEnemy(2, -1, 3)}
	w.EnemyBullets = []object.Entity{object.NewEnemyBullet(2, 0, 6)}
	w.Obstacles = []object.Entity{object.NewObstacle(5, -2, 2, 2, 2)}
	w.PowerUps = []object.Entity{object.NewPowerUp(1, 1, 3)}

	w.Advance(0.5)

	tests := []struct {
		name string
		got  object.Entity
		x, y float64
	}{
		{"straight bullet", w.PlayerBullets[0], 4, 13},
		{"left bullet", w.PlayerBullets[1], 2.75, 13},
		{"right bullet", w.PlayerBullets[2], 5.25, 13},
		{"enemy", w.Enemies[0], 2, 0.5},
		{"enemy bullet", w.EnemyBullets[0], 2, 3},
		{"obstacle", w.Obstacles[0], 5, -1},
		{"power-up", w.PowerUps[0], 1, 2.5},
	}

	for _, tt := range tests {
		if tt.got.X != tt.x || tt.got.Y != tt.y {
			t.Errorf("%s at (%v, %v), want (%v, %v)", tt.name, tt.got.X, tt.got.Y, tt.x, tt.y)
		}
	}
}

func TestAdvanceLeavesPlayerAlone(t *testing.T) {
	w := newTestWorld()
	w.Advance(1)
	if w.PlayerX != StartLane {
		t.Fatalf("lane = %v, want %v", w.PlayerX, StartLane)
	}
}
