// Package object defines the moving entities of the playfield.
package object

// Kind identifies the role an entity plays in the world.
type Kind int

const (
	KindPlayerBullet Kind = iota
	KindEnemyBullet
	KindEnemy
	KindObstacle
	KindPowerUp
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayerBullet:
		return "player-bullet"
	case KindEnemyBullet:
		return "enemy-bullet"
	case KindEnemy:
		return "enemy"
	case KindObstacle:
		return "obstacle"
	case KindPowerUp:
		return "power-up"
	default:
		return "unknown"
	}
}

// Drift is the lateral behaviour of a player bullet.
// Only player bullets carry a non-zero drift.
type Drift int

const (
	DriftNone  Drift = iota // Straight up
	DriftLeft               // Decreasing x
	DriftRight              // Increasing x
)

// Entity is a single moving object. Position is in grid units, row grows downward.
type Entity struct {
	X, Y   float64 // Lane and row
	Speed  float64 // Rows per second, positive moves down the screen
	Width  int     // Footprint in cells
	Height int     // Footprint in cells
	Kind   Kind
	Drift  Drift
	active bool // Cleared once resolved this frame
}

// IsActive reports whether the entity still takes part in collisions.
func (e *Entity) IsActive() bool {
	return e.active
}

// Deactivate marks the entity as resolved. It is removed by the next cull.
func (e *Entity) Deactivate() {
	e.active = false
}

func newEntity(kind Kind, x, y, speed float64) Entity {
	return Entity{
		X:      x,
		Y:      y,
		Speed:  speed,
		Width:  1,
		Height: 1,
		Kind:   kind,
		active: true,
	}
}

// NewPlayerBullet creates a bullet fired by the player. Speed is the upward
// magnitude; the stored speed is negative.
func NewPlayerBullet(x, y, speed float64, drift Drift) Entity {
	e := newEntity(KindPlayerBullet, x, y, -speed)
	e.Drift = drift
	return e
}

// NewEnemyBullet creates a bullet fired downward by an enemy.
func NewEnemyBullet(x, y, speed float64) Entity {
	return newEntity(KindEnemyBullet, x, y, speed)
}

// NewEnemy creates a descending enemy ship.
func NewEnemy(x, y, speed float64) Entity {
	return newEntity(KindEnemy, x, y, speed)
}

// NewObstacle creates a descending block with the given footprint.
func NewObstacle(x, y, speed float64, width, height int) Entity {
	e := newEntity(KindObstacle, x, y, speed)
	e.Width = width
	e.Height = height
	return e
}

// NewPowerUp creates a falling power-up orb.
func NewPowerUp(x, y, speed float64) Entity {
	return newEntity(KindPowerUp, x, y, speed)
}
