package world

// Game configuration constants.
// All tunable simulation parameters are centralized here for easy adjustment.

// Playfield
const (
	GridW     = 10                // Lanes
	GridH     = 20                // Visible rows
	PlayerRow = float64(GridH - 1) // Fixed row of the player ship
	StartLane = 4.5                // Player lane after reset
	MoveStep  = 0.4                // Lanes per frame while a movement key is held
	MaxStep   = 0.1                // Longest dt a frontend hands to Update, in seconds
)

// Player
const (
	MaxHealth         = 100
	FireInterval      = 0.35 // Seconds between volleys
	BulletSpeed       = 12.0
	BulletDrift       = 2.5 // Lateral speed of side bullets
	PowerUpWindow     = 7.0 // Seconds of spread fire per pickup
	EnemyBulletDamage = 10
)

// Enemies
const (
	EnemyBaseInterval  = 1.8 // Seconds between spawns at difficulty 1
	EnemyBaseSpeed     = 3.0
	EnemySpawnRow      = -1.0
	EnemyFireChance    = 3 // Percent per enemy per frame
	EnemyBulletSpeed   = 6.0
	BulletMuzzleX      = 0.3
	EnemyMuzzleX       = 0.3
	EnemyMuzzleY       = 0.5
	ScorePerDifficulty = 200.0 // Score needed to add 1 to difficulty
	MinDifficulty      = 0.25  // Floor for heavily negative scores
)

// Obstacles
const (
	ObstacleInterval = 6.0
	ObstacleSpeed    = 2.0
	ObstacleSpawnRow = -2.0
	ObstacleSize     = 2
	ObstacleInset    = 0.2
)

// Power-ups
const (
	PowerUpSpeed    = 3.0
	PowerUpDropOdds = 8 // One in N kills drops a power-up
)

// Collision reach on each axis
const (
	EnemyBulletReach = 0.8
	BulletEnemyReach = 0.9
	PowerUpReach     = 0.9
)

// Scoring
const (
	ScoreKill = 10
	ScoreMiss = 5
)

// Entities outside [CullTop, CullBottom] rows are removed.
const (
	CullTop    = -4.0
	CullBottom = float64(GridH + 1)
)

// Text shown by renderers.
const (
	GameOverTitle  = "SYSTEM FAILURE"
	GameOverPrompt = "Press R to Reboot"
	Title          = "Galactic Dodger v3.0"
)
