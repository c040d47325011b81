package scene

import (
	"testing"

	"github.com/tomz197/dodger/internal/object"
	"github.com/tomz197/dodger/internal/world"
)

func findRect(f Frame, c colorMatch) (Rect, bool) {
	for _, r := range f.Rects {
		if c(r) {
			return r, true
		}
	}
	return Rect{}, false
}

type colorMatch func(Rect) bool

func TestBuildPlacesEntities(t *testing.T) {
	s := world.Snapshot{
		PlayerX:       4.5,
		PlayerY:       world.PlayerRow,
		Enemies:       []object.Entity{object.NewEnemy(2, 3, 3)},
		Obstacles:     []object.Entity{object.NewObstacle(5, 1, 2, 2, 2)},
		PlayerBullets: []object.Entity{object.NewPlayerBullet(1, 10, 12, object.DriftNone)},
		PowerUps:      []object.Entity{object.NewPowerUp(6, 6, 3)},
	}
	f := Build(s, nil)

	tests := []struct {
		name string
		want Rect
	}{
		{"enemy", Rect{X: 84, Y: 124, W: 32, H: 32, Color: EnemyColor}},
		{"obstacle", Rect{X: 202, Y: 42, W: 76, H: 76, Color: ObstacleColor}},
		{"bullet", Rect{X: 56, Y: 400, W: 8, H: 16, Color: PlayerBulletColor}},
		{"player", Rect{X: 182, Y: 762, W: 36, H: 36, Color: PlayerColor}},
	}
	for _, tt := range tests {
		if _, ok := findRect(f, func(r Rect) bool { return r == tt.want }); !ok {
			t.Errorf("%s rect %+v not found", tt.name, tt.want)
		}
	}

	if len(f.Circles) != 1 || f.Circles[0].Color != PowerUpColor {
		t.Fatalf("circles = %+v, want one power-up", f.Circles)
	}
}

func TestBuildGridLines(t *testing.T) {
	f := Build(world.Snapshot{}, nil)
	lines := 0
	for _, r := range f.Rects {
		if r.Color == GridColor {
			lines++
		}
	}
	if lines != world.GridW+1 {
		t.Fatalf("grid lines = %d, want %d", lines, world.GridW+1)
	}
}

func TestPoweredPlayerColor(t *testing.T) {
	f := Build(world.Snapshot{PowerUpTime: 3}, nil)
	player := f.Rects[len(f.Rects)-1]
	if player.Color != PoweredColor {
		t.Fatalf("player color = %v, want powered", player.Color)
	}
}

func TestLabels(t *testing.T) {
	playing := Build(world.Snapshot{Score: 30, Health: 90}, nil)
	if len(playing.Labels) != 1 || playing.Labels[0].Text != "SCORE: 30  HP: 90%" {
		t.Fatalf("labels while playing = %+v", playing.Labels)
	}

	over := Build(world.Snapshot{GameOver: true, HighScore: 40}, nil)
	var texts []string
	for _, l := range over.Labels {
		texts = append(texts, l.Text)
	}
	want := []string{"SCORE: 0  HP: 0%", world.GameOverTitle, world.GameOverPrompt, "HIGH SCORE: 40"}
	if len(texts) != len(want) {
		t.Fatalf("labels = %q, want %q", texts, want)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Errorf("label %d = %q, want %q", i, texts[i], want[i])
		}
	}
	if !over.Labels[1].Large || over.Labels[3].Large {
		t.Error("overlay lines should be large and the high score small")
	}
}

func TestNewStarsStayOnScreen(t *testing.T) {
	stars := NewStars(20, world.NewRand(3))
	if len(stars) != 20 {
		t.Fatalf("stars = %d, want 20", len(stars))
	}
	for _, s := range stars {
		if s.X < 0 || s.X >= world.GridW || s.Y < 0 || s.Y >= world.GridH {
			t.Errorf("star %+v off the playfield", s)
		}
	}
}
