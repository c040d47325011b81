package world

import (
	"testing"

	"github.com/tomz197/dodger/internal/object"
)

func TestStatusLine(t *testing.T) {
	s := Snapshot{Score: -15, Health: 70}
	if got, want := s.StatusLine(), "SCORE: -15  HP: 70%"; got != want {
		t.Fatalf("StatusLine() = %q, want %q", got, want)
	}
}

func TestOverlay(t *testing.T) {
	if lines := (Snapshot{}).Overlay(); lines != nil {
		t.Fatalf("overlay while playing = %v", lines)
	}
	lines := Snapshot{GameOver: true}.Overlay()
	if len(lines) != 2 || lines[0] != GameOverTitle || lines[1] != GameOverPrompt {
		t.Fatalf("overlay = %v", lines)
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	w := newTestWorld()
	w.Enemies = []object.Entity{object.NewEnemy(2, 3, 3)}
	s := w.Snapshot()

	w.Advance(1)
	w.Enemies[0].Deactivate()

	if s.Enemies[0].Y != 3 || !s.Enemies[0].IsActive() {
		t.Fatal("snapshot changed with the world")
	}
	if s.PlayerY != PlayerRow {
		t.Errorf("player row = %v, want %v", s.PlayerY, PlayerRow)
	}
}
