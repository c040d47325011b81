package world

import "testing"

// newTestWorld returns a world whose chance rolls never succeed.
func newTestWorld() *World {
	return New(&ScriptedRand{})
}

func TestNewWorldStartsPlaying(t *testing.T) {
	w := newTestWorld()
	if w.GameOver() {
		t.Fatal("new world is already over")
	}
	if w.Health != MaxHealth {
		t.Errorf("health = %d, want %d", w.Health, MaxHealth)
	}
	if w.PlayerX != StartLane {
		t.Errorf("lane = %v, want %v", w.PlayerX, StartLane)
	}
}

func TestNewWithNilRand(t *testing.T) {
	w := New(nil)
	if w.rng == nil {
		t.Fatal("nil rng was not replaced")
	}
}

func TestScriptedRand(t *testing.T) {
	r := &ScriptedRand{Values: []int{3, 12}}
	if got := r.Intn(10); got != 3 {
		t.Errorf("first = %d, want 3", got)
	}
	if got := r.Intn(10); got != 2 {
		t.Errorf("second = %d, want 2", got)
	}
	if got := r.Intn(10); got != 3 {
		t.Errorf("wrapped = %d, want 3", got)
	}

	empty := &ScriptedRand{}
	if got := empty.Intn(8); got != 7 {
		t.Errorf("empty = %d, want 7", got)
	}
}
