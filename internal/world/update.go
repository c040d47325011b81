package world

// Input is the per-frame control state handed to the world.
type Input struct {
	Left  bool // Held
	Right bool // Held
	Reset bool // Pressed since the last frame
}

// ApplyInput moves the player or, after a game over, handles the reset request.
func (w *World) ApplyInput(in Input) {
	if w.GameOver() {
		if in.Reset {
			w.Reset()
		}
		return
	}

	if in.Left {
		w.PlayerX -= MoveStep
	}
	if in.Right {
		w.PlayerX += MoveStep
	}
	w.PlayerX = clamp(w.PlayerX, 0, GridW-1)
}

// Update runs one simulation step of dt seconds. It does nothing after a game over.
func (w *World) Update(dt float64) {
	if w.GameOver() {
		return
	}

	w.Spawn(dt)
	w.Advance(dt)
	w.Resolve()
	w.Cull()
	w.checkGameOver()
}

// Tick applies a frame's input then updates.
func (w *World) Tick(dt float64, in Input) {
	w.ApplyInput(in)
	w.Update(dt)
}

// checkGameOver clamps health and ends the game when it runs out.
func (w *World) checkGameOver() {
	w.Health = min(max(w.Health, 0), MaxHealth)
	if w.Health > 0 {
		return
	}
	w.Phase = PhaseGameOver
	if w.Score > w.HighScore {
		w.HighScore = w.Score
	}
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}
