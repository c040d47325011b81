package loop

import (
	"fmt"
	"io"

	"github.com/tomz197/dodger/internal/draw"
	"github.com/tomz197/dodger/internal/object"
	"github.com/tomz197/dodger/internal/world"
)

const starCount = 20

// Terminal rows used above the playfield: HUD line and top border.
const hudRows = 2

// renderer draws snapshots onto a scaled canvas sized to the terminal.
type renderer struct {
	canvas   *draw.Canvas
	sizeFunc draw.TermSizeFunc
	termW    int
	termH    int
	stars    []draw.Point
}

func newRenderer(sizeFunc draw.TermSizeFunc, rng world.Rand) *renderer {
	stars := make([]draw.Point, starCount)
	for i := range stars {
		stars[i] = draw.Point{
			X: float64(rng.Intn(world.GridW*100)) / 100,
			Y: float64(rng.Intn(world.GridH*100)) / 100,
		}
	}
	return &renderer{
		canvas:   draw.NewScaledCanvas(2*world.GridW, world.GridH, world.GridW, world.GridH),
		sizeFunc: sizeFunc,
		stars:    stars,
	}
}

// layout fits the playfield into a terminal, keeping cells two columns wide
// and one row tall so they look roughly square.
func layout(termW, termH int) (cols, rows, offCol, offRow int) {
	scale := min((termH-hudRows-1)/world.GridH, (termW-2)/(2*world.GridW))
	scale = max(scale, 1)

	cols = 2 * world.GridW * scale
	rows = world.GridH * scale
	offCol = max((termW-cols)/2, 1)
	offRow = hudRows
	return cols, rows, offCol, offRow
}

// updateScreen checks for terminal resize and updates canvas scaling.
func (r *renderer) updateScreen() {
	termW, termH, err := r.sizeFunc()
	if err != nil || (termW == r.termW && termH == r.termH) {
		return
	}
	r.termW, r.termH = termW, termH

	cols, rows, offCol, offRow := layout(termW, termH)
	r.canvas.Resize(cols, rows)
	r.canvas.SetOffset(offCol, offRow)
}

// drawFrame clears the screen and draws the whole snapshot.
func (r *renderer) drawFrame(w io.Writer, s world.Snapshot) error {
	r.updateScreen()
	draw.ClearScreen(w)
	r.canvas.Clear()

	for _, p := range r.stars {
		r.canvas.SetFloat(p.X, p.Y)
	}
	r.drawEntities(s)
	r.drawPlayer(s)

	if err := r.canvas.Render(w); err != nil {
		return err
	}
	if err := r.canvas.RenderBorder(w); err != nil {
		return err
	}

	r.drawHUD(w, s)
	return nil
}

func (r *renderer) drawEntities(s world.Snapshot) {
	for _, o := range s.Obstacles {
		r.canvas.FillRect(o.X+0.05, o.Y+0.05, float64(o.Width)-0.1, float64(o.Height)-0.1)
	}
	for _, e := range s.Enemies {
		r.canvas.FillRect(e.X+0.1, e.Y+0.1, 0.8, 0.8)
	}
	for _, p := range s.PowerUps {
		r.drawOrb(p)
	}
	for _, b := range s.PlayerBullets {
		r.canvas.FillRect(b.X+0.4, b.Y, 0.2, 0.4)
	}
	for _, b := range s.EnemyBullets {
		r.canvas.FillRect(b.X+0.4, b.Y, 0.2, 0.4)
	}
}

// drawOrb draws a power-up as a small diamond.
func (r *renderer) drawOrb(p object.Entity) {
	cx, cy := p.X+0.5, p.Y+0.5
	const radius = 0.35
	r.canvas.DrawPolygon([]draw.Point{
		{X: cx, Y: cy - radius},
		{X: cx + radius, Y: cy},
		{X: cx, Y: cy + radius},
		{X: cx - radius, Y: cy},
	}, true)
}

// drawPlayer draws the ship as a triangle. It is hollow during spread fire.
func (r *renderer) drawPlayer(s world.Snapshot) {
	x, y := s.PlayerX, s.PlayerY
	r.canvas.DrawPolygon([]draw.Point{
		{X: x + 0.5, Y: y + 0.05},
		{X: x + 0.95, Y: y + 0.95},
		{X: x + 0.05, Y: y + 0.95},
	}, !s.PowerUpActive())
}

// drawHUD draws the status line and, after a game over, the overlay
// centred on the playfield.
func (r *renderer) drawHUD(w io.Writer, s world.Snapshot) {
	left, _ := r.canvas.LogicalToTerminal(0, 0)
	cols := r.canvas.TerminalWidth()

	draw.WriteAt(w, left, 1, s.StatusLine())

	high := fmt.Sprintf("HI: %d", s.HighScore)
	draw.WriteAt(w, left+cols-len(high), 1, high)

	lines := s.Overlay()
	if lines == nil {
		return
	}
	lines = append(lines, "", fmt.Sprintf("HIGH SCORE: %d", s.HighScore))

	centerCol, centerRow := r.canvas.LogicalToTerminal(world.GridW/2, world.GridH/2)
	top := centerRow - len(lines)/2
	for i, line := range lines {
		draw.WriteAt(w, centerCol-len(line)/2, top+i, line)
	}
}
