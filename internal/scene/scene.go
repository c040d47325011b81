// Package scene turns a world snapshot into pixel-space draw commands.
// It has no graphics dependency so frontends stay thin.
package scene

import (
	"fmt"
	"image/color"

	"github.com/tomz197/dodger/internal/world"
)

// Window geometry in pixels.
const (
	CellSize = 40
	Width    = world.GridW * CellSize
	Height   = world.GridH * CellSize
)

// Text sizes in points.
const (
	StatusTextSize  = 18
	OverlayTextSize = 32
)

var (
	BackgroundColor   = color.RGBA{5, 5, 20, 255}
	GridColor         = color.RGBA{25, 25, 40, 255}
	StarColor         = color.RGBA{70, 70, 100, 255}
	ObstacleColor     = color.RGBA{90, 80, 70, 255}
	EnemyColor        = color.RGBA{255, 0, 0, 255}
	PowerUpColor      = color.RGBA{255, 255, 0, 255}
	PlayerBulletColor = color.RGBA{0, 255, 255, 255}
	EnemyBulletColor  = color.RGBA{255, 0, 255, 255}
	PlayerColor       = color.RGBA{0, 255, 0, 255}
	PoweredColor      = color.RGBA{255, 255, 0, 255}
	TextColor         = color.RGBA{255, 255, 255, 255}
)

// Rect is a filled rectangle with its top-left corner at X, Y.
type Rect struct {
	X, Y, W, H float32
	Color      color.RGBA
}

// Circle is a filled circle centred at X, Y.
type Circle struct {
	X, Y, R float32
	Color   color.RGBA
}

// Label is a line of text with its top-left corner at X, Y.
type Label struct {
	X, Y  int
	Text  string
	Large bool // Overlay size instead of status size
}

// Frame lists everything to draw, back to front.
type Frame struct {
	Background color.RGBA
	Rects      []Rect
	Circles    []Circle
	Labels     []Label
}

// Star is a background dot in grid units.
type Star struct {
	X, Y float64
}

// NewStars scatters n stars over the playfield.
func NewStars(n int, rng world.Rand) []Star {
	stars := make([]Star, n)
	for i := range stars {
		stars[i] = Star{
			X: float64(rng.Intn(Width)) / CellSize,
			Y: float64(rng.Intn(Height)) / CellSize,
		}
	}
	return stars
}

func px(v float64) float32 {
	return float32(v * CellSize)
}

// Build lays out one frame for a snapshot.
func Build(s world.Snapshot, stars []Star) Frame {
	f := Frame{Background: BackgroundColor}

	for x := 0; x <= world.GridW; x++ {
		f.Rects = append(f.Rects, Rect{X: float32(x * CellSize), Y: 0, W: 1, H: Height, Color: GridColor})
	}
	for _, st := range stars {
		f.Rects = append(f.Rects, Rect{X: px(st.X), Y: px(st.Y), W: 2, H: 2, Color: StarColor})
	}

	for _, o := range s.Obstacles {
		f.Rects = append(f.Rects, Rect{
			X: px(o.X) + 2, Y: px(o.Y) + 2,
			W: float32(o.Width*CellSize - 4), H: float32(o.Height*CellSize - 4),
			Color: ObstacleColor,
		})
	}
	for _, e := range s.Enemies {
		f.Rects = append(f.Rects, Rect{X: px(e.X) + 4, Y: px(e.Y) + 4, W: CellSize - 8, H: CellSize - 8, Color: EnemyColor})
	}
	const orbRadius = CellSize / 3.0
	for _, p := range s.PowerUps {
		f.Circles = append(f.Circles, Circle{X: px(p.X) + 8 + orbRadius, Y: px(p.Y) + 8 + orbRadius, R: orbRadius, Color: PowerUpColor})
	}
	for _, b := range s.PlayerBullets {
		f.Rects = append(f.Rects, Rect{X: px(b.X) + 16, Y: px(b.Y), W: 8, H: 16, Color: PlayerBulletColor})
	}
	for _, b := range s.EnemyBullets {
		f.Rects = append(f.Rects, Rect{X: px(b.X) + 16, Y: px(b.Y), W: 8, H: 16, Color: EnemyBulletColor})
	}

	player := PlayerColor
	if s.PowerUpActive() {
		player = PoweredColor
	}
	f.Rects = append(f.Rects, Rect{X: px(s.PlayerX) + 2, Y: px(s.PlayerY) + 2, W: CellSize - 4, H: CellSize - 4, Color: player})

	f.Labels = append(f.Labels, Label{X: 10, Y: 10, Text: s.StatusLine()})
	if lines := s.Overlay(); lines != nil {
		top := Height/2 - 50
		for i, line := range lines {
			f.Labels = append(f.Labels, Label{X: 40, Y: top + i*(OverlayTextSize+8), Text: line, Large: true})
		}
		f.Labels = append(f.Labels, Label{
			X:    40,
			Y:    top + len(lines)*(OverlayTextSize+8) + 8,
			Text: fmt.Sprintf("HIGH SCORE: %d", s.HighScore),
		})
	}
	return f
}
