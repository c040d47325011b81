// Package window runs the game in a desktop window using ebiten.
package window

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/tomz197/dodger/internal/fonts"
	"github.com/tomz197/dodger/internal/scene"
	"github.com/tomz197/dodger/internal/world"
)

const starCount = 20

// Options configures a window session.
type Options struct {
	FPS      int
	Seed     int64
	FontPath string
	Logger   *log.Logger
}

// Game adapts a world to ebiten.Game.
type Game struct {
	world    *world.World
	stars    []scene.Star
	status   font.Face
	overlay  font.Face
	lastTick time.Time
}

// NewGame builds a game and loads its fonts. A missing font is logged, never fatal.
func NewGame(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	g := &Game{
		world:    world.New(world.NewRand(opts.Seed)),
		stars:    scene.NewStars(starCount, world.NewRand(opts.Seed)),
		lastTick: time.Now(),
	}
	g.status = loadFace(logger, opts.FontPath, scene.StatusTextSize)
	g.overlay = loadFace(logger, opts.FontPath, scene.OverlayTextSize)
	return g
}

func loadFace(logger *log.Logger, path string, size float64) font.Face {
	face, src, err := fonts.Load(path, size)
	if err != nil {
		logger.Warn("font fallback", "path", path, "size", size, "using", src, "err", err)
	}
	return face
}

// Update advances the world by the wall-clock time since the last call.
func (g *Game) Update() error {
	now := time.Now()
	dt := min(now.Sub(g.lastTick).Seconds(), world.MaxStep) // window dragged or minimised
	g.lastTick = now

	quit := ebiten.IsWindowBeingClosed() ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyQ)

	g.world.Tick(dt, world.Input{
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Reset: inpututil.IsKeyJustPressed(ebiten.KeyR),
	})

	if quit {
		return ebiten.Termination
	}
	return nil
}

// Draw paints the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	f := scene.Build(g.world.Snapshot(), g.stars)

	screen.Fill(f.Background)
	for _, r := range f.Rects {
		vector.DrawFilledRect(screen, r.X, r.Y, r.W, r.H, r.Color, false)
	}
	for _, c := range f.Circles {
		vector.DrawFilledCircle(screen, c.X, c.Y, c.R, c.Color, true)
	}
	for _, l := range f.Labels {
		face := g.status
		if l.Large {
			face = g.overlay
		}
		// text.Draw positions at the baseline.
		ascent := face.Metrics().Ascent.Ceil()
		text.Draw(screen, l.Text, face, l.X, l.Y+ascent, scene.TextColor)
	}
}

// Layout keeps a fixed logical resolution and lets ebiten scale it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return scene.Width, scene.Height
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	if opts.FPS > 0 {
		ebiten.SetTPS(opts.FPS)
	}
	ebiten.SetWindowSize(scene.Width, scene.Height)
	ebiten.SetWindowTitle(world.Title)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(NewGame(opts)); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
