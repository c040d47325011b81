// Package loop runs the game in a terminal: Input → Update → Draw once per frame.
package loop

import (
	"bufio"
	"context"
	"io"
	"time"

	"github.com/tomz197/dodger/internal/draw"
	"github.com/tomz197/dodger/internal/input"
	"github.com/tomz197/dodger/internal/world"
)

// DefaultFPS is the frame-rate cap when Options.FPS is unset.
const DefaultFPS = 20

// Options configures a terminal session.
type Options struct {
	FPS          int               // Frame-rate cap, DefaultFPS when zero
	Seed         int64             // Random seed, time-based when zero
	TermSizeFunc draw.TermSizeFunc // Terminal size source, stdout when nil
}

// Run plays one game session until the player quits, the input ends or ctx is done.
// The frame in progress always completes before Run returns.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	fps := opts.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	targetFrameTime := time.Second / time.Duration(fps)

	sizeFunc := opts.TermSizeFunc
	if sizeFunc == nil {
		sizeFunc = draw.DefaultTermSizeFunc
	}

	game := world.New(world.NewRand(opts.Seed))
	stream := input.StartStream(r)
	view := newRenderer(sizeFunc, world.NewRand(opts.Seed))
	out := bufio.NewWriterSize(w, 16384)

	draw.HideCursor(out)
	defer func() {
		draw.ClearScreen(out)
		draw.ShowCursor(out)
		_ = out.Flush()
	}()

	lastTime := time.Now()

	for {
		frameStart := time.Now()
		dt := frameDelta(lastTime, frameStart)
		lastTime = frameStart

		// ===== INPUT PHASE =====
		in := input.ReadInput(stream)

		// ===== UPDATE PHASE =====
		game.Tick(dt, in.Controls())

		// ===== DRAW PHASE =====
		if err := view.drawFrame(out, game.Snapshot()); err != nil {
			return err
		}
		if err := out.Flush(); err != nil {
			return err
		}

		if in.Quit {
			return nil
		}

		// ===== FRAME TIMING =====
		wait := targetFrameTime - time.Since(frameStart)
		if wait <= 0 {
			if ctx.Err() != nil {
				return nil
			}
			continue
		}
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}
	}
}

// frameDelta returns the seconds between frames, capped at world.MaxStep so a
// stalled write does not let entities jump past each other.
func frameDelta(last, now time.Time) float64 {
	return min(now.Sub(last).Seconds(), world.MaxStep)
}
