package loop

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/tomz197/dodger/internal/world"
)

func fixedSize(w, h int) func() (int, int, error) {
	return func() (int, int, error) { return w, h, nil }
}

// syncBuffer is a bytes.Buffer safe to read while Run writes.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestRunQuitsOnKey(t *testing.T) {
	var out syncBuffer
	r := bufio.NewReader(strings.NewReader("q"))
	opts := Options{FPS: 100, Seed: 1, TermSizeFunc: fixedSize(80, 24)}

	if err := Run(context.Background(), r, &out, opts); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !strings.Contains(out.String(), "SCORE: 0  HP: 100%") {
		t.Error("status line never drawn")
	}
	if !strings.HasSuffix(out.String(), "\033[?25h") {
		t.Error("cursor not restored on exit")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, bufio.NewReader(pr), io.Discard, Options{FPS: 100, Seed: 1, TermSizeFunc: fixedSize(80, 24)})
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}

func TestFrameDelta(t *testing.T) {
	start := time.Unix(100, 0)
	tests := []struct {
		name    string
		elapsed time.Duration
		want    float64
	}{
		{"one frame", 50 * time.Millisecond, 0.05},
		{"at the cap", 100 * time.Millisecond, world.MaxStep},
		{"stalled write", 3 * time.Second, world.MaxStep},
		{"clock unchanged", 0, 0},
	}
	for _, tt := range tests {
		if got := frameDelta(start, start.Add(tt.elapsed)); got != tt.want {
			t.Errorf("%s: frameDelta = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestLayout(t *testing.T) {
	tests := []struct {
		name                       string
		termW, termH               int
		cols, rows, offCol, offRow int
	}{
		{"classic terminal", 80, 24, 20, 20, 30, 2},
		{"large terminal", 200, 60, 40, 40, 80, 2},
		{"narrow terminal", 30, 60, 20, 20, 5, 2},
		{"tiny terminal", 10, 10, 20, 20, 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols, rows, offCol, offRow := layout(tt.termW, tt.termH)
			if cols != tt.cols || rows != tt.rows || offCol != tt.offCol || offRow != tt.offRow {
				t.Errorf("layout(%d, %d) = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					tt.termW, tt.termH, cols, rows, offCol, offRow, tt.cols, tt.rows, tt.offCol, tt.offRow)
			}
		})
	}
}

func TestDrawFrameShowsOverlay(t *testing.T) {
	r := newRenderer(fixedSize(80, 24), &world.ScriptedRand{})
	var out bytes.Buffer

	if err := r.drawFrame(&out, world.Snapshot{GameOver: true, HighScore: 70, PlayerY: world.PlayerRow}); err != nil {
		t.Fatalf("drawFrame() error: %v", err)
	}
	for _, want := range []string{world.GameOverTitle, world.GameOverPrompt, "HIGH SCORE: 70", "HI: 70"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("frame missing %q", want)
		}
	}
}

func TestOverlayCentredOnPlayfield(t *testing.T) {
	r := newRenderer(fixedSize(80, 24), &world.ScriptedRand{})
	var out bytes.Buffer

	if err := r.drawFrame(&out, world.Snapshot{GameOver: true, PlayerY: world.PlayerRow}); err != nil {
		t.Fatalf("drawFrame() error: %v", err)
	}
	// 20x20 playfield at column offset 30, row offset 2: centre is (41, 13).
	tests := []struct {
		text     string
		col, row int
	}{
		{"SCORE: 0  HP: 0%", 31, 1},
		{"HI: 0", 46, 1},
		{world.GameOverTitle, 41 - len(world.GameOverTitle)/2, 11},
		{world.GameOverPrompt, 41 - len(world.GameOverPrompt)/2, 12},
	}
	for _, tt := range tests {
		want := fmt.Sprintf("\033[%d;%dH%s", tt.row, tt.col, tt.text)
		if !strings.Contains(out.String(), want) {
			t.Errorf("%q not drawn at (%d, %d)", tt.text, tt.col, tt.row)
		}
	}
}

func TestDrawFrameHidesOverlayWhilePlaying(t *testing.T) {
	r := newRenderer(fixedSize(80, 24), &world.ScriptedRand{})
	var out bytes.Buffer

	w := world.New(&world.ScriptedRand{})
	if err := r.drawFrame(&out, w.Snapshot()); err != nil {
		t.Fatalf("drawFrame() error: %v", err)
	}
	if strings.Contains(out.String(), world.GameOverTitle) {
		t.Error("overlay drawn while playing")
	}
	if !strings.Contains(out.String(), "SCORE: 0  HP: 100%") {
		t.Error("status line missing")
	}
}
