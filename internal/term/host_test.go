package term

import (
	"context"
	"errors"
	"image"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/iburimskiy/aurora-lab/internal/config"
)

func newTestHost(t *testing.T) (*Host, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	cfg := config.Default()
	cfg.Seed = 5
	h := New(screen, cfg, zerolog.Nop())
	if err := h.start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	t.Cleanup(screen.Fini)
	return h, screen
}

func TestStartSizesCanvasToCells(t *testing.T) {
	h, screen := newTestHost(t)
	cols, rows := screen.Size()
	if w, hgt := h.surface.Canvas().BufferSize(); w != cols || hgt != 2*rows {
		t.Fatalf("buffer %dx%d for %dx%d cells", w, hgt, cols, rows)
	}
	if !h.Renderer().Active() {
		t.Fatalf("renderer should be active")
	}
}

func TestFlushPaintsThenPresents(t *testing.T) {
	h, screen := newTestHost(t)

	if n := h.ticker.Flush(); n != 2 {
		t.Fatalf("expected paint and present, ran %d", n)
	}
	if h.Renderer().Tick() != 1 {
		t.Fatalf("expected tick 1, got %d", h.Renderer().Tick())
	}

	mainc, _, style, _ := screen.GetContent(10, 5)
	if mainc != halfBlock {
		t.Fatalf("expected half block, got %q", mainc)
	}
	fg, bg, _ := style.Decompose()
	if fg == background && bg == background {
		t.Fatalf("cell shows no aurora")
	}

	if mainc, _, _, _ := screen.GetContent(0, 0); mainc != 'A' {
		t.Fatalf("status line missing, got %q", mainc)
	}

	// Both callbacks asked for the next frame.
	if h.ticker.Len() != 2 {
		t.Fatalf("expected 2 pending, got %d", h.ticker.Len())
	}
}

func TestResizeFollowsTerminal(t *testing.T) {
	h, screen := newTestHost(t)
	screen.SetSize(40, 10)
	h.handle(tcell.NewEventResize(40, 10))

	if w, hgt := h.surface.Canvas().BufferSize(); w != 40 || hgt != 20 {
		t.Fatalf("unexpected buffer %dx%d", w, hgt)
	}
}

func TestSpaceShuffles(t *testing.T) {
	h, _ := newTestHost(t)
	before := h.shuffler.Index()
	h.handle(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	if h.shuffler.Index() == before {
		t.Fatalf("space did not shuffle")
	}
}

func TestQuitStopsEverything(t *testing.T) {
	h, _ := newTestHost(t)
	h.handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))

	if h.Renderer().Active() {
		t.Fatalf("renderer still active")
	}
	if h.ticker.Len() != 0 {
		t.Fatalf("frames left pending: %d", h.ticker.Len())
	}
	if h.ticker.Post(func() {}) {
		t.Fatalf("ticker accepted work after quit")
	}
	if err := h.ticker.Run(context.Background()); err != nil {
		t.Fatalf("stopped ticker should return nil, got %v", err)
	}
}

func TestRunEndsWithContext(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	cfg := config.Default()
	cfg.FPS = 120
	h := New(screen, cfg, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	err := h.Run(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline, got %v", err)
	}
	if h.Renderer().Tick() == 0 {
		t.Fatalf("no frames painted")
	}
	if h.Renderer().Active() {
		t.Fatalf("renderer still active after Run")
	}
}

func TestCellColorBlendsOverBackground(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	copy(img.Pix[0:4], []uint8{200, 100, 50, 255})

	if got := cellColor(img, 0, 0); got != tcell.NewRGBColor(200, 100, 50) {
		t.Fatalf("opaque pixel changed: %v", got)
	}
	if got := cellColor(img, 1, 0); got != background {
		t.Fatalf("clear pixel should be background, got %v", got)
	}
	if got := cellColor(img, 5, 5); got != background {
		t.Fatalf("outside pixel should be background, got %v", got)
	}
}

func TestFPS(t *testing.T) {
	if fps(0) != 0 {
		t.Fatalf("zero frame time should give 0")
	}
	if got := fps(20 * time.Millisecond); got != 50 {
		t.Fatalf("unexpected fps %v", got)
	}
}
