package game

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/rs/zerolog"

	"github.com/iburimskiy/aurora-lab/internal/config"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	cfg := config.Default()
	cfg.Chime = false
	cfg.Seed = 11
	cfg.Window.Width, cfg.Window.Height = 320, 200
	return New(cfg, zerolog.Nop())
}

func TestNewStartsRenderer(t *testing.T) {
	g := newTestGame(t)
	if !g.renderer.Active() {
		t.Fatalf("renderer should be active")
	}
	if w, h := g.surface.Canvas().BufferSize(); w != 320 || h != 200 {
		t.Fatalf("unexpected buffer %dx%d", w, h)
	}
	if g.queue.Len() != 1 {
		t.Fatalf("expected first frame pending, got %d", g.queue.Len())
	}
}

func TestLayoutAppliesDeviceScale(t *testing.T) {
	g := newTestGame(t)
	g.deviceScale = func() float64 { return 2 }

	w, h := g.Layout(400, 300)
	if w != 800 || h != 600 {
		t.Fatalf("unexpected screen %dx%d", w, h)
	}
	if bw, bh := g.surface.Canvas().BufferSize(); bw != 800 || bh != 600 {
		t.Fatalf("canvas not resized: %dx%d", bw, bh)
	}
	if dw, dh := g.surface.DisplaySize(); dw != 400 || dh != 300 {
		t.Fatalf("unexpected display size %vx%v", dw, dh)
	}

	g.deviceScale = func() float64 { return 0 }
	if w, h := g.Layout(400, 300); w != 400 || h != 300 {
		t.Fatalf("unknown scale should mean 1, got %dx%d", w, h)
	}
}

func TestFlushPaintsAndReschedules(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 3; i++ {
		g.queue.Flush()
	}
	if g.renderer.Tick() != 3 {
		t.Fatalf("expected tick 3, got %d", g.renderer.Tick())
	}
	if g.queue.Len() != 1 {
		t.Fatalf("expected next frame pending")
	}

	g.Stop()
	if g.queue.Len() != 0 {
		t.Fatalf("stop left %d frames pending", g.queue.Len())
	}
}

func TestShuffleMovesIdea(t *testing.T) {
	g := newTestGame(t)
	before := g.shuffler.Index()
	g.shuffle()
	if g.shuffler.Index() == before {
		t.Fatalf("shuffle kept idea %d", before)
	}
}

func TestSnapshotReportsOutcome(t *testing.T) {
	g := newTestGame(t)

	g.save = func() (string, error) { return "", nil }
	g.snapshot()
	if g.status != "" || g.lastErr != nil {
		t.Fatalf("cancel should be silent: %q %v", g.status, g.lastErr)
	}

	boom := errors.New("disk full")
	g.save = func() (string, error) { return "", boom }
	g.snapshot()
	if !errors.Is(g.lastErr, boom) {
		t.Fatalf("expected error kept, got %v", g.lastErr)
	}
	if !strings.Contains(g.statusLine(), "Error: disk full") {
		t.Fatalf("status line missing error: %q", g.statusLine())
	}

	g.save = func() (string, error) { return "/tmp/a.png", nil }
	g.snapshot()
	if g.lastErr != nil || g.status != "Saved /tmp/a.png" {
		t.Fatalf("unexpected state %q %v", g.status, g.lastErr)
	}
}

func TestButtonClick(t *testing.T) {
	b := button{x: 10, y: 10, w: 100, h: 30}

	if b.update(20, 20, true, false) {
		t.Fatalf("press alone is not a click")
	}
	if !b.pressed || !b.hovered {
		t.Fatalf("expected pressed and hovered")
	}
	if !b.update(30, 25, false, true) {
		t.Fatalf("release over button should click")
	}

	b.update(20, 20, true, false)
	if b.update(300, 300, false, true) {
		t.Fatalf("release outside should not click")
	}
	if b.pressed {
		t.Fatalf("release should clear pressed")
	}

	if b.update(20, 20, false, true) {
		t.Fatalf("release without press should not click")
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  []string
	}{
		{"", 10, nil},
		{"one two three", 7, []string{"one two", "three"}},
		{"one two three", 100, []string{"one two three"}},
		{"a verylongword b", 4, []string{"a", "verylongword", "b"}},
		{"a b", 0, []string{"a", "b"}},
	}
	for _, tt := range tests {
		got := wrapText(tt.in, tt.width)
		if strings.Join(got, "|") != strings.Join(tt.want, "|") {
			t.Errorf("wrapText(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestHsvToRgb(t *testing.T) {
	tests := []struct {
		h       float64
		r, g, b uint8
	}{
		{0, 255, 0, 0},
		{120, 0, 255, 0},
		{240, 0, 0, 255},
		{360, 255, 0, 0},
		{-120, 0, 0, 255},
	}
	for _, tt := range tests {
		r, g, b := hsvToRgb(tt.h, 1, 1)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("hsvToRgb(%v) = %d,%d,%d", tt.h, r, g, b)
		}
	}
}

func TestFormatMillis(t *testing.T) {
	if got := formatMillis(1500 * time.Microsecond); got != "1.5ms" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestSnapshotNaming(t *testing.T) {
	at := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	if got := snapshotName(at); got != "aurora-20260304-050607.png" {
		t.Fatalf("unexpected name %q", got)
	}
	if got := withPNGExt("/tmp/shot"); got != "/tmp/shot.png" {
		t.Fatalf("unexpected %q", got)
	}
	if got := withPNGExt("/tmp/shot.PNG"); got != "/tmp/shot.PNG" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestToneDecays(t *testing.T) {
	sr := beep.SampleRate(8000)
	s := tone(sr, 440, 9, 0.5, 500*time.Millisecond)

	buf := make([][2]float64, 512)
	var samples [][2]float64
	for {
		n, ok := s.Stream(buf)
		samples = append(samples, buf[:n]...)
		if !ok || n == 0 {
			break
		}
	}
	if len(samples) != sr.N(500*time.Millisecond) {
		t.Fatalf("unexpected length %d", len(samples))
	}

	peak := func(from, to int) float64 {
		var p float64
		for _, v := range samples[from:to] {
			p = max(p, v[0])
			if v[0] != v[1] {
				t.Fatalf("channels differ")
			}
		}
		return p
	}
	early, late := peak(0, 400), peak(len(samples)-400, len(samples))
	if early > 0.5 || early < 0.3 {
		t.Fatalf("unexpected early peak %v", early)
	}
	if late >= early/4 {
		t.Fatalf("tone did not decay: early %v late %v", early, late)
	}
}

func TestDisabledChimeIsSilent(t *testing.T) {
	c := NewChime(false, zerolog.Nop())
	c.Play()
	if c.Enabled() || c.initDone {
		t.Fatalf("disabled chime touched the speaker")
	}
}
