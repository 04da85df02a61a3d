// Package term runs the aurora in a terminal. Each cell shows two vertical
// pixels with the upper half block: foreground is the top pixel, background
// the bottom one.
package term

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/iburimskiy/aurora-lab/internal/aurora"
	"github.com/iburimskiy/aurora-lab/internal/config"
	"github.com/iburimskiy/aurora-lab/internal/frame"
	"github.com/iburimskiy/aurora-lab/internal/landing"
	"github.com/iburimskiy/aurora-lab/internal/raster"
)

// A cell stands for cellWidth x cellHeight display units, so a scene tuned
// for a window keeps its proportions on an 80x24 terminal.
const (
	cellWidth  = 8
	cellHeight = 16

	halfBlock = '▀'
)

var background = tcell.NewRGBColor(5, 4, 18)

type Host struct {
	screen tcell.Screen
	cfg    config.Config
	log    zerolog.Logger

	ticker   *frame.Ticker
	surface  *raster.Surface
	renderer *aurora.Renderer
	stats    *frame.Stats
	shuffler *landing.Shuffler

	present   aurora.FrameHandle
	lastFrame time.Time
}

// New prepares a host for screen. The screen is initialised by Run.
func New(screen tcell.Screen, cfg config.Config, logger zerolog.Logger) *Host {
	return &Host{
		screen:   screen,
		cfg:      cfg,
		log:      logger,
		ticker:   frame.NewTicker(cfg.FPS, logger),
		stats:    frame.NewStats(config.FrameStatsSize),
		shuffler: landing.NewShuffler(landing.Ideas(), cfg.Seed),
	}
}

// Run draws until the user quits or ctx is done.
func (h *Host) Run(ctx context.Context) error {
	if err := h.start(); err != nil {
		return err
	}
	defer h.screen.Fini()
	defer h.renderer.Stop()

	go h.pollEvents()

	if err := h.ticker.Run(ctx); err != nil {
		return fmt.Errorf("terminal loop: %w", err)
	}
	return nil
}

func (h *Host) start() error {
	if err := h.screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	h.screen.HideCursor()

	cols, rows := h.screen.Size()
	w, hgt, scale := displaySize(cols, rows)
	h.surface = raster.NewSurface(raster.New(0, 0), w, hgt, scale)
	h.renderer = aurora.Start(h.surface, h.ticker, aurora.Options{
		Palettes: h.cfg.Palettes,
		Bodies:   h.cfg.Bodies,
		Logger:   h.log,
	})

	// Requested after the renderer, so within every flush it runs after
	// the paint.
	h.lastFrame = time.Now()
	h.present = h.ticker.RequestFrame(h.draw)
	return nil
}

// Renderer is nil until Run has started.
func (h *Host) Renderer() *aurora.Renderer { return h.renderer }

func displaySize(cols, rows int) (w, hgt, scale float64) {
	return float64(cols * cellWidth), float64(rows * cellHeight), 1.0 / cellWidth
}

func (h *Host) pollEvents() {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return
		}
		if !h.ticker.Post(func() { h.handle(ev) }) {
			return
		}
	}
}

// handle runs on the loop goroutine.
func (h *Host) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')) {
			h.quit()
			return
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == ' ' {
			h.shuffler.Next()
		}

	case *tcell.EventResize:
		cols, rows := ev.Size()
		if h.surface.Resize(displaySize(cols, rows)) {
			h.log.Debug().Int("cols", cols).Int("rows", rows).Msg("terminal resized")
		}
		h.screen.Sync()
	}
}

func (h *Host) quit() {
	h.renderer.Stop()
	h.ticker.CancelFrame(h.present)
	h.ticker.Stop()
}

func (h *Host) draw() {
	now := time.Now()
	h.stats.Record(now.Sub(h.lastFrame))
	h.lastFrame = now

	h.blit(h.surface.Canvas().Image())
	h.drawStatus()
	h.screen.Show()

	if h.renderer.Active() {
		h.present = h.ticker.RequestFrame(h.draw)
	}
}

func (h *Host) blit(img *image.RGBA) {
	cols, rows := h.screen.Size()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			top := cellColor(img, x, 2*y)
			bottom := cellColor(img, x, 2*y+1)
			h.screen.SetContent(x, y, halfBlock, nil, tcell.StyleDefault.Foreground(top).Background(bottom))
		}
	}
}

// cellColor flattens a premultiplied pixel onto the background.
func cellColor(img *image.RGBA, x, y int) tcell.Color {
	if !(image.Point{X: x, Y: y}).In(img.Rect) {
		return background
	}
	i := img.PixOffset(x, y)
	r, g, b, a := int32(img.Pix[i]), int32(img.Pix[i+1]), int32(img.Pix[i+2]), int32(img.Pix[i+3])
	br, bg, bb := background.RGB()
	inv := 255 - a
	return tcell.NewRGBColor(r+br*inv/255, g+bg*inv/255, b+bb*inv/255)
}

func (h *Host) drawStatus() {
	text := landing.Pill
	if idea, ok := h.shuffler.Current(); ok {
		text += " | " + idea.Title + " (" + string(idea.Difficulty) + ")"
	}
	avg, _ := h.stats.Summary()
	text += fmt.Sprintf(" | %.0f fps | space: shuffle  q: quit", fps(avg))

	cols, _ := h.screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(background)
	for i, r := range []rune(text) {
		if i >= cols {
			break
		}
		h.screen.SetContent(i, 0, r, nil, style)
	}
}

func fps(frameTime time.Duration) float64 {
	if frameTime <= 0 {
		return 0
	}
	return float64(time.Second) / float64(frameTime)
}
