// Package game is the windowed host: an ebiten game that runs the aurora on
// a software canvas and draws the landing copy over it.
package game

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"github.com/iburimskiy/aurora-lab/internal/aurora"
	"github.com/iburimskiy/aurora-lab/internal/config"
	"github.com/iburimskiy/aurora-lab/internal/frame"
	"github.com/iburimskiy/aurora-lab/internal/landing"
	"github.com/iburimskiy/aurora-lab/internal/raster"
)

var backgroundColor = color.RGBA{R: 5, G: 4, B: 18, A: 255}

type Game struct {
	log zerolog.Logger

	surface  *raster.Surface
	queue    *frame.Queue
	renderer *aurora.Renderer
	stats    *frame.Stats
	shuffler *landing.Shuffler
	chime    *Chime

	deviceScale func() float64
	save        func() (string, error)

	frameImg   *ebiten.Image
	overlayImg *ebiten.Image

	// input edge detection
	prevKey map[ebiten.Key]bool

	shuffleBtn  button
	snapshotBtn button

	status  string
	lastErr error
}

// New builds the game and starts the aurora. Nothing is drawn until ebiten
// calls Draw.
func New(cfg config.Config, logger zerolog.Logger) *Game {
	g := &Game{
		log:         logger,
		queue:       frame.NewQueue(),
		stats:       frame.NewStats(config.FrameStatsSize),
		shuffler:    landing.NewShuffler(landing.Ideas(), cfg.Seed),
		chime:       NewChime(cfg.Chime, logger),
		deviceScale: monitorScale,
		prevKey:     map[ebiten.Key]bool{},
		shuffleBtn:  newButton("Shuffle an Idea", config.ButtonX, config.ButtonY),
		snapshotBtn: newButton("Save Snapshot", config.ButtonX+config.ButtonWidth+config.ButtonGap, config.ButtonY),
	}
	g.save = g.saveCurrentFrame

	g.surface = raster.NewSurface(raster.New(0, 0), float64(cfg.Window.Width), float64(cfg.Window.Height), 1)
	g.renderer = aurora.Start(g.surface, g.queue, aurora.Options{
		Palettes: cfg.Palettes,
		Bodies:   cfg.Bodies,
		Logger:   logger,
	})
	return g
}

func monitorScale() float64 {
	if m := ebiten.Monitor(); m != nil {
		return m.DeviceScaleFactor()
	}
	return 1
}

func (g *Game) scale() float64 {
	if s := g.surface.DeviceScale(); s > 0 {
		return s
	}
	return 1
}

// Layout reports the screen in device pixels so the canvas maps 1:1 onto
// it. The outside size is the displayed size of the surface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.deviceScale()
	if s <= 0 {
		s = 1
	}
	g.surface.Resize(float64(outsideWidth), float64(outsideHeight), s)
	return int(float64(outsideWidth) * s), int(float64(outsideHeight) * s)
}

func (g *Game) Update() error {

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	// Buttons work in display units; the cursor comes in device pixels.
	cx, cy := ebiten.CursorPosition()
	s := g.scale()
	mx, my := int(float64(cx)/s), int(float64(cy)/s)
	down := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	up := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	if g.shuffleBtn.update(mx, my, down, up) {
		g.shuffle()
	}
	if g.snapshotBtn.update(mx, my, down, up) {
		g.snapshot()
	}

	if justPressed(ebiten.KeySpace) {
		g.shuffle()
	}
	if justPressed(ebiten.KeyS) {
		g.snapshot()
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		g.renderer.Stop()
		return ebiten.Termination
	}
	return nil
}

// Draw runs the frames requested since the last repaint, then uploads the
// canvas and draws the overlay on top.
func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	if g.queue.Flush() > 0 {
		g.stats.Record(time.Since(start))
	}

	screen.Fill(backgroundColor)
	g.drawAurora(screen)
	g.drawOverlay(screen)
}

func (g *Game) drawAurora(screen *ebiten.Image) {
	img := g.surface.Canvas().Image()
	b := img.Bounds()
	if b.Empty() {
		return
	}
	if g.frameImg == nil || g.frameImg.Bounds().Size() != b.Size() {
		if g.frameImg != nil {
			g.frameImg.Deallocate()
		}
		g.frameImg = ebiten.NewImage(b.Dx(), b.Dy())
	}
	// Both sides are premultiplied RGBA.
	g.frameImg.WritePixels(img.Pix)
	screen.DrawImage(g.frameImg, nil)
}

func (g *Game) shuffle() {
	g.shuffler.Next()
	g.chime.Play()
	if idea, ok := g.shuffler.Current(); ok {
		g.log.Debug().Str("idea", idea.Title).Msg("idea shuffled")
	}
}

func (g *Game) snapshot() {
	path, err := g.save()
	if err != nil {
		g.lastErr = err
		g.log.Error().Err(err).Msg("snapshot failed")
		return
	}
	if path == "" {
		return
	}
	g.lastErr = nil
	g.status = "Saved " + path
	g.log.Info().Str("path", path).Msg("snapshot saved")
}

func (g *Game) saveCurrentFrame() (string, error) {
	return saveSnapshot(g.surface.Canvas().Snapshot(), time.Now())
}

// Stop ends the aurora without waiting for ebiten to exit.
func (g *Game) Stop() { g.renderer.Stop() }
