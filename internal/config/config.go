package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gogpu/gg"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/aurora-lab/internal/aurora"
)

const (
	WindowWidth  = 1280
	WindowHeight = 720
	WindowTitle  = "Agentic Playground - Space: shuffle idea, S: save snapshot, Esc/Q: quit"

	FallbackFPS = 60
	MaxFPS      = 240

	FrameStatsSize = 120

	// Button dimensions
	ButtonWidth  = 150
	ButtonHeight = 36
	ButtonX      = 48
	ButtonY      = 232
	ButtonGap    = 16

	// Palette alphas used when a file omits them
	DefaultStartAlpha = 0.55
	DefaultEndAlpha   = 0.45

	// Chime
	ChimeSampleRate = 44100
	ChimeFrequency  = 880.0
	ChimeDecay      = 9.0
	ChimeVolume     = 0.18
)

// ErrInvalid marks a config file that parsed but describes an unusable scene.
var ErrInvalid = errors.New("invalid config")

type Window struct {
	Width  int
	Height int
	Title  string
}

// Config is everything fixed at startup.
type Config struct {
	Window Window
	FPS    int
	Chime  bool
	Seed   int64

	Palettes []aurora.Palette
	Bodies   []aurora.OrbitBody
}

type colorPair struct {
	Start      string
	StartAlpha float64
	End        string
	EndAlpha   float64
}

type fileColorPair struct {
	Start      string   `toml:"start"`
	StartAlpha *float64 `toml:"start_alpha"`
	End        string   `toml:"end"`
	EndAlpha   *float64 `toml:"end_alpha"`
}

// pair fills in the alphas a palette table left out.
func (f fileColorPair) pair() colorPair {
	p := colorPair{Start: f.Start, StartAlpha: DefaultStartAlpha, End: f.End, EndAlpha: DefaultEndAlpha}
	if f.StartAlpha != nil {
		p.StartAlpha = *f.StartAlpha
	}
	if f.EndAlpha != nil {
		p.EndAlpha = *f.EndAlpha
	}
	return p
}

type filePlanet struct {
	Radius  float64 `toml:"radius"`
	Speed   float64 `toml:"speed"`
	XOffset float64 `toml:"x_offset"`
	YOffset float64 `toml:"y_offset"`
}

type fileConfig struct {
	FPS    int   `toml:"fps"`
	Chime  bool  `toml:"chime"`
	Seed   int64 `toml:"seed"`
	Window struct {
		Width  int    `toml:"width"`
		Height int    `toml:"height"`
		Title  string `toml:"title"`
	} `toml:"window"`
	Palettes []fileColorPair `toml:"palette"`
	Planets  []filePlanet    `toml:"planet"`
}

var defaultPalettes = []colorPair{
	{Start: "#6b46c1", StartAlpha: 0.55, End: "#2dc5fd", EndAlpha: 0.45},
	{Start: "#ff6f91", StartAlpha: 0.55, End: "#ffcc70", EndAlpha: 0.45},
	{Start: "#43e97b", StartAlpha: 0.55, End: "#38f9d7", EndAlpha: 0.4},
}

var defaultBodies = []aurora.OrbitBody{
	{Radius: 140, AngularSpeed: 0.0008, XOffset: 240, YOffset: -120},
	{Radius: 70, AngularSpeed: -0.0014, XOffset: -160, YOffset: 80},
}

// Default is the scene shipped with the landing page.
func Default() Config {
	palettes, err := parsePalettes(defaultPalettes)
	if err != nil {
		panic(err)
	}
	return Config{
		Window: Window{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  WindowTitle,
		},
		FPS:      FallbackFPS,
		Chime:    true,
		Palettes: palettes,
		Bodies:   append([]aurora.OrbitBody(nil), defaultBodies...),
	}
}

// Load reads a TOML file and applies the keys it defines over Default.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: unknown key %q", ErrInvalid, undecoded[0].String())
	}

	if meta.IsDefined("fps") {
		cfg.FPS = raw.FPS
	}
	if meta.IsDefined("chime") {
		cfg.Chime = raw.Chime
	}
	if meta.IsDefined("seed") {
		cfg.Seed = raw.Seed
	}
	if meta.IsDefined("window", "width") {
		cfg.Window.Width = raw.Window.Width
	}
	if meta.IsDefined("window", "height") {
		cfg.Window.Height = raw.Window.Height
	}
	if meta.IsDefined("window", "title") {
		cfg.Window.Title = strings.TrimSpace(raw.Window.Title)
	}

	if meta.IsDefined("palette") {
		pairs := make([]colorPair, 0, len(raw.Palettes))
		for _, p := range raw.Palettes {
			pairs = append(pairs, p.pair())
		}
		palettes, err := parsePalettes(pairs)
		if err != nil {
			return Config{}, err
		}
		cfg.Palettes = palettes
	}
	if meta.IsDefined("planet") {
		cfg.Bodies = cfg.Bodies[:0]
		for _, p := range raw.Planets {
			cfg.Bodies = append(cfg.Bodies, aurora.OrbitBody{
				Radius:       p.Radius,
				AngularSpeed: p.Speed,
				XOffset:      p.XOffset,
				YOffset:      p.YOffset,
			})
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first problem that would make the scene unusable.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.FPS < 1 || c.FPS > MaxFPS {
		return fmt.Errorf("%w: fps %d outside [1, %d]", ErrInvalid, c.FPS, MaxFPS)
	}
	if len(c.Palettes) == 0 {
		return fmt.Errorf("%w: at least one palette is required", ErrInvalid)
	}
	for i, b := range c.Bodies {
		if b.Radius <= 0 {
			return fmt.Errorf("%w: planet %d radius %v", ErrInvalid, i, b.Radius)
		}
	}
	return nil
}

func parsePalettes(pairs []colorPair) ([]aurora.Palette, error) {
	out := make([]aurora.Palette, 0, len(pairs))
	for i, p := range pairs {
		start, err := parseColor(p.Start, p.StartAlpha)
		if err != nil {
			return nil, fmt.Errorf("palette %d start: %w", i, err)
		}
		end, err := parseColor(p.End, p.EndAlpha)
		if err != nil {
			return nil, fmt.Errorf("palette %d end: %w", i, err)
		}
		out = append(out, aurora.Palette{Start: start, End: end})
	}
	return out, nil
}

func parseColor(hex string, alpha float64) (gg.RGBA, error) {
	if alpha < 0 || alpha > 1 {
		return gg.RGBA{}, fmt.Errorf("%w: alpha %v outside [0, 1]", ErrInvalid, alpha)
	}
	c, err := colorful.Hex(strings.TrimSpace(hex))
	if err != nil {
		return gg.RGBA{}, fmt.Errorf("%w: colour %q: %v", ErrInvalid, hex, err)
	}
	return gg.RGBA2(c.R, c.G, c.B, alpha), nil
}
