package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/iburimskiy/aurora-lab/internal/config"
	"github.com/iburimskiy/aurora-lab/internal/game"
	"github.com/iburimskiy/aurora-lab/internal/headless"
	"github.com/iburimskiy/aurora-lab/internal/logging"
	"github.com/iburimskiy/aurora-lab/internal/term"
)

const (
	modeWindow   = "window"
	modeTerminal = "terminal"
	modeHeadless = "headless"
)

func main() {
	configPath := flag.String("config", "", "TOML scene file (optional)")
	mode := flag.String("mode", modeWindow, "host: window, terminal or headless")
	frames := flag.Int("frames", 120, "frames to render in headless mode")
	out := flag.String("out", "aurora.png", "PNG written in headless mode")
	scale := flag.Float64("scale", 1, "device scale in headless mode")
	paced := flag.Bool("paced", false, "render headless frames at the configured fps")
	seed := flag.Int64("seed", 0, "idea shuffle seed, 0 for random")
	flag.Parse()

	logger := logging.Configure(logging.ProfileRuntime, "aurora-lab")

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Fatal().Err(err).Str("path", *configPath).Msg("config")
		}
		cfg = loaded
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg.Seed = *seed
		}
	})

	var err error
	switch *mode {
	case modeWindow:
		err = runWindow(cfg, logger)
	case modeTerminal:
		err = runTerminal(cfg, logger)
	case modeHeadless:
		err = runHeadless(cfg, headless.Options{Frames: *frames, Scale: *scale, Unpaced: !*paced}, *out, logger)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		logger.Error().Err(err).Str("mode", *mode).Msg("exit")
		os.Exit(1)
	}
}

func runWindow(cfg config.Config, logger zerolog.Logger) error {
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.FPS)

	g := game.New(cfg, logger)
	defer g.Stop()
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

func runTerminal(cfg config.Config, logger zerolog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Log lines would tear the picture.
	err = term.New(screen, cfg, logger.Level(zerolog.Disabled)).Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func runHeadless(cfg config.Config, opts headless.Options, out string, logger zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, err := headless.Save(ctx, cfg, opts, out, logger)
	return err
}
