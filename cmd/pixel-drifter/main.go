package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Stan-breaks/Pixel-drifter/app"
	"github.com/Stan-breaks/Pixel-drifter/config"
	"github.com/Stan-breaks/Pixel-drifter/core"
	"github.com/Stan-breaks/Pixel-drifter/engine"
	"github.com/Stan-breaks/Pixel-drifter/render"
	"github.com/Stan-breaks/Pixel-drifter/render/renderers"
	"github.com/Stan-breaks/Pixel-drifter/terminal"
	"github.com/Stan-breaks/Pixel-drifter/vmath"
)

var (
	configFlag = flag.String("config", "", "Path to YAML config (default ./"+config.DefaultPath+" if present)")
	seedFlag   = flag.Uint64("seed", 0, "RNG seed, 0 seeds from the clock")
	fpsFlag    = flag.Int("fps", 0, "Frame rate override")
	debugFlag  = flag.Bool("debug", false, "Enable debug logging to the log directory")
	colorFlag  = flag.String("color", "", "Color mode: auto, truecolor, 256 (overrides config)")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "pixel-drifter: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *fpsFlag != 0 {
		cfg.FrameRate = *fpsFlag
	}
	if *colorFlag != "" {
		cfg.Color = *colorFlag
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	colorMode, err := terminal.ParseColorMode(cfg.Color)
	if err != nil {
		return err
	}

	logFile, err := setupLogging(cfg.Log, *debugFlag)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	source := cfg.Source
	if source == "" {
		source = "built-in"
	}
	log.Printf("pixel-drifter starting: config=%s seed=%d fps=%d", source, seed, cfg.FrameRate)

	screen, err := terminal.New(terminal.Options{
		ColorMode:  colorMode,
		HoldWindow: cfg.HoldWindow,
		Bindings:   cfg.Keys,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	// Crash handler restores the terminal; normal exit restores it here
	core.SetCrashTerminal(screen)
	defer screen.Fini()

	events := app.NewEventLogger(log.Default())
	game := engine.NewGame(vmath.NewFastRand(seed), events)

	orchestrator := render.NewRenderOrchestrator()
	renderers.RegisterDefaults(orchestrator)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := app.NewRunner(screen, game, orchestrator, cfg.FrameInterval())
	err = runner.Run(ctx)
	if errors.Is(err, context.Canceled) || errors.Is(err, terminal.ErrClosed) {
		err = nil
	}
	log.Printf("pixel-drifter exiting: runs=%d final_score=%d", events.Runs(), game.World.Score)
	return err
}
