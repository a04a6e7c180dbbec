// Package app runs the frame loop: poll input, step the simulation, draw, present.
package app

//go:generate go tool mockgen -destination=./mocks/adapter_mock.go -package=mocks . Adapter

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Stan-breaks/Pixel-drifter/engine"
	"github.com/Stan-breaks/Pixel-drifter/input"
	"github.com/Stan-breaks/Pixel-drifter/render"
)

// Adapter is the single I/O boundary: a canvas plus input polling, presentation and close query
type Adapter interface {
	render.Canvas

	// Poll samples input once per frame
	Poll() input.State

	// Present shows the frame drawn since the last Clear
	Present() error

	ShouldClose() bool
}

// Runner owns the game and drives one step per frame
type Runner struct {
	adapter      Adapter
	game         *engine.Game
	orchestrator *render.RenderOrchestrator
	interval     time.Duration

	frames uint64
}

func NewRunner(adapter Adapter, game *engine.Game, orchestrator *render.RenderOrchestrator, interval time.Duration) *Runner {
	return &Runner{
		adapter:      adapter,
		game:         game,
		orchestrator: orchestrator,
		interval:     interval,
	}
}

// Frame runs one loop iteration and reports whether the loop should continue
// Quit input or a closed adapter stop the loop before the simulation steps
func (r *Runner) Frame() (bool, error) {
	in := r.adapter.Poll()
	if in.Quit || r.adapter.ShouldClose() {
		return false, nil
	}

	r.game.Step(in)

	snap := r.game.World.Snapshot()
	r.orchestrator.RenderFrame(r.adapter, &snap)

	if err := r.adapter.Present(); err != nil {
		return false, fmt.Errorf("present frame %d: %w", snap.Frame, err)
	}
	r.frames++
	return true, nil
}

// Run executes frames on a fixed ticker until quit, close, present failure or ctx cancellation
func (r *Runner) Run(ctx context.Context) error {
	frameTicker := time.NewTicker(r.interval)
	defer frameTicker.Stop()

	start := time.Now()
	defer func() {
		log.Printf("app: loop stopped after %d frames in %s", r.frames, time.Since(start).Round(time.Millisecond))
	}()

	for {
		running, err := r.Frame()
		if err != nil || !running {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-frameTicker.C:
		}
	}
}

// Frames returns the number of presented frames
func (r *Runner) Frames() uint64 {
	return r.frames
}
