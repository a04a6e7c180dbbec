package renderers

import (
	"math"

	"github.com/Stan-breaks/Pixel-drifter/engine"
	"github.com/Stan-breaks/Pixel-drifter/render"
)

// PlayerRenderer draws the player circle while the run is live
type PlayerRenderer struct{}

func NewPlayerRenderer() *PlayerRenderer {
	return &PlayerRenderer{}
}

// IsVisible hides the player once the run has ended
func (r *PlayerRenderer) IsVisible(snap *engine.Snapshot) bool {
	return snap.Phase == engine.PhasePlaying
}

func (r *PlayerRenderer) Render(snap *engine.Snapshot, c render.Canvas) {
	p := &snap.Player
	c.DrawCircle(int(math.Round(p.Position.X)), int(math.Round(p.Position.Y)), p.Radius, p.Color)
}
