package renderers

import (
	"math"

	"github.com/Stan-breaks/Pixel-drifter/engine"
	"github.com/Stan-breaks/Pixel-drifter/parameter/visual"
	"github.com/Stan-breaks/Pixel-drifter/render"
)

// StarsRenderer draws the static starfield, brighter stars larger and more opaque
type StarsRenderer struct{}

func NewStarsRenderer() *StarsRenderer {
	return &StarsRenderer{}
}

func (r *StarsRenderer) Render(snap *engine.Snapshot, c render.Canvas) {
	for i := range snap.Stars {
		s := &snap.Stars[i]
		c.DrawCircle(
			int(math.Round(s.Position.X)),
			int(math.Round(s.Position.Y)),
			1+s.Brightness,
			visual.RgbaStar.WithAlpha(s.Brightness),
		)
	}
}
