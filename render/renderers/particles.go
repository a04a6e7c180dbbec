package renderers

import (
	"math"

	"github.com/Stan-breaks/Pixel-drifter/engine"
	"github.com/Stan-breaks/Pixel-drifter/parameter"
	"github.com/Stan-breaks/Pixel-drifter/render"
)

// ParticlesRenderer draws active burst particles, fading with remaining lifetime
type ParticlesRenderer struct{}

func NewParticlesRenderer() *ParticlesRenderer {
	return &ParticlesRenderer{}
}

func (r *ParticlesRenderer) Render(snap *engine.Snapshot, c render.Canvas) {
	for i := range snap.Particles {
		p := &snap.Particles[i]
		if !p.Active {
			continue
		}
		c.DrawCircle(
			int(math.Round(p.Position.X)),
			int(math.Round(p.Position.Y)),
			parameter.ParticleDrawRadius,
			p.Color.WithAlpha(p.Lifetime/parameter.ParticleLifetime),
		)
	}
}
