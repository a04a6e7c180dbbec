package renderers

import "github.com/Stan-breaks/Pixel-drifter/render"

// RegisterDefaults installs the standard layer stack: stars, particles, player, enemies, HUD, game over
func RegisterDefaults(o *render.RenderOrchestrator) {
	rendererList := []struct {
		renderer render.SystemRenderer
		priority render.RenderPriority
	}{
		{NewStarsRenderer(), render.PriorityBackground},
		{NewParticlesRenderer(), render.PriorityParticle},
		{NewPlayerRenderer(), render.PriorityPlayer},
		{NewEnemiesRenderer(), render.PriorityEntities},
		{NewHUDRenderer(), render.PriorityUI},
		{NewGameOverRenderer(), render.PriorityOverlay},
	}

	for _, def := range rendererList {
		o.Register(def.renderer, def.priority)
	}
}
