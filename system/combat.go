package system

import (
	"github.com/Stan-breaks/Pixel-drifter/component"
	"github.com/Stan-breaks/Pixel-drifter/parameter"
	"github.com/Stan-breaks/Pixel-drifter/parameter/visual"
	"github.com/Stan-breaks/Pixel-drifter/physics"
)

// CheckCollision reports whether any active enemy overlaps the player
func CheckCollision(player *component.Player, enemies []component.Enemy) bool {
	for i := range enemies {
		e := &enemies[i]
		if !e.Active {
			continue
		}
		if physics.CirclesOverlap(player.Position, player.Radius, e.Position, e.Radius) {
			return true
		}
	}
	return false
}

// ApplyHit deals contact damage and emits the hit burst, plus the death burst when health runs out
// Returns true when the hit was fatal
func ApplyHit(player *component.Player, particles []component.Particle) bool {
	player.Health -= parameter.HitDamage
	SpawnBurst(particles, player.Position, parameter.HitBurstCount, visual.RgbaHitBurst)

	if player.Alive() {
		return false
	}
	SpawnBurst(particles, player.Position, parameter.DeathBurstCount, visual.RgbaDeathBurst)
	return true
}
