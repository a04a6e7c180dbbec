package system

import (
	"github.com/Stan-breaks/Pixel-drifter/component"
	"github.com/Stan-breaks/Pixel-drifter/parameter"
	"github.com/Stan-breaks/Pixel-drifter/physics"
	"github.com/Stan-breaks/Pixel-drifter/vmath"
)

// UpdateEnemies homes every slot toward the player and recycles slots that left the extended bounds
// Returns the bounty earned this frame; the caller owns the score
func UpdateEnemies(enemies []component.Enemy, player *component.Player, rng *vmath.FastRand) int {
	bounty := 0
	for i := range enemies {
		e := &enemies[i]

		// Slots are never deactivated, an inactive slot is only reachable from a zero-valued pool
		if !e.Active {
			*e = SpawnEnemy(rng)
			continue
		}

		e.Position = physics.StepToward(e.Position, player.Position, e.Speed)

		if physics.OutsideBounds(e.Position, parameter.PlayfieldWidth, parameter.PlayfieldHeight, parameter.OffscreenMargin) {
			*e = SpawnEnemy(rng)
			bounty += parameter.EnemyBounty
		}
	}
	return bounty
}

// RespawnAll recycles every slot regardless of state
func RespawnAll(enemies []component.Enemy, rng *vmath.FastRand) {
	for i := range enemies {
		enemies[i] = SpawnEnemy(rng)
	}
}
