package system

import (
	"math"

	"github.com/Stan-breaks/Pixel-drifter/component"
	"github.com/Stan-breaks/Pixel-drifter/core"
	"github.com/Stan-breaks/Pixel-drifter/parameter"
	"github.com/Stan-breaks/Pixel-drifter/vmath"
)

// SpawnBurst activates up to count free slots first-fit, spreading velocities evenly around a circle
// Angles are derived from the requested count, so a truncated burst leaves a gap in the ring
// Returns the number of particles placed
func SpawnBurst(pool []component.Particle, origin vmath.Vec2, count int, color core.RGBA) int {
	if count <= 0 {
		return 0
	}

	placed := 0
	for i := range pool {
		if placed == count {
			break
		}
		p := &pool[i]
		if p.Active {
			continue
		}

		angle := 2 * math.Pi * float64(placed) / float64(count)
		*p = component.Particle{
			Position: origin,
			Velocity: vmath.FromAngle(angle, parameter.ParticleSpeed),
			Color:    color,
			Lifetime: parameter.ParticleLifetime,
			Active:   true,
		}
		placed++
	}
	return placed
}

// UpdateParticles advances and ages every active particle, freeing expired slots
func UpdateParticles(pool []component.Particle) {
	for i := range pool {
		p := &pool[i]
		if !p.Active {
			continue
		}
		p.Position = p.Position.Add(p.Velocity)
		p.Lifetime -= parameter.ParticleDecay
		if p.Lifetime <= 0 {
			p.Active = false
		}
	}
}

// ClearParticles frees every slot
func ClearParticles(pool []component.Particle) {
	for i := range pool {
		pool[i].Active = false
	}
}

// ActiveParticles counts occupied slots
func ActiveParticles(pool []component.Particle) int {
	n := 0
	for i := range pool {
		if pool[i].Active {
			n++
		}
	}
	return n
}
