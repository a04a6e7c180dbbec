package parameter

// Particle Pool
const (
	ParticlePoolSize = 100

	// ParticleSpeed is the radial burst velocity in pixels per frame
	ParticleSpeed = 3.0

	// ParticleLifetime is the initial lifetime of a burst particle
	ParticleLifetime = 1.0

	// ParticleDecay is subtracted from lifetime every frame (assumes ~60Hz)
	ParticleDecay = 0.016

	// ParticleDrawRadius is the rendered circle radius of a particle
	ParticleDrawRadius = 3
)

// Burst sizes
const (
	HitBurstCount   = 10
	DeathBurstCount = 30
)

// Starfield
const (
	StarCount = 100
)
