package parameter

// Enemy Pool
const (
	// EnemyPoolSize is the fixed number of enemy slots, all permanently active
	EnemyPoolSize = 5

	EnemyRadius = 10.0

	// EnemyMinSpeed/MaxSpeed bound the uniform spawn speed [min, max) in pixels per frame
	EnemyMinSpeed = 2.0
	EnemyMaxSpeed = 4.0
)
