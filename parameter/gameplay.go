package parameter

// Playfield in logical pixels
const (
	PlayfieldWidth  = 800
	PlayfieldHeight = 600

	// OffscreenMargin extends the playfield on every side before an enemy is recycled
	OffscreenMargin = 50
)

// Scoring & Damage
const (
	// EnemyBounty is awarded each time an enemy leaves the extended bounds and is recycled
	EnemyBounty = 10

	// HitDamage is subtracted from player health on every frame with contact
	HitDamage = 5
)
