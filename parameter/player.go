package parameter

// Player Entity
const (
	PlayerRadius = 20.0
	PlayerSpeed  = 5.0
	PlayerHealth = 100

	// PlayerStartX/Y center the player on restart
	PlayerStartX = PlayfieldWidth / 2.0
	PlayerStartY = PlayfieldHeight / 2.0

	// DiagonalFactor keeps diagonal movement at axis-aligned speed (√2⁄2)
	DiagonalFactor = 0.7071067811865476
)
