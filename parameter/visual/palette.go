package visual

import "github.com/Stan-breaks/Pixel-drifter/core"

// Entity colors
var (
	RgbaPlayer = core.RGBA{R: 0, G: 121, B: 241, A: 255}   // Blue
	RgbaEnemy  = core.RGBA{R: 230, G: 41, B: 55, A: 255}   // Red
	RgbaStar   = core.RGBA{R: 255, G: 255, B: 255, A: 255} // White, alpha from brightness
)

// Particle burst colors
var (
	RgbaHitBurst   = core.RGBA{R: 255, G: 161, B: 0, A: 255} // Orange
	RgbaDeathBurst = core.RGBA{R: 190, G: 33, B: 55, A: 255} // Maroon
)

// UI colors
var (
	RgbaBackground = core.RGBA{R: 0, G: 0, B: 0, A: 255}       // Black
	RgbaHUDText    = core.RGBA{R: 255, G: 255, B: 255, A: 255} // White
	RgbaGameOver   = core.RGBA{R: 230, G: 41, B: 55, A: 255}   // Red
	RgbaPrompt     = core.RGBA{R: 200, G: 200, B: 200, A: 255} // Light gray
)
