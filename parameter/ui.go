package parameter

// HUD layout in logical pixels
const (
	HUDMarginX = 10
	HUDScoreY  = 10
	HUDHealthY = 40

	// HUDFontSize is the nominal text height passed to the canvas
	HUDFontSize = 20

	// GameOverFontSize is the nominal height of the game over banner
	GameOverFontSize = 40
)

// HUD text
const (
	GameOverText      = "GAME OVER"
	RestartPromptText = "Press R to restart"
)

// GameOverOffsetY positions the banner and prompt relative to the playfield center
const (
	GameOverOffsetY      = -40
	RestartPromptOffsetY = 20
)
