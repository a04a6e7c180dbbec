package renderers

import (
	"github.com/Stan-breaks/Pixel-drifter/core"
	"github.com/Stan-breaks/Pixel-drifter/engine"
	"github.com/Stan-breaks/Pixel-drifter/parameter"
	"github.com/Stan-breaks/Pixel-drifter/parameter/visual"
	"github.com/Stan-breaks/Pixel-drifter/render"
)

// GameOverRenderer draws the centered game over banner and restart prompt
type GameOverRenderer struct{}

func NewGameOverRenderer() *GameOverRenderer {
	return &GameOverRenderer{}
}

// IsVisible returns true once the run has ended
func (r *GameOverRenderer) IsVisible(snap *engine.Snapshot) bool {
	return snap.Phase == engine.PhaseGameOver
}

func (r *GameOverRenderer) Render(snap *engine.Snapshot, c render.Canvas) {
	drawCentered(c, parameter.GameOverText, parameter.GameOverOffsetY, parameter.GameOverFontSize, visual.RgbaGameOver)
	drawCentered(c, parameter.RestartPromptText, parameter.RestartPromptOffsetY, parameter.HUDFontSize, visual.RgbaPrompt)
}

func drawCentered(c render.Canvas, text string, offsetY, size int, col core.RGBA) {
	w := c.MeasureText(text, size)
	x := parameter.PlayfieldWidth/2 - w/2
	y := parameter.PlayfieldHeight/2 + offsetY
	c.DrawText(text, x, y, size, col)
}
