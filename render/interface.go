package render

//go:generate go tool mockgen -destination=./mocks/canvas_mock.go -package=mocks . Canvas

import (
	"github.com/Stan-breaks/Pixel-drifter/core"
	"github.com/Stan-breaks/Pixel-drifter/engine"
)

// Canvas is the drawing half of the render/input adapter
// Coordinates are logical playfield pixels; size is a nominal text height in pixels
type Canvas interface {
	Clear(c core.RGBA)
	DrawCircle(x, y int, radius float64, c core.RGBA)
	DrawTriangle(x1, y1, x2, y2, x3, y3 int, c core.RGBA)
	DrawText(text string, x, y, size int, c core.RGBA)

	// MeasureText returns the drawn width of text in logical pixels
	MeasureText(text string, size int) int
}

// SystemRenderer is implemented by each visual layer
type SystemRenderer interface {
	Render(snap *engine.Snapshot, c Canvas)
}

// VisibilityToggle is optionally implemented for state-dependent layers
type VisibilityToggle interface {
	IsVisible(snap *engine.Snapshot) bool
}
