package core

// RGBA stores explicit 8-bit color channels, decoupled from tcell
// A is coverage: 255 opaque, 0 invisible
type RGBA struct {
	R, G, B, A uint8
}

// Predefined colors
var (
	RGBABlack = RGBA{0, 0, 0, 255}
	RGBAWhite = RGBA{255, 255, 255, 255}
)

// WithAlpha returns c with alpha set from a [0,1] factor, clamped
func (c RGBA) WithAlpha(alpha float64) RGBA {
	switch {
	case alpha <= 0:
		c.A = 0
	case alpha >= 1:
		c.A = 255
	default:
		c.A = uint8(alpha * 255)
	}
	return c
}

// Opacity returns A as a [0,1] factor
func (c RGBA) Opacity() float64 {
	return float64(c.A) / 255
}
