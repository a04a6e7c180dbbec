package terminal

import (
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/Stan-breaks/Pixel-drifter/core"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorModeAuto      ColorMode = iota // Detect from environment and terminfo
	ColorMode256                        // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

func (m ColorMode) String() string {
	switch m {
	case ColorMode256:
		return "256"
	case ColorModeTrueColor:
		return "truecolor"
	default:
		return "auto"
	}
}

// ParseColorMode resolves a -color flag value
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorModeAuto, nil
	case "256":
		return ColorMode256, nil
	case "truecolor", "24bit":
		return ColorModeTrueColor, nil
	default:
		return ColorModeAuto, fmt.Errorf("terminal: unknown color mode %q (valid: auto, 256, truecolor)", s)
	}
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("KONSOLE_VERSION") != "" ||
		os.Getenv("ITERM_SESSION_ID") != "" ||
		os.Getenv("ALACRITTY_WINDOW_ID") != "" ||
		os.Getenv("WEZTERM_PANE") != "" {
		return ColorModeTrueColor
	}

	term := os.Getenv("TERM")
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}

// resolveColorMode settles auto mode using the environment and the screen's reported color count
func resolveColorMode(requested ColorMode, colors int) ColorMode {
	if requested != ColorModeAuto {
		return requested
	}
	if colors >= 1<<24 {
		return ColorModeTrueColor
	}
	return DetectColorMode()
}

// Color cube values for 6x6x6 palette (indices 16-231)
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// grayscaleStart is the first grayscale index (232-255 = 24 shades)
const grayscaleStart = 232

func nearestCube(v uint8) uint8 {
	best := uint8(0)
	bestDist := absDiff(v, cubeValues[0])
	for i := 1; i < len(cubeValues); i++ {
		if d := absDiff(v, cubeValues[i]); d < bestDist {
			bestDist = d
			best = uint8(i)
		}
	}
	return best
}

// palette256 maps an opaque color to the nearest xterm-256 index, cube or grayscale ramp
func palette256(c core.RGBA) uint8 {
	r, g, b := nearestCube(c.R), nearestCube(c.G), nearestCube(c.B)
	cube := 16 + 36*r + 6*g + b
	cubeDist := sqDist(c, cubeValues[r], cubeValues[g], cubeValues[b])

	avg := (int(c.R) + int(c.G) + int(c.B)) / 3
	step := (avg - 8 + 5) / 10
	if step < 0 {
		step = 0
	}
	if step > 23 {
		step = 23
	}
	level := uint8(8 + 10*step)
	if sqDist(c, level, level, level) < cubeDist {
		return uint8(grayscaleStart + step)
	}
	return cube
}

// toTcell converts an opaque color for the active mode
func toTcell(c core.RGBA, mode ColorMode) tcell.Color {
	if mode == ColorMode256 {
		return tcell.PaletteColor(int(palette256(c)))
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// blendOver composites src onto opaque dst using src's alpha; the result is opaque
func blendOver(dst, src core.RGBA) core.RGBA {
	switch src.A {
	case 255:
		return src
	case 0:
		return dst
	}
	d := colorful.Color{R: float64(dst.R) / 255, G: float64(dst.G) / 255, B: float64(dst.B) / 255}
	s := colorful.Color{R: float64(src.R) / 255, G: float64(src.G) / 255, B: float64(src.B) / 255}
	r, g, b := d.BlendRgb(s, src.Opacity()).Clamped().RGB255()
	return core.RGBA{R: r, G: g, B: b, A: 255}
}

func sqDist(c core.RGBA, r, g, b uint8) int {
	dr := int(c.R) - int(r)
	dg := int(c.G) - int(g)
	db := int(c.B) - int(b)
	return dr*dr + dg*dg + db*db
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
