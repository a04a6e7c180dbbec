package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/Stan-breaks/Pixel-drifter/core"
	"github.com/Stan-breaks/Pixel-drifter/parameter"
	"github.com/Stan-breaks/Pixel-drifter/parameter/visual"
)

// glyph is a text cell drawn over the pixel layer
type glyph struct {
	r    rune
	fg   core.RGBA
	cont bool // right half of a wide rune
}

// frame is a 2×2 sub-cell framebuffer: each terminal cell holds four pixels
// Logical playfield coordinates are scaled to the current cell grid on every draw
type frame struct {
	cols, rows int
	w, h       int
	sx, sy     float64

	px     []core.RGBA // row-major, w*h, always opaque
	glyphs []glyph     // row-major, cols*rows
}

func newFrame(cols, rows int) *frame {
	f := &frame{}
	f.resize(cols, rows)
	return f
}

// resize reallocates only when the cell grid changed
func (f *frame) resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	if cols == f.cols && rows == f.rows && f.px != nil {
		return
	}
	f.cols, f.rows = cols, rows
	f.w, f.h = cols*2, rows*2
	f.sx = float64(f.w) / parameter.PlayfieldWidth
	f.sy = float64(f.h) / parameter.PlayfieldHeight
	f.px = make([]core.RGBA, f.w*f.h)
	f.glyphs = make([]glyph, cols*rows)
	f.clear(visual.RgbaBackground)
}

func (f *frame) clear(c core.RGBA) {
	c.A = 255
	for i := range f.px {
		f.px[i] = c
	}
	for i := range f.glyphs {
		f.glyphs[i] = glyph{}
	}
}

// plot composites c onto one pixel, ignoring out-of-range coordinates
func (f *frame) plot(x, y int, c core.RGBA) {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return
	}
	i := y*f.w + x
	f.px[i] = blendOver(f.px[i], c)
}

// fillCircle covers every pixel whose center lies in the scaled ellipse
// Shapes smaller than a pixel still light the pixel under their center
func (f *frame) fillCircle(cx, cy int, radius float64, c core.RGBA) {
	fx := float64(cx) * f.sx
	fy := float64(cy) * f.sy
	if radius <= 0 {
		f.plot(int(math.Floor(fx)), int(math.Floor(fy)), c)
		return
	}
	rx := radius * f.sx
	ry := radius * f.sy

	x0 := int(math.Floor(fx - rx))
	x1 := int(math.Ceil(fx + rx))
	y0 := int(math.Floor(fy - ry))
	y1 := int(math.Ceil(fy + ry))

	hit := false
	for py := y0; py <= y1; py++ {
		dy := (float64(py) + 0.5 - fy) / ry
		for px := x0; px <= x1; px++ {
			dx := (float64(px) + 0.5 - fx) / rx
			if dx*dx+dy*dy <= 1 {
				f.plot(px, py, c)
				hit = true
			}
		}
	}
	if !hit {
		f.plot(int(math.Floor(fx)), int(math.Floor(fy)), c)
	}
}

// fillTriangle covers pixels whose centers pass all three edge tests, either winding
func (f *frame) fillTriangle(x1, y1, x2, y2, x3, y3 int, c core.RGBA) {
	ax, ay := float64(x1)*f.sx, float64(y1)*f.sy
	bx, by := float64(x2)*f.sx, float64(y2)*f.sy
	cx, cy := float64(x3)*f.sx, float64(y3)*f.sy

	area := edge(ax, ay, bx, by, cx, cy)
	if area == 0 {
		f.plot(int(math.Floor((ax+bx+cx)/3)), int(math.Floor((ay+by+cy)/3)), c)
		return
	}

	x0 := int(math.Floor(math.Min(ax, math.Min(bx, cx))))
	xe := int(math.Ceil(math.Max(ax, math.Max(bx, cx))))
	y0 := int(math.Floor(math.Min(ay, math.Min(by, cy))))
	ye := int(math.Ceil(math.Max(ay, math.Max(by, cy))))

	hit := false
	for py := y0; py <= ye; py++ {
		sy := float64(py) + 0.5
		for px := x0; px <= xe; px++ {
			sx := float64(px) + 0.5
			w0 := edge(bx, by, cx, cy, sx, sy)
			w1 := edge(cx, cy, ax, ay, sx, sy)
			w2 := edge(ax, ay, bx, by, sx, sy)
			if area < 0 {
				w0, w1, w2 = -w0, -w1, -w2
			}
			if w0 >= 0 && w1 >= 0 && w2 >= 0 {
				f.plot(px, py, c)
				hit = true
			}
		}
	}
	if !hit {
		f.plot(int(math.Floor((ax+bx+cx)/3)), int(math.Floor((ay+by+cy)/3)), c)
	}
}

// edge is twice the signed area of (a, b, p)
func edge(ax, ay, bx, by, px, py float64) float64 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// cellCol maps a logical x to a cell column
func (f *frame) cellCol(x int) int {
	return int(math.Floor(float64(x) * float64(f.cols) / parameter.PlayfieldWidth))
}

// cellRow maps a logical y to a cell row
func (f *frame) cellRow(y int) int {
	return int(math.Floor(float64(y) * float64(f.rows) / parameter.PlayfieldHeight))
}

// putText writes text on the cell grid; the row is the one under the vertical middle of the text
// Runes falling outside the grid are dropped
func (f *frame) putText(text string, x, y, size int, c core.RGBA) {
	row := f.cellRow(y + size/2)
	if row < 0 || row >= f.rows {
		return
	}
	col := f.cellCol(x)
	c.A = 255
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col >= 0 && col+w <= f.cols {
			i := row*f.cols + col
			f.glyphs[i] = glyph{r: r, fg: c}
			if w == 2 {
				f.glyphs[i+1] = glyph{cont: true}
			}
		}
		col += w
		if col >= f.cols {
			return
		}
	}
}

// measure returns the logical width text occupies on the cell grid
func (f *frame) measure(text string) int {
	if f.cols == 0 {
		return 0
	}
	return runewidth.StringWidth(text) * parameter.PlayfieldWidth / f.cols
}

// quadrant packs four pixels into one block rune with two colors
// Background is the upper-left pixel; foreground is the first pixel differing from it
func quadrant(ul, ur, ll, lr core.RGBA) (r rune, fg, bg core.RGBA) {
	bg = ul
	fg = bg
	quad := [4]core.RGBA{ul, ur, ll, lr}
	for _, p := range quad[1:] {
		if p != bg {
			fg = p
			break
		}
	}
	if fg == bg {
		return ' ', fg, bg
	}

	var mask uint8
	for i, p := range quad {
		if sqDist(p, fg.R, fg.G, fg.B) < sqDist(p, bg.R, bg.G, bg.B) {
			mask |= 1 << i
		}
	}
	return visual.QuadrantChars[mask], fg, bg
}

// flush writes the framebuffer to the screen's back buffer
func (f *frame) flush(s tcell.Screen, mode ColorMode) {
	for row := 0; row < f.rows; row++ {
		top := (row * 2) * f.w
		bottom := top + f.w
		for col := 0; col < f.cols; col++ {
			g := f.glyphs[row*f.cols+col]
			if g.cont {
				continue
			}
			ul := f.px[top+col*2]
			if g.r != 0 {
				style := tcell.StyleDefault.
					Foreground(toTcell(g.fg, mode)).
					Background(toTcell(ul, mode))
				s.SetContent(col, row, g.r, nil, style)
				continue
			}
			r, fg, bg := quadrant(ul, f.px[top+col*2+1], f.px[bottom+col*2], f.px[bottom+col*2+1])
			style := tcell.StyleDefault.
				Foreground(toTcell(fg, mode)).
				Background(toTcell(bg, mode))
			s.SetContent(col, row, r, nil, style)
		}
	}
}
