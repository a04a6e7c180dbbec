package renderers

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/Stan-breaks/Pixel-drifter/engine"
	"github.com/Stan-breaks/Pixel-drifter/parameter"
	"github.com/Stan-breaks/Pixel-drifter/parameter/visual"
	"github.com/Stan-breaks/Pixel-drifter/render"
)

// hudBufferSize fits the longest label plus a full int64
const hudBufferSize = 32

var errHUDOverflow = errors.New("hud text exceeds buffer")

// HUDRenderer draws score and health
// Both lines are formatted before drawing; a formatting error skips the whole HUD for that frame
type HUDRenderer struct {
	buf []byte

	// Skipped counts frames whose HUD was not drawn
	Skipped int
}

func NewHUDRenderer() *HUDRenderer {
	return newHUDRenderer(hudBufferSize)
}

func newHUDRenderer(size int) *HUDRenderer {
	return &HUDRenderer{buf: make([]byte, 0, size)}
}

func (r *HUDRenderer) Render(snap *engine.Snapshot, c render.Canvas) {
	score, err := r.format("Score: ", snap.Score)
	if err != nil {
		r.skip(err)
		return
	}
	health, err := r.format("Health: ", snap.Player.Health)
	if err != nil {
		r.skip(err)
		return
	}

	c.DrawText(score, parameter.HUDMarginX, parameter.HUDScoreY, parameter.HUDFontSize, visual.RgbaHUDText)
	c.DrawText(health, parameter.HUDMarginX, parameter.HUDHealthY, parameter.HUDFontSize, visual.RgbaHUDText)
}

// format renders label+value into the fixed buffer
func (r *HUDRenderer) format(label string, value int) (string, error) {
	out := strconv.AppendInt(append(r.buf[:0], label...), int64(value), 10)
	if len(out) > cap(r.buf) {
		return "", fmt.Errorf("%w: %d bytes", errHUDOverflow, len(out))
	}
	return string(out), nil
}

func (r *HUDRenderer) skip(err error) {
	r.Skipped++
	log.Printf("hud: skipped frame: %v", err)
}
