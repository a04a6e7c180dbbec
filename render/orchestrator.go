package render

import (
	"github.com/Stan-breaks/Pixel-drifter/engine"
	"github.com/Stan-breaks/Pixel-drifter/parameter/visual"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	renderers []rendererEntry
	regCount  int
}

// NewRenderOrchestrator creates an empty pipeline
func NewRenderOrchestrator() *RenderOrchestrator {
	return &RenderOrchestrator{
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	// Insertion sort: find position and insert
	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// RenderFrame executes the render pipeline: clear, then every visible layer in priority order
// Presenting the frame is left to the adapter
func (o *RenderOrchestrator) RenderFrame(c Canvas, snap *engine.Snapshot) {
	c.Clear(visual.RgbaBackground)

	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible(snap) {
			continue
		}
		entry.renderer.Render(snap, c)
	}
}
