// Package terminal implements the render/input adapter on top of tcell.
//
// Features:
//   - 800×600 logical canvas rasterised onto a 2×2 sub-cell framebuffer
//   - Quadrant block output in true color or the xterm-256 palette
//   - Alpha compositing for translucent stars and particles
//   - Key events folded into per-frame input state with a hold window
//   - Resize detection and idempotent teardown
//
// Terminals report presses and auto-repeats but not releases, so held
// directions expire after the configured hold window.
package terminal
