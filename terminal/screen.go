package terminal

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Stan-breaks/Pixel-drifter/core"
	"github.com/Stan-breaks/Pixel-drifter/input"
	"github.com/Stan-breaks/Pixel-drifter/parameter"
	"github.com/Stan-breaks/Pixel-drifter/parameter/visual"
)

// ErrClosed is returned by Present after the screen has been finalized
var ErrClosed = errors.New("terminal: screen closed")

// Options configures a Screen
type Options struct {
	ColorMode  ColorMode
	HoldWindow time.Duration
	Bindings   input.Bindings
}

// event is what the poller hands the frame loop
type event struct {
	key    string
	resize bool
}

// Screen is the tcell-backed render/input adapter
// Drawing and Poll run on the frame loop goroutine; only the event channel crosses goroutines
type Screen struct {
	screen  tcell.Screen
	mode    ColorMode
	keymap  map[string][]input.Action
	tracker *input.Tracker
	frame   *frame
	events  chan event

	closed   atomic.Bool
	finiOnce sync.Once
	done     chan struct{}

	now func() time.Time
}

// New opens the controlling terminal
func New(opts Options) (*Screen, error) {
	ts, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: open: %w", err)
	}
	return newScreen(ts, opts)
}

// newScreen initializes an existing tcell screen; bindings are checked before the terminal is touched
func newScreen(ts tcell.Screen, opts Options) (*Screen, error) {
	keymap, err := resolveBindings(opts.Bindings)
	if err != nil {
		return nil, err
	}
	hold := opts.HoldWindow
	if hold <= 0 {
		hold = parameter.InputHoldWindow
	}

	if err := ts.Init(); err != nil {
		return nil, fmt.Errorf("terminal: init: %w", err)
	}
	ts.HideCursor()
	ts.SetStyle(tcell.StyleDefault.Background(tcell.NewRGBColor(
		int32(visual.RgbaBackground.R), int32(visual.RgbaBackground.G), int32(visual.RgbaBackground.B))))

	cols, rows := ts.Size()
	s := &Screen{
		screen:  ts,
		mode:    resolveColorMode(opts.ColorMode, ts.Colors()),
		keymap:  keymap,
		tracker: input.NewTracker(hold),
		frame:   newFrame(cols, rows),
		events:  make(chan event, parameter.InputEventQueueSize),
		done:    make(chan struct{}),
		now:     time.Now,
	}
	log.Printf("terminal: %dx%d cells, color mode %s", cols, rows, s.mode)

	core.Go(s.pollLoop)
	return s, nil
}

// pollLoop forwards key and resize events until the screen is finalized
func (s *Screen) pollLoop() {
	defer close(s.done)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			s.closed.Store(true)
			return
		}

		var e event
		switch ev := ev.(type) {
		case *tcell.EventKey:
			e.key = keyName(ev)
			if e.key == "" {
				continue
			}
		case *tcell.EventResize:
			e.resize = true
		default:
			continue
		}

		select {
		case s.events <- e:
		default:
			log.Printf("terminal: input queue full, dropped %+v", e)
		}
	}
}

// Poll drains pending events and samples the input state for this frame
func (s *Screen) Poll() input.State {
	now := s.now()
	for {
		select {
		case e := <-s.events:
			s.handle(e, now)
		default:
			return s.tracker.Sample(now)
		}
	}
}

func (s *Screen) handle(e event, now time.Time) {
	if e.resize {
		cols, rows := s.screen.Size()
		s.frame.resize(cols, rows)
		s.screen.Sync()
		return
	}
	for _, a := range s.keymap[e.key] {
		s.tracker.Press(a, now)
	}
}

// ShouldClose reports whether the terminal went away or the screen was finalized
func (s *Screen) ShouldClose() bool {
	return s.closed.Load()
}

// ColorMode returns the resolved color mode
func (s *Screen) ColorMode() ColorMode {
	return s.mode
}

func (s *Screen) Clear(c core.RGBA) {
	s.frame.clear(c)
}

func (s *Screen) DrawCircle(x, y int, radius float64, c core.RGBA) {
	s.frame.fillCircle(x, y, radius, c)
}

func (s *Screen) DrawTriangle(x1, y1, x2, y2, x3, y3 int, c core.RGBA) {
	s.frame.fillTriangle(x1, y1, x2, y2, x3, y3, c)
}

func (s *Screen) DrawText(text string, x, y, size int, c core.RGBA) {
	s.frame.putText(text, x, y, size, c)
}

func (s *Screen) MeasureText(text string, size int) int {
	return s.frame.measure(text)
}

// Present flushes the composed frame to the terminal
func (s *Screen) Present() error {
	if s.closed.Load() {
		return ErrClosed
	}
	s.frame.flush(s.screen, s.mode)
	s.screen.Show()
	return nil
}

// Fini restores the terminal. Safe to call multiple times
func (s *Screen) Fini() {
	s.finiOnce.Do(func() {
		s.closed.Store(true)
		s.screen.Fini()
	})
}
