package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameRate is the target frames per second, one simulation step per frame
	FrameRate = 60

	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = time.Second / FrameRate

	// InputHoldWindow is how long a direction stays held after its last key event
	// Terminals report key repeats but no key release
	InputHoldWindow = 150 * time.Millisecond

	// InputEventQueueSize is the buffered capacity between the event poller and the frame loop
	InputEventQueueSize = 256
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "pixel-drifter.log"

	// LogMaxSize triggers rotation of the existing log file at startup
	LogMaxSize = 10 * 1024 * 1024
)
