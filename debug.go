package easygame

import (
	"fmt"
	"os"
	"time"
)

// frameStats accumulates per-tick timings. Only populated when the Context
// is in debug mode.
type frameStats struct {
	updateTime time.Duration
	drawTime   time.Duration
	frames     int
}

// logStats prints averaged tick timings to stderr once per fps frames
// (roughly once per second) and resets the accumulators.
func (e *Engine) logStats() {
	if e.stats.frames < e.fps {
		return
	}
	n := time.Duration(e.stats.frames)
	_, _ = fmt.Fprintf(os.Stderr,
		"[easygame] update: %v | present: %v (avg over %d frames)\n",
		e.stats.updateTime/n, e.stats.drawTime/n, e.stats.frames)
	e.stats = frameStats{}
}
