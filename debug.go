package sketchbook

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-tick timing and population metrics.
// Only populated when Runner.debug is true.
type debugStats struct {
	tick       int
	updateTime time.Duration
	drawTime   time.Duration
	eventCount int
	population int
}

// debugLog prints timing and population stats to stderr.
func (r *Runner) debugLog(stats debugStats) {
	if !r.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[sketchbook] tick %d | update: %v | draw: %v | total: %v\n",
		stats.tick, stats.updateTime, stats.drawTime, stats.updateTime+stats.drawTime)
	_, _ = fmt.Fprintf(os.Stderr,
		"[sketchbook] particles: %d | events: %d | queued input: %d\n",
		stats.population, stats.eventCount, len(r.injectQueue))
}
