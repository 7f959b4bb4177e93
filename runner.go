package sketchbook

import "time"

// Runner is the per-frame update pass. It owns the clock, the random source,
// queued synthetic input, and the optional script, event sink, and debug
// stats. Each Step is one complete tick; nothing carries over half-done.
type Runner struct {
	sketch   Sketch
	clock    Clock
	rand     Rand
	viewport Viewport
	sink     EventSink
	debug    bool
	setup    bool

	injectQueue     []Input
	script          *ScriptRunner
	screenshotQueue []string

	stats debugStats
}

// NewRunner wraps a sketch. rand feeds every random draw the sketch makes.
func NewRunner(sketch Sketch, rand Rand) *Runner {
	return &Runner{sketch: sketch, rand: rand}
}

// Sketch returns the sketch being run.
func (r *Runner) Sketch() Sketch {
	return r.sketch
}

// Tick returns the last simulated tick; 0 before the first Step.
func (r *Runner) Tick() int {
	return r.clock.Now()
}

// Viewport returns the size the next Step simulates against.
func (r *Runner) Viewport() Viewport {
	return r.viewport
}

// SetViewport records the surface size. Hosts call it whenever the window
// is resized; it takes effect on the next Step.
func (r *Runner) SetViewport(vp Viewport) {
	r.viewport = vp
}

// SetEventSink sets the optional event consumer.
func (r *Runner) SetEventSink(sink EventSink) {
	r.sink = sink
}

// SetDebugMode enables or disables per-tick timing stats on stderr.
func (r *Runner) SetDebugMode(enabled bool) {
	r.debug = enabled
}

// Setup runs the sketch's one-time setup on the first call only.
func (r *Runner) Setup(s Surface) {
	if r.setup {
		return
	}
	r.setup = true
	r.viewport = s.Size()
	r.sketch.Setup(s)
}

// Step advances the clock by one tick and runs the sketch update with the
// polled input merged with the next queued synthetic input. It returns the
// new tick.
func (r *Runner) Step(polled Input) int {
	tick := r.clock.Advance()

	if r.script != nil {
		r.script.step(r)
	}

	in := polled
	if len(r.injectQueue) > 0 {
		in = in.merge(r.injectQueue[0])
		r.injectQueue = r.injectQueue[1:]
	}

	var t0 time.Time
	sink := r.sink
	if r.debug {
		t0 = time.Now()
		r.stats = debugStats{tick: tick}
		sink = &countingSink{next: r.sink, count: &r.stats.eventCount}
	}

	r.sketch.Update(Frame{
		Tick:     tick,
		Input:    in,
		Viewport: r.viewport,
		Rand:     r.rand,
		sink:     sink,
	})

	if r.debug {
		r.stats.updateTime = time.Since(t0)
		r.stats.population = population(r.sketch)
	}
	return tick
}

// Draw renders the sketch at the current tick. Setup runs first if the host
// has not called it yet.
func (r *Runner) Draw(s Surface) {
	r.Setup(s)

	var t0 time.Time
	if r.debug {
		t0 = time.Now()
	}
	r.sketch.Draw(s, r.clock.Now())
	if r.debug {
		r.stats.drawTime = time.Since(t0)
		r.debugLog(r.stats)
	}
}

// Screenshot queues a labeled screenshot. The host captures it after the
// current frame's Draw.
func (r *Runner) Screenshot(label string) {
	r.screenshotQueue = append(r.screenshotQueue, label)
}

// TakeScreenshots returns and clears the queued screenshot labels.
func (r *Runner) TakeScreenshots() []string {
	if len(r.screenshotQueue) == 0 {
		return nil
	}
	labels := r.screenshotQueue
	r.screenshotQueue = nil
	return labels
}

// Populated is implemented by sketches with a particle population, reported
// in debug stats.
type Populated interface {
	Population() int
}

// Population returns the number of live bubbles.
func (b *Bubbles) Population() int { return b.Field.Len() }

// Population returns the number of stars.
func (c *Character) Population() int { return len(c.Stars.Stars) }

func population(s Sketch) int {
	if p, ok := s.(Populated); ok {
		return p.Population()
	}
	return 0
}

// countingSink counts events on their way to the real sink.
type countingSink struct {
	next  EventSink
	count *int
}

func (c *countingSink) EmitEvent(e Event) {
	*c.count++
	if c.next != nil {
		c.next.EmitEvent(e)
	}
}
