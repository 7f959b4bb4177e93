package sketchbook

// Frame is everything one update pass may read: the tick being simulated,
// the input sampled for it, the viewport, and the random source.
type Frame struct {
	Tick     int
	Input    Input
	Viewport Viewport
	Rand     Rand

	sink EventSink
}

// Emit forwards an event to the runner's sink, if any.
func (f Frame) Emit(e Event) {
	if f.sink == nil {
		return
	}
	e.Tick = f.Tick
	f.sink.EmitEvent(e)
}

// Sketch is a self-contained animation. Update mutates only the sketch's own
// state and never draws; Draw reads state and never mutates it.
type Sketch interface {
	// Setup runs once before the first tick, after the surface exists.
	Setup(s Surface)
	// Update advances the simulation by one tick.
	Update(f Frame)
	// Draw renders the state reached at tick.
	Draw(s Surface, tick int)
}
