package sketchbook

// InjectMove queues a pointer move to (x, y) in pixels. The move is consumed
// by the next Step, exactly as if the host had polled it.
func (r *Runner) InjectMove(x, y float64) {
	r.injectQueue = append(r.injectQueue, Input{
		Pointer: Vec2{x, y},
		Moved:   true,
	})
}

// InjectClick queues a click at (x, y) in pixels. Consumes one tick.
func (r *Runner) InjectClick(x, y float64) {
	r.injectQueue = append(r.injectQueue, Input{
		Pointer: Vec2{x, y},
		Clicked: true,
	})
}

// InjectSweep queues a pointer move from (fromX, fromY) to (toX, toY),
// linearly interpolated over frames ticks. Minimum frames is 1.
func (r *Runner) InjectSweep(fromX, fromY, toX, toY float64, frames int) {
	if frames < 1 {
		frames = 1
	}
	if frames == 1 {
		r.InjectMove(toX, toY)
		return
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		r.InjectMove(lerp(fromX, toX, t), lerp(fromY, toY, t))
	}
}

// PendingInput returns the number of queued synthetic inputs.
func (r *Runner) PendingInput() int {
	return len(r.injectQueue)
}
