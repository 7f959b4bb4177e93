package sketchbook

// Input is the pointer state sampled at the start of a tick. Events recorded
// by the host between ticks only take effect on the tick that reads them.
type Input struct {
	// Pointer is the last known cursor position in pixels.
	Pointer Vec2
	// Moved reports that the pointer moved since the previous tick.
	Moved bool
	// Clicked reports a completed click since the previous tick.
	Clicked bool
}

// merge overlays a synthetic input on top of polled input. Any synthetic
// movement or click replaces the polled pointer position.
func (in Input) merge(synthetic Input) Input {
	if synthetic.Moved || synthetic.Clicked {
		in.Pointer = synthetic.Pointer
	}
	in.Moved = in.Moved || synthetic.Moved
	in.Clicked = in.Clicked || synthetic.Clicked
	return in
}
