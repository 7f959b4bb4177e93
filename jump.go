package sketchbook

// JumpState is the character's jump phase.
type JumpState uint8

const (
	JumpIdle    JumpState = iota // standing on the ground
	JumpJumping                  // in the air since the recorded start tick
)

func (s JumpState) String() string {
	if s == JumpJumping {
		return "jumping"
	}
	return "idle"
}

// JumpTimer drives one eased jump at a time. A jump that starts at tick T
// with duration D is in the air for T <= tick < T+D and back at rest from
// T+D on.
type JumpTimer struct {
	// Duration is the jump length in ticks.
	Duration int
	// Height scales the normalized offset into pixels.
	Height float64

	state JumpState
	start int
}

// NewJumpTimer creates an idle timer.
func NewJumpTimer(duration int, height float64) *JumpTimer {
	return &JumpTimer{Duration: duration, Height: height}
}

// StateAt reports the phase at tick without mutating the timer.
func (j *JumpTimer) StateAt(tick int) JumpState {
	if j.state == JumpJumping && tick >= j.start && tick-j.start < j.Duration {
		return JumpJumping
	}
	return JumpIdle
}

// Start returns the tick of the current jump and whether one is recorded.
func (j *JumpTimer) Start() (int, bool) {
	return j.start, j.state == JumpJumping
}

// Click starts a jump at tick. Clicking mid-air is a no-op and returns false.
func (j *JumpTimer) Click(tick int) bool {
	if j.StateAt(tick) == JumpJumping {
		return false
	}
	j.state = JumpJumping
	j.start = tick
	return true
}

// Offset returns the vertical offset in pixels at tick, 0 when idle.
func (j *JumpTimer) Offset(tick int) float64 {
	if j.StateAt(tick) != JumpJumping {
		return 0
	}
	return JumpCurve(Progress(tick, j.start, j.Duration)) * j.Height
}

// Update returns the offset at tick and clears the jump once its progress
// reaches 1. The second result reports a landing on this tick.
func (j *JumpTimer) Update(tick int) (offset float64, landed bool) {
	if j.state != JumpJumping {
		return 0, false
	}
	if Progress(tick, j.start, j.Duration) >= 1 {
		j.state = JumpIdle
		return 0, true
	}
	return j.Offset(tick), false
}
