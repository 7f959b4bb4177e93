package sketchbook

import "testing"

// probeSketch records what the runner hands it.
type probeSketch struct {
	setups int
	frames []Frame
	draws  []int
}

func (p *probeSketch) Setup(Surface) { p.setups++ }
func (p *probeSketch) Update(f Frame) {
	p.frames = append(p.frames, f)
	f.Emit(Event{Type: EventBubbleSpawned})
}
func (p *probeSketch) Draw(_ Surface, tick int) { p.draws = append(p.draws, tick) }

func TestRunnerStepAdvancesTick(t *testing.T) {
	p := &probeSketch{}
	r := NewRunner(p, NewRand(1))
	if r.Tick() != 0 {
		t.Fatalf("tick before first step = %d", r.Tick())
	}
	for want := 1; want <= 3; want++ {
		if got := r.Step(Input{}); got != want {
			t.Errorf("Step() = %d, want %d", got, want)
		}
	}
	for i, f := range p.frames {
		if f.Tick != i+1 {
			t.Errorf("frame %d tick = %d", i, f.Tick)
		}
	}
}

func TestRunnerSetupRunsOnce(t *testing.T) {
	p := &probeSketch{}
	r := NewRunner(p, NewRand(1))
	s := newRecordingSurface(640, 480)

	r.Draw(s)
	r.Setup(s)
	r.Step(Input{})
	r.Draw(s)

	if p.setups != 1 {
		t.Errorf("setups = %d, want 1", p.setups)
	}
	if r.Viewport() != (Viewport{640, 480}) {
		t.Errorf("viewport = %+v", r.Viewport())
	}
	if len(p.draws) != 2 || p.draws[0] != 0 || p.draws[1] != 1 {
		t.Errorf("draw ticks = %v, want [0 1]", p.draws)
	}
}

func TestRunnerViewportFollowsResize(t *testing.T) {
	p := &probeSketch{}
	r := NewRunner(p, NewRand(1))
	r.Setup(newRecordingSurface(640, 480))
	r.SetViewport(Viewport{1024, 768})
	r.Step(Input{})
	if p.frames[0].Viewport != (Viewport{1024, 768}) {
		t.Errorf("frame viewport = %+v", p.frames[0].Viewport)
	}
}

func TestRunnerForwardsEvents(t *testing.T) {
	p := &probeSketch{}
	r := NewRunner(p, NewRand(1))
	rec := &EventRecorder{}
	r.SetEventSink(rec)
	r.Step(Input{})
	r.Step(Input{})

	if len(rec.Events) != 2 {
		t.Fatalf("events = %d, want 2", len(rec.Events))
	}
	if rec.Events[1].Tick != 2 {
		t.Errorf("event tick = %d, want 2", rec.Events[1].Tick)
	}
}

func TestRunnerDebugCountsEvents(t *testing.T) {
	p := &probeSketch{}
	r := NewRunner(p, NewRand(1))
	rec := &EventRecorder{}
	r.SetEventSink(rec)
	r.SetDebugMode(true)
	r.Step(Input{})

	if r.stats.eventCount != 1 || r.stats.tick != 1 {
		t.Errorf("stats = %+v", r.stats)
	}
	if len(rec.Events) != 1 {
		t.Error("debug mode should still forward events")
	}
}

func TestRunnerPopulation(t *testing.T) {
	b := NewBubbles(DefaultBubbleConfig(), nil)
	r := NewRunner(b, NewRand(3))
	r.SetViewport(Viewport{800, 600})
	r.SetDebugMode(true)
	r.Step(Input{})
	if r.stats.population != b.Field.Len() || b.Field.Len() == 0 {
		t.Errorf("population = %d, field = %d", r.stats.population, b.Field.Len())
	}
}

func TestRunnerScreenshotQueue(t *testing.T) {
	r := NewRunner(&probeSketch{}, NewRand(1))
	if r.TakeScreenshots() != nil {
		t.Fatal("queue should start empty")
	}
	r.Screenshot("a")
	r.Screenshot("b")
	got := r.TakeScreenshots()
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("labels = %v", got)
	}
	if r.TakeScreenshots() != nil {
		t.Error("queue should be cleared")
	}
}
