package sketchbook

import "testing"

func bubbleFrame(tick int, r Rand, in Input) Frame {
	return Frame{
		Tick:     tick,
		Input:    in,
		Viewport: Viewport{Width: 800, Height: 600},
		Rand:     r,
	}
}

func TestSpawnBubbleDepthScenarios(t *testing.T) {
	cfg := DefaultBubbleConfig()
	cfg.Size = Range{Min: 0.005, Max: 0.2}

	near := SpawnBubble(cfg, 1.0, Vec2{}, false)
	if near.Size != 0.2 {
		t.Errorf("depth 1 size = %v, want exactly 0.2", near.Size)
	}
	far := SpawnBubble(cfg, 0.0, Vec2{}, false)
	if far.Size != 0.005 {
		t.Errorf("depth 0 size = %v, want exactly 0.005", far.Size)
	}
	if far.Speed != cfg.Speed.Min || near.Speed != cfg.Speed.Max {
		t.Errorf("speeds = (%v, %v), want (%v, %v)", far.Speed, near.Speed, cfg.Speed.Min, cfg.Speed.Max)
	}
}

func TestSpawnBubbleDepthMonotonic(t *testing.T) {
	cfg := DefaultBubbleConfig()
	prev := SpawnBubble(cfg, 0, Vec2{}, false)
	for i := 1; i <= 50; i++ {
		b := SpawnBubble(cfg, float64(i)/50, Vec2{}, false)
		if b.Size < prev.Size || b.Speed < prev.Speed {
			t.Fatalf("depth %v: size/speed (%v, %v) below previous (%v, %v)",
				b.Depth, b.Size, b.Speed, prev.Size, prev.Speed)
		}
		prev = b
	}
}

func TestSampleDepthIsCubic(t *testing.T) {
	r := &fixedRand{vals: []float64{0.5}}
	assertNear(t, "depth", SampleDepth(r), 0.125)
}

func TestBubbleFieldFillsToCount(t *testing.T) {
	cfg := DefaultBubbleConfig()
	f := NewBubbleField(cfg)
	r := NewRand(7)

	for tick := 1; tick <= 500; tick++ {
		f.Update(bubbleFrame(tick, r, Input{}))
		if f.Len() != cfg.Count {
			t.Fatalf("tick %d: population = %d, want %d", tick, f.Len(), cfg.Count)
		}
	}
}

func TestBubbleFieldRisesBySpeed(t *testing.T) {
	cfg := DefaultBubbleConfig()
	cfg.Count = 1
	f := NewBubbleField(cfg)
	// depth u=0.5 → 0.125, x=0.3, filled draw=0.9
	f.Update(bubbleFrame(1, &fixedRand{vals: []float64{0.5, 0.3, 0.9}}, Input{}))

	b := f.Bubbles[0]
	assertNear(t, "x", b.Pos.X, 0.3)
	assertNear(t, "y", b.Pos.Y, cfg.SpawnY-b.Speed)
	if b.Filled {
		t.Error("0.9 >= FillChance should give an outline bubble")
	}

	y := b.Pos.Y
	f.Update(bubbleFrame(2, NewRand(1), Input{}))
	assertNear(t, "y after second tick", f.Bubbles[0].Pos.Y, y-b.Speed)
}

func TestBubbleFieldCullsAboveTop(t *testing.T) {
	cfg := DefaultBubbleConfig()
	cfg.Count = 2
	f := NewBubbleField(cfg)
	vp := Viewport{Width: 800, Height: 600}

	// Radius 0.1*800/2 = 40px. One bubble fully above the top, one still
	// touching it.
	gone := SpawnBubble(cfg, 0.5, Vec2{0.5, -41.0 / 600}, false)
	gone.Size = 0.1
	touching := SpawnBubble(cfg, 0.5, Vec2{0.2, -39.0 / 600}, false)
	touching.Size = 0.1
	f.Bubbles = append(f.Bubbles, gone, touching)

	rec := &EventRecorder{}
	fr := Frame{Tick: 5, Viewport: vp, Rand: NewRand(3), sink: rec}
	f.Update(fr)

	if f.Len() != 2 {
		t.Fatalf("population = %d, want 2", f.Len())
	}
	if rec.Count(EventBubbleCulled) != 1 {
		t.Errorf("culled = %d, want 1", rec.Count(EventBubbleCulled))
	}
	if rec.Count(EventBubbleSpawned) != 1 {
		t.Errorf("spawned = %d, want 1", rec.Count(EventBubbleSpawned))
	}
	assertNear(t, "survivor x", f.Bubbles[0].Pos.X, 0.2)
}

func TestBubbleFieldSpawnsAtCursorAfterMove(t *testing.T) {
	cfg := DefaultBubbleConfig()
	cfg.Count = 1
	f := NewBubbleField(cfg)

	// depth draw, x jitter 0.5 (→0), y jitter 0.5 (→0), fill draw
	r := &fixedRand{vals: []float64{0, 0.5, 0.5, 0.1}}
	in := Input{Pointer: Vec2{400, 300}, Moved: true}
	f.Update(bubbleFrame(10, r, in))

	b := f.Bubbles[0]
	assertNear(t, "x", b.Pos.X, 0.5)
	assertNear(t, "y", b.Pos.Y, 0.5-b.Speed)
	if !b.Filled {
		t.Error("0.1 < FillChance should give a filled bubble")
	}
}

func TestBubbleFieldCursorWindowExpires(t *testing.T) {
	cfg := DefaultBubbleConfig()
	f := NewBubbleField(cfg)

	if f.followsCursor(1) {
		t.Error("no move yet: spawns should start at the bottom")
	}
	f.Update(bubbleFrame(10, NewRand(1), Input{Pointer: Vec2{100, 100}, Moved: true}))
	if !f.followsCursor(10 + cfg.CursorWindow - 1) {
		t.Error("spawns should follow the cursor inside the window")
	}
	if f.followsCursor(10 + cfg.CursorWindow) {
		t.Error("spawns should return to the bottom after the window")
	}
}

func TestBubbleFieldDraw(t *testing.T) {
	cfg := DefaultBubbleConfig()
	f := NewBubbleField(cfg)
	f.Bubbles = []Bubble{
		{Pos: Vec2{0.5, 0.5}, Size: 0.1, Filled: true},
		{Pos: Vec2{0.25, 0.75}, Size: 0.05},
	}

	s := newRecordingSurface(800, 600)
	// Noise 1 maps to the full +15px shift.
	f.Draw(s, constNoise(1))

	if s.count("fill") != 1 || s.count("stroke") != 2 {
		t.Fatalf("fills = %d, strokes = %d; want 1 and 2", s.count("fill"), s.count("stroke"))
	}
	first := s.calls[0]
	assertNear(t, "x", first.x, 400+15)
	assertNear(t, "y", first.y, 300)
	assertNear(t, "diameter", first.w, 80)
	if first.blend != BlendScreen {
		t.Errorf("blend = %v, want screen", first.blend)
	}
}

func TestBubbleJitterRange(t *testing.T) {
	f := NewBubbleField(DefaultBubbleConfig())
	assertNear(t, "noise 0", f.Jitter(constNoise(0), Vec2{}), -15)
	assertNear(t, "noise 0.5", f.Jitter(constNoise(0.5), Vec2{}), 0)
	assertNear(t, "nil noise", f.Jitter(nil, Vec2{}), 0)
}
