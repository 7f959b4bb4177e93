package sketchbook

// Bubble is one rising particle. Pos is normalized to the viewport: x in
// [0, 1] across, y in [0, 1] down. Size is the diameter as a fraction of the
// viewport width; Speed is the rise per tick as a fraction of its height.
type Bubble struct {
	Pos    Vec2
	Depth  float64
	Size   float64
	Speed  float64
	Filled bool
}

// BubbleConfig controls how bubbles are spawned and drawn.
type BubbleConfig struct {
	// Count is the population kept alive after every tick.
	Count int `yaml:"count"`
	// Size maps depth 0 (far) to Min and depth 1 (near) to Max.
	Size Range `yaml:"size"`
	// Speed maps depth the same way as Size.
	Speed Range `yaml:"speed"`
	// CursorWindow is how many ticks after the last pointer move bubbles keep
	// spawning at the pointer.
	CursorWindow int `yaml:"cursorWindow"`
	// CursorJitter is the normalized spread around the pointer.
	CursorJitter float64 `yaml:"cursorJitter"`
	// SpawnY is where idle spawns start; values above 1 are below the viewport.
	SpawnY float64 `yaml:"spawnY"`
	// FillChance is the probability a bubble is drawn filled.
	FillChance float64 `yaml:"fillChance"`
	// JitterPixels is the maximum horizontal noise displacement at draw time.
	JitterPixels float64 `yaml:"jitterPixels"`
	// NoiseScale multiplies normalized positions before sampling noise.
	NoiseScale float64 `yaml:"noiseScale"`

	Color      Color `yaml:"color"`
	Background Color `yaml:"background"`
}

// DefaultBubbleConfig returns the stock bubble settings.
func DefaultBubbleConfig() BubbleConfig {
	return BubbleConfig{
		Count:        40,
		Size:         Range{Min: 0.005, Max: 0.2},
		Speed:        Range{Min: 0.005, Max: 0.02},
		CursorWindow: 120,
		CursorJitter: 0.05,
		SpawnY:       1.2,
		FillChance:   0.5,
		JitterPixels: 15,
		NoiseScale:   20,
		Color:        MustHexColor("#77acb5"),
		Background:   MustHexColor("#171d21"),
	}
}

// SampleDepth draws a depth in [0, 1) biased towards 0: most bubbles are far
// away, small and slow.
func SampleDepth(r Rand) float64 {
	u := r.Float64()
	return u * u * u
}

// SpawnBubble builds a bubble at pos whose size and speed both grow
// linearly with depth.
func SpawnBubble(cfg BubbleConfig, depth float64, pos Vec2, filled bool) Bubble {
	return Bubble{
		Pos:    pos,
		Depth:  depth,
		Size:   cfg.Size.Map(depth),
		Speed:  cfg.Speed.Map(depth),
		Filled: filled,
	}
}

// BubbleField keeps a constant population of bubbles rising through the
// viewport.
type BubbleField struct {
	Config  BubbleConfig
	Bubbles []Bubble

	lastMoved   int
	lastPointer Vec2
}

// NewBubbleField creates an empty field. The first Update fills it.
func NewBubbleField(cfg BubbleConfig) *BubbleField {
	return &BubbleField{
		Config:    cfg,
		Bubbles:   make([]Bubble, 0, cfg.Count),
		lastMoved: -cfg.CursorWindow,
	}
}

// Len returns the current population.
func (b *BubbleField) Len() int {
	return len(b.Bubbles)
}

// followsCursor reports whether spawns at tick should gather at the last
// pointer position seen moving.
func (b *BubbleField) followsCursor(tick int) bool {
	return tick-b.lastMoved < b.Config.CursorWindow
}

// Update culls bubbles that left the top, refills to Config.Count, then
// moves every bubble up by its speed.
func (b *BubbleField) Update(f Frame) {
	if f.Input.Moved {
		b.lastMoved = f.Tick
		b.lastPointer = f.Input.Pointer
	}

	b.cull(f)
	for len(b.Bubbles) < b.Config.Count {
		b.spawn(f)
	}

	for i := range b.Bubbles {
		b.Bubbles[i].Pos.Y -= b.Bubbles[i].Speed
	}
}

// cull removes bubbles whose whole circle is above the viewport, compacting
// in place.
func (b *BubbleField) cull(f Frame) {
	vp := f.Viewport
	kept := b.Bubbles[:0]
	for i, bb := range b.Bubbles {
		radius := bb.Size * vp.Width / 2
		if bb.Pos.Y*vp.Height+radius < 0 {
			f.Emit(Event{Type: EventBubbleCulled, Index: i, Pos: bb.Pos})
			continue
		}
		kept = append(kept, bb)
	}
	b.Bubbles = kept
}

func (b *BubbleField) spawn(f Frame) {
	cfg := b.Config
	depth := SampleDepth(f.Rand)

	var pos Vec2
	if b.followsCursor(f.Tick) && f.Viewport.Width > 0 && f.Viewport.Height > 0 {
		pos = Vec2{
			X: b.lastPointer.X/f.Viewport.Width + RandomIn(f.Rand, -cfg.CursorJitter, cfg.CursorJitter),
			Y: b.lastPointer.Y/f.Viewport.Height + RandomIn(f.Rand, -cfg.CursorJitter, cfg.CursorJitter),
		}
	} else {
		pos = Vec2{X: f.Rand.Float64(), Y: cfg.SpawnY}
	}

	filled := f.Rand.Float64() < cfg.FillChance
	b.Bubbles = append(b.Bubbles, SpawnBubble(cfg, depth, pos, filled))
	f.Emit(Event{Type: EventBubbleSpawned, Index: len(b.Bubbles) - 1, Pos: pos})
}

// Jitter returns the cosmetic horizontal displacement, in pixels, for a
// bubble at pos. It never feeds back into the simulation.
func (b *BubbleField) Jitter(noise Noise, pos Vec2) float64 {
	if noise == nil {
		return 0
	}
	n := noise.Eval2(pos.X*b.Config.NoiseScale, pos.Y*b.Config.NoiseScale)
	return Range{-b.Config.JitterPixels, b.Config.JitterPixels}.Map(n)
}

// Draw renders every bubble as a circle with screen blending.
func (b *BubbleField) Draw(s Surface, noise Noise) {
	vp := s.Size()
	s.SetBlend(BlendScreen)
	for _, bb := range b.Bubbles {
		x := bb.Pos.X*vp.Width + b.Jitter(noise, bb.Pos)
		y := bb.Pos.Y * vp.Height
		d := bb.Size * vp.Width
		if bb.Filled {
			s.FillEllipse(x, y, d, d, b.Config.Color)
		}
		s.StrokeEllipse(x, y, d, d, 1, b.Config.Color)
	}
}
