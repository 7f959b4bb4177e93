package sketchbook

// Bubbles is the rising bubble sketch: a BubbleField over a flat background.
type Bubbles struct {
	Field *BubbleField
	Noise Noise
}

// NewBubbles creates the sketch. noise may be nil to disable jitter.
func NewBubbles(cfg BubbleConfig, noise Noise) *Bubbles {
	return &Bubbles{Field: NewBubbleField(cfg), Noise: noise}
}

// Setup does nothing; every frame repaints the background.
func (b *Bubbles) Setup(Surface) {}

// Update advances the field.
func (b *Bubbles) Update(f Frame) {
	b.Field.Update(f)
}

// Draw clears to the background and draws the field.
func (b *Bubbles) Draw(s Surface, _ int) {
	s.SetBlend(BlendNormal)
	s.Clear(b.Field.Config.Background)
	b.Field.Draw(s, b.Noise)
	s.SetBlend(BlendNormal)
}
