package sketchbook

// LineArtConfig controls the line-art sketch.
type LineArtConfig struct {
	// From is the starting fill; the fill fades towards To.
	From Color `yaml:"from"`
	To   Color `yaml:"to"`
	// Decay multiplies the remaining share of From every tick.
	Decay float64 `yaml:"decay"`
	// Spin is the rotation per tick in degrees.
	Spin       float64 `yaml:"spin"`
	Background Color   `yaml:"background"`
}

// DefaultLineArtConfig returns the stock line-art settings.
func DefaultLineArtConfig() LineArtConfig {
	return LineArtConfig{
		From:       MustHexColor("#fffbe3"),
		To:         MustHexColor("#24495c"),
		Decay:      0.995,
		Spin:       13,
		Background: MustHexColor("#131821"),
	}
}

// LineArt draws one growing, spinning ellipse per tick onto a canvas that is
// never cleared, so the picture is the sum of every frame. Overlaps keep the
// lightest channel.
type LineArt struct {
	Config LineArtConfig
	// Amount is the remaining share of Config.From in the fill, starting at 1.
	Amount float64

	fill Color
}

// NewLineArt creates the sketch with a full-strength starting color.
func NewLineArt(cfg LineArtConfig) *LineArt {
	return &LineArt{Config: cfg, Amount: 1, fill: cfg.From}
}

// Setup paints the background once.
func (l *LineArt) Setup(s Surface) {
	s.SetBlend(BlendNormal)
	s.Clear(l.Config.Background)
}

// Update fixes this tick's fill, then decays Amount for the next one.
func (l *LineArt) Update(f Frame) {
	l.fill = LerpColor(l.Config.To, l.Config.From, l.Amount)
	l.Amount *= l.Config.Decay
}

// Fill returns the color the current tick draws with.
func (l *LineArt) Fill() Color {
	return l.fill
}

// Draw adds this tick's ellipse.
func (l *LineArt) Draw(s Surface, tick int) {
	c := s.Size().Center()
	t := float64(tick)
	s.SetBlend(BlendLightest)
	s.Push()
	s.Translate(c.X, c.Y)
	s.Rotate(Radians(t * l.Config.Spin))
	s.FillEllipse(t/2, 0, t, t/3, l.fill)
	s.Pop()
}
