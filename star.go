package sketchbook

import "image"

// StarPhase is the state of a star's relocation animation.
type StarPhase uint8

const (
	StarResting       StarPhase = iota // sitting at Pos
	StarTransitioning                  // flying from Transition.From to Transition.To
)

// StarTransition is an in-flight relocation. It exists exactly while the star
// is moving; Start is never later than the tick it is evaluated at.
type StarTransition struct {
	From  Vec2
	To    Vec2
	Start int
}

// Star is a fixed-population particle that rests, occasionally flies to a new
// spot, and spins at a constant rate for its whole life.
type Star struct {
	// Pos is the resting position, normalized to the viewport.
	Pos Vec2
	// Transition is non-nil while the star is moving.
	Transition *StarTransition
	// RotationSpeed is in degrees per tick.
	RotationSpeed float64
}

// Phase reports whether the star is resting or moving.
func (s *Star) Phase() StarPhase {
	if s.Transition != nil {
		return StarTransitioning
	}
	return StarResting
}

// StarView is what a star looks like at a given tick.
type StarView struct {
	// Pos is the displayed, eased position.
	Pos Vec2
	// Progress is the raw (unshaped) transition progress; 0 when resting.
	Progress float64
	// TrailAlpha fades linearly from 1 to 0 over the transition.
	TrailAlpha float64
	Moving     bool
}

// View computes the displayed position at tick for a transition of the given
// duration shaped by curve.
func (s *Star) View(tick, duration int, curve EaseFunc) StarView {
	if s.Transition == nil {
		return StarView{Pos: s.Pos}
	}
	raw := Progress(tick, s.Transition.Start, duration)
	return StarView{
		Pos:        s.Transition.From.Lerp(s.Transition.To, curve(raw)),
		Progress:   raw,
		TrailAlpha: 1 - raw,
		Moving:     true,
	}
}

// Angle returns the accumulated rotation in degrees at tick. Rotation never
// depends on the transition state.
func (s *Star) Angle(tick int) float64 {
	return float64(tick) * s.RotationSpeed
}

// StarConfig controls the star field.
type StarConfig struct {
	Count         int     `yaml:"count"`
	MoveDuration  int     `yaml:"moveDuration"`
	MoveChance    float64 `yaml:"moveChance"`
	RotationSpeed Range   `yaml:"rotationSpeed"`
	Curve         string  `yaml:"curve"`
	// Size is the drawn star width and height in pixels.
	Size       float64 `yaml:"size"`
	TrailWidth float64 `yaml:"trailWidth"`
	TrailColor Color   `yaml:"trailColor"`
}

// DefaultStarConfig returns the star settings of the character scene.
func DefaultStarConfig() StarConfig {
	return StarConfig{
		Count:         12,
		MoveDuration:  100,
		MoveChance:    0.001,
		RotationSpeed: Range{Min: -2, Max: 2},
		Curve:         "elasticInOut",
		Size:          20,
		TrailWidth:    10,
		TrailColor:    MustHexColor("#ffaa2b"),
	}
}

// StarField is a fixed set of stars created once.
type StarField struct {
	Config StarConfig
	Stars  []Star

	curve EaseFunc
}

// NewStarField creates Config.Count resting stars at uniform positions.
// Unknown curve names fall back to ElasticInOut.
func NewStarField(cfg StarConfig, r Rand) *StarField {
	curve, ok := EaseByName(cfg.Curve)
	if !ok {
		curve = ElasticInOut
	}
	f := &StarField{
		Config: cfg,
		Stars:  make([]Star, cfg.Count),
		curve:  curve,
	}
	for i := range f.Stars {
		f.Stars[i] = Star{
			Pos:           Vec2{r.Float64(), r.Float64()},
			RotationSpeed: cfg.RotationSpeed.Random(r),
		}
	}
	return f
}

// View returns star i as displayed at tick.
func (f *StarField) View(i, tick int) StarView {
	return f.Stars[i].View(tick, f.Config.MoveDuration, f.curve)
}

// Update lands finished transitions, then gives every resting star an
// independent MoveChance of departing for a random target this tick.
func (f *StarField) Update(fr Frame) {
	for i := range f.Stars {
		st := &f.Stars[i]
		if st.Transition != nil && Progress(fr.Tick, st.Transition.Start, f.Config.MoveDuration) >= 1 {
			st.Pos = st.Transition.To
			st.Transition = nil
			fr.Emit(Event{Type: EventStarArrived, Index: i, Pos: st.Pos})
		}
	}
	for i := range f.Stars {
		st := &f.Stars[i]
		if st.Transition != nil || fr.Rand.Float64() >= f.Config.MoveChance {
			continue
		}
		st.Transition = &StarTransition{
			From:  st.Pos,
			To:    Vec2{fr.Rand.Float64(), fr.Rand.Float64()},
			Start: fr.Tick,
		}
		fr.Emit(Event{Type: EventStarDeparted, Index: i, Pos: st.Transition.To})
	}
}

// Draw renders trails for moving stars and every star sprite, spun by its
// accumulated angle.
func (f *StarField) Draw(s Surface, tick int, img image.Image) {
	vp := s.Size()
	half := f.Config.Size / 2
	for i := range f.Stars {
		st := &f.Stars[i]
		v := f.View(i, tick)
		x, y := v.Pos.X*vp.Width, v.Pos.Y*vp.Height
		if v.Moving && v.TrailAlpha > 0 {
			from := st.Transition.From
			s.Line(from.X*vp.Width, from.Y*vp.Height, x, y,
				f.Config.TrailWidth, f.Config.TrailColor.WithAlpha(v.TrailAlpha))
		}
		s.Push()
		s.Translate(x, y)
		s.Rotate(Radians(st.Angle(tick)))
		s.DrawImage(img, -half, -half, f.Config.Size, f.Config.Size)
		s.Pop()
	}
}
