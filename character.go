package sketchbook

import "image"

// Planet variants for the character sketch.
const (
	PlanetImage  = "image"  // draw the planet sprite
	PlanetCircle = "circle" // draw a plain ground circle with a border
)

// AssetPaths names the image files a sketch loads before its first frame.
// An empty path selects the built-in placeholder art.
type AssetPaths struct {
	Character string `yaml:"character"`
	Star      string `yaml:"star"`
	Planet    string `yaml:"planet"`
}

// CharacterConfig controls the jumping character scene.
type CharacterConfig struct {
	JumpHeight   float64 `yaml:"jumpHeight"`
	JumpDuration int     `yaml:"jumpDuration"`
	// Radius is the distance from the planet center to the character's feet.
	Radius float64 `yaml:"radius"`
	// Spin is the world rotation per tick in degrees.
	Spin float64 `yaml:"spin"`
	// CharacterSize is the drawn sprite size in pixels.
	CharacterSize Vec2 `yaml:"characterSize"`

	Planet string `yaml:"planet"`
	// PlanetOffset, PlanetSize, and PlanetRotation place the planet sprite
	// relative to the rotating world origin.
	PlanetOffset   Vec2    `yaml:"planetOffset"`
	PlanetSize     Vec2    `yaml:"planetSize"`
	PlanetRotation float64 `yaml:"planetRotation"`
	// GroundDiameter, GroundColor, BorderColor, and BorderWidth describe the
	// circle variant.
	GroundDiameter float64 `yaml:"groundDiameter"`
	GroundColor    Color   `yaml:"groundColor"`
	BorderColor    Color   `yaml:"borderColor"`
	BorderWidth    float64 `yaml:"borderWidth"`

	Background Color      `yaml:"background"`
	Stars      StarConfig `yaml:"stars"`
	Assets     AssetPaths `yaml:"assets"`
}

// DefaultCharacterConfig returns the planet-sprite variant of the scene.
func DefaultCharacterConfig() CharacterConfig {
	const planetScale, charaScale = 0.2, 0.4
	return CharacterConfig{
		JumpHeight:     150,
		JumpDuration:   120,
		Radius:         55,
		Spin:           1,
		CharacterSize:  Vec2{258 * charaScale, 358 * charaScale},
		Planet:         PlanetImage,
		PlanetOffset:   Vec2{-304 * planetScale, -532 * planetScale},
		PlanetSize:     Vec2{760 * planetScale, 840 * planetScale},
		PlanetRotation: 70,
		GroundDiameter: 100,
		GroundColor:    MustHexColor("#64a7b3"),
		BorderColor:    MustHexColor("#787161"),
		BorderWidth:    3,
		Background:     MustHexColor("#133042"),
		Stars:          DefaultStarConfig(),
	}
}

// CircleCharacterConfig is the ground-circle variant: a lower, quicker jump
// and a few more stars.
func CircleCharacterConfig() CharacterConfig {
	cfg := DefaultCharacterConfig()
	cfg.Planet = PlanetCircle
	cfg.JumpHeight = 100
	cfg.JumpDuration = 80
	cfg.Radius = 50
	cfg.Stars.Count = 15
	cfg.Stars.TrailColor = MustHexColor("#ffc62b")
	return cfg
}

// CharacterArt holds the decoded sprites for the scene.
type CharacterArt struct {
	Character image.Image
	Star      image.Image
	Planet    image.Image
}

// Character is the jumping character scene: stars in screen space, then a
// rotating planet with the character standing on top.
type Character struct {
	Config CharacterConfig
	Jump   *JumpTimer
	Stars  *StarField
	Art    CharacterArt
}

// NewCharacter creates the scene and its star population.
func NewCharacter(cfg CharacterConfig, art CharacterArt, r Rand) *Character {
	return &Character{
		Config: cfg,
		Jump:   NewJumpTimer(cfg.JumpDuration, cfg.JumpHeight),
		Stars:  NewStarField(cfg.Stars, r),
		Art:    art,
	}
}

// Setup does nothing; every frame repaints the background.
func (c *Character) Setup(Surface) {}

// Update applies a pending click, moves the stars, and advances the jump.
func (c *Character) Update(f Frame) {
	if f.Input.Clicked && c.Jump.Click(f.Tick) {
		f.Emit(Event{Type: EventJumpStarted})
	}
	c.Stars.Update(f)
	if _, landed := c.Jump.Update(f.Tick); landed {
		f.Emit(Event{Type: EventJumpLanded})
	}
}

// Draw renders the scene at tick.
func (c *Character) Draw(s Surface, tick int) {
	cfg := c.Config
	s.SetBlend(BlendNormal)
	s.Clear(cfg.Background)
	c.Stars.Draw(s, tick, c.Art.Star)

	center := s.Size().Center()
	s.Push()
	s.Translate(center.X, center.Y)
	s.Rotate(Radians(float64(tick) * cfg.Spin))
	c.drawPlanet(s)

	jumpY := c.Jump.Offset(tick)
	w, h := cfg.CharacterSize.X, cfg.CharacterSize.Y
	s.DrawImage(c.Art.Character, -w/2, -h-cfg.Radius-jumpY, w, h)
	s.Pop()
}

func (c *Character) drawPlanet(s Surface) {
	cfg := c.Config
	if cfg.Planet == PlanetCircle {
		d := cfg.GroundDiameter
		s.FillEllipse(0, 0, d, d, cfg.GroundColor)
		s.StrokeEllipse(0, 0, d, d, cfg.BorderWidth, cfg.BorderColor)
		return
	}
	s.Push()
	s.Rotate(Radians(cfg.PlanetRotation))
	s.DrawImage(c.Art.Planet, cfg.PlanetOffset.X, cfg.PlanetOffset.Y, cfg.PlanetSize.X, cfg.PlanetSize.Y)
	s.Pop()
}
