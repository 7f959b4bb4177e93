package sketchbook

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// WindowConfig describes the host window.
type WindowConfig struct {
	Title   string `yaml:"title"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	ShowFPS bool   `yaml:"showFPS"`
	// TPS is the tick rate; 0 keeps the host default of 60.
	TPS int `yaml:"tps"`
}

// Config is the YAML file every example reads. Missing keys keep their
// defaults.
type Config struct {
	Window WindowConfig `yaml:"window"`
	// Seed feeds the random source and the noise field. 0 picks a
	// time-based seed at startup.
	Seed  uint64 `yaml:"seed"`
	Debug bool   `yaml:"debug"`
	// Script is an optional path to a JSON input script.
	Script        string `yaml:"script"`
	ScreenshotDir string `yaml:"screenshotDir"`

	LineArt   LineArtConfig   `yaml:"lineart"`
	Bubbles   BubbleConfig    `yaml:"bubbles"`
	Character CharacterConfig `yaml:"character"`
}

// DefaultConfig returns the stock settings for every sketch.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:  "sketchbook",
			Width:  960,
			Height: 720,
		},
		ScreenshotDir: "screenshots",
		LineArt:       DefaultLineArtConfig(),
		Bubbles:       DefaultBubbleConfig(),
		Character:     DefaultCharacterConfig(),
	}
}

// LoadConfig reads a YAML file over DefaultConfig and validates the result.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseConfig(data)
}

// LoadConfigOrDefault is LoadConfig, except an empty path returns
// DefaultConfig.
func LoadConfigOrDefault(path string) (*Config, error) {
	if path == "" {
		cfg := DefaultConfig()
		return &cfg, nil
	}
	return LoadConfig(path)
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// ResolveSeed returns Seed, or a seed taken from the wall clock when Seed is 0.
func (c *Config) ResolveSeed() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}

// Validate checks every section. All problems are reported together.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.TPS < 0 {
		errs = append(errs, fmt.Errorf("window.tps must be >= 0, got %d", c.Window.TPS))
	}
	errs = append(errs, validateLineArt(&c.LineArt)...)
	errs = append(errs, validateBubbles(&c.Bubbles)...)
	errs = append(errs, validateCharacter(&c.Character)...)
	return errors.Join(errs...)
}

func validateRange(name string, r Range) error {
	if r.Min > r.Max {
		return fmt.Errorf("%s: min %v exceeds max %v", name, r.Min, r.Max)
	}
	return nil
}

func validateLineArt(c *LineArtConfig) []error {
	var errs []error
	if c.Decay <= 0 || c.Decay > 1 {
		errs = append(errs, fmt.Errorf("lineart.decay must be in (0, 1], got %v", c.Decay))
	}
	return errs
}

func validateBubbles(c *BubbleConfig) []error {
	var errs []error
	if c.Count < 0 {
		errs = append(errs, fmt.Errorf("bubbles.count must be >= 0, got %d", c.Count))
	}
	if err := validateRange("bubbles.size", c.Size); err != nil {
		errs = append(errs, err)
	}
	if err := validateRange("bubbles.speed", c.Speed); err != nil {
		errs = append(errs, err)
	}
	if c.Speed.Min <= 0 {
		errs = append(errs, fmt.Errorf("bubbles.speed.min must be > 0 so every bubble leaves the screen, got %v", c.Speed.Min))
	}
	if c.CursorWindow < 0 {
		errs = append(errs, fmt.Errorf("bubbles.cursorWindow must be >= 0, got %d", c.CursorWindow))
	}
	if c.FillChance < 0 || c.FillChance > 1 {
		errs = append(errs, fmt.Errorf("bubbles.fillChance must be in [0, 1], got %v", c.FillChance))
	}
	return errs
}

func validateCharacter(c *CharacterConfig) []error {
	var errs []error
	if c.JumpDuration <= 0 {
		errs = append(errs, fmt.Errorf("character.jumpDuration must be > 0, got %d", c.JumpDuration))
	}
	if c.Planet != PlanetImage && c.Planet != PlanetCircle {
		errs = append(errs, fmt.Errorf("character.planet must be %q or %q, got %q", PlanetImage, PlanetCircle, c.Planet))
	}
	s := c.Stars
	if s.Count < 0 {
		errs = append(errs, fmt.Errorf("character.stars.count must be >= 0, got %d", s.Count))
	}
	if s.MoveDuration <= 0 {
		errs = append(errs, fmt.Errorf("character.stars.moveDuration must be > 0, got %d", s.MoveDuration))
	}
	if s.MoveChance < 0 || s.MoveChance > 1 {
		errs = append(errs, fmt.Errorf("character.stars.moveChance must be in [0, 1], got %v", s.MoveChance))
	}
	if err := validateRange("character.stars.rotationSpeed", s.RotationSpeed); err != nil {
		errs = append(errs, err)
	}
	if _, ok := EaseByName(s.Curve); !ok {
		errs = append(errs, fmt.Errorf("character.stars.curve: unknown curve %q", s.Curve))
	}
	return errs
}
