package sketchbook

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	circle := DefaultConfig()
	circle.Character = CircleCharacterConfig()
	if err := circle.Validate(); err != nil {
		t.Fatalf("circle config invalid: %v", err)
	}
}

func TestParseConfigOverridesDefaults(t *testing.T) {
	data := []byte(`
window:
  title: bubbles
  width: 400
seed: 42
bubbles:
  count: 10
  speed: {min: 0.01, max: 0.03}
  color: "#ff0000"
character:
  planet: circle
  stars:
    curve: backOut
`)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Window.Title != "bubbles" || cfg.Window.Width != 400 {
		t.Errorf("window = %+v", cfg.Window)
	}
	if cfg.Window.Height != 720 {
		t.Errorf("height = %d, want default 720", cfg.Window.Height)
	}
	if cfg.Seed != 42 {
		t.Errorf("seed = %d", cfg.Seed)
	}
	if cfg.Bubbles.Count != 10 || cfg.Bubbles.Speed != (Range{0.01, 0.03}) {
		t.Errorf("bubbles = %+v", cfg.Bubbles)
	}
	if cfg.Bubbles.Color != (Color{1, 0, 0, 1}) {
		t.Errorf("color = %+v", cfg.Bubbles.Color)
	}
	if cfg.Bubbles.Size != DefaultBubbleConfig().Size {
		t.Errorf("size should keep its default, got %+v", cfg.Bubbles.Size)
	}
	if cfg.Character.Planet != PlanetCircle || cfg.Character.Stars.Curve != "backOut" {
		t.Errorf("character = %+v", cfg.Character)
	}
	if cfg.Character.Stars.Count != 12 {
		t.Errorf("stars.count = %d, want default 12", cfg.Character.Stars.Count)
	}
}

func TestParseConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"bad yaml", "window: [", "parse"},
		{"bad color", `lineart: {from: "#12"}`, "color"},
		{"zero width", "window: {width: 0}", "window size"},
		{"decay above one", "lineart: {decay: 1.5}", "lineart.decay"},
		{"still bubbles", "bubbles: {speed: {min: 0, max: 0.02}}", "bubbles.speed.min"},
		{"inverted range", "bubbles: {size: {min: 0.3, max: 0.1}}", "bubbles.size"},
		{"fill chance", "bubbles: {fillChance: 2}", "fillChance"},
		{"planet", "character: {planet: moon}", "character.planet"},
		{"curve", "character: {stars: {curve: wobble}}", "wobble"},
		{"jump duration", "character: {jumpDuration: 0}", "jumpDuration"},
		{"move chance", "character: {stars: {moveChance: -1}}", "moveChance"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Window.Width = 0
	cfg.LineArt.Decay = 0
	cfg.Character.Planet = "moon"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"window size", "lineart.decay", "character.planet"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %q", err, want)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sketchbook.yaml")
	if err := os.WriteFile(path, []byte("seed: 7\nlineart: {spin: 5}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Seed != 7 || cfg.LineArt.Spin != 5 {
		t.Errorf("cfg = %+v", cfg)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestResolveSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 99
	if cfg.ResolveSeed() != 99 {
		t.Error("explicit seed should be kept")
	}
	cfg.Seed = 0
	if cfg.ResolveSeed() == 0 {
		t.Error("zero seed should be replaced")
	}
}
