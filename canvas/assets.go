package canvas

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/sketchbook"
)

// LoadImage decodes a PNG or JPEG file into an ebiten image.
func LoadImage(path string) (*ebiten.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := ebitenutil.NewImageFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return img, nil
}

// loadOr loads path, or returns fallback when path is empty.
func loadOr(path string, fallback func() image.Image) (image.Image, error) {
	if path == "" {
		return fallback(), nil
	}
	return LoadImage(path)
}

// LoadCharacterArt resolves every sprite of the character scene. Empty paths
// fall back to placeholder art sized from cfg; a path that fails to load is
// an error.
func LoadCharacterArt(cfg sketchbook.CharacterConfig) (sketchbook.CharacterArt, error) {
	var art sketchbook.CharacterArt
	var err error

	star := max(int(cfg.Stars.Size), 1)
	art.Star, err = loadOr(cfg.Assets.Star, func() image.Image {
		return sketchbook.PlaceholderStar(star*2, sketchbook.MustHexColor("#ffe066"))
	})
	if err != nil {
		return art, fmt.Errorf("load star art: %w", err)
	}

	cw, ch := max(int(cfg.CharacterSize.X), 1), max(int(cfg.CharacterSize.Y), 1)
	art.Character, err = loadOr(cfg.Assets.Character, func() image.Image {
		return sketchbook.PlaceholderCharacter(cw, ch, sketchbook.MustHexColor("#f4f1e8"))
	})
	if err != nil {
		return art, fmt.Errorf("load character art: %w", err)
	}

	pw, ph := max(int(cfg.PlanetSize.X), 1), max(int(cfg.PlanetSize.Y), 1)
	art.Planet, err = loadOr(cfg.Assets.Planet, func() image.Image {
		return sketchbook.PlaceholderPlanet(pw, ph, cfg.GroundColor)
	})
	if err != nil {
		return art, fmt.Errorf("load planet art: %w", err)
	}
	return art, nil
}
