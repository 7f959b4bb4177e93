package sketchbook

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API. Values are immutable; every method returns a new Vec2.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Lerp linearly interpolates from v towards o by t. t is not clamped, so
// overshooting easings carry the point past either end.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{lerp(v.X, o.X, t), lerp(v.Y, o.Y, t)}
}

// Viewport is the pixel size of the rendering surface. Normalized particle
// coordinates are multiplied by it at draw time.
type Viewport struct {
	Width, Height float64
}

// Center returns the middle of the viewport in pixels.
func (v Viewport) Center() Vec2 {
	return Vec2{v.Width / 2, v.Height / 2}
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// LerpColor blends from a to b by t, component-wise. t is clamped to [0, 1].
func LerpColor(a, b Color, t float64) Color {
	t = clamp01(t)
	return Color{
		R: lerp(a.R, b.R, t),
		G: lerp(a.G, b.G, t),
		B: lerp(a.B, b.B, t),
		A: lerp(a.A, b.A, t),
	}
}

// ToRGBA converts the color to a premultiplied color.RGBA.
func (c Color) ToRGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa". The leading '#' is optional.
func ParseHexColor(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return Color{}, fmt.Errorf("parse color %q: want 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

// MustHexColor is ParseHexColor for package-level defaults. It panics on a
// malformed literal.
func MustHexColor(s string) Color {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// UnmarshalYAML lets config files spell colors as hex strings.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("line %d: color must be a hex string: %w", value.Line, err)
	}
	parsed, err := ParseHexColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = parsed
	return nil
}

// Range is a general-purpose min/max range.
// Used by the particle sets for spawn-time sampling and depth mapping.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Random returns a random float64 in [Min, Max].
func (r Range) Random(rng Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// Map linearly maps t in [0, 1] onto the range. Map(0) is exactly Min and
// Map(1) is exactly Max.
func (r Range) Map(t float64) float64 {
	if t <= 0 {
		return r.Min
	}
	if t >= 1 {
		return r.Max
	}
	return lerp(r.Min, r.Max, t)
}

// BlendMode selects a compositing operation for subsequent draws on a Surface.
type BlendMode uint8

const (
	BlendNormal   BlendMode = iota // source-over (standard alpha blending)
	BlendAdd                       // additive / lighter
	BlendLightest                  // per-channel maximum of source and destination
	BlendScreen                    // screen (1 - (1-src)*(1-dst); only brightens)
)

// String returns the blend mode's config name.
func (b BlendMode) String() string {
	switch b {
	case BlendNormal:
		return "normal"
	case BlendAdd:
		return "add"
	case BlendLightest:
		return "lightest"
	case BlendScreen:
		return "screen"
	default:
		return "BlendMode(" + strconv.Itoa(int(b)) + ")"
	}
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return lerp(a, b, t)
}

func clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Radians converts degrees to radians. The sketches think in degrees per tick.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}
