package sketchbook

import (
	"sort"

	"github.com/tanema/gween/ease"
)

// EaseFunc reshapes linear progress in [0, 1] into a motion curve.
// Every EaseFunc returns exactly 0 at 0 and exactly 1 at 1; interior values
// may overshoot (elastic and back curves).
type EaseFunc func(p float64) float64

// FromTween adapts a gween easing to normalized progress. gween evaluates in
// float32, so the endpoints are pinned to keep round trips exact.
func FromTween(fn ease.TweenFunc) EaseFunc {
	return func(p float64) float64 {
		if p <= 0 {
			return 0
		}
		if p >= 1 {
			return 1
		}
		return float64(fn(float32(p), 0, 1, 1))
	}
}

var (
	// Linear is the identity curve.
	Linear = FromTween(ease.Linear)
	// ExpoOut shoots up fast and settles; the rising half of a jump.
	ExpoOut = FromTween(ease.OutExpo)
	// BounceOut lands with decaying bounces; the falling half of a jump.
	BounceOut = FromTween(ease.OutBounce)
	// ElasticInOut winds up, overshoots, and springs into place. Used for star
	// relocation.
	ElasticInOut = FromTween(ease.InOutElastic)
)

// JumpCurve is the accelerate-up, bounce-down profile of the character jump.
// It starts and ends at 0 and peaks at 1 halfway through.
func JumpCurve(p float64) float64 {
	if p < 0.5 {
		return ExpoOut(p * 2)
	}
	return 1 - BounceOut((p-0.5)*2)
}

var easeRegistry = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"quadIn":       ease.InQuad,
	"quadOut":      ease.OutQuad,
	"quadInOut":    ease.InOutQuad,
	"cubicIn":      ease.InCubic,
	"cubicOut":     ease.OutCubic,
	"cubicInOut":   ease.InOutCubic,
	"sineIn":       ease.InSine,
	"sineOut":      ease.OutSine,
	"sineInOut":    ease.InOutSine,
	"expoIn":       ease.InExpo,
	"expoOut":      ease.OutExpo,
	"expoInOut":    ease.InOutExpo,
	"elasticIn":    ease.InElastic,
	"elasticOut":   ease.OutElastic,
	"elasticInOut": ease.InOutElastic,
	"bounceIn":     ease.InBounce,
	"bounceOut":    ease.OutBounce,
	"bounceInOut":  ease.InOutBounce,
	"backIn":       ease.InBack,
	"backOut":      ease.OutBack,
	"backInOut":    ease.InOutBack,
}

// EaseByName looks up a curve by its config name ("expoOut", "elasticInOut",
// ...). The second result is false for unknown names.
func EaseByName(name string) (EaseFunc, bool) {
	fn, ok := easeRegistry[name]
	if !ok {
		return nil, false
	}
	return FromTween(fn), true
}

// EaseNames lists every registered curve name in sorted order.
func EaseNames() []string {
	names := make([]string, 0, len(easeRegistry))
	for n := range easeRegistry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
