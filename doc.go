// Package sketchbook is a tick-driven animation model for small generative
// sketches, hosted on [Ebitengine] by the canvas subpackage.
//
// Three sketches ship with the package:
//
//   - [LineArt] draws one growing, spinning ellipse per tick onto a canvas
//     that is never cleared, fading its fill from one color to another.
//   - [Bubbles] keeps a population of outlined circles rising from below the
//     viewport. Depth sets each bubble's size and speed; moving the pointer
//     makes new bubbles gather at the cursor for a while.
//   - [Character] stands a figure on a spinning planet under rotating stars.
//     A click starts an eased jump; stars occasionally fly to a new spot.
//
// # Quick start
//
// A [Runner] owns the clock and drives one sketch. [canvas.Launch] opens a
// window and steps the runner once per tick:
//
//	cfg := sketchbook.DefaultConfig()
//	sketch := sketchbook.NewBubbles(cfg.Bubbles, sketchbook.NewNoise(1))
//	runner := sketchbook.NewRunner(sketch, sketchbook.NewRand(1))
//	if err := canvas.Launch(runner, &cfg); err != nil {
//		log.Fatal(err)
//	}
//
// # Update and draw
//
// Each tick the runner advances the [Clock], merges polled and injected
// [Input], and calls [Sketch.Update] with a [Frame]. Update mutates sketch
// state and never draws. [Sketch.Draw] then renders that state onto a
// [Surface] and never mutates it, so tests can drive sketches headless with
// any Surface and a seeded [Rand].
//
// Particle positions are normalized to the viewport and scaled to pixels only
// at draw time. Timed motion is expressed as a start tick plus a duration;
// [Progress] turns that into a clamped fraction and an [EaseFunc] (backed by
// [gween]) shapes it.
//
// # Configuration
//
// [LoadConfig] reads a YAML file over [DefaultConfig]. Missing keys keep
// their defaults and colors are hex strings:
//
//	seed: 7
//	bubbles:
//	  count: 60
//	  color: "#77acb5"
//
// # Scripts and events
//
// [LoadScript] parses a JSON list of click, move, sweep, wait, and screenshot
// steps for reproducible captures. Lifecycle [Event] values (bubble spawn and
// cull, star departure and arrival, jump start and landing) go to an optional
// [EventSink]; the ecs subpackage forwards them into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
// [canvas.Launch]: https://pkg.go.dev/github.com/phanxgames/sketchbook/canvas#Launch
package sketchbook
