// Package canvas hosts sketchbook sketches on [Ebitengine].
//
// [Canvas] implements [sketchbook.Surface] on a persistent offscreen layer,
// so sketches that never clear (line art) accumulate across frames while
// sketches that clear every frame behave as usual. [Run] opens a window and
// drives a [sketchbook.Runner] once per tick:
//
//	runner := sketchbook.NewRunner(sketch, sketchbook.NewRand(seed))
//	if err := canvas.Run(runner, canvas.RunConfig{
//		Title: "Bubbles", Width: 960, Height: 720,
//	}); err != nil {
//		log.Fatal(err)
//	}
//
// Shapes are triangulated on the CPU and drawn with DrawTriangles from a
// shared white pixel; images go through DrawImage with the current
// transform. Both honor the blend mode selected with SetBlend.
//
// [Ebitengine]: https://ebitengine.org
package canvas
