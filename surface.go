package sketchbook

import "image"

// Surface is the immediate-mode drawing target a sketch renders onto.
// Transforms set with Translate and Rotate apply to every following draw
// until the matching Pop. Coordinates are pixels.
type Surface interface {
	// Size returns the surface dimensions in pixels.
	Size() Viewport
	// Clear fills the whole surface with c, ignoring transforms and blend.
	Clear(c Color)
	// SetBlend selects the compositing mode for subsequent draws.
	SetBlend(b BlendMode)

	Push()
	Pop()
	Translate(x, y float64)
	// Rotate rotates subsequent draws clockwise by rad radians.
	Rotate(rad float64)

	// FillEllipse draws a filled ellipse centered on (cx, cy) with the given
	// full width and height.
	FillEllipse(cx, cy, w, h float64, c Color)
	// StrokeEllipse outlines an ellipse with a stroke of the given width.
	StrokeEllipse(cx, cy, w, h, stroke float64, c Color)
	// Line draws a segment with square caps.
	Line(x0, y0, x1, y1, stroke float64, c Color)
	// DrawImage draws img with its top-left corner at (x, y), scaled to w×h.
	DrawImage(img image.Image, x, y, w, h float64)
}
