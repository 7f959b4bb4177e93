package canvas

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/sketchbook"
)

// whitePixel is the 1x1 source image every shape samples.
var whitePixel *ebiten.Image

func init() {
	whitePixel = ebiten.NewImage(1, 1)
	whitePixel.Fill(sketchbook.ColorWhite.ToRGBA())
}

// Canvas implements sketchbook.Surface on a persistent offscreen layer.
// Shapes are queued and flushed in one DrawTriangles call until the blend
// mode changes or an image is drawn, which keeps draw order intact.
type Canvas struct {
	layer *ebiten.Image
	blend sketchbook.BlendMode
	xf    transformStack
	mesh  mesh

	images map[image.Image]*ebiten.Image

	// background is the last Clear color; a grown layer starts with it.
	background    sketchbook.Color
	hasBackground bool
}

var _ sketchbook.Surface = (*Canvas)(nil)

// New creates a canvas of the given pixel size.
func New(width, height int) *Canvas {
	return &Canvas{
		layer:  ebiten.NewImage(width, height),
		xf:     newTransformStack(),
		images: make(map[image.Image]*ebiten.Image),
	}
}

// Layer returns the offscreen image holding everything drawn so far.
// Pending shapes are flushed first.
func (c *Canvas) Layer() *ebiten.Image {
	c.flush()
	return c.layer
}

// Resize replaces the layer when the window size changes. The new layer is
// filled with the last Clear color and the old content is copied to its
// top-left corner, so accumulating sketches survive a resize.
func (c *Canvas) Resize(width, height int) {
	b := c.layer.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return
	}
	c.flush()
	next := ebiten.NewImage(width, height)
	if c.hasBackground {
		next.Fill(c.background.ToRGBA())
	}
	next.DrawImage(c.layer, nil)
	c.layer.Deallocate()
	c.layer = next
}

// BeginFrame resets per-frame state: transforms go back to identity and the
// blend mode to normal.
func (c *Canvas) BeginFrame() {
	c.xf.reset()
	c.blend = sketchbook.BlendNormal
	c.mesh.reset()
}

// Size returns the layer size in pixels.
func (c *Canvas) Size() sketchbook.Viewport {
	b := c.layer.Bounds()
	return sketchbook.Viewport{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// Clear fills the whole layer, dropping any queued shapes.
func (c *Canvas) Clear(col sketchbook.Color) {
	c.mesh.reset()
	c.background, c.hasBackground = col, true
	c.layer.Fill(col.ToRGBA())
}

// SetBlend selects the blend mode for subsequent draws.
func (c *Canvas) SetBlend(b sketchbook.BlendMode) {
	if b == c.blend {
		return
	}
	c.flush()
	c.blend = b
}

// Blend returns the current blend mode.
func (c *Canvas) Blend() sketchbook.BlendMode {
	return c.blend
}

func (c *Canvas) Push()                  { c.xf.push() }
func (c *Canvas) Pop()                   { c.xf.pop() }
func (c *Canvas) Translate(x, y float64) { c.xf.translate(x, y) }
func (c *Canvas) Rotate(rad float64)     { c.xf.rotate(rad) }

// FillEllipse queues a filled ellipse.
func (c *Canvas) FillEllipse(cx, cy, w, h float64, col sketchbook.Color) {
	c.reserve(ellipseSegments(w, h) + 1)
	c.mesh.fillEllipse(c.xf.cur, cx, cy, w, h, col)
}

// StrokeEllipse queues an ellipse outline.
func (c *Canvas) StrokeEllipse(cx, cy, w, h, stroke float64, col sketchbook.Color) {
	if stroke <= 0 {
		return
	}
	c.reserve(2 * ellipseSegments(w, h))
	c.mesh.strokeEllipse(c.xf.cur, cx, cy, w, h, stroke, col)
}

// Line queues a thick segment.
func (c *Canvas) Line(x0, y0, x1, y1, stroke float64, col sketchbook.Color) {
	if stroke <= 0 {
		return
	}
	c.reserve(4)
	c.mesh.line(c.xf.cur, x0, y0, x1, y1, stroke, col)
}

// DrawImage draws img scaled to w×h at (x, y) under the current transform.
// A nil image draws nothing.
func (c *Canvas) DrawImage(img image.Image, x, y, w, h float64) {
	if img == nil {
		return
	}
	src := c.ebitenImage(img)
	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	c.flush()

	var op ebiten.DrawImageOptions
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(c.xf.cur.geoM())
	op.Blend = ebitenBlend(c.blend)
	op.Filter = ebiten.FilterLinear
	c.layer.DrawImage(src, &op)
}

// ebitenImage returns img as an *ebiten.Image, uploading and caching other
// image.Image values on first use.
func (c *Canvas) ebitenImage(img image.Image) *ebiten.Image {
	if e, ok := img.(*ebiten.Image); ok {
		return e
	}
	if e, ok := c.images[img]; ok {
		return e
	}
	e := ebiten.NewImageFromImage(img)
	c.images[img] = e
	return e
}

// reserve flushes when n more vertices would overflow uint16 indices.
func (c *Canvas) reserve(n int) {
	if len(c.mesh.verts)+n > 1<<16-1 {
		c.flush()
	}
}

// flush submits queued shapes with the current blend mode.
func (c *Canvas) flush() {
	if len(c.mesh.inds) == 0 {
		c.mesh.reset()
		return
	}
	var op ebiten.DrawTrianglesOptions
	op.Blend = ebitenBlend(c.blend)
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	op.AntiAlias = true
	c.layer.DrawTriangles(c.mesh.verts, c.mesh.inds, whitePixel, &op)
	c.mesh.reset()
}
