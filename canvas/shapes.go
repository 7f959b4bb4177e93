package canvas

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/sketchbook"
)

const (
	minEllipseSegments = 16
	maxEllipseSegments = 256
)

// ellipseSegments picks a segment count so edges stay about 4px long.
func ellipseSegments(w, h float64) int {
	r := math.Max(math.Abs(w), math.Abs(h)) / 2
	n := int(2 * math.Pi * r / 4)
	return max(minEllipseSegments, min(n, maxEllipseSegments))
}

// mesh accumulates untextured triangles in screen space.
type mesh struct {
	verts []ebiten.Vertex
	inds  []uint16
}

func (m *mesh) reset() {
	m.verts = m.verts[:0]
	m.inds = m.inds[:0]
}

// vertex appends a transformed vertex sampling the white pixel center and
// returns its index.
func (m *mesh) vertex(t affine, x, y float64, c sketchbook.Color) uint16 {
	sx, sy := t.apply(x, y)
	a := float32(c.A)
	m.verts = append(m.verts, ebiten.Vertex{
		DstX:   float32(sx),
		DstY:   float32(sy),
		SrcX:   0.5,
		SrcY:   0.5,
		ColorR: float32(c.R) * a,
		ColorG: float32(c.G) * a,
		ColorB: float32(c.B) * a,
		ColorA: a,
	})
	return uint16(len(m.verts) - 1)
}

// fillEllipse fan-triangulates an ellipse: hub at the center, rim vertices
// around it.
func (m *mesh) fillEllipse(t affine, cx, cy, w, h float64, c sketchbook.Color) {
	n := ellipseSegments(w, h)
	rx, ry := w/2, h/2
	hub := m.vertex(t, cx, cy, c)
	first := uint16(len(m.verts))
	for i := 0; i < n; i++ {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		m.vertex(t, cx+rx*cos, cy+ry*sin, c)
	}
	for i := 0; i < n; i++ {
		next := uint16((i + 1) % n)
		m.inds = append(m.inds, hub, first+uint16(i), first+next)
	}
}

// strokeEllipse builds a ring of quads straddling the ellipse outline.
func (m *mesh) strokeEllipse(t affine, cx, cy, w, h, stroke float64, c sketchbook.Color) {
	n := ellipseSegments(w, h)
	half := stroke / 2
	orx, ory := w/2+half, h/2+half
	irx, iry := math.Max(w/2-half, 0), math.Max(h/2-half, 0)
	first := uint16(len(m.verts))
	for i := 0; i < n; i++ {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		m.vertex(t, cx+orx*cos, cy+ory*sin, c)
		m.vertex(t, cx+irx*cos, cy+iry*sin, c)
	}
	for i := 0; i < n; i++ {
		o0 := first + uint16(2*i)
		i0 := o0 + 1
		o1 := first + uint16(2*((i+1)%n))
		i1 := o1 + 1
		m.inds = append(m.inds, o0, i0, o1, o1, i0, i1)
	}
}

// line builds one quad of the given width from (x0, y0) to (x1, y1), extended
// by half the width at both ends for square caps.
func (m *mesh) line(t affine, x0, y0, x1, y1, stroke float64, c sketchbook.Color) {
	ux, uy := direction(x0, y0, x1, y1)
	half := stroke / 2
	px, py := -uy*half, ux*half
	x0, y0 = x0-ux*half, y0-uy*half
	x1, y1 = x1+ux*half, y1+uy*half

	a := m.vertex(t, x0+px, y0+py, c)
	b := m.vertex(t, x1+px, y1+py, c)
	cc := m.vertex(t, x1-px, y1-py, c)
	d := m.vertex(t, x0-px, y0-py, c)
	m.inds = append(m.inds, a, b, cc, a, cc, d)
}

// direction returns the unit vector from a to b, or (1, 0) for a degenerate
// segment.
func direction(ax, ay, bx, by float64) (float64, float64) {
	dx := bx - ax
	dy := by - ay
	ln := math.Sqrt(dx*dx + dy*dy)
	if ln < 1e-10 {
		return 1, 0
	}
	return dx / ln, dy / ln
}
