package sketchbook

import (
	"image"
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertVec(t *testing.T, name string, got, want Vec2) {
	t.Helper()
	if math.Abs(got.X-want.X) > epsilon || math.Abs(got.Y-want.Y) > epsilon {
		t.Errorf("%s = %+v, want %+v", name, got, want)
	}
}

// fixedRand replays values in order, then repeats the last one.
type fixedRand struct {
	vals []float64
	i    int
}

func (r *fixedRand) Float64() float64 {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[min(r.i, len(r.vals)-1)]
	r.i++
	return v
}

// constNoise returns the same value everywhere.
type constNoise float64

func (n constNoise) Eval2(x, y float64) float64 { return float64(n) }

// drawCall is one recorded Surface operation.
type drawCall struct {
	op     string
	x, y   float64
	w, h   float64
	stroke float64
	color  Color
	blend  BlendMode
	img    image.Image
}

// recordingSurface is a Surface that records draws with the transform
// translation applied, which is enough for the sketches' assertions.
type recordingSurface struct {
	vp    Viewport
	blend BlendMode
	calls []drawCall

	tx, ty float64
	rot    float64
	stack  [][3]float64
}

func newRecordingSurface(w, h float64) *recordingSurface {
	return &recordingSurface{vp: Viewport{w, h}}
}

func (s *recordingSurface) Size() Viewport       { return s.vp }
func (s *recordingSurface) SetBlend(b BlendMode) { s.blend = b }
func (s *recordingSurface) Push()                { s.stack = append(s.stack, [3]float64{s.tx, s.ty, s.rot}) }
func (s *recordingSurface) Pop() {
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.tx, s.ty, s.rot = top[0], top[1], top[2]
}
func (s *recordingSurface) Translate(x, y float64) { s.tx += x; s.ty += y }
func (s *recordingSurface) Rotate(rad float64)     { s.rot += rad }

func (s *recordingSurface) Clear(c Color) {
	s.calls = append(s.calls, drawCall{op: "clear", color: c, blend: s.blend})
}

func (s *recordingSurface) FillEllipse(cx, cy, w, h float64, c Color) {
	s.calls = append(s.calls, drawCall{op: "fill", x: cx + s.tx, y: cy + s.ty, w: w, h: h, color: c, blend: s.blend})
}

func (s *recordingSurface) StrokeEllipse(cx, cy, w, h, stroke float64, c Color) {
	s.calls = append(s.calls, drawCall{op: "stroke", x: cx + s.tx, y: cy + s.ty, w: w, h: h, stroke: stroke, color: c, blend: s.blend})
}

func (s *recordingSurface) Line(x0, y0, x1, y1, stroke float64, c Color) {
	s.calls = append(s.calls, drawCall{op: "line", x: x0, y: y0, w: x1, h: y1, stroke: stroke, color: c, blend: s.blend})
}

func (s *recordingSurface) DrawImage(img image.Image, x, y, w, h float64) {
	s.calls = append(s.calls, drawCall{op: "image", x: x + s.tx, y: y + s.ty, w: w, h: h, img: img, blend: s.blend})
}

func (s *recordingSurface) count(op string) int {
	n := 0
	for _, c := range s.calls {
		if c.op == op {
			n++
		}
	}
	return n
}
