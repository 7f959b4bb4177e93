package canvas

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// affine is a 2D affine matrix [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type affine [6]float64

// identityTransform is the identity affine matrix.
var identityTransform = affine{1, 0, 0, 1, 0, 0}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
func multiplyAffine(p, c affine) affine {
	return affine{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

func translation(x, y float64) affine {
	return affine{1, 0, 0, 1, x, y}
}

// rotation rotates clockwise on screen (Y grows downward).
func rotation(rad float64) affine {
	sin, cos := math.Sincos(rad)
	return affine{cos, sin, -sin, cos, 0, 0}
}

// apply transforms the point (x, y).
func (m affine) apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// geoM converts the matrix into an ebiten.GeoM.
func (m affine) geoM() ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// transformStack is a Push/Pop stack of accumulated transforms. The top is
// the current transform.
type transformStack struct {
	cur   affine
	saved []affine
}

func newTransformStack() transformStack {
	return transformStack{cur: identityTransform}
}

func (s *transformStack) push() {
	s.saved = append(s.saved, s.cur)
}

// pop restores the last pushed transform. Popping an empty stack resets to
// identity.
func (s *transformStack) pop() {
	n := len(s.saved)
	if n == 0 {
		s.cur = identityTransform
		return
	}
	s.cur = s.saved[n-1]
	s.saved = s.saved[:n-1]
}

func (s *transformStack) translate(x, y float64) {
	s.cur = multiplyAffine(s.cur, translation(x, y))
}

func (s *transformStack) rotate(rad float64) {
	s.cur = multiplyAffine(s.cur, rotation(rad))
}

// reset clears the stack at the start of a frame.
func (s *transformStack) reset() {
	s.cur = identityTransform
	s.saved = s.saved[:0]
}
