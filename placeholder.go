package sketchbook

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Placeholder art stands in for missing sprite files so every sketch runs
// from a bare checkout.

// PlaceholderStar returns a size×size five-pointed star.
func PlaceholderStar(size int, c Color) *image.NRGBA {
	z := vector.NewRasterizer(size, size)
	cx, cy := float64(size)/2, float64(size)/2
	outer, inner := float64(size)/2, float64(size)/5
	for i := 0; i < 10; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := -math.Pi/2 + float64(i)*math.Pi/5
		x, y := float32(cx+r*math.Cos(a)), float32(cy+r*math.Sin(a))
		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()
	return rasterize(z, size, size, c)
}

// PlaceholderCharacter returns a w×h figure: a round head over a rounded body
// whose bottom edge is the character's feet.
func PlaceholderCharacter(w, h int, c Color) *image.NRGBA {
	z := vector.NewRasterizer(w, h)
	fw, fh := float64(w), float64(h)
	head := fw * 0.3
	appendEllipse(z, fw/2, head, head, head)

	top, bottom := head*2, fh
	left, right := fw*0.15, fw*0.85
	z.MoveTo(float32(left), float32(top))
	z.LineTo(float32(right), float32(top))
	z.LineTo(float32(right), float32(bottom))
	z.LineTo(float32(left), float32(bottom))
	z.ClosePath()
	return rasterize(z, w, h, c)
}

// PlaceholderPlanet returns a w×h filled ellipse.
func PlaceholderPlanet(w, h int, c Color) *image.NRGBA {
	z := vector.NewRasterizer(w, h)
	appendEllipse(z, float64(w)/2, float64(h)/2, float64(w)/2, float64(h)/2)
	return rasterize(z, w, h, c)
}

func appendEllipse(z *vector.Rasterizer, cx, cy, rx, ry float64) {
	const segments = 48
	for i := 0; i <= segments; i++ {
		a := 2 * math.Pi * float64(i) / segments
		x, y := float32(cx+rx*math.Cos(a)), float32(cy+ry*math.Sin(a))
		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()
}

func rasterize(z *vector.Rasterizer, w, h int, c Color) *image.NRGBA {
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	src := image.NewUniform(color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	})
	draw.DrawMask(dst, dst.Bounds(), src, image.Point{}, mask, image.Point{}, draw.Over)
	return dst
}
