package diagram

import (
	"image/color"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestPoint(t *testing.T) {
	p := Point{3, 4}
	test.T(t, p.Mul(2.0), Point{6, 8})
	test.T(t, p.Add(Point{1, 1}), Point{4, 5})
	test.T(t, p.Sub(Point{1, 1}), Point{2, 3})
	test.T(t, p.Rot90CCW(), Point{-4, 3})
	test.Float(t, p.Length(), 5.0)
	test.Float(t, p.Angle(), math.Atan2(4.0, 3.0))
	test.T(t, p.Norm(0.0), Point{0.0, 0.0})
	test.T(t, Point{}.Norm(1.0), Point{0.0, 0.0})
	test.T(t, Point{}.Interpolate(p, 0.5), Point{1.5, 2.0})
	test.T(t, p.Equals(Point{3, 4 + 1e-12}), true)
	test.String(t, p.String(), "[3; 4]")

	n := p.Norm(3.0)
	test.Float(t, n.X, 1.8)
	test.Float(t, n.Y, 2.4)
}

func TestRect(t *testing.T) {
	r := R(1.0, 2.0, 3.0, 4.0)
	test.T(t, r, Rect{1.0, 2.0, 4.0, 6.0})
	test.Float(t, r.W(), 3.0)
	test.Float(t, r.H(), 4.0)
	test.T(t, r.Empty(), false)
	test.T(t, Rect{}.Empty(), true)
	test.T(t, r.Contains(Point{2.0, 3.0}), true)
	test.T(t, r.Contains(Point{0.0, 3.0}), false)
	test.T(t, r.Add(Rect{0.0, 0.0, 2.0, 2.0}), Rect{0.0, 0.0, 4.0, 6.0})
	test.T(t, r.AddPoint(Point{5.0, 1.0}), Rect{1.0, 1.0, 5.0, 6.0})
	test.T(t, r.Expand(1.0), Rect{0.0, 1.0, 5.0, 7.0})
	test.T(t, r.Clamp(Point{0.0, 10.0}), Point{1.0, 6.0})
	test.T(t, r.Clamp(Point{2.0, 3.0}), Point{2.0, 3.0})
	test.T(t, boundsOf(Point{1, 5}, Point{-1, 2}, Point{3, 3}), Rect{-1, 2, 3, 5})
}

func TestUnits(t *testing.T) {
	test.Float(t, 72.0*MmPerPt, 25.4)
	test.Float(t, MmPerPt*PtPerMm, 1.0)
	test.Float(t, pt(10.0), 10.0*25.4/72.0)
}

func TestWithAlpha(t *testing.T) {
	test.T(t, withAlpha(color.RGBA{255, 0, 0, 255}, 1.0), color.RGBA{255, 0, 0, 255})
	test.T(t, withAlpha(color.RGBA{255, 0, 0, 255}, 0.0), color.RGBA{0, 0, 0, 0})
	half := withAlpha(color.RGBA{200, 100, 0, 255}, 0.5)
	test.T(t, half.A, uint8(128))
	test.That(t, half.R <= half.A && half.G <= half.A, "color must be premultiplied")
}
