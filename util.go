package diagram

import (
	"fmt"
	"image/color"
	"math"
)

// Epsilon is the tolerance used for floating point comparisons.
const Epsilon = 1e-10

// MmPerPt is the number of millimetres in a typographic point.
const MmPerPt = 25.4 / 72.0

// PtPerMm is the number of typographic points in a millimetre.
const PtPerMm = 72.0 / 25.4

// equal returns true if a and b are equal with tolerance Epsilon.
func equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// withAlpha returns the premultiplied color of col at opacity alpha ∈ [0,1].
func withAlpha(col color.RGBA, alpha float64) color.RGBA {
	alpha = clamp(alpha, 0.0, 1.0)
	return color.RGBA{
		uint8(alpha*float64(col.R) + 0.5),
		uint8(alpha*float64(col.G) + 0.5),
		uint8(alpha*float64(col.B) + 0.5),
		uint8(alpha*255.0 + 0.5),
	}
}

////////////////////////////////////////////////////////////////

// Point is a coordinate in 2D space. OP refers to the line that goes through the origin (0,0) and this point (x,y).
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{x, y}
}

// Equals returns true if P and Q are equal with tolerance Epsilon.
func (p Point) Equals(q Point) bool {
	return equal(p.X, q.X) && equal(p.Y, q.Y)
}

// Add adds Q to P.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub subtracts Q from P.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul multiplies x and y by f.
func (p Point) Mul(f float64) Point {
	return Point{f * p.X, f * p.Y}
}

// Rot90CCW rotates the line OP by 90 degrees CCW.
func (p Point) Rot90CCW() Point {
	return Point{-p.Y, p.X}
}

// Length returns the length of OP.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Angle returns the angle between the x-axis and OP.
func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// Norm normalized OP to be of certain length.
func (p Point) Norm(length float64) Point {
	d := p.Length()
	if equal(d, 0.0) {
		return Point{}
	}
	return Point{p.X / d * length, p.Y / d * length}
}

// Interpolate returns a point on PQ that is linearly interpolated by t, ie. t=0 returns P and t=1 returns Q.
func (p Point) Interpolate(q Point, t float64) Point {
	return Point{(1-t)*p.X + t*q.X, (1-t)*p.Y + t*q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("[%g; %g]", p.X, p.Y)
}

////////////////////////////////////////////////////////////////

// Rect is an axis-aligned rectangle spanning (X0,Y0) to (X1,Y1).
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// R returns the rectangle with lower-left corner (x,y), width w and height h.
func R(x, y, w, h float64) Rect {
	return Rect{x, y, x + w, y + h}
}

// W returns the width.
func (r Rect) W() float64 {
	return r.X1 - r.X0
}

// H returns the height.
func (r Rect) H() float64 {
	return r.Y1 - r.Y0
}

// Empty returns true if the rectangle has no area.
func (r Rect) Empty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

// Contains returns true if p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return r.X0 <= p.X && p.X <= r.X1 && r.Y0 <= p.Y && p.Y <= r.Y1
}

// Add returns the union of both rectangles. Empty rectangles are ignored.
func (r Rect) Add(q Rect) Rect {
	if q.Empty() {
		return r
	} else if r.Empty() {
		return q
	}
	return Rect{
		math.Min(r.X0, q.X0),
		math.Min(r.Y0, q.Y0),
		math.Max(r.X1, q.X1),
		math.Max(r.Y1, q.Y1),
	}
}

// AddPoint grows r to include p. Unlike Add it accepts a degenerate r.
func (r Rect) AddPoint(p Point) Rect {
	return Rect{
		math.Min(r.X0, p.X),
		math.Min(r.Y0, p.Y),
		math.Max(r.X1, p.X),
		math.Max(r.Y1, p.Y),
	}
}

// Expand grows r by margin on every side.
func (r Rect) Expand(margin float64) Rect {
	return Rect{r.X0 - margin, r.Y0 - margin, r.X1 + margin, r.Y1 + margin}
}

// Clamp returns p moved into r along each axis independently.
func (r Rect) Clamp(p Point) Point {
	return Point{clamp(p.X, r.X0, r.X1), clamp(p.Y, r.Y0, r.Y1)}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g; %g]--[%g; %g]", r.X0, r.Y0, r.X1, r.Y1)
}

// boundsOf returns the bounding box of points, starting from an inverted rectangle.
func boundsOf(points ...Point) Rect {
	r := Rect{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
	for _, p := range points {
		r = r.AddPoint(p)
	}
	return r
}
