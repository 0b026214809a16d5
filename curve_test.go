package diagram

import (
	"errors"
	"image/color"
	"testing"

	"github.com/tdewolff/test"
)

func TestDrawCurve(t *testing.T) {
	fig, err := NewFigure(100.0, 100.0)
	test.Error(t, err)
	c := fig.AddCanvas(R(0.0, 0.0, 100.0, 100.0), Rect{0.0, 0.0, 5.0, 10.0})

	red := color.RGBA{255, 0, 0, 255}
	xs := []float64{0, 1, 2, 3, 4}
	ys := []float64{1, 2, 3, 4, 5}
	std := []float64{0.5, 0.5, 0.5, 0.5, 0.5}
	test.Error(t, DrawAnnotatedCurve(c, xs, ys, std, red, MarkerSquare, "fuzzer"))
	test.T(t, c.Len(), 2)

	elements := c.Elements()
	band, ok := elements[0].(Band)
	test.T(t, ok, true)
	test.T(t, band.Lower, []float64{0.5, 1.5, 2.5, 3.5, 4.5})
	test.T(t, band.Upper, []float64{1.5, 2.5, 3.5, 4.5, 5.5})
	test.Float(t, band.Fill.Alpha, 0.2)

	curve, ok := elements[1].(Curve)
	test.T(t, ok, true)
	test.T(t, len(curve.Points), 5)
	test.T(t, curve.Points[2], Point{2, 3})
	test.T(t, curve.Marker, MarkerSquare)
	test.T(t, curve.MarkEvery, 2)
	test.Float(t, curve.Width, 3.0)
	test.That(t, band.Layer() < curve.Layer(), "band must be drawn below the curve")

	// the caller's slices are not retained
	ys[0] = 100.0
	test.T(t, c.Elements()[1].(Curve).Points[0], Point{0, 1})
}

func TestDrawCurveMismatch(t *testing.T) {
	fig, err := NewFigure(100.0, 100.0)
	test.Error(t, err)
	c := fig.AddCanvas(R(0.0, 0.0, 100.0, 100.0), Rect{0.0, 0.0, 5.0, 10.0})

	err = DrawAnnotatedCurve(c, []float64{0, 1, 2, 3, 4}, []float64{0, 1, 2, 3}, []float64{0, 0, 0, 0, 0}, color.RGBA{A: 255}, MarkerCircle, "bad")
	test.That(t, errors.Is(err, ErrDimensionMismatch), "expected ErrDimensionMismatch, got", err)
	test.T(t, c.Len(), 0)

	err = DrawAnnotatedCurve(c, []float64{0, 1}, []float64{0, 1}, []float64{0}, color.RGBA{A: 255}, MarkerCircle, "bad")
	test.That(t, errors.Is(err, ErrDimensionMismatch), "expected ErrDimensionMismatch, got", err)
	test.T(t, c.Len(), 0)
}
