package diagram

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestSampleCloud(t *testing.T) {
	clampBox := Rect{5.5, 0.0, 9.5, 4.0}
	a := SampleCloud(Point{8.0, 1.5}, 1.2, 1.2, 40, clampBox, 42)
	b := SampleCloud(Point{8.0, 1.5}, 1.2, 1.2, 40, clampBox, 42)
	test.T(t, len(a), 40)
	test.T(t, a, b)

	for _, p := range a {
		test.That(t, 5.5 <= p.X && p.X <= 9.5, "x out of clamp box:", p)
		test.That(t, 0.0 <= p.Y && p.Y <= 4.0, "y out of clamp box:", p)
	}

	c := SampleCloud(Point{8.0, 1.5}, 1.2, 1.2, 40, clampBox, 43)
	test.That(t, !a[0].Equals(c[0]) || !a[1].Equals(c[1]), "different seeds must give different clouds")
}

func TestSampleCloudUnclamped(t *testing.T) {
	points := SampleCloud(Point{0.0, 0.0}, 100.0, 0.0, 200, Rect{}, 7)
	outside := false
	for _, p := range points {
		test.Float(t, p.Y, 0.0)
		if 100.0 < p.X || p.X < -100.0 {
			outside = true
		}
	}
	test.That(t, outside, "an empty clamp box must leave samples unclamped")

	test.T(t, len(SampleCloud(Point{}, 1.0, 1.0, 0, Rect{}, 1)), 0)
}

func TestDrawScatterCloud(t *testing.T) {
	fig, err := NewFigure(100.0, 100.0)
	test.Error(t, err)
	c := fig.AddCanvas(R(0.0, 0.0, 100.0, 100.0), Rect{0.0, 0.0, 10.0, 10.0})

	points := DrawScatterCloud(c, ScatterOptions{
		Center:  Point{5.0, 5.0},
		SpreadX: 1.0,
		SpreadY: 1.0,
		Count:   10,
		Clamp:   Rect{0.0, 0.0, 10.0, 10.0},
		Seed:    42,
		Label:   "states",
		Z:       3,
	})
	test.T(t, c.Len(), 1)

	cloud, ok := c.Elements()[0].(ScatterCloud)
	test.T(t, ok, true)
	test.T(t, cloud.Points(), points)
	test.T(t, cloud.Layer(), 3)
	test.Float(t, cloud.Markers[0].Radius, 3.1)
	test.Float(t, cloud.Markers[0].Fill.Alpha, 0.6)
	test.T(t, cloud.Markers[0].Shape, MarkerCircle)

	entries := c.LegendEntries()
	test.T(t, len(entries), 1)
	test.String(t, entries[0].Label, "states")
}
