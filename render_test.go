package diagram

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestTicks(t *testing.T) {
	test.T(t, Ticks(Axis{Step: 1.0}, -0.2, 6.2), []float64{0, 1, 2, 3, 4, 5, 6})
	test.T(t, Ticks(Axis{Step: 10.0}, 0.0, 60.0), []float64{0, 10, 20, 30, 40, 50, 60})
	test.T(t, Ticks(Axis{Ticks: []float64{-1, 0, 2.5, 11}, Step: 1.0}, 0.0, 10.0), []float64{0, 2.5})

	auto := Ticks(Axis{}, 0.0, 60.0)
	test.That(t, 2 <= len(auto), "expected automatic ticks, got", auto)
	for i, v := range auto {
		test.That(t, 0.0 <= v && v <= 60.0, "tick out of range:", v)
		if 0 < i {
			test.That(t, auto[i-1] < v, "ticks must be increasing:", auto)
		}
	}
}

func TestTickLabel(t *testing.T) {
	test.String(t, tickLabel(Axis{}, 10.0), "10")
	test.String(t, tickLabel(Axis{}, -1e-12), "0")
	test.String(t, tickLabel(Axis{Format: "%.1f"}, 2.5), "2.5")
}

func TestDashes(t *testing.T) {
	d := dashes(pt(2.0))
	test.T(t, len(d), 2)
	test.Float(t, d[0], 3.7*pt(2.0))
	test.Float(t, d[1], 1.6*pt(2.0))
}

func TestSceneBounds(t *testing.T) {
	fig, err := NewFigure(200.0, 100.0)
	test.Error(t, err)
	c := fig.AddCanvas(R(50.0, 20.0, 100.0, 50.0), Rect{0.0, 0.0, 10.0, 10.0})
	c.AddElement(Region{
		Shape:  RegionRect,
		Center: Point{5.0, 5.0},
		Width:  2.0,
		Height: 2.0,
		Fill:   Solid(black),
	})

	s, err := buildScene(fig)
	test.Error(t, err)
	test.T(t, len(s.marks), 1)
	b := s.Bounds()
	test.Float(t, b.X0, 90.0)
	test.Float(t, b.Y0, 40.0)
	test.Float(t, b.X1, 110.0)
	test.Float(t, b.Y1, 50.0)

	test.T(t, (&scene{}).Bounds(), Rect{})
}

func TestPageBounds(t *testing.T) {
	fig, err := NewFigure(200.0, 100.0)
	test.Error(t, err)
	c := fig.AddCanvas(R(50.0, 20.0, 100.0, 50.0), Rect{0.0, 0.0, 10.0, 10.0})
	c.AddElement(Region{Shape: RegionRect, Center: Point{5.0, 5.0}, Width: 2.0, Height: 2.0, Fill: Solid(black)})

	spec := DefaultExportSpec("x")
	page, err := PageBounds(fig, spec)
	test.Error(t, err)
	test.Float(t, page.X0, 88.0)
	test.Float(t, page.W(), 24.0)
	test.Float(t, page.H(), 14.0)

	spec.Bounding = Page
	page, err = PageBounds(fig, spec)
	test.Error(t, err)
	test.T(t, page, Rect{0.0, 0.0, 200.0, 100.0})

	empty, err := NewFigure(30.0, 20.0)
	test.Error(t, err)
	page, err = PageBounds(empty, DefaultExportSpec("x"))
	test.Error(t, err)
	test.T(t, page, Rect{0.0, 0.0, 30.0, 20.0})
}

func TestSceneFramed(t *testing.T) {
	fig, err := NewFigure(254.0, 152.4)
	test.Error(t, err)
	c := fig.AddCanvas(R(28.0, 22.0, 216.0, 116.0), Rect{-0.2, 0.0, 6.2, 60.0})
	c.SetAxes(Axis{Label: "Time (hours)", Step: 1.0}, Axis{Label: "Edge Coverage (%)", Step: 10.0})
	c.SetTitle("Title", 14.0)

	s, err := buildScene(fig)
	test.Error(t, err)
	// 7+7 grid lines, frame, 7+7 ticks and labels, 2 axis labels, title
	test.T(t, len(s.marks), 14+1+28+2+1)
	b := s.Bounds()
	test.That(t, b.X0 < 28.0 && b.Y0 < 22.0, "tick labels extend beyond the frame:", b)
	test.That(t, 22.0+116.0 < b.Y1, "title sits above the frame:", b)
}

func TestBuildSceneReleased(t *testing.T) {
	fig, err := NewFigure(10.0, 10.0)
	test.Error(t, err)
	fig.Release()
	_, err = buildScene(fig)
	test.T(t, err, ErrReleased)
}
