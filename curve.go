package diagram

import (
	"fmt"
	"image/color"
)

// CurveOptions configures an annotated curve. Zero values select the defaults noted per field.
type CurveOptions struct {
	Xs, Ys, StdDevs []float64
	Color           color.RGBA
	Marker          MarkerShape
	Label           string
	Width           float64 // pt, default 3
	MarkerRadius    float64 // pt, default 3
	MarkEvery       int     // default 2
	BandAlpha       float64 // default 0.2
	Z               int
}

// DrawAnnotatedCurve draws a polyline through (xs[i], ys[i]) with markers on every other point over a shaded band spanning ys[i] ± stdDevs[i]. The slices must have equal lengths and xs must be strictly increasing.
func DrawAnnotatedCurve(c *Canvas, xs, ys, stdDevs []float64, col color.RGBA, marker MarkerShape, label string) error {
	return DrawCurve(c, CurveOptions{
		Xs:      xs,
		Ys:      ys,
		StdDevs: stdDevs,
		Color:   col,
		Marker:  marker,
		Label:   label,
	})
}

// DrawCurve draws an annotated curve as DrawAnnotatedCurve does with every option exposed. It returns ErrDimensionMismatch and appends nothing if the slices differ in length.
func DrawCurve(c *Canvas, opts CurveOptions) error {
	if len(opts.Xs) != len(opts.Ys) || len(opts.Xs) != len(opts.StdDevs) {
		return fmt.Errorf("curve %q: len(xs)=%d, len(ys)=%d, len(stdDevs)=%d: %w", opts.Label, len(opts.Xs), len(opts.Ys), len(opts.StdDevs), ErrDimensionMismatch)
	}
	if opts.Width == 0.0 {
		opts.Width = 3.0
	}
	if opts.MarkerRadius == 0.0 {
		opts.MarkerRadius = 3.0
	}
	if opts.MarkEvery == 0 {
		opts.MarkEvery = 2
	}
	if opts.BandAlpha == 0.0 {
		opts.BandAlpha = 0.2
	}

	n := len(opts.Xs)
	points := make([]Point, n)
	xs := make([]float64, n)
	lower := make([]float64, n)
	upper := make([]float64, n)
	for i := range opts.Xs {
		points[i] = Pt(opts.Xs[i], opts.Ys[i])
		xs[i] = opts.Xs[i]
		lower[i] = opts.Ys[i] - opts.StdDevs[i]
		upper[i] = opts.Ys[i] + opts.StdDevs[i]
	}

	c.AddElement(Curve{
		Points:       points,
		Stroke:       Solid(opts.Color),
		Width:        opts.Width,
		Marker:       opts.Marker,
		MarkerRadius: opts.MarkerRadius,
		MarkEvery:    opts.MarkEvery,
		Label:        opts.Label,
		Z:            opts.Z + 1,
	})
	c.AddElement(Band{
		Xs:    xs,
		Lower: lower,
		Upper: upper,
		Fill:  Transparent(opts.Color, opts.BandAlpha),
		Z:     opts.Z,
	})
	return nil
}
