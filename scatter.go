package diagram

import (
	"image/color"
	"math/rand/v2"
)

// ScatterOptions configures a seeded scatter cloud. Zero values select the defaults noted per field.
type ScatterOptions struct {
	Center           Point
	SpreadX, SpreadY float64 // standard deviations in logical units
	Count            int
	Clamp            Rect // an empty Clamp leaves samples unclamped
	Seed             uint64

	Color     color.RGBA
	Edge      color.RGBA
	Alpha     float64 // default 0.6
	Radius    float64 // pt, default 3.1
	EdgeWidth float64 // pt, default 0.5
	Label     string
	Z         int
}

// SampleCloud draws count samples from a normal distribution around center with standard deviations sx and sy, then clamps each to the clamp box. All x offsets are drawn before all y offsets. The same seed always yields the same points.
func SampleCloud(center Point, sx, sy float64, count int, clamp Rect, seed uint64) []Point {
	if count <= 0 {
		return nil
	}
	rng := rand.New(rand.NewPCG(seed, seed))
	points := make([]Point, count)
	for i := range points {
		points[i].X = center.X + rng.NormFloat64()*sx
	}
	for i := range points {
		points[i].Y = center.Y + rng.NormFloat64()*sy
	}
	if !clamp.Empty() {
		for i, p := range points {
			points[i] = clamp.Clamp(p)
		}
	}
	return points
}

// DrawScatterCloud samples a cloud with SampleCloud and appends it as one scatter layer of circle markers. It returns the sampled points.
func DrawScatterCloud(c *Canvas, opts ScatterOptions) []Point {
	if opts.Alpha == 0.0 {
		opts.Alpha = 0.6
	}
	if opts.Radius == 0.0 {
		opts.Radius = 3.1
	}
	if opts.EdgeWidth == 0.0 {
		opts.EdgeWidth = 0.5
	}

	points := SampleCloud(opts.Center, opts.SpreadX, opts.SpreadY, opts.Count, opts.Clamp, opts.Seed)
	markers := make([]Marker, len(points))
	for i, p := range points {
		markers[i] = Marker{
			At:        p,
			Shape:     MarkerCircle,
			Radius:    opts.Radius,
			Fill:      Transparent(opts.Color, opts.Alpha),
			Edge:      Transparent(opts.Edge, opts.Alpha),
			EdgeWidth: opts.EdgeWidth,
			Z:         opts.Z,
		}
	}
	c.AddElement(ScatterCloud{
		Markers: markers,
		Label:   opts.Label,
		Z:       opts.Z,
	})
	return append([]Point{}, points...)
}
