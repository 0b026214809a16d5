// Package diagram composes static schematic diagrams and charts from a small set of primitives placed at absolute coordinates, and exports them as PDF and PNG.
package diagram

import (
	"fmt"
	"sort"
)

// AxisMode is the decoration drawn around a canvas.
type AxisMode int

// Axis modes.
const (
	AxisNone AxisMode = iota
	AxisFramed
)

func (m AxisMode) String() string {
	switch m {
	case AxisNone:
		return "none"
	case AxisFramed:
		return "framed"
	}
	return fmt.Sprintf("AxisMode(%d)", int(m))
}

// Axis describes one axis of a framed canvas. Ticks takes precedence over Step; if both are zero the ticks are chosen automatically.
type Axis struct {
	Label     string
	LabelSize float64 // pt
	Ticks     []float64
	Step      float64
	Format    string // fmt verb for tick labels, default %g
	TickSize  float64 // pt
}

// Figure is the physical page that one or more canvases are placed on. Sizes are in millimetres with the origin at the lower-left corner.
type Figure struct {
	W, H float64

	fonts    *Fonts
	canvases []*Canvas
	released bool
}

// NewFigure acquires the drawing resources of a figure of width w and height h in millimetres. The figure is released by Export.
func NewFigure(w, h float64) (*Figure, error) {
	fonts, err := LoadFonts()
	if err != nil {
		return nil, err
	}
	return &Figure{W: w, H: h, fonts: fonts}, nil
}

// AddCanvas places a canvas at rect (in millimetres) on the figure with logical coordinate bounds.
func (f *Figure) AddCanvas(rect, bounds Rect) *Canvas {
	if f.released {
		panic(ErrReleased)
	}
	c := &Canvas{
		fig:    f,
		rect:   rect,
		bounds: bounds,
	}
	f.canvases = append(f.canvases, c)
	return c
}

// Canvases returns the canvases in placement order.
func (f *Figure) Canvases() []*Canvas {
	return append([]*Canvas{}, f.canvases...)
}

// Released returns true once the figure's resources have been released.
func (f *Figure) Released() bool {
	return f.released
}

// Release frees the drawing resources. It is safe to call more than once.
func (f *Figure) Release() {
	f.released = true
	f.fonts = nil
	for _, c := range f.canvases {
		c.elements = nil
	}
}

////////////////////////////////////////////////////////////////

// Canvas is a logical coordinate space holding an append-only list of elements.
type Canvas struct {
	fig    *Figure
	rect   Rect // mm on the figure
	bounds Rect // logical

	mode         AxisMode
	xaxis, yaxis Axis
	grid         bool

	title     string
	titleSize float64

	elements []Element
}

// AddElement appends e on top of all previously added elements of the same layer.
func (c *Canvas) AddElement(e Element) {
	if c.fig.released {
		panic(ErrReleased)
	}
	c.elements = append(c.elements, e)
}

// SetAxisMode sets the decoration mode.
func (c *Canvas) SetAxisMode(mode AxisMode) {
	c.mode = mode
}

// AxisMode returns the decoration mode.
func (c *Canvas) AxisMode() AxisMode {
	return c.mode
}

// SetAxes sets the x and y axes of a framed canvas and turns on its grid.
func (c *Canvas) SetAxes(x, y Axis) {
	c.mode = AxisFramed
	c.xaxis, c.yaxis = x, y
	c.grid = true
}

// SetGrid toggles the grid of a framed canvas.
func (c *Canvas) SetGrid(grid bool) {
	c.grid = grid
}

// SetTitle sets the title drawn centered above the canvas at size pt.
func (c *Canvas) SetTitle(title string, size float64) {
	c.title = title
	c.titleSize = size
}

// Title returns the title.
func (c *Canvas) Title() string {
	return c.title
}

// Bounds returns the logical coordinate bounds.
func (c *Canvas) Bounds() Rect {
	return c.bounds
}

// Rect returns the placement on the figure in millimetres.
func (c *Canvas) Rect() Rect {
	return c.rect
}

// Len returns the number of elements.
func (c *Canvas) Len() int {
	return len(c.elements)
}

// Elements returns the elements in draw order: by layer, then by insertion.
func (c *Canvas) Elements() []Element {
	elements := append([]Element{}, c.elements...)
	sort.SliceStable(elements, func(i, j int) bool {
		return elements[i].Layer() < elements[j].Layer()
	})
	return elements
}

// scale returns millimetres per logical unit along x and y.
func (c *Canvas) scale() (float64, float64) {
	return c.rect.W() / c.bounds.W(), c.rect.H() / c.bounds.H()
}

// ToPage maps a logical point to millimetres on the figure.
func (c *Canvas) ToPage(p Point) Point {
	sx, sy := c.scale()
	return Point{
		c.rect.X0 + (p.X-c.bounds.X0)*sx,
		c.rect.Y0 + (p.Y-c.bounds.Y0)*sy,
	}
}
