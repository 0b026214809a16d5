package diagram

import "image/color"

// Kind identifies the variant of an Element.
type Kind int

// Element kinds.
const (
	KindBox Kind = iota
	KindArrow
	KindMarker
	KindScatterCloud
	KindRegion
	KindCurve
	KindBand
	KindText
	KindLegend
)

func (k Kind) String() string {
	switch k {
	case KindBox:
		return "Box"
	case KindArrow:
		return "Arrow"
	case KindMarker:
		return "Marker"
	case KindScatterCloud:
		return "ScatterCloud"
	case KindRegion:
		return "Region"
	case KindCurve:
		return "Curve"
	case KindBand:
		return "Band"
	case KindText:
		return "Text"
	case KindLegend:
		return "Legend"
	}
	return "Invalid"
}

// Element is one atomic drawable unit of a Canvas. Elements are values and are not modified after they are added.
type Element interface {
	Kind() Kind
	Layer() int
}

// Paint is a color at an opacity. A Paint with zero alpha draws nothing.
type Paint struct {
	Color color.RGBA
	Alpha float64
}

// Solid returns col at full opacity.
func Solid(col color.RGBA) Paint {
	return Paint{col, 1.0}
}

// Transparent returns col at opacity alpha.
func Transparent(col color.RGBA, alpha float64) Paint {
	return Paint{col, alpha}
}

// IsZero returns true if the paint is invisible.
func (p Paint) IsZero() bool {
	return p.Alpha <= 0.0
}

// RGBA returns the premultiplied color.
func (p Paint) RGBA() color.RGBA {
	return withAlpha(p.Color, p.Alpha)
}

////////////////////////////////////////////////////////////////

// Box is a rectangle with rounded corners. Pad grows the rectangle on every side and is also the corner radius, both in logical units.
type Box struct {
	Rect        Rect
	Pad         float64
	Fill        Paint
	Stroke      Paint
	StrokeWidth float64 // pt
	Z           int
}

// Arrow is a directed line with an open arrowhead at To. A non-zero Rad bends it into a quadratic arc whose control point sits Rad times the chord length off the midpoint.
type Arrow struct {
	From, To Point
	Stroke   Paint
	Width    float64 // pt
	HeadSize float64 // pt
	Rad      float64
	Dashed   bool
	Z        int
}

// MarkerShape is the glyph used for a point marker.
type MarkerShape int

// Marker shapes.
const (
	MarkerNone MarkerShape = iota
	MarkerCircle
	MarkerSquare
	MarkerTriangle
)

// Marker is a single point glyph.
type Marker struct {
	At        Point
	Shape     MarkerShape
	Radius    float64 // pt
	Fill      Paint
	Edge      Paint
	EdgeWidth float64 // pt
	Z         int
}

// ScatterCloud is a set of markers drawn as one layer.
type ScatterCloud struct {
	Markers []Marker
	Label   string
	Z       int
}

// Points returns the marker positions.
func (s ScatterCloud) Points() []Point {
	points := make([]Point, len(s.Markers))
	for i, m := range s.Markers {
		points[i] = m.At
	}
	return points
}

// RegionShape is the outline of a Region.
type RegionShape int

// Region shapes.
const (
	RegionEllipse RegionShape = iota
	RegionRect
	RegionArc
)

// LineStyle is the dash pattern of a stroke.
type LineStyle int

// Line styles.
const (
	LineSolid LineStyle = iota
	LineDashed
)

// Region is a closed (or, for RegionArc, open) outline delimiting an area. Width and Height are the full extents; Theta0 and Theta1 bound an arc in degrees, CCW from the positive x-axis.
type Region struct {
	Shape          RegionShape
	Center         Point
	Width, Height  float64
	Theta0, Theta1 float64
	Fill           Paint
	Stroke         Paint
	StrokeWidth    float64 // pt
	Line           LineStyle
	Z              int
}

// Curve is a polyline through Points with optional markers on every MarkEvery-th point.
type Curve struct {
	Points       []Point
	Stroke       Paint
	Width        float64 // pt
	Marker       MarkerShape
	MarkerRadius float64 // pt
	MarkEvery    int
	Line         LineStyle
	Label        string
	Z            int
}

// Band is the filled area between Lower and Upper over Xs.
type Band struct {
	Xs, Lower, Upper []float64
	Fill             Paint
	Z                int
}

// HAlign is the horizontal anchor of a text.
type HAlign int

// Horizontal anchors.
const (
	HCenter HAlign = iota
	HLeft
	HRight
)

// VAlign is the vertical anchor of a text.
type VAlign int

// Vertical anchors. VBaseline anchors the baseline of the last line.
const (
	VCenter VAlign = iota
	VTop
	VBottom
	VBaseline
)

// TextBackground is a rounded patch drawn behind a text.
type TextBackground struct {
	Fill      Paint
	Edge      Paint
	EdgeWidth float64 // pt
	Pad       float64 // pt
	Shadow    bool
}

// Text is a label positioned in logical coordinates. Lines are separated by newlines and centered on each other.
type Text struct {
	At         Point
	Text       string
	Size       float64 // pt
	Bold       bool
	Italic     bool
	Color      Paint
	HAlign     HAlign
	VAlign     VAlign
	Background *TextBackground
	Z          int
}

// LegendLoc is the corner of the canvas a legend is anchored to.
type LegendLoc int

// Legend locations.
const (
	LowerLeft LegendLoc = iota
	LowerRight
	UpperLeft
	UpperRight
)

// LegendEntry is one row of a legend: a filled patch, or a line with an optional marker.
type LegendEntry struct {
	Label     string
	Patch     bool
	Fill      Paint
	Edge      Paint
	Line      Paint
	LineWidth float64 // pt
	LineStyle LineStyle
	Marker    MarkerShape
}

// Legend is a framed list of entries.
type Legend struct {
	Entries   []LegendEntry
	Loc       LegendLoc
	FontSize  float64 // pt
	Frame     Paint
	Edge      Paint
	EdgeWidth float64 // pt
	Shadow    bool
	Z         int
}

func (Box) Kind() Kind          { return KindBox }
func (Arrow) Kind() Kind        { return KindArrow }
func (Marker) Kind() Kind       { return KindMarker }
func (ScatterCloud) Kind() Kind { return KindScatterCloud }
func (Region) Kind() Kind       { return KindRegion }
func (Curve) Kind() Kind        { return KindCurve }
func (Band) Kind() Kind         { return KindBand }
func (Text) Kind() Kind         { return KindText }
func (Legend) Kind() Kind       { return KindLegend }

func (e Box) Layer() int          { return e.Z }
func (e Arrow) Layer() int        { return e.Z }
func (e Marker) Layer() int       { return e.Z }
func (e ScatterCloud) Layer() int { return e.Z }
func (e Region) Layer() int       { return e.Z }
func (e Curve) Layer() int        { return e.Z }
func (e Band) Layer() int         { return e.Z }
func (e Text) Layer() int         { return e.Z }
func (e Legend) Layer() int       { return e.Z }
