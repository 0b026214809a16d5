package diagram

import (
	"image/color"
)

var (
	black = color.RGBA{0, 0, 0, 255}
	white = color.RGBA{255, 255, 255, 255}
)

// BoxOptions configures a labeled box. Zero values select the defaults noted per field.
type BoxOptions struct {
	Origin, Size Point // lower-left corner and extent in logical units
	Title, Body  string
	Color        color.RGBA
	FillAlpha    float64
	StrokeAlpha  float64 // default 1
	StrokeWidth  float64 // pt, default 2.5
	Pad          float64 // logical, default 0.05

	TitleSize  float64 // pt, default 10
	TitleInset float64 // distance of the title from the top edge, default 0.25
	TitleColor *color.RGBA

	BodySize   float64 // pt, default 8
	BodyOffset float64 // vertical shift of the body from the center
	BodyColor  *color.RGBA
	BodyBold   bool

	Z int
}

// DrawBox draws a rounded box with a border in col, filled with col at fillAlpha. The title is top-anchored in col and the body centered in black. It appends a fill layer, a border layer and two texts.
func DrawBox(c *Canvas, origin, size Point, title, body string, col color.RGBA, fillAlpha float64) {
	DrawBoxStyled(c, BoxOptions{
		Origin:     origin,
		Size:       size,
		Title:      title,
		Body:       body,
		Color:      col,
		FillAlpha:  fillAlpha,
		BodyOffset: -0.1,
	})
}

// DrawBoxStyled draws a box as DrawBox does with every option exposed.
func DrawBoxStyled(c *Canvas, opts BoxOptions) {
	if opts.StrokeAlpha == 0.0 {
		opts.StrokeAlpha = 1.0
	}
	if opts.StrokeWidth == 0.0 {
		opts.StrokeWidth = 2.5
	}
	if opts.Pad == 0.0 {
		opts.Pad = 0.05
	}
	if opts.TitleSize == 0.0 {
		opts.TitleSize = 10.0
	}
	if opts.TitleInset == 0.0 {
		opts.TitleInset = 0.25
	}
	if opts.BodySize == 0.0 {
		opts.BodySize = 8.0
	}
	titleColor := opts.Color
	if opts.TitleColor != nil {
		titleColor = *opts.TitleColor
	}
	bodyColor := black
	if opts.BodyColor != nil {
		bodyColor = *opts.BodyColor
	}

	rect := R(opts.Origin.X, opts.Origin.Y, opts.Size.X, opts.Size.Y)
	c.AddElement(Box{
		Rect: rect,
		Pad:  opts.Pad,
		Fill: Transparent(opts.Color, opts.FillAlpha),
		Z:    opts.Z,
	})
	c.AddElement(Box{
		Rect:        rect,
		Pad:         opts.Pad,
		Stroke:      Transparent(opts.Color, opts.StrokeAlpha),
		StrokeWidth: opts.StrokeWidth,
		Z:           opts.Z,
	})
	c.AddElement(Text{
		At:     Pt(rect.X0+rect.W()/2.0, rect.Y1-opts.TitleInset),
		Text:   opts.Title,
		Size:   opts.TitleSize,
		Bold:   true,
		Color:  Solid(titleColor),
		HAlign: HCenter,
		VAlign: VTop,
		Z:      opts.Z,
	})
	c.AddElement(Text{
		At:     Pt(rect.X0+rect.W()/2.0, rect.Y0+rect.H()/2.0+opts.BodyOffset),
		Text:   opts.Body,
		Size:   opts.BodySize,
		Bold:   opts.BodyBold,
		Color:  Solid(bodyColor),
		HAlign: HCenter,
		VAlign: VCenter,
		Z:      opts.Z,
	})
}

// DrawLabelBox draws a box filled and bordered in col at alpha with a bold white label in its center.
func DrawLabelBox(c *Canvas, origin, size Point, label string, col color.RGBA, alpha, pad, fontSize float64) {
	rect := R(origin.X, origin.Y, size.X, size.Y)
	c.AddElement(Box{
		Rect:        rect,
		Pad:         pad,
		Fill:        Transparent(col, alpha),
		Stroke:      Transparent(col, alpha),
		StrokeWidth: 2.0,
	})
	c.AddElement(Text{
		At:     Pt(rect.X0+rect.W()/2.0, rect.Y0+rect.H()/2.0),
		Text:   label,
		Size:   fontSize,
		Bold:   true,
		Color:  Solid(white),
		HAlign: HCenter,
		VAlign: VCenter,
	})
}

////////////////////////////////////////////////////////////////

// arrowLabelMargin is the perpendicular distance of an arrow label from the arrow's midpoint in logical units.
const arrowLabelMargin = 0.15

// ArrowOptions configures an arrow. Zero values select the defaults noted per field.
type ArrowOptions struct {
	From, To  Point
	Label     string
	LabelSize float64 // pt, default 8
	Color     color.RGBA
	Alpha     float64 // default 1
	Width     float64 // pt, default 2
	HeadSize  float64 // pt, default 25
	Rad       float64
	Line      LineStyle
	Z         int
}

// DrawArrow draws an arrow from start to end with its head at end. A non-empty label is placed at the midpoint, offset perpendicular to the arrow, on a light patch. Start and end must differ.
func DrawArrow(c *Canvas, start, end Point, label string, col color.RGBA, width float64) {
	DrawArrowStyled(c, ArrowOptions{
		From:  start,
		To:    end,
		Label: label,
		Color: col,
		Width: width,
		Z:     1,
	})
}

// DrawArrowStyled draws an arrow as DrawArrow does with every option exposed.
func DrawArrowStyled(c *Canvas, opts ArrowOptions) {
	if opts.Alpha == 0.0 {
		opts.Alpha = 1.0
	}
	if opts.Width == 0.0 {
		opts.Width = 2.0
	}
	if opts.HeadSize == 0.0 {
		opts.HeadSize = 25.0
	}
	if opts.LabelSize == 0.0 {
		opts.LabelSize = 8.0
	}

	c.AddElement(Arrow{
		From:     opts.From,
		To:       opts.To,
		Stroke:   Transparent(opts.Color, opts.Alpha),
		Width:    opts.Width,
		HeadSize: opts.HeadSize,
		Rad:      opts.Rad,
		Dashed:   opts.Line == LineDashed,
		Z:        opts.Z,
	})
	if opts.Label != "" {
		c.AddElement(Text{
			At:     ArrowLabelPosition(opts.From, opts.To),
			Text:   opts.Label,
			Size:   opts.LabelSize,
			Italic: true,
			Color:  Solid(black),
			HAlign: HCenter,
			VAlign: VBottom,
			Background: &TextBackground{
				Fill:      Transparent(white, 0.9),
				Edge:      Transparent(opts.Color, 0.9),
				EdgeWidth: 1.0,
				Pad:       0.3 * opts.LabelSize,
			},
			Z: opts.Z + 1,
		})
	}
}

// ArrowLabelPosition returns the anchor of an arrow label: the midpoint of start and end moved perpendicular to the arrow by a fixed margin, towards positive y (or positive x for vertical arrows).
func ArrowLabelPosition(start, end Point) Point {
	mid := start.Interpolate(end, 0.5)
	normal := end.Sub(start).Rot90CCW().Norm(arrowLabelMargin)
	if normal.Y < 0.0 || equal(normal.Y, 0.0) && normal.X < 0.0 {
		normal = normal.Mul(-1.0)
	}
	return mid.Add(normal)
}

////////////////////////////////////////////////////////////////

// DrawNode draws a filled circle of radius r in logical units, such as a program location in a control-flow schematic.
func DrawNode(c *Canvas, center Point, r float64, col color.RGBA, alpha float64, z int) {
	c.AddElement(Region{
		Shape:  RegionEllipse,
		Center: center,
		Width:  2.0 * r,
		Height: 2.0 * r,
		Fill:   Transparent(col, alpha),
		Z:      z,
	})
}

// DrawMarker draws a single point glyph of radius pt.
func DrawMarker(c *Canvas, at Point, shape MarkerShape, radius float64, fill, edge Paint, z int) {
	c.AddElement(Marker{
		At:        at,
		Shape:     shape,
		Radius:    radius,
		Fill:      fill,
		Edge:      edge,
		EdgeWidth: 0.5,
		Z:         z,
	})
}

// DrawRegion draws an unfilled ellipse of the given full width and height around center, delimiting a conceptual area.
func DrawRegion(c *Canvas, center Point, width, height float64, col color.RGBA, line LineStyle) {
	c.AddElement(Region{
		Shape:       RegionEllipse,
		Center:      center,
		Width:       width,
		Height:      height,
		Stroke:      Transparent(col, 0.7),
		StrokeWidth: 2.0,
		Line:        line,
	})
}

// DrawBackground draws a filled rectangular panel with lower-left corner origin behind everything else.
func DrawBackground(c *Canvas, origin, size Point, fill, edge Paint, width float64) {
	c.AddElement(Region{
		Shape:       RegionRect,
		Center:      Pt(origin.X+size.X/2.0, origin.Y+size.Y/2.0),
		Width:       size.X,
		Height:      size.Y,
		Fill:        fill,
		Stroke:      edge,
		StrokeWidth: width,
		Z:           -1,
	})
}

// DrawArc draws the part of the ellipse around center between theta0 and theta1 degrees.
func DrawArc(c *Canvas, center Point, width, height, theta0, theta1 float64, col color.RGBA, lineWidth float64, line LineStyle) {
	c.AddElement(Region{
		Shape:       RegionArc,
		Center:      center,
		Width:       width,
		Height:      height,
		Theta0:      theta0,
		Theta1:      theta1,
		Stroke:      Solid(col),
		StrokeWidth: lineWidth,
		Line:        line,
	})
}

////////////////////////////////////////////////////////////////

// DrawText appends t, defaulting to 10pt black.
func DrawText(c *Canvas, t Text) {
	if t.Size == 0.0 {
		t.Size = 10.0
	}
	if t.Color == (Paint{}) {
		t.Color = Solid(black)
	}
	c.AddElement(t)
}

// DrawCaption draws an italic, centered caption on a translucent patch of col.
func DrawCaption(c *Canvas, at Point, s string, size float64, col color.RGBA) {
	c.AddElement(Text{
		At:     at,
		Text:   s,
		Size:   size,
		Italic: true,
		Color:  Solid(black),
		HAlign: HCenter,
		VAlign: VBaseline,
		Background: &TextBackground{
			Fill: Transparent(col, 0.3),
			Edge: Transparent(black, 0.3),
			Pad:  0.3 * size,
		},
		Z: 3,
	})
}

// AnnotationOptions configures a boxed label pointing at a data point with a curved arrow.
type AnnotationOptions struct {
	XY, XYText Point
	Label      string
	Size       float64 // pt
	TextColor  color.RGBA
	Color      color.RGBA // box edge and arrow
	Fill       color.RGBA
	Rad        float64
	Z          int
}

// DrawAnnotation draws a bold label centered on XYText inside a rounded box and an arrow from the label to XY. The box covers the start of the arrow.
func DrawAnnotation(c *Canvas, opts AnnotationOptions) {
	if opts.Size == 0.0 {
		opts.Size = 10.0
	}
	if opts.Fill == (color.RGBA{}) {
		opts.Fill = white
	}
	c.AddElement(Arrow{
		From:     opts.XYText,
		To:       opts.XY,
		Stroke:   Solid(opts.Color),
		Width:    2.0,
		HeadSize: 20.0,
		Rad:      opts.Rad,
		Z:        opts.Z,
	})
	c.AddElement(Text{
		At:     opts.XYText,
		Text:   opts.Label,
		Size:   opts.Size,
		Bold:   true,
		Color:  Solid(opts.TextColor),
		HAlign: HCenter,
		VAlign: VCenter,
		Background: &TextBackground{
			Fill:      Transparent(opts.Fill, 0.9),
			Edge:      Transparent(opts.Color, 0.9),
			EdgeWidth: 1.5,
			Pad:       0.5 * opts.Size,
		},
		Z: opts.Z + 1,
	})
}

////////////////////////////////////////////////////////////////

// DrawLegend appends a legend. A zero font size defaults to 10pt and a zero frame to white at 0.9 opacity with a black edge.
func DrawLegend(c *Canvas, l Legend) {
	if l.FontSize == 0.0 {
		l.FontSize = 10.0
	}
	if l.Frame.IsZero() {
		l.Frame = Transparent(white, 0.9)
	}
	if l.Edge.IsZero() {
		l.Edge = Solid(black)
	}
	if l.EdgeWidth == 0.0 {
		l.EdgeWidth = 1.0
	}
	if l.Z == 0 {
		l.Z = 10
	}
	l.Entries = append([]LegendEntry{}, l.Entries...)
	c.AddElement(l)
}

// LegendEntries returns a line entry for every labeled curve and scatter cloud, in insertion order.
func (c *Canvas) LegendEntries() []LegendEntry {
	var entries []LegendEntry
	for _, e := range c.elements {
		switch e := e.(type) {
		case Curve:
			if e.Label != "" {
				entries = append(entries, LegendEntry{
					Label:     e.Label,
					Line:      e.Stroke,
					LineWidth: e.Width,
					LineStyle: e.Line,
					Marker:    e.Marker,
				})
			}
		case ScatterCloud:
			if e.Label != "" && 0 < len(e.Markers) {
				m := e.Markers[0]
				entries = append(entries, LegendEntry{
					Label:  e.Label,
					Line:   m.Fill,
					Marker: m.Shape,
				})
			}
		}
	}
	return entries
}
