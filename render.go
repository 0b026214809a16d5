package diagram

import (
	"fmt"
	"image/color"
	"math"

	"github.com/tdewolff/canvas"
	"gonum.org/v1/plot"
)

// mark is one concrete drawing operation in page millimetres.
type mark struct {
	path   *canvas.Path
	fill   color.RGBA
	stroke color.RGBA
	width  float64 // mm
	dashes []float64

	text   *canvas.Text
	at     Point
	rotate float64 // degrees CCW around at

	bounds Rect
}

// scene is the flattened, ordered list of marks of a figure.
type scene struct {
	fonts *Fonts
	marks []mark
}

func (s *scene) add(m mark) {
	s.marks = append(s.marks, m)
}

// Bounds returns the extent of all marks.
func (s *scene) Bounds() Rect {
	r := Rect{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
	for _, m := range s.marks {
		r = r.AddPoint(Pt(m.bounds.X0, m.bounds.Y0)).AddPoint(Pt(m.bounds.X1, m.bounds.Y1))
	}
	if r.X1 < r.X0 {
		return Rect{}
	}
	return r
}

func pt(v float64) float64 {
	return v * MmPerPt
}

// dashes returns the matplotlib "--" pattern scaled by the stroke width in mm.
func dashes(width float64) []float64 {
	width = math.Max(width, pt(1.0))
	return []float64{3.7 * width, 1.6 * width}
}

func (s *scene) strokePath(p *canvas.Path, bounds Rect, col color.RGBA, width float64, line LineStyle) {
	m := mark{
		path:   p,
		stroke: col,
		width:  width,
		bounds: bounds.Expand(width / 2.0),
	}
	if line == LineDashed {
		m.dashes = dashes(width)
	}
	s.add(m)
}

func (s *scene) fillPath(p *canvas.Path, bounds Rect, col color.RGBA) {
	s.add(mark{
		path:   p,
		fill:   col,
		bounds: bounds,
	})
}

func polyline(points []Point, closed bool) *canvas.Path {
	p := &canvas.Path{}
	for i, q := range points {
		if i == 0 {
			p.MoveTo(q.X, q.Y)
		} else {
			p.LineTo(q.X, q.Y)
		}
	}
	if closed && 0 < len(points) {
		p.Close()
	}
	return p
}

////////////////////////////////////////////////////////////////

// buildScene lays out every canvas of the figure in page coordinates.
func buildScene(fig *Figure) (*scene, error) {
	if fig.released {
		return nil, ErrReleased
	}
	s := &scene{fonts: fig.fonts}
	for _, c := range fig.canvases {
		if c.mode == AxisFramed && c.grid {
			s.grid(c)
		}
		for _, e := range c.Elements() {
			s.element(c, e)
		}
		if c.mode == AxisFramed {
			s.frame(c)
		}
		if c.title != "" {
			size := c.titleSize
			if size == 0.0 {
				size = 14.0
			}
			top := Pt(c.rect.X0+c.rect.W()/2.0, c.rect.Y1+pt(15.0))
			s.text(top, c.title, s.fonts.Face(size, black, true, false), HCenter, VBottom, nil)
		}
	}
	return s, nil
}

func (s *scene) element(c *Canvas, e Element) {
	switch e := e.(type) {
	case Box:
		s.box(c, e)
	case Arrow:
		s.arrow(c, e)
	case Marker:
		s.marker(c.ToPage(e.At), e)
	case ScatterCloud:
		for _, m := range e.Markers {
			s.marker(c.ToPage(m.At), m)
		}
	case Region:
		s.region(c, e)
	case Curve:
		s.curve(c, e)
	case Band:
		s.band(c, e)
	case Text:
		face := s.fonts.Face(e.Size, e.Color.RGBA(), e.Bold, e.Italic)
		s.text(c.ToPage(e.At), e.Text, face, e.HAlign, e.VAlign, e.Background)
	case Legend:
		s.legend(c, e)
	default:
		panic(fmt.Sprintf("unknown element %T", e))
	}
}

func (s *scene) box(c *Canvas, b Box) {
	p0 := c.ToPage(Pt(b.Rect.X0-b.Pad, b.Rect.Y0-b.Pad))
	p1 := c.ToPage(Pt(b.Rect.X1+b.Pad, b.Rect.Y1+b.Pad))
	sx, sy := c.scale()
	r := b.Pad * math.Min(sx, sy)
	bounds := Rect{p0.X, p0.Y, p1.X, p1.Y}
	path := canvas.RoundedRectangle(bounds.W(), bounds.H(), r).Translate(p0.X, p0.Y)
	if !b.Fill.IsZero() {
		s.fillPath(path, bounds, b.Fill.RGBA())
	}
	if !b.Stroke.IsZero() && 0.0 < b.StrokeWidth {
		s.strokePath(path, bounds, b.Stroke.RGBA(), pt(b.StrokeWidth), LineSolid)
	}
}

// arrowShrink is the gap left between an arrow and its end points.
const arrowShrink = 2.0 // pt

func (s *scene) arrow(c *Canvas, a Arrow) {
	from, to := c.ToPage(a.From), c.ToPage(a.To)
	chord := to.Sub(from)
	if chord.Length() < 2.0*pt(arrowShrink) {
		return
	}
	from = from.Add(chord.Norm(pt(arrowShrink)))
	to = to.Sub(chord.Norm(pt(arrowShrink)))
	chord = to.Sub(from)

	shaft := &canvas.Path{}
	shaft.MoveTo(from.X, from.Y)
	ctrl := from
	if a.Rad != 0.0 {
		// quadratic control point of a matplotlib arc3 connection
		mid := from.Interpolate(to, 0.5)
		ctrl = Pt(mid.X+a.Rad*chord.Y, mid.Y-a.Rad*chord.X)
		shaft.QuadTo(ctrl.X, ctrl.Y, to.X, to.Y)
	} else {
		shaft.LineTo(to.X, to.Y)
	}

	width := pt(a.Width)
	dir := to.Sub(ctrl).Norm(1.0)
	if a.Rad == 0.0 {
		dir = chord.Norm(1.0)
	}
	length, half := pt(0.4*a.HeadSize), pt(0.2*a.HeadSize)
	base := to.Sub(dir.Mul(length))
	left := base.Add(dir.Rot90CCW().Mul(half))
	right := base.Sub(dir.Rot90CCW().Mul(half))
	head := polyline([]Point{left, to, right}, false)

	line := LineSolid
	if a.Dashed {
		line = LineDashed
	}
	col := a.Stroke.RGBA()
	s.strokePath(shaft, boundsOf(from, ctrl, to), col, width, line)
	s.strokePath(head, boundsOf(left, to, right), col, width, LineSolid)
}

func (s *scene) marker(at Point, m Marker) {
	r := pt(m.Radius)
	var path *canvas.Path
	switch m.Shape {
	case MarkerNone:
		return
	case MarkerSquare:
		path = canvas.Rectangle(2.0*r, 2.0*r).Translate(at.X-r, at.Y-r)
	case MarkerTriangle:
		path = canvas.RegularPolygon(3, r, true).Translate(at.X, at.Y)
	default:
		path = canvas.Circle(r).Translate(at.X, at.Y)
	}
	bounds := Rect{at.X - r, at.Y - r, at.X + r, at.Y + r}
	if !m.Fill.IsZero() {
		s.fillPath(path, bounds, m.Fill.RGBA())
	}
	if !m.Edge.IsZero() && 0.0 < m.EdgeWidth {
		s.strokePath(path, bounds, m.Edge.RGBA(), pt(m.EdgeWidth), LineSolid)
	}
}

func (s *scene) region(c *Canvas, r Region) {
	var path *canvas.Path
	var bounds Rect
	switch r.Shape {
	case RegionRect:
		p0 := c.ToPage(Pt(r.Center.X-r.Width/2.0, r.Center.Y-r.Height/2.0))
		p1 := c.ToPage(Pt(r.Center.X+r.Width/2.0, r.Center.Y+r.Height/2.0))
		bounds = Rect{p0.X, p0.Y, p1.X, p1.Y}
		path = canvas.Rectangle(bounds.W(), bounds.H()).Translate(p0.X, p0.Y)
	case RegionArc:
		const n = 64
		points := make([]Point, n+1)
		for i := range points {
			theta := (r.Theta0 + (r.Theta1-r.Theta0)*float64(i)/n) * math.Pi / 180.0
			sin, cos := math.Sincos(theta)
			points[i] = c.ToPage(Pt(r.Center.X+r.Width/2.0*cos, r.Center.Y+r.Height/2.0*sin))
		}
		path = polyline(points, false)
		bounds = boundsOf(points...)
	default:
		center := c.ToPage(r.Center)
		sx, sy := c.scale()
		rx, ry := r.Width/2.0*sx, r.Height/2.0*sy
		path = canvas.Ellipse(rx, ry).Translate(center.X, center.Y)
		bounds = Rect{center.X - rx, center.Y - ry, center.X + rx, center.Y + ry}
	}
	if !r.Fill.IsZero() && r.Shape != RegionArc {
		s.fillPath(path, bounds, r.Fill.RGBA())
	}
	if !r.Stroke.IsZero() && 0.0 < r.StrokeWidth {
		s.strokePath(path, bounds, r.Stroke.RGBA(), pt(r.StrokeWidth), r.Line)
	}
}

func (s *scene) curve(c *Canvas, cv Curve) {
	if len(cv.Points) == 0 {
		return
	}
	points := make([]Point, len(cv.Points))
	for i, p := range cv.Points {
		points[i] = c.ToPage(p)
	}
	s.strokePath(polyline(points, false), boundsOf(points...), cv.Stroke.RGBA(), pt(cv.Width), cv.Line)

	every := cv.MarkEvery
	if every <= 0 {
		every = 1
	}
	for i := 0; i < len(points); i += every {
		s.marker(points[i], Marker{
			Shape:  cv.Marker,
			Radius: cv.MarkerRadius,
			Fill:   cv.Stroke,
		})
	}
}

func (s *scene) band(c *Canvas, b Band) {
	n := len(b.Xs)
	if n == 0 {
		return
	}
	points := make([]Point, 0, 2*n)
	for i := 0; i < n; i++ {
		points = append(points, c.ToPage(Pt(b.Xs[i], b.Upper[i])))
	}
	for i := n - 1; 0 <= i; i-- {
		points = append(points, c.ToPage(Pt(b.Xs[i], b.Lower[i])))
	}
	s.fillPath(polyline(points, true), boundsOf(points...), b.Fill.RGBA())
}

////////////////////////////////////////////////////////////////

// text lays out s anchored at the page point at and returns its extent, background excluded.
func (s *scene) text(at Point, str string, face *canvas.FontFace, halign HAlign, valign VAlign, bg *TextBackground) Rect {
	if str == "" {
		return Rect{}
	}
	m := measure(face, str)
	h := m.height()

	var top float64
	switch valign {
	case VTop:
		top = at.Y
	case VBottom:
		top = at.Y + h
	case VBaseline:
		top = at.Y + m.ascent + float64(len(m.lines)-1)*m.lineHeight
	default:
		top = at.Y + h/2.0
	}
	var x0 float64
	align := canvas.Center
	switch halign {
	case HLeft:
		x0 = at.X
		align = canvas.Left
	case HRight:
		x0 = at.X - m.width
		align = canvas.Right
	default:
		x0 = at.X - m.width/2.0
	}
	bounds := Rect{x0, top - h, x0 + m.width, top}

	if bg != nil {
		pad := pt(bg.Pad)
		box := bounds.Expand(pad)
		r := math.Min(pad, box.H()/2.0)
		if bg.Shadow {
			shadow := box
			shadow.X0, shadow.X1 = box.X0+pt(2.0), box.X1+pt(2.0)
			shadow.Y0, shadow.Y1 = box.Y0-pt(2.0), box.Y1-pt(2.0)
			s.fillPath(canvas.RoundedRectangle(box.W(), box.H(), r).Translate(shadow.X0, shadow.Y0), shadow, withAlpha(black, 0.3))
		}
		path := canvas.RoundedRectangle(box.W(), box.H(), r).Translate(box.X0, box.Y0)
		if !bg.Fill.IsZero() {
			s.fillPath(path, box, bg.Fill.RGBA())
		}
		if !bg.Edge.IsZero() {
			width := bg.EdgeWidth
			if width == 0.0 {
				width = 1.0
			}
			s.strokePath(path, box, bg.Edge.RGBA(), pt(width), LineSolid)
		}
	}

	baseline := top - m.ascent
	for i, line := range m.lines {
		y := baseline - float64(i)*m.lineHeight
		lb := Rect{bounds.X0, y - m.descent, bounds.X1, y + m.ascent}
		s.add(mark{
			text:   canvas.NewTextLine(face, line, align),
			at:     Pt(at.X, y),
			bounds: lb,
		})
	}
	return bounds
}

// rotatedText lays out a single line rotated by 90 degrees CCW, centered vertically on at with its descenders towards at.X.
func (s *scene) rotatedText(at Point, str string, face *canvas.FontFace) {
	m := measure(face, str)
	s.add(mark{
		text:   canvas.NewTextLine(face, str, canvas.Center),
		at:     at,
		rotate: 90.0,
		bounds: Rect{at.X - m.ascent, at.Y - m.width/2.0, at.X + m.descent, at.Y + m.width/2.0},
	})
}

////////////////////////////////////////////////////////////////

// Ticks returns the tick positions of axis within [lo, hi]. Explicit ticks take precedence, then a fixed step; otherwise the major ticks chosen by gonum/plot are used.
func Ticks(axis Axis, lo, hi float64) []float64 {
	var ticks []float64
	switch {
	case 0 < len(axis.Ticks):
		for _, t := range axis.Ticks {
			if lo-Epsilon <= t && t <= hi+Epsilon {
				ticks = append(ticks, t)
			}
		}
	case 0.0 < axis.Step:
		for t := math.Ceil(lo/axis.Step-Epsilon) * axis.Step; t <= hi+Epsilon; t += axis.Step {
			ticks = append(ticks, t)
		}
	default:
		for _, t := range (plot.DefaultTicks{}).Ticks(lo, hi) {
			if t.Label != "" {
				ticks = append(ticks, t.Value)
			}
		}
	}
	return ticks
}

var gridColor = color.RGBA{176, 176, 176, 255}

func (s *scene) grid(c *Canvas) {
	b := c.bounds
	width := pt(0.8)
	col := withAlpha(gridColor, 0.3)
	for _, x := range Ticks(c.xaxis, b.X0, b.X1) {
		p0, p1 := c.ToPage(Pt(x, b.Y0)), c.ToPage(Pt(x, b.Y1))
		s.strokePath(polyline([]Point{p0, p1}, false), boundsOf(p0, p1), col, width, LineDashed)
	}
	for _, y := range Ticks(c.yaxis, b.Y0, b.Y1) {
		p0, p1 := c.ToPage(Pt(b.X0, y)), c.ToPage(Pt(b.X1, y))
		s.strokePath(polyline([]Point{p0, p1}, false), boundsOf(p0, p1), col, width, LineDashed)
	}
}

func tickLabel(axis Axis, v float64) string {
	format := axis.Format
	if format == "" {
		format = "%g"
	}
	if equal(v, 0.0) {
		v = 0.0
	}
	return fmt.Sprintf(format, v)
}

func (s *scene) frame(c *Canvas) {
	r := c.rect
	s.strokePath(canvas.Rectangle(r.W(), r.H()).Translate(r.X0, r.Y0), r, black, pt(0.8), LineSolid)

	tickLen, tickPad := pt(3.5), pt(3.5)
	xsize, ysize := c.xaxis.TickSize, c.yaxis.TickSize
	if xsize == 0.0 {
		xsize = 10.0
	}
	if ysize == 0.0 {
		ysize = 10.0
	}

	labelBottom := r.Y0 - tickLen - tickPad
	xface := s.fonts.Face(xsize, black, false, false)
	for _, x := range Ticks(c.xaxis, c.bounds.X0, c.bounds.X1) {
		p := c.ToPage(Pt(x, c.bounds.Y0))
		q := Pt(p.X, p.Y-tickLen)
		s.strokePath(polyline([]Point{p, q}, false), boundsOf(p, q), black, pt(0.8), LineSolid)
		tb := s.text(Pt(p.X, q.Y-tickPad), tickLabel(c.xaxis, x), xface, HCenter, VTop, nil)
		labelBottom = math.Min(labelBottom, tb.Y0)
	}

	labelLeft := r.X0 - tickLen - tickPad
	yface := s.fonts.Face(ysize, black, false, false)
	for _, y := range Ticks(c.yaxis, c.bounds.Y0, c.bounds.Y1) {
		p := c.ToPage(Pt(c.bounds.X0, y))
		q := Pt(p.X-tickLen, p.Y)
		s.strokePath(polyline([]Point{p, q}, false), boundsOf(p, q), black, pt(0.8), LineSolid)
		tb := s.text(Pt(q.X-tickPad, p.Y), tickLabel(c.yaxis, y), yface, HRight, VCenter, nil)
		labelLeft = math.Min(labelLeft, tb.X0)
	}

	if c.xaxis.Label != "" {
		face := s.fonts.Face(labelSize(c.xaxis), black, true, false)
		s.text(Pt(r.X0+r.W()/2.0, labelBottom-pt(4.0)), c.xaxis.Label, face, HCenter, VTop, nil)
	}
	if c.yaxis.Label != "" {
		face := s.fonts.Face(labelSize(c.yaxis), black, true, false)
		m := measure(face, c.yaxis.Label)
		s.rotatedText(Pt(labelLeft-pt(4.0)-m.descent, r.Y0+r.H()/2.0), c.yaxis.Label, face)
	}
}

func labelSize(axis Axis) float64 {
	if axis.LabelSize == 0.0 {
		return 13.0
	}
	return axis.LabelSize
}

////////////////////////////////////////////////////////////////

// legend lays out rows of handle and label inside the canvas corner given by l.Loc.
func (s *scene) legend(c *Canvas, l Legend) {
	if len(l.Entries) == 0 {
		return
	}
	face := s.fonts.Face(l.FontSize, black, false, false)
	em := pt(l.FontSize)
	pad, handle, handlePad, spacing, border := 0.4*em, 2.0*em, 0.8*em, 0.5*em, 0.5*em

	labelWidth := 0.0
	rowHeight := 0.0
	for _, entry := range l.Entries {
		m := measure(face, entry.Label)
		labelWidth = math.Max(labelWidth, m.width)
		rowHeight = math.Max(rowHeight, m.height())
	}
	n := float64(len(l.Entries))
	w := 2.0*pad + handle + handlePad + labelWidth
	h := 2.0*pad + n*rowHeight + (n-1.0)*spacing

	var x0, y0 float64
	switch l.Loc {
	case LowerLeft, UpperLeft:
		x0 = c.rect.X0 + border
	default:
		x0 = c.rect.X1 - border - w
	}
	switch l.Loc {
	case LowerLeft, LowerRight:
		y0 = c.rect.Y0 + border
	default:
		y0 = c.rect.Y1 - border - h
	}
	box := Rect{x0, y0, x0 + w, y0 + h}
	frame := canvas.RoundedRectangle(w, h, 0.2*em).Translate(x0, y0)
	if l.Shadow {
		shadow := Rect{x0 + pt(2.0), y0 - pt(2.0), x0 + w + pt(2.0), y0 + h - pt(2.0)}
		s.fillPath(canvas.RoundedRectangle(w, h, 0.2*em).Translate(shadow.X0, shadow.Y0), shadow, withAlpha(black, 0.3))
	}
	s.fillPath(frame, box, l.Frame.RGBA())
	s.strokePath(frame, box, l.Edge.RGBA(), pt(l.EdgeWidth), LineSolid)

	for i, entry := range l.Entries {
		top := box.Y1 - pad - float64(i)*(rowHeight+spacing)
		mid := top - rowHeight/2.0
		hx0, hx1 := x0+pad, x0+pad+handle
		if entry.Patch {
			ph := 0.7 * rowHeight
			r := Rect{hx0, mid - ph/2.0, hx1, mid + ph/2.0}
			path := canvas.Rectangle(r.W(), r.H()).Translate(r.X0, r.Y0)
			s.fillPath(path, r, entry.Fill.RGBA())
			if !entry.Edge.IsZero() {
				s.strokePath(path, r, entry.Edge.RGBA(), pt(1.0), LineSolid)
			}
		} else {
			a, b := Pt(hx0, mid), Pt(hx1, mid)
			if 0.0 < entry.LineWidth {
				s.strokePath(polyline([]Point{a, b}, false), boundsOf(a, b), entry.Line.RGBA(), pt(entry.LineWidth), entry.LineStyle)
			}
			s.marker(a.Interpolate(b, 0.5), Marker{Shape: entry.Marker, Radius: 0.35 * l.FontSize, Fill: entry.Line})
		}
		s.text(Pt(hx1+handlePad, mid), entry.Label, face, HLeft, VCenter, nil)
	}
}

////////////////////////////////////////////////////////////////

// draw renders the scene onto a new surface covering page, with page's lower-left corner at the surface origin and a white background.
func (s *scene) draw(page Rect) *canvas.Canvas {
	surface := canvas.New(page.W(), page.H())
	ctx := canvas.NewContext(surface)
	ctx.SetFillColor(white)
	ctx.SetStrokeColor(canvas.Transparent)
	ctx.DrawPath(0.0, 0.0, canvas.Rectangle(page.W(), page.H()))

	dx, dy := -page.X0, -page.Y0
	for _, m := range s.marks {
		if m.text != nil {
			ctx.SetView(canvas.Identity.Translate(m.at.X+dx, m.at.Y+dy).Rotate(m.rotate))
			ctx.DrawText(0.0, 0.0, m.text)
			ctx.SetView(canvas.Identity)
			continue
		}
		fill, stroke := color.Color(canvas.Transparent), color.Color(canvas.Transparent)
		if m.fill.A != 0 {
			fill = m.fill
		}
		if m.stroke.A != 0 {
			stroke = m.stroke
		}
		ctx.SetFillColor(fill)
		ctx.SetStrokeColor(stroke)
		ctx.SetStrokeWidth(m.width)
		ctx.SetDashes(0.0, m.dashes...)
		ctx.DrawPath(dx, dy, m.path)
	}
	return surface
}
