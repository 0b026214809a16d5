package scenes

import (
	"fmt"

	"github.com/gfuzz-paper/diagram"
)

// CoverageData is the mean edge coverage (in percent) and its standard deviation over a number of trials, sampled at Hours.
type CoverageData struct {
	Hours     []float64
	AFLGoMean []float64
	AFLGoStd  []float64
	GFuzzMean []float64
	GFuzzStd  []float64
	Trials    int
}

// DefaultCoverage returns the libxml2 campaign: six hours in half-hour steps, ten trials.
func DefaultCoverage() CoverageData {
	hours := make([]float64, 13)
	for i := range hours {
		hours[i] = 0.5 * float64(i)
	}
	return CoverageData{
		Hours:     hours,
		AFLGoMean: []float64{0, 12, 22, 28, 33, 37, 39.5, 41.5, 43, 44, 45, 45.8, 46.3},
		AFLGoStd:  []float64{0, 1.5, 2, 2.2, 2.3, 2.2, 2.1, 2, 1.9, 1.9, 1.8, 1.8, 1.8},
		GFuzzMean: []float64{0, 15, 28, 35, 41, 45, 47.5, 49, 50, 50.8, 51.2, 51.5, 51.7},
		GFuzzStd:  []float64{0, 1.8, 2.3, 2.5, 2.6, 2.5, 2.4, 2.3, 2.2, 2.1, 2.1, 2.1, 2.1},
		Trials:    10,
	}
}

// Final returns the last mean coverage of both fuzzers.
func (d CoverageData) Final() (aflgo, gfuzz float64) {
	if len(d.AFLGoMean) == 0 || len(d.GFuzzMean) == 0 {
		return 0.0, 0.0
	}
	return d.AFLGoMean[len(d.AFLGoMean)-1], d.GFuzzMean[len(d.GFuzzMean)-1]
}

// Improvement returns the relative improvement of improved over base in percent. The ratio is undefined for a zero base, for which the result is ±Inf or NaN.
func Improvement(base, improved float64) float64 {
	return (improved - base) / base * 100.0
}

// ImprovementLabel returns the text of the improvement box for the final coverage values. A zero base has no relative improvement and is labeled n/a.
func ImprovementLabel(base, improved float64) string {
	if base == 0.0 {
		return fmt.Sprintf("Improvement: n/a\n(%+.1f percentage points)", improved-base)
	}
	return fmt.Sprintf("Improvement: %+.1f%%\n(%+.1f percentage points)", Improvement(base, improved), improved-base)
}

// CoverageOverTime builds the annotated line chart comparing coverage growth of AFLGo and GFuzz.
func CoverageOverTime(style diagram.Style, data CoverageData) (*diagram.Figure, error) {
	fig, err := diagram.NewFigure(254.0, 152.4)
	if err != nil {
		return nil, err
	}
	c := fig.AddCanvas(diagram.R(28.0, 22.0, 216.0, 116.0), diagram.Rect{X0: -0.2, Y0: 0.0, X1: 6.2, Y1: 60.0})
	c.SetTitle("Edge Coverage Over Time - libxml2 Benchmark", 14.0)
	c.SetAxes(
		diagram.Axis{Label: "Time (hours)", Step: 1.0},
		diagram.Axis{Label: "Edge Coverage (%)", Step: 10.0},
	)

	baseline, improved := style.Color(diagram.RoleBaseline), style.Color(diagram.RoleImproved)
	if err := diagram.DrawCurve(c, diagram.CurveOptions{
		Xs:           data.Hours,
		Ys:           data.AFLGoMean,
		StdDevs:      data.AFLGoStd,
		Color:        baseline,
		Marker:       diagram.MarkerCircle,
		Label:        "AFLGo",
		Width:        style.LineWidth,
		MarkerRadius: style.MarkerSize,
		BandAlpha:    style.Alpha,
	}); err != nil {
		fig.Release()
		return nil, fmt.Errorf("aflgo: %w", err)
	}
	if err := diagram.DrawCurve(c, diagram.CurveOptions{
		Xs:           data.Hours,
		Ys:           data.GFuzzMean,
		StdDevs:      data.GFuzzStd,
		Color:        improved,
		Marker:       diagram.MarkerSquare,
		Label:        "GFuzz",
		Width:        style.LineWidth,
		MarkerRadius: style.MarkerSize,
		BandAlpha:    style.Alpha,
	}); err != nil {
		fig.Release()
		return nil, fmt.Errorf("gfuzz: %w", err)
	}

	diagram.DrawLegend(c, diagram.Legend{
		Entries:   c.LegendEntries(),
		Loc:       diagram.LowerRight,
		FontSize:  12.0,
		Frame:     diagram.Transparent(diagram.MustParseColor("white"), 0.95),
		EdgeWidth: 1.5,
		Shadow:    true,
	})

	aflgo, gfuzz := data.Final()
	end := data.Hours[len(data.Hours)-1]
	diagram.DrawAnnotation(c, diagram.AnnotationOptions{
		XY:        diagram.Pt(end, aflgo),
		XYText:    diagram.Pt(5.2, aflgo-5.0),
		Label:     fmt.Sprintf("AFLGo: %.1f%%", aflgo),
		TextColor: style.Color(diagram.RoleBaselineText),
		Color:     baseline,
		Rad:       0.2,
		Z:         5,
	})
	diagram.DrawAnnotation(c, diagram.AnnotationOptions{
		XY:        diagram.Pt(end, gfuzz),
		XYText:    diagram.Pt(5.2, gfuzz+4.0),
		Label:     fmt.Sprintf("GFuzz: %.1f%%", gfuzz),
		TextColor: style.Color(diagram.RoleImprovedText),
		Color:     improved,
		Rad:       -0.2,
		Z:         5,
	})

	diagram.DrawText(c, diagram.Text{
		At:     diagram.Pt(3.0, 5.0),
		Text:   ImprovementLabel(aflgo, gfuzz),
		Size:   11.0,
		HAlign: diagram.HCenter,
		VAlign: diagram.VBaseline,
		Background: &diagram.TextBackground{
			Fill:      diagram.Transparent(style.Color(diagram.RoleHighlight), 0.9),
			Edge:      diagram.Transparent(diagram.MustParseColor("black"), 0.9),
			EdgeWidth: 2.0,
			Pad:       8.8,
		},
		Z: 5,
	})
	diagram.DrawText(c, diagram.Text{
		At:     diagram.Pt(0.5, 57.0),
		Text:   fmt.Sprintf("Shaded regions represent ±1 standard deviation (n=%d trials)", data.Trials),
		Size:   9.0,
		Italic: true,
		Color:  diagram.Solid(style.Color(diagram.RoleNote)),
		HAlign: diagram.HLeft,
		VAlign: diagram.VBaseline,
	})
	return fig, nil
}
