package scenes

import (
	"image/color"

	"github.com/gfuzz-paper/diagram"
)

type component struct {
	origin, size diagram.Point
	title, body  string
	role         diagram.Role
}

var components = []component{
	{diagram.Pt(0.5, 7), diagram.Pt(2.5, 1.5), "Component 1:\nKey Variable\nIdentification", "Distance-based\nMemory-safety\nSemantic filtering", diagram.RoleComponent},
	{diagram.Pt(3.5, 7), diagram.Pt(2.5, 1.5), "Component 2:\nDistance\nComputation", "Call graph\nCFG analysis\nTarget distances", diagram.RoleComponent},
	{diagram.Pt(2, 6.5), diagram.Pt(2, 0.4), "Instrumentation", "", diagram.RoleInstrument},
	{diagram.Pt(7.8, 7), diagram.Pt(2.5, 1.5), "Component 3:\nState\nMonitoring", "Type-specific\nencoding\nShared memory", diagram.RoleMonitor},
	{diagram.Pt(10.8, 7), diagram.Pt(2.5, 1.5), "Component 4:\nDiversity\nEvaluation", "Similarity metrics\nState history\nDiversity score", diagram.RoleMonitor},
	{diagram.Pt(7.8, 5), diagram.Pt(2.5, 1.2), "Seed\nSelection", "Combined score\n(coverage + diversity)", diagram.RoleSelection},
	{diagram.Pt(10.8, 5), diagram.Pt(2.5, 1.2), "Mutation &\nExecution", "Energy allocation\nTest generation", diagram.RoleSelection},
	{diagram.Pt(9.3, 3.2), diagram.Pt(2.5, 1.2), "Adaptive\nScheduling", "Weight adjustment\nλ-based learning", diagram.RoleAdaptive},
}

type flow struct {
	from, to diagram.Point
	label    string
	role     diagram.Role
	width    float64
}

var flows = []flow{
	// preprocessing
	{diagram.Pt(1.75, 9.2), diagram.Pt(1.75, 8.5), "BBtargets.txt", diagram.RoleData, 2},
	{diagram.Pt(1.75, 8.5), diagram.Pt(3, 8.5), "", diagram.RoleArrow, 2},
	{diagram.Pt(1.75, 8.5), diagram.Pt(2, 7.75), "", diagram.RoleArrow, 2},
	{diagram.Pt(3, 7.75), diagram.Pt(4.75, 7.75), "key vars", diagram.RoleArrow, 2},
	{diagram.Pt(4.75, 7.2), diagram.Pt(3, 6.7), "", diagram.RoleArrow, 2},

	// hand-over to the runtime phase
	{diagram.Pt(4, 6.7), diagram.Pt(9.05, 8.5), "Instrumented\nBinary", diagram.RoleInstrument, 3},

	// runtime
	{diagram.Pt(9.05, 8.5), diagram.Pt(9.05, 7.5), "", diagram.RoleArrow, 2},
	{diagram.Pt(12.05, 8.5), diagram.Pt(12.05, 7.5), "", diagram.RoleArrow, 2},
	{diagram.Pt(9.05, 7), diagram.Pt(9.05, 6.2), "state\nvector", diagram.RoleArrow, 2},
	{diagram.Pt(12.05, 7), diagram.Pt(12.05, 6.2), "diversity", diagram.RoleArrow, 2},
	{diagram.Pt(10.3, 5.6), diagram.Pt(11.8, 5.6), "", diagram.RoleArrow, 2},
	{diagram.Pt(11.8, 5), diagram.Pt(10.55, 4.4), "", diagram.RoleArrow, 2},

	// feedback
	{diagram.Pt(10.55, 3.2), diagram.Pt(10.55, 2.3), "update\nweights", diagram.RoleArrow, 2},
	{diagram.Pt(7.8, 1.9), diagram.Pt(7.8, 5.5), "select\nseed", diagram.RoleAdaptive, 2},
}

// Architecture builds the component diagram of the preprocessing and fuzzing phases.
func Architecture(style diagram.Style) (*diagram.Figure, error) {
	fig, err := diagram.NewFigure(355.6, 254.0)
	if err != nil {
		return nil, err
	}
	c := fig.AddCanvas(diagram.R(0.0, 0.0, 355.6, 254.0), diagram.Rect{X0: 0.0, Y0: 0.0, X1: 14.0, Y1: 10.0})

	phaseLabel := style.Color(diagram.RolePhaseLabel)
	runtimeEdge := style.Color(diagram.RoleRuntimeEdge)
	diagram.DrawBackground(c, diagram.Pt(0.3, 6.0), diagram.Pt(6.4, 3.5),
		diagram.Transparent(style.Color(diagram.RolePreprocessing), 0.3), diagram.Transparent(phaseLabel, 0.3), 2.0)
	diagram.DrawBackground(c, diagram.Pt(7.3, 1.0), diagram.Pt(6.4, 8.5),
		diagram.Transparent(style.Color(diagram.RoleRuntime), 0.3), diagram.Transparent(runtimeEdge, 0.3), 2.0)
	drawPhaseLabel(c, diagram.Pt(3.5, 9.7), "PREPROCESSING PHASE", phaseLabel)
	drawPhaseLabel(c, diagram.Pt(10.5, 9.7), "FUZZING PHASE (Runtime)", runtimeEdge)

	data := style.Color(diagram.RoleData)
	diagram.DrawLabelBox(c, diagram.Pt(1.0, 9.2), diagram.Pt(1.5, 0.5), "Target\nSpec", data, 0.7, 0.05, 9.0)
	for _, comp := range components {
		diagram.DrawBox(c, comp.origin, comp.size, comp.title, comp.body, style.Color(comp.role), style.Alpha)
	}
	diagram.DrawLabelBox(c, diagram.Pt(7.8, 1.5), diagram.Pt(5.5, 0.8), "Seed Corpus", data, 0.7, 0.05, 10.0)

	for _, f := range flows {
		diagram.DrawArrow(c, f.from, f.to, f.label, style.Color(f.role), f.width)
	}

	adaptive := style.Color(diagram.RoleAdaptive)
	diagram.DrawArc(c, diagram.Pt(10.55, 3.8), 4.0, 3.0, 180.0, 360.0, adaptive, 2.5, diagram.LineDashed)
	diagram.DrawText(c, diagram.Text{
		At:     diagram.Pt(12.8, 4.5),
		Text:   "Feedback\nLoop",
		Size:   8.0,
		Bold:   true,
		Italic: true,
		Color:  diagram.Solid(adaptive),
		HAlign: diagram.HLeft,
		VAlign: diagram.VBottom,
	})

	diagram.DrawLegend(c, diagram.Legend{
		Loc:      diagram.LowerLeft,
		FontSize: 9.0,
		Entries: []diagram.LegendEntry{
			{
				Label: "Preprocessing (Offline)",
				Patch: true,
				Fill:  diagram.Transparent(style.Color(diagram.RolePreprocessing), 0.3),
				Edge:  diagram.Transparent(phaseLabel, 0.3),
			},
			{
				Label: "Runtime (Online)",
				Patch: true,
				Fill:  diagram.Transparent(style.Color(diagram.RoleRuntime), 0.3),
				Edge:  diagram.Transparent(runtimeEdge, 0.3),
			},
			{
				Label:     "Data Flow",
				Line:      diagram.Solid(data),
				LineWidth: 3.0,
				Marker:    diagram.MarkerTriangle,
			},
			{
				Label:     "Feedback",
				Line:      diagram.Solid(adaptive),
				LineWidth: 3.0,
				LineStyle: diagram.LineDashed,
				Marker:    diagram.MarkerTriangle,
			},
		},
	})
	return fig, nil
}

func drawPhaseLabel(c *diagram.Canvas, at diagram.Point, label string, col color.RGBA) {
	diagram.DrawText(c, diagram.Text{
		At:     at,
		Text:   label,
		Size:   13.0,
		Bold:   true,
		Color:  diagram.Solid(col),
		HAlign: diagram.HCenter,
		VAlign: diagram.VBaseline,
		Background: &diagram.TextBackground{
			Fill:      diagram.Solid(diagram.MustParseColor("white")),
			Edge:      diagram.Solid(col),
			EdgeWidth: 2.0,
			Pad:       3.9,
		},
		Z: 3,
	})
}
