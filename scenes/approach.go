package scenes

import (
	"github.com/gfuzz-paper/diagram"
)

// Panel geometry shared by both halves of the approach comparison, in logical units of a 10x10 panel.
var (
	panelBounds = diagram.Rect{X0: 0.0, Y0: 0.0, X1: 10.0, Y1: 10.0}

	pathNodes = []diagram.Point{
		{X: 2, Y: 6.5}, {X: 4, Y: 7}, {X: 4, Y: 5}, {X: 6, Y: 6}, {X: 6, Y: 4}, {X: 7, Y: 3},
	}

	pathEdges = [][2]diagram.Point{
		{{X: 2, Y: 8.5}, {X: 2, Y: 6.5}},
		{{X: 2, Y: 6.5}, {X: 4, Y: 7}},
		{{X: 2, Y: 6.5}, {X: 4, Y: 5}},
		{{X: 4, Y: 7}, {X: 6, Y: 6}},
		{{X: 4, Y: 5}, {X: 6, Y: 4}},
		{{X: 6, Y: 6}, {X: 7, Y: 3}},
		{{X: 6, Y: 4}, {X: 7, Y: 3}},
		{{X: 7, Y: 3}, {X: 8, Y: 1.5}},
	}
)

// State space cloud around the target.
var (
	StateCenter  = diagram.Pt(8.0, 1.5)
	StateSpread  = 1.2
	StateCount   = 40
	StateSeed    = uint64(42)
	StateClamp   = diagram.Rect{X0: 5.5, Y0: 0.0, X1: 9.5, Y1: 4.0}
	stateEllipse = diagram.Pt(3.5, 3.0)
)

// ApproachComparison builds the two-panel figure contrasting control-flow directed fuzzing with state-diversity guided fuzzing.
func ApproachComparison(style diagram.Style) (*diagram.Figure, error) {
	fig, err := diagram.NewFigure(304.8, 127.0)
	if err != nil {
		return nil, err
	}

	left := fig.AddCanvas(diagram.R(8.0, 6.0, 136.0, 100.0), panelBounds)
	left.SetTitle("Traditional Control-Flow\nDirected Fuzzing", 14.0)
	drawControlFlow(left, style)
	diagram.DrawCaption(left, diagram.Pt(5.0, 0.3), "Focus: Reaching Target via Control Flow", 10.0, style.Color(diagram.RoleCaption))

	right := fig.AddCanvas(diagram.R(160.8, 6.0, 136.0, 100.0), panelBounds)
	right.SetTitle("GFuzz: State-Diversity\nGuided Approach", 14.0)
	drawControlFlow(right, style)
	drawStateSpace(right, style)
	diagram.DrawCaption(right, diagram.Pt(5.0, 0.3), "Focus: Control Flow + State Diversity", 10.0, style.Color(diagram.RoleCaption))
	return fig, nil
}

// drawControlFlow draws entry, target, the intermediate program locations and the control-flow edges between them.
func drawControlFlow(c *diagram.Canvas, style diagram.Style) {
	size := diagram.Pt(2.0, 1.0)
	diagram.DrawLabelBox(c, diagram.Pt(1.0, 8.0), size, "Entry", style.Color(diagram.RoleEntry), style.Alpha, 0.1, style.FontSize)
	diagram.DrawLabelBox(c, diagram.Pt(7.0, 1.0), size, "Target", style.Color(diagram.RoleTarget), style.Alpha, 0.1, style.FontSize)

	for _, node := range pathNodes {
		diagram.DrawNode(c, node, 0.3, style.Color(diagram.RolePath), 0.5, 2)
	}
	for _, edge := range pathEdges {
		diagram.DrawArrowStyled(c, diagram.ArrowOptions{
			From:     edge[0],
			To:       edge[1],
			Color:    style.Color(diagram.RolePath),
			Alpha:    0.6,
			Width:    style.LineWidth,
			HeadSize: 20.0,
			Z:        1,
		})
	}
}

// drawStateSpace scatters sampled variable states around the target and outlines the region they occupy.
func drawStateSpace(c *diagram.Canvas, style diagram.Style) {
	state := style.Color(diagram.RoleState)
	diagram.DrawScatterCloud(c, diagram.ScatterOptions{
		Center:  StateCenter,
		SpreadX: StateSpread,
		SpreadY: StateSpread,
		Count:   StateCount,
		Clamp:   StateClamp,
		Seed:    StateSeed,
		Color:   state,
		Edge:    style.Color(diagram.RoleEdge),
		Radius:  style.MarkerSize,
		Label:   "Variable States",
		Z:       3,
	})
	diagram.DrawRegion(c, StateCenter, stateEllipse.X, stateEllipse.Y, state, diagram.LineDashed)
	diagram.DrawText(c, diagram.Text{
		At:     diagram.Pt(8.0, 4.2),
		Text:   "Variable\nState Space",
		Size:   9.0,
		Bold:   true,
		Color:  diagram.Solid(state),
		HAlign: diagram.HCenter,
		VAlign: diagram.VBottom,
		Background: &diagram.TextBackground{
			Fill:      diagram.Transparent(diagram.MustParseColor("white"), 0.8),
			Edge:      diagram.Transparent(state, 0.8),
			EdgeWidth: 1.0,
			Pad:       2.7,
		},
		Z: 4,
	})
}
