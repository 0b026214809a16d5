package scenes

import (
	"testing"

	"github.com/gfuzz-paper/diagram"
	"github.com/tdewolff/test"
)

func TestApproachComparison(t *testing.T) {
	fig, err := ApproachComparison(diagram.MustLoadPalette("approach_comparison"))
	test.Error(t, err)
	defer fig.Release()

	canvases := fig.Canvases()
	test.T(t, len(canvases), 2)
	left, right := canvases[0], canvases[1]
	test.String(t, left.Title(), "Traditional Control-Flow\nDirected Fuzzing")
	test.String(t, right.Title(), "GFuzz: State-Diversity\nGuided Approach")

	// entry and target boxes, nodes, edges, caption
	test.T(t, left.Len(), 2*2+len(pathNodes)+len(pathEdges)+1)
	// plus the state cloud, its region and its label
	test.T(t, right.Len(), left.Len()+3)

	var cloud *diagram.ScatterCloud
	for _, e := range right.Elements() {
		if sc, ok := e.(diagram.ScatterCloud); ok {
			cloud = &sc
		}
	}
	test.That(t, cloud != nil, "right panel must hold the state cloud")
	test.T(t, len(cloud.Markers), StateCount)
	for _, p := range cloud.Points() {
		test.That(t, StateClamp.Contains(p), "state outside the clamp box:", p)
	}
	test.T(t, cloud.Points(), diagram.SampleCloud(StateCenter, StateSpread, StateSpread, StateCount, StateClamp, StateSeed))
}
