package scenes

import (
	"testing"

	"github.com/gfuzz-paper/diagram"
	"github.com/tdewolff/test"
)

func TestArchitecture(t *testing.T) {
	fig, err := Architecture(diagram.MustLoadPalette("architecture"))
	test.Error(t, err)
	defer fig.Release()

	canvases := fig.Canvases()
	test.T(t, len(canvases), 1)
	c := canvases[0]
	test.T(t, c.AxisMode(), diagram.AxisNone)

	labeled := 0
	for _, f := range flows {
		if f.label != "" {
			labeled++
		}
	}
	// backgrounds, phase labels, input and corpus boxes, components, flows, arc, arc label, legend
	test.T(t, c.Len(), 2+2+2*2+4*len(components)+len(flows)+labeled+1+1+1)

	elements := c.Elements()
	test.T(t, elements[0].Kind(), diagram.KindRegion)
	test.T(t, elements[len(elements)-1].Kind(), diagram.KindLegend)
	legend := elements[len(elements)-1].(diagram.Legend)
	test.T(t, len(legend.Entries), 4)
	test.T(t, legend.Loc, diagram.LowerLeft)
}

func TestArchitectureTables(t *testing.T) {
	test.T(t, len(components), 8)
	test.T(t, len(flows), 14)
	for _, f := range flows {
		test.That(t, !f.from.Equals(f.to), "degenerate flow:", f.from, f.to)
	}
}
