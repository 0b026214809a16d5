package scenes

import (
	"fmt"

	"github.com/gfuzz-paper/diagram"
)

// Generator builds one figure and names its output files.
type Generator struct {
	Name    string
	Stem    string
	Palette string
	Build   func(diagram.Style) (*diagram.Figure, error)
}

// All returns the generators in the order the figures appear in the paper.
func All() []Generator {
	return []Generator{
		{
			Name:    "approach-comparison",
			Stem:    "approach_comparison",
			Palette: "approach_comparison",
			Build:   ApproachComparison,
		},
		{
			Name:    "gfuzz-architecture",
			Stem:    "gfuzz_architecture",
			Palette: "architecture",
			Build:   Architecture,
		},
		{
			Name:    "coverage-over-time",
			Stem:    "coverage_over_time",
			Palette: "coverage",
			Build: func(style diagram.Style) (*diagram.Figure, error) {
				return CoverageOverTime(style, DefaultCoverage())
			},
		},
	}
}

// Lookup returns the generator called name.
func Lookup(name string) (Generator, bool) {
	for _, g := range All() {
		if g.Name == name {
			return g, true
		}
	}
	return Generator{}, false
}

// Run builds the figure and exports it with spec, whose stem is replaced by the generator's.
func (g Generator) Run(spec diagram.ExportSpec) ([]string, error) {
	style, err := diagram.LoadPalette(g.Palette)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", g.Name, err)
	}
	fig, err := g.Build(style)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", g.Name, err)
	}
	spec.Stem = g.Stem
	paths, err := diagram.Export(fig, spec)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", g.Name, err)
	}
	return paths, nil
}

// Confirmation returns the line printed after a successful run.
func Confirmation(paths []string) string {
	switch len(paths) {
	case 0:
		return "Generated: nothing"
	case 1:
		return "Generated: " + paths[0]
	}
	s := "Generated: "
	for i, path := range paths {
		if i == len(paths)-1 {
			s += " and "
		} else if 0 < i {
			s += ", "
		}
		s += path
	}
	return s
}
