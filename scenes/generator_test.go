package scenes

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gfuzz-paper/diagram"
	"github.com/tdewolff/test"
)

func TestGenerators(t *testing.T) {
	gens := All()
	test.T(t, len(gens), 3)

	names := []string{}
	for _, g := range gens {
		names = append(names, g.Name)
		_, err := diagram.LoadPalette(g.Palette)
		test.Error(t, err)

		h, ok := Lookup(g.Name)
		test.T(t, ok, true)
		test.String(t, h.Stem, g.Stem)
	}
	test.T(t, names, []string{"approach-comparison", "gfuzz-architecture", "coverage-over-time"})

	_, ok := Lookup("missing")
	test.T(t, ok, false)
}

func TestGeneratorRun(t *testing.T) {
	for _, g := range All() {
		t.Run(g.Name, func(t *testing.T) {
			dir := t.TempDir()
			spec := diagram.DefaultExportSpec("")
			spec.Dir = dir
			spec.DPI = 72.0

			paths, err := g.Run(spec)
			test.Error(t, err)
			test.T(t, paths, []string{filepath.Join(dir, g.Stem+".pdf"), filepath.Join(dir, g.Stem+".png")})
			for _, path := range paths {
				info, err := os.Stat(path)
				test.Error(t, err)
				test.That(t, 0 < info.Size(), "empty output", path)
			}
		})
	}
}

func TestGeneratorRunError(t *testing.T) {
	g, _ := Lookup("gfuzz-architecture")
	spec := diagram.DefaultExportSpec("")
	spec.Dir = filepath.Join(t.TempDir(), "missing")
	_, err := g.Run(spec)
	test.That(t, errors.Is(err, diagram.ErrIO), "expected ErrIO, got", err)

	g.Palette = "missing"
	_, err = g.Run(diagram.DefaultExportSpec(""))
	test.That(t, err != nil, "unknown palette must fail")
}

func TestConfirmation(t *testing.T) {
	test.String(t, Confirmation(nil), "Generated: nothing")
	test.String(t, Confirmation([]string{"a.pdf"}), "Generated: a.pdf")
	test.String(t, Confirmation([]string{"a.pdf", "a.png"}), "Generated: a.pdf and a.png")
	test.String(t, Confirmation([]string{"a", "b", "c"}), "Generated: a, b and c")
}
