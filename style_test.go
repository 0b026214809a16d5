package diagram

import (
	"image/color"
	"testing"

	"github.com/tdewolff/test"
)

func TestParseColor(t *testing.T) {
	var tts = []struct {
		s   string
		col color.RGBA
	}{
		{"#4CAF50", color.RGBA{0x4C, 0xAF, 0x50, 255}},
		{"#f44336", color.RGBA{0xF4, 0x43, 0x36, 255}},
		{" #FFF ", color.RGBA{255, 255, 255, 255}},
		{"wheat", color.RGBA{245, 222, 179, 255}},
		{"DarkGoldenrod", color.RGBA{184, 134, 11, 255}},
	}
	for _, tt := range tts {
		t.Run(tt.s, func(t *testing.T) {
			col, err := ParseColor(tt.s)
			test.Error(t, err)
			test.T(t, col, tt.col)
		})
	}

	_, err := ParseColor("#12")
	test.That(t, err != nil, "expected error for short hex color")
	_, err = ParseColor("no-such-color")
	test.That(t, err != nil, "expected error for unknown color name")
}

func TestPalettes(t *testing.T) {
	names, err := Palettes()
	test.Error(t, err)
	test.T(t, names, []string{"approach_comparison", "architecture", "coverage"})

	for _, name := range names {
		style, err := LoadPalette(name)
		test.Error(t, err)
		test.String(t, style.Name, name)
		test.That(t, 0.0 < style.LineWidth && 0.0 < style.Alpha && 0.0 < style.FontSize && 0.0 < style.MarkerSize, "defaults must be filled in")
	}

	_, err = LoadPalette("missing")
	test.That(t, err != nil, "expected error for unknown palette")
}

func TestStyleColor(t *testing.T) {
	style := MustLoadPalette("approach_comparison")
	test.T(t, style.Color(RoleEntry), color.RGBA{0x4C, 0xAF, 0x50, 255})
	test.T(t, style.Color(RoleCaption), color.RGBA{245, 222, 179, 255})
	test.Float(t, style.Alpha, 0.7)
	test.Float(t, style.MarkerSize, 3.1)

	// undefined roles fall back to black
	test.T(t, style.Color(RoleMonitor), color.RGBA{0, 0, 0, 255})
	_, ok := style.Lookup(RoleMonitor)
	test.T(t, ok, false)

	coverage := MustLoadPalette("coverage")
	test.Float(t, coverage.LineWidth, 3.0)
	test.T(t, coverage.Color(RoleNote), color.RGBA{128, 128, 128, 255})
}
