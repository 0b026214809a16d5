package diagram

import (
	"fmt"
	"image/color"
	"strings"

	"codeberg.org/go-fonts/liberation/liberationserifbold"
	"codeberg.org/go-fonts/liberation/liberationserifbolditalic"
	"codeberg.org/go-fonts/liberation/liberationserifitalic"
	"codeberg.org/go-fonts/liberation/liberationserifregular"
	"github.com/tdewolff/canvas"
)

// Fonts is the font family shared by all text of one figure.
type Fonts struct {
	family *canvas.FontFamily
}

// LoadFonts loads the embedded Liberation Serif faces, which have TrueType outlines.
func LoadFonts() (*Fonts, error) {
	family := canvas.NewFontFamily("liberation-serif")
	faces := []struct {
		b     []byte
		style canvas.FontStyle
	}{
		{liberationserifregular.TTF, canvas.FontRegular},
		{liberationserifbold.TTF, canvas.FontBold},
		{liberationserifitalic.TTF, canvas.FontItalic},
		{liberationserifbolditalic.TTF, canvas.FontBold | canvas.FontItalic},
	}
	for _, face := range faces {
		if err := family.LoadFont(face.b, 0, face.style); err != nil {
			return nil, fmt.Errorf("load font: %w", err)
		}
	}
	return &Fonts{family}, nil
}

// Face returns the font face of size pt in the given weight and slant.
func (f *Fonts) Face(size float64, col color.Color, bold, italic bool) *canvas.FontFace {
	style := canvas.FontRegular
	if bold {
		style |= canvas.FontBold
	}
	if italic {
		style |= canvas.FontItalic
	}
	return f.family.Face(size, col, style, canvas.FontNormal)
}

// textMetrics holds the extent of a (multi-line) string in millimetres.
type textMetrics struct {
	lines      []string
	width      float64 // widest line
	lineHeight float64
	ascent     float64 // cap height of the first line
	descent    float64
}

// height is the distance from the top of the first line's capitals to the bottom of the last line's descenders.
func (m textMetrics) height() float64 {
	return m.ascent + float64(len(m.lines)-1)*m.lineHeight + m.descent
}

func measure(face *canvas.FontFace, s string) textMetrics {
	metrics := face.Metrics()
	m := textMetrics{
		lines:      strings.Split(s, "\n"),
		lineHeight: metrics.LineHeight,
		ascent:     metrics.CapHeight,
		descent:    metrics.Descent,
	}
	for _, line := range m.lines {
		if w := face.TextWidth(line); m.width < w {
			m.width = w
		}
	}
	return m
}
