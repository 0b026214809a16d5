package diagram

import (
	_ "embed"
	"fmt"
	"image/color"
	"sort"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// Role is the semantic purpose of a color within a scene.
type Role string

// Roles used by the scenes. Palettes may define additional roles.
const (
	RoleEntry         Role = "entry"
	RoleTarget        Role = "target"
	RolePath          Role = "path"
	RoleState         Role = "state"
	RoleData          Role = "data"
	RoleArrow         Role = "arrow"
	RoleBackground    Role = "background"
	RoleCaption       Role = "caption"
	RoleEdge          Role = "edge"
	RolePreprocessing Role = "preprocessing"
	RoleRuntime       Role = "runtime"
	RoleRuntimeEdge   Role = "runtime_edge"
	RoleComponent     Role = "component"
	RolePhaseLabel    Role = "phase_label"
	RoleInstrument    Role = "instrument"
	RoleMonitor       Role = "monitor"
	RoleSelection     Role = "selection"
	RoleAdaptive      Role = "adaptive"
	RoleNote          Role = "note"
	RoleHighlight     Role = "highlight"
	RoleBaseline      Role = "baseline"
	RoleBaselineText  Role = "baseline_text"
	RoleImproved      Role = "improved"
	RoleImprovedText  Role = "improved_text"
)

// Style maps semantic roles to colors and carries the scene-wide stroke and text defaults. It is never mutated while a scene is built.
type Style struct {
	Name       string
	Colors     map[Role]color.RGBA
	LineWidth  float64 // pt
	Alpha      float64 // fill opacity of boxes
	FontSize   float64 // pt
	MarkerSize float64 // pt, marker radius
}

// Color returns the color of role, or black if the style does not define it.
func (s Style) Color(role Role) color.RGBA {
	if col, ok := s.Colors[role]; ok {
		return col
	}
	return color.RGBA{0, 0, 0, 255}
}

// Lookup returns the color of role and whether it is defined.
func (s Style) Lookup(role Role) (color.RGBA, bool) {
	col, ok := s.Colors[role]
	return col, ok
}

////////////////////////////////////////////////////////////////

//go:embed palettes.yaml
var palettesYAML []byte

type paletteFile map[string]struct {
	LineWidth  float64           `yaml:"line_width"`
	Alpha      float64           `yaml:"alpha"`
	FontSize   float64           `yaml:"font_size"`
	MarkerSize float64           `yaml:"marker_size"`
	Colors     map[string]string `yaml:"colors"`
}

// Palettes returns the names of the embedded palettes in sorted order.
func Palettes() ([]string, error) {
	var file paletteFile
	if err := yaml.Unmarshal(palettesYAML, &file); err != nil {
		return nil, fmt.Errorf("palettes: %w", err)
	}
	names := make([]string, 0, len(file))
	for name := range file {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// LoadPalette returns the embedded palette called name as a Style.
func LoadPalette(name string) (Style, error) {
	var file paletteFile
	if err := yaml.Unmarshal(palettesYAML, &file); err != nil {
		return Style{}, fmt.Errorf("palettes: %w", err)
	}
	p, ok := file[name]
	if !ok {
		return Style{}, fmt.Errorf("unknown palette %q", name)
	}

	style := Style{
		Name:       name,
		Colors:     make(map[Role]color.RGBA, len(p.Colors)),
		LineWidth:  p.LineWidth,
		Alpha:      p.Alpha,
		FontSize:   p.FontSize,
		MarkerSize: p.MarkerSize,
	}
	if style.LineWidth == 0.0 {
		style.LineWidth = 2.0
	}
	if style.Alpha == 0.0 {
		style.Alpha = 0.2
	}
	if style.FontSize == 0.0 {
		style.FontSize = 10.0
	}
	if style.MarkerSize == 0.0 {
		style.MarkerSize = 3.0
	}
	for role, s := range p.Colors {
		col, err := ParseColor(s)
		if err != nil {
			return Style{}, fmt.Errorf("palette %s: role %s: %w", name, role, err)
		}
		style.Colors[Role(role)] = col
	}
	return style, nil
}

// MustLoadPalette is like LoadPalette but panics on error.
func MustLoadPalette(name string) Style {
	style, err := LoadPalette(name)
	if err != nil {
		panic(err)
	}
	return style
}

// ParseColor parses a CSS hexadecimal color such as #4CAF50 or a CSS color name such as wheat.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("bad color %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return color.RGBA{r, g, b, 255}, nil
	}
	if col, ok := colornames.Map[strings.ToLower(s)]; ok {
		return col, nil
	}
	return color.RGBA{}, fmt.Errorf("bad color %q", s)
}

// MustParseColor is like ParseColor but panics on error.
func MustParseColor(s string) color.RGBA {
	col, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return col
}
