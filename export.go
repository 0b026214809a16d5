package diagram

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
)

// Format is an output representation of a figure.
type Format string

// Export formats.
const (
	Vector Format = "pdf"
	Raster Format = "png"
)

// Bounding selects the extent of the exported page.
type Bounding int

// Bounding policies.
const (
	Tight Bounding = iota // content extent plus margin
	Page                  // the full figure size
)

// ExportSpec describes the files written for a figure.
type ExportSpec struct {
	Stem     string // file name without extension
	Dir      string // destination directory, default the working directory
	Formats  []Format
	DPI      float64 // raster resolution
	Margin   float64 // mm around the content for Tight bounding
	Bounding Bounding
}

// DefaultExportSpec returns the spec writing stem.pdf and stem.png at 300 DPI, cropped to the content.
func DefaultExportSpec(stem string) ExportSpec {
	return ExportSpec{
		Stem:     stem,
		Formats:  []Format{Vector, Raster},
		DPI:      300.0,
		Margin:   2.0,
		Bounding: Tight,
	}
}

// Path returns the output path of format.
func (spec ExportSpec) Path(format Format) string {
	return filepath.Join(spec.Dir, spec.Stem+"."+string(format))
}

// Validate checks that the stem is set and that every format is supported and listed once.
func (spec ExportSpec) Validate() error {
	if spec.Stem == "" {
		return fmt.Errorf("export: empty file stem")
	}
	seen := map[Format]bool{}
	for _, format := range spec.Formats {
		if _, ok := formatWriters[format]; !ok {
			return fmt.Errorf("export %s: %q: %w", spec.Stem, format, ErrUnsupportedFormat)
		} else if seen[format] {
			return fmt.Errorf("export %s: duplicate format %q", spec.Stem, format)
		}
		seen[format] = true
	}
	return nil
}

// formatWriters maps every supported format to its writer at a raster resolution in DPI.
var formatWriters = map[Format]func(float64) canvas.Writer{
	Vector: func(float64) canvas.Writer {
		return renderers.PDF()
	},
	Raster: func(dpi float64) canvas.Writer {
		return renderers.PNG(canvas.DPI(dpi))
	},
}

func (spec ExportSpec) writer(format Format) canvas.Writer {
	dpi := spec.DPI
	if dpi <= 0.0 {
		dpi = 300.0
	}
	return formatWriters[format](dpi)
}

// PageBounds returns the extent of the exported page in figure millimetres.
func PageBounds(fig *Figure, spec ExportSpec) (Rect, error) {
	s, err := buildScene(fig)
	if err != nil {
		return Rect{}, err
	}
	return s.page(fig, spec), nil
}

func (s *scene) page(fig *Figure, spec ExportSpec) Rect {
	if spec.Bounding == Page {
		return Rect{0.0, 0.0, fig.W, fig.H}
	}
	bounds := s.Bounds()
	if bounds.Empty() {
		return Rect{0.0, 0.0, fig.W, fig.H}
	}
	return bounds.Expand(spec.Margin)
}

// Export renders the figure and writes one file per format of spec, returning the written paths. Either every file is written or none is, also when a writer panics: files are written next to their destination and renamed once all succeeded. The figure is released in all cases.
func Export(fig *Figure, spec ExportSpec) ([]string, error) {
	defer fig.Release()
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	s, err := buildScene(fig)
	if err != nil {
		return nil, err
	}
	page := s.page(fig, spec)
	Logger().Debug("layout", slog.String("stem", spec.Stem), slog.Int("marks", len(s.marks)), slog.Float64("width", page.W()), slog.Float64("height", page.H()))
	surface := s.draw(page)

	temps := make([]string, 0, len(spec.Formats))
	paths := make([]string, 0, len(spec.Formats))
	done := false
	defer func() {
		if done {
			return
		}
		remove(temps)
		remove(paths)
	}()

	for _, format := range spec.Formats {
		temp, err := writeTemp(spec.Dir, spec.Stem+"."+string(format), surface, spec.writer(format))
		if err != nil {
			return nil, fmt.Errorf("export %s: %w", spec.Path(format), err)
		}
		Logger().Debug("rendered", slog.String("format", string(format)), slog.String("temp", temp))
		temps = append(temps, temp)
	}

	for _, format := range spec.Formats {
		path := spec.Path(format)
		if err := os.Rename(temps[0], path); err != nil {
			return nil, fmt.Errorf("export %s: %w: %v", path, ErrIO, err)
		}
		temps = temps[1:]
		paths = append(paths, path)
	}
	done = true
	return paths, nil
}

// remove deletes the partial output of an aborted export.
func remove(paths []string) {
	for _, path := range paths {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			Logger().Warn("remove partial output", slog.String("path", path), slog.Any("err", err))
		}
	}
}

func writeTemp(dir, name string, surface *canvas.Canvas, w canvas.Writer) (string, error) {
	if dir == "" {
		dir = "."
	}
	f, err := os.CreateTemp(dir, "."+name+".*")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrIO, err)
	}
	if err := write(f, surface, w); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("%w: %v", ErrIO, err)
	}
	return f.Name(), nil
}

// write runs the writer and reports a panic inside it as an error.
func write(f io.Writer, surface *canvas.Canvas, w canvas.Writer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: writer panic: %v", ErrIO, r)
		}
	}()
	if err := w(f, surface); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}
