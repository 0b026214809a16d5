package diagram

import "errors"

var (
	// ErrDimensionMismatch is returned when parallel data slices differ in length.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrIO is wrapped by every export failure caused by the file system.
	ErrIO = errors.New("i/o error")

	// ErrUnsupportedFormat is returned when an export format is neither vector nor raster.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrReleased is returned (or panicked with) when a figure is used after export.
	ErrReleased = errors.New("figure released")
)
