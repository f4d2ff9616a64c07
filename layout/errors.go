package layout

import "errors"

// Errors returned by the scale resolver and the packer. Callers match them
// with errors.Is.
var (
	// ErrEmptyCatalog is returned when a booklet has no usable images, so
	// no scale factor is meaningful. It is fatal for that instrument's
	// booklet only.
	ErrEmptyCatalog = errors.New("empty catalog: no images to lay out")

	// ErrInvalidLayout is returned for unusable page geometry: a negative
	// content height or a non-positive gap. Geometry is never silently
	// clamped.
	ErrInvalidLayout = errors.New("invalid layout: content height must be non-negative and gap positive")
)
