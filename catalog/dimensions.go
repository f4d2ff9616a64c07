package catalog

import (
	"errors"
	"fmt"
	"image"
	"os"

	// Register the decoders the catalog probes dimensions with.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrUnreadableImage indicates an image whose dimensions could not be read.
var ErrUnreadableImage = errors.New("unreadable image")

// DimensionProvider reports the pixel dimensions of an image identified by
// an opaque identifier. Implementations return an error wrapping
// [ErrUnreadableImage] when the image cannot be decoded.
type DimensionProvider interface {
	Dimensions(identifier string) (width, height int, err error)
}

// FileDimensions reads dimensions from image files on disk, treating
// identifiers as file paths. It decodes only the image header, not the
// pixel data.
type FileDimensions struct{}

// Dimensions implements [DimensionProvider].
func (FileDimensions) Dimensions(identifier string) (width, height int, err error) {
	f, err := os.Open(identifier)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrUnreadableImage, err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s: %v", ErrUnreadableImage, identifier, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return 0, 0, fmt.Errorf("%w: %s: non-positive dimensions %dx%d",
			ErrUnreadableImage, identifier, cfg.Width, cfg.Height)
	}
	return cfg.Width, cfg.Height, nil
}
