package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	// Register the decoders needed for PNG re-encoding of formats the PDF
	// writer cannot embed natively.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/pauljohnleonard/booklet/format"
)

// openImage returns image data in a format the PDF writer embeds natively,
// along with the format name. TIFF, BMP and WebP sources are decoded and
// re-encoded to PNG. The format is sniffed from the file content, falling
// back to the extension, so a mislabeled scan still embeds correctly.
func openImage(path string) (io.Reader, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}

	f := format.DetectFromMagic(data)
	if f == format.Unknown {
		f = format.Detect(path)
	}
	if embedType := f.EmbedType(); embedType != "" {
		return bytes.NewReader(data), embedType, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode %s: %w", path, err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, "", fmt.Errorf("failed to convert %s to PNG: %w", path, err)
	}
	return &buf, "PNG", nil
}
