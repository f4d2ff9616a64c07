// Package format provides image file format detection for the booklet library.
package format

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Format represents a supported score image format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PNG indicates a Portable Network Graphics image.
	PNG
	// JPEG indicates a JPEG image.
	JPEG
	// GIF indicates a GIF image.
	GIF
	// TIFF indicates a Tagged Image File Format image.
	TIFF
	// BMP indicates a Windows bitmap image.
	BMP
	// WebP indicates a WebP image.
	WebP
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PNG:
		return "PNG"
	case JPEG:
		return "JPEG"
	case GIF:
		return "GIF"
	case TIFF:
		return "TIFF"
	case BMP:
		return "BMP"
	case WebP:
		return "WebP"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case PNG:
		return ".png"
	case JPEG:
		return ".jpg"
	case GIF:
		return ".gif"
	case TIFF:
		return ".tif"
	case BMP:
		return ".bmp"
	case WebP:
		return ".webp"
	default:
		return ""
	}
}

// EmbedType returns the image type name the PDF writer embeds natively,
// or empty for formats that need conversion to PNG first.
func (f Format) EmbedType() string {
	switch f {
	case PNG:
		return "PNG"
	case JPEG:
		return "JPG"
	case GIF:
		return "GIF"
	default:
		return ""
	}
}

// Detect determines the image format from the filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".png":
		return PNG
	case ".jpg", ".jpeg":
		return JPEG
	case ".gif":
		return GIF
	case ".tif", ".tiff":
		return TIFF
	case ".bmp":
		return BMP
	case ".webp":
		return WebP
	default:
		return Unknown
	}
}

// DetectFromMagic checks file magic bytes to determine the format.
// This provides more reliable detection than extension-based detection:
// a scan exported with the wrong extension still embeds correctly.
// Returns Unknown if the format cannot be determined from magic bytes.
func DetectFromMagic(data []byte) Format {
	if len(data) < 4 {
		return Unknown
	}

	// PNG magic: \x89PNG\r\n\x1a\n
	if len(data) >= 8 && bytes.Equal(data[:8], []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}) {
		return PNG
	}

	// JPEG magic: FF D8 FF
	if data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF {
		return JPEG
	}

	// GIF magic: GIF87a or GIF89a
	if bytes.HasPrefix(data, []byte("GIF87a")) || bytes.HasPrefix(data, []byte("GIF89a")) {
		return GIF
	}

	// TIFF magic: II*\x00 (little endian) or MM\x00* (big endian)
	if bytes.HasPrefix(data, []byte{'I', 'I', 0x2A, 0x00}) || bytes.HasPrefix(data, []byte{'M', 'M', 0x00, 0x2A}) {
		return TIFF
	}

	// BMP magic: BM
	if data[0] == 'B' && data[1] == 'M' {
		return BMP
	}

	// WebP magic: RIFF....WEBP
	if len(data) >= 12 && bytes.HasPrefix(data, []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")) {
		return WebP
	}

	return Unknown
}
