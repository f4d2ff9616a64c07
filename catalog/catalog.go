// Package catalog normalizes raw image records into the score-image catalog
// the layout engine consumes. It probes pixel dimensions, derives human
// titles from filenames, and resolves the optional external-link side
// channel. Unreadable images are skipped with a warning rather than failing
// the whole catalog.
package catalog

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pauljohnleonard/booklet/format"
	"github.com/pauljohnleonard/booklet/model"
)

// Warning describes a non-fatal problem encountered while building a
// catalog, such as an unreadable image that was skipped.
type Warning struct {
	Identifier string // The image the warning concerns
	Message    string
}

// FormatWarnings renders warnings as a newline-separated string for logs.
func FormatWarnings(warnings []Warning) string {
	var sb strings.Builder
	for i, w := range warnings {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(w.Identifier)
		sb.WriteString(": ")
		sb.WriteString(w.Message)
	}
	return sb.String()
}

// Config holds per-instrument catalog settings.
type Config struct {
	// TitleSuffix is the instrument-specific filename suffix stripped when
	// deriving titles, e.g. "_Bb"
	TitleSuffix string

	// Links is the external-link side channel. Keys are matched against an
	// image's base filename first and its derived title second.
	Links map[string]string
}

// Builder turns image identifiers into a normalized catalog.
type Builder struct {
	config Config
	dims   DimensionProvider
}

// NewBuilder creates a catalog builder reading dimensions with the given
// provider. A nil provider falls back to reading image files directly.
func NewBuilder(dims DimensionProvider) *Builder {
	return NewBuilderWithConfig(Config{}, dims)
}

// NewBuilderWithConfig creates a catalog builder with the specified settings.
func NewBuilderWithConfig(config Config, dims DimensionProvider) *Builder {
	if dims == nil {
		dims = FileDimensions{}
	}
	return &Builder{config: config, dims: dims}
}

// Build normalizes identifiers into catalog images, preserving input order.
// Identifiers whose dimensions cannot be read are dropped and reported as
// warnings; the rest of the catalog is unaffected.
func (b *Builder) Build(identifiers []string) ([]model.ScoreImage, []Warning) {
	var images []model.ScoreImage
	var warnings []Warning

	for _, id := range identifiers {
		width, height, err := b.dims.Dimensions(id)
		if err != nil {
			warnings = append(warnings, Warning{Identifier: id, Message: err.Error()})
			continue
		}

		img := model.NewScoreImage(id, width, height, b.config.TitleSuffix)
		if link, ok := b.lookupLink(img); ok {
			img.ExternalLink = link
		}
		images = append(images, img)
	}
	return images, warnings
}

// lookupLink resolves the side channel for one image: base filename first,
// derived title second.
func (b *Builder) lookupLink(img model.ScoreImage) (string, bool) {
	if len(b.config.Links) == 0 {
		return "", false
	}
	if link, ok := b.config.Links[filepath.Base(img.Identifier)]; ok {
		return link, true
	}
	if link, ok := b.config.Links[img.Title]; ok {
		return link, true
	}
	return "", false
}

// ScanDir lists the image files in a directory as identifiers, sorted by
// name. Files whose extension is not a recognized image format and
// subdirectories are ignored.
func ScanDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var identifiers []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if format.Detect(entry.Name()) != format.Unknown {
			identifiers = append(identifiers, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(identifiers)
	return identifiers, nil
}
