// Package index builds the paginated alphabetical index of a booklet.
//
// The index maps every image title to the printed page number of the page
// the image landed on. Entries are sorted with locale-aware, case
// insensitive, numeric-aware comparison ("Tune 2" before "Tune 10"),
// paginated by a vertical line budget, and prepared for drawing: each line
// carries a display title truncated to fit left of the page-number column
// and the number of leader dots filling the gap.
//
// Index order and page-placement order are deliberately decoupled: the
// packer decides where images land, the index only reports it.
//
// Text measurement is delegated to a [TextMeasurer]. Without one (nil, or
// failing mid-run) the index still paginates correctly and falls back to
// untruncated titles with no dot leaders.
package index

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/pauljohnleonard/booklet/model"
)

// TextMeasurer is the text metrics provider used for truncation and dot
// leader computation.
type TextMeasurer interface {
	// MeasureWidth returns the rendered width of text at the given font
	// size, in the same units as the index geometry.
	MeasureWidth(text string, fontSize float64) (float64, error)
}

// Config holds index page geometry and typography. Units match the
// document sink's drawing units, millimetres by default.
type Config struct {
	// ContentWidth is the usable width of an index line
	ContentWidth float64

	// ContentHeight is the vertical budget of one index page
	ContentHeight float64

	// LineHeight is the height of one index line
	LineHeight float64

	// BannerHeight is the extra space the first page reserves for the
	// booklet title banner
	BannerHeight float64

	// NumberColumnWidth is the width reserved for the right-aligned page
	// number
	NumberColumnWidth float64

	// FontSize is the index entry font size passed to the measurer
	FontSize float64

	// Locale selects the collation rules for title ordering
	Locale language.Tag
}

// DefaultConfig returns index geometry matching the default A4 layout.
func DefaultConfig() Config {
	return Config{
		ContentWidth:      190,
		ContentHeight:     277,
		LineHeight:        8,
		BannerHeight:      24,
		NumberColumnWidth: 12,
		FontSize:          11,
		Locale:            language.Und,
	}
}

// Builder turns packed pages into drawable index pages.
type Builder struct {
	config   Config
	measurer TextMeasurer
}

// NewBuilder creates an index builder with default geometry. The measurer
// may be nil, in which case titles are never truncated and no dot leaders
// are produced.
func NewBuilder(measurer TextMeasurer) *Builder {
	return NewBuilderWithConfig(DefaultConfig(), measurer)
}

// NewBuilderWithConfig creates an index builder with the specified geometry.
func NewBuilderWithConfig(config Config, measurer TextMeasurer) *Builder {
	return &Builder{config: config, measurer: measurer}
}

// Config returns the builder's geometry
func (b *Builder) Config() Config {
	return b.config
}

// Entries produces one index entry per image across the pages of a set.
// The printed page number is sectionOffset + pageIndexWithinSet + 1, so an
// appendix section passes the original section's page count as its offset
// to keep numbering continuous.
func Entries(set *model.PageSet, sectionOffset int) []model.IndexEntry {
	var entries []model.IndexEntry
	for pageIdx, page := range set.Pages {
		for _, item := range page.Items {
			entries = append(entries, model.IndexEntry{
				Title:      item.Image.Title,
				PageNumber: sectionOffset + pageIdx + 1,
			})
		}
	}
	return entries
}

// Sort orders entries by title using locale-aware, case-insensitive,
// numeric-aware comparison. Entries with equal titles keep their relative
// order.
func Sort(entries []model.IndexEntry, locale language.Tag) {
	c := collate.New(locale, collate.Numeric, collate.IgnoreCase)
	sort.SliceStable(entries, func(i, j int) bool {
		return c.CompareString(entries[i].Title, entries[j].Title) < 0
	})
}

// Build sorts the entries, paginates them into index pages, and computes
// each line's display title and dot-leader count. The input slice is not
// modified.
func (b *Builder) Build(entries []model.IndexEntry) []model.IndexPage {
	sorted := make([]model.IndexEntry, len(entries))
	copy(sorted, entries)
	Sort(sorted, b.config.Locale)

	lines := make([]model.IndexLine, len(sorted))
	for i, entry := range sorted {
		lines[i] = b.line(entry)
	}
	return b.paginate(lines)
}
