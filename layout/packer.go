package layout

import "github.com/pauljohnleonard/booklet/model"

// Config holds the page geometry the packer and scale resolver work in.
// Units are whatever the document sink draws in, millimetres by default.
type Config struct {
	// ContentWidth is the usable page width after margins
	ContentWidth float64

	// ContentHeight is the usable page height after margins
	ContentHeight float64

	// Gap is the vertical space between images on the same page
	Gap float64

	// LimitUpscale caps the resolved scale factor at 1, so images narrower
	// than the content width are not enlarged
	LimitUpscale bool
}

// DefaultConfig returns the geometry of an A4 page with 10mm margins and a
// 5mm inter-image gap.
func DefaultConfig() Config {
	return Config{
		ContentWidth:  190,
		ContentHeight: 277,
		Gap:           5,
	}
}

// Packer groups scaled images into an ordered page sequence, minimizing
// page count and tie-breaking on wasted space. It runs two heuristics over
// the same items and keeps the better packing.
type Packer struct {
	config Config
}

// NewPacker creates a packer with default geometry.
func NewPacker() *Packer {
	return NewPackerWithConfig(DefaultConfig())
}

// NewPackerWithConfig creates a packer with the specified geometry.
func NewPackerWithConfig(config Config) *Packer {
	return &Packer{config: config}
}

// Config returns the packer's geometry
func (p *Packer) Config() Config {
	return p.config
}

// Pack arranges items into pages so that every page's used height stays
// within the content height, except pages holding a single item taller than
// the capacity. Identical input and geometry always yield an identical
// grouping. An empty input returns an empty page set and no error; unusable
// geometry returns ErrInvalidLayout.
func (p *Packer) Pack(items []model.ScaledItem) (*model.PageSet, error) {
	if p.config.ContentHeight < 0 || p.config.Gap <= 0 {
		return nil, ErrInvalidLayout
	}
	if len(items) == 0 {
		return model.NewPageSet(), nil
	}

	// Step 1: Best-Fit Decreasing.
	bfd := bestFitDecreasing(items, p.config.ContentHeight, p.config.Gap)

	// Step 2: iterative exact subset selection.
	knap := knapsackFill(items, p.config.ContentHeight, p.config.Gap)

	// Step 3: keep the better candidate.
	return p.better(bfd, knap), nil
}

// better compares two candidate packings by (page count, total slack).
// Strictly fewer pages wins; on a page tie the knapsack result is kept
// unless Best-Fit Decreasing wasted strictly less space.
func (p *Packer) better(bfd, knap *model.PageSet) *model.PageSet {
	if bfd.PageCount() < knap.PageCount() {
		return bfd
	}
	if knap.PageCount() < bfd.PageCount() {
		return knap
	}
	if bfd.TotalSlack(p.config.ContentHeight) < knap.TotalSlack(p.config.ContentHeight) {
		return bfd
	}
	return knap
}
