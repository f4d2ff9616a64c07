package booklet

import (
	"fmt"

	"github.com/pauljohnleonard/booklet/baseline"
	"github.com/pauljohnleonard/booklet/catalog"
	"github.com/pauljohnleonard/booklet/index"
	"github.com/pauljohnleonard/booklet/layout"
	"github.com/pauljohnleonard/booklet/model"
	"github.com/pauljohnleonard/booklet/render"
)

// Assembler builds one instrument's booklet. Each configuration method
// returns a new Assembler instance, making it safe for concurrent use and
// allowing method chaining.
type Assembler struct {
	// Identity
	instrument string
	title      string

	// Catalog source (directory scan or caller-supplied images)
	dir       string
	images    []model.ScoreImage
	hasImages bool

	// Collaborators
	dims     catalog.DimensionProvider
	measurer index.TextMeasurer
	snapshot *baseline.Snapshot

	// Configuration
	catalogConfig catalog.Config
	layoutConfig  layout.Config
	indexConfig   index.Config

	// Accumulated error (fail-fast)
	err error
}

func newAssembler(instrument, title string) *Assembler {
	return &Assembler{
		instrument:   instrument,
		title:        title,
		measurer:     render.NewFontMetrics(render.DefaultConfig().BodyFont),
		layoutConfig: layout.DefaultConfig(),
		indexConfig:  index.DefaultConfig(),
	}
}

// clone creates a shallow copy of the Assembler with a deep copy of the
// catalog slice. This ensures immutability - each chain method returns a
// new instance.
func (a *Assembler) clone() *Assembler {
	newA := *a
	if a.hasImages {
		newA.images = append([]model.ScoreImage(nil), a.images...)
	}
	return &newA
}

// ============================================================================
// Configuration Methods (return new Assembler instance)
// ============================================================================

// WithBaseline supplies the baseline snapshot that splits the catalog into
// the original section and the appendix. A nil or empty snapshot keeps the
// whole catalog in the original section.
//
// Example:
//
//	b, _, err := booklet.FromDirectory("bb", "Standards", dir).WithBaseline(snap).Assemble()
func (a *Assembler) WithBaseline(snapshot *baseline.Snapshot) *Assembler {
	newA := a.clone()
	newA.snapshot = snapshot
	return newA
}

// WithCatalog sets the catalog options: the title suffix stripped from
// filenames and the external-link side channel.
func (a *Assembler) WithCatalog(config catalog.Config) *Assembler {
	newA := a.clone()
	newA.catalogConfig = config
	return newA
}

// WithLayout sets the page geometry used for scaling and packing.
func (a *Assembler) WithLayout(config layout.Config) *Assembler {
	newA := a.clone()
	newA.layoutConfig = config
	return newA
}

// WithIndex sets the index page geometry and typography.
func (a *Assembler) WithIndex(config index.Config) *Assembler {
	newA := a.clone()
	newA.indexConfig = config
	return newA
}

// WithDimensions replaces the dimension provider used when scanning a
// directory. The default reads image file headers from disk.
func (a *Assembler) WithDimensions(dims catalog.DimensionProvider) *Assembler {
	newA := a.clone()
	newA.dims = dims
	return newA
}

// WithMeasurer replaces the text measurer used for index truncation and
// dot leaders. The default measures with the renderer's body font. A nil
// measurer disables truncation and dot leaders without failing the build.
func (a *Assembler) WithMeasurer(measurer index.TextMeasurer) *Assembler {
	newA := a.clone()
	newA.measurer = measurer
	return newA
}

// ============================================================================
// Terminal Operation
// ============================================================================

// Assemble builds the booklet: it resolves the catalog, splits it against
// the baseline, computes the shared scale, packs both sections, builds the
// index and fixes every image's position on its page.
//
// Returns the booklet, any warnings encountered while reading the catalog,
// and an error if assembly failed. Warnings indicate skipped images; the
// rest of the booklet is unaffected by them.
func (a *Assembler) Assemble() (*model.Booklet, []catalog.Warning, error) {
	if a.err != nil {
		return nil, nil, a.err
	}

	images, warnings, err := a.resolveCatalog()
	if err != nil {
		return nil, warnings, err
	}

	// Step 1: split the catalog against the baseline snapshot. Both halves
	// keep catalog order.
	original, appendix := baseline.Partition(images, a.snapshot)

	// Step 2: one shared scale factor across both sections, so appendix
	// pages print at the same size as the original ones.
	scale, err := layout.ResolveScale(images, a.layoutConfig.ContentWidth, a.layoutConfig.LimitUpscale)
	if err != nil {
		return nil, warnings, fmt.Errorf("instrument %s: %w", a.instrument, err)
	}

	// Step 3: pack each section independently so appendix growth never
	// reflows published pages.
	packer := layout.NewPackerWithConfig(a.layoutConfig)
	originalSet, err := packer.Pack(layout.ScaleAll(original, scale))
	if err != nil {
		return nil, warnings, fmt.Errorf("instrument %s: %w", a.instrument, err)
	}
	appendixSet, err := packer.Pack(layout.ScaleAll(appendix, scale))
	if err != nil {
		return nil, warnings, fmt.Errorf("instrument %s: %w", a.instrument, err)
	}

	// Step 4: index entries over the concatenated sections. Appendix pages
	// continue the original numbering.
	entries := index.Entries(originalSet, 0)
	entries = append(entries, index.Entries(appendixSet, originalSet.PageCount())...)

	booklet := model.NewBooklet(a.instrument, a.title)
	booklet.Scale = scale

	// Step 5: sorted, paginated index pages. Image pages follow the index,
	// so each entry's booklet position is its printed number shifted by the
	// index page count.
	booklet.IndexPages = index.NewBuilderWithConfig(a.indexConfig, a.measurer).Build(entries)
	indexPages := len(booklet.IndexPages)
	for i := range booklet.IndexPages {
		for j := range booklet.IndexPages[i].Lines {
			entry := &booklet.IndexPages[i].Lines[j].Entry
			entry.PageIndex = indexPages + entry.PageNumber - 1
		}
	}

	// Step 6: fix image positions page by page.
	booklet.ImagePages = a.placePages(originalSet, appendixSet)
	booklet.OriginalPages = originalSet.PageCount()
	booklet.AppendixPages = appendixSet.PageCount()

	return booklet, warnings, nil
}

// resolveCatalog returns the images to lay out, scanning the source
// directory when the catalog was not supplied directly.
func (a *Assembler) resolveCatalog() ([]model.ScoreImage, []catalog.Warning, error) {
	if a.hasImages {
		return a.images, nil, nil
	}
	if a.dir == "" {
		return nil, nil, fmt.Errorf("no catalog specified")
	}

	identifiers, err := catalog.ScanDir(a.dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan %s: %w", a.dir, err)
	}
	images, warnings := catalog.NewBuilderWithConfig(a.catalogConfig, a.dims).Build(identifiers)
	return images, warnings, nil
}

// placePages turns packed page sets into image pages with fixed positions.
// Images are stacked top to bottom with the configured gap and centered
// horizontally. Printed numbers run continuously from the original section
// into the appendix.
func (a *Assembler) placePages(original, appendix *model.PageSet) []model.ImagePage {
	pages := make([]model.ImagePage, 0, original.PageCount()+appendix.PageCount())

	place := func(set *model.PageSet, isAppendix bool) {
		for i, page := range set.Pages {
			imgPage := model.ImagePage{
				PageNumber:    len(pages) + 1,
				AppendixStart: isAppendix && i == 0,
			}
			y := 0.0
			for _, item := range page.Items {
				x := (a.layoutConfig.ContentWidth - item.ScaledWidth) / 2
				if x < 0 {
					x = 0
				}
				imgPage.Images = append(imgPage.Images, model.PlacedImage{
					Identifier:   item.Image.Identifier,
					BBox:         model.NewBBox(x, y, item.ScaledWidth, item.ScaledHeight),
					ExternalLink: item.Image.ExternalLink,
				})
				y += item.ScaledHeight + a.layoutConfig.Gap
			}
			pages = append(pages, imgPage)
		}
	}

	place(original, false)
	place(appendix, true)
	return pages
}
