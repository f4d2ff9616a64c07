package model

// IndexEntry represents one title to page-number mapping in the index
type IndexEntry struct {
	Title      string
	PageNumber int // 1-based printed number of the target image page
	PageIndex  int // 0-based position of the target page within the booklet
}

// IndexLine is an index entry prepared for drawing
type IndexLine struct {
	Entry        IndexEntry
	DisplayTitle string // Possibly truncated, with a trailing ellipsis
	DotCount     int    // Leader dots between the title and the page number
}

// IndexPage represents one page of index lines
type IndexPage struct {
	Lines  []IndexLine
	Banner bool // Only the first index page carries the title banner
}

// ImagePage is a rendered page of placed images
type ImagePage struct {
	Images        []PlacedImage
	PageNumber    int  // 1-based printed number, continuous across sections
	AppendixStart bool // First page of the appendix section
}

// Booklet represents the complete per-instrument output: index pages
// followed by image pages (original section then appendix section). Created
// fresh on every run; nothing is mutated incrementally.
type Booklet struct {
	Instrument    string  // Instrument key, e.g. "bb" or "concert"
	Title         string  // Shown on the index banner
	Scale         float64 // Shared scale factor applied to every image
	IndexPages    []IndexPage
	ImagePages    []ImagePage
	OriginalPages int // Image page count of the original section
	AppendixPages int // Image page count of the appendix section
}

// NewBooklet creates an empty booklet for an instrument
func NewBooklet(instrument, title string) *Booklet {
	return &Booklet{
		Instrument: instrument,
		Title:      title,
		IndexPages: make([]IndexPage, 0),
		ImagePages: make([]ImagePage, 0),
	}
}

// PageCount returns the total number of rendered pages, index included
func (b *Booklet) PageCount() int {
	return len(b.IndexPages) + len(b.ImagePages)
}

// ImageCount returns the number of images placed across all image pages
func (b *Booklet) ImageCount() int {
	var n int
	for _, page := range b.ImagePages {
		n += len(page.Images)
	}
	return n
}

// HasAppendix returns true when the booklet carries an appendix section
func (b *Booklet) HasAppendix() bool {
	return b.AppendixPages > 0
}
