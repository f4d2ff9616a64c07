package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/pauljohnleonard/booklet/model"
)

// Config holds document geometry and typography. Lengths are millimetres,
// font sizes points. The index geometry fields must match the values the
// index was paginated with.
type Config struct {
	PageWidth  float64
	PageHeight float64
	Margin     float64 // Applied on all four sides

	TitleFont string // Banner and appendix heading font family
	BodyFont  string // Index line and footer font family

	FontSize       float64 // Index line font size
	BannerFontSize float64

	LineHeight        float64 // Vertical advance of one index line
	BannerHeight      float64 // Space the first index page reserves for the banner
	NumberColumnWidth float64 // Right-aligned page-number column

	// PageNumbers prints each image page's printed number in the footer.
	// Index pages carry no footer.
	PageNumbers bool

	// AppendixLabel is drawn in the top margin of the first appendix page.
	// Empty disables the marker.
	AppendixLabel string
}

// DefaultConfig returns A4 geometry with a 10mm margin, matching the
// default layout and index settings.
func DefaultConfig() Config {
	return Config{
		PageWidth:         210,
		PageHeight:        297,
		Margin:            10,
		TitleFont:         "Helvetica",
		BodyFont:          "Helvetica",
		FontSize:          11,
		BannerFontSize:    22,
		LineHeight:        8,
		BannerHeight:      24,
		NumberColumnWidth: 12,
		PageNumbers:       true,
		AppendixLabel:     "Appendix",
	}
}

// PDF renders booklets into PDF documents.
type PDF struct {
	config Config
}

// NewPDF creates a renderer with default settings.
func NewPDF() *PDF {
	return NewPDFWithConfig(DefaultConfig())
}

// NewPDFWithConfig creates a renderer with the specified settings.
func NewPDFWithConfig(config Config) *PDF {
	return &PDF{config: config}
}

// Render draws the booklet and writes the document to w.
func (r *PDF) Render(booklet *model.Booklet, w io.Writer) error {
	doc, err := r.draw(booklet)
	if err != nil {
		return err
	}
	return doc.Output(w)
}

// RenderFile draws the booklet and writes the document to a file at path.
func (r *PDF) RenderFile(booklet *model.Booklet, path string) error {
	doc, err := r.draw(booklet)
	if err != nil {
		return err
	}
	return doc.OutputFileAndClose(path)
}

// linkTarget records an index-line link waiting for its destination page.
type linkTarget struct {
	id   int
	page int // 1-based PDF page number
}

func (r *PDF) draw(booklet *model.Booklet) (*gofpdf.Fpdf, error) {
	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: r.config.PageWidth, Ht: r.config.PageHeight},
	})
	doc.SetTitle(booklet.Title, true)
	doc.SetMargins(r.config.Margin, r.config.Margin, r.config.Margin)
	doc.SetAutoPageBreak(false, 0)

	links := r.drawIndexPages(doc, booklet)
	if err := r.drawImagePages(doc, booklet); err != nil {
		return nil, err
	}

	// Destinations exist only once every page is drawn.
	for _, lt := range links {
		if lt.page >= 1 && lt.page <= doc.PageCount() {
			doc.SetLink(lt.id, 0, lt.page)
		}
	}

	if doc.Err() {
		return nil, fmt.Errorf("failed to render booklet %s: %w", booklet.Instrument, doc.Error())
	}
	return doc, nil
}

// drawIndexPages draws the index section and returns the pending internal
// links, one per index line.
func (r *PDF) drawIndexPages(doc *gofpdf.Fpdf, booklet *model.Booklet) []linkTarget {
	left := r.config.Margin
	contentWidth := r.config.PageWidth - 2*r.config.Margin
	titleWidth := contentWidth - r.config.NumberColumnWidth

	var links []linkTarget
	for _, page := range booklet.IndexPages {
		doc.AddPage()
		y := r.config.Margin

		if page.Banner {
			doc.SetFont(r.config.TitleFont, "B", r.config.BannerFontSize)
			doc.SetXY(left, y)
			doc.CellFormat(contentWidth, r.config.BannerHeight, booklet.Title,
				"", 0, "C", false, 0, "")
			y += r.config.BannerHeight
		}

		doc.SetFont(r.config.BodyFont, "", r.config.FontSize)
		for _, line := range page.Lines {
			id := doc.AddLink()
			links = append(links, linkTarget{id: id, page: line.Entry.PageIndex + 1})

			// Both cells carry the link so the whole row is clickable.
			doc.SetXY(left, y)
			doc.CellFormat(titleWidth, r.config.LineHeight,
				line.DisplayTitle+strings.Repeat(".", line.DotCount),
				"", 0, "L", false, id, "")
			doc.CellFormat(r.config.NumberColumnWidth, r.config.LineHeight,
				strconv.Itoa(line.Entry.PageNumber),
				"", 0, "R", false, id, "")
			y += r.config.LineHeight
		}
	}
	return links
}

func (r *PDF) drawImagePages(doc *gofpdf.Fpdf, booklet *model.Booklet) error {
	for _, page := range booklet.ImagePages {
		doc.AddPage()

		if page.AppendixStart && r.config.AppendixLabel != "" {
			r.drawAppendixMarker(doc)
		}

		for _, img := range page.Images {
			if err := r.drawImage(doc, img); err != nil {
				return err
			}
		}

		if r.config.PageNumbers {
			r.drawFooter(doc, page.PageNumber)
		}
	}
	return nil
}

func (r *PDF) drawImage(doc *gofpdf.Fpdf, img model.PlacedImage) error {
	reader, format, err := openImage(img.Identifier)
	if err != nil {
		return fmt.Errorf("failed to embed image %s: %w", img.Identifier, err)
	}

	doc.RegisterImageOptionsReader(img.Identifier, gofpdf.ImageOptions{ImageType: format}, reader)
	doc.ImageOptions(img.Identifier,
		r.config.Margin+img.BBox.X, r.config.Margin+img.BBox.Y,
		img.BBox.Width, img.BBox.Height,
		false, gofpdf.ImageOptions{ImageType: format}, 0, img.ExternalLink)

	if doc.Err() {
		return fmt.Errorf("failed to embed image %s: %w", img.Identifier, doc.Error())
	}
	return nil
}

// drawAppendixMarker prints the appendix label inside the top margin so it
// never collides with placed images.
func (r *PDF) drawAppendixMarker(doc *gofpdf.Fpdf) {
	doc.SetFont(r.config.TitleFont, "I", 9)
	doc.SetXY(r.config.Margin, 1)
	doc.CellFormat(r.config.PageWidth-2*r.config.Margin, r.config.Margin-2,
		r.config.AppendixLabel, "", 0, "C", false, 0, "")
}

// drawFooter prints the printed page number centered inside the bottom
// margin. The printed number counts image pages only, so it is drawn from
// the page model rather than the PDF page counter.
func (r *PDF) drawFooter(doc *gofpdf.Fpdf, pageNumber int) {
	doc.SetFont(r.config.BodyFont, "I", 8)
	doc.SetXY(r.config.Margin, r.config.PageHeight-r.config.Margin+1)
	doc.CellFormat(r.config.PageWidth-2*r.config.Margin, r.config.Margin-2,
		strconv.Itoa(pageNumber), "", 0, "C", false, 0, "")
}
