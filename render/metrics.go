package render

import "github.com/jung-kurt/gofpdf"

// FontMetrics measures text with a PDF core font so index truncation and
// dot leaders use the same metrics the document is drawn with. It satisfies
// the index builder's TextMeasurer interface.
type FontMetrics struct {
	doc    *gofpdf.Fpdf
	family string
}

// NewFontMetrics creates a measurer for one of the PDF core font families
// (Helvetica, Times, Courier). Widths are reported in millimetres.
func NewFontMetrics(family string) *FontMetrics {
	return &FontMetrics{
		doc:    gofpdf.New("P", "mm", "A4", ""),
		family: family,
	}
}

// MeasureWidth returns the rendered width of text at the given font size
// in points.
func (m *FontMetrics) MeasureWidth(text string, fontSize float64) (float64, error) {
	m.doc.SetFont(m.family, "", fontSize)
	if m.doc.Err() {
		return 0, m.doc.Error()
	}
	return m.doc.GetStringWidth(text), nil
}
