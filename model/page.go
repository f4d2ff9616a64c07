package model

// Page represents a single packed page of scaled images
type Page struct {
	Items      []ScaledItem // Placement order, top to bottom
	UsedHeight float64      // Sum of scaled heights plus inter-item gaps
}

// NewPage creates a new empty page
func NewPage() *Page {
	return &Page{
		Items: make([]ScaledItem, 0),
	}
}

// Add appends an item to the page. The first item on a page carries no
// leading gap; every later item contributes gap + scaled height.
func (p *Page) Add(item ScaledItem, gap float64) {
	if len(p.Items) > 0 {
		p.UsedHeight += gap
	}
	p.UsedHeight += item.ScaledHeight
	p.Items = append(p.Items, item)
}

// NeededHeight returns the height the item would add if placed on this page
func (p *Page) NeededHeight(item ScaledItem, gap float64) float64 {
	if len(p.Items) == 0 {
		return item.ScaledHeight
	}
	return item.ScaledHeight + gap
}

// ItemCount returns the number of items on the page
func (p *Page) ItemCount() int {
	return len(p.Items)
}

// PageSet is the ordered page sequence produced by one packing run over one
// group of items (original or appendix).
type PageSet struct {
	Pages []*Page
}

// NewPageSet creates a new empty page set
func NewPageSet() *PageSet {
	return &PageSet{
		Pages: make([]*Page, 0),
	}
}

// AddPage appends a page to the set
func (s *PageSet) AddPage(page *Page) {
	s.Pages = append(s.Pages, page)
}

// PageCount returns the total number of pages
func (s *PageSet) PageCount() int {
	return len(s.Pages)
}

// ItemCount returns the total number of items across all pages
func (s *PageSet) ItemCount() int {
	var n int
	for _, page := range s.Pages {
		n += len(page.Items)
	}
	return n
}

// TotalSlack returns the unused vertical capacity summed over all pages.
// Pages exceeding the content height (oversized items) contribute zero.
func (s *PageSet) TotalSlack(contentHeight float64) float64 {
	var slack float64
	for _, page := range s.Pages {
		if rest := contentHeight - page.UsedHeight; rest > 0 {
			slack += rest
		}
	}
	return slack
}
