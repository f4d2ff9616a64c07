package index

import "github.com/pauljohnleonard/booklet/model"

// paginate fills index pages line by line until the next line would not fit
// the remaining vertical budget. Only the first page reserves space for the
// title banner.
func (b *Builder) paginate(lines []model.IndexLine) []model.IndexPage {
	if len(lines) == 0 {
		return nil
	}

	var pages []model.IndexPage
	current := model.IndexPage{Banner: true}
	remaining := b.config.ContentHeight - b.config.BannerHeight

	for _, line := range lines {
		if remaining < b.config.LineHeight {
			pages = append(pages, current)
			current = model.IndexPage{}
			remaining = b.config.ContentHeight
		}
		current.Lines = append(current.Lines, line)
		remaining -= b.config.LineHeight
	}
	if len(current.Lines) > 0 {
		pages = append(pages, current)
	}
	return pages
}
