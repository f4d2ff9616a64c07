package index

import (
	"strings"

	"github.com/pauljohnleonard/booklet/model"
)

// ellipsis marks a truncated title. ASCII so it renders in any core font.
const ellipsis = "..."

// line computes the drawable form of one entry. With no measurer, or when
// measurement fails, the full title is kept and no dots are emitted; the
// entry itself is never dropped.
func (b *Builder) line(entry model.IndexEntry) model.IndexLine {
	line := model.IndexLine{Entry: entry, DisplayTitle: entry.Title}
	if b.measurer == nil {
		return line
	}

	avail := b.config.ContentWidth - b.config.NumberColumnWidth
	display, ok := b.truncate(entry.Title, avail)
	if !ok {
		return line
	}
	line.DisplayTitle = display
	line.DotCount = b.dotCount(display, avail)
	return line
}

// truncate returns the longest rune prefix of title that, followed by the
// ellipsis, measures within avail. A title that already fits is returned
// unchanged. The boolean is false when measurement failed and the caller
// should degrade.
func (b *Builder) truncate(title string, avail float64) (string, bool) {
	width, err := b.measurer.MeasureWidth(title, b.config.FontSize)
	if err != nil {
		return title, false
	}
	if width <= avail {
		return title, true
	}

	// Binary search over prefix lengths; width grows with prefix length.
	runes := []rune(title)
	lo, hi := 0, len(runes)
	for lo < hi {
		mid := (lo + hi + 1) / 2
		width, err := b.measurer.MeasureWidth(string(runes[:mid])+ellipsis, b.config.FontSize)
		if err != nil {
			return title, false
		}
		if width <= avail {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return string(runes[:lo]) + ellipsis, true
}

// dotCount returns how many leader dots fill the gap between the display
// title and the page-number column, re-measuring the run and trimming it
// when rounding pushes it past the gap.
func (b *Builder) dotCount(display string, avail float64) int {
	titleWidth, err := b.measurer.MeasureWidth(display, b.config.FontSize)
	if err != nil {
		return 0
	}
	dotWidth, err := b.measurer.MeasureWidth(".", b.config.FontSize)
	if err != nil || dotWidth <= 0 {
		return 0
	}

	gap := avail - titleWidth
	if gap <= 0 {
		return 0
	}

	count := int(gap / dotWidth)
	for count > 0 {
		runWidth, err := b.measurer.MeasureWidth(strings.Repeat(".", count), b.config.FontSize)
		if err != nil {
			return 0
		}
		if runWidth <= gap {
			break
		}
		count--
	}
	return count
}
