package layout

import (
	"sort"

	"github.com/pauljohnleonard/booklet/model"
)

// bestFitDecreasing packs items using the Best-Fit Decreasing heuristic:
// items are sorted tallest first, and each item goes onto the open page
// where it leaves the smallest non-negative residual capacity. When no open
// page fits the item, a new page is started. Runs in O(n*p) for p pages.
func bestFitDecreasing(items []model.ScaledItem, contentHeight, gap float64) *model.PageSet {
	sorted := make([]model.ScaledItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ScaledHeight > sorted[j].ScaledHeight
	})

	set := model.NewPageSet()
	for _, item := range sorted {
		best := -1
		bestResidual := 0.0
		for i, page := range set.Pages {
			residual := contentHeight - (page.UsedHeight + page.NeededHeight(item, gap))
			if residual < 0 {
				continue
			}
			// Earlier pages win residual ties.
			if best == -1 || residual < bestResidual {
				best = i
				bestResidual = residual
			}
		}
		if best == -1 {
			page := model.NewPage()
			page.Add(item, gap)
			set.AddPage(page)
			continue
		}
		set.Pages[best].Add(item, gap)
	}
	return set
}
