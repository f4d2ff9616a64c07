package layout

import (
	"math"

	"github.com/pauljohnleonard/booklet/model"
)

// knapsackFill packs items by iterated exact subset selection: each round a
// bounded 0/1 knapsack picks, from the remaining items, the subset that best
// fills a single page; the chosen items are placed in input order, removed,
// and the next round runs on the rest.
//
// Transform: weight(i) = ceil(h_i + gap), value(i) = floor(h_i), capacity =
// floor(contentHeight + gap). Charging every item a trailing gap and
// granting the capacity one gap back encodes the rule that the first item
// on a page carries no leading gap. Items taller than the content height
// are pulled out first, each onto a dedicated page, before selection runs.
func knapsackFill(items []model.ScaledItem, contentHeight, gap float64) *model.PageSet {
	set := model.NewPageSet()

	remaining := make([]model.ScaledItem, 0, len(items))
	for _, item := range items {
		if item.ScaledHeight > contentHeight {
			page := model.NewPage()
			page.Add(item, gap)
			set.AddPage(page)
			continue
		}
		remaining = append(remaining, item)
	}

	capacity := int(math.Floor(contentHeight + gap))
	for len(remaining) > 0 {
		chosen := selectSubset(remaining, capacity, gap)
		if len(chosen) == 0 {
			// Rounding can price a near-capacity item out of the DP; take
			// the first remaining item alone so every round advances.
			chosen = []int{0}
		}

		picked := make(map[int]bool, len(chosen))
		for _, idx := range chosen {
			picked[idx] = true
		}

		page := model.NewPage()
		rest := make([]model.ScaledItem, 0, len(remaining)-len(chosen))
		for i, item := range remaining {
			if picked[i] {
				page.Add(item, gap)
			} else {
				rest = append(rest, item)
			}
		}
		set.AddPage(page)
		remaining = rest
	}
	return set
}

// selectSubset solves a bounded 0/1 knapsack over the items and returns the
// indices of the chosen subset. Total value is maximized within the weight
// capacity; among equal-value solutions the larger subset wins.
func selectSubset(items []model.ScaledItem, capacity int, gap float64) []int {
	if capacity < 0 {
		return nil
	}
	n := len(items)
	weights := make([]int, n)
	values := make([]int, n)
	for i, item := range items {
		weights[i] = int(math.Ceil(item.ScaledHeight + gap))
		values[i] = int(math.Floor(item.ScaledHeight))
	}

	// value[c] and count[c] describe the best subset of weight <= c over the
	// items processed so far; take[i][c] records item i's choice at budget c
	// for reconstruction.
	value := make([]int, capacity+1)
	count := make([]int, capacity+1)
	take := make([][]bool, n)

	for i := 0; i < n; i++ {
		take[i] = make([]bool, capacity+1)
		w, v := weights[i], values[i]
		if w > capacity {
			continue
		}
		for c := capacity; c >= w; c-- {
			cand := value[c-w] + v
			candCount := count[c-w] + 1
			if cand > value[c] || (cand == value[c] && candCount > count[c]) {
				value[c] = cand
				count[c] = candCount
				take[i][c] = true
			}
		}
	}

	var chosen []int
	c := capacity
	for i := n - 1; i >= 0; i-- {
		if take[i][c] {
			chosen = append(chosen, i)
			c -= weights[i]
		}
	}
	return chosen
}
