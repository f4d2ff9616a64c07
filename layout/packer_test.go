package layout

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/pauljohnleonard/booklet/model"
)

// ============================================================================
// Packer Tests
// ============================================================================

func TestPackerInvalidGeometry(t *testing.T) {
	tests := []struct {
		name   string
		config Config
	}{
		{"zero gap", Config{ContentWidth: 190, ContentHeight: 277, Gap: 0}},
		{"negative gap", Config{ContentWidth: 190, ContentHeight: 277, Gap: -5}},
		{"negative content height", Config{ContentWidth: 190, ContentHeight: -1, Gap: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			packer := NewPackerWithConfig(tt.config)
			_, err := packer.Pack(makeItems(100))
			if !errors.Is(err, ErrInvalidLayout) {
				t.Errorf("Pack() error = %v, want ErrInvalidLayout", err)
			}
		})
	}
}

func TestPackerEmptyInput(t *testing.T) {
	packer := NewPacker()

	set, err := packer.Pack(nil)
	if err != nil {
		t.Fatalf("Pack(nil) error = %v, want nil", err)
	}
	if set.PageCount() != 0 {
		t.Errorf("Pack(nil) PageCount() = %d, want 0", set.PageCount())
	}
}

func TestPackerFourEqualItems(t *testing.T) {
	packer := NewPackerWithConfig(Config{ContentWidth: 500, ContentHeight: 700, Gap: 40})

	set, err := packer.Pack(makeItems(300, 300, 300, 300))
	if err != nil {
		t.Fatalf("Pack() error = %v", err)
	}
	if set.PageCount() != 2 {
		t.Fatalf("PageCount() = %d, want 2", set.PageCount())
	}
	for i, page := range set.Pages {
		if page.UsedHeight != 640 {
			t.Errorf("page %d UsedHeight = %v, want 640", i, page.UsedHeight)
		}
	}
}

func TestPackerDeterministic(t *testing.T) {
	packer := NewPackerWithConfig(Config{ContentWidth: 500, ContentHeight: 700, Gap: 40})
	items := randomItems(60, 1)

	first, err := packer.Pack(items)
	if err != nil {
		t.Fatalf("Pack() error = %v", err)
	}
	second, err := packer.Pack(items)
	if err != nil {
		t.Fatalf("Pack() error = %v", err)
	}

	if first.PageCount() != second.PageCount() {
		t.Fatalf("repeat runs differ: %d pages vs %d", first.PageCount(), second.PageCount())
	}
	for i := range first.Pages {
		if len(first.Pages[i].Items) != len(second.Pages[i].Items) {
			t.Fatalf("page %d sizes differ between runs", i)
		}
		for j := range first.Pages[i].Items {
			a := first.Pages[i].Items[j].Image.Identifier
			b := second.Pages[i].Items[j].Image.Identifier
			if a != b {
				t.Fatalf("page %d slot %d differs between runs: %q vs %q", i, j, a, b)
			}
		}
	}
}

func TestPackerNeverWorseThanEitherHeuristic(t *testing.T) {
	config := Config{ContentWidth: 500, ContentHeight: 700, Gap: 40}
	packer := NewPackerWithConfig(config)

	for seed := int64(1); seed <= 5; seed++ {
		items := randomItems(40, seed)

		set, err := packer.Pack(items)
		if err != nil {
			t.Fatalf("Pack() error = %v", err)
		}

		bfd := bestFitDecreasing(items, config.ContentHeight, config.Gap)
		knap := knapsackFill(items, config.ContentHeight, config.Gap)

		if set.PageCount() > bfd.PageCount() {
			t.Errorf("seed %d: Pack() used %d pages, Best-Fit Decreasing alone used %d",
				seed, set.PageCount(), bfd.PageCount())
		}
		if set.PageCount() > knap.PageCount() {
			t.Errorf("seed %d: Pack() used %d pages, knapsack alone used %d",
				seed, set.PageCount(), knap.PageCount())
		}
		if set.PageCount() > len(items) {
			t.Errorf("seed %d: Pack() used %d pages for %d items", seed, set.PageCount(), len(items))
		}
	}
}

func TestPackerCapacityInvariant(t *testing.T) {
	config := Config{ContentWidth: 500, ContentHeight: 700, Gap: 40}
	packer := NewPackerWithConfig(config)

	for seed := int64(1); seed <= 5; seed++ {
		items := randomItems(50, seed)

		set, err := packer.Pack(items)
		if err != nil {
			t.Fatalf("Pack() error = %v", err)
		}

		if set.ItemCount() != len(items) {
			t.Fatalf("seed %d: packed %d items, want %d", seed, set.ItemCount(), len(items))
		}
		for i, page := range set.Pages {
			if page.UsedHeight > config.ContentHeight {
				if len(page.Items) != 1 {
					t.Errorf("seed %d: page %d exceeds capacity with %d items",
						seed, i, len(page.Items))
				} else if page.Items[0].ScaledHeight <= config.ContentHeight {
					t.Errorf("seed %d: page %d exceeds capacity without an oversized item", seed, i)
				}
			}
		}
	}
}

func TestPackerTieFallsToKnapsack(t *testing.T) {
	packer := NewPackerWithConfig(Config{ContentWidth: 500, ContentHeight: 700, Gap: 40})

	// Both heuristics produce two pages with equal slack; the knapsack
	// grouping ({300,200} first) is the one returned.
	set, err := packer.Pack(makeItems(500, 300, 200))
	if err != nil {
		t.Fatalf("Pack() error = %v", err)
	}

	knap := knapsackFill(makeItems(500, 300, 200), 700, 40)
	if set.PageCount() != knap.PageCount() {
		t.Fatalf("PageCount() = %d, want %d", set.PageCount(), knap.PageCount())
	}
	for i := range knap.Pages {
		if len(set.Pages[i].Items) != len(knap.Pages[i].Items) {
			t.Fatalf("page %d differs from the knapsack grouping", i)
		}
		for j := range knap.Pages[i].Items {
			if set.Pages[i].Items[j].Image.Identifier != knap.Pages[i].Items[j].Image.Identifier {
				t.Errorf("page %d slot %d differs from the knapsack grouping", i, j)
			}
		}
	}
}

// randomItems builds a deterministic pseudo-random item list for property
// style tests.
func randomItems(n int, seed int64) []model.ScaledItem {
	rng := rand.New(rand.NewSource(seed))
	items := make([]model.ScaledItem, n)
	for i := range items {
		h := 50 + rng.Float64()*450
		items[i] = model.ScaledItem{
			Image:        model.ScoreImage{Identifier: identifierFor(i), Width: 100, Height: int(h)},
			ScaledWidth:  100,
			ScaledHeight: h,
		}
	}
	return items
}

func identifierFor(i int) string {
	return string(rune('a'+i%26)) + string(rune('0'+i/26))
}
