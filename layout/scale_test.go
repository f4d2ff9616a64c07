package layout

import (
	"errors"
	"math"
	"testing"

	"github.com/pauljohnleonard/booklet/model"
)

// ============================================================================
// Scale Resolver Tests
// ============================================================================

func TestResolveScale(t *testing.T) {
	tests := []struct {
		name         string
		widths       []int
		contentWidth float64
		limitUpscale bool
		want         float64
	}{
		{"widest fills content width", []int{2000, 1000, 1500}, 500, false, 0.25},
		{"single image", []int{1000}, 500, false, 0.5},
		{"upscale allowed by default", []int{100}, 200, false, 2.0},
		{"upscale capped when limited", []int{100}, 200, true, 1.0},
		{"downscale unaffected by limit", []int{400}, 200, true, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			images := make([]model.ScoreImage, len(tt.widths))
			for i, w := range tt.widths {
				images[i] = model.ScoreImage{Identifier: "img", Width: w, Height: 100}
			}
			got, err := ResolveScale(images, tt.contentWidth, tt.limitUpscale)
			if err != nil {
				t.Fatalf("ResolveScale() error = %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ResolveScale() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveScaleEmptyCatalog(t *testing.T) {
	_, err := ResolveScale(nil, 500, false)
	if !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("ResolveScale(nil) error = %v, want ErrEmptyCatalog", err)
	}

	_, err = ResolveScale([]model.ScoreImage{}, 500, false)
	if !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("ResolveScale(empty) error = %v, want ErrEmptyCatalog", err)
	}
}

func TestScaleAll(t *testing.T) {
	images := []model.ScoreImage{
		{Identifier: "a.png", Width: 2000, Height: 1200},
		{Identifier: "b.png", Width: 1000, Height: 800},
	}

	items := ScaleAll(images, 0.25)

	if len(items) != 2 {
		t.Fatalf("ScaleAll() returned %d items, want 2", len(items))
	}
	if items[0].Image.Identifier != "a.png" || items[1].Image.Identifier != "b.png" {
		t.Error("ScaleAll() did not preserve catalog order")
	}
	if items[0].ScaledWidth != 500 || items[0].ScaledHeight != 300 {
		t.Errorf("items[0] scaled to %vx%v, want 500x300", items[0].ScaledWidth, items[0].ScaledHeight)
	}
	if items[1].ScaledWidth != 250 || items[1].ScaledHeight != 200 {
		t.Errorf("items[1] scaled to %vx%v, want 250x200", items[1].ScaledWidth, items[1].ScaledHeight)
	}
}
