package layout

import (
	"fmt"

	"github.com/pauljohnleonard/booklet/model"
)

// ResolveScale computes the shared scale factor for one booklet so that the
// widest image exactly fills the content width. Every image in the booklet
// is scaled by the same factor, keeping original and appendix pages at an
// identical scale.
//
// When limitUpscale is true the factor is capped at 1, so images narrower
// than the content width are never enlarged. The default behaviour leaves
// the factor unbounded.
func ResolveScale(images []model.ScoreImage, contentWidth float64, limitUpscale bool) (float64, error) {
	if len(images) == 0 {
		return 0, ErrEmptyCatalog
	}

	var maxWidth int
	for _, img := range images {
		if img.Width > maxWidth {
			maxWidth = img.Width
		}
	}
	if maxWidth <= 0 {
		return 0, fmt.Errorf("%w: no image has a positive width", ErrEmptyCatalog)
	}

	scale := contentWidth / float64(maxWidth)
	if limitUpscale && scale > 1 {
		scale = 1
	}
	return scale, nil
}

// ScaleAll applies one scale factor to every image, preserving order
func ScaleAll(images []model.ScoreImage, scale float64) []model.ScaledItem {
	items := make([]model.ScaledItem, len(images))
	for i, img := range images {
		items[i] = model.NewScaledItem(img, scale)
	}
	return items
}
