// Package layout provides the core packing algorithms that arrange scaled
// score images onto fixed-capacity booklet pages.
//
// This package decides how many pages a booklet needs and which images share
// a page. Images are always full content-width, so packing is one-dimensional
// by height: the sum of scaled heights plus inter-image gaps on a page must
// not exceed the content height.
//
// # Scale Resolution
//
// [ResolveScale] computes one scale factor per booklet so the single widest
// image exactly fills the content width:
//
//	scale, err := layout.ResolveScale(images, config.ContentWidth, false)
//	items := layout.ScaleAll(images, scale)
//
// # Packing
//
// The [Packer] runs two heuristics over the same items and keeps the better
// result:
//
//   - Best-Fit Decreasing: items sorted tallest first, each placed on the
//     open page with the smallest remaining capacity that still fits it.
//   - Iterative subset selection: a bounded 0/1 knapsack repeatedly picks
//     the remaining subset that best fills one page.
//
// Candidates are compared by (page count, total slack): strictly fewer pages
// wins, and on a page-count tie the knapsack result is kept unless Best-Fit
// Decreasing wasted strictly less space.
//
//	packer := layout.NewPacker()
//	pages, err := packer.Pack(items)
//
// # Configuration
//
//	config := layout.DefaultConfig()
//	config.ContentHeight = 250
//	config.Gap = 8
//	packer := layout.NewPackerWithConfig(config)
//
// Items individually taller than the content height are placed alone on a
// dedicated page, which may exceed the capacity. An empty item list packs to
// an empty [model.PageSet] without error.
package layout
