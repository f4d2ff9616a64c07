// Package model provides the intermediate representation (IR) for booklet
// layout results.
//
// This package defines the user-facing data structures that the layout
// pipeline produces and the rendering layer consumes. All packing, indexing,
// and assembly operations ultimately build these types, making them the
// primary API for consuming layout results.
//
// # Catalog Items
//
// A [ScoreImage] is one source image with its pixel dimensions and a title
// derived from its identifier. Applying a booklet's scale factor yields a
// [ScaledItem]:
//
//	img := model.NewScoreImage("tunes/Maggie_Bb.png", 2480, 1200, "_Bb")
//	item := model.NewScaledItem(img, 0.25)
//
// # Packed Pages
//
// The packer groups scaled items into a [Page] sequence wrapped in a
// [PageSet]. A page tracks its used height including inter-item gaps; a page
// holding a single item taller than the content height is allowed to exceed
// it.
//
// # Assembled Booklets
//
// The [Booklet] type is the complete per-instrument output: ordered
// [IndexPage] values followed by ordered [ImagePage] values. Index pages hold
// [IndexLine] entries with display titles and leader-dot counts already
// computed; image pages hold [PlacedImage] records with absolute positions,
// ready for a document sink to draw.
//
// # Geometry
//
// [BBox] is the placement rectangle used throughout, with the origin at the
// top-left of the page and Y growing downward, matching how document sinks
// address the page.
package model
