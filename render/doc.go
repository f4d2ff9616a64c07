// Package render draws an assembled booklet into a PDF document.
//
// # Page order
//
// Index pages come first, then image pages: the original section followed by
// the appendix section. Index lines link to the page their entry targets,
// and images carrying an external URL become clickable rectangles.
//
// # Geometry
//
// All lengths are millimetres and font sizes are points. Placement boxes on
// image pages are relative to the content area; the renderer offsets them by
// the page margin. The renderer trusts the layout: it never re-wraps,
// re-scales or repaginates.
//
// # Image formats
//
// PNG, JPEG and GIF sources are embedded as is. TIFF, BMP and WebP sources
// are decoded and re-encoded to PNG before embedding.
package render
