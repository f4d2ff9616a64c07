// Package booklet assembles printable sheet-music booklets from directories
// of score images. It packs variable-height images onto fixed-height pages
// with a minimal page count, prefixes the result with a paginated
// alphabetical index, and supports incremental growth: images recorded in a
// baseline snapshot keep their page numbers while new material lands in an
// appendix section.
//
// The entry points return an [Assembler] that is configured with chained
// methods and executed with [Assembler.Assemble]:
//
//	b, warnings, err := booklet.FromDirectory("bb", "Jazz Standards (Bb)", "scores/bb").
//	    WithBaseline(snapshot).
//	    Assemble()
//
// Each configuration method returns a new Assembler instance, so a partially
// configured assembler can be reused safely across goroutines.
//
// Assembling produces a [model.Booklet], a pure description of every page.
// Drawing it into a document is the render package's job.
package booklet

import (
	"github.com/pauljohnleonard/booklet/catalog"
	"github.com/pauljohnleonard/booklet/model"
)

// FromDirectory creates an assembler over the image files in dir. The
// directory is scanned when Assemble runs, so configuration may follow in
// any order.
//
// Example:
//
//	b, warnings, err := booklet.FromDirectory("bb", "Jazz Standards (Bb)", "scores/bb").Assemble()
func FromDirectory(instrument, title, dir string) *Assembler {
	a := newAssembler(instrument, title)
	a.dir = dir
	return a
}

// FromImages creates an assembler over an already-built catalog, bypassing
// directory scanning and dimension probing.
//
// Example:
//
//	b, _, err := booklet.FromImages("bb", "Jazz Standards (Bb)", images).Assemble()
func FromImages(instrument, title string, images []model.ScoreImage) *Assembler {
	a := newAssembler(instrument, title)
	a.images = append([]model.ScoreImage(nil), images...)
	a.hasImages = true
	return a
}

// Must panics when err is non-nil and returns the booklet otherwise.
// Intended for examples and tests:
//
//	b := booklet.Must(booklet.FromImages("bb", "Standards", images).Assemble())
func Must(b *model.Booklet, _ []catalog.Warning, err error) *model.Booklet {
	if err != nil {
		panic(err)
	}
	return b
}
