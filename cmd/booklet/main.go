// Package main provides the entry point for the booklet CLI.
//
// booklet packs catalogs of sheet-music images into print-ready PDF
// booklets. Each booklet opens with an alphabetical index whose entries
// link to the page the tune appears on. Once a booklet has been
// published, "booklet snapshot" records its catalog so later builds keep
// every published tune on its page and add new tunes in an appendix.
//
// Usage:
//
//	booklet build
//	booklet snapshot
//
// See --help for all available options.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
)

// main is the entry point for booklet.
func main() {
	root := NewRootCmd()

	if err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(getVersion()),
		fang.WithNotifySignal(os.Interrupt, os.Kill),
	); err != nil {
		os.Exit(1)
	}
}
