// Package baseline splits an instrument's catalog into its original and
// appendix sections and persists the identifier snapshots that drive the
// split.
//
// A [Snapshot] is the set of image identifiers that were part of the last
// published booklet. [Partition] compares the current catalog against it:
// images in the snapshot form the original section, everything newer forms
// the appendix. Packing each section independently keeps the original
// section's page layout stable across runs that only add content.
//
//	original, appendix := baseline.Partition(images, snapshot)
//
// With no snapshot (nil or empty) the whole catalog is the original section
// and no appendix is emitted.
//
// # Persistence
//
// The [Store] keeps one snapshot per instrument in a single SQLite database
// file:
//
//	store, err := baseline.Open(dataDir, baseline.DefaultOptions())
//	snap, err := store.Load(ctx, "bb")
//	err = store.Replace(ctx, "bb", identifiers)
//
// The layout engine never writes snapshots; recording one is an explicit
// publish-time action.
package baseline
