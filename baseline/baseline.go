package baseline

import (
	"sort"

	"github.com/pauljohnleonard/booklet/model"
)

// Snapshot is a set of image identifiers recorded at a point in time. A nil
// snapshot means no baseline has been recorded. The layout engine only ever
// reads snapshots.
type Snapshot struct {
	identifiers map[string]bool
}

// NewSnapshot creates a snapshot holding the given identifiers
func NewSnapshot(identifiers ...string) *Snapshot {
	s := &Snapshot{identifiers: make(map[string]bool, len(identifiers))}
	for _, id := range identifiers {
		s.identifiers[id] = true
	}
	return s
}

// Contains reports whether the identifier is part of the snapshot. Safe to
// call on a nil snapshot.
func (s *Snapshot) Contains(identifier string) bool {
	if s == nil {
		return false
	}
	return s.identifiers[identifier]
}

// Len returns the number of identifiers in the snapshot. Safe to call on a
// nil snapshot.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.identifiers)
}

// Identifiers returns the snapshot's identifiers in sorted order
func (s *Snapshot) Identifiers() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, 0, len(s.identifiers))
	for id := range s.identifiers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Partition splits a catalog into the original items, whose identifiers
// appear in the baseline snapshot, and the appendix items, which are new
// since the snapshot was recorded. Both keep catalog order. The split is
// pure set membership: the baseline is never reordered or otherwise
// interpreted.
//
// An absent or empty snapshot puts the whole catalog in the original
// section with an empty appendix (full-generation mode).
func Partition(images []model.ScoreImage, snapshot *Snapshot) (original, appendix []model.ScoreImage) {
	if snapshot.Len() == 0 {
		original = make([]model.ScoreImage, len(images))
		copy(original, images)
		return original, nil
	}

	for _, img := range images {
		if snapshot.Contains(img.Identifier) {
			original = append(original, img)
		} else {
			appendix = append(appendix, img)
		}
	}
	return original, appendix
}
