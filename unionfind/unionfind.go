// Package unionfind implements the label-equivalence structure the CCL
// scanner uses to reconcile provisional labels discovered in different
// raster-scan orders into one canonical root per shape.
//
// Labels are dense small integers (1..N), so the set is backed by a flat
// slice indexed by label rather than a map, with the specific tie-break
// rule the scanner requires.
package unionfind

import (
	"github.com/shapeforge/provincegrid/pixel"
)

// noParent marks a slot with no parent entry, i.e. its label is a root.
const noParent = pixel.NoLabel

// Set is an equivalence set over labels 1..N. The zero value is not usable;
// construct with New.
type Set struct {
	parent []pixel.Label // parent[label] == noParent means label is a root
}

// New returns a Set that can record equivalences for labels in [1, maxLabel].
// Label 0 is never a valid member.
func New(maxLabel pixel.Label) *Set {
	return &Set{parent: make([]pixel.Label, maxLabel+1)}
}

// grow extends the parent slice so label is addressable, preserving existing
// entries. Labels only grow monotonically during a scan, so this only ever
// appends.
func (s *Set) grow(label pixel.Label) {
	if int(label) < len(s.parent) {
		return
	}
	next := make([]pixel.Label, label+1)
	copy(next, s.parent)
	s.parent = next
}

// Union records that a and b belong to the same equivalence class.
//
// Tie-break: the larger label is always made the child of the smaller one.
// This bounds parent-chain length regardless of merge order. If the larger
// label already has a parent entry, the merge is skipped and that entry is
// kept: the smaller label's class and the larger label's class then stay
// separate under Find/Resolve unless another Union call joins them.
func (s *Set) Union(a, b pixel.Label) {
	if a == b {
		return
	}
	smaller, larger := a, b
	if larger < smaller {
		smaller, larger = larger, smaller
	}
	s.grow(larger)
	if s.parent[larger] != noParent {
		// larger already has a parent; keep it and record nothing for this
		// pair.
		return
	}
	s.parent[larger] = smaller
}

// Find walks the parent chain from label to its root. It does not compress
// the chain as it walks — a root label's chain is already bounded by the
// larger-becomes-child tie-break in Union, so the walk is iterative but the
// set is never mutated by a lookup. Resolving a root returns itself
// (idempotent).
func (s *Set) Find(label pixel.Label) pixel.Label {
	root := label
	for int(root) < len(s.parent) && s.parent[root] != noParent {
		root = s.parent[root]
	}
	return root
}

// Resolve is an alias for Find, named to match the scanner/resolver
// vocabulary of computing a pixel's root label.
func (s *Set) Resolve(label pixel.Label) pixel.Label {
	return s.Find(label)
}

// IsRoot reports whether label currently has no parent entry.
func (s *Set) IsRoot(label pixel.Label) bool {
	return int(label) >= len(s.parent) || s.parent[label] == noParent
}
