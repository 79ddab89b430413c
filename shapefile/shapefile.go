// Package shapefile persists an engine.Result's shapes as an opaque binary
// blob (shapes.gob), so a second tool run can re-load extracted shapes
// without re-running CCL against the source bitmap.
//
// This stays on the standard library's encoding/gob rather than an
// ecosystem serialization library: gob is self-describing, needs no schema
// file, and handles the exported Shape/Pixel/Color fields directly, which
// is exactly what persisting an ad-hoc internal struct graph calls for.
package shapefile

import (
	"encoding/gob"
	"fmt"
	"io"

	"github.com/shapeforge/provincegrid/shape"
)

// Document is the full persisted unit: the shapes themselves plus the
// source image dimensions they were extracted against, needed to
// reinterpret BoundingBox coordinates on reload.
type Document struct {
	ImageWidth  uint32
	ImageHeight uint32
	Shapes      shape.List
}

// Write gob-encodes doc to w.
func Write(w io.Writer, doc Document) error {
	if err := gob.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("shapefile: encode: %w", err)
	}
	return nil
}

// Read gob-decodes a Document previously written by Write.
func Read(r io.Reader) (Document, error) {
	var doc Document
	if err := gob.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("shapefile: decode: %w", err)
	}
	return doc, nil
}
