// Package shape holds the output data model of the extraction pipeline:
// a Shape (one province candidate) and the ShapeList the engine returns.
//
// What:
//
//   - Shape: source/unique color, discovery-ordered pixel list, tight
//     bounding box.
//   - ShapeList: an ordered, index-stable sequence of Shape.
//
// A Shape's bounding box is seeded from its first inserted pixel rather than
// from (0,0): initializing to the origin and only ever growing the box
// outward would silently report min=(0,0) for any shape that never touches
// the origin. New, the package's constructor, requires an initial pixel,
// so a Shape built through New never carries that sentinel. A Shape built
// as a struct literal starts with a zero Box, which Add only ever widens.
package shape

import (
	"github.com/shapeforge/provincegrid/pixel"
)

// BoundingBox is the axis-aligned rectangle spanning a Shape's pixels.
type BoundingBox struct {
	Min, Max pixel.Point
}

// extend grows the box, if necessary, to also cover p.
func (b *BoundingBox) extend(p pixel.Point) {
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
}

// Width returns the box's extent along X, in pixels (inclusive).
func (b BoundingBox) Width() uint32 {
	return b.Max.X - b.Min.X + 1
}

// Height returns the box's extent along Y, in pixels (inclusive).
func (b BoundingBox) Height() uint32 {
	return b.Max.Y - b.Min.Y + 1
}

// Shape is a maximal 4-connected region of same-colored source pixels, plus
// everything the pipeline accumulates about it: its replacement color, its
// pixel membership in discovery order, and its bounding box.
type Shape struct {
	// SourceColor is the original color shared by every pixel in the shape.
	SourceColor pixel.Color
	// UniqueColor is the deterministic replacement color assigned once, at
	// first discovery.
	UniqueColor pixel.Color
	// Pixels is insertion-order (Pass 2 discovery order, then Pass 3 border
	// adoption order); the order is observable but not semantically load-bearing.
	Pixels []pixel.Pixel
	// Box is maintained so every pixel in Pixels satisfies
	// Box.Min.X <= p.X <= Box.Max.X (and similarly for Y).
	Box BoundingBox
}

// New creates a Shape seeded by its first pixel: the bounding box starts
// exactly at that pixel's point.
func New(sourceColor, uniqueColor pixel.Color, first pixel.Pixel) *Shape {
	return &Shape{
		SourceColor: sourceColor,
		UniqueColor: uniqueColor,
		Pixels:      []pixel.Pixel{first},
		Box:         BoundingBox{Min: first.Point, Max: first.Point},
	}
}

// Add appends p to the shape and extends the bounding box to cover it.
func (s *Shape) Add(p pixel.Pixel) {
	s.Pixels = append(s.Pixels, p)
	s.Box.extend(p.Point)
}

// Dims returns the shape's bounding-box width and height, kept as a
// standalone, reusable predicate rather than inlined into the validator.
func (s *Shape) Dims() (width, height uint32) {
	return s.Box.Width(), s.Box.Height()
}

// List is an ordered, index-stable sequence of Shape, in the order each
// shape's root label was first encountered during Pass 2.
type List []*Shape
