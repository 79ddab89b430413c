// Package pixel defines the data model and collaborator interfaces shared by
// every stage of the shape-extraction pipeline: Color, Point, Pixel, Label,
// and the PixelGrid/EventSink/ColorAssigner contracts the engine is driven
// through.
//
// Nothing in this package touches image decoding or GUI concerns; it is the
// vocabulary the rest of the module is written against.
package pixel

import (
	"errors"
	"fmt"
)

// Sentinel errors for pixel-level coordinate checks. InBounds reports the
// same condition as a bool and does not return these.
var (
	// ErrOutOfBounds indicates a coordinate outside [0,width) x [0,height).
	ErrOutOfBounds = errors.New("pixel: coordinate out of bounds")
)

// Color is a 24-bit RGB triple. Equality is componentwise.
type Color struct {
	R, G, B uint8
}

// BORDER is the distinguished color that delimits shapes in the input image.
var BORDER = Color{0, 0, 0}

// Equal reports whether two colors have identical channels.
func (c Color) Equal(other Color) bool {
	return c == other
}

// String renders the color as "(r,g,b)" for log/warning messages.
func (c Color) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.R, c.G, c.B)
}

// Point is an unsigned 2D coordinate, 0 <= X < width, 0 <= Y < height.
type Point struct {
	X, Y uint32
}

// String renders the point as "(x,y)", matching the original tool's
// diagnostic format.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Pixel pairs a Point with the Color observed there.
type Pixel struct {
	Point Point
	Color Color
}

// Label identifies a pixel's shape during computation. 0 is reserved for
// "border / unassigned"; assigned labels start at 1 and only grow within one
// run.
type Label uint32

// NoLabel is the reserved zero value meaning "border / unassigned".
const NoLabel Label = 0

// Classification buckets a source color for the purposes of unique-color
// assignment. The engine treats these as opaque values supplied by the
// caller's ColorAssigner; it never branches on them itself.
type Classification int

const (
	Unknown Classification = iota
	Land
	Sea
	Lake
)

// String renders a Classification for logging.
func (c Classification) String() string {
	switch c {
	case Land:
		return "LAND"
	case Sea:
		return "SEA"
	case Lake:
		return "LAKE"
	default:
		return "UNKNOWN"
	}
}

// Stage names one step of the orchestrator's pipeline, reported through
// EventSink.Stage so a caller can drive a progress bar.
type Stage int

const (
	Scanning Stage = iota
	Resolving
	Absorbing
	Validating
	Done
)

// String renders a Stage for logging.
func (s Stage) String() string {
	switch s {
	case Scanning:
		return "SCANNING"
	case Resolving:
		return "RESOLVING"
	case Absorbing:
		return "ABSORBING"
	case Validating:
		return "VALIDATING"
	case Done:
		return "DONE"
	default:
		return "UNKNOWN_STAGE"
	}
}

// PixelGrid is the read-only image collaborator the engine is driven over.
// ColorAt must be pure for the lifetime of one run: same (x,y) always yields
// the same Color.
type PixelGrid interface {
	Width() uint32
	Height() uint32
	ColorAt(x, y uint32) Color
}

// InBounds reports whether (x,y) lies within g's dimensions.
func InBounds(g PixelGrid, x, y uint32) bool {
	return x < g.Width() && y < g.Height()
}

// EventSink receives progress, warning, error, and debug notifications from
// the engine. Any method may be a no-op; implementations must return
// quickly — they are called synchronously from the scanning thread.
type EventSink interface {
	Stage(s Stage)
	Progress(row, total uint32)
	Warn(code, detail string)
	Error(code, detail string)
	DebugPixel(label Label, p Point)
}

// ColorAssigner maps a source color to a deterministic, previously-unissued
// replacement color, parameterized by a classification of the source color.
type ColorAssigner interface {
	Classify(c Color) Classification
	Assign(class Classification) Color
	Reset()
}
