// Package provincegrid extracts province shapes from grand-strategy-style
// province-map bitmaps: flat-colored regions separated by a border color,
// each a candidate province.
//
// The pipeline is a two-pass connected-component labeling scan with
// union-find label reconciliation, followed by a border-pixel absorption
// pass and an advisory validator. Subpackages:
//
//	pixel/      — shared types: Color, Point, Label, Stage, EventSink, ColorAssigner
//	unionfind/  — dense-array-indexed disjoint-set with the labeling tie-break rule
//	ccl/        — Scan (Pass 1), Resolve (Pass 2), Absorb (Pass 3)
//	shape/      — Shape and ShapeList, the extraction output model
//	validate/   — advisory minimum-size / maximum-extent checks
//	engine/     — FindAllShapes and EStop, the entry points a caller needs
//	colorpolicy/— deterministic land/sea/lake classification and color assignment
//	bmpgrid/    — BMP decode/encode, the default PixelGrid implementation
//	provdef/    — province definition table (CSV)
//	shapefile/  — persisted ShapeList (gob)
//	cmd/provincegrid/ — batch CLI wiring the above together
package provincegrid
