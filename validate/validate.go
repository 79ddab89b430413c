// Package validate implements the advisory post-pass checks run over a
// ShapeList after border absorption: minimum pixel count and maximum
// bounding-box extent. Neither check is fatal — validation only produces
// warnings; the ShapeList is always returned as-is.
package validate

import (
	"fmt"

	"github.com/shapeforge/provincegrid/pixel"
	"github.com/shapeforge/provincegrid/shape"
)

// MinShapeSize is the default minimum pixel count a province may have.
// Shapes at or below this size are warned about, not rejected.
const MinShapeSize = 8

// Warning describes one advisory finding against a single shape.
type Warning struct {
	// ShapeNumber is 1-based, for human-facing diagnostics ("Shape 3 has
	// only..."), even though shape.List itself is 0-indexed.
	ShapeNumber int
	Code        string
	Detail      string
}

// IsTooLarge reports whether a bounding box of the given width/height
// exceeds one-eighth of the image's corresponding dimension in either axis.
// Kept standalone rather than inlined into Shapes, so it can be
// unit-tested and reused independently.
func IsTooLarge(width, height, imageWidth, imageHeight uint32) bool {
	return IsTooLargeFraction(width, height, imageWidth, imageHeight, 8.0)
}

// IsTooLargeFraction is IsTooLarge generalized to an arbitrary denominator,
// so the CLI's -max-fraction flag has something to drive.
func IsTooLargeFraction(width, height, imageWidth, imageHeight uint32, maxFractionDenom float64) bool {
	return float64(width) > float64(imageWidth)/maxFractionDenom || float64(height) > float64(imageHeight)/maxFractionDenom
}

// Shapes runs both checks, using the package defaults (MinShapeSize, a
// maximum extent of one-eighth of the image), over every shape in list.
func Shapes(list shape.List, imageWidth, imageHeight uint32, sink pixel.EventSink) []Warning {
	return ShapesWithLimits(list, imageWidth, imageHeight, MinShapeSize, 8.0, sink)
}

// ShapesWithLimits is Shapes with the minimum pixel count and the
// maximum-extent denominator both caller-supplied, reporting findings
// through sink as well as returning them so a caller can also collect a
// structured summary without re-parsing log lines.
func ShapesWithLimits(list shape.List, imageWidth, imageHeight uint32, minSize int, maxFractionDenom float64, sink pixel.EventSink) []Warning {
	sink.Stage(pixel.Validating)

	var warnings []Warning
	for i, s := range list {
		number := i + 1

		if len(s.Pixels) <= minSize {
			detail := fmt.Sprintf("shape %d has only %d pixels; provinces must have more than %d", number, len(s.Pixels), minSize)
			sink.Warn("shape-too-small", detail)
			warnings = append(warnings, Warning{ShapeNumber: number, Code: "shape-too-small", Detail: detail})
		}

		width, height := s.Dims()
		if IsTooLargeFraction(width, height, imageWidth, imageHeight, maxFractionDenom) {
			detail := fmt.Sprintf("shape %d has a bounding box of %dx%d, exceeding 1/%.0f of the image (%dx%d) in at least one dimension", number, width, height, maxFractionDenom, imageWidth, imageHeight)
			sink.Warn("shape-bounding-box-too-large", detail)
			warnings = append(warnings, Warning{ShapeNumber: number, Code: "shape-bounding-box-too-large", Detail: detail})
		}
	}

	return warnings
}
