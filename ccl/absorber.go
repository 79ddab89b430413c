package ccl

import (
	"errors"

	"github.com/shapeforge/provincegrid/pixel"
	"github.com/shapeforge/provincegrid/shape"
)

// ErrAllBorder is returned when no non-border pixel exists anywhere in the
// image, so a border pixel's forward scan can never find a shape to adopt
// into. This is the engine's one fatal condition.
var ErrAllBorder = errors.New("ccl: entire image is border color")

// Absorb performs Pass 3: every border pixel recorded by Scan is merged
// into an adjacent shape, in adoption order left, then up, then a forward
// raster scan from the pixel's own position.
//
// The forward scan breaks as soon as it finds a non-border pixel, so a
// border pixel with no eligible left or up neighbor resolves to the nearest
// following non-border pixel in raster order rather than scanning past it.
// A border pixel with no non-border pixel after it (for example in the last
// row of a bordered image) falls back to the nearest preceding non-border
// pixel, found by scanning backward in raster order.
//
// Absorb mutates labels in place (writing the adopting shape's root label
// over each border pixel) and appends each border pixel to its adopted
// shape's Pixels, extending that shape's bounding box.
func Absorb(grid pixel.PixelGrid, labels *LabelGrid, borders []pixel.Pixel, shapes shape.List, labelToShapeIdx map[pixel.Label]int, opts ...Option) error {
	o := buildOptions(opts)
	o.Sink.Stage(pixel.Absorbing)

	for _, border := range borders {
		select {
		case <-o.Ctx.Done():
			return o.Ctx.Err()
		default:
		}

		x, y := border.Point.X, border.Point.Y

		root, found := adoptionTarget(grid, labels, x, y)
		if !found {
			o.Sink.Error("all-border-image", "no non-border pixel found to adopt "+border.Point.String())
			return ErrAllBorder
		}

		idx, ok := labelToShapeIdx[root]
		if !ok {
			o.Sink.Error("missing-shape-for-root", "root label has no shape entry")
			return ErrAllBorder
		}

		s := shapes[idx]
		s.Add(pixel.Pixel{Point: border.Point, Color: grid.ColorAt(x, y)})
		labels.Set(x, y, root)
	}

	return nil
}

// adoptionTarget finds the root label a border pixel at (x,y) should adopt:
// left neighbor, then up neighbor, then a forward raster scan to the end of
// the image, stopping at the first non-border pixel found. If the forward
// scan finds nothing, a backward raster scan from (x,y) toward the start of
// the image is tried; only when that also finds nothing is the whole image
// border.
func adoptionTarget(grid pixel.PixelGrid, labels *LabelGrid, x, y uint32) (pixel.Label, bool) {
	if x > 0 && grid.ColorAt(x-1, y) != pixel.BORDER {
		return labels.At(x-1, y), true
	}
	if y > 0 && grid.ColorAt(x, y-1) != pixel.BORDER {
		return labels.At(x, y-1), true
	}

	width, height := grid.Width(), grid.Height()
	for sy := y; sy < height; sy++ {
		startX := uint32(0)
		if sy == y {
			startX = x
		}
		for sx := startX; sx < width; sx++ {
			if grid.ColorAt(sx, sy) != pixel.BORDER {
				return labels.At(sx, sy), true
			}
		}
	}

	for sy := int64(y); sy >= 0; sy-- {
		endX := int64(width) - 1
		if sy == int64(y) {
			endX = int64(x) - 1
		}
		for sx := endX; sx >= 0; sx-- {
			if grid.ColorAt(uint32(sx), uint32(sy)) != pixel.BORDER {
				return labels.At(uint32(sx), uint32(sy)), true
			}
		}
	}

	return pixel.NoLabel, false
}
