package ccl

import (
	"github.com/shapeforge/provincegrid/pixel"
	"github.com/shapeforge/provincegrid/unionfind"
)

// ScanResult is everything Pass 1 hands to Pass 2: the provisional label
// grid, the equivalence set recording every merge encountered, the ordered
// list of border pixels (Pass 3's input), and every pixel where a neighbor
// disagreed on color.
type ScanResult struct {
	Labels           *LabelGrid
	Equivalences     *unionfind.Set
	BorderPixels     []pixel.Pixel
	MixedColorPixels []pixel.Pixel
	// NextLabel is one past the highest label assigned.
	NextLabel pixel.Label
}

// Scan performs Pass 1 of the CCL algorithm: a single raster scan assigning
// every non-border pixel a provisional label from its left/up neighbors, and
// recording label equivalences when both neighbors match but disagree.
//
// Border pixels get label 0 and are appended to BorderPixels in raster
// order. Cancellation is checked once per row; on cancellation Scan returns
// ctx.Err() and a partial ScanResult that the caller must discard.
func Scan(grid pixel.PixelGrid, opts ...Option) (*ScanResult, error) {
	o := buildOptions(opts)
	width, height := grid.Width(), grid.Height()

	o.Sink.Stage(pixel.Scanning)

	res := &ScanResult{
		Labels:    NewLabelGrid(width, height),
		NextLabel: 1,
	}
	// Reserve an equivalence set large enough for the worst case (every
	// pixel its own label); it only ever grows lazily past this via Union's
	// grow(), so an undersized initial guess is never unsafe, only wasteful.
	res.Equivalences = unionfind.New(pixel.Label(width) * pixel.Label(height))

	nextLabel := pixel.Label(1)

	for y := uint32(0); y < height; y++ {
		select {
		case <-o.Ctx.Done():
			return res, o.Ctx.Err()
		default:
		}
		o.Sink.Progress(y, height)

		for x := uint32(0); x < width; x++ {
			color := grid.ColorAt(x, y)

			if color == pixel.BORDER {
				res.Labels.Set(x, y, pixel.NoLabel)
				res.BorderPixels = append(res.BorderPixels, pixel.Pixel{
					Point: pixel.Point{X: x, Y: y},
					Color: color,
				})
				continue
			}

			labelLeft, haveLeft := scanNeighbor(grid, res, x, y, -1, 0, color, &o)
			labelUp, haveUp := scanNeighbor(grid, res, x, y, 0, -1, color, &o)

			label := assignLabel(res, nextLabel, labelLeft, haveLeft, labelUp, haveUp)
			if label == nextLabel {
				nextLabel++
			}

			res.Labels.Set(x, y, label)
			o.Sink.DebugPixel(label, pixel.Point{X: x, Y: y})
		}
	}

	res.NextLabel = nextLabel
	return res, nil
}

// scanNeighbor reads the neighbor at (x+dx, y+dy), which must already have
// been visited in raster order. It returns (0, false) if the neighbor is
// out of the image, is itself a border pixel, or — after emitting a
// mixed-color-neighborhood warning — disagrees with color.
func scanNeighbor(grid pixel.PixelGrid, res *ScanResult, x, y uint32, dx, dy int, color pixel.Color, o *Options) (pixel.Label, bool) {
	nx64, ny64 := int64(x)+int64(dx), int64(y)+int64(dy)
	if nx64 < 0 || ny64 < 0 {
		return 0, false
	}
	nx, ny := uint32(nx64), uint32(ny64)
	if !pixel.InBounds(grid, nx, ny) {
		return 0, false
	}

	neighborColor := grid.ColorAt(nx, ny)
	if neighborColor == pixel.BORDER {
		return 0, false
	}
	if neighborColor != color {
		p := pixel.Point{X: nx, Y: ny}
		o.Sink.Warn("mixed-color-neighborhood", "neighbor at "+p.String()+" has a different color than "+(pixel.Point{X: x, Y: y}).String())
		res.MixedColorPixels = append(res.MixedColorPixels, pixel.Pixel{Point: p, Color: neighborColor})
		return 0, false
	}

	return res.Labels.At(nx, ny), true
}

// assignLabel picks the label for a non-border pixel from its left/up
// neighbors: no matching neighbor assigns nextLabel; one matching neighbor
// copies its label; two matching neighbors with the same label copy it; two
// matching neighbors with different labels take the smaller and union the
// larger into it.
func assignLabel(res *ScanResult, nextLabel pixel.Label, left pixel.Label, haveLeft bool, up pixel.Label, haveUp bool) pixel.Label {
	switch {
	case !haveLeft && !haveUp:
		return nextLabel
	case haveLeft && !haveUp:
		return left
	case !haveLeft && haveUp:
		return up
	case left == up:
		// Reaching here means both haveLeft and haveUp are true (the three
		// cases above exhaust every other combination).
		return left
	default:
		smaller := left
		if up < smaller {
			smaller = up
		}
		res.Equivalences.Union(left, up)
		return smaller
	}
}
