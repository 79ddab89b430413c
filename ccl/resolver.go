package ccl

import (
	"github.com/shapeforge/provincegrid/pixel"
	"github.com/shapeforge/provincegrid/shape"
	"github.com/shapeforge/provincegrid/unionfind"
)

// ResolveResult is Pass 2's output: the label grid now holding root labels
// over every non-border pixel, the ShapeList built from those roots, and the
// label->shape-index map Pass 3 needs to find a shape by its root label.
type ResolveResult struct {
	Shapes          shape.List
	LabelToShapeIdx map[pixel.Label]int
}

// Resolve performs Pass 2: a second raster scan that rewrites every
// non-border pixel's label to its equivalence-class root, and incrementally
// builds one Shape per distinct root label encountered, in discovery order.
//
// assigner classifies and assigns the unique replacement color for each
// newly discovered shape, exactly once, at first discovery.
func Resolve(grid pixel.PixelGrid, labels *LabelGrid, eq *unionfind.Set, assigner pixel.ColorAssigner, opts ...Option) (*ResolveResult, error) {
	o := buildOptions(opts)
	width, height := grid.Width(), grid.Height()

	o.Sink.Stage(pixel.Resolving)

	res := &ResolveResult{
		LabelToShapeIdx: make(map[pixel.Label]int),
	}

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
				continue
			}

			root := eq.Resolve(labels.At(x, y))
			labels.Set(x, y, root)

			idx, ok := res.LabelToShapeIdx[root]
			if !ok {
				unique := assigner.Assign(assigner.Classify(color))
				idx = len(res.Shapes)
				res.LabelToShapeIdx[root] = idx
				res.Shapes = append(res.Shapes, shape.New(color, unique, pixel.Pixel{
					Point: pixel.Point{X: x, Y: y},
					Color: color,
				}))
				continue
			}

			res.Shapes[idx].Add(pixel.Pixel{Point: pixel.Point{X: x, Y: y}, Color: color})
		}
	}

	return res, nil
}
