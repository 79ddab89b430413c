package ccl

import (
	"github.com/shapeforge/provincegrid/pixel"
)

// LabelGrid is a dense, row-major array of one Label per pixel: width*height
// entries, indexed y*width+x. It is owned by whichever run allocated it and
// is not safe to share across runs.
type LabelGrid struct {
	width, height uint32
	labels        []pixel.Label
}

// NewLabelGrid allocates a zero-initialized LabelGrid sized for a
// width x height image. Every entry starts at pixel.NoLabel.
func NewLabelGrid(width, height uint32) *LabelGrid {
	return &LabelGrid{
		width:  width,
		height: height,
		labels: make([]pixel.Label, uint64(width)*uint64(height)),
	}
}

// Width and Height report the grid's dimensions.
func (g *LabelGrid) Width() uint32  { return g.width }
func (g *LabelGrid) Height() uint32 { return g.height }

// At returns the label currently stored at (x,y).
func (g *LabelGrid) At(x, y uint32) pixel.Label {
	return g.labels[uint64(y)*uint64(g.width)+uint64(x)]
}

// Set stores label at (x,y).
func (g *LabelGrid) Set(x, y uint32, label pixel.Label) {
	g.labels[uint64(y)*uint64(g.width)+uint64(x)] = label
}
