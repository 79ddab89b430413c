package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shapeforge/provincegrid/colorpolicy"
	"github.com/shapeforge/provincegrid/engine"
	"github.com/shapeforge/provincegrid/pixel"
)

// rowGrid implements pixel.PixelGrid over a slice of rows of colors.
type rowGrid struct {
	rows [][]pixel.Color
}

func (g rowGrid) Width() uint32  { return uint32(len(g.rows[0])) }
func (g rowGrid) Height() uint32 { return uint32(len(g.rows)) }
func (g rowGrid) ColorAt(x, y uint32) pixel.Color {
	return g.rows[y][x]
}

func red() pixel.Color   { return pixel.Color{R: 255} }
func green() pixel.Color { return pixel.Color{G: 255} }
func border() pixel.Color {
	return pixel.BORDER
}

// TestFindAllShapes_SingleShape checks that a solid block of one color
// surrounded by border produces exactly one shape covering every
// non-border pixel, plus the border pixels it absorbs.
func TestFindAllShapes_SingleShape(t *testing.T) {
	g := rowGrid{rows: [][]pixel.Color{
		{border(), border(), border(), border()},
		{border(), red(), red(), border()},
		{border(), red(), red(), border()},
		{border(), border(), border(), border()},
	}}

	e := engine.New(nil, colorpolicy.NewSequentialAssigner())
	result, err := e.FindAllShapes(context.Background(), g)
	require.NoError(t, err)
	require.Len(t, result.Shapes, 1)
	require.Len(t, result.Shapes[0].Pixels, 16)
}

// TestFindAllShapes_TwoShapesSplitByVerticalBorder checks that a border
// column separating two colors produces two distinct shapes.
func TestFindAllShapes_TwoShapesSplitByVerticalBorder(t *testing.T) {
	g := rowGrid{rows: [][]pixel.Color{
		{red(), red(), border(), green(), green()},
		{red(), red(), border(), green(), green()},
		{red(), red(), border(), green(), green()},
	}}

	e := engine.New(nil, colorpolicy.NewSequentialAssigner())
	result, err := e.FindAllShapes(context.Background(), g)
	require.NoError(t, err)
	require.Len(t, result.Shapes, 2)

	// Each border pixel adopts its left neighbor, so the whole middle column
	// joins the red shape: red=9 (6 original + 3 absorbed), green=6.
	var redCount, greenCount int
	for _, s := range result.Shapes {
		switch s.SourceColor {
		case red():
			redCount = len(s.Pixels)
		case green():
			greenCount = len(s.Pixels)
		}
	}
	require.Equal(t, 9, redCount)
	require.Equal(t, 6, greenCount)
}

// TestFindAllShapes_UShapeRequiresLabelMerge checks a U-shaped region where
// the two arms get distinct provisional labels in Pass 1 and must be
// reconciled into one shape by Pass 2.
func TestFindAllShapes_UShapeRequiresLabelMerge(t *testing.T) {
	b := border()
	r := red()
	g := rowGrid{rows: [][]pixel.Color{
		{r, b, b, b, r},
		{r, b, b, b, r},
		{r, r, r, r, r},
	}}

	e := engine.New(nil, colorpolicy.NewSequentialAssigner())
	result, err := e.FindAllShapes(context.Background(), g)
	require.NoError(t, err)
	require.Len(t, result.Shapes, 1)
	require.Len(t, result.Shapes[0].Pixels, 15)
}

// TestFindAllShapes_AllBorder checks the fatal all-border condition: no
// non-border pixel exists for a border pixel to adopt into, and the result
// comes back as an empty ShapeList rather than an error.
func TestFindAllShapes_AllBorder(t *testing.T) {
	g := rowGrid{rows: [][]pixel.Color{
		{border(), border(), border()},
		{border(), border(), border()},
		{border(), border(), border()},
	}}

	e := engine.New(nil, colorpolicy.NewSequentialAssigner())
	result, err := e.FindAllShapes(context.Background(), g)
	require.NoError(t, err)
	require.Empty(t, result.Shapes)
}

// TestFindAllShapes_MixedColorNeighborhood checks that two adjacent
// differently-colored pixels end up in separate shapes and are recorded as
// mixed-color pixels.
func TestFindAllShapes_MixedColorNeighborhood(t *testing.T) {
	g := rowGrid{rows: [][]pixel.Color{
		{red(), green()},
	}}

	e := engine.New(nil, colorpolicy.NewSequentialAssigner())
	result, err := e.FindAllShapes(context.Background(), g)
	require.NoError(t, err)
	require.Len(t, result.Shapes, 2)
	require.NotEmpty(t, result.MixedColorPixels)
}

// TestFindAllShapes_OversizedShape checks that a shape whose bounding box
// exceeds the allowed fraction of the image raises a warning without
// failing the run.
func TestFindAllShapes_OversizedShape(t *testing.T) {
	rows := make([][]pixel.Color, 64)
	for y := range rows {
		row := make([]pixel.Color, 64)
		for x := range row {
			if y == 0 {
				row[x] = red()
			} else {
				row[x] = border()
			}
		}
		rows[y] = row
	}
	g := rowGrid{rows: rows}

	e := engine.New(nil, colorpolicy.NewSequentialAssigner())
	result, err := e.FindAllShapes(context.Background(), g)
	require.NoError(t, err)
	require.Len(t, result.Shapes, 1)
	require.NotEmpty(t, result.Warnings)

	var sawTooLarge bool
	for _, w := range result.Warnings {
		if w.Code == "shape-bounding-box-too-large" {
			sawTooLarge = true
		}
	}
	require.True(t, sawTooLarge)
}

func TestEngine_CannotRunTwice(t *testing.T) {
	g := rowGrid{rows: [][]pixel.Color{{red()}}}
	e := engine.New(nil, colorpolicy.NewSequentialAssigner())
	_, err := e.FindAllShapes(context.Background(), g)
	require.NoError(t, err)

	require.Panics(t, func() {
		_, _ = e.FindAllShapes(context.Background(), g)
	})
}

func TestEngine_CancelledContextStopsRun(t *testing.T) {
	rows := make([][]pixel.Color, 2000)
	for y := range rows {
		row := make([]pixel.Color, 2000)
		for x := range row {
			row[x] = red()
		}
		rows[y] = row
	}
	g := rowGrid{rows: rows}

	e := engine.New(nil, colorpolicy.NewSequentialAssigner())
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // pre-cancel to deterministically exercise the cancellation path
	_, err := e.FindAllShapes(ctx, g)
	require.Error(t, err)
}
