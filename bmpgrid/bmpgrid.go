// Package bmpgrid adapts a decoded 24-bit BMP into a pixel.PixelGrid, and
// encodes a ccl.LabelGrid back out to a recolored BMP. It is the engine's
// concrete PixelGrid implementation — the engine itself never parses BMP.
//
// Decode/encode goes through golang.org/x/image/bmp. Pixels are stored in a
// flat, interleaved byte slice rather than a slice of image.Color values,
// for cache locality across million-pixel scans.
package bmpgrid

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"golang.org/x/image/bmp"

	"github.com/shapeforge/provincegrid/ccl"
	"github.com/shapeforge/provincegrid/pixel"
)

// Grid is a pixel.PixelGrid backed by a flat RGB buffer decoded from a BMP.
type Grid struct {
	width, height uint32
	rgb           []uint8 // interleaved R,G,B; len = width*height*3
}

// Load decodes a 24-bit BMP from r into a Grid.
func Load(r io.Reader) (*Grid, error) {
	img, err := bmp.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("bmpgrid: decode: %w", err)
	}
	return FromImage(img), nil
}

// FromImage copies img's pixels into a new Grid. Alpha, if present, is
// discarded — the engine only ever reasons about RGB.
func FromImage(img image.Image) *Grid {
	bounds := img.Bounds()
	width, height := uint32(bounds.Dx()), uint32(bounds.Dy())
	g := &Grid{
		width:  width,
		height: height,
		rgb:    make([]uint8, uint64(width)*uint64(height)*3),
	}
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			r, gr, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			off := (uint64(y)*uint64(width) + uint64(x)) * 3
			// image.Color.RGBA returns premultiplied 16-bit channels;
			// shifting down to 8-bit is the standard narrowing for an
			// opaque source image (alpha == 0xffff for BMP).
			g.rgb[off] = uint8(r >> 8)
			g.rgb[off+1] = uint8(gr >> 8)
			g.rgb[off+2] = uint8(b >> 8)
		}
	}
	return g
}

// Width implements pixel.PixelGrid.
func (g *Grid) Width() uint32 { return g.width }

// Height implements pixel.PixelGrid.
func (g *Grid) Height() uint32 { return g.height }

// ColorAt implements pixel.PixelGrid.
func (g *Grid) ColorAt(x, y uint32) pixel.Color {
	off := (uint64(y)*uint64(g.width) + uint64(x)) * 3
	return pixel.Color{R: g.rgb[off], G: g.rgb[off+1], B: g.rgb[off+2]}
}

// EncodeLabels writes a BMP to w where every pixel is colored by its shape's
// UniqueColor, looked up through the label grid and a root-label-to-color
// map the caller supplies. This produces both the final recolored province
// bitmap and, when the caller is dumping intermediate state for debugging,
// the labels2.bmp stage artifact.
func EncodeLabels(w io.Writer, labels *ccl.LabelGrid, colorOf func(pixel.Label) pixel.Color) error {
	width, height := int(labels.Width()), int(labels.Height())
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			label := labels.At(uint32(x), uint32(y))
			c := colorOf(label)
			img.Set(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
		}
	}
	if err := bmp.Encode(w, img); err != nil {
		return fmt.Errorf("bmpgrid: encode: %w", err)
	}
	return nil
}
