package bmpgrid_test

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/shapeforge/provincegrid/bmpgrid"
	"github.com/shapeforge/provincegrid/ccl"
	"github.com/shapeforge/provincegrid/pixel"
)

func TestFromImage_CopiesRGBChannels(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(1, 0, color.RGBA{G: 255, A: 255})
	img.Set(0, 1, color.RGBA{B: 255, A: 255})
	img.Set(1, 1, color.RGBA{A: 255}) // black

	g := bmpgrid.FromImage(img)
	require.Equal(t, uint32(2), g.Width())
	require.Equal(t, uint32(2), g.Height())
	require.Equal(t, pixel.Color{R: 255}, g.ColorAt(0, 0))
	require.Equal(t, pixel.Color{G: 255}, g.ColorAt(1, 0))
	require.Equal(t, pixel.Color{B: 255}, g.ColorAt(0, 1))
	require.Equal(t, pixel.BORDER, g.ColorAt(1, 1))
}

func TestLoad_RoundTripsThroughBMPEncoding(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 10), G: uint8(y * 10), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, img))

	g, err := bmpgrid.Load(&buf)
	require.NoError(t, err)
	require.Equal(t, pixel.Color{R: 20, G: 10}, g.ColorAt(2, 1))
}

func TestEncodeLabels_ProducesDecodableBMP(t *testing.T) {
	labels := ccl.NewLabelGrid(2, 2)
	labels.Set(0, 0, 1)
	labels.Set(1, 0, 1)
	labels.Set(0, 1, 2)
	labels.Set(1, 1, 2)

	palette := map[pixel.Label]pixel.Color{
		1: {R: 200},
		2: {B: 200},
	}

	var buf bytes.Buffer
	err := bmpgrid.EncodeLabels(&buf, labels, func(l pixel.Label) pixel.Color {
		return palette[l]
	})
	require.NoError(t, err)

	decoded, err := bmp.Decode(&buf)
	require.NoError(t, err)
	r, _, _, _ := decoded.At(0, 0).RGBA()
	require.Equal(t, uint32(200), r>>8)
}
