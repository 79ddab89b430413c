package main

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/shapeforge/provincegrid/internal/config"
)

func TestRun_WritesAllOutputsForASimpleImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{A: 255}) // all border
		}
	}
	for y := 1; y < 3; y++ {
		for x := 1; x < 3; x++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, img))

	dir := t.TempDir()
	inputPath := filepath.Join(dir, "in.bmp")
	require.NoError(t, os.WriteFile(inputPath, buf.Bytes(), 0o644))

	outDir := filepath.Join(dir, "out")
	var cfg config.Config
	cfg.Resolve(config.Flags{InputBMP: inputPath, OutputDir: outDir})

	require.NoError(t, run(cfg))

	for _, name := range []string{"provinces.bmp", "definition.csv", "shapes.gob"} {
		_, err := os.Stat(filepath.Join(outDir, name))
		require.NoError(t, err, "expected %s to exist", name)
	}
}

func TestRun_AllBorderImageSucceedsWithoutOutputs(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, img))

	dir := t.TempDir()
	inputPath := filepath.Join(dir, "in.bmp")
	require.NoError(t, os.WriteFile(inputPath, buf.Bytes(), 0o644))

	outDir := filepath.Join(dir, "out")
	var cfg config.Config
	cfg.Resolve(config.Flags{InputBMP: inputPath, OutputDir: outDir})

	require.NoError(t, run(cfg))

	_, err := os.Stat(filepath.Join(outDir, "provinces.bmp"))
	require.True(t, os.IsNotExist(err))
}
