// Command provincegrid extracts province shapes from a province-map bitmap:
// decode the BMP, run the labeling pipeline, and write a recolored bitmap,
// a definition table, and a persisted shape file.
//
// Flag parsing loads an optional JSON config file first, then overlays CLI
// flags on top of it via internal/config.Resolve.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shapeforge/provincegrid/bmpgrid"
	"github.com/shapeforge/provincegrid/colorpolicy"
	"github.com/shapeforge/provincegrid/engine"
	"github.com/shapeforge/provincegrid/internal/config"
	"github.com/shapeforge/provincegrid/pixel"
	"github.com/shapeforge/provincegrid/provdef"
	"github.com/shapeforge/provincegrid/shapefile"
)

func main() {
	inputBMP := flag.String("input", "", "Path to the source province-map BMP")
	outputDir := flag.String("output-dir", "", "Directory to write outputs into (default: current directory)")
	configFile := flag.String("config", "", "Path to a JSON config file")
	dumpStages := flag.Bool("dump-stages", false, "Also write labels2.bmp, the post-absorption label grid, for debugging")
	minSize := flag.Int("min-size", 0, "Minimum province pixel count before a warning is raised (default: 8)")
	maxFractionDenom := flag.Float64("max-fraction", 0, "Maximum bounding-box extent as 1/N of the image (default: 8)")
	verbose := flag.Bool("verbose", false, "Log per-row progress and per-pixel debug events")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	cfg.Resolve(config.Flags{
		InputBMP:         *inputBMP,
		OutputDir:        *outputDir,
		MinShapeSize:     *minSize,
		MaxFractionDenom: *maxFractionDenom,
		DumpStages:       *dumpStages,
		Verbose:          *verbose,
	})

	if cfg.InputBMP == "" {
		fmt.Fprintln(os.Stderr, "Error: -input is required (or set input_bmp in the config file).")
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	f, err := os.Open(cfg.InputBMP)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	grid, err := bmpgrid.Load(f)
	if err != nil {
		return fmt.Errorf("decode input: %w", err)
	}

	sink := pixel.NewLogSink(nil, cfg.Verbose)
	assigner := colorpolicy.NewSequentialAssigner()

	e := engine.New(sink, assigner).WithValidationLimits(cfg.MinShapeSize, cfg.MaxFractionDenom)

	result, err := e.FindAllShapes(context.Background(), grid)
	if err != nil {
		return fmt.Errorf("extract shapes: %w", err)
	}

	if len(result.Shapes) == 0 {
		fmt.Println("No provinces extracted (image may be entirely border-colored).")
		return nil
	}

	rootColor := make(map[pixel.Label]pixel.Color, len(result.LabelToShapeIdx))
	for label, idx := range result.LabelToShapeIdx {
		rootColor[label] = result.Shapes[idx].UniqueColor
	}

	provincesPath := filepath.Join(cfg.OutputDir, "provinces.bmp")
	if err := writeBMP(provincesPath, result, rootColor); err != nil {
		return err
	}

	definitionPath := filepath.Join(cfg.OutputDir, "definition.csv")
	def, err := os.Create(definitionPath)
	if err != nil {
		return fmt.Errorf("create definition.csv: %w", err)
	}
	defer def.Close()
	rows := provdef.BuildRows(result.Shapes, assigner)
	if err := provdef.WriteTable(def, rows); err != nil {
		return fmt.Errorf("write definition.csv: %w", err)
	}

	shapesPath := filepath.Join(cfg.OutputDir, "shapes.gob")
	sf, err := os.Create(shapesPath)
	if err != nil {
		return fmt.Errorf("create shapes.gob: %w", err)
	}
	defer sf.Close()
	doc := shapefile.Document{ImageWidth: grid.Width(), ImageHeight: grid.Height(), Shapes: result.Shapes}
	if err := shapefile.Write(sf, doc); err != nil {
		return fmt.Errorf("write shapes.gob: %w", err)
	}

	if cfg.DumpStages && result.Labels != nil {
		labelsPath := filepath.Join(cfg.OutputDir, "labels2.bmp")
		if err := writeBMP(labelsPath, result, rootColor); err != nil {
			return err
		}
	}

	fmt.Printf("Extracted %d province(s); %d warning(s).\n", len(result.Shapes), len(result.Warnings))
	for _, w := range result.Warnings {
		fmt.Printf("  [%s] %s\n", w.Code, w.Detail)
	}
	return nil
}

func writeBMP(path string, result engine.Result, rootColor map[pixel.Label]pixel.Color) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer out.Close()

	err = bmpgrid.EncodeLabels(out, result.Labels, func(l pixel.Label) pixel.Color {
		if c, ok := rootColor[l]; ok {
			return c
		}
		return pixel.BORDER
	})
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
