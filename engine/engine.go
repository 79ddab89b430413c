// Package engine wires Scanner, Resolver, BorderAbsorber, and Validator into
// the two entry points callers need: FindAllShapes and EStop. It is the
// only package a UI or CLI needs to import to run the pipeline end to end.
package engine

import (
	"context"
	"sync/atomic"

	"github.com/shapeforge/provincegrid/ccl"
	"github.com/shapeforge/provincegrid/pixel"
	"github.com/shapeforge/provincegrid/shape"
	"github.com/shapeforge/provincegrid/validate"
)

// Result is the outcome of one FindAllShapes run.
type Result struct {
	Shapes shape.List
	// MixedColorPixels carries forward every pixel where a Pass 1 neighbor
	// disagreed on color, so a caller can inspect or report on them without
	// re-scanning the source image.
	MixedColorPixels []pixel.Pixel
	// Warnings are the advisory findings from the post-pass Validator.
	Warnings []validate.Warning
	// Labels is the final label grid, root-labeled over non-border pixels
	// and border-adopted-root-labeled over border pixels. Ownership
	// transfers to the caller along with Shapes; it is nil if the run was
	// cancelled or hit a fatal condition.
	Labels *ccl.LabelGrid
	// LabelToShapeIdx maps a root label, as it appears in Labels, to its
	// shape's index within Shapes — the lookup a BMP recolor pass needs.
	LabelToShapeIdx map[pixel.Label]int
}

// Engine runs one shape-extraction pass over a PixelGrid. It is single-use:
// calling FindAllShapes a second time on the same Engine panics.
type Engine struct {
	sink     pixel.EventSink
	assigner pixel.ColorAssigner
	ran      atomic.Bool

	minShapeSize     int
	maxFractionDenom float64

	// cancel is set once FindAllShapes starts running; EStop may be called
	// concurrently from another goroutine (e.g. a UI thread), so it is
	// published through an atomic pointer rather than a plain field.
	cancel atomic.Pointer[context.CancelFunc]
}

// New constructs an Engine reporting through sink and assigning unique
// colors through assigner. A nil sink becomes pixel.NopSink{}. Validation
// thresholds default to validate's own defaults (MinShapeSize, one-eighth
// extent); use WithValidationLimits to override them.
func New(sink pixel.EventSink, assigner pixel.ColorAssigner) *Engine {
	if sink == nil {
		sink = pixel.NopSink{}
	}
	return &Engine{sink: sink, assigner: assigner, minShapeSize: validate.MinShapeSize, maxFractionDenom: 8.0}
}

// WithValidationLimits overrides the minimum shape size and maximum
// bounding-box extent denominator the Validator applies, driven by the
// CLI's -min-size and -max-fraction flags. Returns the Engine for chaining.
func (e *Engine) WithValidationLimits(minShapeSize int, maxFractionDenom float64) *Engine {
	e.minShapeSize = minShapeSize
	e.maxFractionDenom = maxFractionDenom
	return e
}

// EStop is a one-way switch: once called, the engine abandons work at the
// next row boundary in whichever pass is running and FindAllShapes returns
// an empty result. There is no resume. Calling EStop before FindAllShapes
// starts is a no-op; the run will still proceed, since there is nothing yet
// to cancel.
func (e *Engine) EStop() {
	if cancel := e.cancel.Load(); cancel != nil {
		(*cancel)()
	}
}

// FindAllShapes runs Pass 1 (Scanner), Pass 2 (Resolver), Pass 3
// (BorderAbsorber), and the Validator in sequence, reporting stage
// transitions through the Engine's sink. On cancellation or a fatal
// condition (the entire image is border-colored), it returns an empty
// Result — partial pipeline state is never exposed.
func (e *Engine) FindAllShapes(ctx context.Context, grid pixel.PixelGrid) (Result, error) {
	if !e.ran.CompareAndSwap(false, true) {
		panic("engine: FindAllShapes called more than once on the same Engine")
	}

	ctx = e.withCancellation(ctx)

	scanned, err := ccl.Scan(grid, ccl.WithContext(ctx), ccl.WithSink(e.sink))
	if err != nil {
		e.sink.Stage(pixel.Done)
		return Result{}, err
	}

	e.assigner.Reset()
	resolved, err := ccl.Resolve(grid, scanned.Labels, scanned.Equivalences, e.assigner, ccl.WithContext(ctx), ccl.WithSink(e.sink))
	if err != nil {
		e.sink.Stage(pixel.Done)
		return Result{}, err
	}

	if err := ccl.Absorb(grid, scanned.Labels, scanned.BorderPixels, resolved.Shapes, resolved.LabelToShapeIdx, ccl.WithContext(ctx), ccl.WithSink(e.sink)); err != nil {
		e.sink.Stage(pixel.Done)
		if err == ccl.ErrAllBorder {
			return Result{}, nil
		}
		return Result{}, err
	}

	warnings := validate.ShapesWithLimits(resolved.Shapes, grid.Width(), grid.Height(), e.minShapeSize, e.maxFractionDenom, e.sink)

	e.sink.Stage(pixel.Done)

	return Result{
		Shapes:           resolved.Shapes,
		MixedColorPixels: scanned.MixedColorPixels,
		Warnings:         warnings,
		Labels:           scanned.Labels,
		LabelToShapeIdx:  resolved.LabelToShapeIdx,
	}, nil
}

// withCancellation returns a context whose cancel function is published for
// EStop to call, layering the engine's one-way cancellation switch on top of
// whatever context the caller supplied.
func (e *Engine) withCancellation(parent context.Context) context.Context {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	e.cancel.Store(&cancel)
	return ctx
}
