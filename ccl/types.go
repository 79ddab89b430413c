// Package ccl implements the three-pass Connected-Component Labeling
// algorithm at the heart of the shape-extraction engine: Scanner (Pass 1),
// Resolver (Pass 2), and BorderAbsorber (Pass 3).
//
// Each pass is driven by a functional Options type configuring an
// EventSink and a context.Context. Scan and Resolve check cancellation once
// per row rather than once per pixel; Absorb checks it once per border pixel.
package ccl

import (
	"context"

	"github.com/shapeforge/provincegrid/pixel"
)

// Option configures a pass via functional arguments.
type Option func(*Options)

// Options holds the collaborators every pass is driven through.
type Options struct {
	// Ctx allows cooperative cancellation; checked once per row by Scan and
	// Resolve, and once per border pixel by Absorb.
	Ctx context.Context
	// Sink receives stage/progress/warn/error/debug notifications. Never nil
	// after DefaultOptions.
	Sink pixel.EventSink
}

// DefaultOptions returns Options with context.Background() and a NopSink —
// safe to run a pass with no customization at all.
func DefaultOptions() Options {
	return Options{
		Ctx:  context.Background(),
		Sink: pixel.NopSink{},
	}
}

// WithContext sets the cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSink sets the event sink.
func WithSink(sink pixel.EventSink) Option {
	return func(o *Options) {
		if sink != nil {
			o.Sink = sink
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
