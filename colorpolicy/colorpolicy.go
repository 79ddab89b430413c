// Package colorpolicy provides a default pixel.ColorAssigner: a
// deterministic generator of visually distinct replacement colors, bucketed
// by a simple land/sea/lake heuristic classification.
//
// Classification and unique-color assignment are injected into the engine
// as a pure pixel.ColorAssigner rather than hardcoded into it, so callers
// can supply their own palette or heuristic.
package colorpolicy

import (
	"image/color"
	"math"

	"github.com/shapeforge/provincegrid/pixel"
)

// SequentialAssigner assigns colors by walking evenly spaced points around
// the HSV hue ring, offset per classification bucket so land, sea, and lake
// provinces land in visually separated hue bands. Assign never repeats a
// color within one Reset cycle: each call advances an independent counter
// per classification.
type SequentialAssigner struct {
	counters map[pixel.Classification]int
}

// NewSequentialAssigner returns a ready-to-use SequentialAssigner.
func NewSequentialAssigner() *SequentialAssigner {
	a := &SequentialAssigner{}
	a.Reset()
	return a
}

// hueBand is the starting hue (degrees) for each classification's ring.
var hueBand = map[pixel.Classification]float64{
	pixel.Land:    90,  // greens
	pixel.Sea:     210, // blues
	pixel.Lake:    190, // cyans
	pixel.Unknown: 30,  // oranges
}

// stepDegrees is the hue increment between successively assigned colors
// within one bucket, chosen so consecutive assignments are never adjacent
// enough to be confused by eye before the ring wraps many times over.
const stepDegrees = 47.0

// Classify buckets a source color using the game convention that true black
// is a border (never passed here) and that saturated blue tones are water;
// everything else defaults to land. This is a simple, deterministic
// heuristic, not a learned or configurable classifier — a real mod tool
// would let a human override classification per color, which is out of this
// package's scope.
func (a *SequentialAssigner) Classify(c pixel.Color) pixel.Classification {
	r, g, b := int(c.R), int(c.G), int(c.B)
	switch {
	case b > r+20 && b > g+20 && b > 80:
		if b > 180 && r < 60 {
			return pixel.Sea
		}
		return pixel.Lake
	default:
		return pixel.Land
	}
}

// Assign returns the next unissued color for class. Colors are never
// reissued until Reset is called.
func (a *SequentialAssigner) Assign(class pixel.Classification) pixel.Color {
	n := a.counters[class]
	a.counters[class] = n + 1

	hue := math.Mod(hueBand[class]+float64(n)*stepDegrees, 360)
	// Alternate saturation/value slightly per lap around the ring so colors
	// 0 and N (N = 360/stepDegrees) aren't identical.
	lap := n / int(math.Floor(360.0/stepDegrees+1))
	sat := 0.65 + 0.1*float64(lap%3)
	val := 0.85 - 0.05*float64(lap%2)

	r, g, b := hsvToRGB(hue, sat, val)
	return pixel.Color{R: r, G: g, B: b}
}

// Reset clears every per-classification counter, so a new run reissues the
// same deterministic sequence of colors.
func (a *SequentialAssigner) Reset() {
	a.counters = make(map[pixel.Classification]int)
}

func hsvToRGB(h, s, v float64) (uint8, uint8, uint8) {
	c := color.RGBA{}
	i := math.Floor(h / 60)
	f := h/60 - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}

	c.R = uint8(r * 255)
	c.G = uint8(g * 255)
	c.B = uint8(b * 255)
	return c.R, c.G, c.B
}
