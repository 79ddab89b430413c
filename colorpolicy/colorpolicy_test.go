package colorpolicy_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shapeforge/provincegrid/colorpolicy"
	"github.com/shapeforge/provincegrid/pixel"
)

func TestAssign_NeverRepeatsWithinBucket(t *testing.T) {
	a := colorpolicy.NewSequentialAssigner()
	seen := map[pixel.Color]bool{}
	for i := 0; i < 50; i++ {
		c := a.Assign(pixel.Land)
		require.False(t, seen[c], "color %v repeated at iteration %d", c, i)
		seen[c] = true
	}
}

func TestAssign_NeverIssuesBorderColor(t *testing.T) {
	a := colorpolicy.NewSequentialAssigner()
	for _, class := range []pixel.Classification{pixel.Land, pixel.Sea, pixel.Lake, pixel.Unknown} {
		for i := 0; i < 20; i++ {
			c := a.Assign(class)
			require.NotEqual(t, pixel.BORDER, c)
		}
	}
}

func TestReset_RestartsSequence(t *testing.T) {
	a := colorpolicy.NewSequentialAssigner()
	first := a.Assign(pixel.Land)
	a.Assign(pixel.Land)
	a.Reset()
	afterReset := a.Assign(pixel.Land)
	require.Equal(t, first, afterReset)
}

func TestClassify_Deterministic(t *testing.T) {
	a := colorpolicy.NewSequentialAssigner()
	c := pixel.Color{R: 10, G: 20, B: 220}
	first := a.Classify(c)
	second := a.Classify(c)
	require.Equal(t, first, second)
	require.Equal(t, pixel.Sea, first)
}
