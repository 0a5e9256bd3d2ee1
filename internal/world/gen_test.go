package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIsDeterministic(t *testing.T) {
	params := DefaultGenParams()

	w1 := NewGenerator(1234, params).Generate(80, 48)
	w2 := NewGenerator(1234, params).Generate(80, 48)

	assert.True(t, w1.Equal(w2), "same seed must produce identical worlds")

	w3 := NewGenerator(5678, params).Generate(80, 48)
	assert.False(t, w1.Equal(w3), "different seeds should diverge")
}

func TestGenerateColumns(t *testing.T) {
	gen := NewGenerator(7, DefaultGenParams())
	w := gen.Generate(60, 40)

	for x := 0; x < w.Width(); x++ {
		ground := gen.SurfaceHeight(x, w.Height())

		// Air or tree matter above, grass at the surface.
		assert.Equal(t, Grass, w.At(x, ground), "column %d surface", x)

		above := w.At(x, ground-1)
		assert.Contains(t, []BlockType{Air, Wood, Leaves}, above, "column %d above surface", x)

		// Dirt band directly below, stone at the bottom.
		assert.Equal(t, Dirt, w.At(x, ground+1), "column %d dirt band", x)
		assert.Equal(t, Stone, w.At(x, w.Height()-1), "column %d bottom", x)
	}
}

func TestSurfaceHeightStaysInBounds(t *testing.T) {
	gen := NewGenerator(99, GenParams{
		Surface:     0.4,
		Amplitude:   100, // extreme displacement must still clamp
		DirtDepth:   3,
		TreeDensity: 0,
		NoiseScale:  0.3,
	})

	for x := 0; x < 200; x++ {
		ground := gen.SurfaceHeight(x, 24)
		require.GreaterOrEqual(t, ground, 2)
		require.LessOrEqual(t, ground, 22)
	}
}

func TestTreesGrowOnGrass(t *testing.T) {
	gen := NewGenerator(31, DefaultGenParams())
	w := gen.Generate(120, 48)

	trunks := 0
	w.Each(func(c Coord, b BlockType) {
		if b != Wood {
			return
		}
		// Every trunk cell sits in a column whose surface block is grass.
		below := w.At(c.X, c.Y+1)
		assert.Contains(t, []BlockType{Wood, Grass}, below, "trunk at %v must stand on its column", c)
		trunks++
	})

	assert.Greater(t, trunks, 0, "default density should produce at least one tree")
}
