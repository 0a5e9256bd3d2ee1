package world

import (
	"math/rand"

	"github.com/aquilax/go-perlin"
)

// GenParams controls terrain generation.
type GenParams struct {
	Surface     float64 // base surface line as a fraction of world height
	Amplitude   float64 // max surface displacement in tiles
	DirtDepth   int     // dirt band thickness below the grass layer
	TreeDensity float64 // approximate trees per column (e.g. 0.125 = one per 8 columns)
	NoiseScale  float64 // horizontal noise frequency
}

// DefaultGenParams returns the parameters used by both game variants
// unless overridden by config.
func DefaultGenParams() GenParams {
	return GenParams{
		Surface:     0.4,
		Amplitude:   4,
		DirtDepth:   4,
		TreeDensity: 0.125,
		NoiseScale:  0.05,
	}
}

// Generator produces initial worlds from a seed. The surface line is a
// perlin heightmap; each column gets grass on the surface, a dirt band
// below it and stone to the bottom, with scattered trees on top.
type Generator struct {
	params GenParams
	noise  *perlin.Perlin
	rng    *rand.Rand
}

// NewGenerator creates a generator for the given seed.
func NewGenerator(seed int64, params GenParams) *Generator {
	const (
		alpha   = 2.0 // smoothing
		beta    = 2.0 // frequency
		octaves = 3
	)
	return &Generator{
		params: params,
		noise:  perlin.NewPerlin(alpha, beta, octaves, seed),
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// noise01 maps perlin output from [-1, 1] to [0, 1].
func (g *Generator) noise01(x float64) float64 {
	return (g.noise.Noise1D(x) + 1.0) / 2.0
}

// SurfaceHeight returns the ground row for column x in a world of the
// given height. Pure in x for a fixed seed.
func (g *Generator) SurfaceHeight(x, height int) int {
	base := float64(height) * g.params.Surface
	offset := (g.noise01(float64(x)*g.params.NoiseScale) - 0.5) * 2 * g.params.Amplitude
	ground := int(base + offset)
	if ground < 2 {
		ground = 2
	}
	if ground > height-2 {
		ground = height - 2
	}
	return ground
}

// Generate builds a fresh world of the given dimensions.
func (g *Generator) Generate(width, height int) *World {
	w := New(width, height)

	for x := 0; x < width; x++ {
		ground := g.SurfaceHeight(x, height)
		w.Set(x, ground, Grass)
		for y := ground + 1; y < height; y++ {
			if y < ground+1+g.params.DirtDepth {
				w.Set(x, y, Dirt)
			} else {
				w.Set(x, y, Stone)
			}
		}
	}

	g.plantTrees(w)
	return w
}

// plantTrees places wood trunks with leaf crowns on the grass surface.
func (g *Generator) plantTrees(w *World) {
	count := int(float64(w.Width()) * g.params.TreeDensity)
	for i := 0; i < count; i++ {
		tx := 3 + g.rng.Intn(maxi(w.Width()-6, 1))
		ground := w.SurfaceY(tx)
		if w.At(tx, ground) != Grass {
			continue
		}

		trunk := 3 + g.rng.Intn(3)
		top := ground - trunk
		if top < 1 {
			continue
		}
		for y := ground - 1; y >= top; y-- {
			w.Set(tx, y, Wood)
		}

		// crown: fill air cells in a small box around the trunk top
		for lx := tx - 2; lx <= tx+2; lx++ {
			for ly := top - 2; ly <= top; ly++ {
				if w.InBounds(lx, ly) && w.At(lx, ly) == Air {
					w.Set(lx, ly, Leaves)
				}
			}
		}
	}
}

// maxi is kept local to avoid a core dependency.
func maxi(a, b int) int {
	if a > b {
		return a
	}
	return b
}
