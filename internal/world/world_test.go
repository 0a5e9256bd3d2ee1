package world

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

func TestEmptyCellsReadAsAir(t *testing.T) {
	w := New(10, 10)

	assert.Equal(t, Air, w.At(5, 5))
	assert.Equal(t, 0, w.Count())
}

func TestOutOfBoundsReadsAsStone(t *testing.T) {
	w := New(10, 10)

	assert.Equal(t, Stone, w.At(-1, 5))
	assert.Equal(t, Stone, w.At(10, 5))
	assert.Equal(t, Stone, w.At(5, -1))
	assert.Equal(t, Stone, w.At(5, 10))
}

func TestSetReplacesExistingBlock(t *testing.T) {
	w := New(10, 10)

	w.Set(3, 4, Dirt)
	require.Equal(t, Dirt, w.At(3, 4))

	// Placing at an occupied coordinate replaces, never stacks.
	w.Set(3, 4, Stone)
	assert.Equal(t, Stone, w.At(3, 4))
	assert.Equal(t, 1, w.Count())

	// Setting Air clears the cell entirely.
	w.Set(3, 4, Air)
	assert.Equal(t, Air, w.At(3, 4))
	assert.Equal(t, 0, w.Count())
}

func TestBreakEmptyCellIsNoOp(t *testing.T) {
	w := New(10, 10)
	w.Set(2, 2, Wood)

	b, ok := w.Break(7, 7)
	assert.False(t, ok)
	assert.Equal(t, Air, b)
	assert.Equal(t, 1, w.Count(), "breaking empty cell must not change the world")

	b, ok = w.Break(2, 2)
	assert.True(t, ok)
	assert.Equal(t, Wood, b)
	assert.Equal(t, 0, w.Count())

	_, ok = w.Break(-1, 0)
	assert.False(t, ok, "breaking out of bounds is a no-op")
}

func TestSurfaceY(t *testing.T) {
	w := New(4, 10)
	w.Set(1, 6, Grass)
	w.Set(1, 7, Dirt)

	assert.Equal(t, 6, w.SurfaceY(1))
	assert.Equal(t, 10, w.SurfaceY(0), "empty column surfaces at world height")
}

func TestCloneAndEqual(t *testing.T) {
	w := New(8, 8)
	w.Set(1, 1, Grass)
	w.Set(2, 2, Stone)

	c := w.Clone()
	require.True(t, w.Equal(c))

	c.Set(3, 3, Wood)
	assert.False(t, w.Equal(c))
}

func TestBlockNameRoundTrip(t *testing.T) {
	for _, b := range []BlockType{Air, Grass, Dirt, Stone, Wood, Leaves, Tilled} {
		parsed, err := ParseBlock(b.String())
		require.NoError(t, err)
		assert.Equal(t, b, parsed)
	}

	_, err := ParseBlock("lava")
	assert.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	gen := NewGenerator(42, DefaultGenParams())
	w := gen.Generate(60, 40)

	// Mutate the generated terrain the way play would.
	w.Break(10, w.SurfaceY(10))
	w.Set(10, 5, Wood)
	w.Set(11, 5, Stone)

	path := filepath.Join(t.TempDir(), "world_save.json")
	require.NoError(t, w.SaveFile(path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)

	assert.True(t, w.Equal(loaded), "save-then-load must round-trip the block mapping exactly")
	assert.Equal(t, w.Width(), loaded.Width())
	assert.Equal(t, w.Height(), loaded.Height())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadMalformedSave(t *testing.T) {
	dir := t.TempDir()

	cases := map[string]string{
		"not json":       `{{{`,
		"bad dimensions": `{"width":0,"height":0,"blocks":{}}`,
		"bad coord key":  `{"width":4,"height":4,"blocks":{"a;b":"stone"}}`,
		"unknown block":  `{"width":4,"height":4,"blocks":{"1,1":"lava"}}`,
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, "bad.json")
			require.NoError(t, writeFile(path, content))
			_, err := LoadFile(path)
			assert.Error(t, err)
		})
	}
}
