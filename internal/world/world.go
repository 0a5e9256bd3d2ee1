package world

// Coord is a 2D integer tile coordinate.
type Coord struct {
	X, Y int
}

// World is a bounded grid of blocks stored sparsely: at most one block per
// coordinate, and absence of an entry means Air. Reads outside the bounds
// return Stone so that the map edge behaves like bedrock.
type World struct {
	width  int
	height int
	blocks map[Coord]BlockType
}

// New creates an empty world with the given dimensions.
func New(width, height int) *World {
	return &World{
		width:  width,
		height: height,
		blocks: make(map[Coord]BlockType),
	}
}

// Width returns the world width in tiles.
func (w *World) Width() int { return w.width }

// Height returns the world height in tiles.
func (w *World) Height() int { return w.height }

// InBounds reports whether the coordinate lies inside the world.
func (w *World) InBounds(x, y int) bool {
	return x >= 0 && x < w.width && y >= 0 && y < w.height
}

// At returns the block at the coordinate. Empty cells read as Air,
// out-of-bounds cells read as Stone.
func (w *World) At(x, y int) BlockType {
	if !w.InBounds(x, y) {
		return Stone
	}
	return w.blocks[Coord{X: x, Y: y}]
}

// Set places a block at the coordinate, replacing whatever was there.
// Setting Air removes the entry. Out-of-bounds coordinates are ignored.
func (w *World) Set(x, y int, b BlockType) {
	if !w.InBounds(x, y) {
		return
	}
	c := Coord{X: x, Y: y}
	if b == Air {
		delete(w.blocks, c)
		return
	}
	w.blocks[c] = b
}

// Break removes the block at the coordinate and returns its type.
// Breaking an empty or out-of-bounds cell is a no-op and returns (Air, false).
func (w *World) Break(x, y int) (BlockType, bool) {
	if !w.InBounds(x, y) {
		return Air, false
	}
	c := Coord{X: x, Y: y}
	b, ok := w.blocks[c]
	if !ok {
		return Air, false
	}
	delete(w.blocks, c)
	return b, true
}

// Count returns the number of non-air blocks in the world.
func (w *World) Count() int {
	return len(w.blocks)
}

// SurfaceY returns the y of the topmost solid block in column x,
// or the world height if the column is empty.
func (w *World) SurfaceY(x int) int {
	for y := 0; y < w.height; y++ {
		if w.At(x, y) != Air {
			return y
		}
	}
	return w.height
}

// Each calls fn for every non-air block. Iteration order is unspecified.
func (w *World) Each(fn func(c Coord, b BlockType)) {
	for c, b := range w.blocks {
		fn(c, b)
	}
}

// Clone returns a deep copy of the world.
func (w *World) Clone() *World {
	c := New(w.width, w.height)
	for k, v := range w.blocks {
		c.blocks[k] = v
	}
	return c
}

// Equal reports whether two worlds have identical dimensions and blocks.
func (w *World) Equal(other *World) bool {
	if w.width != other.width || w.height != other.height || len(w.blocks) != len(other.blocks) {
		return false
	}
	for k, v := range w.blocks {
		if other.blocks[k] != v {
			return false
		}
	}
	return true
}
