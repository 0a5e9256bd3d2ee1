// Package world holds the shared block-map model used by both game variants:
// a sparse mapping from tile coordinate to block type, a perlin-based terrain
// generator, and whole-file JSON persistence.
package world

import "fmt"

// BlockType identifies the material of a single tile.
// The zero value is Air: coordinates absent from the map are empty.
type BlockType uint8

const (
	Air BlockType = iota
	Grass
	Dirt
	Stone
	Wood
	Leaves
	Tilled // farmland, produced by tilling grass or dirt
)

var blockNames = map[BlockType]string{
	Air:    "air",
	Grass:  "grass",
	Dirt:   "dirt",
	Stone:  "stone",
	Wood:   "wood",
	Leaves: "leaves",
	Tilled: "tilled",
}

// String returns the save-file name of the block type.
func (b BlockType) String() string {
	if name, ok := blockNames[b]; ok {
		return name
	}
	return fmt.Sprintf("block(%d)", uint8(b))
}

// ParseBlock resolves a save-file name back to a block type.
func ParseBlock(name string) (BlockType, error) {
	for b, n := range blockNames {
		if n == name {
			return b, nil
		}
	}
	return Air, fmt.Errorf("world: unknown block type %q", name)
}

// Solid reports whether the block obstructs movement.
// Tilled soil is walkable in the top-down variant and stands like dirt in
// the side-view variant, where the game decides per-cell.
func (b BlockType) Solid() bool {
	switch b {
	case Air:
		return false
	default:
		return true
	}
}

// Mineable reports whether the block can be broken by the player.
func (b BlockType) Mineable() bool {
	return b != Air
}
