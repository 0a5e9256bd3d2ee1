package farm

import "termcraft/internal/world"

// Item is an inventory item. The first three correspond to placeable
// blocks, the last two are tools/consumables.
type Item string

const (
	ItemDirt  Item = "dirt"
	ItemStone Item = "stone"
	ItemWood  Item = "wood"
	ItemSeed  Item = "seed"
	ItemHoe   Item = "hoe"
)

// hotbarItems fixes the slot order of the inventory bar.
var hotbarItems = [5]Item{ItemDirt, ItemStone, ItemWood, ItemSeed, ItemHoe}

// blockFor returns the block a placeable item turns into, or (Air, false)
// for tools and consumables.
func blockFor(item Item) (world.BlockType, bool) {
	switch item {
	case ItemDirt:
		return world.Dirt, true
	case ItemStone:
		return world.Stone, true
	case ItemWood:
		return world.Wood, true
	default:
		return world.Air, false
	}
}

// dropFor returns the item a mined block yields. Grass and tilled soil
// crumble into dirt; leaves shake loose a seed.
func dropFor(b world.BlockType) (Item, bool) {
	switch b {
	case world.Grass, world.Dirt, world.Tilled:
		return ItemDirt, true
	case world.Stone:
		return ItemStone, true
	case world.Wood:
		return ItemWood, true
	case world.Leaves:
		return ItemSeed, true
	default:
		return "", false
	}
}
