package farm

import (
	"path/filepath"
	"testing"

	"termcraft/internal/core"
	"termcraft/internal/world"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:    12345,
		ScreenW: 80,
		ScreenH: 24,
	}
}

// newTestGame resets a game with an isolated save path.
func newTestGame(t *testing.T, cfg core.RuntimeConfig) *Game {
	t.Helper()
	SetSavePath(filepath.Join(t.TempDir(), "farm_save.json"))
	t.Cleanup(func() { SetSavePath("") })

	g := New()
	g.Reset(cfg)
	return g
}

// clearArea opens up a rectangle of air with a stone floor under it and
// puts the player inside, so movement tests are independent of terrain.
func clearArea(g *Game, x, y, w, h int) {
	for dx := 0; dx < w; dx++ {
		for dy := 0; dy < h; dy++ {
			g.w.Set(x+dx, y+dy, world.Air)
		}
		g.w.Set(x+dx, y+h, world.Stone)
	}
	g.px = x + w/2
	g.py = y + h/2
}

func TestDeterminism(t *testing.T) {
	cfg := testConfig()
	g1 := newTestGame(t, cfg)
	g2 := newTestGame(t, cfg)

	input := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		input.Clear()
		switch {
		case i > 10 && i < 40:
			input.Set(core.ActionRight)
		case i == 50:
			input.Set(core.ActionTill)
		case i == 60:
			input.Set(core.ActionSlot4)
			input.Set(core.ActionJump)
		case i == 100:
			input.Set(core.ActionMine)
		}
		g1.Step(input)
		g2.Step(input)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("Snapshot mismatch:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestMovementIntoAirOnly(t *testing.T) {
	g := newTestGame(t, testConfig())
	clearArea(g, 10, 10, 5, 3)

	startX, startY := g.px, g.py
	g.w.Set(startX+1, startY, world.Stone)

	input := core.NewInputFrame()
	input.Set(core.ActionRight)
	g.Step(input)

	if g.px != startX || g.py != startY {
		t.Errorf("Player walked into a solid tile: (%d,%d)", g.px, g.py)
	}

	input.Clear()
	input.Set(core.ActionLeft)
	g.Step(input)

	if g.px != startX-1 {
		t.Errorf("Player should step into air, got x=%d", g.px)
	}
}

func TestStepDownOntoSolidTile(t *testing.T) {
	g := newTestGame(t, testConfig())
	clearArea(g, 10, 10, 5, 3)

	// Solid tile diagonally below-right, with air above it.
	tx, ty := g.px+1, g.py+1
	g.w.Set(tx, ty, world.Grass)
	g.w.Set(tx, ty-1, world.Air)

	input := core.NewInputFrame()
	input.Set(core.ActionRight)
	input.Set(core.ActionDown)
	g.Step(input)

	if g.px != tx || g.py != ty-1 {
		t.Errorf("Player should stand on top of the tile at (%d,%d), got (%d,%d)",
			tx, ty-1, g.px, g.py)
	}
}

func TestTillRequiresHoe(t *testing.T) {
	g := newTestGame(t, testConfig())
	clearArea(g, 10, 10, 3, 2)
	g.w.Set(g.px, g.py+1, world.Grass)

	g.inventory[ItemHoe] = 0
	g.till(g.px, g.py+1)
	if g.w.At(g.px, g.py+1) != world.Grass {
		t.Error("Tilling without a hoe should do nothing")
	}

	g.inventory[ItemHoe] = 1
	g.till(g.px, g.py+1)
	if g.w.At(g.px, g.py+1) != world.Tilled {
		t.Errorf("Expected tilled soil, got %v", g.w.At(g.px, g.py+1))
	}
	if g.inventory[ItemHoe] != 1 {
		t.Error("Tilling should not consume the hoe")
	}
}

func TestTillOnlyGrassAndDirt(t *testing.T) {
	g := newTestGame(t, testConfig())
	clearArea(g, 10, 10, 3, 2)
	g.w.Set(g.px, g.py+1, world.Stone)

	g.till(g.px, g.py+1)
	if g.w.At(g.px, g.py+1) != world.Stone {
		t.Errorf("Stone must not be tillable, got %v", g.w.At(g.px, g.py+1))
	}
}

func TestPlantAndHarvestCycle(t *testing.T) {
	g := newTestGame(t, testConfig())
	clearArea(g, 10, 10, 3, 2)
	tx, ty := g.px, g.py+1
	g.w.Set(tx, ty, world.Tilled)

	seeds := g.inventory[ItemSeed]
	g.plantSeed(tx, ty)

	c := world.Coord{X: tx, Y: ty}
	if _, ok := g.plants[c]; !ok {
		t.Fatal("Expected a crop after planting")
	}
	if g.inventory[ItemSeed] != seeds-1 {
		t.Errorf("Planting should consume one seed, have %d", g.inventory[ItemSeed])
	}

	// Double planting on the same tile is refused.
	g.plantSeed(tx, ty)
	if g.inventory[ItemSeed] != seeds-1 {
		t.Error("Planting on an occupied tile should not consume a seed")
	}

	// Not mature yet: harvesting is a no-op.
	g.harvest(tx, ty)
	if _, ok := g.plants[c]; !ok {
		t.Fatal("Immature crop must not be harvestable")
	}

	g.day += g.cfg.Crops.GrowDays
	if !g.plants[c].IsMature(g.day) {
		t.Fatal("Crop should be mature after GrowDays days")
	}

	dirt := g.inventory[ItemDirt]
	g.harvest(tx, ty)

	if _, ok := g.plants[c]; ok {
		t.Error("Harvest should remove the crop")
	}
	if g.w.At(tx, ty) != world.Tilled {
		t.Errorf("Soil should stay tilled after harvest, got %v", g.w.At(tx, ty))
	}
	if g.inventory[ItemSeed] != seeds-1+g.cfg.Crops.SeedYield {
		t.Errorf("Expected %d seeds after harvest, got %d",
			seeds-1+g.cfg.Crops.SeedYield, g.inventory[ItemSeed])
	}
	if g.inventory[ItemDirt] != dirt+g.cfg.Crops.DirtYield {
		t.Errorf("Expected %d dirt after harvest, got %d",
			dirt+g.cfg.Crops.DirtYield, g.inventory[ItemDirt])
	}
	if g.harvested != 1 {
		t.Errorf("Expected harvested=1, got %d", g.harvested)
	}
}

func TestContextActionPrefersHarvest(t *testing.T) {
	g := newTestGame(t, testConfig())
	clearArea(g, 10, 10, 3, 2)
	tx, ty := g.px, g.py+1
	g.w.Set(tx, ty, world.Tilled)
	g.plants[world.Coord{X: tx, Y: ty}] = Crop{PlantedDay: 0, GrowDays: g.cfg.Crops.GrowDays}
	g.day = g.cfg.Crops.GrowDays

	// Even with dirt selected, a mature crop wins over placing.
	g.selected = 0
	input := core.NewInputFrame()
	input.Set(core.ActionJump)
	g.Step(input)

	if g.harvested != 1 {
		t.Errorf("Context action should harvest first, harvested=%d", g.harvested)
	}
	if g.w.At(tx, ty) != world.Tilled {
		t.Errorf("Tile should stay tilled, got %v", g.w.At(tx, ty))
	}
}

func TestPlaceConsumesInventory(t *testing.T) {
	g := newTestGame(t, testConfig())
	clearArea(g, 10, 10, 3, 2)
	tx, ty := g.px, g.py+1
	g.w.Set(tx, ty, world.Air)

	g.inventory[ItemStone] = 1
	g.place(tx, ty, ItemStone)

	if g.w.At(tx, ty) != world.Stone {
		t.Errorf("Expected placed stone, got %v", g.w.At(tx, ty))
	}
	if g.inventory[ItemStone] != 0 {
		t.Errorf("Placing should consume the item, have %d", g.inventory[ItemStone])
	}

	// Out of stock: no further placement.
	g.w.Set(tx, ty, world.Air)
	g.place(tx, ty, ItemStone)
	if g.w.At(tx, ty) != world.Air {
		t.Error("Placing with an empty stack should do nothing")
	}
}

func TestPlaceOnlyOnAir(t *testing.T) {
	g := newTestGame(t, testConfig())
	clearArea(g, 10, 10, 3, 2)
	tx, ty := g.px, g.py+1
	g.w.Set(tx, ty, world.Grass)

	stones := g.inventory[ItemStone]
	g.place(tx, ty, ItemStone)

	if g.w.At(tx, ty) != world.Grass {
		t.Errorf("Occupied tile must not be overwritten, got %v", g.w.At(tx, ty))
	}
	if g.inventory[ItemStone] != stones {
		t.Error("Failed placement should not consume the item")
	}
}

func TestMineDrops(t *testing.T) {
	g := newTestGame(t, testConfig())
	clearArea(g, 10, 10, 3, 2)
	tx, ty := g.px, g.py+1

	cases := []struct {
		block world.BlockType
		item  Item
	}{
		{world.Grass, ItemDirt},
		{world.Dirt, ItemDirt},
		{world.Tilled, ItemDirt},
		{world.Stone, ItemStone},
		{world.Wood, ItemWood},
		{world.Leaves, ItemSeed},
	}

	for _, tc := range cases {
		g.w.Set(tx, ty, tc.block)
		before := g.inventory[tc.item]
		g.mine(tx, ty)
		if g.w.At(tx, ty) != world.Air {
			t.Errorf("%v: tile should be air after mining", tc.block)
		}
		if g.inventory[tc.item] != before+1 {
			t.Errorf("%v: expected one %s dropped", tc.block, tc.item)
		}
	}
}

func TestMineRemovesCrop(t *testing.T) {
	g := newTestGame(t, testConfig())
	clearArea(g, 10, 10, 3, 2)
	tx, ty := g.px, g.py+1
	g.w.Set(tx, ty, world.Tilled)
	c := world.Coord{X: tx, Y: ty}
	g.plants[c] = Crop{PlantedDay: g.day, GrowDays: 3}

	g.mine(tx, ty)

	if _, ok := g.plants[c]; ok {
		t.Error("Breaking a tile should remove its crop")
	}
}

func TestActionCooldown(t *testing.T) {
	g := newTestGame(t, testConfig())
	clearArea(g, 10, 10, 3, 2)
	g.selected = 4 // hoe: context action falls through to mining
	g.w.Set(g.px, g.py+1, world.Stone)

	input := core.NewInputFrame()
	input.Set(core.ActionJump)
	g.Step(input)

	if g.blocksBroken != 1 {
		t.Fatalf("First action should mine, blocksBroken=%d", g.blocksBroken)
	}

	// Immediately repeating the action is swallowed by the cooldown.
	g.w.Set(g.px, g.py+1, world.Stone)
	g.Step(input)

	if g.blocksBroken != 1 {
		t.Errorf("Cooldown should block the second action, blocksBroken=%d", g.blocksBroken)
	}
}

func TestDayRollover(t *testing.T) {
	g := newTestGame(t, testConfig())
	g.timeOfDay = 23.999

	input := core.NewInputFrame()
	g.Step(input)

	if g.day != 1 {
		t.Errorf("Expected day rollover, day=%d", g.day)
	}
	if g.timeOfDay >= 24.0 {
		t.Errorf("Time should wrap below 24, got %f", g.timeOfDay)
	}
}

func TestNightHours(t *testing.T) {
	g := newTestGame(t, testConfig())

	cases := []struct {
		hour  float64
		night bool
	}{
		{12.0, false},
		{6.5, false},
		{17.9, false},
		{18.5, true},
		{23.0, true},
		{2.0, true},
		{5.9, true},
	}

	for _, tc := range cases {
		g.timeOfDay = tc.hour
		if g.IsNight() != tc.night {
			t.Errorf("hour %.1f: expected night=%v", tc.hour, tc.night)
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	g := newTestGame(t, testConfig())
	clearArea(g, 10, 10, 3, 2)
	tx, ty := g.px, g.py+1
	g.w.Set(tx, ty, world.Tilled)
	g.plantSeed(tx, ty)
	g.day = 2
	g.timeOfDay = 13.5

	input := core.NewInputFrame()
	input.Set(core.ActionSave)
	g.Step(input)

	snap := g.Snapshot()

	// Wreck the session, then load it back.
	g.w.Set(tx, ty, world.Stone)
	g.plants = map[world.Coord]Crop{}
	g.inventory[ItemSeed] = 99
	g.px, g.py = 0, 0
	g.day = 7

	input.Clear()
	input.Set(core.ActionLoad)
	g.Step(input)

	got := g.Snapshot()
	snap.Tick = got.Tick
	snap.Hour = got.Hour // the clock keeps running across the two ticks
	if got != snap {
		t.Errorf("Loaded state mismatch:\n%+v\n%+v", got, snap)
	}
	if g.w.At(tx, ty) != world.Tilled {
		t.Errorf("Loaded world should have tilled soil, got %v", g.w.At(tx, ty))
	}
	if _, ok := g.plants[world.Coord{X: tx, Y: ty}]; !ok {
		t.Error("Loaded state should contain the planted crop")
	}
}

func TestLoadMissingFileKeepsSession(t *testing.T) {
	g := newTestGame(t, testConfig())
	g.cfg.SavePath = filepath.Join(t.TempDir(), "missing.json")

	before := g.Snapshot()
	input := core.NewInputFrame()
	input.Set(core.ActionLoad)
	g.Step(input)

	got := g.Snapshot()
	before.Tick = got.Tick
	before.Hour = got.Hour
	if got != before {
		t.Error("Failed load should leave the session untouched")
	}
	if g.statusMsg == "" {
		t.Error("Failed load should surface a status message")
	}
}

func TestRenderDoesNotPanic(t *testing.T) {
	g := newTestGame(t, testConfig())
	clearArea(g, 10, 10, 3, 2)
	g.w.Set(g.px, g.py+1, world.Tilled)
	g.plants[world.Coord{X: g.px, Y: g.py + 1}] = Crop{PlantedDay: 0, GrowDays: 3}
	g.timeOfDay = 22.0 // night palette path

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if screen.String() == "" {
		t.Error("Render produced an empty screen")
	}
}
