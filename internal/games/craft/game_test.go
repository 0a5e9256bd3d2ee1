package craft

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
	SetSavePath(filepath.Join(t.TempDir(), "world_save.json"))
	t.Cleanup(func() { SetSavePath("") })

	g := New()
	g.Reset(cfg)
	return g
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	cfg := testConfig()

	g1 := newTestGame(t, cfg)
	g2 := newTestGame(t, cfg)

	input := core.NewInputFrame()
	for i := 0; i < 200; i++ {
		input.Clear()
		switch {
		case i > 20 && i < 60:
			input.Set(core.ActionRight)
		case i == 70:
			input.Set(core.ActionJump)
		case i == 90:
			input.Set(core.ActionMine)
		case i == 110:
			input.Set(core.ActionSlot3)
			input.Set(core.ActionPlace)
		}
		g1.Step(input)
		g2.Step(input)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("Snapshot mismatch:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestDifferentSeedsDifferentWorlds(t *testing.T) {
	g1 := newTestGame(t, core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24})
	g2 := newTestGame(t, core.RuntimeConfig{Seed: 2, ScreenW: 80, ScreenH: 24})

	if g1.World().Equal(g2.World()) {
		t.Error("Different seeds should generate different worlds")
	}
}

func TestSpawnOnSurface(t *testing.T) {
	g := newTestGame(t, testConfig())

	if g.w.At(g.px, g.py).Solid() {
		t.Errorf("Player spawned inside a solid block at (%d,%d)", g.px, g.py)
	}
	if !g.w.At(g.px, g.py+1).Solid() {
		t.Errorf("Player should spawn standing on ground at (%d,%d)", g.px, g.py)
	}
}

func TestSlotSelection(t *testing.T) {
	g := newTestGame(t, testConfig())

	before := g.Snapshot()
	input := core.NewInputFrame()
	input.Set(core.ActionSlot4)
	g.Step(input)
	after := g.Snapshot()

	if g.selected != 3 {
		t.Errorf("Expected slot index 3, got %d", g.selected)
	}
	if g.SelectedBlock() != world.Wood {
		t.Errorf("Expected Wood selected, got %v", g.SelectedBlock())
	}

	// Nothing but the selection (and the tick counter) may change.
	before.Selected = after.Selected
	before.Tick = after.Tick
	if before != after {
		t.Errorf("Slot selection changed unrelated state:\n%+v\n%+v", before, after)
	}
}

func TestMineFacingBlock(t *testing.T) {
	g := newTestGame(t, testConfig())

	// Put a block in front of the player so the target is unambiguous.
	tx, ty := g.px+g.facing, g.py
	g.w.Set(tx, ty, world.Stone)

	input := core.NewInputFrame()
	input.Set(core.ActionMine)
	g.Step(input)

	if g.w.At(tx, ty) != world.Air {
		t.Errorf("Expected facing block mined, got %v", g.w.At(tx, ty))
	}
	if g.blocksBroken != 1 {
		t.Errorf("Expected blocksBroken=1, got %d", g.blocksBroken)
	}
}

func TestMineEmptyCellIsNoOp(t *testing.T) {
	g := newTestGame(t, testConfig())

	// Clear both candidate targets.
	g.w.Set(g.px+g.facing, g.py, world.Air)
	g.w.Set(g.px, g.py+1, world.Air)
	count := g.w.Count()

	input := core.NewInputFrame()
	input.Set(core.ActionMine)
	g.Step(input)

	if g.blocksBroken != 0 {
		t.Errorf("Mining air should not count, got blocksBroken=%d", g.blocksBroken)
	}
	if g.w.Count() != count {
		t.Errorf("Mining air changed the world: %d -> %d", count, g.w.Count())
	}
}

func TestPlaceReplacesExistingBlock(t *testing.T) {
	g := newTestGame(t, testConfig())

	tx, ty := g.px+g.facing, g.py
	g.w.Set(tx, ty, world.Dirt)

	input := core.NewInputFrame()
	input.Set(core.ActionSlot3) // Stone
	input.Set(core.ActionPlace)
	g.Step(input)

	if g.w.At(tx, ty) != world.Stone {
		t.Errorf("Expected placed Stone to replace Dirt, got %v", g.w.At(tx, ty))
	}
	if g.blocksPlaced != 1 {
		t.Errorf("Expected blocksPlaced=1, got %d", g.blocksPlaced)
	}
}

func TestPlaceOnPlayerTileRefused(t *testing.T) {
	g := newTestGame(t, testConfig())

	g.placeAt(g.px, g.py)

	if g.w.At(g.px, g.py) != world.Air {
		t.Error("Placing onto the player's tile should be refused")
	}
	if g.blocksPlaced != 0 {
		t.Errorf("Expected blocksPlaced=0, got %d", g.blocksPlaced)
	}
}

func TestClickMineAndPlace(t *testing.T) {
	g := newTestGame(t, testConfig())

	// Screen coords for the tile right of the player.
	sx := g.px + 1 - g.camX
	sy := g.py - g.camY + g.hudHeight
	g.w.Set(g.px+1, g.py, world.Wood)

	input := core.NewInputFrame()
	input.AddClick(core.Click{X: sx, Y: sy, Button: core.ClickLeft})
	g.Step(input)

	if g.w.At(g.px+1, g.py) != world.Air {
		t.Errorf("Left click should mine, got %v", g.w.At(g.px+1, g.py))
	}

	input.Clear()
	input.Set(core.ActionSlot2) // Dirt
	input.AddClick(core.Click{X: sx, Y: sy, Button: core.ClickRight})
	g.Step(input)

	if g.w.At(g.px+1, g.py) != world.Dirt {
		t.Errorf("Right click should place Dirt, got %v", g.w.At(g.px+1, g.py))
	}
}

func TestGravitySettles(t *testing.T) {
	g := newTestGame(t, testConfig())

	// Lift the player well above the surface and let them fall.
	g.py -= 6
	g.vy = 0
	g.yAccum = 0

	input := core.NewInputFrame()
	for i := 0; i < 120; i++ {
		g.Step(input)
	}

	if !g.onGround {
		t.Fatal("Player should have landed")
	}
	if g.w.At(g.px, g.py).Solid() {
		t.Errorf("Player ended inside a solid block at (%d,%d)", g.px, g.py)
	}
	if !g.w.At(g.px, g.py+1).Solid() {
		t.Errorf("Player should rest on a solid block at (%d,%d)", g.px, g.py)
	}
}

func TestJumpRisesThenFalls(t *testing.T) {
	g := newTestGame(t, testConfig())

	startY := g.py
	input := core.NewInputFrame()
	input.Set(core.ActionJump)
	g.Step(input)

	rose := false
	input.Clear()
	for i := 0; i < 60; i++ {
		g.Step(input)
		if g.py < startY {
			rose = true
		}
	}

	if !rose {
		t.Error("Jump should lift the player above the start row")
	}
	if g.py != startY {
		t.Errorf("Player should land back at row %d, got %d", startY, g.py)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	g := newTestGame(t, testConfig())

	// Mutate the world, save, mutate again, then load.
	g.w.Set(3, 3, world.Wood)
	input := core.NewInputFrame()
	input.Set(core.ActionSave)
	g.Step(input)

	saved := g.w.Clone()
	g.w.Set(5, 5, world.Leaves)
	g.w.Break(3, 3)

	input.Clear()
	input.Set(core.ActionLoad)
	g.Step(input)

	if !g.w.Equal(saved) {
		t.Error("Loaded world should match the saved world")
	}
}

func TestLoadMissingFileKeepsWorld(t *testing.T) {
	g := newTestGame(t, testConfig())
	g.cfg.SavePath = filepath.Join(t.TempDir(), "missing.json")

	before := g.w.Clone()
	input := core.NewInputFrame()
	input.Set(core.ActionLoad)
	g.Step(input)

	if !g.w.Equal(before) {
		t.Error("Failed load should leave the world untouched")
	}
	if g.statusMsg == "" {
		t.Error("Failed load should surface a status message")
	}
}

func TestPauseStopsSimulation(t *testing.T) {
	g := newTestGame(t, testConfig())

	input := core.NewInputFrame()
	input.Set(core.ActionPause)
	g.Step(input)

	if !g.State().Paused {
		t.Fatal("Expected paused state")
	}

	snap := g.Snapshot()
	input.Clear()
	input.Set(core.ActionRight)
	g.Step(input)

	if g.px != snap.PlayerX {
		t.Error("Movement should be ignored while paused")
	}
}

func TestRenderDoesNotPanic(t *testing.T) {
	g := newTestGame(t, testConfig())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if screen.String() == "" {
		t.Error("Render produced an empty screen")
	}
}
