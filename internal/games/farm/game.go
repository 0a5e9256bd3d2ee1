// Package farm implements the top-down farming sandbox: tile-step movement
// over generated terrain, a five-item inventory, tilling and crop growth on
// a day clock, and whole-state JSON persistence.
package farm

import (
	"fmt"
	"math/rand"

	"termcraft/internal/config"
	"termcraft/internal/core"
	"termcraft/internal/registry"
	"termcraft/internal/world"
)

const statusTicksDefault = 60

// Game implements the farming sandbox.
type Game struct {
	cfg  config.FarmConfig
	rng  *rand.Rand
	tick uint64

	w      *world.World
	plants map[world.Coord]Crop

	px, py     int
	selected   int // 0-based index into hotbarItems
	showHotbar bool
	inventory  map[Item]int

	day       int
	timeOfDay float64
	cooldown  int // ticks until the next context action

	harvested    int
	blocksPlaced int
	blocksBroken int

	camX, camY int
	screenW    int
	screenH    int
	hudHeight  int

	paused   bool
	tooSmall bool

	statusMsg   string
	statusTicks int
}

// Package-level overrides set by the CLI before the game is created.
var (
	configPath   string
	savePathFlag string
)

// SetConfigPath sets the YAML config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetSavePath overrides the save file path from the config.
func SetSavePath(path string) {
	savePathFlag = path
}

// New creates a new farm game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("farm", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "farm" }

// Title returns the display name.
func (g *Game) Title() string { return "Farm (Top Down)" }

// Reset initializes/restarts the game with a freshly generated world.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	loaded, err := config.LoadFarm(configPath)
	if err != nil {
		loaded = config.DefaultFarmConfig()
	}
	g.cfg = loaded
	if savePathFlag != "" {
		g.cfg.SavePath = savePathFlag
	}

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.hudHeight = 2
	g.harvested = 0
	g.blocksPlaced = 0
	g.blocksBroken = 0
	g.paused = false
	g.statusMsg = ""
	g.statusTicks = 0

	g.selected = 0
	g.showHotbar = true
	g.inventory = map[Item]int{
		ItemDirt:  g.cfg.Start.Dirt,
		ItemStone: g.cfg.Start.Stone,
		ItemWood:  g.cfg.Start.Wood,
		ItemSeed:  g.cfg.Start.Seeds,
		ItemHoe:   g.cfg.Start.Hoes,
	}

	g.plants = make(map[world.Coord]Crop)
	g.day = 0
	g.timeOfDay = g.cfg.Clock.StartHour
	g.cooldown = 0

	g.tooSmall = g.screenW < 20 || g.screenH < g.hudHeight+8

	gen := world.NewGenerator(cfg.Seed, world.GenParams{
		Surface:     g.cfg.World.Surface,
		Amplitude:   g.cfg.World.Amplitude,
		DirtDepth:   g.cfg.World.DirtDepth,
		TreeDensity: g.cfg.World.TreeDensity,
		NoiseScale:  g.cfg.World.NoiseScale,
	})
	g.w = gen.Generate(g.cfg.World.Width, g.cfg.World.Height)

	g.px = g.w.Width() / 2
	g.py = g.w.SurfaceY(g.px) - 1
	if g.py < 0 {
		g.py = 0
	}
	g.updateCamera()
}

// Step advances the simulation by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.statusTicks > 0 {
		g.statusTicks--
		if g.statusTicks == 0 {
			g.statusMsg = ""
		}
	}

	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionSave) {
		g.save()
	}
	if input.Has(core.ActionLoad) {
		g.load()
	}

	if slot := input.Slot(); slot > 0 {
		g.selected = slot - 1
	}
	if input.Has(core.ActionHotbar) {
		g.showHotbar = !g.showHotbar
	}

	g.handleMovement(input)

	if input.Has(core.ActionJump) && g.cooldown <= 0 {
		g.contextAction()
		g.cooldown = g.cfg.Start.ActionCooldown
	}
	if input.Has(core.ActionTill) {
		g.till(g.px, g.py+1)
	}
	if input.Has(core.ActionMine) {
		g.mine(g.px, g.py+1)
	}

	g.advanceClock()
	if g.cooldown > 0 {
		g.cooldown--
	}
	g.updateCamera()

	return core.StepResult{State: g.State()}
}

// handleMovement moves the player one tile into air. Stepping down onto a
// solid tile puts the player on top of it when the tile above is free.
func (g *Game) handleMovement(input core.InputFrame) {
	dx, dy := 0, 0
	if input.Has(core.ActionLeft) {
		dx = -1
	}
	if input.Has(core.ActionRight) {
		dx = 1
	}
	if input.Has(core.ActionUp) {
		dy = -1
	}
	if input.Has(core.ActionDown) {
		dy = 1
	}
	if dx == 0 && dy == 0 {
		return
	}

	nx, ny := g.px+dx, g.py+dy
	if !g.w.InBounds(nx, ny) {
		return
	}
	if g.w.At(nx, ny) == world.Air {
		g.px, g.py = nx, ny
		return
	}
	if dy > 0 && ny-1 >= 0 && g.w.At(nx, ny-1) == world.Air {
		g.px, g.py = nx, ny-1
	}
}

// contextAction applies the first action that fits the tile below the
// player: harvest a mature crop, plant a seed on tilled soil, place the
// selected block, and otherwise mine.
func (g *Game) contextAction() {
	tx, ty := g.px, g.py+1
	c := world.Coord{X: tx, Y: ty}

	if crop, ok := g.plants[c]; ok && crop.IsMature(g.day) {
		g.harvest(tx, ty)
		return
	}

	sel := hotbarItems[g.selected]
	if sel == ItemSeed {
		if g.w.At(tx, ty) == world.Tilled {
			g.plantSeed(tx, ty)
		}
		return
	}
	if _, placeable := blockFor(sel); placeable {
		g.place(tx, ty, sel)
		return
	}

	if g.w.At(tx, ty) != world.Air {
		g.mine(tx, ty)
	}
}

// mine breaks the tile and adds its drop to the inventory.
func (g *Game) mine(tx, ty int) {
	b, ok := g.w.Break(tx, ty)
	if !ok {
		return
	}
	// A broken tile takes any crop on it along.
	delete(g.plants, world.Coord{X: tx, Y: ty})
	if item, drops := dropFor(b); drops {
		g.inventory[item]++
	}
	g.blocksBroken++
}

// place puts a placeable item on an air tile and consumes it.
func (g *Game) place(tx, ty int, item Item) {
	b, placeable := blockFor(item)
	if !placeable {
		return
	}
	if !g.w.InBounds(tx, ty) || g.w.At(tx, ty) != world.Air {
		return
	}
	if g.inventory[item] <= 0 {
		return
	}
	g.w.Set(tx, ty, b)
	g.inventory[item]--
	g.blocksPlaced++
}

// till turns grass or dirt into tilled soil. Requires a hoe but does not
// consume it.
func (g *Game) till(tx, ty int) {
	if g.inventory[ItemHoe] <= 0 {
		return
	}
	switch g.w.At(tx, ty) {
	case world.Grass, world.Dirt:
		g.w.Set(tx, ty, world.Tilled)
	}
}

// plantSeed sows a crop on tilled soil.
func (g *Game) plantSeed(tx, ty int) {
	if g.inventory[ItemSeed] <= 0 {
		return
	}
	c := world.Coord{X: tx, Y: ty}
	if g.w.At(tx, ty) != world.Tilled {
		return
	}
	if _, taken := g.plants[c]; taken {
		return
	}
	g.plants[c] = Crop{PlantedDay: g.day, GrowDays: g.cfg.Crops.GrowDays}
	g.inventory[ItemSeed]--
}

// harvest collects a mature crop. The soil stays tilled.
func (g *Game) harvest(tx, ty int) {
	c := world.Coord{X: tx, Y: ty}
	crop, ok := g.plants[c]
	if !ok || !crop.IsMature(g.day) {
		return
	}
	g.inventory[ItemSeed] += g.cfg.Crops.SeedYield
	g.inventory[ItemDirt] += g.cfg.Crops.DirtYield
	delete(g.plants, c)
	g.harvested++
}

// advanceClock moves the time of day and rolls the day counter at 24:00.
func (g *Game) advanceClock() {
	g.timeOfDay += g.cfg.Clock.HoursPerTick
	if g.timeOfDay >= 24.0 {
		g.timeOfDay -= 24.0
		g.day++
	}
}

// IsNight reports whether the overlay hours are active.
func (g *Game) IsNight() bool {
	return g.timeOfDay < g.cfg.Clock.NightEnd || g.timeOfDay > g.cfg.Clock.NightStart
}

func (g *Game) updateCamera() {
	viewW := g.screenW
	viewH := g.screenH - g.hudHeight
	g.camX = core.Clamp(g.px-viewW/2, 0, core.Max(g.w.Width()-viewW, 0))
	g.camY = core.Clamp(g.py-viewH/2, 0, core.Max(g.w.Height()-viewH, 0))
}

// SetScreenSize adapts the viewport to a new terminal size without
// regenerating the world.
func (g *Game) SetScreenSize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < 20 || h < g.hudHeight+8
	g.updateCamera()
}

// SelectedItem returns the item of the active hotbar slot.
func (g *Game) SelectedItem() Item {
	return hotbarItems[g.selected]
}

// World exposes the block map for persistence and tooling.
func (g *Game) World() *world.World {
	return g.w
}

func (g *Game) setStatus(msg string) {
	g.statusMsg = msg
	g.statusTicks = statusTicksDefault
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:        g.harvested*10 + g.blocksPlaced + g.blocksBroken,
		BlocksPlaced: g.blocksPlaced,
		BlocksBroken: g.blocksBroken,
		Paused:       g.paused,
	}
}

// clockLabel formats the HUD day/time text.
func (g *Game) clockLabel() string {
	return fmt.Sprintf("Day %d  %02d:00", g.day, int(g.timeOfDay))
}
