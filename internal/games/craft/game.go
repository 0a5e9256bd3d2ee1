// Package craft implements the side-view block sandbox: a perlin-generated
// terrain the player walks, jumps and digs through, with a five-slot hotbar
// of placeable block types and whole-world JSON persistence.
package craft

import (
	"fmt"
	"math/rand"

	"termcraft/internal/config"
	"termcraft/internal/core"
	"termcraft/internal/registry"
	"termcraft/internal/world"
)

// hotbarSlots is the number of selectable block slots.
const hotbarSlots = 5

// statusTicksDefault controls how long transient HUD messages stay visible.
const statusTicksDefault = 60

// Game implements the side-view sandbox.
type Game struct {
	cfg  config.CraftConfig
	rng  *rand.Rand
	tick uint64

	w *world.World

	// Player state. The player occupies a single tile; py tracks the tile
	// while vy/yAccum carry fractional vertical motion between ticks.
	px, py   int
	vy       float64
	yAccum   float64
	facing   int // -1 left, +1 right
	onGround bool

	// Hotbar
	palette    [hotbarSlots]world.BlockType
	selected   int // 0-based index into palette
	showHotbar bool

	// Camera and screen
	camX, camY int
	screenW    int
	screenH    int
	hudHeight  int

	blocksPlaced int
	blocksBroken int

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

// SetSavePath overrides the world save file path from the config.
func SetSavePath(path string) {
	savePathFlag = path
}

// New creates a new craft game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("craft", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "craft" }

// Title returns the display name.
func (g *Game) Title() string { return "Craft (Side View)" }

// Reset initializes/restarts the game with a freshly generated world.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	loaded, err := config.LoadCraft(configPath)
	if err != nil {
		loaded = config.DefaultCraftConfig()
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
	g.blocksPlaced = 0
	g.blocksBroken = 0
	g.paused = false
	g.statusMsg = ""
	g.statusTicks = 0

	g.palette = [hotbarSlots]world.BlockType{
		world.Grass, world.Dirt, world.Stone, world.Wood, world.Leaves,
	}
	g.selected = 0
	g.showHotbar = true

	g.tooSmall = g.screenW < 20 || g.screenH < g.hudHeight+8

	gen := world.NewGenerator(cfg.Seed, world.GenParams{
		Surface:     g.cfg.World.Surface,
		Amplitude:   g.cfg.World.Amplitude,
		DirtDepth:   g.cfg.World.DirtDepth,
		TreeDensity: g.cfg.World.TreeDensity,
		NoiseScale:  g.cfg.World.NoiseScale,
	})
	g.w = gen.Generate(g.cfg.World.Width, g.cfg.World.Height)

	g.spawnPlayer()
	g.updateCamera()
}

// spawnPlayer drops the player on the surface near the middle of the map.
func (g *Game) spawnPlayer() {
	g.px = g.w.Width() / 2
	g.py = g.w.SurfaceY(g.px) - 1
	if g.py < 0 {
		g.py = 0
	}
	g.vy = 0
	g.yAccum = 0
	g.facing = 1
	g.onGround = g.w.At(g.px, g.py+1).Solid()
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

	// Persistence is allowed even mid-air; the player position is not part
	// of the craft save file, only the block map is.
	if input.Has(core.ActionSave) {
		g.saveWorld()
	}
	if input.Has(core.ActionLoad) {
		g.loadWorld()
	}

	if slot := input.Slot(); slot > 0 {
		g.selected = slot - 1
	}
	if input.Has(core.ActionHotbar) {
		g.showHotbar = !g.showHotbar
	}

	g.handleMovement(input)
	g.applyGravity()

	if input.Has(core.ActionMine) {
		g.mineFacing()
	}
	if input.Has(core.ActionPlace) {
		g.placeFacing()
	}
	for _, c := range input.Clicks {
		g.handleClick(c)
	}

	g.updateCamera()
	return core.StepResult{State: g.State()}
}

// handleMovement applies horizontal input with a one-tile step-up rule:
// walking into a single-block ledge climbs it if the headroom is clear.
func (g *Game) handleMovement(input core.InputFrame) {
	dx := 0
	switch {
	case input.Has(core.ActionLeft):
		dx = -1
	case input.Has(core.ActionRight):
		dx = 1
	}
	if dx == 0 {
		if input.Has(core.ActionJump) && g.onGround {
			g.vy = g.cfg.Physics.JumpImpulse
			g.onGround = false
		}
		return
	}

	g.facing = dx
	nx := g.px + dx
	if !g.w.At(nx, g.py).Solid() {
		g.px = nx
	} else if !g.w.At(nx, g.py-1).Solid() && !g.w.At(g.px, g.py-1).Solid() {
		g.px = nx
		g.py--
	}

	if input.Has(core.ActionJump) && g.onGround {
		g.vy = g.cfg.Physics.JumpImpulse
		g.onGround = false
	}
}

// applyGravity integrates vertical velocity in fractional tile units and
// resolves collisions one tile at a time.
func (g *Game) applyGravity() {
	g.vy += g.cfg.Physics.Gravity
	if g.vy > g.cfg.Physics.MaxFallSpeed {
		g.vy = g.cfg.Physics.MaxFallSpeed
	}
	g.yAccum += g.vy

	for g.yAccum <= -1 {
		g.yAccum++
		if g.w.At(g.px, g.py-1).Solid() {
			// Bumped a ceiling.
			g.vy = 0
			g.yAccum = 0
			break
		}
		g.py--
	}
	for g.yAccum >= 1 {
		g.yAccum--
		if g.w.At(g.px, g.py+1).Solid() {
			g.vy = 0
			g.yAccum = 0
			break
		}
		g.py++
	}

	g.onGround = g.w.At(g.px, g.py+1).Solid()
	if g.onGround && g.vy > 0 {
		g.vy = 0
		g.yAccum = 0
	}
}

// targetCell returns the tile the keyboard actions operate on: the cell the
// player faces, or the cell under the feet when the facing cell is empty.
func (g *Game) targetCell() (int, int) {
	tx, ty := g.px+g.facing, g.py
	if g.w.At(tx, ty) == world.Air {
		return g.px, g.py + 1
	}
	return tx, ty
}

func (g *Game) mineFacing() {
	tx, ty := g.targetCell()
	g.mineAt(tx, ty)
}

func (g *Game) placeFacing() {
	g.placeAt(g.px+g.facing, g.py)
}

// mineAt removes the block at the tile if there is one.
func (g *Game) mineAt(x, y int) {
	if _, ok := g.w.Break(x, y); !ok {
		return
	}
	g.blocksBroken++
}

// placeAt puts the selected block at the tile. Placing over an existing
// block replaces it; placing onto the player's own tile is refused.
func (g *Game) placeAt(x, y int) {
	if !g.w.InBounds(x, y) {
		return
	}
	if x == g.px && y == g.py {
		return
	}
	g.w.Set(x, y, g.palette[g.selected])
	g.blocksPlaced++
}

// handleClick translates a screen click into a world tile action.
func (g *Game) handleClick(c core.Click) {
	wx := g.camX + c.X
	wy := g.camY + (c.Y - g.hudHeight)
	if !g.w.InBounds(wx, wy) {
		return
	}
	switch c.Button {
	case core.ClickLeft:
		g.mineAt(wx, wy)
	case core.ClickRight:
		g.placeAt(wx, wy)
	}
}

// updateCamera keeps the player centered, clamped to the map edges.
func (g *Game) updateCamera() {
	viewW := g.screenW
	viewH := g.screenH - g.hudHeight
	g.camX = core.Clamp(g.px-viewW/2, 0, core.Max(g.w.Width()-viewW, 0))
	g.camY = core.Clamp(g.py-viewH/2, 0, core.Max(g.w.Height()-viewH, 0))
}

func (g *Game) saveWorld() {
	if err := g.w.SaveFile(g.cfg.SavePath); err != nil {
		g.setStatus(fmt.Sprintf("Save failed: %v", err))
		return
	}
	g.setStatus(fmt.Sprintf("Saved to %s", g.cfg.SavePath))
}

func (g *Game) loadWorld() {
	w, err := world.LoadFile(g.cfg.SavePath)
	if err != nil {
		g.setStatus(fmt.Sprintf("Load failed: %v", err))
		return
	}
	g.w = w
	// The standing tile may no longer exist in the loaded world.
	if g.w.At(g.px, g.py).Solid() {
		g.spawnPlayer()
	}
	g.updateCamera()
	g.setStatus(fmt.Sprintf("Loaded %s", g.cfg.SavePath))
}

func (g *Game) setStatus(msg string) {
	g.statusMsg = msg
	g.statusTicks = statusTicksDefault
}

// SetScreenSize adapts the viewport to a new terminal size without
// regenerating the world.
func (g *Game) SetScreenSize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < 20 || h < g.hudHeight+8
	g.updateCamera()
}

// SelectedBlock returns the block type of the active hotbar slot.
func (g *Game) SelectedBlock() world.BlockType {
	return g.palette[g.selected]
}

// World exposes the block map for persistence and tooling.
func (g *Game) World() *world.World {
	return g.w
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:        g.blocksPlaced + g.blocksBroken,
		BlocksPlaced: g.blocksPlaced,
		BlocksBroken: g.blocksBroken,
		Paused:       g.paused,
	}
}
