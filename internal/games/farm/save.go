package farm

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"termcraft/internal/core"
	"termcraft/internal/world"
)

// saveFile is the on-disk JSON shape. Unlike the craft game, the farm save
// carries the whole session: block map, crops, player, clock and inventory.
type saveFile struct {
	World     *world.World    `json:"world"`
	Plants    map[string]Crop `json:"plants"`
	Player    playerState     `json:"player"`
	Inventory map[Item]int    `json:"inventory"`
}

type playerState struct {
	X        int     `json:"x"`
	Y        int     `json:"y"`
	Day      int     `json:"day"`
	Time     float64 `json:"time"`
	Selected int     `json:"selected"`
	Hotbar   bool    `json:"hotbar"`
}

func plantKey(c world.Coord) string {
	return strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y)
}

func parsePlantKey(key string) (world.Coord, error) {
	parts := strings.SplitN(key, ",", 2)
	if len(parts) != 2 {
		return world.Coord{}, fmt.Errorf("farm: malformed plant key %q", key)
	}
	x, err := strconv.Atoi(parts[0])
	if err != nil {
		return world.Coord{}, fmt.Errorf("farm: malformed plant key %q: %w", key, err)
	}
	y, err := strconv.Atoi(parts[1])
	if err != nil {
		return world.Coord{}, fmt.Errorf("farm: malformed plant key %q: %w", key, err)
	}
	return world.Coord{X: x, Y: y}, nil
}

// save writes the full session state to the configured path.
func (g *Game) save() {
	sf := saveFile{
		World:  g.w,
		Plants: make(map[string]Crop, len(g.plants)),
		Player: playerState{
			X:        g.px,
			Y:        g.py,
			Day:      g.day,
			Time:     g.timeOfDay,
			Selected: g.selected,
			Hotbar:   g.showHotbar,
		},
		Inventory: g.inventory,
	}
	for c, crop := range g.plants {
		sf.Plants[plantKey(c)] = crop
	}

	data, err := json.Marshal(sf)
	if err != nil {
		g.setStatus(fmt.Sprintf("Save failed: %v", err))
		return
	}
	if err := os.WriteFile(g.cfg.SavePath, data, 0o644); err != nil {
		g.setStatus(fmt.Sprintf("Save failed: %v", err))
		return
	}
	g.setStatus(fmt.Sprintf("Saved to %s", g.cfg.SavePath))
}

// load replaces the session state with the file contents. On any error the
// running session is left untouched.
func (g *Game) load() {
	data, err := os.ReadFile(g.cfg.SavePath)
	if err != nil {
		g.setStatus(fmt.Sprintf("Load failed: %v", err))
		return
	}
	var sf saveFile
	if err := json.Unmarshal(data, &sf); err != nil {
		g.setStatus(fmt.Sprintf("Load failed: %v", err))
		return
	}
	if sf.World == nil {
		g.setStatus("Load failed: save has no world")
		return
	}

	plants := make(map[world.Coord]Crop, len(sf.Plants))
	for key, crop := range sf.Plants {
		c, err := parsePlantKey(key)
		if err != nil {
			g.setStatus(fmt.Sprintf("Load failed: %v", err))
			return
		}
		plants[c] = crop
	}

	g.w = sf.World
	g.plants = plants
	g.px = core.Clamp(sf.Player.X, 0, g.w.Width()-1)
	g.py = core.Clamp(sf.Player.Y, 0, g.w.Height()-1)
	g.day = sf.Player.Day
	g.timeOfDay = sf.Player.Time
	g.selected = core.Clamp(sf.Player.Selected, 0, len(hotbarItems)-1)
	g.showHotbar = sf.Player.Hotbar
	if sf.Inventory != nil {
		g.inventory = sf.Inventory
	}
	g.updateCamera()
	g.setStatus(fmt.Sprintf("Loaded %s", g.cfg.SavePath))
}
