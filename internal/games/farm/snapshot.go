package farm

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Tick         uint64
	PlayerX      int
	PlayerY      int
	Selected     int
	Day          int
	Hour         int
	BlockCount   int
	PlantCount   int
	Seeds        int
	Dirt         int
	Harvested    int
	BlocksPlaced int
	BlocksBroken int
	Paused       bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:         g.tick,
		PlayerX:      g.px,
		PlayerY:      g.py,
		Selected:     g.selected,
		Day:          g.day,
		Hour:         int(g.timeOfDay),
		BlockCount:   g.w.Count(),
		PlantCount:   len(g.plants),
		Seeds:        g.inventory[ItemSeed],
		Dirt:         g.inventory[ItemDirt],
		Harvested:    g.harvested,
		BlocksPlaced: g.blocksPlaced,
		BlocksBroken: g.blocksBroken,
		Paused:       g.paused,
	}
}
