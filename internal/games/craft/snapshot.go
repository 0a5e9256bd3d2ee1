package craft

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Tick         uint64
	PlayerX      int
	PlayerY      int
	Facing       int
	OnGround     bool
	Selected     int
	BlockCount   int
	BlocksPlaced int
	BlocksBroken int
	CamX         int
	CamY         int
	Paused       bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:         g.tick,
		PlayerX:      g.px,
		PlayerY:      g.py,
		Facing:       g.facing,
		OnGround:     g.onGround,
		Selected:     g.selected,
		BlockCount:   g.w.Count(),
		BlocksPlaced: g.blocksPlaced,
		BlocksBroken: g.blocksBroken,
		CamX:         g.camX,
		CamY:         g.camY,
		Paused:       g.paused,
	}
}
