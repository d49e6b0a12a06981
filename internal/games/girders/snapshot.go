package girders

// Snapshot contains the complete game state for replay and determinism
// checks. Uses primitive types only for stable serialization; float fields
// are stored fixed-point (x1000).
type Snapshot struct {
	Tick      int
	Score     int
	Lives     int
	Level     int
	TicksLeft int
	Phase     string

	PlayerX  int
	PlayerY  int
	PlayerVX int
	PlayerVY int
	OnGround bool
	OnLadder bool

	SpawnCountdown int

	// Each barrel is 5 ints: X, Y, VY (fixed-point), Dir, Descending
	BarrelCount int
	BarrelData  []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	barrelData := make([]int, 0, len(g.barrels)*5)
	for _, b := range g.barrels {
		desc := 0
		if b.descending {
			desc = 1
		}
		barrelData = append(barrelData,
			int(b.body.Pos.X*1000), int(b.body.Pos.Y*1000),
			int(b.body.Vel.Y*1000), int(b.dir), desc)
	}

	return Snapshot{
		Tick:           g.tickCount,
		Score:          g.score,
		Lives:          g.lives,
		Level:          g.level,
		TicksLeft:      g.ticksLeft,
		Phase:          g.phase.String(),
		PlayerX:        int(g.player.body.Pos.X * 1000),
		PlayerY:        int(g.player.body.Pos.Y * 1000),
		PlayerVX:       int(g.player.body.Vel.X * 1000),
		PlayerVY:       int(g.player.body.Vel.Y * 1000),
		OnGround:       g.player.body.OnGround,
		OnLadder:       g.player.body.OnLadder,
		SpawnCountdown: g.spawn.countdown,
		BarrelCount:    len(g.barrels),
		BarrelData:     barrelData,
	}
}

// Hash returns a simple hash of the snapshot for determinism checks.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)
	h = h*31 + uint64(snap.Score)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TicksLeft)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerY)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerVX)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerVY)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SpawnCountdown) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BarrelCount)   //#nosec G115 -- hash computation

	for _, v := range snap.BarrelData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
