package minigolf

// Snapshot contains the complete game state for replay and determinism
// checks. Uses primitive types only for stable serialization; float fields
// are stored fixed-point (x1000).
type Snapshot struct {
	Tick  int
	Score int
	Phase string

	HoleIdx      int
	Strokes      int
	TotalStrokes int

	BallX   int
	BallY   int
	BallVX  int
	BallVY  int
	Rolling bool

	AimAngle int
	Power    int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:         g.tickCount,
		Score:        g.score,
		Phase:        g.phase.String(),
		HoleIdx:      g.holeIdx,
		Strokes:      g.strokes,
		TotalStrokes: g.totalStrokes,
		BallX:        int(g.ball.Pos.X * 1000),
		BallY:        int(g.ball.Pos.Y * 1000),
		BallVX:       int(g.ball.Vel.X * 1000),
		BallVY:       int(g.ball.Vel.Y * 1000),
		Rolling:      g.rolling,
		AimAngle:     int(g.aimAngle * 1000),
		Power:        int(g.power * 1000),
	}
}

// Hash returns a simple hash of the snapshot for determinism checks.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)
	h = h*31 + uint64(snap.Score)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HoleIdx)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Strokes)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TotalStrokes) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallX)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallY)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallVX)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallVY)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.AimAngle)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Power)        //#nosec G115 -- hash computation
	if snap.Rolling {
		h = h*31 + 1
	}
	return h
}
