package barrier

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

	CursorX  int
	CursorY  int
	Vertical bool

	// Each ball is 4 ints: X, Y, VX, VY (fixed-point)
	BallCount int
	BallData  []int

	// Field cells, flattened row-major (0=empty, 1=wall, 2=filled)
	FieldW    int
	FieldH    int
	FieldData []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	ballData := make([]int, 0, len(g.balls)*4)
	for _, b := range g.balls {
		ballData = append(ballData,
			int(b.Pos.X*1000), int(b.Pos.Y*1000),
			int(b.Vel.X*1000), int(b.Vel.Y*1000))
	}

	fieldData := make([]int, g.field.w*g.field.h)
	for i, c := range g.field.cells {
		fieldData[i] = int(c)
	}

	return Snapshot{
		Tick:      g.tickCount,
		Score:     g.score,
		Lives:     g.lives,
		Level:     g.level,
		TicksLeft: g.ticksLeft,
		Phase:     g.phase.String(),
		CursorX:   g.cursorX,
		CursorY:   g.cursorY,
		Vertical:  g.vertical,
		BallCount: len(g.balls),
		BallData:  ballData,
		FieldW:    g.field.w,
		FieldH:    g.field.h,
		FieldData: fieldData,
	}
}

// Hash returns a simple hash of the snapshot for determinism checks.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TicksLeft) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CursorX)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CursorY)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallCount) //#nosec G115 -- hash computation

	for _, v := range snap.BallData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.FieldData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
