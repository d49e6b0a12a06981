package blockfall

// Snapshot contains the complete game state for replay and determinism
// checks. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick  int
	Score int
	Lines int
	Level int
	Phase string

	// Active piece: kind, rotation, x, y (kind -1 when nothing falls)
	PieceKind int
	PieceRot  int
	PieceX    int
	PieceY    int
	NextKind  int

	GravityAccum int
	LockTicks    int
	ClearTicks   int

	// Board cells, flattened row-major (0 empty, else kind+1)
	BoardW    int
	BoardH    int
	BoardData []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	boardData := make([]int, len(g.board.cells))
	for i, c := range g.board.cells {
		boardData[i] = int(c)
	}

	pieceKind := -1
	if g.falling {
		pieceKind = int(g.current.kind)
	}

	return Snapshot{
		Tick:         g.tickCount,
		Score:        g.score,
		Lines:        g.lines,
		Level:        g.level,
		Phase:        g.phase.String(),
		PieceKind:    pieceKind,
		PieceRot:     g.current.rot,
		PieceX:       g.current.x,
		PieceY:       g.current.y,
		NextKind:     int(g.next.kind),
		GravityAccum: g.gravityAccum,
		LockTicks:    g.lockTicks,
		ClearTicks:   g.clearTicks,
		BoardW:       g.board.w,
		BoardH:       g.board.h,
		BoardData:    boardData,
	}
}

// Hash returns a simple hash of the snapshot for determinism checks.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)
	h = h*31 + uint64(snap.Score)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lines)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PieceKind+1)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PieceRot)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PieceX+4)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PieceY+4)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.NextKind)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.GravityAccum) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LockTicks)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ClearTicks)   //#nosec G115 -- hash computation

	for _, v := range snap.BoardData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
