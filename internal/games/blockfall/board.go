package blockfall

// board is the playfield grid. Cells hold 0 for empty or pieceKind+1 for a
// locked block, so the locked color survives the piece.
type board struct {
	w, h  int
	cells []uint8
}

func newBoard(w, h int) *board {
	return &board{
		w:     w,
		h:     h,
		cells: make([]uint8, w*h),
	}
}

func (b *board) at(x, y int) uint8 {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return 0
	}
	return b.cells[y*b.w+x]
}

// collides returns true if any block of the piece is outside the board or
// overlaps a locked cell. Cells above the top row are legal; pieces spawn
// partially hidden there.
func (b *board) collides(p piece) bool {
	for _, o := range p.blocks() {
		if o.X < 0 || o.X >= b.w || o.Y >= b.h {
			return true
		}
		if o.Y >= 0 && b.cells[o.Y*b.w+o.X] != 0 {
			return true
		}
	}
	return false
}

// merge locks the piece into the grid.
func (b *board) merge(p piece) {
	for _, o := range p.blocks() {
		if o.Y >= 0 && o.Y < b.h && o.X >= 0 && o.X < b.w {
			b.cells[o.Y*b.w+o.X] = uint8(p.kind) + 1
		}
	}
}

// fullRows returns the indexes of completely filled rows, top to bottom.
func (b *board) fullRows() []int {
	var rows []int
	for y := 0; y < b.h; y++ {
		full := true
		for x := 0; x < b.w; x++ {
			if b.cells[y*b.w+x] == 0 {
				full = false
				break
			}
		}
		if full {
			rows = append(rows, y)
		}
	}
	return rows
}

// clearRows removes the given rows and shifts everything above them down.
func (b *board) clearRows(rows []int) {
	cleared := make(map[int]bool, len(rows))
	for _, y := range rows {
		cleared[y] = true
	}

	dst := b.h - 1
	for src := b.h - 1; src >= 0; src-- {
		if cleared[src] {
			continue
		}
		if dst != src {
			copy(b.cells[dst*b.w:(dst+1)*b.w], b.cells[src*b.w:(src+1)*b.w])
		}
		dst--
	}
	for ; dst >= 0; dst-- {
		for x := 0; x < b.w; x++ {
			b.cells[dst*b.w+x] = 0
		}
	}
}
