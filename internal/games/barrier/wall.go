package barrier

// cellState is the occupancy of one field grid cell.
type cellState uint8

const (
	cellEmpty  cellState = iota
	cellWall             // committed wall
	cellFilled           // captured by a completed wall
)

// field is the coarse occupancy grid the flood fill runs on.
// Static once a wall commits; regenerated per level.
type field struct {
	w, h  int
	cells []cellState
}

func newField(w, h int) *field {
	return &field{
		w:     w,
		h:     h,
		cells: make([]cellState, w*h),
	}
}

func (f *field) at(x, y int) cellState {
	if x < 0 || x >= f.w || y < 0 || y >= f.h {
		return cellWall // out of bounds behaves like wall
	}
	return f.cells[y*f.w+x]
}

func (f *field) set(x, y int, s cellState) {
	if x < 0 || x >= f.w || y < 0 || y >= f.h {
		return
	}
	f.cells[y*f.w+x] = s
}

// solid returns true if a ball cannot occupy the cell.
func (f *field) solid(x, y int) bool {
	return f.at(x, y) != cellEmpty
}

// counts returns (captured, total) cell counts. Captured cells are walls and
// filled regions; total is the whole field.
func (f *field) counts() (captured, total int) {
	for _, c := range f.cells {
		if c != cellEmpty {
			captured++
		}
	}
	return captured, len(f.cells)
}

// build is a wall under construction: it grows from the anchor in both
// directions along its axis until each arm reaches solid geometry. A ball
// touching any of its cells before completion destroys it.
type build struct {
	active   bool
	x, y     int
	vertical bool
	arm1     int // grown toward -axis
	arm2     int // grown toward +axis
	done1    bool
	done2    bool
}

// cells returns every cell currently occupied by the build.
func (b *build) cellList() []cell {
	if !b.active {
		return nil
	}
	out := make([]cell, 0, b.arm1+b.arm2+1)
	out = append(out, cell{b.x, b.y})
	for i := 1; i <= b.arm1; i++ {
		if b.vertical {
			out = append(out, cell{b.x, b.y - i})
		} else {
			out = append(out, cell{b.x - i, b.y})
		}
	}
	for i := 1; i <= b.arm2; i++ {
		if b.vertical {
			out = append(out, cell{b.x, b.y + i})
		} else {
			out = append(out, cell{b.x + i, b.y})
		}
	}
	return out
}

// covers returns true if the build occupies the given cell.
func (b *build) covers(x, y int) bool {
	if !b.active {
		return false
	}
	if b.vertical {
		return x == b.x && y >= b.y-b.arm1 && y <= b.y+b.arm2
	}
	return y == b.y && x >= b.x-b.arm1 && x <= b.x+b.arm2
}

// grow extends each unfinished arm by n cells, stopping at solid geometry.
// Returns true once both arms are done.
func (b *build) grow(f *field, n int) bool {
	for i := 0; i < n && !b.done1; i++ {
		nx, ny := b.x, b.y-b.arm1-1
		if !b.vertical {
			nx, ny = b.x-b.arm1-1, b.y
		}
		if f.solid(nx, ny) {
			b.done1 = true
		} else {
			b.arm1++
		}
	}
	for i := 0; i < n && !b.done2; i++ {
		nx, ny := b.x, b.y+b.arm2+1
		if !b.vertical {
			nx, ny = b.x+b.arm2+1, b.y
		}
		if f.solid(nx, ny) {
			b.done2 = true
		} else {
			b.arm2++
		}
	}
	return b.done1 && b.done2
}

// commit writes the completed build into the field and returns the number
// of wall cells placed.
func (b *build) commit(f *field) int {
	cells := b.cellList()
	for _, c := range cells {
		f.set(c.X, c.Y, cellWall)
	}
	b.active = false
	return len(cells)
}
