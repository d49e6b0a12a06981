package blockfall

import "github.com/quarterslot/quarters/internal/core"

// pieceKind identifies one of the seven tetromino shapes.
type pieceKind int

const (
	pieceI pieceKind = iota
	pieceO
	pieceT
	pieceS
	pieceZ
	pieceJ
	pieceL
	pieceCount
)

// offset is a block position relative to the piece origin.
type offset struct {
	X, Y int
}

// pieceShapes holds the four rotation states of each piece as block offsets
// from the piece origin. Rotation order is clockwise.
var pieceShapes = [pieceCount][4][4]offset{
	pieceI: {
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
	},
	pieceO: {
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
	},
	pieceT: {
		{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	pieceS: {
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 1}, {2, 1}, {0, 2}, {1, 2}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	pieceZ: {
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{2, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {0, 2}},
	},
	pieceJ: {
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 0}, {1, 1}, {0, 2}, {1, 2}},
	},
	pieceL: {
		{{2, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	},
}

// pieceColors maps each piece kind to its render color.
var pieceColors = [pieceCount]core.Color{
	pieceI: core.ColorCyan,
	pieceO: core.ColorYellow,
	pieceT: core.ColorMagenta,
	pieceS: core.ColorGreen,
	pieceZ: core.ColorRed,
	pieceJ: core.ColorBlue,
	pieceL: core.ColorOrange,
}

// piece is an active falling tetromino.
type piece struct {
	kind pieceKind
	rot  int
	x, y int
}

// blocks returns the absolute board cells the piece occupies.
func (p piece) blocks() [4]offset {
	var out [4]offset
	for i, o := range pieceShapes[p.kind][p.rot] {
		out[i] = offset{p.x + o.X, p.y + o.Y}
	}
	return out
}

// rotated returns the piece rotated one step clockwise.
func (p piece) rotated() piece {
	p.rot = (p.rot + 1) % 4
	return p
}

// shifted returns the piece moved by (dx, dy).
func (p piece) shifted(dx, dy int) piece {
	p.x += dx
	p.y += dy
	return p
}

// kickOffsets are the horizontal nudges tried, in order, when a rotation
// collides in place.
var kickOffsets = []int{0, -1, 1, -2, 2}
