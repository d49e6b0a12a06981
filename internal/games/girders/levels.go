package girders

import "github.com/quarterslot/quarters/internal/physics"

// ladder is a climbable vertical strip. Top and Bottom are the y range a
// climber can occupy; X is the column climbers snap to.
type ladder struct {
	X      float64
	Top    float64
	Bottom float64
}

// levelDef is the static geometry of one level.
type levelDef struct {
	platforms []physics.Box
	ladders   []ladder
	goal      physics.Box
	start     physics.Vec2 // player spawn
	spawn     physics.Vec2 // barrel spawn
	speedMult float64      // barrel speed multiplier
}

const (
	rowGap     = 5 // vertical cells between girder rows
	edgeMargin = 2
	gapWidth   = 6
)

// buildLevel lays out a zigzag girder tower for the given level index.
// Girders alternate which side is open; ladders connect each pair on the
// closed side. Barrels enter at the top and the goal sits beside their
// spawn, so the climb runs against the traffic. Higher levels speed the
// barrels up rather than changing the geometry.
func buildLevel(index, w, h int) levelDef {
	fw := float64(w)
	floorY := float64(h - 1)

	rows := (h - 4) / rowGap
	if rows < 3 {
		rows = 3
	}

	def := levelDef{
		speedMult: 1 + 0.25*float64(index-1),
	}

	// Floor spans the whole field
	def.platforms = append(def.platforms, physics.Box{
		X: 0, Y: floorY, W: fw, H: 1,
	})

	// Upper girders leave a gap on alternating sides
	for r := 1; r < rows; r++ {
		y := floorY - float64(r*rowGap)
		openRight := r%2 == 1
		box := physics.Box{Y: y, H: 1}
		if openRight {
			box.X = 0
			box.W = fw - gapWidth
		} else {
			box.X = gapWidth
			box.W = fw - gapWidth
		}
		def.platforms = append(def.platforms, box)

		// Ladder on the closed side connects this girder to the one below
		lx := fw - float64(edgeMargin) - 1
		if openRight {
			lx = float64(edgeMargin) + 1
		}
		def.ladders = append(def.ladders, ladder{
			X:      lx,
			Top:    y,
			Bottom: y + float64(rowGap),
		})
	}

	topY := floorY - float64((rows-1)*rowGap)
	topRightOpen := (rows-1)%2 == 1

	// Goal and barrel spawn share the top girder on opposite ends
	if topRightOpen {
		def.goal = physics.Box{X: 1, Y: topY - 2, W: 4, H: 2}
		def.spawn = physics.V(fw-gapWidth-3, topY-1)
	} else {
		def.goal = physics.Box{X: fw - 5, Y: topY - 2, W: 4, H: 2}
		def.spawn = physics.V(float64(gapWidth)+2, topY-1)
	}
	def.start = physics.V(3, floorY-1)

	return def
}

// ladderNear returns the ladder whose column is within tol of x and whose
// span contains y, or false.
func (d *levelDef) ladderNear(x, y, tol float64) (ladder, bool) {
	for _, l := range d.ladders {
		if x >= l.X-tol && x <= l.X+tol && y >= l.Top-tol && y <= l.Bottom+tol {
			return l, true
		}
	}
	return ladder{}, false
}
