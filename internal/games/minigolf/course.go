package minigolf

import "github.com/quarterslot/quarters/internal/physics"

// hole is one course layout. Walls are center-line segments with a half
// thickness applied at collision time; every hole carries its boundary
// walls explicitly so the resolver has a single segment list to sweep.
type hole struct {
	tee   physics.Vec2
	cup   physics.Vec2
	par   int
	walls []physics.Segment
}

// borderWalls returns the four field boundary segments.
func borderWalls(w, h float64) []physics.Segment {
	return []physics.Segment{
		{A: physics.V(0, 0), B: physics.V(w, 0)},
		{A: physics.V(w, 0), B: physics.V(w, h)},
		{A: physics.V(w, h), B: physics.V(0, h)},
		{A: physics.V(0, h), B: physics.V(0, 0)},
	}
}

// buildCourse lays out the holes for the given field size. Positions are
// fractions of the field so the course survives odd terminal sizes.
func buildCourse(width, height int) []hole {
	w := float64(width)
	h := float64(height)

	at := func(fx, fy float64) physics.Vec2 {
		return physics.V(w*fx, h*fy)
	}

	holes := []hole{
		{
			// Straight lane
			tee: at(0.15, 0.5),
			cup: at(0.85, 0.5),
			par: 2,
		},
		{
			// Center block forces a banked shot
			tee: at(0.12, 0.5),
			cup: at(0.88, 0.5),
			par: 3,
			walls: []physics.Segment{
				{A: at(0.5, 0.25), B: at(0.5, 0.75)},
			},
		},
		{
			// Dogleg around a half wall
			tee: at(0.12, 0.8),
			cup: at(0.85, 0.2),
			par: 3,
			walls: []physics.Segment{
				{A: at(0.45, 0.0), B: at(0.45, 0.6)},
			},
		},
		{
			// Funnel of two diagonals
			tee: at(0.1, 0.5),
			cup: at(0.9, 0.5),
			par: 3,
			walls: []physics.Segment{
				{A: at(0.35, 0.1), B: at(0.65, 0.4)},
				{A: at(0.35, 0.9), B: at(0.65, 0.6)},
			},
		},
		{
			// Chicane
			tee: at(0.1, 0.85),
			cup: at(0.9, 0.15),
			par: 4,
			walls: []physics.Segment{
				{A: at(0.3, 1.0), B: at(0.3, 0.35)},
				{A: at(0.6, 0.0), B: at(0.6, 0.65)},
			},
		},
		{
			// Pocketed cup behind an angled guard
			tee: at(0.12, 0.5),
			cup: at(0.86, 0.5),
			par: 4,
			walls: []physics.Segment{
				{A: at(0.7, 0.2), B: at(0.95, 0.35)},
				{A: at(0.7, 0.8), B: at(0.95, 0.65)},
			},
		},
	}

	border := borderWalls(w, h)
	for i := range holes {
		holes[i].walls = append(holes[i].walls, border...)
	}
	return holes
}

// coursePar returns the total par of the course.
func coursePar(holes []hole) int {
	total := 0
	for _, h := range holes {
		total += h.par
	}
	return total
}
