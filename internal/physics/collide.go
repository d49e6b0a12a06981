package physics

import "math"

// Segment is an immutable wall segment. Static geometry is created at
// level-generation time and read-only during simulation.
type Segment struct {
	A, B Vec2
}

// Closest returns the closest point on the segment to p, computed by
// parametric projection clamped to [0, 1].
func (s Segment) Closest(p Vec2) Vec2 {
	d := s.B.Sub(s.A)
	l2 := d.Dot(d)
	if l2 == 0 {
		return s.A
	}
	t := p.Sub(s.A).Dot(d) / l2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return s.A.Add(d.Scale(t))
}

// Normal returns the segment's unit left normal.
func (s Segment) Normal() Vec2 {
	return s.B.Sub(s.A).Normalize().Perp()
}

// Contact describes a circle-vs-segment collision.
type Contact struct {
	Point  Vec2    // closest point on the segment
	Normal Vec2    // unit normal pointing from the segment toward the circle
	Depth  float64 // penetration depth
}

// CircleSegment tests a circle of the given radius against a segment with
// the given half-thickness. Reports a collision when the clamped
// perpendicular distance is less than radius + halfThickness.
func CircleSegment(center Vec2, radius float64, seg Segment, halfThickness float64) (Contact, bool) {
	closest := seg.Closest(center)
	offset := center.Sub(closest)
	dist := offset.Len()

	reach := radius + halfThickness
	if dist >= reach {
		return Contact{}, false
	}

	normal := offset.Normalize()
	if normal == (Vec2{}) {
		// Center exactly on the segment: fall back to the segment normal.
		normal = seg.Normal()
	}

	return Contact{
		Point:  closest,
		Normal: normal,
		Depth:  reach - dist,
	}, true
}

// Reflect mirrors a velocity about a unit contact normal. The component
// along the normal is reversed and scaled by the bounce coefficient; the
// tangential component is preserved.
func Reflect(vel, normal Vec2, bounce float64) Vec2 {
	vn := vel.Dot(normal)
	return vel.Sub(normal.Scale(vn * (1 + bounce)))
}

// ResolveCircleSegment repositions a penetrating circle just outside the
// segment and reflects its velocity. Returns the corrected position and
// velocity, and whether a collision occurred.
func ResolveCircleSegment(pos, vel Vec2, radius float64, seg Segment, halfThickness, bounce float64) (Vec2, Vec2, bool) {
	contact, hit := CircleSegment(pos, radius, seg, halfThickness)
	if !hit {
		return pos, vel, false
	}

	// Only respond when the circle is moving into the segment;
	// a separating contact resolves itself next tick.
	if vel.Dot(contact.Normal) >= 0 {
		return pos.Add(contact.Normal.Scale(contact.Depth)), vel, true
	}

	newPos := pos.Add(contact.Normal.Scale(contact.Depth))
	newVel := Reflect(vel, contact.Normal, bounce)
	return newPos, newVel, true
}

// CirclesOverlap tests two circles by comparing center distance to summed
// radii. Ball-vs-hole detection uses this with the cup's tolerance radius.
func CirclesOverlap(a Vec2, ra float64, b Vec2, rb float64) bool {
	return Dist(a, b) < ra+rb
}

// SweepCircle advances a circle along its per-tick velocity, sampling
// intermediate points no further apart than the radius and resolving against
// the first sample that intersects any segment. This avoids tunneling when a
// body moves more than its own radius in one tick. Returns the final
// position and velocity, and whether any segment was hit.
func SweepCircle(pos, vel Vec2, radius float64, segs []Segment, halfThickness, bounce float64) (Vec2, Vec2, bool) {
	travel := vel.Len()
	if travel == 0 {
		return pos, vel, false
	}

	steps := int(math.Ceil(travel / radius))
	if steps < 1 {
		steps = 1
	}

	step := vel.Scale(1 / float64(steps))
	p := pos
	for i := 0; i < steps; i++ {
		p = p.Add(step)
		for _, seg := range segs {
			if _, hit := CircleSegment(p, radius, seg, halfThickness); hit {
				newPos, newVel, _ := ResolveCircleSegment(p, vel, radius, seg, halfThickness, bounce)
				return newPos, newVel, true
			}
		}
	}

	return p, vel, false
}

// EndpointCircle is the cheap end-of-tick-only variant of SweepCircle: it
// tests geometry only at the final position and accepts the tunneling risk
// at high speed.
func EndpointCircle(pos, vel Vec2, radius float64, segs []Segment, halfThickness, bounce float64) (Vec2, Vec2, bool) {
	p := pos.Add(vel)
	for _, seg := range segs {
		if _, hit := CircleSegment(p, radius, seg, halfThickness); hit {
			return ResolveCircleSegment(p, vel, radius, seg, halfThickness, bounce)
		}
	}
	return p, vel, false
}
