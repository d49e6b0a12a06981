package physics

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSegmentClosest(t *testing.T) {
	seg := Segment{A: V(0, 0), B: V(10, 0)}

	tests := []struct {
		name     string
		point    Vec2
		expected Vec2
	}{
		{"above middle", V(5, 3), V(5, 0)},
		{"beyond right end", V(15, 3), V(10, 0)},
		{"beyond left end", V(-5, -2), V(0, 0)},
		{"on the segment", V(7, 0), V(7, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := seg.Closest(tc.point)
			if !almostEqual(got.X, tc.expected.X) || !almostEqual(got.Y, tc.expected.Y) {
				t.Errorf("Closest(%v) = %v, expected %v", tc.point, got, tc.expected)
			}
		})
	}
}

func TestCircleSegmentHit(t *testing.T) {
	seg := Segment{A: V(0, 0), B: V(10, 0)}

	tests := []struct {
		name   string
		center Vec2
		radius float64
		thick  float64
		hit    bool
	}{
		{"touching from above", V(5, 2), 2.5, 0, true},
		{"clearly apart", V(5, 10), 2, 0, false},
		{"exactly at reach (no hit)", V(5, 2), 2, 0, false},
		{"thickness closes the gap", V(5, 2.4), 2, 0.5, true},
		{"past the endpoint", V(13, 0), 2, 0, false},
		{"near the endpoint", V(11, 0), 2, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, hit := CircleSegment(tc.center, tc.radius, seg, tc.thick)
			if hit != tc.hit {
				t.Errorf("CircleSegment hit = %v, expected %v", hit, tc.hit)
			}
		})
	}
}

func TestReflectReversesNormalComponent(t *testing.T) {
	// Ball moving down-right into a horizontal wall below it.
	normal := V(0, -1)
	vel := V(3, 4)

	bounces := []float64{1.0, 0.8, 0.5}
	for _, bounce := range bounces {
		out := Reflect(vel, normal, bounce)

		// Tangential component preserved
		if !almostEqual(out.X, vel.X) {
			t.Errorf("bounce %.1f: tangential component changed: %v -> %v", bounce, vel.X, out.X)
		}

		// Normal component reversed and scaled by bounce
		wantY := -vel.Y * bounce
		if !almostEqual(out.Y, wantY) {
			t.Errorf("bounce %.1f: normal component = %v, expected %v", bounce, out.Y, wantY)
		}
	}
}

func TestResolveCircleSegmentRepositions(t *testing.T) {
	seg := Segment{A: V(0, 5), B: V(10, 5)}

	// Ball overlapping the wall from above, moving down.
	pos, vel, hit := ResolveCircleSegment(V(5, 4), V(0, 2), 1.5, seg, 0, 1.0)
	if !hit {
		t.Fatal("expected a collision")
	}

	// Repositioned outside the segment
	if dist := Dist(pos, V(5, 5)); dist < 1.5-1e-9 {
		t.Errorf("circle still penetrating: dist to segment %v < radius", dist)
	}

	// Velocity reflected upward
	if vel.Y >= 0 {
		t.Errorf("velocity should be reflected upward, got %v", vel.Y)
	}
}

func TestSweepCirclePreventsTunneling(t *testing.T) {
	// Thin vertical wall; ball small and fast enough to jump it in one tick.
	wall := Segment{A: V(10, -10), B: V(10, 10)}
	pos := V(0, 0)
	vel := V(25, 0) // 25 units per tick, radius 1

	_, _, endpointHit := EndpointCircle(pos, vel, 1, []Segment{wall}, 0.2, 1.0)
	if endpointHit {
		t.Error("endpoint-only check should tunnel through the wall")
	}

	newPos, newVel, sweptHit := SweepCircle(pos, vel, 1, []Segment{wall}, 0.2, 1.0)
	if !sweptHit {
		t.Fatal("swept check should catch the wall")
	}
	if newPos.X >= 11 {
		t.Errorf("swept resolution left the ball past the wall: x = %v", newPos.X)
	}
	if newVel.X >= 0 {
		t.Errorf("swept resolution should reflect the ball back, vx = %v", newVel.X)
	}
}

func TestBoxOverlapsSymmetric(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{"overlapping", Box{0, 0, 10, 10}, Box{5, 5, 10, 10}, true},
		{"apart", Box{0, 0, 10, 10}, Box{20, 0, 5, 5}, false},
		{"touching edges", Box{0, 0, 10, 10}, Box{10, 0, 5, 5}, false},
		{"contained", Box{0, 0, 20, 20}, Box{5, 5, 2, 2}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps(a,b) = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps(b,a) = %v, expected %v (asymmetric!)", got, tc.expected)
			}
		})
	}
}

func TestCirclesOverlap(t *testing.T) {
	if !CirclesOverlap(V(0, 0), 2, V(3, 0), 2) {
		t.Error("circles with overlapping radii should collide")
	}
	if CirclesOverlap(V(0, 0), 1, V(3, 0), 1) {
		t.Error("distant circles should not collide")
	}
	if CirclesOverlap(V(0, 0), 1.5, V(3, 0), 1.5) {
		t.Error("exactly touching circles should not count as overlap")
	}
}
