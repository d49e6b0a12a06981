package physics

import "testing"

func TestIntegrateAppliesGravityAndFriction(t *testing.T) {
	b := &Body{Pos: V(10, 10), Vel: V(2, 0)}
	env := Environment{Gravity: 0.5, Friction: 0.9}

	Integrate(b, env)

	if b.Pos.X != 12 || b.Pos.Y != 10 {
		t.Errorf("position = %v, expected (12, 10)", b.Pos)
	}
	if !almostEqual(b.Vel.X, 1.8) {
		t.Errorf("friction not applied: vx = %v, expected 1.8", b.Vel.X)
	}
	if !almostEqual(b.Vel.Y, 0.5) {
		t.Errorf("gravity not applied: vy = %v, expected 0.5", b.Vel.Y)
	}
}

func TestIntegrateLadderSuppressesGravity(t *testing.T) {
	b := &Body{Pos: V(0, 0), Vel: V(0, 0), OnLadder: true}
	env := Environment{Gravity: 0.5, Friction: 1}

	Integrate(b, env)

	if b.Vel.Y != 0 {
		t.Errorf("ladder climbing should suppress gravity, vy = %v", b.Vel.Y)
	}
}

func TestIntegrateCapsFallSpeed(t *testing.T) {
	b := &Body{Vel: V(0, 9.9)}
	env := Environment{Gravity: 1, Friction: 1, MaxFallSpeed: 10}

	Integrate(b, env)

	if b.Vel.Y != 10 {
		t.Errorf("fall speed should be capped at 10, got %v", b.Vel.Y)
	}
}

func TestLandOnBox(t *testing.T) {
	platform := Box{X: 0, Y: 20, W: 30, H: 2}

	t.Run("falling body lands on top", func(t *testing.T) {
		b := &Body{Pos: V(5, 19.5), Vel: V(0, 2), W: 2, H: 1}
		if !LandOnBox(b, platform) {
			t.Fatal("expected landing")
		}
		if b.Pos.Y != 19 {
			t.Errorf("body should rest on platform top: y = %v, expected 19", b.Pos.Y)
		}
		if b.Vel.Y != 0 {
			t.Errorf("landing should zero vertical velocity, vy = %v", b.Vel.Y)
		}
		if !b.OnGround {
			t.Error("landing should set OnGround")
		}
	})

	t.Run("rising body passes through", func(t *testing.T) {
		b := &Body{Pos: V(5, 20.5), Vel: V(0, -2), W: 2, H: 1}
		if LandOnBox(b, platform) {
			t.Error("rising body should not land")
		}
	})

	t.Run("body arriving from below does not snap up", func(t *testing.T) {
		b := &Body{Pos: V(5, 21), Vel: V(0, 0.1), W: 2, H: 1}
		if LandOnBox(b, platform) {
			t.Error("body already inside from below should not be clamped to the top")
		}
	})
}
