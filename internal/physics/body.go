package physics

// Body is a moving body owned by a single game instance: a ball, player,
// barrel or projectile. A circle body sets Radius; a box body sets W and H
// with Pos as its top-left corner. The owning game mutates it once per tick,
// first through Integrate and then through collision resolution.
type Body struct {
	Pos Vec2
	Vel Vec2

	Radius float64 // circle bodies
	W, H   float64 // box bodies

	OnGround bool
	OnLadder bool
}

// Box returns the body's axis-aligned bounding box.
func (b *Body) Box() Box {
	return Box{X: b.Pos.X, Y: b.Pos.Y, W: b.W, H: b.H}
}

// Environment holds the per-game integration constants.
// Friction is a per-tick velocity multiplier (1 = frictionless); Gravity is
// added to vertical velocity unless the body is on a ladder.
type Environment struct {
	Gravity      float64
	Friction     float64
	MaxFallSpeed float64
}

// Integrate advances the body by one tick: position by velocity, then
// friction, then gravity. Runs before collision resolution. Ladder climbing
// exempts the body from gravity.
func Integrate(b *Body, env Environment) {
	b.Pos = b.Pos.Add(b.Vel)

	if env.Friction != 0 {
		b.Vel = b.Vel.Scale(env.Friction)
	}

	if !b.OnLadder {
		b.Vel.Y += env.Gravity
	}

	if env.MaxFallSpeed > 0 && b.Vel.Y > env.MaxFallSpeed {
		b.Vel.Y = env.MaxFallSpeed
	}
}

// Box is a float-precision axis-aligned bounding box.
type Box struct {
	X, Y, W, H float64
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Overlaps is the four-inequality AABB test. Symmetric.
func (b Box) Overlaps(o Box) bool {
	if b.X >= o.Right() || o.X >= b.Right() {
		return false
	}
	if b.Y >= o.Bottom() || o.Y >= b.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point is inside the box.
func (b Box) Contains(p Vec2) bool {
	return p.X >= b.X && p.X < b.Right() && p.Y >= b.Y && p.Y < b.Bottom()
}

// landingSlack is how far a body's feet may already be below a surface when
// it is still considered to have arrived from above this tick.
const landingSlack = 0.5

// LandOnBox clamps a falling body onto the top surface of a box it overlaps,
// zeroing vertical velocity. Returns false if the body is not falling, does
// not overlap, or came from the side or below - penetration from those
// directions is left to the caller's policy.
func LandOnBox(b *Body, box Box) bool {
	if b.Vel.Y <= 0 {
		return false
	}
	if !b.Box().Overlaps(box) {
		return false
	}

	prevBottom := b.Pos.Y + b.H - b.Vel.Y
	if prevBottom > box.Y+landingSlack {
		return false
	}

	b.Pos.Y = box.Y - b.H
	b.Vel.Y = 0
	b.OnGround = true
	return true
}
