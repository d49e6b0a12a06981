package girders

import (
	"math"
	"math/rand"

	"github.com/quarterslot/quarters/internal/config"
	"github.com/quarterslot/quarters/internal/physics"
)

const (
	barrelSize   = 1.0
	barrelRadius = 0.5
)

// barrel is a rolling hazard. It zigzags down the tower, reversing
// direction after each drop to the next girder, and sometimes takes a
// ladder instead.
type barrel struct {
	body     physics.Body
	dir      float64 // -1 rolls left, 1 rolls right
	airTicks int

	descending bool
	targetY    float64 // feet y where the ladder descent ends

	jumpScored bool // jump-over bonus already paid
}

func (b *barrel) center() physics.Vec2 {
	return physics.V(b.body.Pos.X+barrelSize/2, b.body.Pos.Y+barrelSize/2)
}

// spawner emits barrels on a fixed tick interval.
type spawner struct {
	countdown int
	interval  int
}

func newSpawner(interval int) spawner {
	// First barrel comes quickly so the level opens with pressure
	return spawner{interval: interval, countdown: interval / 3}
}

// tick returns a new barrel when the interval elapses.
func (s *spawner) tick(def *levelDef, fieldW float64) *barrel {
	s.countdown--
	if s.countdown > 0 {
		return nil
	}
	s.countdown = s.interval

	// Roll toward the open side of the top girder
	dir := 1.0
	if def.spawn.X > fieldW/2 {
		dir = -1.0
	}
	return &barrel{
		body: physics.Body{
			Pos:    physics.V(def.spawn.X, def.spawn.Y-barrelSize),
			Radius: barrelRadius,
			W:      barrelSize,
			H:      barrelSize,
		},
		dir: dir,
	}
}

// update advances the barrel one tick. Returns false when the barrel has
// left the field and should be removed.
func (b *barrel) update(def *levelDef, cfg config.GirdersConfig, rng *rand.Rand, speed, fieldW, fieldH float64) bool {
	if b.descending {
		b.body.Pos.Y += cfg.Physics.ClimbSpeed
		if b.body.Pos.Y+barrelSize >= b.targetY {
			b.body.Pos.Y = b.targetY - barrelSize
			b.descending = false
			b.dir = -b.dir
		}
		return true
	}

	b.body.Vel.X = b.dir * speed
	wasGrounded := b.body.OnGround

	physics.Integrate(&b.body, physics.Environment{
		Gravity:      cfg.Physics.Gravity,
		MaxFallSpeed: cfg.Physics.MaxFallSpeed,
	})

	b.body.OnGround = false
	for _, box := range def.platforms {
		if physics.LandOnBox(&b.body, box) {
			break
		}
	}

	if b.body.OnGround {
		if b.airTicks > 4 {
			// Landed after a real drop: zigzag to the other direction
			b.dir = -b.dir
		}
		b.airTicks = 0
		b.maybeTakeLadder(def, cfg, rng)
	} else {
		if wasGrounded {
			b.airTicks = 0
		}
		b.airTicks++
	}

	if b.body.Pos.X < -barrelSize || b.body.Pos.X > fieldW || b.body.Pos.Y > fieldH+2 {
		return false
	}
	return true
}

// maybeTakeLadder rolls the dice when the barrel passes a ladder top.
func (b *barrel) maybeTakeLadder(def *levelDef, cfg config.GirdersConfig, rng *rand.Rand) {
	c := b.center()
	for _, l := range def.ladders {
		if math.Abs(c.X-l.X) > barrelRadius {
			continue
		}
		if math.Abs((b.body.Pos.Y+barrelSize)-l.Top) > landedSlack {
			continue
		}
		if rng.Float64() < cfg.Barrels.LadderChance {
			b.descending = true
			b.targetY = l.Bottom + 1
			b.body.Pos.X = l.X - barrelSize/2
			b.body.Vel = physics.Vec2{}
		}
		return
	}
}

const landedSlack = 0.6

// hitsTarget reports whether the barrel touched the target box this tick.
// With sweep enabled the whole travel path is sampled at radius steps, so a
// fast barrel cannot pass through the target between ticks; the endpoint
// variant checks only the final position and accepts that tunneling.
func (b *barrel) hitsTarget(prev physics.Vec2, target physics.Box, swept bool) bool {
	cur := b.center()
	if !swept {
		return circleTouchesBox(cur, barrelRadius, target)
	}

	travel := physics.Dist(prev, cur)
	steps := int(math.Ceil(travel/barrelRadius)) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p := prev.Add(cur.Sub(prev).Scale(t))
		if circleTouchesBox(p, barrelRadius, target) {
			return true
		}
	}
	return false
}

// circleTouchesBox tests a circle against an AABB via the clamped closest
// point.
func circleTouchesBox(c physics.Vec2, r float64, box physics.Box) bool {
	nx := math.Max(box.X, math.Min(c.X, box.Right()))
	ny := math.Max(box.Y, math.Min(c.Y, box.Bottom()))
	dx := c.X - nx
	dy := c.Y - ny
	return dx*dx+dy*dy < r*r
}
