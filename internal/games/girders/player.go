package girders

import (
	"math"

	"github.com/quarterslot/quarters/internal/config"
	"github.com/quarterslot/quarters/internal/core"
	"github.com/quarterslot/quarters/internal/physics"
)

const (
	playerW = 1.0
	playerH = 2.0
)

// player is the climber. The body is a box; Pos is its top-left corner.
type player struct {
	body    physics.Body
	current ladder // valid while body.OnLadder
}

func newPlayer(start physics.Vec2) player {
	return player{
		body: physics.Body{
			Pos: physics.V(start.X, start.Y-playerH+1),
			W:   playerW,
			H:   playerH,
		},
	}
}

func (p *player) centerX() float64 {
	return p.body.Pos.X + playerW/2
}

func (p *player) feetY() float64 {
	return p.body.Pos.Y + playerH
}

// update advances the player one tick: ladder logic first, then walking,
// jumping and platform landing.
func (p *player) update(in core.InputFrame, def *levelDef, cfg config.GirdersConfig, fieldW float64) {
	if p.body.OnLadder {
		p.climb(in, cfg)
		return
	}

	p.body.Vel.X = 0
	if in.Has(core.ActionLeft) {
		p.body.Vel.X = -cfg.Physics.MoveSpeed
	}
	if in.Has(core.ActionRight) {
		p.body.Vel.X = cfg.Physics.MoveSpeed
	}

	if in.Has(core.ActionJump) && p.body.OnGround {
		p.body.Vel.Y = cfg.Physics.JumpImpulse
		p.body.OnGround = false
	}

	// Grabbing a ladder takes priority over walking off with it
	if in.Has(core.ActionUp) || in.Has(core.ActionDown) {
		if p.tryMount(in.Has(core.ActionDown), def, cfg) {
			return
		}
	}

	physics.Integrate(&p.body, physics.Environment{
		Gravity:      cfg.Physics.Gravity,
		MaxFallSpeed: cfg.Physics.MaxFallSpeed,
	})

	p.body.Pos.X = math.Max(0, math.Min(p.body.Pos.X, fieldW-playerW))

	p.body.OnGround = false
	for _, box := range def.platforms {
		if physics.LandOnBox(&p.body, box) {
			break
		}
	}
}

// tryMount snaps the player onto a ladder when one is within the snap
// tolerance. The tolerance is deliberately generous; exact alignment on a
// cell grid is miserable to play.
func (p *player) tryMount(downward bool, def *levelDef, cfg config.GirdersConfig) bool {
	tol := cfg.Ladders.SnapTolerance
	probeY := p.feetY()
	if downward {
		// Reaching a ladder that starts at the platform under our feet
		probeY += 1
	}

	l, ok := def.ladderNear(p.centerX(), probeY, tol)
	if !ok {
		return false
	}
	if downward && p.feetY() > l.Top+tol {
		return false
	}

	p.body.OnLadder = true
	p.body.OnGround = false
	p.body.Vel = physics.Vec2{}
	p.body.Pos.X = l.X - playerW/2
	p.current = l
	return true
}

// climb moves along the mounted ladder and handles dismounts at either end.
func (p *player) climb(in core.InputFrame, cfg config.GirdersConfig) {
	if in.Has(core.ActionUp) {
		p.body.Pos.Y -= cfg.Physics.ClimbSpeed
	}
	if in.Has(core.ActionDown) {
		p.body.Pos.Y += cfg.Physics.ClimbSpeed
	}
	if in.Has(core.ActionLeft) || in.Has(core.ActionRight) || in.Has(core.ActionJump) {
		p.dismount()
		return
	}

	tol := cfg.Ladders.ExitTolerance
	if p.feetY() <= p.current.Top+tol {
		// Topped out: stand on the girder the ladder serves
		p.body.Pos.Y = p.current.Top - playerH
		p.dismount()
		p.body.OnGround = true
		return
	}
	if p.feetY() >= p.current.Bottom+1-tol {
		p.dismount()
	}
}

func (p *player) dismount() {
	p.body.OnLadder = false
	p.body.Vel = physics.Vec2{}
	p.current = ladder{}
}

// hitBox is the region a barrel must touch to cost a life.
func (p *player) hitBox() physics.Box {
	return p.body.Box()
}
