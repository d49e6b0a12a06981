// Package minigolf implements a top-down minigolf course. Shots are aimed
// with an angle and power gauge; the ball rolls out under friction and banks
// off walls until it stops or drops into the cup. A ball crossing the cup
// above the sink speed skips straight over it.
package minigolf

import (
	"fmt"
	"math"

	"github.com/quarterslot/quarters/internal/config"
	"github.com/quarterslot/quarters/internal/core"
	"github.com/quarterslot/quarters/internal/physics"
	"github.com/quarterslot/quarters/internal/registry"
)

// Visual characters for rendering
const (
	BallChar = '●'
	CupChar  = '◯'
	FlagChar = '⚑'
	WallChar = '▓'
	AimChar  = '·'
)

// wallHalfThickness is the collision half width of course wall segments.
const wallHalfThickness = 0.5

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset, _ = config.ParsePreset(preset)
}

// Game implements the Minigolf game logic.
type Game struct {
	course  []hole
	holeIdx int

	ball    physics.Body
	rolling bool
	rest    physics.Vec2 // where the last shot was taken from

	aimAngle float64
	power    float64

	strokes      int // current hole
	totalStrokes int
	warningTicks int

	phase     core.Phase
	score     int
	tickCount int

	runtime core.RuntimeConfig
	cfg     config.MinigolfConfig
}

// New creates a new Minigolf game instance.
func New() *Game {
	cfg, _ := config.LoadMinigolf(configPath)
	config.ApplyMinigolfPreset(&cfg, difficultyPreset)
	return &Game{cfg: cfg, phase: core.PhaseMenu}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "minigolf"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Minigolf"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = 60
	}
	w := core.Max(cfg.ScreenW, 40)
	h := core.Max(cfg.ScreenH-1, 15)
	g.course = buildCourse(w, h)
	g.holeIdx = 0
	g.score = 0
	g.totalStrokes = 0
	g.tickCount = 0
	g.phase = core.PhasePlaying
	g.startHole()
}

// startHole places the ball on the tee and resets the aim.
func (g *Game) startHole() {
	h := g.currentHole()
	g.ball = physics.Body{
		Pos:    h.tee,
		Radius: g.cfg.Physics.BallRadius,
	}
	g.rest = h.tee
	g.rolling = false
	g.aimAngle = angleTo(h.tee, h.cup)
	g.power = g.cfg.Shot.MaxPower / 2
	g.strokes = 0
	g.warningTicks = 0
}

func (g *Game) currentHole() *hole {
	return &g.course[g.holeIdx]
}

func angleTo(from, to physics.Vec2) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.phase.Terminal() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		if g.phase == core.PhasePlaying {
			g.phase = core.PhasePaused
		} else {
			g.phase = core.PhasePlaying
		}
	}
	if g.phase == core.PhasePaused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	if g.warningTicks > 0 {
		g.warningTicks--
	}

	if g.rolling {
		g.stepBall()
	} else {
		g.handleAim(in)
	}

	return core.StepResult{State: g.State()}
}

// handleAim adjusts angle and power, and fires on confirm.
func (g *Game) handleAim(in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		g.aimAngle -= g.cfg.Shot.AngleStep
	}
	if in.Has(core.ActionRight) {
		g.aimAngle += g.cfg.Shot.AngleStep
	}
	if in.Has(core.ActionUp) {
		g.power = math.Min(g.power+g.cfg.Shot.PowerStep, g.cfg.Shot.MaxPower)
	}
	if in.Has(core.ActionDown) {
		g.power = math.Max(g.power-g.cfg.Shot.PowerStep, g.cfg.Shot.PowerStep)
	}
	if in.Has(core.ActionPrimary) || in.Has(core.ActionJump) {
		g.shoot()
	}
}

// shoot applies the shot impulse and starts the roll.
func (g *Game) shoot() {
	g.rest = g.ball.Pos
	g.ball.Vel = physics.V(math.Cos(g.aimAngle), math.Sin(g.aimAngle)).Scale(g.power)
	g.rolling = true
	g.strokes++
	g.totalStrokes++
}

// stepBall advances the rolling ball one tick: swept wall collision, then
// friction, then cup and stop checks. Walls are always resolved by sweep;
// a golf ball at full power crosses several cells per tick and an endpoint
// test would let it through thin rails.
func (g *Game) stepBall() {
	h := g.currentHole()

	pos, vel, _ := physics.SweepCircle(
		g.ball.Pos, g.ball.Vel, g.ball.Radius,
		h.walls, wallHalfThickness, g.cfg.Physics.Bounce)
	g.ball.Pos = pos
	g.ball.Vel = vel.Scale(g.cfg.Physics.Friction)

	if g.checkCup() {
		return
	}
	g.checkBounds()

	if g.ball.Vel.Len() < g.cfg.Physics.MinSpeed {
		g.ball.Vel = physics.Vec2{}
		g.rolling = false
	}
}

// checkCup sinks the ball when it is over the cup and slow enough; a fast
// pass only raises the warning banner.
func (g *Game) checkCup() bool {
	h := g.currentHole()
	if !physics.CirclesOverlap(g.ball.Pos, 0, h.cup, g.cfg.Cup.SinkRadius) {
		return false
	}
	if g.ball.Vel.Len() > g.cfg.Cup.MaxSinkSpeed {
		g.warningTicks = g.cfg.Cup.WarningTicks
		return false
	}
	g.sinkBall()
	return true
}

// sinkBall scores the finished hole and advances the course.
func (g *Game) sinkBall() {
	g.score += g.holePoints(g.strokes, g.currentHole().par)
	g.holeIdx++
	if g.holeIdx >= len(g.course) {
		// Stay on the last hole so rendering has geometry to show
		g.holeIdx = len(g.course) - 1
		g.phase = core.PhaseComplete
		return
	}
	g.startHole()
}

// holePoints converts a finished hole into points. Par pays the base;
// every stroke under par adds a bonus, every stroke over subtracts one,
// and even a disaster hole is worth a single point.
func (g *Game) holePoints(strokes, par int) int {
	pts := g.cfg.Scoring.HoleBase + (par-strokes)*g.cfg.Scoring.ParBonus
	return core.Max(pts, 1)
}

// checkBounds drags an escaped ball back to its last rest with a penalty
// stroke. Border walls make escape rare, but a corner seam at high speed
// can still leak.
func (g *Game) checkBounds() {
	w := float64(core.Max(g.runtime.ScreenW, 40))
	h := float64(core.Max(g.runtime.ScreenH-1, 15))
	p := g.ball.Pos
	if p.X >= -1 && p.X <= w+1 && p.Y >= -1 && p.Y <= h+1 {
		return
	}
	g.strokes += g.cfg.Scoring.PenaltyStroke
	g.totalStrokes += g.cfg.Scoring.PenaltyStroke
	g.ball.Pos = g.rest
	g.ball.Vel = physics.Vec2{}
	g.rolling = false
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	const fieldTop = 1
	h := g.currentHole()

	for _, seg := range h.walls {
		drawSegment(dst, seg, fieldTop)
	}

	dst.SetColored(int(h.cup.X), int(h.cup.Y)+fieldTop, CupChar, core.ColorGray)
	dst.SetColored(int(h.cup.X), int(h.cup.Y)-1+fieldTop, FlagChar, core.ColorBrightRed)

	if !g.rolling {
		g.drawAim(dst, fieldTop)
	}
	dst.SetColored(int(g.ball.Pos.X), int(g.ball.Pos.Y)+fieldTop, BallChar, core.ColorBrightWhite)

	g.renderHUD(dst)

	if g.warningTicks > 0 {
		dst.DrawTextCentered(2, "TOO FAST!")
	}

	switch g.phase {
	case core.PhasePaused:
		dst.DrawTextCentered(dst.Height()/2, "** PAUSED **")
	case core.PhaseComplete:
		dst.DrawTextCentered(dst.Height()/2, "COURSE COMPLETE!")
		dst.DrawTextCentered(dst.Height()/2+1,
			fmt.Sprintf("Score: %d  Strokes: %d (par %d)", g.score, g.totalStrokes, coursePar(g.course)))
	}
}

// drawAim sketches the shot direction with a dotted line scaled by power.
func (g *Game) drawAim(dst *core.Screen, fieldTop int) {
	dir := physics.V(math.Cos(g.aimAngle), math.Sin(g.aimAngle))
	length := 2 + g.power/g.cfg.Shot.MaxPower*6
	for d := 1.0; d <= length; d++ {
		p := g.ball.Pos.Add(dir.Scale(d))
		dst.SetColored(int(p.X), int(p.Y)+fieldTop, AimChar, core.ColorYellow)
	}
}

// drawSegment rasterizes a wall segment by sampling along its length.
func drawSegment(dst *core.Screen, seg physics.Segment, fieldTop int) {
	length := physics.Dist(seg.A, seg.B)
	steps := int(length*2) + 1
	dir := seg.B.Sub(seg.A).Scale(1 / float64(steps))
	p := seg.A
	for i := 0; i <= steps; i++ {
		dst.SetColored(int(p.X), int(p.Y)+fieldTop, WallChar, core.ColorGreen)
		p = p.Add(dir)
	}
}

// renderHUD draws hole number, par, stroke and score counters.
func (g *Game) renderHUD(dst *core.Screen) {
	h := g.currentHole()
	left := fmt.Sprintf(" Hole %d/%d  Par %d ", g.holeIdx+1, len(g.course), h.par)
	right := fmt.Sprintf(" Strokes: %d  Score: %d  Power: %.1f ", g.strokes, g.score, g.power)
	dst.DrawText(1, 0, left)
	dst.DrawText(dst.Width()-len(right)-1, 0, right)
}

// State returns the current session state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score: g.score,
		Level: g.holeIdx + 1,
		Phase: g.phase,
	}
}

// Register the game with the registry
func init() {
	registry.Register("minigolf", func() registry.Game {
		return New()
	})
}
