// Package barrier implements a Jezzball-style area-capture game.
// Balls bounce around a walled field; the player builds walls to fence them
// in. Sealing off at least three quarters of the field clears the level.
package barrier

import (
	"fmt"
	"math/rand"

	"github.com/quarterslot/quarters/internal/config"
	"github.com/quarterslot/quarters/internal/core"
	"github.com/quarterslot/quarters/internal/physics"
	"github.com/quarterslot/quarters/internal/registry"
)

// Visual characters for rendering
const (
	BallChar    = '●'
	WallChar    = '█'
	FilledChar  = '▒'
	BuildChar   = '░'
	CursorVert  = '│'
	CursorHoriz = '─'
)

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

// Game implements the Barrier game logic.
type Game struct {
	field *field
	balls []*physics.Body
	build build

	cursorX  int
	cursorY  int
	vertical bool // next build orientation

	phase     core.Phase
	score     int
	lives     int
	level     int
	ticksLeft int
	tickCount int

	rng     *rand.Rand
	runtime core.RuntimeConfig
	cfg     config.BarrierConfig
}

// New creates a new Barrier game instance.
func New() *Game {
	cfg, _ := config.LoadBarrier(configPath)
	config.ApplyBarrierPreset(&cfg, difficultyPreset)
	return &Game{cfg: cfg, phase: core.PhaseMenu}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "barrier"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Barrier"
}

// fieldSize returns the playable grid dimensions for the current screen.
// Row 0 is the HUD.
func fieldSize(cfg core.RuntimeConfig) (int, int) {
	w := core.Max(cfg.ScreenW, 20)
	h := core.Max(cfg.ScreenH-1, 10)
	return w, h
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = 60
	}
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.score = 0
	g.level = 1
	g.tickCount = 0
	g.phase = core.PhasePlaying
	g.startLevel()
}

// startLevel regenerates the field and balls for the current level.
func (g *Game) startLevel() {
	w, h := fieldSize(g.runtime)
	g.field = newField(w, h)
	g.build = build{}
	g.cursorX = w / 2
	g.cursorY = h / 2
	g.vertical = true
	g.lives = g.level + 1
	g.ticksLeft = g.cfg.Gameplay.LevelTimeSecs * g.runtime.TickRate

	ballCount := g.cfg.Gameplay.StartBalls + g.level - 1
	g.balls = make([]*physics.Body, 0, ballCount)
	speed := g.cfg.Physics.BallSpeed
	for i := 0; i < ballCount; i++ {
		x := 2 + g.rng.Float64()*float64(w-4)
		y := 2 + g.rng.Float64()*float64(h-4)
		vx, vy := speed, speed
		if g.rng.Intn(2) == 0 {
			vx = -vx
		}
		if g.rng.Intn(2) == 0 {
			vy = -vy
		}
		g.balls = append(g.balls, &physics.Body{
			Pos:    physics.V(x, y),
			Vel:    physics.V(vx, vy),
			Radius: g.cfg.Physics.BallRadius,
		})
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.phase.Terminal() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		if g.phase == core.PhasePlaying && g.phase.CanEnter(core.PhasePaused) {
			g.phase = core.PhasePaused
		} else if g.phase == core.PhasePaused {
			g.phase = core.PhasePlaying
		}
	}
	if g.phase == core.PhasePaused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	g.handleCursor(in)

	if g.build.active {
		if g.build.grow(g.field, g.cfg.Gameplay.WallGrowPerTick) {
			placed := g.build.commit(g.field)
			g.score += placed * g.cfg.Capture.WallPoints
			g.evaluateCapture()
		}
	}

	for _, b := range g.balls {
		g.stepBall(b)
	}

	g.checkBuildHit()

	g.ticksLeft--
	if g.ticksLeft <= 0 {
		g.phase = core.PhaseGameOver
	}

	return core.StepResult{State: g.State()}
}

// handleCursor moves the cursor and starts wall builds.
func (g *Game) handleCursor(in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		g.cursorX = core.Clamp(g.cursorX-1, 0, g.field.w-1)
	}
	if in.Has(core.ActionRight) {
		g.cursorX = core.Clamp(g.cursorX+1, 0, g.field.w-1)
	}
	if in.Has(core.ActionUp) {
		g.cursorY = core.Clamp(g.cursorY-1, 0, g.field.h-1)
	}
	if in.Has(core.ActionDown) {
		g.cursorY = core.Clamp(g.cursorY+1, 0, g.field.h-1)
	}
	if in.Has(core.ActionRotate) {
		g.vertical = !g.vertical
	}
	if in.Has(core.ActionPrimary) && !g.build.active && !g.field.solid(g.cursorX, g.cursorY) {
		g.build = build{
			active:   true,
			x:        g.cursorX,
			y:        g.cursorY,
			vertical: g.vertical,
		}
	}
}

// stepBall integrates one ball and resolves it against bounds and walls at
// end of tick only. Tunneling at extreme speed is an accepted limitation of
// this game's resolver.
func (g *Game) stepBall(b *physics.Body) {
	prev := b.Pos
	physics.Integrate(b, physics.Environment{Friction: 1})

	r := b.Radius
	w, h := float64(g.field.w), float64(g.field.h)

	// Field bounds
	if b.Pos.X-r < 0 {
		b.Pos.X = r
		b.Vel.X = -b.Vel.X
	} else if b.Pos.X+r > w {
		b.Pos.X = w - r
		b.Vel.X = -b.Vel.X
	}
	if b.Pos.Y-r < 0 {
		b.Pos.Y = r
		b.Vel.Y = -b.Vel.Y
	} else if b.Pos.Y+r > h {
		b.Pos.Y = h - r
		b.Vel.Y = -b.Vel.Y
	}

	// Committed walls, axis by axis
	cx, cy := int(b.Pos.X), int(b.Pos.Y)
	px, py := int(prev.X), int(prev.Y)
	hitX := g.field.solid(cx, py)
	hitY := g.field.solid(px, cy)
	if hitX {
		b.Pos.X = prev.X
		b.Vel.X = -b.Vel.X
	}
	if hitY {
		b.Pos.Y = prev.Y
		b.Vel.Y = -b.Vel.Y
	}
	if !hitX && !hitY && g.field.solid(cx, cy) {
		// Perfect diagonal corner hit
		b.Pos = prev
		b.Vel = b.Vel.Scale(-1)
	}
}

// checkBuildHit destroys an in-progress wall if a ball touches it.
func (g *Game) checkBuildHit() {
	if !g.build.active {
		return
	}
	for _, b := range g.balls {
		if g.build.covers(int(b.Pos.X), int(b.Pos.Y)) {
			g.build = build{}
			g.lives--
			if g.lives <= 0 {
				g.phase = core.PhaseGameOver
			}
			return
		}
	}
}

// evaluateCapture runs the flood fill from every ball and converts
// unreachable cells into captured territory, then checks the win condition.
func (g *Game) evaluateCapture() {
	seeds := make([]cell, 0, len(g.balls))
	for _, b := range g.balls {
		seeds = append(seeds, cell{int(b.Pos.X), int(b.Pos.Y)})
	}

	marked := reachable(g.field.w, g.field.h, g.field.solid, seeds)

	newly := 0
	for y := 0; y < g.field.h; y++ {
		for x := 0; x < g.field.w; x++ {
			if g.field.at(x, y) == cellEmpty && !marked[y*g.field.w+x] {
				g.field.set(x, y, cellFilled)
				newly++
			}
		}
	}
	g.score += newly * g.cfg.Capture.CellPoints

	captured, total := g.field.counts()
	threshold := int(g.cfg.Capture.WinFraction * float64(total))
	if captured >= threshold {
		g.score += (captured - threshold) * g.cfg.Capture.BonusPerCell
		g.level++
		g.startLevel()
	}
}

// CapturedFraction returns the current captured share of the field.
func (g *Game) CapturedFraction() float64 {
	captured, total := g.field.counts()
	if total == 0 {
		return 0
	}
	return float64(captured) / float64(total)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	const fieldTop = 1

	for y := 0; y < g.field.h; y++ {
		for x := 0; x < g.field.w; x++ {
			switch g.field.at(x, y) {
			case cellWall:
				dst.SetColored(x, y+fieldTop, WallChar, core.ColorBlue)
			case cellFilled:
				dst.SetColored(x, y+fieldTop, FilledChar, core.ColorCyan)
			}
		}
	}

	if g.build.active {
		for _, c := range g.build.cellList() {
			dst.SetColored(c.X, c.Y+fieldTop, BuildChar, core.ColorYellow)
		}
	}

	for _, b := range g.balls {
		dst.SetColored(int(b.Pos.X), int(b.Pos.Y)+fieldTop, BallChar, core.ColorBrightRed)
	}

	cursorChar := CursorHoriz
	if g.vertical {
		cursorChar = CursorVert
	}
	dst.SetColored(g.cursorX, g.cursorY+fieldTop, cursorChar, core.ColorBrightWhite)

	g.renderHUD(dst)

	switch g.phase {
	case core.PhasePaused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case core.PhaseGameOver:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// renderHUD draws the score, lives, level, capture and timer indicators.
func (g *Game) renderHUD(dst *core.Screen) {
	captured, total := g.field.counts()
	pct := 0
	if total > 0 {
		pct = captured * 100 / total
	}
	secs := g.ticksLeft / g.runtime.TickRate

	left := fmt.Sprintf(" Score: %d  Lives: %d ", g.score, g.lives)
	right := fmt.Sprintf(" Lv %d  %d%%/%d%%  %d:%02d ",
		g.level, pct, int(g.cfg.Capture.WinFraction*100), secs/60, secs%60)

	dst.DrawText(1, 0, left)
	dst.DrawText(dst.Width()-len(right)-1, 0, right)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// State returns the current session state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score: g.score,
		Lives: g.lives,
		Level: g.level,
		Phase: g.phase,
	}
}

// Register the game with the registry
func init() {
	registry.Register("barrier", func() registry.Game {
		return New()
	})
}
