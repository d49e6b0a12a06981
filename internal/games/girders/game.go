// Package girders implements a platform-climbing game. The player scales a
// tower of girders connected by ladders while barrels zigzag down toward
// them; reaching the goal on the top girder advances the level.
package girders

import (
	"fmt"
	"math/rand"

	"github.com/quarterslot/quarters/internal/config"
	"github.com/quarterslot/quarters/internal/core"
	"github.com/quarterslot/quarters/internal/registry"
)

// Visual characters for rendering
const (
	GirderChar = '═'
	LadderChar = 'H'
	BarrelChar = 'o'
	PlayerHead = '@'
	PlayerBody = '▒'
	GoalChar   = '◎'
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

// Game implements the Girders game logic.
type Game struct {
	def     levelDef
	player  player
	barrels []*barrel
	spawn   spawner

	fieldW int
	fieldH int

	phase     core.Phase
	score     int
	lives     int
	level     int
	ticksLeft int
	tickCount int

	rng     *rand.Rand
	runtime core.RuntimeConfig
	cfg     config.GirdersConfig
}

// New creates a new Girders game instance.
func New() *Game {
	cfg, _ := config.LoadGirders(configPath)
	config.ApplyGirdersPreset(&cfg, difficultyPreset)
	return &Game{cfg: cfg, phase: core.PhaseMenu}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "girders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Girders"
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
	g.lives = g.cfg.Gameplay.Lives
	g.tickCount = 0
	g.phase = core.PhasePlaying
	g.startLevel()
}

// startLevel builds the tower for the current level and resets actors.
func (g *Game) startLevel() {
	g.fieldW = core.Max(g.runtime.ScreenW, 40)
	g.fieldH = core.Max(g.runtime.ScreenH-1, 15)
	g.def = buildLevel(g.level, g.fieldW, g.fieldH)
	g.player = newPlayer(g.def.start)
	g.barrels = nil
	g.spawn = newSpawner(g.cfg.Barrels.SpawnIntervalTicks)
	g.ticksLeft = g.cfg.Gameplay.LevelTimeSecs * g.runtime.TickRate
}

// barrelSpeed is the rolling speed for the current level.
func (g *Game) barrelSpeed() float64 {
	return g.cfg.Barrels.Speed * g.def.speedMult
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

	g.player.update(in, &g.def, g.cfg, float64(g.fieldW))

	if b := g.spawn.tick(&g.def, float64(g.fieldW)); b != nil {
		g.barrels = append(g.barrels, b)
	}
	g.stepBarrels()

	if g.player.feetY() > float64(g.fieldH)+2 {
		g.loseLife()
	}

	if g.phase == core.PhasePlaying && g.player.hitBox().Overlaps(g.def.goal) {
		g.reachGoal()
	}

	g.ticksLeft--
	if g.ticksLeft <= 0 && g.phase == core.PhasePlaying {
		g.phase = core.PhaseGameOver
	}

	return core.StepResult{State: g.State()}
}

// stepBarrels moves every barrel, pays jump-over bonuses and resolves
// player contact.
func (g *Game) stepBarrels() {
	alive := make([]*barrel, 0, len(g.barrels))
	for _, b := range g.barrels {
		prev := b.center()
		if !b.update(&g.def, g.cfg, g.rng, g.barrelSpeed(), float64(g.fieldW), float64(g.fieldH)) {
			continue
		}

		if b.hitsTarget(prev, g.player.hitBox(), g.cfg.Barrels.SweptProjectiles) {
			// loseLife clears the field, leftover barrels included
			g.loseLife()
			return
		}

		g.maybeScoreJump(b)
		alive = append(alive, b)
	}
	g.barrels = alive
}

// maybeScoreJump pays the bonus for clearing a barrel in the air, once per
// barrel.
func (g *Game) maybeScoreJump(b *barrel) {
	if b.jumpScored || g.player.body.OnGround || g.player.body.OnLadder {
		return
	}
	c := b.center()
	dx := c.X - g.player.centerX()
	dy := c.Y - g.player.feetY()
	if dx > -1.5 && dx < 1.5 && dy > 0 && dy < 3 {
		g.score += g.cfg.Gameplay.JumpScore
		b.jumpScored = true
	}
}

// loseLife resets the run or ends the game.
func (g *Game) loseLife() {
	g.lives--
	if g.lives <= 0 {
		g.phase = core.PhaseGameOver
		return
	}
	g.player = newPlayer(g.def.start)
	g.barrels = nil
	g.spawn = newSpawner(g.cfg.Barrels.SpawnIntervalTicks)
}

// reachGoal advances to the next level, or completes the game after the
// last one. Remaining seconds convert to bonus points.
func (g *Game) reachGoal() {
	g.score += g.ticksLeft / g.runtime.TickRate
	g.level++
	if g.level > g.cfg.Gameplay.LevelCount {
		g.phase = core.PhaseComplete
		return
	}
	g.startLevel()
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	const fieldTop = 1

	for _, box := range g.def.platforms {
		y := int(box.Y) + fieldTop
		for x := int(box.X); x < int(box.Right()); x++ {
			dst.SetColored(x, y, GirderChar, core.ColorOrange)
		}
	}

	for _, l := range g.def.ladders {
		x := int(l.X)
		for y := int(l.Top); y <= int(l.Bottom); y++ {
			dst.SetColored(x, y+fieldTop, LadderChar, core.ColorYellow)
		}
	}

	for y := int(g.def.goal.Y); y < int(g.def.goal.Bottom()); y++ {
		for x := int(g.def.goal.X); x < int(g.def.goal.Right()); x++ {
			dst.SetColored(x, y+fieldTop, GoalChar, core.ColorBrightGreen)
		}
	}

	for _, b := range g.barrels {
		c := b.center()
		dst.SetColored(int(c.X), int(c.Y)+fieldTop, BarrelChar, core.ColorBrightRed)
	}

	px := int(g.player.centerX())
	py := int(g.player.body.Pos.Y)
	dst.SetColored(px, py+fieldTop, PlayerHead, core.ColorBrightWhite)
	dst.SetColored(px, py+1+fieldTop, PlayerBody, core.ColorBrightWhite)

	g.renderHUD(dst)

	switch g.phase {
	case core.PhasePaused:
		dst.DrawTextCentered(dst.Height()/2, "** PAUSED **")
	case core.PhaseGameOver:
		dst.DrawTextCentered(dst.Height()/2, "GAME OVER")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case core.PhaseComplete:
		dst.DrawTextCentered(dst.Height()/2, "TOWER CLEARED!")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Final score: %d", g.score))
	}
}

// renderHUD draws score, lives, level and the countdown.
func (g *Game) renderHUD(dst *core.Screen) {
	secs := g.ticksLeft / g.runtime.TickRate
	left := fmt.Sprintf(" Score: %d  Lives: %d ", g.score, g.lives)
	right := fmt.Sprintf(" Lv %d/%d  %d:%02d ",
		g.level, g.cfg.Gameplay.LevelCount, secs/60, secs%60)
	dst.DrawText(1, 0, left)
	dst.DrawText(dst.Width()-len(right)-1, 0, right)
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
	registry.Register("girders", func() registry.Game {
		return New()
	})
}
