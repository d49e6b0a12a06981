// Package blockfall implements a falling-block line-clearing game.
// Pieces descend on a gravity timer that accelerates with level; completed
// rows flash briefly, then collapse and score.
package blockfall

import (
	"fmt"
	"math/rand"

	"github.com/quarterslot/quarters/internal/config"
	"github.com/quarterslot/quarters/internal/core"
	"github.com/quarterslot/quarters/internal/registry"
)

// Visual characters for rendering
const (
	BlockChar = '█'
	FlashChar = '▒'
	GhostChar = '░'
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

// Game implements the Blockfall game logic.
type Game struct {
	board   *board
	current piece
	next    piece
	falling bool

	gravityAccum int
	lockTicks    int

	clearingRows []int
	clearTicks   int

	phase core.Phase
	score int
	lines int
	level int

	tickCount int
	rng       *rand.Rand
	runtime   core.RuntimeConfig
	cfg       config.BlockfallConfig
}

// New creates a new Blockfall game instance.
func New() *Game {
	cfg, _ := config.LoadBlockfall(configPath)
	config.ApplyBlockfallPreset(&cfg, difficultyPreset)
	return &Game{cfg: cfg, phase: core.PhaseMenu}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "blockfall"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Blockfall"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = 60
	}
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.board = newBoard(g.cfg.Board.Width, g.cfg.Board.Height)
	g.score = 0
	g.lines = 0
	g.level = 1
	g.tickCount = 0
	g.gravityAccum = 0
	g.lockTicks = 0
	g.clearingRows = nil
	g.clearTicks = 0
	g.phase = core.PhasePlaying

	g.next = g.randomPiece()
	g.spawn()
}

// randomPiece draws a fresh piece at the spawn position.
func (g *Game) randomPiece() piece {
	return piece{
		kind: pieceKind(g.rng.Intn(int(pieceCount))),
		x:    (g.board.w - 4) / 2,
		y:    -1,
	}
}

// spawn promotes the next piece to the active one. A blocked spawn ends
// the game.
func (g *Game) spawn() {
	g.current = g.next
	g.next = g.randomPiece()
	g.falling = true
	g.gravityAccum = 0
	g.lockTicks = 0

	if g.board.collides(g.current) {
		g.falling = false
		g.phase = core.PhaseGameOver
	}
}

// gravityInterval returns the ticks per gravity step at the current level.
func (g *Game) gravityInterval() int {
	interval := g.cfg.Timing.BaseGravityTicks - (g.level-1)*g.cfg.Timing.GravitySpeedup
	return core.Max(interval, g.cfg.Timing.MinGravityTicks)
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

	if g.clearTicks > 0 {
		g.clearTicks--
		if g.clearTicks == 0 {
			g.board.clearRows(g.clearingRows)
			g.clearingRows = nil
			g.spawn()
		}
		return core.StepResult{State: g.State()}
	}

	g.handleMovement(in)
	if !g.falling {
		return core.StepResult{State: g.State()}
	}

	g.applyGravity(in.Has(core.ActionDown))

	return core.StepResult{State: g.State()}
}

// handleMovement applies horizontal shifts, rotation and hard drop.
func (g *Game) handleMovement(in core.InputFrame) {
	if !g.falling {
		return
	}

	if in.Has(core.ActionLeft) {
		if moved := g.current.shifted(-1, 0); !g.board.collides(moved) {
			g.current = moved
			g.lockTicks = 0
		}
	}
	if in.Has(core.ActionRight) {
		if moved := g.current.shifted(1, 0); !g.board.collides(moved) {
			g.current = moved
			g.lockTicks = 0
		}
	}
	if in.Has(core.ActionRotate) || in.Has(core.ActionUp) {
		g.tryRotate()
	}
	if in.Has(core.ActionJump) {
		g.hardDrop()
	}
}

// tryRotate rotates the piece clockwise, nudging it sideways when the
// in-place rotation collides.
func (g *Game) tryRotate() {
	rotated := g.current.rotated()
	for _, dx := range kickOffsets {
		candidate := rotated.shifted(dx, 0)
		if !g.board.collides(candidate) {
			g.current = candidate
			g.lockTicks = 0
			return
		}
	}
}

// hardDrop slams the piece straight down and locks it immediately.
func (g *Game) hardDrop() {
	dropped := 0
	for !g.board.collides(g.current.shifted(0, 1)) {
		g.current = g.current.shifted(0, 1)
		dropped++
	}
	g.score += dropped * g.cfg.Scoring.HardDrop
	g.lockPiece()
}

// applyGravity advances the fall timer, moving or locking the piece.
func (g *Game) applyGravity(softDrop bool) {
	if g.board.collides(g.current.shifted(0, 1)) {
		// Resting on support: lock delay runs instead of gravity
		g.lockTicks++
		if g.lockTicks >= g.cfg.Timing.LockDelayTicks {
			g.lockPiece()
		}
		return
	}

	step := 1
	if softDrop {
		step = g.cfg.Timing.SoftDropMultiplier
	}
	g.gravityAccum += step
	for g.gravityAccum >= g.gravityInterval() {
		g.gravityAccum -= g.gravityInterval()
		if g.board.collides(g.current.shifted(0, 1)) {
			break
		}
		g.current = g.current.shifted(0, 1)
	}
}

// lockPiece merges the active piece and starts a line clear if any rows
// completed.
func (g *Game) lockPiece() {
	g.board.merge(g.current)
	g.falling = false

	rows := g.board.fullRows()
	if len(rows) == 0 {
		g.spawn()
		return
	}

	g.score += g.lineScore(len(rows)) * g.level
	g.lines += len(rows)
	g.level = g.lines/g.cfg.Scoring.LinesPerLevel + 1
	g.clearingRows = rows
	g.clearTicks = g.cfg.Timing.LineClearTicks
}

// lineScore returns the base score for clearing n rows at once.
func (g *Game) lineScore(n int) int {
	switch n {
	case 1:
		return g.cfg.Scoring.Single
	case 2:
		return g.cfg.Scoring.Double
	case 3:
		return g.cfg.Scoring.Triple
	default:
		return g.cfg.Scoring.Quad
	}
}

// ghost returns the active piece projected to its landing position.
func (g *Game) ghost() piece {
	p := g.current
	for !g.board.collides(p.shifted(0, 1)) {
		p = p.shifted(0, 1)
	}
	return p
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	boardX := (dst.Width() - g.board.w - 2) / 2
	boardY := 1

	dst.DrawBox(core.NewRect(boardX, boardY, g.board.w+2, g.board.h+2))

	clearing := make(map[int]bool, len(g.clearingRows))
	for _, y := range g.clearingRows {
		clearing[y] = true
	}

	for y := 0; y < g.board.h; y++ {
		for x := 0; x < g.board.w; x++ {
			v := g.board.at(x, y)
			if v == 0 {
				continue
			}
			ch := BlockChar
			color := pieceColors[pieceKind(v-1)]
			if clearing[y] {
				ch = FlashChar
				color = core.ColorBrightWhite
			}
			dst.SetColored(boardX+1+x, boardY+1+y, ch, color)
		}
	}

	if g.falling {
		for _, o := range g.ghost().blocks() {
			if o.Y >= 0 {
				dst.SetColored(boardX+1+o.X, boardY+1+o.Y, GhostChar, core.ColorGray)
			}
		}
		for _, o := range g.current.blocks() {
			if o.Y >= 0 {
				dst.SetColored(boardX+1+o.X, boardY+1+o.Y, BlockChar, pieceColors[g.current.kind])
			}
		}
	}

	g.renderSidebar(dst, boardX+g.board.w+4, boardY+1)
	dst.DrawText(1, 0, fmt.Sprintf(" Score: %d ", g.score))

	switch g.phase {
	case core.PhasePaused:
		dst.DrawTextCentered(dst.Height()/2, "** PAUSED **")
	case core.PhaseGameOver:
		dst.DrawTextCentered(dst.Height()/2, "GAME OVER")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// renderSidebar draws the next-piece preview and counters.
func (g *Game) renderSidebar(dst *core.Screen, x, y int) {
	dst.DrawText(x, y, "Next:")
	preview := piece{kind: g.next.kind}
	for _, o := range preview.blocks() {
		dst.SetColored(x+o.X, y+2+o.Y, BlockChar, pieceColors[preview.kind])
	}
	dst.DrawText(x, y+7, fmt.Sprintf("Level: %d", g.level))
	dst.DrawText(x, y+8, fmt.Sprintf("Lines: %d", g.lines))
}

// State returns the current session state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score: g.score,
		Level: g.level,
		Phase: g.phase,
	}
}

// Register the game with the registry
func init() {
	registry.Register("blockfall", func() registry.Game {
		return New()
	})
}
