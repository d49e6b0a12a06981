package minigolf

import (
	"math"
	"testing"

	"github.com/quarterslot/quarters/internal/core"
	"github.com/quarterslot/quarters/internal/physics"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     99,
	}
}

func TestGameDeterminism(t *testing.T) {
	cfg := testConfig()

	inputSequence := make([]core.InputFrame, 400)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		switch {
		case i == 30 || i == 200:
			inputSequence[i].Set(core.ActionPrimary)
		case i%4 == 0:
			inputSequence[i].Set(core.ActionLeft)
		case i%4 == 1:
			inputSequence[i].Set(core.ActionUp)
		}
	}

	g1 := New()
	g1.Reset(cfg)
	for _, in := range inputSequence {
		g1.Step(in)
	}

	g2 := New()
	g2.Reset(cfg)
	for _, in := range inputSequence {
		g2.Step(in)
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
}

func TestShotStartsRoll(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.aimAngle = 0
	g.power = 2.0

	fire := core.NewInputFrame()
	fire.Set(core.ActionPrimary)
	g.Step(fire)

	if !g.rolling {
		t.Fatal("ball should be rolling after the shot")
	}
	if g.strokes != 1 {
		t.Errorf("strokes = %d, want 1", g.strokes)
	}
	if speed := g.ball.Vel.Len(); math.Abs(speed-2.0) > 1e-9 {
		t.Errorf("shot speed = %.3f, want the full power of 2.0", speed)
	}
}

func TestFrictionStopsBall(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.aimAngle = math.Pi / 2 // straight down, away from the cup
	g.power = 1.0
	g.shoot()

	empty := core.NewInputFrame()
	for i := 0; i < 2000 && g.rolling; i++ {
		g.Step(empty)
	}

	if g.rolling {
		t.Fatal("friction never stopped the ball")
	}
	if g.ball.Vel.Len() != 0 {
		t.Errorf("stopped ball keeps velocity %.3f", g.ball.Vel.Len())
	}
}

func TestFastBallSkipsCup(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	h := g.currentHole()

	g.ball.Pos = h.cup
	g.ball.Vel = physics.V(g.cfg.Cup.MaxSinkSpeed+0.5, 0)
	g.rolling = true
	holeBefore := g.holeIdx

	if g.checkCup() {
		t.Fatal("fast ball must not sink")
	}
	if g.holeIdx != holeBefore {
		t.Error("hole advanced on a skipped cup")
	}
	if g.warningTicks != g.cfg.Cup.WarningTicks {
		t.Errorf("warningTicks = %d, want %d", g.warningTicks, g.cfg.Cup.WarningTicks)
	}
}

func TestSlowBallSinks(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	h := g.currentHole()
	par := h.par

	g.ball.Pos = h.cup
	g.ball.Vel = physics.V(g.cfg.Cup.MaxSinkSpeed/2, 0)
	g.strokes = par

	if !g.checkCup() {
		t.Fatal("slow ball over the cup should sink")
	}
	if g.holeIdx != 1 {
		t.Errorf("holeIdx = %d, want 1", g.holeIdx)
	}
	if g.score != g.cfg.Scoring.HoleBase {
		t.Errorf("score = %d, want base %d for a par hole", g.score, g.cfg.Scoring.HoleBase)
	}
}

func TestHolePoints(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	tests := []struct {
		name    string
		strokes int
		par     int
		want    int
	}{
		{"par", 3, 3, g.cfg.Scoring.HoleBase},
		{"birdie", 2, 3, g.cfg.Scoring.HoleBase + g.cfg.Scoring.ParBonus},
		{"double bogey", 5, 3, g.cfg.Scoring.HoleBase - 2*g.cfg.Scoring.ParBonus},
		{"disaster floors at one", 20, 3, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.holePoints(tt.strokes, tt.par); got != tt.want {
				t.Errorf("holePoints(%d, %d) = %d, want %d", tt.strokes, tt.par, got, tt.want)
			}
		})
	}
}

func TestWallsContainFullPowerShot(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.aimAngle = 0.7
	g.power = g.cfg.Shot.MaxPower
	g.shoot()

	w := float64(core.Max(testConfig().ScreenW, 40))
	h := float64(core.Max(testConfig().ScreenH-1, 15))

	empty := core.NewInputFrame()
	for i := 0; i < 600; i++ {
		g.Step(empty)
		p := g.ball.Pos
		if p.X < -1 || p.X > w+1 || p.Y < -1 || p.Y > h+1 {
			t.Fatalf("ball escaped the course at tick %d: (%.2f, %.2f)", i, p.X, p.Y)
		}
	}
}

func TestLastHoleCompletesCourse(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.holeIdx = len(g.course) - 1
	g.startHole()

	g.ball.Pos = g.currentHole().cup
	g.ball.Vel = physics.Vec2{}
	if !g.checkCup() {
		t.Fatal("resting ball on the cup should sink")
	}

	if g.phase != core.PhaseComplete {
		t.Errorf("phase = %v, want complete after the final hole", g.phase)
	}
}

func TestPowerGaugeClamps(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	up := core.NewInputFrame()
	up.Set(core.ActionUp)
	for i := 0; i < 100; i++ {
		g.Step(up)
	}
	if g.power > g.cfg.Shot.MaxPower {
		t.Errorf("power = %.2f, exceeds max %.2f", g.power, g.cfg.Shot.MaxPower)
	}

	down := core.NewInputFrame()
	down.Set(core.ActionDown)
	for i := 0; i < 100; i++ {
		g.Step(down)
	}
	if g.power < g.cfg.Shot.PowerStep {
		t.Errorf("power = %.2f, below the minimum step", g.power)
	}
}

func TestRenderDoesNotPanic(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	g.warningTicks = 10
	g.Render(screen)
	g.phase = core.PhasePaused
	g.Render(screen)
	g.phase = core.PhaseComplete
	g.Render(screen)
}
