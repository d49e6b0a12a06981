package barrier

import (
	"testing"

	"github.com/quarterslot/quarters/internal/core"
	"github.com/quarterslot/quarters/internal/physics"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     12345,
	}
}

func TestGameDeterminism(t *testing.T) {
	// Given the same seed and inputs, two runs must produce identical state
	cfg := testConfig()

	inputSequence := make([]core.InputFrame, 300)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		switch {
		case i == 20:
			inputSequence[i].Set(core.ActionPrimary) // start a build
		case i%7 < 3:
			inputSequence[i].Set(core.ActionRight)
		case i%7 == 3:
			inputSequence[i].Set(core.ActionRotate)
		default:
			inputSequence[i].Set(core.ActionDown)
		}
	}

	g1 := New()
	g1.Reset(cfg)
	for _, in := range inputSequence {
		g1.Step(in)
	}
	snap1 := g1.Snapshot()

	g2 := New()
	g2.Reset(cfg)
	for _, in := range inputSequence {
		g2.Step(in)
	}
	snap2 := g2.Snapshot()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
}

func TestFreshFieldCapturesNothing(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	if frac := g.CapturedFraction(); frac != 0 {
		t.Errorf("fresh field should have 0%% captured, got %.2f", frac)
	}
}

func TestBisectingWallCapturesFarSide(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// Shrink to a known field and put every ball on the left half
	g.field = newField(20, 10)
	for _, b := range g.balls {
		b.Pos = physics.V(3, 5)
	}
	for y := 0; y < g.field.h; y++ {
		g.field.set(10, y, cellWall)
	}

	g.evaluateCapture()

	for y := 0; y < g.field.h; y++ {
		for x := 11; x < g.field.w; x++ {
			if g.field.at(x, y) != cellFilled {
				t.Fatalf("cell (%d,%d) on the ball-free side not captured", x, y)
			}
		}
		if g.field.at(3, y) == cellFilled {
			t.Fatalf("cell (3,%d) on the ball side wrongly captured", y)
		}
	}

	captured, total := g.field.counts()
	want := 10 + 9*10 // wall column plus the sealed half
	if captured != want || total != 200 {
		t.Errorf("counts = (%d, %d), want (%d, 200)", captured, total, want)
	}
}

func TestCaptureAwardsCellPoints(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.field = newField(20, 10)
	for _, b := range g.balls {
		b.Pos = physics.V(3, 5)
	}
	for y := 0; y < g.field.h; y++ {
		g.field.set(10, y, cellWall)
	}
	g.score = 0

	g.evaluateCapture()

	want := 90 * g.cfg.Capture.CellPoints
	if g.score != want {
		t.Errorf("score = %d, want %d for 90 captured cells", g.score, want)
	}
}

func TestBallReflectsOffBounds(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	b := &physics.Body{
		Pos:    physics.V(float64(g.field.w) - 1.1, 5),
		Vel:    physics.V(2, 0),
		Radius: g.cfg.Physics.BallRadius,
	}
	g.stepBall(b)

	if b.Vel.X >= 0 {
		t.Errorf("ball should reflect off the right bound, vx=%.2f", b.Vel.X)
	}
	if b.Pos.X+b.Radius > float64(g.field.w) {
		t.Errorf("ball left the field: x=%.2f", b.Pos.X)
	}
}

func TestBallReflectsOffWall(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.field = newField(20, 10)
	for y := 0; y < g.field.h; y++ {
		g.field.set(10, y, cellWall)
	}

	b := &physics.Body{
		Pos:    physics.V(9.4, 5),
		Vel:    physics.V(1, 0),
		Radius: g.cfg.Physics.BallRadius,
	}
	g.stepBall(b)

	if b.Vel.X >= 0 {
		t.Errorf("ball should reflect off the wall column, vx=%.2f", b.Vel.X)
	}
}

func TestBallDestroysBuildAndCostsLife(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	g.balls = []*physics.Body{{
		Pos:    physics.V(5, 5),
		Radius: g.cfg.Physics.BallRadius,
	}}
	g.build = build{active: true, x: 5, y: 5, vertical: true}
	livesBefore := g.lives

	g.checkBuildHit()

	if g.build.active {
		t.Error("build should be destroyed on contact")
	}
	if g.lives != livesBefore-1 {
		t.Errorf("lives = %d, want %d", g.lives, livesBefore-1)
	}
}

func TestLastLifeEndsGame(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	g.lives = 1
	g.balls = []*physics.Body{{Pos: physics.V(5, 5)}}
	g.build = build{active: true, x: 5, y: 5, vertical: true}

	g.checkBuildHit()

	if g.phase != core.PhaseGameOver {
		t.Errorf("phase = %v, want game over after last life", g.phase)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	if g.State().Phase != core.PhasePaused {
		t.Fatalf("phase = %v, want paused", g.State().Phase)
	}

	before := g.Snapshot()
	empty := core.NewInputFrame()
	for i := 0; i < 10; i++ {
		g.Step(empty)
	}
	after := g.Snapshot()

	if before.Hash() != after.Hash() {
		t.Error("state advanced while paused")
	}

	g.Step(pause)
	if g.State().Phase != core.PhasePlaying {
		t.Errorf("phase = %v, want playing after unpause", g.State().Phase)
	}
}

func TestTimerExpiryEndsGame(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.ticksLeft = 1

	g.Step(core.NewInputFrame())

	if g.State().Phase != core.PhaseGameOver {
		t.Errorf("phase = %v, want game over on timer expiry", g.State().Phase)
	}
}

func TestLevelAdvanceAddsBall(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	ballsAtOne := len(g.balls)

	g.level = 2
	g.startLevel()

	if len(g.balls) != ballsAtOne+1 {
		t.Errorf("level 2 should have %d balls, got %d", ballsAtOne+1, len(g.balls))
	}
	if g.lives != 3 {
		t.Errorf("level 2 lives = %d, want 3", g.lives)
	}
}

func TestResetRestoresInitialState(t *testing.T) {
	cfg := testConfig()
	g := New()
	g.Reset(cfg)

	g.score = 999
	g.phase = core.PhaseGameOver
	g.Reset(cfg)

	st := g.State()
	if st.Score != 0 || st.Level != 1 || st.Phase != core.PhasePlaying {
		t.Errorf("reset state = %+v, want score 0, level 1, playing", st)
	}
}

func TestRenderDoesNotPanic(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	g.phase = core.PhasePaused
	g.Render(screen)
	g.phase = core.PhaseGameOver
	g.Render(screen)
}
