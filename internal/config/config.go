// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
//
// Several values here look oddly specific (ladder exit tolerances, the golf
// sink-speed cap). They are hand-tuned gameplay constants; do not re-derive
// them from first principles.
package config

// BarrierConfig contains all configuration for the Barrier game.
type BarrierConfig struct {
	Physics  BarrierPhysics  `yaml:"physics"`
	Capture  BarrierCapture  `yaml:"capture"`
	Gameplay BarrierGameplay `yaml:"gameplay"`
}

// BarrierPhysics defines ball movement parameters.
type BarrierPhysics struct {
	BallSpeed  float64 `yaml:"ball_speed"`  // cells per tick
	BallRadius float64 `yaml:"ball_radius"` // cells
	Bounce     float64 `yaml:"bounce"`      // wall bounce coefficient
}

// BarrierCapture defines the flood-fill win condition.
type BarrierCapture struct {
	WinFraction  float64 `yaml:"win_fraction"`   // captured fraction to clear a level
	CellPoints   int     `yaml:"cell_points"`    // score per captured cell
	WallPoints   int     `yaml:"wall_points"`    // score per completed wall cell
	BonusPerCell int     `yaml:"bonus_per_cell"` // score per cell above the threshold
}

// BarrierGameplay defines lives, timing and wall building.
type BarrierGameplay struct {
	WallGrowPerTick int `yaml:"wall_grow_per_tick"` // cells each arm grows per tick
	LevelTimeSecs   int `yaml:"level_time_secs"`    // time limit per level
	StartBalls      int `yaml:"start_balls"`        // balls on level 1
}

// BlockfallConfig contains all configuration for the Blockfall game.
type BlockfallConfig struct {
	Board   BlockfallBoard   `yaml:"board"`
	Timing  BlockfallTiming  `yaml:"timing"`
	Scoring BlockfallScoring `yaml:"scoring"`
}

// BlockfallBoard defines the playfield dimensions.
type BlockfallBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BlockfallTiming defines gravity and delay timers, all in logical ticks.
type BlockfallTiming struct {
	BaseGravityTicks   int `yaml:"base_gravity_ticks"`   // ticks per row at level 1
	GravitySpeedup     int `yaml:"gravity_speedup"`      // ticks removed per level
	MinGravityTicks    int `yaml:"min_gravity_ticks"`    // gravity floor
	LockDelayTicks     int `yaml:"lock_delay_ticks"`     // grace before a piece commits
	LineClearTicks     int `yaml:"line_clear_ticks"`     // flash delay on a clear
	SoftDropMultiplier int `yaml:"soft_drop_multiplier"` // gravity divisor while held
}

// BlockfallScoring defines line-clear base values, multiplied by level.
type BlockfallScoring struct {
	Single        int `yaml:"single"`
	Double        int `yaml:"double"`
	Triple        int `yaml:"triple"`
	Quad          int `yaml:"quad"`
	HardDrop      int `yaml:"hard_drop"` // per row dropped
	LinesPerLevel int `yaml:"lines_per_level"`
}

// GirdersConfig contains all configuration for the Girders game.
type GirdersConfig struct {
	Physics  GirdersPhysics  `yaml:"physics"`
	Ladders  GirdersLadders  `yaml:"ladders"`
	Barrels  GirdersBarrels  `yaml:"barrels"`
	Gameplay GirdersGameplay `yaml:"gameplay"`
}

// GirdersPhysics defines player movement parameters.
type GirdersPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	MoveSpeed    float64 `yaml:"move_speed"`
	ClimbSpeed   float64 `yaml:"climb_speed"`
}

// GirdersLadders holds the empirically tuned ladder tolerances.
type GirdersLadders struct {
	SnapTolerance float64 `yaml:"snap_tolerance"` // horizontal reach to grab a ladder
	ExitTolerance float64 `yaml:"exit_tolerance"` // "at ladder top" epsilon
}

// GirdersBarrels defines barrel spawning and collision fidelity.
type GirdersBarrels struct {
	SpawnIntervalTicks int     `yaml:"spawn_interval_ticks"`
	Speed              float64 `yaml:"speed"`
	LadderChance       float64 `yaml:"ladder_chance"` // chance to roll down a ladder
	// SweptProjectiles selects the higher-fidelity swept collision check for
	// barrels. The endpoint-only variant may visibly tunnel at high speed.
	SweptProjectiles bool `yaml:"swept_projectiles"`
}

// GirdersGameplay defines lives, timing and scoring.
type GirdersGameplay struct {
	Lives         int `yaml:"lives"`
	LevelTimeSecs int `yaml:"level_time_secs"`
	JumpScore     int `yaml:"jump_score"` // points for clearing a barrel
	LevelCount    int `yaml:"level_count"`
}

// MinigolfConfig contains all configuration for the Minigolf game.
type MinigolfConfig struct {
	Physics MinigolfPhysics `yaml:"physics"`
	Cup     MinigolfCup     `yaml:"cup"`
	Shot    MinigolfShot    `yaml:"shot"`
	Scoring MinigolfScoring `yaml:"scoring"`
}

// MinigolfPhysics defines ball friction and wall response.
type MinigolfPhysics struct {
	Friction   float64 `yaml:"friction"`    // per-tick velocity multiplier
	MinSpeed   float64 `yaml:"min_speed"`   // below this the ball stops
	Bounce     float64 `yaml:"bounce"`      // wall bounce coefficient
	BallRadius float64 `yaml:"ball_radius"` // cells
}

// MinigolfCup defines sink detection.
type MinigolfCup struct {
	SinkRadius   float64 `yaml:"sink_radius"`    // cup tolerance radius
	MaxSinkSpeed float64 `yaml:"max_sink_speed"` // faster than this skips over
	WarningTicks int     `yaml:"warning_ticks"`  // "too fast" banner duration
}

// MinigolfShot defines aiming and power.
type MinigolfShot struct {
	AngleStep float64 `yaml:"angle_step"` // radians per input
	PowerStep float64 `yaml:"power_step"`
	MaxPower  float64 `yaml:"max_power"`
}

// MinigolfScoring defines the par-relative point scale.
type MinigolfScoring struct {
	HoleBase      int `yaml:"hole_base"`      // points for finishing a hole at par
	ParBonus      int `yaml:"par_bonus"`      // extra points per stroke under par
	PenaltyStroke int `yaml:"penalty_stroke"` // strokes added for out of bounds
}
