package config

import (
	_ "embed"
)

//go:embed defaults/barrier.yaml
var defaultBarrierYAML []byte

//go:embed defaults/blockfall.yaml
var defaultBlockfallYAML []byte

//go:embed defaults/girders.yaml
var defaultGirdersYAML []byte

//go:embed defaults/minigolf.yaml
var defaultMinigolfYAML []byte

// DefaultBarrierConfig returns the default Barrier configuration.
func DefaultBarrierConfig() BarrierConfig {
	return BarrierConfig{
		Physics: BarrierPhysics{
			BallSpeed:  0.5,
			BallRadius: 0.5,
			Bounce:     1.0,
		},
		Capture: BarrierCapture{
			WinFraction:  0.75,
			CellPoints:   1,
			WallPoints:   2,
			BonusPerCell: 5,
		},
		Gameplay: BarrierGameplay{
			WallGrowPerTick: 1,
			LevelTimeSecs:   120,
			StartBalls:      2,
		},
	}
}

// DefaultBlockfallConfig returns the default Blockfall configuration.
func DefaultBlockfallConfig() BlockfallConfig {
	return BlockfallConfig{
		Board: BlockfallBoard{
			Width:  10,
			Height: 20,
		},
		Timing: BlockfallTiming{
			BaseGravityTicks:   48,
			GravitySpeedup:     4,
			MinGravityTicks:    4,
			LockDelayTicks:     30,
			LineClearTicks:     18,
			SoftDropMultiplier: 6,
		},
		Scoring: BlockfallScoring{
			Single:        100,
			Double:        300,
			Triple:        500,
			Quad:          800,
			HardDrop:      2,
			LinesPerLevel: 10,
		},
	}
}

// DefaultGirdersConfig returns the default Girders configuration.
// The ladder tolerances are hand-tuned; do not derive them from first
// principles.
func DefaultGirdersConfig() GirdersConfig {
	return GirdersConfig{
		Physics: GirdersPhysics{
			Gravity:      0.25,
			JumpImpulse:  -1.35,
			MaxFallSpeed: 2.0,
			MoveSpeed:    0.6,
			ClimbSpeed:   0.35,
		},
		Ladders: GirdersLadders{
			SnapTolerance: 0.6,
			ExitTolerance: 0.35,
		},
		Barrels: GirdersBarrels{
			SpawnIntervalTicks: 180,
			Speed:              0.45,
			LadderChance:       0.3,
			SweptProjectiles:   true,
		},
		Gameplay: GirdersGameplay{
			Lives:         3,
			LevelTimeSecs: 90,
			JumpScore:     100,
			LevelCount:    4,
		},
	}
}

// DefaultMinigolfConfig returns the default Minigolf configuration.
func DefaultMinigolfConfig() MinigolfConfig {
	return MinigolfConfig{
		Physics: MinigolfPhysics{
			Friction:   0.975,
			MinSpeed:   0.04,
			Bounce:     0.8,
			BallRadius: 0.5,
		},
		Cup: MinigolfCup{
			SinkRadius:   0.9,
			MaxSinkSpeed: 1.1,
			WarningTicks: 45,
		},
		Shot: MinigolfShot{
			AngleStep: 0.06,
			PowerStep: 0.15,
			MaxPower:  3.5,
		},
		Scoring: MinigolfScoring{
			HoleBase:      10,
			ParBonus:      5,
			PenaltyStroke: 1,
		},
	}
}
