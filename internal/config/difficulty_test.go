package config

import "testing"

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in     string
		preset DifficultyPreset
		ok     bool
	}{
		{"", "", true},
		{"easy", DifficultyEasy, true},
		{"normal", DifficultyNormal, true},
		{"hard", DifficultyHard, true},
		{"fixed", "", false},
		{"Easy", "", false},
		{"nrmal", "", false},
	}

	for _, tt := range tests {
		preset, ok := ParsePreset(tt.in)
		if preset != tt.preset || ok != tt.ok {
			t.Errorf("ParsePreset(%q) = (%q, %v), want (%q, %v)",
				tt.in, preset, ok, tt.preset, tt.ok)
		}
	}
}

func TestApplyBarrierPresetScalesSpeed(t *testing.T) {
	base := DefaultBarrierConfig()

	easy := DefaultBarrierConfig()
	ApplyBarrierPreset(&easy, DifficultyEasy)
	if easy.Physics.BallSpeed >= base.Physics.BallSpeed {
		t.Errorf("easy ball speed %v should be below default %v",
			easy.Physics.BallSpeed, base.Physics.BallSpeed)
	}

	hard := DefaultBarrierConfig()
	ApplyBarrierPreset(&hard, DifficultyHard)
	if hard.Physics.BallSpeed <= base.Physics.BallSpeed {
		t.Errorf("hard ball speed %v should be above default %v",
			hard.Physics.BallSpeed, base.Physics.BallSpeed)
	}
}

func TestApplyPresetNoneLeavesConfigUntouched(t *testing.T) {
	base := DefaultGirdersConfig()
	cfg := DefaultGirdersConfig()
	ApplyGirdersPreset(&cfg, "")

	if cfg.Barrels.Speed != base.Barrels.Speed ||
		cfg.Barrels.SpawnIntervalTicks != base.Barrels.SpawnIntervalTicks ||
		cfg.Gameplay.Lives != base.Gameplay.Lives {
		t.Errorf("empty preset changed config: %+v != %+v", cfg, base)
	}
}
