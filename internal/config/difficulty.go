package config

// DifficultyPreset represents a named difficulty level selected on the CLI.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI string to a preset. The empty string means "no
// preset" and is valid; any other unrecognized string reports ok = false so
// callers can reject typos instead of silently ignoring them.
func ParsePreset(s string) (preset DifficultyPreset, ok bool) {
	switch s {
	case "":
		return "", true
	case "easy", "normal", "hard":
		return DifficultyPreset(s), true
	default:
		return "", false
	}
}

// speedFactor is the multiplier applied to movement speeds per preset.
func speedFactor(p DifficultyPreset) float64 {
	switch p {
	case DifficultyEasy:
		return 0.8
	case DifficultyHard:
		return 1.3
	default:
		return 1.0
	}
}

// ApplyBarrierPreset scales ball speed for the preset.
func ApplyBarrierPreset(cfg *BarrierConfig, p DifficultyPreset) {
	if p == "" {
		return
	}
	cfg.Physics.BallSpeed *= speedFactor(p)
}

// ApplyBlockfallPreset scales gravity for the preset.
func ApplyBlockfallPreset(cfg *BlockfallConfig, p DifficultyPreset) {
	switch p {
	case DifficultyEasy:
		cfg.Timing.BaseGravityTicks += 12
	case DifficultyHard:
		cfg.Timing.BaseGravityTicks -= 12
		if cfg.Timing.BaseGravityTicks < cfg.Timing.MinGravityTicks {
			cfg.Timing.BaseGravityTicks = cfg.Timing.MinGravityTicks
		}
	}
}

// ApplyGirdersPreset scales barrel pressure for the preset.
func ApplyGirdersPreset(cfg *GirdersConfig, p DifficultyPreset) {
	if p == "" {
		return
	}
	cfg.Barrels.Speed *= speedFactor(p)
	switch p {
	case DifficultyEasy:
		cfg.Barrels.SpawnIntervalTicks += 60
		cfg.Gameplay.Lives++
	case DifficultyHard:
		cfg.Barrels.SpawnIntervalTicks -= 60
		if cfg.Barrels.SpawnIntervalTicks < 60 {
			cfg.Barrels.SpawnIntervalTicks = 60
		}
	}
}

// ApplyMinigolfPreset adjusts the sink window for the preset.
func ApplyMinigolfPreset(cfg *MinigolfConfig, p DifficultyPreset) {
	switch p {
	case DifficultyEasy:
		cfg.Cup.SinkRadius *= 1.25
		cfg.Cup.MaxSinkSpeed *= 1.2
	case DifficultyHard:
		cfg.Cup.SinkRadius *= 0.85
		cfg.Cup.MaxSinkSpeed *= 0.85
	}
}
