package core

import "testing"

func TestPhaseTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    Phase
		to      Phase
		allowed bool
	}{
		{"menu to playing", PhaseMenu, PhasePlaying, true},
		{"menu to paused", PhaseMenu, PhasePaused, false},
		{"playing to paused", PhasePlaying, PhasePaused, true},
		{"paused to playing", PhasePaused, PhasePlaying, true},
		{"paused to gameover", PhasePaused, PhaseGameOver, false},
		{"playing to gameover", PhasePlaying, PhaseGameOver, true},
		{"playing to complete", PhasePlaying, PhaseComplete, true},
		{"gameover to playing (restart)", PhaseGameOver, PhasePlaying, true},
		{"complete to playing (restart)", PhaseComplete, PhasePlaying, true},
		{"gameover to complete", PhaseGameOver, PhaseComplete, false},
		{"complete to menu", PhaseComplete, PhaseMenu, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.from.CanEnter(tc.to); got != tc.allowed {
				t.Errorf("%v.CanEnter(%v) = %v, expected %v", tc.from, tc.to, got, tc.allowed)
			}
		})
	}
}

func TestPhaseTerminal(t *testing.T) {
	if !PhaseGameOver.Terminal() {
		t.Error("GameOver should be terminal")
	}
	if !PhaseComplete.Terminal() {
		t.Error("Complete should be terminal")
	}
	if PhasePlaying.Terminal() || PhasePaused.Terminal() || PhaseMenu.Terminal() {
		t.Error("non-ending phases should not be terminal")
	}
}
