package core

// Phase is the session state shared by every game on the platform.
// The legal transitions are:
//
//	Menu     -> Playing
//	Playing <-> Paused
//	Playing  -> GameOver   (lives exhausted, time expired)
//	Playing  -> Complete   (final level finished)
//	GameOver -> Playing    (restart)
//	Complete -> Playing    (restart)
//
// Entering GameOver or Complete is the point at which a session reports
// its score to the storage collaborator, exactly once.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
	PhaseComplete
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "gameover"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Terminal returns true if the phase ends the session (GameOver or Complete).
func (p Phase) Terminal() bool {
	return p == PhaseGameOver || p == PhaseComplete
}

// CanEnter reports whether a transition from p to next is legal.
func (p Phase) CanEnter(next Phase) bool {
	switch p {
	case PhaseMenu:
		return next == PhasePlaying
	case PhasePlaying:
		return next == PhasePaused || next == PhaseGameOver || next == PhaseComplete
	case PhasePaused:
		return next == PhasePlaying
	case PhaseGameOver, PhaseComplete:
		return next == PhasePlaying
	default:
		return false
	}
}
