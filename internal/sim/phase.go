package sim

// Phase is the top-level lifecycle state.
type Phase uint8

const (
	PhaseLoading Phase = iota
	PhaseIntro
	PhaseMenu
	PhasePlaying
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "LOADING"
	case PhaseIntro:
		return "INTRO"
	case PhaseMenu:
		return "MENU"
	case PhasePlaying:
		return "PLAYING"
	case PhaseGameOver:
		return "GAMEOVER"
	default:
		return "UNKNOWN"
	}
}
