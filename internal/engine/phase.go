package engine

// GamePhase represents the current phase of a game.
type GamePhase int

const (
	PhaseDealing GamePhase = iota // board built, first sweep not yet run
	PhasePlaying                  // waiting for moves
	PhaseWon                      // every card promoted or cleared
)

var phaseNames = map[GamePhase]string{
	PhaseDealing: "Dealing",
	PhasePlaying: "Playing",
	PhaseWon:     "Won",
}

func (p GamePhase) String() string {
	if s, ok := phaseNames[p]; ok {
		return s
	}
	return "Unknown"
}
