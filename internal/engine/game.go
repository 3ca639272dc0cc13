package engine

import "errors"

var ErrNotStarted = errors.New("game not started")

// Game wraps a board with the move pipeline: validate, execute, sweep.
type Game struct {
	Board  *Board     `json:"-"`
	Config GameConfig `json:"-"`

	Phase GamePhase `json:"phase"`
	Moves int       `json:"moves"`
}

// NewGame creates a game that has not been dealt yet.
func NewGame(config GameConfig) *Game {
	if config.Rand == nil {
		config.Rand = DefaultConfig().Rand
	}
	return &Game{Config: config, Phase: PhaseDealing}
}

// Start deals the board and runs the first sweep.
func (g *Game) Start() []Event {
	b, promos := deal(g.Config.Rand)
	g.Board = b
	g.Moves = 0
	g.Phase = PhasePlaying

	events := []Event{{Type: EventDealt, Data: map[string]interface{}{"cards": DeckSize}}}
	events = append(events, sweepEvents(promos)...)
	return append(events, g.checkWon()...)
}

// Apply is the single entry point for moves. A rejected move returns the
// rejection and leaves the board unchanged.
func (g *Game) Apply(m Move) ([]Event, error) {
	switch g.Phase {
	case PhaseDealing:
		return nil, ErrNotStarted
	case PhaseWon:
		return nil, ErrGameOver
	}

	v, err := g.Board.Validate(m)
	if err != nil {
		return nil, err
	}
	g.Board.Execute(v)
	g.Moves++

	var events []Event
	if m.Dst.Kind == LocationButton {
		events = append(events, Event{Type: EventJacksCleared, Data: map[string]interface{}{
			"suit": m.Dst.Suit.String(),
		}})
	} else {
		events = append(events, Event{Type: EventCardMoved, Data: map[string]interface{}{
			"src": m.Src, "dst": m.Dst,
		}})
	}
	events = append(events, sweepEvents(g.Board.Sweep())...)
	return append(events, g.checkWon()...), nil
}

func (g *Game) checkWon() []Event {
	if g.Phase != PhasePlaying || !g.Board.Cleared() {
		return nil
	}
	g.Phase = PhaseWon
	return []Event{
		{Type: EventGameWon, Data: map[string]interface{}{"moves": g.Moves}},
		{Type: EventPhaseChange, Data: map[string]interface{}{"phase": PhaseWon.String()}},
	}
}

// Score returns the progress summary, or a zero entry before the deal.
func (g *Game) Score() ScoreEntry {
	if g.Board == nil {
		return ScoreEntry{}
	}
	return g.Board.Score()
}
