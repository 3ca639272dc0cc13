package session

import (
	"sync"
	"time"

	"solitaire/internal/engine"
	"solitaire/internal/layout"
)

// Table is one running game plus the click that is waiting for a partner.
type Table struct {
	mu      sync.Mutex
	ID      string
	game    *engine.Game
	pending *engine.Location
	started time.Time
}

// Summary describes a game for the results log.
type Summary struct {
	TableID  string            `json:"table_id"`
	Won      bool              `json:"won"`
	Moves    int               `json:"moves"`
	Score    engine.ScoreEntry `json:"score"`
	Started  time.Time         `json:"started"`
	Finished time.Time         `json:"finished"`
}

// TableView is what clients render.
type TableView struct {
	ID      string           `json:"id"`
	Board   engine.BoardView `json:"board"`
	Pending *engine.Location `json:"pending,omitempty"`
}

// NewTable creates a table with a freshly dealt game.
func NewTable(id string, config engine.GameConfig) (*Table, []engine.Event) {
	t := &Table{ID: id}
	events := t.deal(config)
	return t, events
}

func (t *Table) deal(config engine.GameConfig) []engine.Event {
	t.game = engine.NewGame(config)
	t.pending = nil
	t.started = time.Now()
	return t.game.Start()
}

// Click feeds one canvas click into the two-click move machine. The click
// is paired with the pending one (if any) and tried as a move. On success
// the pending click is cleared. On rejection a lone click becomes pending,
// and a failed pair drops the pending click.
//
// A rejection is returned as the error so callers can show it, but it is
// never fatal.
func (t *Table) Click(x, y int) ([]engine.Event, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	cur, _ := layout.FromPoint(x, y)
	events, err := t.game.Apply(engine.Move{Src: t.pending, Dst: cur})
	switch {
	case err == nil:
		t.pending = nil
	case t.pending == nil:
		t.pending = cur
	default:
		t.pending = nil
	}
	return events, err
}

// Apply runs a fully specified move, bypassing the click machine.
func (t *Table) Apply(m engine.Move) ([]engine.Event, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	events, err := t.game.Apply(m)
	if err == nil {
		t.pending = nil
	}
	return events, err
}

// NewGame replaces the current game and returns the summary of the one
// that was abandoned or finished.
func (t *Table) NewGame(config engine.GameConfig) (Summary, []engine.Event) {
	t.mu.Lock()
	defer t.mu.Unlock()

	prev := t.summary()
	return prev, t.deal(config)
}

// Pending returns a copy of the waiting click, or nil.
func (t *Table) Pending() *engine.Location {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.pending == nil {
		return nil
	}
	p := *t.pending
	return &p
}

func (t *Table) Won() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.game.Phase == engine.PhaseWon
}

func (t *Table) View() TableView {
	t.mu.Lock()
	defer t.mu.Unlock()

	v := TableView{ID: t.ID, Board: t.game.View()}
	if t.pending != nil {
		p := *t.pending
		v.Pending = &p
	}
	return v
}

func (t *Table) Summary() Summary {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.summary()
}

func (t *Table) summary() Summary {
	return Summary{
		TableID:  t.ID,
		Won:      t.game.Phase == engine.PhaseWon,
		Moves:    t.game.Moves,
		Score:    t.game.Score(),
		Started:  t.started,
		Finished: time.Now(),
	}
}
