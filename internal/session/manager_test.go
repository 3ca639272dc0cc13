package session_test

import (
	"testing"

	"github.com/google/uuid"

	"solitaire/internal/engine"
	"solitaire/internal/session"
)

func TestManager(t *testing.T) {
	m := session.NewManager(func() engine.GameConfig { return engine.SeededConfig(9) })

	a, _ := m.Create()
	b, _ := m.Create()
	if a.ID == b.ID {
		t.Fatal("table IDs should be unique")
	}
	if _, err := uuid.Parse(a.ID); err != nil {
		t.Errorf("table ID %q is not a uuid: %v", a.ID, err)
	}
	if m.Get(a.ID) != a || m.Len() != 2 {
		t.Fatal("lookup failed")
	}

	sum, events := m.Redeal(a)
	if sum.TableID != a.ID || len(events) == 0 {
		t.Errorf("redeal = %+v, %d events", sum, len(events))
	}

	m.Remove(b.ID)
	if m.Get(b.ID) != nil || m.Len() != 1 {
		t.Error("remove failed")
	}
}

func TestManagerDefaultConfig(t *testing.T) {
	m := session.NewManager(nil)
	tb, _ := m.Create()
	score := tb.View().Board.Score
	if n := score.Total + score.Remaining; n != engine.DeckSize {
		t.Errorf("dealt table accounts for %d cards", n)
	}
}
