package session

import (
	"errors"
	"testing"

	"solitaire/internal/engine"
)

// newTestTable deals a table and swaps in a small board. Green 0 is buried
// under a jack, so the sweep minimum stays at 0 and no tail is promoted.
func newTestTable(t *testing.T) *Table {
	t.Helper()
	tb, events := NewTable("t1", engine.SeededConfig(5))
	if len(events) == 0 {
		t.Fatal("expected deal events")
	}
	b := &engine.Board{}
	b.Stacks[0] = []engine.Card{engine.Num(engine.SuitRed, 5)}
	b.Stacks[1] = []engine.Card{engine.Num(engine.SuitGreen, 6)}
	b.Stacks[2] = []engine.Card{engine.Num(engine.SuitBlack, 3)}
	b.Stacks[3] = []engine.Card{engine.Num(engine.SuitGreen, 0), engine.Jack(engine.SuitRed)}
	if _, ok := b.Clone().SweepStep(); ok {
		t.Fatal("fixture board is not at its sweep fixpoint")
	}
	tb.game.Board = b
	return tb
}

const cardY = engine.StackTop + 10

func TestClickPairMovesCard(t *testing.T) {
	tb := newTestTable(t)

	if _, err := tb.Click(10, cardY); err == nil {
		t.Fatal("a lone click should not be a move")
	}
	p := tb.Pending()
	if p == nil || p.Kind != engine.LocationStack || p.Index != 0 {
		t.Fatalf("pending = %v, want stack 0", p)
	}

	events, err := tb.Click(85, cardY)
	if err != nil {
		t.Fatalf("second click: %v", err)
	}
	if len(events) == 0 || events[0].Type != engine.EventCardMoved {
		t.Errorf("events = %+v", events)
	}
	if tb.Pending() != nil {
		t.Error("pending should clear after a move")
	}
	if got := tb.game.Board.Stacks[1]; len(got) != 2 || got[1] != engine.Num(engine.SuitRed, 5) {
		t.Errorf("stack 1 = %v", got)
	}
	if tb.game.Moves != 1 {
		t.Errorf("moves = %d", tb.game.Moves)
	}
}

func TestClickFailedPairDropsPending(t *testing.T) {
	tb := newTestTable(t)

	tb.Click(160, cardY)
	_, err := tb.Click(400, 50)
	if !errors.Is(err, engine.ErrFoundationCannotParent) {
		t.Fatalf("got %v, want ErrFoundationCannotParent", err)
	}
	if tb.Pending() != nil {
		t.Error("failed pair should drop the pending click")
	}

	// The next click starts over.
	tb.Click(160, cardY)
	if _, err := tb.Click(10, 50); err != nil {
		t.Fatalf("park black 3: %v", err)
	}
	if c, ok := tb.game.Board.UtilityCard(0); !ok || c != engine.Num(engine.SuitBlack, 3) {
		t.Errorf("utility 0 = %v", tb.game.Board.Utility[0])
	}
}

func TestClickOffCanvas(t *testing.T) {
	tb := newTestTable(t)
	before := tb.game.Board.Clone()

	if _, err := tb.Click(900, 50); !errors.Is(err, engine.ErrBadSourceOrDest) {
		t.Fatalf("got %v, want ErrBadSourceOrDest", err)
	}
	if tb.Pending() != nil {
		t.Error("a click outside the board should not become pending")
	}
	if !tb.game.Board.Equal(before) {
		t.Error("board changed")
	}
}

func TestApplyClearsPending(t *testing.T) {
	tb := newTestTable(t)
	tb.Click(160, cardY)

	_, err := tb.Apply(engine.Move{Src: engine.StackAt(0, cardY), Dst: engine.StackAt(1, cardY)})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if tb.Pending() != nil {
		t.Error("pending should clear after Apply")
	}

	v := tb.View()
	if v.ID != "t1" || v.Board.Moves != 1 || v.Pending != nil {
		t.Errorf("view = %+v", v)
	}
}

func TestNewGameSummarizesPrevious(t *testing.T) {
	tb := newTestTable(t)
	tb.Apply(engine.Move{Src: engine.StackAt(0, cardY), Dst: engine.StackAt(1, cardY)})

	prev, events := tb.NewGame(engine.SeededConfig(6))
	if prev.Won || prev.Moves != 1 || prev.TableID != "t1" {
		t.Errorf("summary = %+v", prev)
	}
	if prev.Finished.Before(prev.Started) {
		t.Error("finished before started")
	}
	if len(events) == 0 || events[0].Type != engine.EventDealt {
		t.Errorf("deal events = %+v", events)
	}
	if s := tb.Summary(); s.Moves != 0 || tb.Won() {
		t.Errorf("fresh game summary = %+v", s)
	}
}

func TestMovesKeepBuriedMinimum(t *testing.T) {
	tb := newTestTable(t)

	// Neither move uncovers Green 0, so nothing sweeps.
	moves := []engine.Move{
		{Src: engine.StackAt(0, cardY), Dst: engine.StackAt(1, cardY)},
		{Src: engine.StackAt(2, cardY), Dst: engine.UtilityAt(0)},
	}
	for _, m := range moves {
		events, err := tb.Apply(m)
		if err != nil {
			t.Fatalf("%s: %v", m, err)
		}
		for _, ev := range events {
			if ev.Type == engine.EventCardSwept {
				t.Errorf("%s swept %v", m, ev.Data)
			}
		}
	}
	for i, f := range tb.game.Board.Foundations {
		if len(f) != 0 {
			t.Errorf("foundation %d = %v", i, f)
		}
	}
}
