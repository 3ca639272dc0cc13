package engine

import "testing"

func TestDealSweepsMinimumTail(t *testing.T) {
	cards := FullDeck()
	red0 := -1
	for i, c := range cards {
		if c == Num(SuitRed, 0) {
			red0 = i
		}
	}
	// Draw pops from the end and deals round-robin, so index 7 is the
	// last card dealt to stack 0.
	cards[7], cards[red0] = cards[red0], cards[7]

	b := &Board{}
	b.Deal(&Deck{cards: cards})
	if tail, _ := b.Tail(0); tail != Num(SuitRed, 0) {
		t.Fatalf("stack 0 tail = %s, want Red 0", tail)
	}

	promos := b.Sweep()
	if len(promos) == 0 || promos[0].Card != Num(SuitRed, 0) || promos[0].Stack != 0 {
		t.Fatalf("first promotion = %+v, want Red 0 from stack 0", promos)
	}
	if len(b.Foundations[0]) == 0 || b.Foundations[0][0] != (NumberedCard{Suit: SuitRed, Rank: 0}) {
		t.Errorf("foundation 0 = %v", b.Foundations[0])
	}
	if err := b.CheckInvariants(); err != nil {
		t.Fatal(err)
	}
}

func TestSweepIgnoresTailsAboveBuriedMinimum(t *testing.T) {
	b := &Board{}
	b.Stacks[0] = []Card{Num(SuitRed, 0), Num(SuitGreen, 1)}
	b.Stacks[1] = []Card{Num(SuitRed, 1)}

	if p, ok := b.SweepStep(); ok {
		t.Fatalf("promoted %s while Red 0 is buried", p.Card)
	}
}

func TestSweepOrderAndJoker(t *testing.T) {
	b := &Board{}
	b.Foundations[0] = []NumberedCard{{Suit: SuitRed, Rank: 0}}
	b.Stacks[0] = []Card{Joker}
	b.Stacks[1] = []Card{Num(SuitGreen, 1), Num(SuitGreen, 0)}

	promos := b.Sweep()
	want := []Promotion{
		{Card: Num(SuitGreen, 0), Stack: 1, Foundation: 1},
		{Card: Num(SuitGreen, 1), Stack: 1, Foundation: 1},
		{Card: Joker, Stack: 0, Foundation: -1},
	}
	if len(promos) != len(want) {
		t.Fatalf("promotions = %+v, want %+v", promos, want)
	}
	for i := range want {
		if promos[i] != want[i] {
			t.Errorf("promotion %d = %+v, want %+v", i, promos[i], want[i])
		}
	}
	if b.Joker == nil || !b.Joker.IsJoker() {
		t.Error("joker slot should hold the joker")
	}
	if _, ok := b.SweepStep(); ok {
		t.Error("sweep should be at fixpoint")
	}
}

func TestSweepPrefersNumberedOverJoker(t *testing.T) {
	b := &Board{}
	b.Stacks[0] = []Card{Joker}
	b.Stacks[1] = []Card{Num(SuitBlack, 0)}

	p, ok := b.SweepStep()
	if !ok || p.Card != Num(SuitBlack, 0) {
		t.Fatalf("first step = %+v, %v; want Black 0", p, ok)
	}
	if b.Joker != nil {
		t.Error("joker should wait for the next step")
	}
}

func TestSweepUtilityCountsTowardMinimum(t *testing.T) {
	b := &Board{}
	b.Foundations[2] = []NumberedCard{{Suit: SuitBlack, Rank: 0}}
	b.Stacks[0] = []Card{Num(SuitBlack, 2)}
	sc := CardSlot(Num(SuitBlack, 1))
	b.Utility[0] = &sc

	if p, ok := b.SweepStep(); ok {
		t.Fatalf("promoted %s while Black 1 sits in a utility slot", p.Card)
	}
}

func TestSweepFallsBackToAcceptingFoundation(t *testing.T) {
	b := &Board{}
	// Player put Red 0 on the green pile.
	b.Foundations[1] = []NumberedCard{{Suit: SuitRed, Rank: 0}}
	b.Stacks[0] = []Card{Num(SuitRed, 1)}

	p, ok := b.SweepStep()
	if !ok || p.Foundation != 1 {
		t.Fatalf("step = %+v, %v; want Red 1 onto foundation 1", p, ok)
	}
	if len(b.Foundations[0]) != 0 {
		t.Errorf("foundation 0 = %v, want empty", b.Foundations[0])
	}
}

func TestSweepIdempotent(t *testing.T) {
	for seed := uint64(100); seed < 120; seed++ {
		b := NewBoard(SeededConfig(seed).Rand)
		before := b.Clone()
		if promos := b.Sweep(); len(promos) != 0 {
			t.Fatalf("seed %d: second sweep promoted %v", seed, promos)
		}
		if !b.Equal(before) {
			t.Fatalf("seed %d: second sweep changed the board", seed)
		}
	}
}
