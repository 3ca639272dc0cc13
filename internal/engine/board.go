package engine

import (
	"fmt"
	"math/rand/v2"
)

// Tableau dimensions.
const (
	NumStacks  = 8
	NumUtility = 3
)

// Board holds every pile on the tableau. Each card of the deck lives in
// exactly one place; cleared jacks live on as a bundle in a utility slot.
type Board struct {
	Joker       *Card
	Utility     [NumUtility]*SlotContent
	Foundations [NumSuits][]NumberedCard
	Stacks      [NumStacks][]Card
}

// NewBoard deals a shuffled deck round-robin onto the play stacks and
// sweeps whatever can be promoted straight away.
func NewBoard(rng *rand.Rand) *Board {
	b, _ := deal(rng)
	return b
}

// deal builds a fresh board and returns the promotions of its first sweep.
func deal(rng *rand.Rand) (*Board, []Promotion) {
	b := &Board{}
	b.Deal(NewDeck(FullDeck(), rng))
	return b, b.Sweep()
}

// Deal empties the deck onto the stacks one card per stack per round.
func (b *Board) Deal(d *Deck) {
	for i := 0; d.Len() > 0; i = (i + 1) % NumStacks {
		c, _ := d.Draw()
		b.Stacks[i] = append(b.Stacks[i], c)
	}
}

// Tail returns the top card of stack i.
func (b *Board) Tail(i int) (Card, bool) {
	s := b.Stacks[i]
	if len(s) == 0 {
		return Card{}, false
	}
	return s[len(s)-1], true
}

// FoundationTop returns the top card of foundation pile i.
func (b *Board) FoundationTop(i int) (NumberedCard, bool) {
	f := b.Foundations[i]
	if len(f) == 0 {
		return NumberedCard{}, false
	}
	return f[len(f)-1], true
}

// FoundationAccepts applies the foundation-parenting rule to pile i.
func (b *Board) FoundationAccepts(i int, n NumberedCard) bool {
	top, ok := b.FoundationTop(i)
	if !ok {
		return n.Rank == 0
	}
	return top.CanParentFoundation(n)
}

// StackAccepts reports whether c may be pushed onto stack i. Empty stacks accept anything.
func (b *Board) StackAccepts(i int, c Card) bool {
	tail, ok := b.Tail(i)
	if !ok {
		return true
	}
	return tail.CanParent(c)
}

// UtilityCard returns the playable card in utility slot i, if any.
func (b *Board) UtilityCard(i int) (Card, bool) {
	sc := b.Utility[i]
	if sc == nil {
		return Card{}, false
	}
	c, err := sc.Card()
	return c, err == nil
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	out := &Board{}
	if b.Joker != nil {
		j := *b.Joker
		out.Joker = &j
	}
	for i, sc := range b.Utility {
		if sc != nil {
			v := *sc
			out.Utility[i] = &v
		}
	}
	for i, f := range b.Foundations {
		out.Foundations[i] = append([]NumberedCard(nil), f...)
	}
	for i, s := range b.Stacks {
		out.Stacks[i] = append([]Card(nil), s...)
	}
	return out
}

// Equal reports whether two boards hold the same cards in the same places.
func (b *Board) Equal(o *Board) bool {
	if (b.Joker == nil) != (o.Joker == nil) {
		return false
	}
	if b.Joker != nil && *b.Joker != *o.Joker {
		return false
	}
	for i := range b.Utility {
		if (b.Utility[i] == nil) != (o.Utility[i] == nil) {
			return false
		}
		if b.Utility[i] != nil && *b.Utility[i] != *o.Utility[i] {
			return false
		}
	}
	for i := range b.Foundations {
		if len(b.Foundations[i]) != len(o.Foundations[i]) {
			return false
		}
		for j := range b.Foundations[i] {
			if b.Foundations[i][j] != o.Foundations[i][j] {
				return false
			}
		}
	}
	for i := range b.Stacks {
		if len(b.Stacks[i]) != len(o.Stacks[i]) {
			return false
		}
		for j := range b.Stacks[i] {
			if b.Stacks[i][j] != o.Stacks[i][j] {
				return false
			}
		}
	}
	return true
}

// Cleared reports whether every card has left the play stacks and utility
// slots, leaving only jack bundles behind.
func (b *Board) Cleared() bool {
	for _, s := range b.Stacks {
		if len(s) > 0 {
			return false
		}
	}
	for _, sc := range b.Utility {
		if sc != nil && !sc.IsBundle() {
			return false
		}
	}
	return true
}

// Census counts every card on the board. A jack bundle counts as its four jacks.
func (b *Board) Census() map[Card]int {
	n := make(map[Card]int, DeckSize)
	if b.Joker != nil {
		n[*b.Joker]++
	}
	for _, sc := range b.Utility {
		if sc == nil {
			continue
		}
		if s, ok := sc.BundleSuit(); ok {
			n[Jack(s)] += JacksPerSuit
			continue
		}
		c, _ := sc.Card()
		n[c]++
	}
	for _, f := range b.Foundations {
		for _, c := range f {
			n[Num(c.Suit, c.Rank)]++
		}
	}
	for _, s := range b.Stacks {
		for _, c := range s {
			n[c]++
		}
	}
	return n
}

// CheckInvariants verifies card conservation and foundation order.
func (b *Board) CheckInvariants() error {
	census := b.Census()
	want := make(map[Card]int, DeckSize)
	for _, c := range FullDeck() {
		want[c]++
	}
	for c, n := range want {
		if census[c] != n {
			return fmt.Errorf("card %s: found %d, want %d", c, census[c], n)
		}
	}
	for c, n := range census {
		if want[c] == 0 {
			return fmt.Errorf("unknown card %s (x%d)", c, n)
		}
	}
	for i, f := range b.Foundations {
		for j, c := range f {
			if c.Rank != j {
				return fmt.Errorf("foundation %d: position %d holds rank %d", i, j, c.Rank)
			}
			if c.Suit != f[0].Suit {
				return fmt.Errorf("foundation %d: mixed suits %s and %s", i, f[0].Suit, c.Suit)
			}
		}
	}
	if b.Joker != nil && !b.Joker.IsJoker() {
		return fmt.Errorf("joker slot holds %s", b.Joker)
	}
	return nil
}
