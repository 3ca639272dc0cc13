package engine

// Promotion records one card moved off the tableau by the autosweep.
// Foundation is -1 when the card went to the joker slot.
type Promotion struct {
	Card       Card `json:"card"`
	Stack      int  `json:"stack"`
	Foundation int  `json:"foundation"`
}

// Sweep promotes cards until nothing more is safe to promote.
func (b *Board) Sweep() []Promotion {
	var out []Promotion
	for {
		p, ok := b.SweepStep()
		if !ok {
			return out
		}
		out = append(out, p)
	}
}

// SweepStep promotes at most one card. A numbered stack tail is safe to
// promote when no numbered card of a lower rank is still in play, buried
// cards included. Failing that, a joker at a stack tail goes to the joker slot.
func (b *Board) SweepStep() (Promotion, bool) {
	if low, ok := b.lowestInPlay(); ok {
		for i := range b.Stacks {
			c, ok := b.Tail(i)
			if !ok {
				continue
			}
			n, ok := c.Numbered()
			if !ok || n.Rank > low {
				continue
			}
			f := b.foundationFor(n)
			b.popStack(i)
			b.pushFoundation(f, c)
			return Promotion{Card: c, Stack: i, Foundation: f}, true
		}
	}

	if b.Joker != nil {
		return Promotion{}, false
	}
	for i := range b.Stacks {
		if c, ok := b.Tail(i); ok && c.IsJoker() {
			b.popStack(i)
			b.Joker = &c
			return Promotion{Card: c, Stack: i, Foundation: -1}, true
		}
	}
	return Promotion{}, false
}

// lowestInPlay returns the lowest rank among numbered cards in the stacks
// and utility slots.
func (b *Board) lowestInPlay() (int, bool) {
	low, found := MaxRank+1, false
	consider := func(c Card) {
		if n, ok := c.Numbered(); ok && n.Rank < low {
			low, found = n.Rank, true
		}
	}
	for _, s := range b.Stacks {
		for _, c := range s {
			consider(c)
		}
	}
	for i := range b.Utility {
		if c, ok := b.UtilityCard(i); ok {
			consider(c)
		}
	}
	return low, found
}

// foundationFor picks the pile a promoted card goes to: the suit's home
// pile when it accepts the card, otherwise the first pile that does.
func (b *Board) foundationFor(n NumberedCard) int {
	if home := int(n.Suit); b.FoundationAccepts(home, n) {
		return home
	}
	for i := range b.Foundations {
		if b.FoundationAccepts(i, n) {
			return i
		}
	}
	panic("engine: no foundation accepts " + n.String())
}
