package engine

// SlotView is the renderer's view of a utility slot.
type SlotView struct {
	Card   *Card `json:"card,omitempty"`
	Bundle *Suit `json:"bundle,omitempty"`
}

// BoardView is a read-only snapshot of the tableau.
type BoardView struct {
	Phase       string                   `json:"phase"`
	Moves       int                      `json:"moves"`
	Joker       *Card                    `json:"joker"`
	Utility     [NumUtility]*SlotView    `json:"utility"`
	Foundations [NumSuits][]NumberedCard `json:"foundations"`
	Stacks      [NumStacks][]Card        `json:"stacks"`
	Score       ScoreEntry               `json:"score"`
}

// View returns a snapshot that shares no memory with the board.
func (g *Game) View() BoardView {
	v := BoardView{
		Phase: g.Phase.String(),
		Moves: g.Moves,
		Score: g.Score(),
	}
	if g.Board == nil {
		return v
	}
	b := g.Board.Clone()
	v.Joker = b.Joker
	v.Foundations = b.Foundations
	v.Stacks = b.Stacks
	for i, sc := range b.Utility {
		if sc == nil {
			continue
		}
		if s, ok := sc.BundleSuit(); ok {
			v.Utility[i] = &SlotView{Bundle: &s}
			continue
		}
		c, _ := sc.Card()
		v.Utility[i] = &SlotView{Card: &c}
	}
	return v
}
