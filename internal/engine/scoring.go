package engine

// ScoreEntry summarises how far a game has progressed.
type ScoreEntry struct {
	Foundation  int  `json:"foundation"`   // numbered cards on foundations
	JackBundles int  `json:"jack_bundles"` // suits of jacks cleared
	Joker       bool `json:"joker"`
	Remaining   int  `json:"remaining"` // cards still in stacks or utility slots
	Total       int  `json:"total"`     // cards off the tableau, bundles counting four
}

// Score computes the progress summary for the board.
func (b *Board) Score() ScoreEntry {
	var e ScoreEntry
	for _, f := range b.Foundations {
		e.Foundation += len(f)
	}
	for _, sc := range b.Utility {
		if sc == nil {
			continue
		}
		if sc.IsBundle() {
			e.JackBundles++
		} else {
			e.Remaining++
		}
	}
	for _, s := range b.Stacks {
		e.Remaining += len(s)
	}
	e.Joker = b.Joker != nil

	e.Total = e.Foundation + e.JackBundles*JacksPerSuit
	if e.Joker {
		e.Total++
	}
	return e
}
