package engine

import "math/rand/v2"

// Deck composition.
const (
	JacksPerSuit = 4
	DeckSize     = NumSuits*(MaxRank+1) + NumSuits*JacksPerSuit + 1
	DealPerStack = DeckSize / NumStacks
)

// Deck is an ordered pile of cards waiting to be dealt.
type Deck struct {
	cards []Card
}

// FullDeck returns the unshuffled 40-card deck: the joker, four jacks of
// each suit and ranks 0-8 of each suit.
func FullDeck() []Card {
	cards := make([]Card, 0, DeckSize)
	cards = append(cards, Joker)
	for i := 0; i < JacksPerSuit; i++ {
		for _, s := range AllSuits() {
			cards = append(cards, Jack(s))
		}
	}
	for r := 0; r <= MaxRank; r++ {
		for _, s := range AllSuits() {
			cards = append(cards, Num(s, r))
		}
	}
	return cards
}

// NewDeck creates a deck from cards shuffled with rng.
func NewDeck(cards []Card, rng *rand.Rand) *Deck {
	d := &Deck{cards: make([]Card, len(cards))}
	copy(d.cards, cards)
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
	return d
}

// Draw removes and returns the top card.
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	c := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return c, true
}

// Len returns the number of cards remaining.
func (d *Deck) Len() int {
	return len(d.cards)
}
