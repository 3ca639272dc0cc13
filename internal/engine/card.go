package engine

import "fmt"

// Suit is one of the three card suits. Suits have no order.
type Suit int

const (
	SuitRed   Suit = 0
	SuitGreen Suit = 1
	SuitBlack Suit = 2
)

// NumSuits is the number of suits, and of foundation piles.
const NumSuits = 3

var suitNames = map[Suit]string{
	SuitRed:   "Red",
	SuitGreen: "Green",
	SuitBlack: "Black",
}

func (s Suit) String() string {
	if n, ok := suitNames[s]; ok {
		return n
	}
	return "Unknown"
}

// AllSuits returns the suits in foundation order.
func AllSuits() []Suit {
	return []Suit{SuitRed, SuitGreen, SuitBlack}
}

func (s Suit) valid() bool {
	return s >= SuitRed && s <= SuitBlack
}

// MaxRank is the highest rank of a numbered card.
const MaxRank = 8

// NumberedCard is a ranked card of one suit.
type NumberedCard struct {
	Suit Suit `json:"suit"`
	Rank int  `json:"rank"`
}

// Less orders numbered cards by rank alone.
func (n NumberedCard) Less(o NumberedCard) bool {
	return n.Rank < o.Rank
}

func (n NumberedCard) String() string {
	return fmt.Sprintf("%s %d", n.Suit, n.Rank)
}

// CanParentFoundation reports whether o may be placed on top of n in a foundation pile.
func (n NumberedCard) CanParentFoundation(o NumberedCard) bool {
	return n.Suit == o.Suit && n.Rank+1 == o.Rank
}

// CardKind tags the variant held by a Card.
type CardKind int

const (
	KindNumbered CardKind = iota
	KindJack
	KindJoker
)

var kindNames = map[CardKind]string{
	KindNumbered: "Numbered",
	KindJack:     "Jack",
	KindJoker:    "Joker",
}

func (k CardKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}

// Card is a numbered card, a suited jack, or the joker.
// Rank is only meaningful for numbered cards and Suit is ignored for the joker.
type Card struct {
	Kind CardKind `json:"kind"`
	Suit Suit     `json:"suit"`
	Rank int      `json:"rank"`
}

// Num builds a numbered card.
func Num(s Suit, rank int) Card {
	return Card{Kind: KindNumbered, Suit: s, Rank: rank}
}

// Jack builds the jack of the given suit.
func Jack(s Suit) Card {
	return Card{Kind: KindJack, Suit: s}
}

// Joker is the single joker card.
var Joker = Card{Kind: KindJoker}

func (c Card) IsJack() bool  { return c.Kind == KindJack }
func (c Card) IsJoker() bool { return c.Kind == KindJoker }

// IsJackOf reports whether c is a jack of suit s.
func (c Card) IsJackOf(s Suit) bool {
	return c.Kind == KindJack && c.Suit == s
}

// Numbered returns the numbered view of c, or false for jacks and the joker.
func (c Card) Numbered() (NumberedCard, bool) {
	if c.Kind != KindNumbered {
		return NumberedCard{}, false
	}
	return NumberedCard{Suit: c.Suit, Rank: c.Rank}, true
}

// CanParent reports whether o may be placed on top of c in a play stack:
// both numbered, different suits, and c one rank above o.
func (c Card) CanParent(o Card) bool {
	a, ok := c.Numbered()
	if !ok {
		return false
	}
	b, ok := o.Numbered()
	if !ok {
		return false
	}
	return a.Suit != b.Suit && a.Rank == b.Rank+1
}

func (c Card) String() string {
	switch c.Kind {
	case KindNumbered:
		return fmt.Sprintf("%s %d", c.Suit, c.Rank)
	case KindJack:
		return fmt.Sprintf("%s Jack", c.Suit)
	case KindJoker:
		return "Joker"
	}
	return "Unknown"
}

// InOrder reports whether every card in run parents the one after it.
func InOrder(run []Card) bool {
	for i := 1; i < len(run); i++ {
		if !run[i-1].CanParent(run[i]) {
			return false
		}
	}
	return true
}

// SlotContent is what a utility slot holds: either a playable card
// or a bundle of four cleared jacks of one suit.
type SlotContent struct {
	card   Card
	bundle bool
}

// CardSlot wraps a playable card.
func CardSlot(c Card) SlotContent {
	return SlotContent{card: c}
}

// JackBundle is the placeholder left behind when four jacks of s are cleared.
func JackBundle(s Suit) SlotContent {
	return SlotContent{card: Jack(s), bundle: true}
}

// IsBundle reports whether the slot holds a cleared jack bundle.
func (sc SlotContent) IsBundle() bool {
	return sc.bundle
}

// BundleSuit returns the suit of a jack bundle.
func (sc SlotContent) BundleSuit() (Suit, bool) {
	if !sc.bundle {
		return 0, false
	}
	return sc.card.Suit, true
}

// Card extracts the playable card. Bundles are never playable.
func (sc SlotContent) Card() (Card, error) {
	if sc.bundle {
		return Card{}, ErrInvalidConversion
	}
	return sc.card, nil
}

func (sc SlotContent) String() string {
	if sc.bundle {
		return fmt.Sprintf("%s Jacks", sc.card.Suit)
	}
	return sc.card.String()
}
