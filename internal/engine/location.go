package engine

import "fmt"

// LocationKind identifies the part of the tableau a Location points at.
type LocationKind string

const (
	LocationStack      LocationKind = "stack"
	LocationUtility    LocationKind = "utility"
	LocationFoundation LocationKind = "foundation"
	LocationButton     LocationKind = "button"
)

// Location is an abstract board position produced by a coordinate resolver.
type Location struct {
	Kind LocationKind `json:"kind"`
	// Index of the stack, utility slot or foundation pile.
	Index int `json:"index"`
	// Y is the vertical click offset, only used for stacks.
	Y int `json:"y,omitempty"`
	// Suit selects the suit-clear button.
	Suit Suit `json:"suit,omitempty"`
}

func StackAt(index, y int) *Location {
	return &Location{Kind: LocationStack, Index: index, Y: y}
}

func UtilityAt(index int) *Location {
	return &Location{Kind: LocationUtility, Index: index}
}

func FoundationAt(index int) *Location {
	return &Location{Kind: LocationFoundation, Index: index}
}

func Button(s Suit) *Location {
	return &Location{Kind: LocationButton, Suit: s}
}

func (l Location) String() string {
	switch l.Kind {
	case LocationStack:
		return fmt.Sprintf("stack %d (y=%d)", l.Index, l.Y)
	case LocationButton:
		return fmt.Sprintf("%s button", l.Suit)
	}
	return fmt.Sprintf("%s %d", l.Kind, l.Index)
}

// inRange checks the index against the tableau dimensions.
func (l *Location) inRange() bool {
	switch l.Kind {
	case LocationStack:
		return l.Index >= 0 && l.Index < NumStacks
	case LocationUtility:
		return l.Index >= 0 && l.Index < NumUtility
	case LocationFoundation:
		return l.Index >= 0 && l.Index < NumSuits
	case LocationButton:
		return l.Suit.valid()
	}
	return false
}

// Move is a requested move. Either side may be missing; button moves need no source.
type Move struct {
	Src *Location `json:"src,omitempty"`
	Dst *Location `json:"dst,omitempty"`
}

func (m Move) String() string {
	return fmt.Sprintf("%s -> %s", locString(m.Src), locString(m.Dst))
}

func locString(l *Location) string {
	if l == nil {
		return "none"
	}
	return l.String()
}

// Stack click geometry: the first card's band starts at StackTop and each
// following card is drawn RowPitch lower. A card covers CardHeight pixels.
const (
	StackTop   = 110
	RowPitch   = 20
	CardHeight = 102
	maxRows    = 20
)

// ResolveStackIndex maps a click offset to the topmost card of a stack of
// length n whose band contains y. It is a pure function so validation and
// execution always agree.
func ResolveStackIndex(n, y int) (int, bool) {
	idx := -1
	for row := 0; row < maxRows && row < n; row++ {
		if y > StackTop+row*RowPitch && y < StackTop+row*RowPitch+CardHeight {
			idx = row
		}
	}
	return idx, idx >= 0
}
