package engine

import "fmt"

// Execute applies a validated move. The move must have been validated
// against this board in its current state; anything else is a programming
// error and panics.
func (b *Board) Execute(v ValidMove) {
	src, dst := v.move.Src, v.move.Dst
	if dst == nil {
		panic(fmt.Sprintf("engine: executing unvalidated move %s", v.move))
	}
	if dst.Kind == LocationButton {
		b.ClearJacks(dst.Suit)
		return
	}
	if src == nil {
		panic(fmt.Sprintf("engine: executing unvalidated move %s", v.move))
	}

	switch {
	case src.Kind == LocationUtility && dst.Kind == LocationStack:
		b.Stacks[dst.Index] = append(b.Stacks[dst.Index], b.takeUtility(src.Index))

	case src.Kind == LocationUtility && dst.Kind == LocationFoundation:
		b.pushFoundation(dst.Index, b.takeUtility(src.Index))

	case src.Kind == LocationStack && dst.Kind == LocationUtility:
		if b.Utility[dst.Index] != nil {
			panic(fmt.Sprintf("engine: utility %d occupied during %s", dst.Index, v.move))
		}
		sc := CardSlot(b.popStack(src.Index))
		b.Utility[dst.Index] = &sc

	case src.Kind == LocationStack && dst.Kind == LocationStack:
		idx, ok := ResolveStackIndex(len(b.Stacks[src.Index]), src.Y)
		if !ok {
			panic(fmt.Sprintf("engine: no card under click during %s", v.move))
		}
		run := b.Stacks[src.Index][idx:]
		b.Stacks[dst.Index] = append(b.Stacks[dst.Index], run...)
		b.Stacks[src.Index] = b.Stacks[src.Index][:idx:idx]

	case src.Kind == LocationStack && dst.Kind == LocationFoundation:
		b.pushFoundation(dst.Index, b.popStack(src.Index))

	default:
		panic(fmt.Sprintf("engine: invalid move passed as valid: %s", v.move))
	}
}

// ClearJacks removes every jack of s from the utility slots and stacks and
// leaves a bundle in the first empty utility slot.
func (b *Board) ClearJacks(s Suit) {
	for i := range b.Utility {
		if c, ok := b.UtilityCard(i); ok && c.IsJackOf(s) {
			b.Utility[i] = nil
		}
	}
	for i, stack := range b.Stacks {
		kept := stack[:0]
		for _, c := range stack {
			if !c.IsJackOf(s) {
				kept = append(kept, c)
			}
		}
		b.Stacks[i] = kept
	}
	for i := range b.Utility {
		if b.Utility[i] == nil {
			sc := JackBundle(s)
			b.Utility[i] = &sc
			return
		}
	}
	panic(fmt.Sprintf("engine: no utility slot free for %s jacks", s))
}

func (b *Board) takeUtility(i int) Card {
	sc := b.Utility[i]
	if sc == nil {
		panic(fmt.Sprintf("engine: utility %d empty", i))
	}
	c, err := sc.Card()
	if err != nil {
		panic(fmt.Sprintf("engine: utility %d: %v", i, err))
	}
	b.Utility[i] = nil
	return c
}

func (b *Board) popStack(i int) Card {
	c, ok := b.Tail(i)
	if !ok {
		panic(fmt.Sprintf("engine: stack %d empty", i))
	}
	b.Stacks[i] = b.Stacks[i][:len(b.Stacks[i])-1]
	return c
}

func (b *Board) pushFoundation(i int, c Card) {
	n, ok := c.Numbered()
	if !ok {
		panic(fmt.Sprintf("engine: %s cannot go to a foundation", c))
	}
	if !b.FoundationAccepts(i, n) {
		panic(fmt.Sprintf("engine: foundation %d cannot take %s", i, n))
	}
	b.Foundations[i] = append(b.Foundations[i], n)
}
