package engine

// ValidMove is a move that passed Validate against the board it will be
// executed on. Only Validate can produce one.
type ValidMove struct {
	move Move
}

// Move returns the underlying request.
func (v ValidMove) Move() Move {
	return v.move
}

// Validate checks a requested move against the current board without
// changing it. The shape of (src, dst) selects the rule set.
func (b *Board) Validate(m Move) (ValidMove, error) {
	if err := b.validate(m); err != nil {
		return ValidMove{}, err
	}
	return ValidMove{move: m}, nil
}

func (b *Board) validate(m Move) error {
	src, dst := m.Src, m.Dst
	if dst == nil || !dst.inRange() {
		return ErrBadSourceOrDest
	}
	if dst.Kind == LocationButton {
		return b.validateJacks(dst.Suit)
	}
	if src == nil || !src.inRange() {
		return ErrBadSourceOrDest
	}

	switch {
	case src.Kind == LocationUtility && dst.Kind == LocationStack:
		c, err := b.validateUtilityIsCard(src.Index)
		if err != nil {
			return err
		}
		return b.validateStackCanParent(dst.Index, c)

	case src.Kind == LocationStack && dst.Kind == LocationStack:
		idx, err := b.validateIdxIsCard(src)
		if err != nil {
			return err
		}
		if !InOrder(b.Stacks[src.Index][idx:]) {
			return ErrStackOutOfOrder
		}
		return b.validateStackCanParent(dst.Index, b.Stacks[src.Index][idx])

	case src.Kind == LocationUtility && dst.Kind == LocationFoundation:
		c, err := b.validateUtilityIsCard(src.Index)
		if err != nil {
			return err
		}
		return b.validateFoundationCanParent(dst.Index, c)

	case src.Kind == LocationStack && dst.Kind == LocationFoundation:
		c, err := b.validateStackLast(src)
		if err != nil {
			return err
		}
		return b.validateFoundationCanParent(dst.Index, c)

	case src.Kind == LocationStack && dst.Kind == LocationUtility:
		if _, err := b.validateStackLast(src); err != nil {
			return err
		}
		if b.Utility[dst.Index] != nil {
			return ErrUtilityNotOpen
		}
		return nil
	}
	return ErrBadSourceOrDest
}

// validateJacks requires all four jacks of s to be at stack tails or in
// utility slots, and somewhere to put the bundle afterwards.
func (b *Board) validateJacks(s Suit) error {
	visible, open := 0, 0
	for i := range b.Stacks {
		if c, ok := b.Tail(i); ok && c.IsJackOf(s) {
			visible++
		}
	}
	for i, sc := range b.Utility {
		if sc == nil {
			open++
			continue
		}
		if c, ok := b.UtilityCard(i); ok && c.IsJackOf(s) {
			visible++
			open++
		}
	}
	if visible != JacksPerSuit {
		return ErrJacksNotVisible
	}
	if open == 0 {
		return ErrNoOpenUtility
	}
	return nil
}

func (b *Board) validateUtilityIsCard(i int) (Card, error) {
	sc := b.Utility[i]
	if sc == nil {
		return Card{}, ErrNothingInUtility
	}
	if sc.IsBundle() {
		return Card{}, ErrMoveJacks
	}
	return sc.Card()
}

func (b *Board) validateStackCanParent(i int, c Card) error {
	if !b.StackAccepts(i, c) {
		return ErrStackCannotParent
	}
	return nil
}

func (b *Board) validateIdxIsCard(src *Location) (int, error) {
	n := len(b.Stacks[src.Index])
	if n == 0 {
		return 0, ErrNoCardClicked
	}
	idx, ok := ResolveStackIndex(n, src.Y)
	if !ok {
		return 0, ErrMustClickCard
	}
	return idx, nil
}

// validateStackLast resolves the click and requires it to land on the tail.
func (b *Board) validateStackLast(src *Location) (Card, error) {
	idx, err := b.validateIdxIsCard(src)
	if err != nil {
		return Card{}, err
	}
	stack := b.Stacks[src.Index]
	if idx != len(stack)-1 {
		return Card{}, ErrMultipleToSlot
	}
	return stack[idx], nil
}

func (b *Board) validateFoundationCanParent(i int, c Card) error {
	n, ok := c.Numbered()
	if !ok {
		return ErrCardNotNumeric
	}
	if !b.FoundationAccepts(i, n) {
		return ErrFoundationCannotParent
	}
	return nil
}
