// Package termview prints boards for the terminal.
package termview

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"solitaire/internal/engine"
)

var suitColors = map[engine.Suit]pterm.Color{
	engine.SuitRed:   pterm.FgLightRed,
	engine.SuitGreen: pterm.FgGreen,
	engine.SuitBlack: pterm.FgGray,
}

func suitLetter(s engine.Suit) string {
	return suitColors[s].Sprint(s.String()[:1])
}

// Card renders a card in three cells: suit letter then rank, J for a jack,
// or ** for the joker.
func Card(c engine.Card) string {
	switch {
	case c.IsJoker():
		return pterm.FgYellow.Sprint("**") + " "
	case c.IsJack():
		return suitLetter(c.Suit) + "J "
	}
	return fmt.Sprintf("%s%d ", suitLetter(c.Suit), c.Rank)
}

const empty = "-- "

func slot(s *engine.SlotView) string {
	switch {
	case s == nil:
		return empty
	case s.Bundle != nil:
		return suitLetter(*s.Bundle) + "# "
	}
	return Card(*s.Card)
}

// Render draws the whole tableau, utility row first.
func Render(v engine.BoardView) string {
	var sb strings.Builder

	sb.WriteString("utility  ")
	for _, s := range v.Utility {
		sb.WriteString(slot(s))
	}
	sb.WriteString(" joker ")
	if v.Joker != nil {
		sb.WriteString(Card(*v.Joker))
	} else {
		sb.WriteString(empty)
	}
	sb.WriteString(" home ")
	for _, f := range v.Foundations {
		if len(f) == 0 {
			sb.WriteString(empty)
			continue
		}
		top := f[len(f)-1]
		sb.WriteString(Card(engine.Num(top.Suit, top.Rank)))
	}
	sb.WriteString("\n")

	for i, stack := range v.Stacks {
		fmt.Fprintf(&sb, "stack %d  ", i)
		for _, c := range stack {
			sb.WriteString(Card(c))
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "%s after %d moves, %d cards home, %d in play\n",
		v.Phase, v.Moves, v.Score.Total, v.Score.Remaining)
	return sb.String()
}
