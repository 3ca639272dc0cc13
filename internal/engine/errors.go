package engine

import "errors"

// Move rejections. A rejected move leaves the board untouched.
var (
	ErrNothingInUtility       = errors.New("nothing in utility slot")
	ErrMoveJacks              = errors.New("utility slot holds a jack bundle")
	ErrStackCannotParent      = errors.New("stack cannot accept card")
	ErrStackOutOfOrder        = errors.New("stack out of order")
	ErrJacksNotVisible        = errors.New("jacks not all visible")
	ErrNoOpenUtility          = errors.New("no open utility slot")
	ErrMustClickCard          = errors.New("must click a card")
	ErrMultipleToSlot         = errors.New("cannot move multiple cards to a single slot")
	ErrCardNotNumeric         = errors.New("card is not numeric")
	ErrNoCardClicked          = errors.New("no card at location")
	ErrFoundationCannotParent = errors.New("foundation cannot accept card")
	ErrBadSourceOrDest        = errors.New("bad source or destination")
	ErrUtilityNotOpen         = errors.New("utility slot not open")
	ErrInvalidConversion      = errors.New("slot content is not a card")
)

// ErrGameOver is returned by Game.Apply once the game has been won.
var ErrGameOver = errors.New("game is over")

var rejections = []error{
	ErrNothingInUtility,
	ErrMoveJacks,
	ErrStackCannotParent,
	ErrStackOutOfOrder,
	ErrJacksNotVisible,
	ErrNoOpenUtility,
	ErrMustClickCard,
	ErrMultipleToSlot,
	ErrCardNotNumeric,
	ErrNoCardClicked,
	ErrFoundationCannotParent,
	ErrBadSourceOrDest,
	ErrUtilityNotOpen,
	ErrInvalidConversion,
}

// IsRejection reports whether err is (or wraps) a move rejection.
func IsRejection(err error) bool {
	for _, r := range rejections {
		if errors.Is(err, r) {
			return true
		}
	}
	return false
}
