// Package layout maps canvas pixel coordinates onto abstract board locations.
package layout

import "solitaire/internal/engine"

// Card and column geometry, in pixels.
const (
	CardWidth      = 70
	ColumnPitch    = 75
	SlotHeight     = 102
	FoundationLeft = 375
	ButtonLeft     = 245
	ButtonRight    = 275
	ButtonSize     = 30
	ButtonPitch    = 35
	CanvasWidth    = 600
)

type rect struct{ x0, x1, y0, y1 int }

func (r rect) contains(x, y int) bool {
	return x >= r.x0 && x <= r.x1 && y >= r.y0 && y <= r.y1
}

type region struct {
	area rect
	loc  engine.Location
}

// regions lists every fixed target on the top row. Edges are inclusive.
var regions = topRow()

func topRow() []region {
	var rs []region
	for i := 0; i < engine.NumUtility; i++ {
		x := i * ColumnPitch
		rs = append(rs, region{rect{x, x + CardWidth, 0, SlotHeight}, engine.Location{Kind: engine.LocationUtility, Index: i}})
	}
	for i := 0; i < engine.NumSuits; i++ {
		x := FoundationLeft + i*ColumnPitch
		rs = append(rs, region{rect{x, x + CardWidth, 0, SlotHeight}, engine.Location{Kind: engine.LocationFoundation, Index: i}})
	}
	for i, s := range engine.AllSuits() {
		y := i * ButtonPitch
		rs = append(rs, region{rect{ButtonLeft, ButtonRight, y, y + ButtonSize}, engine.Location{Kind: engine.LocationButton, Suit: s}})
	}
	return rs
}

// FromPoint resolves a click. Anything inside the canvas width that is not
// a slot or button belongs to the stack column under it; the raw y is kept
// so the engine can work out which card was meant.
func FromPoint(x, y int) (*engine.Location, bool) {
	for _, r := range regions {
		if r.area.contains(x, y) {
			loc := r.loc
			return &loc, true
		}
	}
	if x < 0 || x >= CanvasWidth || y < 0 {
		return nil, false
	}
	return engine.StackAt(x/ColumnPitch, y), true
}
