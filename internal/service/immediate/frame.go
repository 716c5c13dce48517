package immediate

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// input is the single event a frame reacts to.
type input struct {
	// key is the key press, if any.
	key *tcell.EventKey
	// x and y locate the mouse pointer.
	x, y int
	// pressed reports the left button going down in this event.
	pressed bool
	// held reports the left button being down.
	held bool
	// released reports the left button going up in this event.
	released bool
}

// frame draws widgets onto the screen and hit-tests them against input.
type frame struct {
	screen tcell.Screen
	in     input
}

// text draws s at x, y and returns its width in cells.
func (f *frame) text(x, y int, s string, style tcell.Style) int {
	col := x

	for _, r := range s {
		f.screen.SetContent(col, y, r, nil, style)
		col += runewidth.RuneWidth(r)
	}

	return col - x
}

// button draws "[label]" at x, y. It reports whether the left button went
// down over it in this frame, and its width.
func (f *frame) button(x, y int, label string, style tcell.Style) (bool, int) {
	w := f.text(x, y, "["+label+"]", style)
	clicked := f.in.pressed && f.in.y == y && f.in.x >= x && f.in.x < x+w

	return clicked, w
}

// fill draws n copies of r starting at x, y.
func (f *frame) fill(x, y, n int, r rune, style tcell.Style) {
	for i := range n {
		f.screen.SetContent(x+i, y, r, nil, style)
	}
}
