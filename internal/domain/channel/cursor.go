package channel

import (
	"fmt"
	"strconv"
	"strings"
)

// Slot holds an optional zero-based channel index.
// The zero value is empty.
type Slot struct {
	// index is meaningful only when set is true.
	index int
	// set marks the slot as holding a channel.
	set bool
}

// slotOf returns a slot holding index.
func slotOf(index int) Slot {
	return Slot{index: index, set: true}
}

// Get returns the stored index and whether the slot holds one.
func (s Slot) Get() (int, bool) {
	return s.index, s.set
}

// IsSet reports whether the slot holds a channel.
func (s Slot) IsSet() bool {
	return s.set
}

// IndexOr returns the stored index, or fallback for an empty slot.
func (s Slot) IndexOr(fallback int) int {
	if !s.set {
		return fallback
	}

	return s.index
}

// String renders the one-based channel number, or "-" when empty.
func (s Slot) String() string {
	if !s.set {
		return "-"
	}

	return strconv.Itoa(s.index + 1)
}

// Row names one of the two cursor slots.
// Its representation admits exactly two values: RowCurrent (the zero value)
// and RowPrevious.
type Row struct {
	previous bool
}

var (
	// RowCurrent addresses the current selection.
	RowCurrent = Row{previous: false}
	// RowPrevious addresses the previously viewed channel.
	RowPrevious = Row{previous: true}
)

// String returns "current" or "previous".
func (r Row) String() string {
	if r.previous {
		return "previous"
	}

	return "current"
}

// ParseRow converts "current"/"previous" (case-insensitive, "cur"/"prev"
// accepted) to a Row.
func ParseRow(s string) (Row, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "current", "cur":
		return RowCurrent, true
	case "previous", "prev":
		return RowPrevious, true
	default:
		return RowCurrent, false
	}
}

// Cursor is the current/previous selection pair.
// The two slots are independent; both may hold the same index.
type Cursor struct {
	current  Slot
	previous Slot
}

// Current returns the current selection.
func (c *Cursor) Current() Slot {
	return c.current
}

// Previous returns the previously viewed channel.
func (c *Cursor) Previous() Slot {
	return c.previous
}

// Select moves the current selection into previous and selects index.
// An invalid index leaves the cursor untouched.
func (c *Cursor) Select(index int) error {
	if !validIndex(index) {
		return fmt.Errorf("select index %d: %w", index, ErrIndexOutOfRange)
	}

	if c.current.set {
		c.previous = c.current
	}

	c.current = slotOf(index)

	return nil
}

// Shift moves the current selection by delta channels, wrapping around both
// ends. With nothing selected it selects the bootstrap channel instead.
func (c *Cursor) Shift(delta int) {
	if !c.current.set {
		// Select cannot fail for the bootstrap index.
		_ = c.Select(BootstrapChannel - 1)

		return
	}

	// Reducing delta first keeps the sum in range for any int.
	next := wrap(c.current.index + delta%ChannelsCount)
	c.previous = c.current
	c.current = slotOf(next)
}

// Clear empties the slot addressed by row. Clearing an empty slot is a no-op.
func (c *Cursor) Clear(row Row) {
	if row.previous {
		c.previous = Slot{}

		return
	}

	c.current = Slot{}
}

// wrap maps any integer onto [0, ChannelsCount) using Euclidean modulo.
func wrap(index int) int {
	m := index % ChannelsCount
	if m < 0 {
		m += ChannelsCount
	}

	return m
}
