package channel

import (
	"fmt"
	"strconv"
)

// Command is an input accepted by Machine.Execute.
// The set is closed: only the command types of this package implement it.
type Command interface {
	fmt.Stringer

	execute(m *Machine) error
}

// SelectChannel selects a channel by its one-based number.
type SelectChannel struct {
	// Number is in [1, ChannelsCount].
	Number int
}

// ShiftChannel moves the selection by Delta channels with wrap-around.
type ShiftChannel struct {
	// Delta may be any integer, negative values move backwards.
	Delta int
}

// ClearRow empties the current or the previous slot.
type ClearRow struct {
	// Row addresses the slot to clear.
	Row Row
}

// SetThreshold changes the live threshold without reclassifying.
type SetThreshold struct {
	// Value is in [LowLimit, HighLimit].
	Value int
}

// ApplyThreshold reclassifies every channel against the live threshold.
type ApplyThreshold struct{}

func (c SelectChannel) execute(m *Machine) error {
	return m.SelectChannel(c.Number)
}

func (c ShiftChannel) execute(m *Machine) error {
	m.ShiftChannel(c.Delta)

	return nil
}

func (c ClearRow) execute(m *Machine) error {
	m.ClearRow(c.Row)

	return nil
}

func (c SetThreshold) execute(m *Machine) error {
	return m.SetThreshold(c.Value)
}

func (ApplyThreshold) execute(m *Machine) error {
	m.ApplyThreshold()

	return nil
}

// String implements fmt.Stringer.
func (c SelectChannel) String() string { return "select " + strconv.Itoa(c.Number) }

// String implements fmt.Stringer.
func (c ShiftChannel) String() string { return "shift " + strconv.Itoa(c.Delta) }

// String implements fmt.Stringer.
func (c ClearRow) String() string { return "clear " + c.Row.String() }

// String implements fmt.Stringer.
func (c SetThreshold) String() string { return "threshold " + strconv.Itoa(c.Value) }

// String implements fmt.Stringer.
func (ApplyThreshold) String() string { return "apply" }
