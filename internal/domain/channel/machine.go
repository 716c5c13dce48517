package channel

import "fmt"

// Machine composes a Dataset, a Cursor and a Policy and is the only way to
// mutate them. It is not safe for concurrent use; one event loop owns it.
type Machine struct {
	dataset *Dataset
	cursor  Cursor
	policy  *Policy
}

// New generates a random dataset from src and returns a bootstrapped machine
// using threshold as the initial policy value.
func New(src Source, threshold int) (*Machine, error) {
	policy, err := NewPolicy(threshold)
	if err != nil {
		return nil, err
	}

	return NewMachine(NewDataset(src, threshold), policy), nil
}

// NewMachine composes an existing dataset and policy, classifies the dataset
// against the policy and selects BootstrapChannel.
func NewMachine(dataset *Dataset, policy *Policy) *Machine {
	m := &Machine{
		dataset: dataset,
		policy:  policy,
	}

	policy.Apply(dataset)

	// The bootstrap channel is always in range.
	_ = m.SelectChannel(BootstrapChannel)

	return m
}

// Execute dispatches cmd. A rejected command leaves the state unchanged.
func (m *Machine) Execute(cmd Command) error {
	if cmd == nil {
		return errNilCommand
	}

	return cmd.execute(m)
}

// SelectChannel selects the channel with the one-based number.
func (m *Machine) SelectChannel(number int) error {
	if number < 1 || number > ChannelsCount {
		return fmt.Errorf("select channel %d: %w", number, ErrIndexOutOfRange)
	}

	return m.cursor.Select(number - 1)
}

// ShiftChannel moves the current selection by delta with wrap-around.
func (m *Machine) ShiftChannel(delta int) {
	m.cursor.Shift(delta)
}

// ClearRow empties the slot addressed by row.
func (m *Machine) ClearRow(row Row) {
	m.cursor.Clear(row)
}

// SetThreshold stores a pending threshold.
func (m *Machine) SetThreshold(value int) error {
	return m.policy.SetThreshold(value)
}

// ApplyThreshold commits the pending threshold into every channel.
func (m *Machine) ApplyThreshold() {
	m.policy.Apply(m.dataset)
}

// Snapshot derives the rendered state from the composed parts.
func (m *Machine) Snapshot() Snapshot {
	current, previous := m.cursor.Current(), m.cursor.Previous()

	snap := Snapshot{
		Current:          rowView(m.dataset, current),
		Previous:         rowView(m.dataset, previous),
		Threshold:        m.policy.Threshold(),
		AppliedThreshold: m.policy.Applied(),
		PendingApply:     m.policy.Pending(),
	}

	for i, ch := range m.dataset.channels {
		snap.Channels[i] = ChannelView{
			Number:     i + 1,
			Reading:    ch.Reading,
			Suspicious: ch.Suspicious,
			IsCurrent:  current.IndexOr(InvalidIndex) == i,
			IsPrevious: previous.IndexOr(InvalidIndex) == i,
		}
	}

	return snap
}
