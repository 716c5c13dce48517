package channel

import "strconv"

// RowView is the rendered form of one cursor slot.
type RowView struct {
	// Set reports whether the slot holds a channel; all other fields are
	// zero (Index is InvalidIndex) when it does not.
	Set bool `json:"set"`
	// Index is the zero-based channel index.
	Index int `json:"index"`
	// Number is the one-based channel number shown to users.
	Number int `json:"number,omitempty"`
	// Reading is the channel reading.
	Reading int `json:"reading,omitempty"`
	// Suspicious is the channel flag as of the last classification.
	Suspicious bool `json:"suspicious"`
}

// ChannelText returns the one-based channel number, or "" when unset.
func (r RowView) ChannelText() string {
	if !r.Set {
		return ""
	}

	return strconv.Itoa(r.Number)
}

// ValueText returns the reading, or "" when unset.
func (r RowView) ValueText() string {
	if !r.Set {
		return ""
	}

	return strconv.Itoa(r.Reading)
}

// SuspiciousText returns "Yes" or "No", or "" when unset.
func (r RowView) SuspiciousText() string {
	switch {
	case !r.Set:
		return ""
	case r.Suspicious:
		return "Yes"
	default:
		return "No"
	}
}

// ChannelView describes one channel button.
type ChannelView struct {
	// Number is the one-based channel number.
	Number int `json:"number"`
	// Reading is the channel reading.
	Reading int `json:"reading"`
	// Suspicious is the channel flag as of the last classification.
	Suspicious bool `json:"suspicious"`
	// IsCurrent marks the current selection.
	IsCurrent bool `json:"is_current"`
	// IsPrevious marks the previously viewed channel.
	IsPrevious bool `json:"is_previous"`
}

// Snapshot is everything a front-end may render.
// It is a value: later commands never change a snapshot already taken.
type Snapshot struct {
	// Current is the current selection.
	Current RowView `json:"current"`
	// Previous is the previously viewed channel.
	Previous RowView `json:"previous"`
	// Channels lists every channel in index order.
	Channels [ChannelsCount]ChannelView `json:"channels"`
	// Threshold is the live threshold.
	Threshold int `json:"threshold"`
	// AppliedThreshold is the threshold of the last classification.
	AppliedThreshold int `json:"applied_threshold"`
	// PendingApply reports that Threshold has not been applied yet.
	PendingApply bool `json:"pending_apply"`
}

// rowView projects a slot through the dataset.
func rowView(d *Dataset, s Slot) RowView {
	index, ok := s.Get()
	if !ok {
		return RowView{Index: InvalidIndex}
	}

	ch := d.channels[index]

	return RowView{
		Set:        true,
		Index:      index,
		Number:     index + 1,
		Reading:    ch.Reading,
		Suspicious: ch.Suspicious,
	}
}
