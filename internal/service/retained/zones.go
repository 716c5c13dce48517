package retained

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/oshokin/channel-inspector/internal/domain/channel"
	"github.com/oshokin/channel-inspector/internal/domain/tab"
)

// Zone ids of the clickable elements.
const (
	zoneClearPrevious = "clear-previous"
	zoneClearCurrent  = "clear-current"
	zoneShiftLeft     = "shift-left"
	zoneShiftRight    = "shift-right"
	zoneApply         = "apply"
	zoneSlider        = "slider"
	zoneChannelPrefix = "channel-"
	zoneTabPrefix     = "tab-"
)

// mark wraps s in zone id when mouse support is enabled.
func (m *Model) mark(id, s string) string {
	if m.zones == nil {
		return s
	}

	return m.zones.Mark(id, s)
}

// scan strips zone markers from the final view and records their bounds.
func (m *Model) scan(view string) string {
	if m.zones == nil {
		return view
	}

	return m.zones.Scan(view)
}

// clicked reports whether a mouse release landed on zone id.
func (m *Model) clicked(id string, msg tea.MouseMsg) bool {
	return m.zones.Get(id).InBounds(msg)
}

// mouseTarget maps a left click to the message of the button under it.
func (m *Model) mouseTarget(msg tea.MouseMsg) (tea.Msg, bool) {
	if m.zones == nil || msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return nil, false
	}

	for _, t := range tab.All() {
		if m.clicked(tabZone(t), msg) {
			return tabSelectedMsg{tab: t}, true
		}
	}

	if m.active != tab.Main {
		return nil, false
	}

	for number := 1; number <= channel.ChannelsCount; number++ {
		if m.clicked(channelZone(number), msg) {
			return channelPressedMsg{number: number}, true
		}
	}

	switch {
	case m.clicked(zoneClearPrevious, msg):
		return clearRowMsg{row: channel.RowPrevious}, true
	case m.clicked(zoneClearCurrent, msg):
		return clearRowMsg{row: channel.RowCurrent}, true
	case m.clicked(zoneShiftLeft, msg):
		return changeChannelMsg{delta: -1}, true
	case m.clicked(zoneShiftRight, msg):
		return changeChannelMsg{delta: 1}, true
	case m.clicked(zoneApply, msg):
		return thresholdReleasedMsg{}, true
	case m.clicked(zoneSlider, msg):
		offset, _ := m.zones.Get(zoneSlider).Pos(msg)

		return thresholdModifiedMsg{value: channel.ScaleValue(offset, sliderWidth)}, true
	}

	return nil, false
}

// channelZone returns the zone id of channel button number.
func channelZone(number int) string {
	return zoneChannelPrefix + strconv.Itoa(number)
}

// tabZone returns the zone id of tab t.
func tabZone(t tab.Tab) string {
	return zoneTabPrefix + t.Title()
}
