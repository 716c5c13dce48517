package retained

import (
	"github.com/oshokin/channel-inspector/internal/domain/channel"
	"github.com/oshokin/channel-inspector/internal/domain/tab"
)

// tabSelectedMsg switches the visible tab.
type tabSelectedMsg struct {
	tab tab.Tab
}

// channelPressedMsg is a press on a channel button (one-based).
type channelPressedMsg struct {
	number int
}

// changeChannelMsg is a press on an arrow button.
type changeChannelMsg struct {
	delta int
}

// clearRowMsg is a press on a clear button.
type clearRowMsg struct {
	row channel.Row
}

// thresholdModifiedMsg moves the threshold slider without releasing it.
type thresholdModifiedMsg struct {
	value int
}

// thresholdReleasedMsg releases the threshold slider.
type thresholdReleasedMsg struct{}
