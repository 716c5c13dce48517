package retained

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/oshokin/channel-inspector/internal/domain/channel"
	"github.com/oshokin/channel-inspector/internal/domain/tab"
	"github.com/oshokin/channel-inspector/internal/service/session"
)

// Model is the bubbletea model of the retained front-end.
type Model struct {
	// ctx carries the session logger.
	ctx context.Context
	// sess owns the channel state machine.
	sess *session.Session
	// zones maps mouse clicks to buttons; nil disables mouse support.
	zones *zone.Manager
	// active is the visible tab.
	active tab.Tab
	// keys are the key bindings.
	keys keyMap
	// help renders the key help line.
	help help.Model
	// styles is the view palette.
	styles styles
	// lastErr is the message of the last rejected command.
	lastErr string
	// width is the terminal width from the last resize.
	width int
}

// NewModel returns a model driving sess. zones may be nil.
func NewModel(ctx context.Context, sess *session.Session, zones *zone.Manager) *Model {
	return &Model{
		ctx:    ctx,
		sess:   sess,
		zones:  zones,
		active: tab.Main,
		keys:   defaultKeyMap(),
		help:   help.New(),
		styles: defaultStyles(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		if next, ok := m.mouseTarget(msg); ok {
			return m.Update(next)
		}
	case tabSelectedMsg:
		m.active = msg.tab
	case channelPressedMsg:
		m.dispatch(channel.SelectChannel{Number: msg.number})
	case changeChannelMsg:
		m.dispatch(channel.ShiftChannel{Delta: msg.delta})
	case clearRowMsg:
		m.dispatch(channel.ClearRow{Row: msg.row})
	case thresholdModifiedMsg:
		m.dispatch(channel.SetThreshold{Value: msg.value})
	case thresholdReleasedMsg:
		m.dispatch(channel.ApplyThreshold{})
	}

	return m, nil
}

// handleKey translates a key press into a message.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

		return m, nil
	case key.Matches(msg, m.keys.NextTab):
		return m.Update(tabSelectedMsg{tab: m.active.Next()})
	case key.Matches(msg, m.keys.PrevTab):
		return m.Update(tabSelectedMsg{tab: m.active.Prev()})
	}

	// Channel controls exist only on the main tab.
	if m.active != tab.Main {
		return m, nil
	}

	threshold := m.sess.Snapshot().Threshold

	switch {
	case key.Matches(msg, m.keys.Select):
		return m.Update(channelPressedMsg{number: int(msg.String()[0] - '0')})
	case key.Matches(msg, m.keys.Left):
		return m.Update(changeChannelMsg{delta: -1})
	case key.Matches(msg, m.keys.Right):
		return m.Update(changeChannelMsg{delta: 1})
	case key.Matches(msg, m.keys.ClearPrevious):
		return m.Update(clearRowMsg{row: channel.RowPrevious})
	case key.Matches(msg, m.keys.ClearCurrent):
		return m.Update(clearRowMsg{row: channel.RowCurrent})
	case key.Matches(msg, m.keys.Lower):
		if threshold > channel.LowLimit {
			return m.Update(thresholdModifiedMsg{value: threshold - 1})
		}
	case key.Matches(msg, m.keys.Raise):
		if threshold < channel.HighLimit {
			return m.Update(thresholdModifiedMsg{value: threshold + 1})
		}
	case key.Matches(msg, m.keys.Apply):
		return m.Update(thresholdReleasedMsg{})
	}

	return m, nil
}

// dispatch runs cmd through the session and records a rejection.
func (m *Model) dispatch(cmd channel.Command) {
	if _, err := m.sess.Dispatch(m.ctx, cmd); err != nil {
		m.lastErr = err.Error()

		return
	}

	m.lastErr = ""
}
