package retained

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/oshokin/channel-inspector/internal/domain/channel"
	"github.com/oshokin/channel-inspector/internal/domain/tab"
	"github.com/oshokin/channel-inspector/internal/version"
)

const (
	// sliderWidth is the number of cells of the threshold slider.
	sliderWidth = 50
	// sliderLabel precedes the slider bar.
	sliderLabel = "Suspicious limit "
)

// View implements tea.Model.
func (m *Model) View() string {
	var body string

	switch m.active {
	case tab.Main:
		body = m.viewMain(m.sess.Snapshot())
	case tab.Dummy:
		body = "Nothing to see here yet."
	case tab.About:
		body = strings.Join(version.Lines(), "\n")
	}

	page := lipgloss.JoinVertical(lipgloss.Left,
		m.viewTabs(),
		m.styles.separator.Render(strings.Repeat("─", max(m.width-4, 20))),
		body,
		"",
		m.help.View(m.keys),
	)

	return m.scan(m.styles.page.Render(page))
}

// viewTabs renders the tab bar.
func (m *Model) viewTabs() string {
	titles := make([]string, 0, len(tab.All()))

	for _, t := range tab.All() {
		style := m.styles.tab
		if t == m.active {
			style = m.styles.tabActive
		}

		titles = append(titles, m.mark(tabZone(t), style.Render(t.Title())))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, titles...)
}

// viewMain renders the channel panel.
func (m *Model) viewMain(snap channel.Snapshot) string {
	lines := []string{
		m.viewTable(snap),
		"",
		m.viewButtons(snap),
		"",
		m.viewSlider(snap),
	}

	if m.lastErr != "" {
		lines = append(lines, m.styles.errLine.Render("error: "+m.lastErr))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// viewTable renders the previous and current rows with their clear buttons.
func (m *Model) viewTable(snap channel.Snapshot) string {
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.label.Render(""),
		m.styles.field.Render(m.styles.header.Render("Channel")),
		m.styles.field.Render(m.styles.header.Render("Value")),
		m.styles.field.Render(m.styles.header.Render("Susp.")),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.viewRow("Previous", snap.Previous, zoneClearPrevious),
		m.viewRow("Current", snap.Current, zoneClearCurrent),
	)
}

// viewRow renders one table row.
func (m *Model) viewRow(label string, row channel.RowView, clearZone string) string {
	suspicious := row.SuspiciousText()
	if row.Set && row.Suspicious {
		suspicious = m.styles.suspicious.Render(suspicious)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.label.Render(label),
		m.styles.field.Render(row.ChannelText()),
		m.styles.field.Render(row.ValueText()),
		m.styles.field.Render(suspicious),
		" ",
		m.mark(clearZone, "[clear]"),
	)
}

// viewButtons renders the arrows around the nine channel buttons.
func (m *Model) viewButtons(snap channel.Snapshot) string {
	cells := make([]string, 0, channel.ChannelsCount+2)
	cells = append(cells, m.mark(zoneShiftLeft, m.styles.button.Render("◀")))

	for _, ch := range snap.Channels {
		style := m.styles.button
		if ch.IsCurrent {
			style = m.styles.buttonHot
		}

		label := strconv.Itoa(ch.Number)
		if ch.Suspicious {
			label = m.styles.suspicious.Render(label)
		}

		cells = append(cells, m.mark(channelZone(ch.Number), style.Render(label)))
	}

	cells = append(cells, m.mark(zoneShiftRight, m.styles.button.Render("▶")))

	return lipgloss.JoinHorizontal(lipgloss.Center, cells...)
}

// viewSlider renders the threshold bar, the value and the apply button.
// A click on the bar moves the live threshold.
func (m *Model) viewSlider(snap channel.Snapshot) string {
	filled := channel.ScaleOffset(snap.Threshold, sliderWidth)
	bar := strings.Repeat("█", filled+1) + strings.Repeat("░", sliderWidth-filled-1)

	line := sliderLabel + m.mark(zoneSlider, bar) + " " + strconv.Itoa(snap.Threshold)
	if snap.PendingApply {
		line += " " + m.mark(zoneApply, "[apply]") + " " +
			m.styles.pending.Render("(press enter to apply, active "+strconv.Itoa(snap.AppliedThreshold)+")")
	}

	return line
}
