package retained

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/channel-inspector/internal/domain/channel"
	"github.com/oshokin/channel-inspector/internal/domain/tab"
)

// newZonedModel returns a test model with mouse zones enabled and rendered once.
func newZonedModel(t *testing.T, threshold int) *Model {
	t.Helper()

	m := newTestModel(t, threshold)
	m.zones = zone.New()
	t.Cleanup(m.zones.Close)

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m.View()

	return m
}

// waitZone waits until the zone manager has recorded the bounds of id.
func waitZone(t *testing.T, m *Model, id string) *zone.ZoneInfo {
	t.Helper()

	var info *zone.ZoneInfo

	require.Eventually(t, func() bool {
		info = m.zones.Get(id)

		return !info.IsZero()
	}, time.Second, 5*time.Millisecond, "zone %s was never recorded", id)

	return info
}

// leftRelease is a left button release at x, y.
func leftRelease(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

// clickZone releases the left button on the top-left cell of zone id.
func clickZone(t *testing.T, m *Model, id string) {
	t.Helper()

	info := waitZone(t, m, id)
	m.Update(leftRelease(info.StartX, info.StartY))
	m.View()
}

// TestModel_ClickChannelAndClear selects a channel and clears rows with the mouse.
func TestModel_ClickChannelAndClear(t *testing.T) {
	t.Parallel()

	m := newZonedModel(t, channel.DefaultThreshold)

	clickZone(t, m, channelZone(5))

	snap := m.sess.Snapshot()
	require.Equal(t, 5, snap.Current.Number)
	require.Equal(t, 1, snap.Previous.Number)

	clickZone(t, m, zoneClearPrevious)
	require.False(t, m.sess.Snapshot().Previous.Set)
	require.Equal(t, 5, m.sess.Snapshot().Current.Number)

	clickZone(t, m, zoneClearCurrent)
	require.False(t, m.sess.Snapshot().Current.Set)
}

// TestModel_ClickArrows shifts the selection with the arrow buttons.
func TestModel_ClickArrows(t *testing.T) {
	t.Parallel()

	m := newZonedModel(t, channel.DefaultThreshold)

	clickZone(t, m, zoneShiftLeft)
	require.Equal(t, 9, m.sess.Snapshot().Current.Number)

	clickZone(t, m, zoneShiftRight)
	require.Equal(t, 1, m.sess.Snapshot().Current.Number)
	require.Equal(t, 9, m.sess.Snapshot().Previous.Number)
}

// TestModel_ClickSliderThenApply moves the live threshold with a click and applies it with the button.
func TestModel_ClickSliderThenApply(t *testing.T) {
	t.Parallel()

	m := newZonedModel(t, channel.DefaultThreshold)
	m.Update(runes("2"))
	m.View()

	bar := waitZone(t, m, zoneSlider)
	require.Equal(t, sliderWidth-1, bar.EndX-bar.StartX)

	m.Update(leftRelease(bar.StartX+5, bar.StartY))
	m.View()

	snap := m.sess.Snapshot()
	require.Equal(t, channel.ScaleValue(5, sliderWidth), snap.Threshold)
	require.True(t, snap.PendingApply)
	require.False(t, snap.Current.Suspicious)

	clickZone(t, m, zoneApply)

	snap = m.sess.Snapshot()
	require.False(t, snap.PendingApply)
	require.True(t, snap.Current.Suspicious)

	// The far end of the bar is the highest limit.
	bar = waitZone(t, m, zoneSlider)
	m.Update(leftRelease(bar.EndX, bar.StartY))
	require.Equal(t, channel.HighLimit, m.sess.Snapshot().Threshold)
}

// TestModel_ClickTabs switches tabs and ignores channel buttons away from the main tab.
func TestModel_ClickTabs(t *testing.T) {
	t.Parallel()

	m := newZonedModel(t, channel.DefaultThreshold)
	button := waitZone(t, m, channelZone(4))

	clickZone(t, m, tabZone(tab.About))
	require.Equal(t, tab.About, m.active)

	m.Update(leftRelease(button.StartX, button.StartY))
	require.Equal(t, 1, m.sess.Snapshot().Current.Number)

	clickZone(t, m, tabZone(tab.Main))
	require.Equal(t, tab.Main, m.active)
}

// TestModel_IgnoresOtherMouseEvents only reacts to left button releases.
func TestModel_IgnoresOtherMouseEvents(t *testing.T) {
	t.Parallel()

	m := newZonedModel(t, channel.DefaultThreshold)
	info := waitZone(t, m, channelZone(6))

	m.Update(tea.MouseMsg{X: info.StartX, Y: info.StartY, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: info.StartX, Y: info.StartY, Action: tea.MouseActionRelease, Button: tea.MouseButtonRight})
	require.Equal(t, 1, m.sess.Snapshot().Current.Number)

	m.Update(leftRelease(info.StartX, info.StartY))
	require.Equal(t, 6, m.sess.Snapshot().Current.Number)
}
