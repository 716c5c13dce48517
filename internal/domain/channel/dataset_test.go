package channel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// fixedSource returns its values in order, reduced modulo n.
type fixedSource struct {
	values []int
	next   int
}

// IntN returns the next stored value modulo n.
func (s *fixedSource) IntN(n int) int {
	v := s.values[s.next%len(s.values)]
	s.next++

	return v % n
}

// TestNewDataset_DrawsEveryChannel maps source draws onto the reading bounds.
func TestNewDataset_DrawsEveryChannel(t *testing.T) {
	t.Parallel()

	src := &fixedSource{values: []int{0, 99, 74, 75, 50, 1, 2, 3, 4}}
	d := NewDataset(src, DefaultThreshold)

	require.Len(t, d.Channels(), ChannelsCount)
	require.Equal(t, ChannelsCount, src.next)

	want := []Channel{
		{Reading: 1},
		{Reading: 100, Suspicious: true},
		{Reading: 75},
		{Reading: 76, Suspicious: true},
		{Reading: 51},
		{Reading: 2},
		{Reading: 3},
		{Reading: 4},
		{Reading: 5},
	}

	for i, w := range want {
		got, err := d.Get(i)
		require.NoError(t, err)
		require.Equal(t, w, got, "channel %d", i)
	}
}

// TestDataset_Get rejects indices outside the dataset.
func TestDataset_Get(t *testing.T) {
	t.Parallel()

	d, err := NewDatasetFromReadings(tenToNinety, DefaultThreshold)
	require.NoError(t, err)

	_, err = d.Get(ChannelsCount)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = d.Get(-1)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	ch, err := d.Get(8)
	require.NoError(t, err)
	require.Equal(t, Channel{Reading: 90, Suspicious: true}, ch)
}

// TestDataset_ReclassifyAll keeps readings and refreshes flags.
func TestDataset_ReclassifyAll(t *testing.T) {
	t.Parallel()

	d, err := NewDatasetFromReadings(tenToNinety, DefaultThreshold)
	require.NoError(t, err)

	d.ReclassifyAll(LowLimit)

	for i, ch := range d.Channels() {
		require.Equal(t, tenToNinety[i], ch.Reading)
		require.True(t, ch.Suspicious)
	}

	d.ReclassifyAll(HighLimit)

	for _, ch := range d.Channels() {
		require.False(t, ch.Suspicious)
	}
}

// TestNewDatasetFromReadings_RejectsOutOfRange validates the reading bounds.
func TestNewDatasetFromReadings_RejectsOutOfRange(t *testing.T) {
	t.Parallel()

	readings := tenToNinety
	readings[4] = HighLimit + 1

	d, err := NewDatasetFromReadings(readings, DefaultThreshold)
	require.ErrorIs(t, err, ErrValueOutOfRange)
	require.Nil(t, d)
}

// TestPolicy tracks the pending state between set and apply.
func TestPolicy(t *testing.T) {
	t.Parallel()

	_, err := NewPolicy(LowLimit - 1)
	require.ErrorIs(t, err, ErrValueOutOfRange)

	p, err := NewPolicy(DefaultThreshold)
	require.NoError(t, err)
	require.False(t, p.Pending())

	require.NoError(t, p.SetThreshold(HighLimit))
	require.True(t, p.Pending())
	require.Equal(t, DefaultThreshold, p.Applied())

	require.NoError(t, p.SetThreshold(DefaultThreshold))
	require.False(t, p.Pending(), "returning to the applied value clears pending")

	d, err := NewDatasetFromReadings(tenToNinety, DefaultThreshold)
	require.NoError(t, err)

	require.NoError(t, p.SetThreshold(15))
	p.Apply(d)
	require.False(t, p.Pending())
	require.Equal(t, 15, p.Applied())

	ch, err := d.Get(1)
	require.NoError(t, err)
	require.True(t, ch.Suspicious)
}
