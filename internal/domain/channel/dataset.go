package channel

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Channel is a single reading slot.
type Channel struct {
	// Reading is the synthetic value generated at startup.
	Reading int
	// Suspicious is Reading > threshold as of the last classification.
	Suspicious bool
}

// Source yields uniformly distributed integers in [0, n).
// *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// NewSource returns a process-local generator.
// A nil seed picks one from the clock.
func NewSource(seed *uint64) *rand.Rand {
	var s uint64
	if seed != nil {
		s = *seed
	} else {
		s = uint64(time.Now().UnixNano()) //nolint:gosec // Sign is irrelevant for a seed.
	}

	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15)) //nolint:gosec // Synthetic demo data.
}

// Dataset is the fixed, ordered collection of channels.
type Dataset struct {
	// channels holds exactly ChannelsCount entries for the process lifetime.
	channels [ChannelsCount]Channel
}

// NewDataset draws ChannelsCount independent readings in [LowLimit, HighLimit]
// from src and classifies each against threshold.
func NewDataset(src Source, threshold int) *Dataset {
	d := new(Dataset)

	for i := range d.channels {
		reading := LowLimit + src.IntN(HighLimit-LowLimit+1)
		d.channels[i] = Channel{
			Reading:    reading,
			Suspicious: reading > threshold,
		}
	}

	return d
}

// NewDatasetFromReadings builds a dataset from known readings.
func NewDatasetFromReadings(readings [ChannelsCount]int, threshold int) (*Dataset, error) {
	d := new(Dataset)

	for i, reading := range readings {
		if !validValue(reading) {
			return nil, fmt.Errorf("reading %d of channel %d: %w", reading, i+1, ErrValueOutOfRange)
		}

		d.channels[i] = Channel{
			Reading:    reading,
			Suspicious: reading > threshold,
		}
	}

	return d, nil
}

// Get returns the channel at the zero-based index.
func (d *Dataset) Get(index int) (Channel, error) {
	if !validIndex(index) {
		return Channel{}, fmt.Errorf("get channel at %d: %w", index, ErrIndexOutOfRange)
	}

	return d.channels[index], nil
}

// ReclassifyAll sets Suspicious = Reading > threshold for every channel.
// Readings are never modified.
func (d *Dataset) ReclassifyAll(threshold int) {
	for i := range d.channels {
		d.channels[i].Suspicious = d.channels[i].Reading > threshold
	}
}

// Channels returns a copy of all channels in index order.
func (d *Dataset) Channels() [ChannelsCount]Channel {
	return d.channels
}
