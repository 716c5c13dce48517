package channel

const (
	// ChannelsCount is the fixed number of channels in a dataset.
	ChannelsCount = 9

	// LowLimit is the smallest allowed reading and threshold.
	LowLimit = 1
	// HighLimit is the largest allowed reading and threshold.
	HighLimit = 100

	// DefaultThreshold is the threshold a new policy starts with.
	DefaultThreshold = 75

	// BootstrapChannel is the one-based channel selected right after startup
	// and whenever a shift is requested with nothing selected.
	BootstrapChannel = 1

	// InvalidIndex is the display value of an empty slot.
	// It never appears inside the machine, only in rendered output.
	InvalidIndex = -1
)

// validIndex reports whether the zero-based index addresses a channel.
func validIndex(index int) bool {
	return index >= 0 && index < ChannelsCount
}

// validValue reports whether v lies within [LowLimit, HighLimit].
func validValue(v int) bool {
	return v >= LowLimit && v <= HighLimit
}
