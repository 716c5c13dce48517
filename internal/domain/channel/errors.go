package channel

import "errors"

var (
	// ErrIndexOutOfRange is returned when a channel index or number does not
	// address one of the ChannelsCount channels.
	ErrIndexOutOfRange = errors.New("channel index out of range")
	// ErrValueOutOfRange is returned when a reading or threshold falls outside
	// [LowLimit, HighLimit].
	ErrValueOutOfRange = errors.New("value out of range")
)

// errNilCommand is returned by Execute for a nil command.
var errNilCommand = errors.New("command is not set")
