// Package channel contains the channel selection state machine.
//
// A Machine owns a fixed Dataset of nine synthetic readings, a Cursor that
// remembers the current and previously viewed channel, and a Policy that
// classifies readings as suspicious against a threshold. Front-ends issue
// Commands and render the immutable Snapshot the machine derives after every
// command; they never touch the composed parts directly.
package channel
