// Package session wires a channel.Machine to the application settings.
//
// A Session seeds the dataset, tags logs with a session id and the operator
// who started it, and is the single dispatch point every front-end uses.
package session
