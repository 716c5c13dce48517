// Package replay is the headless front-end: it reads a command script, feeds
// every command through a session and prints snapshots as text or JSON.
//
// Script grammar, one command per line; blank lines and lines starting with
// '#' are skipped:
//
//	select N            select channel N (1..9)
//	shift D             move by D channels, wrapping around
//	next | prev         shift by +1 / -1
//	clear current|previous
//	threshold V         set a pending threshold (1..100)
//	apply               apply the pending threshold
//	show                print the snapshot
package replay
