// Package version exposes build metadata for channel-inspector.
//
// Version, Commit and BuildTime are injected at build time via Go ldflags.
package version
