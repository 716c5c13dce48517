// Package config defines the settings shared by the channel-inspector
// front-ends and provides helpers to load, validate and save them.
//
// Settings are stored as YAML by default; files with a .toml extension are
// read and written as TOML. A missing file is not an error and yields the
// defaults.
package config
