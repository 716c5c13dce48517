// Package integration holds end-to-end tests that run the front-ends
// against configuration files and scripts on disk.
package integration
