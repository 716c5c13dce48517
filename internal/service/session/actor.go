package session

import (
	"os"
	"os/user"
)

// unknownOperator is logged when the host or user cannot be detected.
const unknownOperator = "unknown"

// DetectOperator returns "user@host" for the process owner.
func DetectOperator() string {
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		hostname = unknownOperator
	}

	username := unknownOperator
	if current, err := user.Current(); err == nil && current.Username != "" {
		username = current.Username
	}

	return username + "@" + hostname
}
