package main

import "github.com/oshokin/channel-inspector/cmd/channel-inspector/cmd"

func main() {
	cmd.Execute()
}
