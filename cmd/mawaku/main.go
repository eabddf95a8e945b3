// Mawaku - generate video-call backgrounds by describing a place.
package main

import (
	"os"

	"github.com/mawaku/mawaku/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
