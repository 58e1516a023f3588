// Package main is the entry point for the skillkit CLI.
package main

import (
	"os"

	"github.com/skillkit-dev/skillkit/cmd/skillkit/commands"
)

func main() {
	os.Exit(commands.Execute())
}
