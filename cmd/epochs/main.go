package main

import (
	"os"

	"epochs/cmd/epochs/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
