package main

import (
	"os"

	"concept-poly/cmd/cbp/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
