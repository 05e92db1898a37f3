package main

import (
	"os"

	"pizzeria/cmd/pizzeria/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
