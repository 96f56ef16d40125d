package main

import (
	"os"

	"github.com/jask/jaskcalc/cmd/jaskcalc/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
