package main

import (
	"os"

	"github.com/parsegen-dev/parsegen/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
