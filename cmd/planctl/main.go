package main

import (
	"os"

	"github.com/BenjaminKuhnn/Mitarbeit/cmd/planctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
