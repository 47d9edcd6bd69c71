package main

import (
	"os"

	"github.com/korjavin/nutrinudge/cmd/nutrinudge/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
