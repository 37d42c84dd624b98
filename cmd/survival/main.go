package main

import (
	"os"

	"github.com/rustyeddy/survival/cmd/survival/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
