// Package main provides the CLI for the Numble numbers-game solver.
package main

import (
	"os"

	"github.com/numble-labs/numble/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
