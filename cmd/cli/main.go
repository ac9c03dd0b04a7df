// Package main is the entry point for the sourcinglens CLI.
package main

import (
	"os"

	"github.com/guttosm/sourcing-lens/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
