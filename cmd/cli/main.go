// Package main is the entry point for the cargo-market CLI.
package main

import (
	"os"

	"cargo-market/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
