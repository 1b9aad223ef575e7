// Package main is the entry point for the copyshop CLI.
package main

import (
	"os"

	"copyshop-pricing/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
