// Package main is the entry point for the hbsbundle CLI tool.
// hbsbundle precompiles Handlebars templates and partials into one JavaScript file per target.
package main

import (
	"os"

	"github.com/jpequegn/hbsbundle/cmd/hbsbundle/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
