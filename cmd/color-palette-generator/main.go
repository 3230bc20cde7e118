// color-palette-generator - perceptually uniform OKLCH colour scales
//
// Generates colour scales from a small set of base colours, optionally
// pinning individual steps to WCAG contrast targets.
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/aguscruiz/color-palette-generator/internal/cli"
)

func main() {
	// A .env in the working directory can supply PALETTE_* overrides.
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
