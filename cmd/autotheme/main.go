// AutoTheme - An accessible colour theme generator
//
// AutoTheme derives harmonies, tint/shade/tone ramps, accessible text
// colours and semantic tokens from a single primary colour, and writes them
// as CSS custom properties, Tailwind v4, JSON or a PNG swatch.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/autotheme/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
