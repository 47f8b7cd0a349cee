// Huegen - A perceptual colour palette and scheme generator
//
// Huegen generates colour palettes and Base16/Base24 colour schemes from a
// seed colour, with perceptual metrics, harmony expansion and rendering to
// terminals and images.
//
// Copyright (c) 2026 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/huegen/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
