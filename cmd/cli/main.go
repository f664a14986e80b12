package main

import (
	"os"

	"github.com/hailam/genfixture/internal/adapters/factory"
)

func main() {
	// --- Composition Root: Initialize Adapters ---
	sinkFactory := factory.NewStaticSinkFactory()
	// The random source and logger depend on flags and are built per run.
	// --- End Composition Root ---

	rootCmd := newRootCmd(sinkFactory, os.Args[0])
	if err := rootCmd.Execute(); err != nil {
		// Cobra prints errors automatically, but we exit non-zero
		os.Exit(1)
	}
}
