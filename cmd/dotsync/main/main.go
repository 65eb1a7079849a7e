package main

import (
	"os"

	"github.com/arthur-debert/dotsync/cmd/dotsync"
	"github.com/arthur-debert/dotsync/pkg/output"
)

func main() {
	rootCmd := dotsync.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		reporter := output.NewReporter(os.Stderr, output.ColorAuto)
		reporter.Error("Error: %v", err)
		os.Exit(1)
	}
}
