package main

import (
	"os"

	"github.com/arthur-debert/unii/internal/cli"
	"github.com/arthur-debert/unii/pkg/style"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		style.NewPrinter(os.Stderr, style.DetectFormat(os.Stderr)).Error(err)
		os.Exit(1)
	}
}
