// Package main is a thin demonstration CLI over the localmind library: it
// exercises TryLocalCompute, Compress, and the derivation verifier end to
// end but is not itself the product surface described by spec.md.
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "localmind",
		Short: "Demonstration CLI for the localmind compute and compression core",
	}

	root.AddCommand(newComputeCmd())
	root.AddCommand(newCompressCmd())
	root.AddCommand(newDeriveCmd())

	if err := root.Execute(); err != nil {
		color.Red("error: %v", err)
		os.Exit(1)
	}
}

func fatalf(format string, args ...any) {
	color.Red("error: "+format, args...)
	os.Exit(1)
}

func must(err error) {
	if err != nil {
		fatalf("%v", err)
	}
}
